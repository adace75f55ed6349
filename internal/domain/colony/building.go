package colony

import (
	"fmt"

	"github.com/mvaldes/colonia-go/internal/domain/game"
	"github.com/mvaldes/colonia-go/internal/domain/goods"
	"github.com/mvaldes/colonia-go/internal/domain/rules"
	"github.com/mvaldes/colonia-go/pkg/utils"
)

// expertConnectionsInput is the guaranteed input per expert worker when the
// experts-use-connections ability is armed.
const expertConnectionsInput = 4

// Building is a capacity-bounded work location inside a colony. Workers
// assigned to it convert the input goods of its current production type into
// its output goods once per turn.
type Building struct {
	id             string
	colony         *Colony
	buildingType   *rules.BuildingType
	productionType *rules.Production
	units          []*Unit
}

// NewBuilding creates a building of the given type, registers it and
// attaches it to the colony.
func NewBuilding(g *game.Game, c *Colony, t *rules.BuildingType) (*Building, error) {
	if c == nil {
		return nil, fmt.Errorf("building colony cannot be nil")
	}
	if t == nil {
		return nil, fmt.Errorf("building type cannot be nil")
	}
	b := &Building{
		id:           g.NextID("building"),
		colony:       c,
		buildingType: t,
	}
	b.productionType = t.DefaultProduction()
	if err := g.Registry().Register(b); err != nil {
		return nil, err
	}
	c.AddBuilding(b)
	return b, nil
}

// RestoreBuilding rebuilds a building from persisted state without minting
// a new id.
func RestoreBuilding(g *game.Game, c *Colony, id string, t *rules.BuildingType) (*Building, error) {
	if id == "" {
		return nil, fmt.Errorf("building id cannot be empty")
	}
	b := &Building{
		id:           id,
		colony:       c,
		buildingType: t,
	}
	b.productionType = t.DefaultProduction()
	if err := g.Registry().Register(b); err != nil {
		return nil, err
	}
	c.AddBuilding(b)
	return b, nil
}

func (b *Building) ID() string { return b.id }

func (b *Building) Colony() *Colony { return b.colony }

func (b *Building) Type() *rules.BuildingType { return b.buildingType }

func (b *Building) ProductionType() *rules.Production { return b.productionType }

// Level delegates to the type.
func (b *Building) Level() int { return b.buildingType.Level() }

// Units returns the assigned workers in assignment order.
func (b *Building) Units() []*Unit { return b.units }

func (b *Building) UnitCount() int { return len(b.units) }

// UnitCapacity is the number of work places the current type provides.
func (b *Building) UnitCapacity() int { return b.buildingType.WorkPlaces() }

// Compare orders buildings by type level.
func (b *Building) Compare(other *Building) int {
	return b.buildingType.Level() - other.buildingType.Level()
}

// Output returns the first declared output of the current production type,
// or nil when the building produces nothing.
func (b *Building) Output() *goods.Stack {
	if b.productionType == nil || len(b.productionType.Outputs()) == 0 {
		return nil
	}
	out := b.productionType.Outputs()[0]
	return &out
}

// OutputType is the goods type the building produces, or nil.
func (b *Building) OutputType() *goods.Type {
	out := b.Output()
	if out == nil {
		return nil
	}
	return out.Type()
}

// InputType is the goods type the building consumes, or nil.
func (b *Building) InputType() *goods.Type {
	if b.productionType == nil || len(b.productionType.Inputs()) == 0 {
		return nil
	}
	return b.productionType.Inputs()[0].Type()
}

// ExpertUnitType is the unit type that is the expert for this building's
// output.
func (b *Building) ExpertUnitType() *rules.UnitType {
	return b.colony.Game().Rules().ExpertForProducing(b.OutputType())
}

// CanAutoProduce reports whether output grows from stock without labor.
func (b *Building) CanAutoProduce() bool {
	return b.buildingType.HasAbility(rules.AbilityAutoProduction)
}

// CanAddType reports whether units of the given type may work here.
func (b *Building) CanAddType(ut *rules.UnitType) bool {
	return b.buildingType.CanAdd(ut)
}

// NoAddReason classifies whether a unit can be admitted right now.
func (b *Building) NoAddReason(u *Unit) NoAddReason {
	if u == nil {
		return ReasonNotWorkable
	}
	if !b.buildingType.CanAdd(u.Type()) {
		return ReasonMissingSkill
	}
	if !b.contains(u) && len(b.units) >= b.UnitCapacity() {
		return ReasonCapacityFull
	}
	return ReasonNone
}

func (b *Building) contains(u *Unit) bool {
	for _, present := range b.units {
		if present == u {
			return true
		}
	}
	return false
}

// Add assigns a worker. Admitting an ineligible unit is a logic error and
// returns an AdmissionError; re-adding a present unit is a no-op success.
func (b *Building) Add(u *Unit) error {
	if reason := b.NoAddReason(u); reason != ReasonNone {
		unitID := ""
		if u != nil {
			unitID = u.ID()
		}
		return &AdmissionError{Reason: reason, UnitID: unitID, BuildingID: b.id}
	}
	if b.contains(u) {
		return nil
	}
	b.colony.Tile().take(u)
	b.units = append(b.units, u)
	u.setState(UnitStateInColony)
	// Buildings produce a single goods type for now; the worker's declared
	// work type follows it.
	u.setWorkType(b.OutputType())
	u.setLocation(b)
	b.colony.InvalidateCache()
	return nil
}

// Remove withdraws a worker to the colony tile. Removing an absent unit is
// a no-op success.
func (b *Building) Remove(u *Unit) error {
	if u == nil {
		return fmt.Errorf("cannot remove nil unit from %s", b.id)
	}
	if !b.contains(u) {
		return nil
	}
	b.evict(u)
	b.colony.InvalidateCache()
	return nil
}

// evict detaches a unit and places it on the colony tile, resetting its
// activity state and movement allowance.
func (b *Building) evict(u *Unit) {
	for i, present := range b.units {
		if present == u {
			b.units = append(b.units[:i], b.units[i+1:]...)
			break
		}
	}
	u.setState(UnitStateActive)
	u.setMovesLeft(0)
	u.setLocation(b.colony.Tile())
	b.colony.Tile().place(u)
}

// CanBuildNext reports whether the colony can erect the next level.
func (b *Building) CanBuildNext() bool {
	return b.buildingType.UpgradesTo() != nil && b.colony.CanBuild(b.buildingType.UpgradesTo())
}

// CanBeDamaged reports whether the building may lose a level.
func (b *Building) CanBeDamaged() bool {
	return !b.buildingType.AutoBuilt() && !b.colony.AutoBuilds(b.buildingType)
}

// Upgrade raises the building to the next level, consuming the build cost.
// Returns false and leaves all state unchanged when the prerequisite fails.
func (b *Building) Upgrade() bool {
	if !b.CanBuildNext() {
		return false
	}
	next := b.buildingType.UpgradesTo()
	b.colony.consumeBuildCost(next)
	b.setType(next)
	b.colony.InvalidateCache()
	return true
}

// Downgrade lowers the building one level (damage). Returns false and
// leaves all state unchanged when the building cannot be damaged or has no
// lower level.
func (b *Building) Downgrade() bool {
	if !b.CanBeDamaged() || b.buildingType.UpgradesFrom() == nil {
		return false
	}
	b.setType(b.buildingType.UpgradesFrom())
	b.colony.InvalidateCache()
	return true
}

// setType swaps the building type: revoke the old type's features, reset
// the default production, grant the new type's features, then evict workers
// the new type refuses or cannot hold.
func (b *Building) setType(newType *rules.BuildingType) {
	b.colony.Features().RemoveFeatures(b.buildingType)

	if newType != nil {
		b.buildingType = newType
		b.productionType = newType.DefaultProduction()
		b.colony.Features().AddFeatures(newType)

		for _, u := range append([]*Unit(nil), b.units...) {
			if !b.CanAddType(u.Type()) {
				b.evict(u)
			}
		}
	}

	if len(b.units) > b.UnitCapacity() {
		for _, u := range append([]*Unit(nil), b.units[b.UnitCapacity():]...) {
			b.evict(u)
		}
	}
}

// UnitProduction is the maximum productivity of one worker here,
// considering only the unit's own contribution: the base output amount
// adjusted by unit-specific modifiers, floored at zero.
func (b *Building) UnitProduction(u *Unit) int {
	output := b.Output()
	if output == nil || u == nil {
		return 0
	}
	productivity := output.Amount()
	if productivity > 0 {
		turn := b.colony.Game().Turn()
		mods := b.ProductionModifiers(output.Type(), u.Type())
		productivity = int(rules.ApplyModifiers(float64(productivity), turn, mods))
	}
	return utils.Max(0, productivity)
}

// ProductionModifiers assembles the modifiers for producing goodsType here.
// With a unit type, unit-specific bonuses and owner bonuses apply; without
// one, only the building-general bonuses aggregated by the colony apply.
func (b *Building) ProductionModifiers(goodsType *goods.Type, unitType *rules.UnitType) []rules.Modifier {
	var mods []rules.Modifier
	if goodsType == nil || goodsType != b.OutputType() {
		return mods
	}
	id := goodsType.ID()
	turn := b.colony.Game().Turn()
	owner := b.colony.Owner()
	if unitType != nil {
		mods = append(mods, b.buildingType.Modifiers(id, turn)...)
		mods = append(mods, unitType.Modifiers(id, turn)...)
	} else {
		mods = append(mods, b.colony.Features().Modifiers(id, turn)...)
	}
	if owner != nil {
		mods = append(mods, owner.Modifiers(id, turn)...)
	}
	return mods
}

// PotentialProduction is the adjusted base output for a hypothetical worker
// of the given type, floored at zero.
func (b *Building) PotentialProduction(goodsType *goods.Type, unitType *rules.UnitType) int {
	output := b.Output()
	if output == nil || output.Type() != goodsType {
		return 0
	}
	turn := b.colony.Game().Turn()
	production := int(rules.ApplyModifiers(float64(output.Amount()), turn,
		b.ProductionModifiers(goodsType, unitType)))
	return utils.Max(0, production)
}

// AdjustedProduction computes the production and consumption of this
// building for one turn, given the output goods already in the warehouse
// and the input goods available.
//
// The output stock, when present, must match the building's output type;
// when the building has an input type the caller must supply an entry for
// it, zero-amount when the warehouse is empty.
func (b *Building) AdjustedProduction(output *goods.Stack, inputs []goods.Stack) (*goods.ProductionReport, error) {
	report := goods.NewProductionReport()
	outputType := b.OutputType()
	inputType := b.InputType()

	amountPresent := 0
	if output != nil {
		amountPresent = output.Amount()
	}
	if outputType != nil && output != nil && output.Type() != outputType {
		return nil, &WrongOutputTypeError{Expected: outputType.ID(), Got: output.Type().ID()}
	}

	capacity := b.colony.WarehouseCapacity()
	if b.buildingType.HasAbility(rules.AbilityAvoidExcessProduction) && amountPresent >= capacity {
		// Warehouse already full: produce nothing.
		return report, nil
	}

	availableInput := 0
	if inputType != nil {
		found := false
		for _, g := range inputs {
			if g.Type() == inputType {
				availableInput = g.Amount()
				found = true
				break
			}
		}
		if !found {
			return nil, &MissingInputError{GoodsType: inputType.ID()}
		}
	}

	if outputType == nil {
		return report, nil
	}

	maximumInput := 0
	if inputType != nil && b.CanAutoProduce() {
		available := b.colony.GoodsCount(outputType)
		if available >= outputType.BreedingNumber() {
			divisor := b.buildingType.BreedingDivisor()
			factor := b.buildingType.BreedingFactor()
			if divisor > 0 {
				maximumInput = ((available-1)/divisor + 1) * factor
			}
		}
	} else {
		for _, u := range b.units {
			maximumInput += b.UnitProduction(u)
		}
		maximumInput = utils.Max(0, maximumInput)
	}

	turn := b.colony.Game().Turn()
	productionModifiers := b.ProductionModifiers(outputType, nil)
	maxProd := int(rules.ApplyModifiers(float64(maximumInput), turn, productionModifiers))

	actualInput := maximumInput
	if inputType != nil {
		actualInput = utils.Min(maximumInput, availableInput)
	}

	// Experts in top-level buildings may still produce when input goods run
	// short; their connections supply a guaranteed minimum.
	if availableInput < maximumInput &&
		b.buildingType.HasAbility(rules.AbilityExpertsUseConnections) &&
		b.colony.Game().Rules().Boolean(rules.OptionExpertsHaveConnections) {
		minimumInput := 0
		expert := b.ExpertUnitType()
		for _, u := range b.units {
			if u.Type() == expert {
				minimumInput += expertConnectionsInput
			}
		}
		if minimumInput > availableInput {
			actualInput = minimumInput
		}
	}

	prod := int(rules.ApplyModifiers(float64(actualInput), turn, productionModifiers))
	if prod > 0 {
		if b.buildingType.HasAbility(rules.AbilityAvoidExcessProduction) {
			total := amountPresent + prod
			for total > capacity {
				if actualInput <= 0 {
					// Cannot fit any production at all.
					return goods.NewProductionReport(), nil
				}
				actualInput--
				prod = int(rules.ApplyModifiers(float64(actualInput), turn, productionModifiers))
				total = amountPresent + prod
				// Once capacity-bound, maximum production no longer exceeds
				// actual production.
				maximumInput = actualInput
				maxProd = prod
			}
		}
		prod = utils.Max(0, prod)
		maxProd = utils.Max(0, maxProd)
		report.AddProduction(goods.StackOf(outputType, prod))
		if maxProd > prod {
			report.AddMaximumProduction(goods.StackOf(outputType, maxProd))
		}
		if inputType != nil {
			report.AddConsumption(goods.StackOf(inputType, actualInput))
			if maximumInput > actualInput {
				report.AddMaximumConsumption(goods.StackOf(inputType, maximumInput))
			}
		}
	}
	return report, nil
}

// Consumer surface: buildings compete for input goods with other colony
// consumers.

// Consumes reports whether this building consumes the goods type.
func (b *Building) Consumes(t *goods.Type) bool {
	return t != nil && t == b.InputType()
}

// ConsumedGoods lists the input goods types as zero-amount stacks.
func (b *Building) ConsumedGoods() []goods.Stack {
	var consumed []goods.Stack
	if it := b.InputType(); it != nil {
		consumed = append(consumed, goods.StackOf(it, 0))
	}
	return consumed
}

// Priority orders this building against other consumers.
func (b *Building) Priority() int { return b.buildingType.Priority() }

func (b *Building) String() string {
	return fmt.Sprintf("%s/%s", b.buildingType.ID(), b.colony.Name())
}
