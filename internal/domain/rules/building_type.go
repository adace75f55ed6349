package rules

import (
	"fmt"

	"github.com/mvaldes/colonia-go/internal/domain/goods"
)

// Production is a declared input/output goods pairing a work location can be
// configured to convert. A building type lists its productions in order; the
// first one is the default.
type Production struct {
	inputs  []goods.Stack
	outputs []goods.Stack
}

func NewProduction(inputs, outputs []goods.Stack) Production {
	return Production{inputs: inputs, outputs: outputs}
}

func (p Production) Inputs() []goods.Stack { return p.inputs }

func (p Production) Outputs() []goods.Stack { return p.outputs }

// BuildingType is the immutable configuration entity for one level of a
// building: capacity, abilities, upgrade links, production list, modifiers
// and build cost. Assembly happens once when the ruleset is built; the game
// only reads it afterwards.
type BuildingType struct {
	id            string
	level         int
	workPlaces    int
	requiredSkill int
	autoBuilt     bool
	priority      int
	upgradesTo    *BuildingType
	upgradesFrom  *BuildingType
	productions   []Production
	abilities     map[string]bool
	modifiers     map[string][]Modifier
	buildCost     []goods.Stack
}

// ConsumerPriorityDefault orders building consumption against other colony
// consumers when goods run short.
const ConsumerPriorityDefault = 10

func NewBuildingType(id string, level, workPlaces int) (*BuildingType, error) {
	if id == "" {
		return nil, fmt.Errorf("building type id cannot be empty")
	}
	if level < 1 {
		return nil, fmt.Errorf("building type level must be at least 1, got %d", level)
	}
	if workPlaces < 0 {
		return nil, fmt.Errorf("building type work places cannot be negative, got %d", workPlaces)
	}
	return &BuildingType{
		id:         id,
		level:      level,
		workPlaces: workPlaces,
		priority:   ConsumerPriorityDefault,
		abilities:  make(map[string]bool),
		modifiers:  make(map[string][]Modifier),
	}, nil
}

func (t *BuildingType) ID() string { return t.id }

func (t *BuildingType) Level() int { return t.level }

// WorkPlaces is the number of workers the building can hold.
func (t *BuildingType) WorkPlaces() int { return t.workPlaces }

func (t *BuildingType) RequiredSkill() int { return t.requiredSkill }

// AutoBuilt buildings appear on their own and cannot be damaged.
func (t *BuildingType) AutoBuilt() bool { return t.autoBuilt }

func (t *BuildingType) Priority() int { return t.priority }

func (t *BuildingType) UpgradesTo() *BuildingType { return t.upgradesTo }

func (t *BuildingType) UpgradesFrom() *BuildingType { return t.upgradesFrom }

func (t *BuildingType) Productions() []Production { return t.productions }

// DefaultProduction returns the first declared production, or nil when the
// type declares none.
func (t *BuildingType) DefaultProduction() *Production {
	if len(t.productions) == 0 {
		return nil
	}
	return &t.productions[0]
}

func (t *BuildingType) BuildCost() []goods.Stack { return t.buildCost }

func (t *BuildingType) HasAbility(id string) bool { return t.abilities[id] }

// CanAdd reports whether units of the given type are skilled enough to work
// in this building.
func (t *BuildingType) CanAdd(ut *UnitType) bool {
	return ut != nil && ut.Skill() >= t.requiredSkill
}

// Modifiers returns the type's modifiers registered under id that are in
// effect at the given turn.
func (t *BuildingType) Modifiers(id string, turn Turn) []Modifier {
	var mods []Modifier
	for _, m := range t.modifiers[id] {
		if m.AppliesTo(turn) {
			mods = append(mods, m)
		}
	}
	return mods
}

// AllModifiers returns every modifier map entry; used when a colony absorbs
// or sheds a building type's feature contributions.
func (t *BuildingType) AllModifiers() map[string][]Modifier { return t.modifiers }

// Abilities returns the set of ability ids this type carries.
func (t *BuildingType) Abilities() []string {
	ids := make([]string, 0, len(t.abilities))
	for id := range t.abilities {
		ids = append(ids, id)
	}
	return ids
}

// BreedingDivisor reads the breeding divisor constant (additive modifier
// applied to base 0).
func (t *BuildingType) BreedingDivisor() int {
	return int(ApplyModifiers(0, 0, t.modifiers[ModifierBreedingDivisor]))
}

// BreedingFactor reads the breeding factor constant.
func (t *BuildingType) BreedingFactor() int {
	return int(ApplyModifiers(0, 0, t.modifiers[ModifierBreedingFactor]))
}

// Assembly mutators, used only while building a ruleset.

func (t *BuildingType) AddAbility(id string) { t.abilities[id] = true }

func (t *BuildingType) AddModifier(id string, m Modifier) {
	t.modifiers[id] = append(t.modifiers[id], m)
}

func (t *BuildingType) AddProduction(p Production) {
	t.productions = append(t.productions, p)
}

func (t *BuildingType) SetRequiredSkill(skill int) { t.requiredSkill = skill }

func (t *BuildingType) SetAutoBuilt(auto bool) { t.autoBuilt = auto }

func (t *BuildingType) SetPriority(priority int) { t.priority = priority }

func (t *BuildingType) SetBuildCost(cost []goods.Stack) { t.buildCost = cost }

// LinkUpgrade wires the two-way upgrade relationship between consecutive
// levels of a building.
func LinkUpgrade(from, to *BuildingType) {
	from.upgradesTo = to
	to.upgradesFrom = from
}
