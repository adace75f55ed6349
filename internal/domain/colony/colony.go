package colony

import (
	"fmt"
	"sort"

	"github.com/mvaldes/colonia-go/internal/domain/game"
	"github.com/mvaldes/colonia-go/internal/domain/goods"
	"github.com/mvaldes/colonia-go/internal/domain/player"
	"github.com/mvaldes/colonia-go/internal/domain/rules"
)

// Tile is the colony's outdoor tile, where evicted or idle units stand.
type Tile struct {
	id    string
	units []*Unit
}

func (t *Tile) ID() string { return t.id }

func (t *Tile) Units() []*Unit { return t.units }

func (t *Tile) place(u *Unit) {
	for _, present := range t.units {
		if present == u {
			return
		}
	}
	t.units = append(t.units, u)
}

func (t *Tile) take(u *Unit) {
	for i, present := range t.units {
		if present == u {
			t.units = append(t.units[:i], t.units[i+1:]...)
			return
		}
	}
}

// Colony is a settlement: a warehouse of goods, a set of work locations and
// the feature container their types contribute to.
type Colony struct {
	id                string
	name              string
	owner             *player.Player
	game              *game.Game
	warehouseCapacity int
	stock             map[string]int
	stockTypes        map[string]*goods.Type
	tile              *Tile
	buildings         []*Building
	features          *FeatureContainer
	autoBuilds        map[string]bool

	// Production totals are recomputed lazily; every mutating operation
	// marks the cache stale.
	cacheValid   bool
	cachedTotals map[string]int
}

// DefaultWarehouseCapacity is the per-goods warehouse limit colonies start
// with.
const DefaultWarehouseCapacity = 100

func New(g *game.Game, name string, owner *player.Player) (*Colony, error) {
	if g == nil {
		return nil, fmt.Errorf("colony game cannot be nil")
	}
	if name == "" {
		return nil, fmt.Errorf("colony name cannot be empty")
	}
	if owner == nil {
		return nil, fmt.Errorf("colony owner cannot be nil")
	}
	c := &Colony{
		id:                g.NextID("colony"),
		name:              name,
		owner:             owner,
		game:              g,
		warehouseCapacity: DefaultWarehouseCapacity,
		stock:             make(map[string]int),
		stockTypes:        make(map[string]*goods.Type),
		features:          NewFeatureContainer(),
		autoBuilds:        make(map[string]bool),
	}
	c.tile = &Tile{id: c.id + "-tile"}
	if err := g.Registry().Register(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Restore rebuilds a colony from persisted state without minting a new id.
func Restore(g *game.Game, id, name string, owner *player.Player, warehouseCapacity int) (*Colony, error) {
	if id == "" {
		return nil, fmt.Errorf("colony id cannot be empty")
	}
	c := &Colony{
		id:                id,
		name:              name,
		owner:             owner,
		game:              g,
		warehouseCapacity: warehouseCapacity,
		stock:             make(map[string]int),
		stockTypes:        make(map[string]*goods.Type),
		features:          NewFeatureContainer(),
		autoBuilds:        make(map[string]bool),
	}
	c.tile = &Tile{id: c.id + "-tile"}
	if err := g.Registry().Register(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Colony) ID() string { return c.id }

func (c *Colony) Name() string { return c.name }

func (c *Colony) Owner() *player.Player { return c.owner }

func (c *Colony) OwnerID() string { return c.owner.ID() }

func (c *Colony) Game() *game.Game { return c.game }

func (c *Colony) Tile() *Tile { return c.tile }

func (c *Colony) Features() *FeatureContainer { return c.features }

func (c *Colony) WarehouseCapacity() int { return c.warehouseCapacity }

func (c *Colony) SetWarehouseCapacity(capacity int) {
	c.warehouseCapacity = capacity
	c.InvalidateCache()
}

func (c *Colony) Buildings() []*Building { return c.buildings }

// BuildingByType finds the colony's building of the given type id, walking
// the upgrade chain so "blacksmithHut" also matches an upgraded shop.
func (c *Colony) BuildingByType(typeID string) *Building {
	for _, b := range c.buildings {
		for t := b.Type(); t != nil; t = t.UpgradesFrom() {
			if t.ID() == typeID {
				return b
			}
		}
	}
	return nil
}

// GoodsCount returns the warehouse stock of a goods type.
func (c *Colony) GoodsCount(t *goods.Type) int {
	if t == nil {
		return 0
	}
	return c.stock[t.ID()]
}

// AddGoods deposits goods into the warehouse, clamped to capacity for
// storable types.
func (c *Colony) AddGoods(s goods.Stack) {
	c.adjustGoods(s.Type(), s.Amount())
	c.InvalidateCache()
}

// RemoveGoods withdraws up to the requested amount and returns what was
// actually taken.
func (c *Colony) RemoveGoods(t *goods.Type, amount int) goods.Stack {
	have := c.stock[t.ID()]
	taken := amount
	if taken > have {
		taken = have
	}
	c.adjustGoods(t, -taken)
	c.InvalidateCache()
	return goods.StackOf(t, taken)
}

func (c *Colony) adjustGoods(t *goods.Type, delta int) {
	next := c.stock[t.ID()] + delta
	if next < 0 {
		next = 0
	}
	if t.Storable() && next > c.warehouseCapacity {
		next = c.warehouseCapacity
	}
	c.stock[t.ID()] = next
	c.stockTypes[t.ID()] = t
}

// Stock returns the warehouse contents sorted by goods id.
func (c *Colony) Stock() []goods.Stack {
	ids := make([]string, 0, len(c.stock))
	for id := range c.stock {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	stacks := make([]goods.Stack, 0, len(ids))
	for _, id := range ids {
		stacks = append(stacks, goods.StackOf(c.stockTypes[id], c.stock[id]))
	}
	return stacks
}

// ReceiveUnit places a unit on the colony's outdoor tile.
func (c *Colony) ReceiveUnit(u *Unit) {
	u.setLocation(c.tile)
	c.tile.place(u)
}

// AddBuilding attaches a work location and absorbs its type's features.
func (c *Colony) AddBuilding(b *Building) {
	c.buildings = append(c.buildings, b)
	c.features.AddFeatures(b.Type())
	c.InvalidateCache()
}

// CanBuild checks the colony-level prerequisite for erecting the given
// type: the warehouse must cover the build cost.
func (c *Colony) CanBuild(t *rules.BuildingType) bool {
	if t == nil {
		return false
	}
	for _, cost := range t.BuildCost() {
		if c.GoodsCount(cost.Type()) < cost.Amount() {
			return false
		}
	}
	return true
}

// consumeBuildCost deducts a type's build cost from the warehouse. Callers
// must have checked CanBuild first.
func (c *Colony) consumeBuildCost(t *rules.BuildingType) {
	for _, cost := range t.BuildCost() {
		c.RemoveGoods(cost.Type(), cost.Amount())
	}
}

// SetAutoBuild marks a building type as automatically (re)built by the
// colony; such buildings cannot be damaged.
func (c *Colony) SetAutoBuild(typeID string, auto bool) {
	c.autoBuilds[typeID] = auto
}

// AutoBuilds reports whether the colony overrides damage for the type.
func (c *Colony) AutoBuilds(t *rules.BuildingType) bool {
	return t != nil && c.autoBuilds[t.ID()]
}

// InvalidateCache marks the production totals stale. Every mutating
// operation on the colony or its work locations calls this.
func (c *Colony) InvalidateCache() {
	c.cacheValid = false
	c.cachedTotals = nil
}

// ProductionTotals returns the net per-goods production of all work
// locations for the current turn, recomputing lazily.
func (c *Colony) ProductionTotals() map[string]int {
	if c.cacheValid {
		return c.cachedTotals
	}
	totals := make(map[string]int)
	for _, b := range c.buildings {
		report, err := c.buildingReport(b)
		if err != nil {
			continue
		}
		for _, s := range report.Production() {
			totals[s.Type().ID()] += s.Amount()
		}
		for _, s := range report.Consumption() {
			totals[s.Type().ID()] -= s.Amount()
		}
	}
	c.cachedTotals = totals
	c.cacheValid = true
	return totals
}

// ProductionReportFor computes the adjusted production of one building
// against the current warehouse contents.
func (c *Colony) ProductionReportFor(b *Building) (*goods.ProductionReport, error) {
	return c.buildingReport(b)
}

func (c *Colony) buildingReport(b *Building) (*goods.ProductionReport, error) {
	var output *goods.Stack
	if ot := b.OutputType(); ot != nil {
		s := goods.StackOf(ot, c.GoodsCount(ot))
		output = &s
	}
	var inputs []goods.Stack
	if it := b.InputType(); it != nil {
		// Always supply an entry, zero-amount when the warehouse is empty.
		inputs = append(inputs, goods.StackOf(it, c.GoodsCount(it)))
	}
	return b.AdjustedProduction(output, inputs)
}

// RunTurn applies the net production of every work location to the
// warehouse and refreshes unit movement allowances.
func (c *Colony) RunTurn() {
	totals := c.ProductionTotals()
	ids := make([]string, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		t := c.stockTypes[id]
		if t == nil {
			resolved, err := c.game.Rules().GoodsType(id)
			if err != nil {
				continue
			}
			t = resolved
		}
		c.adjustGoods(t, totals[id])
	}
	for _, b := range c.buildings {
		for _, u := range b.Units() {
			u.setMovesLeft(0)
		}
	}
	for _, u := range c.tile.Units() {
		u.setMovesLeft(DefaultMoves)
	}
	c.InvalidateCache()
}
