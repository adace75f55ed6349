package colony

import (
	"fmt"

	"github.com/mvaldes/colonia-go/internal/domain/game"
	"github.com/mvaldes/colonia-go/internal/domain/goods"
	"github.com/mvaldes/colonia-go/internal/domain/player"
	"github.com/mvaldes/colonia-go/internal/domain/rules"
)

// UnitState is the activity state of a unit.
type UnitState string

const (
	// UnitStateActive means idle and available for orders.
	UnitStateActive UnitState = "ACTIVE"

	// UnitStateInColony means assigned to a colony work location.
	UnitStateInColony UnitState = "IN_COLONY"
)

// Location is a place a unit can stand: a building slot or the colony tile.
type Location interface {
	ID() string
}

// Unit is a single colonist or worker.
type Unit struct {
	id        string
	unitType  *rules.UnitType
	owner     *player.Player
	state     UnitState
	movesLeft int
	workType  *goods.Type
	location  Location
}

// DefaultMoves is the movement allowance a unit starts each turn with.
const DefaultMoves = 3

func NewUnit(g *game.Game, unitType *rules.UnitType, owner *player.Player) (*Unit, error) {
	if g == nil {
		return nil, fmt.Errorf("unit game cannot be nil")
	}
	if unitType == nil {
		return nil, fmt.Errorf("unit type cannot be nil")
	}
	if owner == nil {
		return nil, fmt.Errorf("unit owner cannot be nil")
	}
	u := &Unit{
		id:        g.NextID("unit"),
		unitType:  unitType,
		owner:     owner,
		state:     UnitStateActive,
		movesLeft: DefaultMoves,
	}
	if err := g.Registry().Register(u); err != nil {
		return nil, err
	}
	return u, nil
}

// RestoreUnit rebuilds a unit from persisted state without minting a new id.
func RestoreUnit(g *game.Game, id string, unitType *rules.UnitType, owner *player.Player,
	state UnitState, movesLeft int, workType *goods.Type) (*Unit, error) {
	if id == "" {
		return nil, fmt.Errorf("unit id cannot be empty")
	}
	u := &Unit{
		id:        id,
		unitType:  unitType,
		owner:     owner,
		state:     state,
		movesLeft: movesLeft,
		workType:  workType,
	}
	if err := g.Registry().Register(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *Unit) ID() string { return u.id }

func (u *Unit) Type() *rules.UnitType { return u.unitType }

func (u *Unit) Owner() *player.Player { return u.owner }

func (u *Unit) OwnerID() string { return u.owner.ID() }

func (u *Unit) State() UnitState { return u.state }

func (u *Unit) MovesLeft() int { return u.movesLeft }

// WorkType is the goods type the unit is currently set to produce.
func (u *Unit) WorkType() *goods.Type { return u.workType }

func (u *Unit) Location() Location { return u.location }

func (u *Unit) setState(s UnitState) { u.state = s }

func (u *Unit) setMovesLeft(n int) { u.movesLeft = n }

func (u *Unit) setWorkType(t *goods.Type) { u.workType = t }

func (u *Unit) setLocation(l Location) { u.location = l }

// Clone duplicates the unit under a freshly minted identifier and registers
// the copy. The id generator is passed explicitly; identity is never derived
// by patching serialized state.
func (u *Unit) Clone(g *game.Game) (*Unit, error) {
	c := &Unit{
		id:        g.NextID("unit"),
		unitType:  u.unitType,
		owner:     u.owner,
		state:     u.state,
		movesLeft: u.movesLeft,
		workType:  u.workType,
	}
	if err := g.Registry().Register(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *Unit) String() string {
	return fmt.Sprintf("%s(%s)", u.id, u.unitType.ID())
}
