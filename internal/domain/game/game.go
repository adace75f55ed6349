package game

import (
	"fmt"

	"github.com/mvaldes/colonia-go/internal/domain/rules"
)

// Game holds the simulation-wide state every game object can reach: the
// current turn, the ruleset, the object registry and the id generator.
type Game struct {
	ruleset  *rules.Ruleset
	registry *Registry
	ids      IDGenerator
	turn     rules.Turn
}

func New(ruleset *rules.Ruleset, ids IDGenerator) (*Game, error) {
	if ruleset == nil {
		return nil, fmt.Errorf("game ruleset cannot be nil")
	}
	if ids == nil {
		ids = NewUUIDGenerator()
	}
	return &Game{
		ruleset:  ruleset,
		registry: NewRegistry(),
		ids:      ids,
	}, nil
}

func (g *Game) Rules() *rules.Ruleset { return g.ruleset }

func (g *Game) Registry() *Registry { return g.registry }

func (g *Game) Turn() rules.Turn { return g.turn }

// AdvanceTurn moves simulated time forward one turn.
func (g *Game) AdvanceTurn() rules.Turn {
	g.turn++
	return g.turn
}

// RestoreTurn sets the turn counter during reconstruction from storage.
func (g *Game) RestoreTurn(turn rules.Turn) { g.turn = turn }

// NextID mints a fresh identifier of the given kind.
func (g *Game) NextID(kind string) string { return g.ids.NextID(kind) }

// IDs exposes the generator for explicit deep-copy operations.
func (g *Game) IDs() IDGenerator { return g.ids }
