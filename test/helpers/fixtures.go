package helpers

import (
	"testing"

	"github.com/mvaldes/colonia-go/internal/domain/colony"
	"github.com/mvaldes/colonia-go/internal/domain/game"
	"github.com/mvaldes/colonia-go/internal/domain/player"
	"github.com/mvaldes/colonia-go/internal/domain/rules"
)

// NewTestGame builds a game over the classic ruleset with deterministic
// sequence ids ("colony-1", "unit-1", ...).
func NewTestGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.New(rules.ClassicRuleset(), game.NewSequenceGenerator())
	if err != nil {
		t.Fatalf("failed to create test game: %v", err)
	}
	return g
}

// NewTestPlayer creates a player registered under a deterministic id.
func NewTestPlayer(t *testing.T, g *game.Game, name string) *player.Player {
	t.Helper()
	p, err := player.New(g.NextID("player"), name)
	if err != nil {
		t.Fatalf("failed to create test player: %v", err)
	}
	return p
}

// NewTestColony creates an empty colony owned by a fresh player.
func NewTestColony(t *testing.T, g *game.Game, name string) *colony.Colony {
	t.Helper()
	p := NewTestPlayer(t, g, name+"-owner")
	c, err := colony.New(g, name, p)
	if err != nil {
		t.Fatalf("failed to create test colony: %v", err)
	}
	return c
}

// NewTestBuilding erects a building of the given type in the colony.
func NewTestBuilding(t *testing.T, g *game.Game, c *colony.Colony, typeID string) *colony.Building {
	t.Helper()
	bt, err := g.Rules().BuildingType(typeID)
	if err != nil {
		t.Fatalf("unknown building type %s: %v", typeID, err)
	}
	b, err := colony.NewBuilding(g, c, bt)
	if err != nil {
		t.Fatalf("failed to create test building: %v", err)
	}
	return b
}

// NewTestUnit creates a unit of the given type on the colony tile.
func NewTestUnit(t *testing.T, g *game.Game, c *colony.Colony, typeID string) *colony.Unit {
	t.Helper()
	ut, err := g.Rules().UnitType(typeID)
	if err != nil {
		t.Fatalf("unknown unit type %s: %v", typeID, err)
	}
	u, err := colony.NewUnit(g, ut, c.Owner())
	if err != nil {
		t.Fatalf("failed to create test unit: %v", err)
	}
	c.ReceiveUnit(u)
	return u
}
