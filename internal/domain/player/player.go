package player

import (
	"fmt"

	"github.com/mvaldes/colonia-go/internal/domain/rules"
)

// Owned is implemented by anything that belongs to a player.
type Owned interface {
	OwnerID() string
}

// Player is a nation in play. National advantages are carried as modifier
// sets that feed into production modifier assembly.
type Player struct {
	id        string
	name      string
	modifiers map[string][]rules.Modifier
}

func New(id, name string) (*Player, error) {
	if id == "" {
		return nil, fmt.Errorf("player id cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("player name cannot be empty")
	}
	return &Player{
		id:        id,
		name:      name,
		modifiers: make(map[string][]rules.Modifier),
	}, nil
}

func (p *Player) ID() string { return p.id }

func (p *Player) Name() string { return p.name }

// AddModifier registers a national production modifier for a goods type.
func (p *Player) AddModifier(goodsID string, m rules.Modifier) {
	p.modifiers[goodsID] = append(p.modifiers[goodsID], m)
}

// Modifiers returns the player's modifiers for a goods type in effect at the
// given turn.
func (p *Player) Modifiers(goodsID string, turn rules.Turn) []rules.Modifier {
	var mods []rules.Modifier
	for _, m := range p.modifiers[goodsID] {
		if m.AppliesTo(turn) {
			mods = append(mods, m)
		}
	}
	return mods
}

// Owns reports whether the given object belongs to this player.
func (p *Player) Owns(o Owned) bool {
	return o != nil && o.OwnerID() == p.id
}
