package rules

import (
	"fmt"

	"github.com/mvaldes/colonia-go/internal/domain/goods"
)

// UnitType describes a category of unit: its skill level, the goods it is an
// expert at producing (if any), and its production modifiers per goods type.
type UnitType struct {
	id           string
	skill        int
	expertOutput *goods.Type
	modifiers    map[string][]Modifier
}

func NewUnitType(id string, skill int) (*UnitType, error) {
	if id == "" {
		return nil, fmt.Errorf("unit type id cannot be empty")
	}
	if skill < 0 {
		return nil, fmt.Errorf("unit type skill cannot be negative, got %d", skill)
	}
	return &UnitType{
		id:        id,
		skill:     skill,
		modifiers: make(map[string][]Modifier),
	}, nil
}

func (t *UnitType) ID() string { return t.id }

func (t *UnitType) Skill() int { return t.skill }

// ExpertOutput returns the goods type this unit is an expert at producing,
// or nil for non-experts.
func (t *UnitType) ExpertOutput() *goods.Type { return t.expertOutput }

// MakeExpertAt declares this unit type the expert producer of g. Called
// during ruleset assembly only.
func (t *UnitType) MakeExpertAt(g *goods.Type) {
	t.expertOutput = g
}

// AddModifier registers a production modifier for a goods type. Called
// during ruleset assembly only.
func (t *UnitType) AddModifier(goodsID string, m Modifier) {
	t.modifiers[goodsID] = append(t.modifiers[goodsID], m)
}

// Modifiers returns this unit type's production modifiers for a goods type
// in effect at the given turn.
func (t *UnitType) Modifiers(goodsID string, turn Turn) []Modifier {
	var mods []Modifier
	for _, m := range t.modifiers[goodsID] {
		if m.AppliesTo(turn) {
			mods = append(mods, m)
		}
	}
	return mods
}
