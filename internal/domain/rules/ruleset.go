package rules

import (
	"fmt"
	"sort"

	"github.com/mvaldes/colonia-go/internal/domain/goods"
)

// Ruleset is the read-only type/specification system: every goods, unit and
// building type in play, the expert-for-goods index, and global boolean
// options. Built once at startup and shared by all game objects.
type Ruleset struct {
	goodsTypes    map[string]*goods.Type
	unitTypes     map[string]*UnitType
	buildingTypes map[string]*BuildingType
	experts       map[string]*UnitType
	options       map[string]bool
}

func NewRuleset() *Ruleset {
	return &Ruleset{
		goodsTypes:    make(map[string]*goods.Type),
		unitTypes:     make(map[string]*UnitType),
		buildingTypes: make(map[string]*BuildingType),
		experts:       make(map[string]*UnitType),
		options:       make(map[string]bool),
	}
}

func (r *Ruleset) AddGoodsType(t *goods.Type) error {
	if _, exists := r.goodsTypes[t.ID()]; exists {
		return fmt.Errorf("goods type %s already registered", t.ID())
	}
	r.goodsTypes[t.ID()] = t
	return nil
}

func (r *Ruleset) AddUnitType(t *UnitType) error {
	if _, exists := r.unitTypes[t.ID()]; exists {
		return fmt.Errorf("unit type %s already registered", t.ID())
	}
	r.unitTypes[t.ID()] = t
	if expert := t.ExpertOutput(); expert != nil {
		r.experts[expert.ID()] = t
	}
	return nil
}

func (r *Ruleset) AddBuildingType(t *BuildingType) error {
	if _, exists := r.buildingTypes[t.ID()]; exists {
		return fmt.Errorf("building type %s already registered", t.ID())
	}
	r.buildingTypes[t.ID()] = t
	return nil
}

func (r *Ruleset) GoodsType(id string) (*goods.Type, error) {
	t, ok := r.goodsTypes[id]
	if !ok {
		return nil, &UnknownTypeError{Kind: "goods", ID: id}
	}
	return t, nil
}

func (r *Ruleset) UnitType(id string) (*UnitType, error) {
	t, ok := r.unitTypes[id]
	if !ok {
		return nil, &UnknownTypeError{Kind: "unit", ID: id}
	}
	return t, nil
}

func (r *Ruleset) BuildingType(id string) (*BuildingType, error) {
	t, ok := r.buildingTypes[id]
	if !ok {
		return nil, &UnknownTypeError{Kind: "building", ID: id}
	}
	return t, nil
}

// BuildingTypes returns every registered building type sorted by id.
func (r *Ruleset) BuildingTypes() []*BuildingType {
	ids := make([]string, 0, len(r.buildingTypes))
	for id := range r.buildingTypes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	types := make([]*BuildingType, 0, len(ids))
	for _, id := range ids {
		types = append(types, r.buildingTypes[id])
	}
	return types
}

// ExpertForProducing returns the unit type that is the expert producer of
// the given goods type, or nil when none is declared.
func (r *Ruleset) ExpertForProducing(g *goods.Type) *UnitType {
	if g == nil {
		return nil
	}
	return r.experts[g.ID()]
}

// Boolean reads a global game option; unset options are false.
func (r *Ruleset) Boolean(option string) bool { return r.options[option] }

func (r *Ruleset) SetBoolean(option string, value bool) { r.options[option] = value }
