package colony

import "github.com/mvaldes/colonia-go/internal/domain/rules"

// FeatureContainer aggregates the abilities and modifiers that building
// types contribute to their colony. Contributions are tracked per source so
// a type change can revoke exactly what the old type granted.
type FeatureContainer struct {
	abilities map[string]int
	modifiers map[string][]rules.Modifier
}

func NewFeatureContainer() *FeatureContainer {
	return &FeatureContainer{
		abilities: make(map[string]int),
		modifiers: make(map[string][]rules.Modifier),
	}
}

// AddFeatures absorbs a building type's abilities and modifiers.
func (f *FeatureContainer) AddFeatures(t *rules.BuildingType) {
	if t == nil {
		return
	}
	for _, id := range t.Abilities() {
		f.abilities[id]++
	}
	for id, mods := range t.AllModifiers() {
		f.modifiers[id] = append(f.modifiers[id], mods...)
	}
}

// RemoveFeatures revokes a building type's contributions. Modifiers are
// matched by their source id.
func (f *FeatureContainer) RemoveFeatures(t *rules.BuildingType) {
	if t == nil {
		return
	}
	for _, id := range t.Abilities() {
		if f.abilities[id] > 0 {
			f.abilities[id]--
			if f.abilities[id] == 0 {
				delete(f.abilities, id)
			}
		}
	}
	for id, mods := range t.AllModifiers() {
		remaining := f.modifiers[id][:0]
		removed := 0
		for _, m := range f.modifiers[id] {
			if removed < len(mods) && m.Source() == t.ID() {
				removed++
				continue
			}
			remaining = append(remaining, m)
		}
		if len(remaining) == 0 {
			delete(f.modifiers, id)
		} else {
			f.modifiers[id] = remaining
		}
	}
}

// HasAbility reports whether any contributing source grants the ability.
func (f *FeatureContainer) HasAbility(id string) bool {
	return f.abilities[id] > 0
}

// Modifiers returns the aggregated modifiers for an id in effect at turn.
func (f *FeatureContainer) Modifiers(id string, turn rules.Turn) []rules.Modifier {
	var mods []rules.Modifier
	for _, m := range f.modifiers[id] {
		if m.AppliesTo(turn) {
			mods = append(mods, m)
		}
	}
	return mods
}
