package rules

import "sort"

// Turn is a point in simulated time. Turn 0 is the first turn.
type Turn int

// ModifierKind determines both the arithmetic a modifier performs and its
// position in the fixed application order.
type ModifierKind int

const (
	KindAdditive ModifierKind = iota
	KindMultiplicative
	KindPercentage
)

func (k ModifierKind) String() string {
	switch k {
	case KindAdditive:
		return "additive"
	case KindMultiplicative:
		return "multiplicative"
	case KindPercentage:
		return "percentage"
	}
	return "unknown"
}

// Modifier is a typed adjustment to a base numeric value, scoped by the id
// it is registered under and optionally by a turn validity window.
type Modifier struct {
	source    string
	kind      ModifierKind
	value     float64
	firstTurn Turn
	lastTurn  Turn
	bounded   bool
}

// NewModifier creates a modifier valid for all turns.
func NewModifier(source string, kind ModifierKind, value float64) Modifier {
	return Modifier{source: source, kind: kind, value: value}
}

// WithTurnRange returns a copy restricted to [first, last] inclusive.
func (m Modifier) WithTurnRange(first, last Turn) Modifier {
	m.firstTurn = first
	m.lastTurn = last
	m.bounded = true
	return m
}

func (m Modifier) Source() string     { return m.source }
func (m Modifier) Kind() ModifierKind { return m.kind }
func (m Modifier) Value() float64     { return m.value }

// AppliesTo reports whether the modifier is in effect at the given turn.
func (m Modifier) AppliesTo(turn Turn) bool {
	if !m.bounded {
		return true
	}
	return turn >= m.firstTurn && turn <= m.lastTurn
}

// Apply adjusts a single base value.
func (m Modifier) Apply(base float64) float64 {
	switch m.kind {
	case KindAdditive:
		return base + m.value
	case KindMultiplicative:
		return base * m.value
	case KindPercentage:
		return base + (base*m.value)/100
	}
	return base
}

// ApplyModifiers adjusts base by every modifier in effect at turn. The
// application order is fixed: additive, then multiplicative, then
// percentage; modifiers of the same kind keep their given order.
func ApplyModifiers(base float64, turn Turn, mods []Modifier) float64 {
	ordered := make([]Modifier, 0, len(mods))
	for _, m := range mods {
		if m.AppliesTo(turn) {
			ordered = append(ordered, m)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].kind < ordered[j].kind
	})

	result := base
	for _, m := range ordered {
		result = m.Apply(result)
	}
	return result
}
