package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvaldes/colonia-go/internal/domain/rules"
)

func TestApplyModifiers_FixedKindOrder(t *testing.T) {
	// Declared out of order on purpose: percentage, additive, multiplicative.
	mods := []rules.Modifier{
		rules.NewModifier("shop", rules.KindPercentage, 50),
		rules.NewModifier("road", rules.KindAdditive, 1),
		rules.NewModifier("expert", rules.KindMultiplicative, 2),
	}

	// (3 + 1) * 2 = 8, then +50% = 12.
	assert.Equal(t, 12.0, rules.ApplyModifiers(3, 0, mods))
}

func TestApplyModifiers_StableWithinKind(t *testing.T) {
	mods := []rules.Modifier{
		rules.NewModifier("a", rules.KindAdditive, 2),
		rules.NewModifier("b", rules.KindAdditive, 3),
	}
	assert.Equal(t, 5.0, rules.ApplyModifiers(0, 0, mods))
}

func TestModifier_TurnWindow(t *testing.T) {
	m := rules.NewModifier("festival", rules.KindAdditive, 5).WithTurnRange(3, 6)

	assert.False(t, m.AppliesTo(2))
	assert.True(t, m.AppliesTo(3))
	assert.True(t, m.AppliesTo(6))
	assert.False(t, m.AppliesTo(7))

	// Out-of-window modifiers are skipped entirely.
	assert.Equal(t, 1.0, rules.ApplyModifiers(1, 10, []rules.Modifier{m}))
	assert.Equal(t, 6.0, rules.ApplyModifiers(1, 4, []rules.Modifier{m}))
}

func TestModifier_UnboundedAppliesAlways(t *testing.T) {
	m := rules.NewModifier("base", rules.KindMultiplicative, 3)
	assert.True(t, m.AppliesTo(0))
	assert.True(t, m.AppliesTo(10000))
}

func TestPercentage_RoundsTowardZeroThroughInt(t *testing.T) {
	mods := []rules.Modifier{rules.NewModifier("shop", rules.KindPercentage, 50)}
	// 3 +50% = 4.5; production code truncates via int().
	assert.Equal(t, 4, int(rules.ApplyModifiers(3, 0, mods)))
}

func TestBuildingType_BreedingConstants(t *testing.T) {
	bt, err := rules.NewBuildingType("stable", 1, 0)
	assert.NoError(t, err)
	bt.AddModifier(rules.ModifierBreedingDivisor, rules.NewModifier("stable", rules.KindAdditive, 5))
	bt.AddModifier(rules.ModifierBreedingFactor, rules.NewModifier("stable", rules.KindAdditive, 1))

	assert.Equal(t, 5, bt.BreedingDivisor())
	assert.Equal(t, 1, bt.BreedingFactor())
}

func TestRuleset_UnknownTypeLookups(t *testing.T) {
	r := rules.NewRuleset()

	_, err := r.GoodsType("unobtainium")
	var unknown *rules.UnknownTypeError
	assert.ErrorAs(t, err, &unknown)
	assert.Equal(t, "goods", unknown.Kind)

	_, err = r.UnitType("nobody")
	assert.ErrorAs(t, err, &unknown)
	_, err = r.BuildingType("nowhere")
	assert.ErrorAs(t, err, &unknown)
}

func TestClassicRuleset_ExpertIndex(t *testing.T) {
	r := rules.ClassicRuleset()

	tools, err := r.GoodsType(rules.GoodsTools)
	assert.NoError(t, err)
	expert := r.ExpertForProducing(tools)
	assert.NotNil(t, expert)
	assert.Equal(t, rules.UnitMasterBlacksmith, expert.ID())

	grain, err := r.GoodsType(rules.GoodsGrain)
	assert.NoError(t, err)
	assert.Nil(t, r.ExpertForProducing(grain))
}
