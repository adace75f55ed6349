package colony_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaldes/colonia-go/internal/domain/colony"
	"github.com/mvaldes/colonia-go/internal/domain/goods"
	"github.com/mvaldes/colonia-go/internal/domain/rules"
	"github.com/mvaldes/colonia-go/test/helpers"
)

func stock(t *testing.T, c *colony.Colony, goodsID string, amount int) {
	t.Helper()
	gt, err := c.Game().Rules().GoodsType(goodsID)
	require.NoError(t, err)
	c.AddGoods(goods.StackOf(gt, amount))
}

func reportFor(t *testing.T, c *colony.Colony, b *colony.Building) *goods.ProductionReport {
	t.Helper()
	report, err := c.ProductionReportFor(b)
	require.NoError(t, err)
	return report
}

func single(t *testing.T, stacks []goods.Stack) goods.Stack {
	t.Helper()
	require.Len(t, stacks, 1)
	return stacks[0]
}

func TestBuilding_AdjustedProduction_WorkersConvertInput(t *testing.T) {
	g := helpers.NewTestGame(t)
	c := helpers.NewTestColony(t, g, "jamestown")
	hut := helpers.NewTestBuilding(t, g, c, rules.BuildingBlacksmithHut)
	for i := 0; i < 2; i++ {
		u := helpers.NewTestUnit(t, g, c, rules.UnitColonist)
		require.NoError(t, hut.Add(u))
	}
	stock(t, c, rules.GoodsOre, 10)

	report := reportFor(t, c, hut)

	produced := single(t, report.Production())
	assert.Equal(t, rules.GoodsTools, produced.Type().ID())
	assert.Equal(t, 6, produced.Amount())

	consumed := single(t, report.Consumption())
	assert.Equal(t, rules.GoodsOre, consumed.Type().ID())
	assert.Equal(t, 6, consumed.Amount())

	// Unconstrained production carries no maximum entries.
	assert.Empty(t, report.MaximumProduction())
	assert.Empty(t, report.MaximumConsumption())
}

func TestBuilding_AdjustedProduction_InputShortageReportsMaxima(t *testing.T) {
	g := helpers.NewTestGame(t)
	c := helpers.NewTestColony(t, g, "jamestown")
	hut := helpers.NewTestBuilding(t, g, c, rules.BuildingBlacksmithHut)
	for i := 0; i < 2; i++ {
		u := helpers.NewTestUnit(t, g, c, rules.UnitColonist)
		require.NoError(t, hut.Add(u))
	}
	stock(t, c, rules.GoodsOre, 4)

	report := reportFor(t, c, hut)

	assert.Equal(t, 4, single(t, report.Production()).Amount())
	assert.Equal(t, 4, single(t, report.Consumption()).Amount())
	assert.Equal(t, 6, single(t, report.MaximumProduction()).Amount())
	assert.Equal(t, 6, single(t, report.MaximumConsumption()).Amount())
}

func TestBuilding_AdjustedProduction_NoInputGoods(t *testing.T) {
	g := helpers.NewTestGame(t)
	c := helpers.NewTestColony(t, g, "jamestown")
	farm := helpers.NewTestBuilding(t, g, c, rules.BuildingFarm)
	u := helpers.NewTestUnit(t, g, c, rules.UnitColonist)
	require.NoError(t, farm.Add(u))

	report := reportFor(t, c, farm)

	produced := single(t, report.Production())
	assert.Equal(t, rules.GoodsGrain, produced.Type().ID())
	assert.Equal(t, 3, produced.Amount())
	assert.Empty(t, report.Consumption())
}

func TestBuilding_AdjustedProduction_NoWorkersNoOutput(t *testing.T) {
	g := helpers.NewTestGame(t)
	c := helpers.NewTestColony(t, g, "jamestown")
	hut := helpers.NewTestBuilding(t, g, c, rules.BuildingBlacksmithHut)
	stock(t, c, rules.GoodsOre, 10)

	report := reportFor(t, c, hut)
	assert.True(t, report.Empty())
}

func TestBuilding_AdjustedProduction_WrongOutputType(t *testing.T) {
	g := helpers.NewTestGame(t)
	c := helpers.NewTestColony(t, g, "jamestown")
	hut := helpers.NewTestBuilding(t, g, c, rules.BuildingBlacksmithHut)

	ore, err := g.Rules().GoodsType(rules.GoodsOre)
	require.NoError(t, err)
	wrong := goods.StackOf(ore, 0)

	_, err = hut.AdjustedProduction(&wrong, []goods.Stack{goods.StackOf(ore, 5)})
	var wrongType *colony.WrongOutputTypeError
	require.ErrorAs(t, err, &wrongType)
	assert.Equal(t, rules.GoodsTools, wrongType.Expected)
	assert.Equal(t, rules.GoodsOre, wrongType.Got)
}

func TestBuilding_AdjustedProduction_MissingInputEntry(t *testing.T) {
	g := helpers.NewTestGame(t)
	c := helpers.NewTestColony(t, g, "jamestown")
	hut := helpers.NewTestBuilding(t, g, c, rules.BuildingBlacksmithHut)

	_, err := hut.AdjustedProduction(nil, nil)
	var missing *colony.MissingInputError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, rules.GoodsOre, missing.GoodsType)
}

func TestBuilding_Breeding_HerdGrowsFromStock(t *testing.T) {
	g := helpers.NewTestGame(t)
	c := helpers.NewTestColony(t, g, "jamestown")
	stable := helpers.NewTestBuilding(t, g, c, rules.BuildingStable)
	stock(t, c, rules.GoodsHorses, 11)
	stock(t, c, rules.GoodsGrain, 10)

	report := reportFor(t, c, stable)

	// 11 horses, divisor 5, factor 1: ((11-1)/5 + 1) * 1 = 3 foals.
	produced := single(t, report.Production())
	assert.Equal(t, rules.GoodsHorses, produced.Type().ID())
	assert.Equal(t, 3, produced.Amount())

	consumed := single(t, report.Consumption())
	assert.Equal(t, rules.GoodsGrain, consumed.Type().ID())
	assert.Equal(t, 3, consumed.Amount())
}

func TestBuilding_Breeding_BelowThresholdProducesNothing(t *testing.T) {
	g := helpers.NewTestGame(t)
	c := helpers.NewTestColony(t, g, "jamestown")
	stable := helpers.NewTestBuilding(t, g, c, rules.BuildingStable)
	stock(t, c, rules.GoodsHorses, 1)
	stock(t, c, rules.GoodsGrain, 10)

	report := reportFor(t, c, stable)
	assert.True(t, report.Empty())
}

func TestBuilding_AvoidExcess_FullWarehouseShortCircuits(t *testing.T) {
	g := helpers.NewTestGame(t)
	c := helpers.NewTestColony(t, g, "jamestown")
	stable := helpers.NewTestBuilding(t, g, c, rules.BuildingStable)
	stock(t, c, rules.GoodsHorses, colony.DefaultWarehouseCapacity)
	stock(t, c, rules.GoodsGrain, 10)

	report := reportFor(t, c, stable)
	assert.True(t, report.Empty())
}

func TestBuilding_AvoidExcess_ClampsToRemainingCapacity(t *testing.T) {
	g := helpers.NewTestGame(t)
	c := helpers.NewTestColony(t, g, "jamestown")
	c.SetWarehouseCapacity(12)
	stable := helpers.NewTestBuilding(t, g, c, rules.BuildingStable)
	stock(t, c, rules.GoodsHorses, 11)
	stock(t, c, rules.GoodsGrain, 10)

	report := reportFor(t, c, stable)

	produced := single(t, report.Production())
	assert.Equal(t, 1, produced.Amount())
	assert.LessOrEqual(t, 11+produced.Amount(), 12)

	// Clamping pulls the maxima down with the actuals.
	assert.Empty(t, report.MaximumProduction())
	assert.Empty(t, report.MaximumConsumption())
	assert.Equal(t, 1, single(t, report.Consumption()).Amount())
}

func TestBuilding_ExpertConnections_ConsumptionMayExceedStock(t *testing.T) {
	g := helpers.NewTestGame(t)
	c := helpers.NewTestColony(t, g, "jamestown")
	factory := helpers.NewTestBuilding(t, g, c, rules.BuildingToolsFactory)
	expert := helpers.NewTestUnit(t, g, c, rules.UnitMasterBlacksmith)
	require.NoError(t, factory.Add(expert))
	stock(t, c, rules.GoodsOre, 2)

	report := reportFor(t, c, factory)

	// The expert's connections guarantee 4 ore of input even though the
	// warehouse holds 2; the deficit is tolerated.
	consumed := single(t, report.Consumption())
	assert.Equal(t, rules.GoodsOre, consumed.Type().ID())
	assert.Equal(t, 4, consumed.Amount())
	assert.Greater(t, consumed.Amount(), c.GoodsCount(consumed.Type()))

	// 4 ore through the factory's +100% bonus yields 8 tools.
	assert.Equal(t, 8, single(t, report.Production()).Amount())
	assert.Equal(t, 24, single(t, report.MaximumProduction()).Amount())
	assert.Equal(t, 12, single(t, report.MaximumConsumption()).Amount())
}

func TestBuilding_Add_CapacityRefusal(t *testing.T) {
	g := helpers.NewTestGame(t)
	c := helpers.NewTestColony(t, g, "jamestown")
	hut := helpers.NewTestBuilding(t, g, c, rules.BuildingBlacksmithHut)

	for i := 0; i < 2; i++ {
		u := helpers.NewTestUnit(t, g, c, rules.UnitColonist)
		require.NoError(t, hut.Add(u))
	}
	extra := helpers.NewTestUnit(t, g, c, rules.UnitColonist)

	err := hut.Add(extra)
	var admission *colony.AdmissionError
	require.ErrorAs(t, err, &admission)
	assert.Equal(t, colony.ReasonCapacityFull, admission.Reason)
	assert.Equal(t, 2, hut.UnitCount())
}

func TestBuilding_Add_SkillRefusal(t *testing.T) {
	g := helpers.NewTestGame(t)
	c := helpers.NewTestColony(t, g, "jamestown")

	academy, err := rules.NewBuildingType("academy", 1, 3)
	require.NoError(t, err)
	academy.SetRequiredSkill(2)
	b, err := colony.NewBuilding(g, c, academy)
	require.NoError(t, err)

	novice := helpers.NewTestUnit(t, g, c, rules.UnitColonist)
	err = b.Add(novice)
	var admission *colony.AdmissionError
	require.ErrorAs(t, err, &admission)
	assert.Equal(t, colony.ReasonMissingSkill, admission.Reason)

	master := helpers.NewTestUnit(t, g, c, rules.UnitMasterBlacksmith)
	require.NoError(t, b.Add(master))
}

func TestBuilding_Add_IsIdempotent(t *testing.T) {
	g := helpers.NewTestGame(t)
	c := helpers.NewTestColony(t, g, "jamestown")
	hut := helpers.NewTestBuilding(t, g, c, rules.BuildingBlacksmithHut)
	u := helpers.NewTestUnit(t, g, c, rules.UnitColonist)

	require.NoError(t, hut.Add(u))
	require.NoError(t, hut.Add(u))
	assert.Equal(t, 1, hut.UnitCount())
}

func TestBuilding_Add_MovesUnitOffTheTile(t *testing.T) {
	g := helpers.NewTestGame(t)
	c := helpers.NewTestColony(t, g, "jamestown")
	hut := helpers.NewTestBuilding(t, g, c, rules.BuildingBlacksmithHut)
	u := helpers.NewTestUnit(t, g, c, rules.UnitColonist)

	require.NoError(t, hut.Add(u))

	assert.Equal(t, colony.UnitStateInColony, u.State())
	assert.Equal(t, rules.GoodsTools, u.WorkType().ID())
	assert.Equal(t, hut.ID(), u.Location().ID())
	assert.Empty(t, c.Tile().Units())
}

func TestBuilding_Remove(t *testing.T) {
	g := helpers.NewTestGame(t)
	c := helpers.NewTestColony(t, g, "jamestown")
	hut := helpers.NewTestBuilding(t, g, c, rules.BuildingBlacksmithHut)
	u := helpers.NewTestUnit(t, g, c, rules.UnitColonist)
	require.NoError(t, hut.Add(u))

	require.NoError(t, hut.Remove(u))
	assert.Equal(t, colony.UnitStateActive, u.State())
	assert.Equal(t, 0, u.MovesLeft())
	assert.Len(t, c.Tile().Units(), 1)

	// Removing again is a no-op; removing nil is a logic error.
	require.NoError(t, hut.Remove(u))
	assert.Error(t, hut.Remove(nil))
}

func TestBuilding_Upgrade_ConsumesBuildCost(t *testing.T) {
	g := helpers.NewTestGame(t)
	c := helpers.NewTestColony(t, g, "jamestown")
	hut := helpers.NewTestBuilding(t, g, c, rules.BuildingBlacksmithHut)
	stock(t, c, rules.GoodsTools, 20)

	require.True(t, hut.Upgrade())
	assert.Equal(t, rules.BuildingBlacksmithShop, hut.Type().ID())
	assert.Equal(t, 2, hut.Level())

	tools, err := g.Rules().GoodsType(rules.GoodsTools)
	require.NoError(t, err)
	assert.Equal(t, 4, c.GoodsCount(tools))
}

func TestBuilding_Upgrade_RefusedWithoutGoods(t *testing.T) {
	g := helpers.NewTestGame(t)
	c := helpers.NewTestColony(t, g, "jamestown")
	hut := helpers.NewTestBuilding(t, g, c, rules.BuildingBlacksmithHut)
	stock(t, c, rules.GoodsTools, 5)

	assert.False(t, hut.Upgrade())
	assert.Equal(t, rules.BuildingBlacksmithHut, hut.Type().ID())

	tools, err := g.Rules().GoodsType(rules.GoodsTools)
	require.NoError(t, err)
	assert.Equal(t, 5, c.GoodsCount(tools))
}

func TestBuilding_Downgrade_EvictsOverflowInOrder(t *testing.T) {
	g := helpers.NewTestGame(t)
	c := helpers.NewTestColony(t, g, "jamestown")
	shop := helpers.NewTestBuilding(t, g, c, rules.BuildingBlacksmithShop)

	workers := make([]*colony.Unit, 3)
	for i := range workers {
		workers[i] = helpers.NewTestUnit(t, g, c, rules.UnitColonist)
		require.NoError(t, shop.Add(workers[i]))
	}

	require.True(t, shop.Downgrade())
	assert.Equal(t, rules.BuildingBlacksmithHut, shop.Type().ID())

	// The hut holds two; the first two assignments survive in order.
	require.Equal(t, 2, shop.UnitCount())
	assert.Same(t, workers[0], shop.Units()[0])
	assert.Same(t, workers[1], shop.Units()[1])
	assert.Equal(t, colony.UnitStateActive, workers[2].State())
	assert.Len(t, c.Tile().Units(), 1)
}

func TestBuilding_Downgrade_RefusedForAutoBuiltAndGroundLevel(t *testing.T) {
	g := helpers.NewTestGame(t)
	c := helpers.NewTestColony(t, g, "jamestown")

	townHall := helpers.NewTestBuilding(t, g, c, rules.BuildingTownHall)
	assert.False(t, townHall.Downgrade())

	hut := helpers.NewTestBuilding(t, g, c, rules.BuildingBlacksmithHut)
	assert.False(t, hut.Downgrade())
	assert.Equal(t, rules.BuildingBlacksmithHut, hut.Type().ID())
}

func TestBuilding_NoAddReason(t *testing.T) {
	g := helpers.NewTestGame(t)
	c := helpers.NewTestColony(t, g, "jamestown")
	hut := helpers.NewTestBuilding(t, g, c, rules.BuildingBlacksmithHut)
	u := helpers.NewTestUnit(t, g, c, rules.UnitColonist)

	assert.Equal(t, colony.ReasonNone, hut.NoAddReason(u))
	assert.Equal(t, colony.ReasonNotWorkable, hut.NoAddReason(nil))
}

func TestBuilding_AdmissionErrorMessage(t *testing.T) {
	g := helpers.NewTestGame(t)
	c := helpers.NewTestColony(t, g, "jamestown")
	hut := helpers.NewTestBuilding(t, g, c, rules.BuildingBlacksmithHut)
	for i := 0; i < 2; i++ {
		require.NoError(t, hut.Add(helpers.NewTestUnit(t, g, c, rules.UnitColonist)))
	}
	extra := helpers.NewTestUnit(t, g, c, rules.UnitColonist)

	err := hut.Add(extra)
	require.Error(t, err)
	assert.True(t, errors.As(err, new(*colony.AdmissionError)))
	assert.Contains(t, err.Error(), extra.ID())
}
