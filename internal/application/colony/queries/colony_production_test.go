package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaldes/colonia-go/internal/adapters/persistence"
	"github.com/mvaldes/colonia-go/internal/application/colony/queries"
	"github.com/mvaldes/colonia-go/internal/application/common"
	"github.com/mvaldes/colonia-go/internal/domain/colony"
	"github.com/mvaldes/colonia-go/internal/domain/game"
	"github.com/mvaldes/colonia-go/internal/domain/goods"
	"github.com/mvaldes/colonia-go/internal/domain/rules"
	"github.com/mvaldes/colonia-go/test/helpers"
)

func TestColonyProductionQuery(t *testing.T) {
	db := helpers.NewTestDB(t)
	ctx := context.Background()

	g, err := game.New(rules.ClassicRuleset(), game.NewSequenceGenerator())
	require.NoError(t, err)
	players := persistence.NewGormPlayerRepository(db)
	colonies := persistence.NewGormColonyRepository(db, g, players)

	p := helpers.NewTestPlayer(t, g, "Aurora")
	require.NoError(t, players.Save(ctx, p))
	c, err := colony.New(g, "Jamestown", p)
	require.NoError(t, err)
	hut := helpers.NewTestBuilding(t, g, c, rules.BuildingBlacksmithHut)
	require.NoError(t, hut.Add(helpers.NewTestUnit(t, g, c, rules.UnitColonist)))
	ore, err := g.Rules().GoodsType(rules.GoodsOre)
	require.NoError(t, err)
	c.AddGoods(goods.StackOf(ore, 10))
	require.NoError(t, colonies.Save(ctx, c))

	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[queries.ColonyProductionQuery](m, queries.NewColonyProductionHandler(colonies)))

	response, err := m.Send(ctx, queries.ColonyProductionQuery{ColonyID: c.ID()})
	require.NoError(t, err)
	result := response.(queries.ColonyProductionResult)

	assert.Equal(t, "Jamestown", result.Name)
	assert.Equal(t, colony.DefaultWarehouseCapacity, result.Capacity)
	assert.Equal(t, 3, result.NetTotals[rules.GoodsTools])
	assert.Equal(t, -3, result.NetTotals[rules.GoodsOre])

	require.Len(t, result.Buildings, 1)
	report := result.Buildings[0]
	assert.Equal(t, rules.BuildingBlacksmithHut, report.TypeID)
	assert.Equal(t, 1, report.Workers)
	assert.Equal(t, 2, report.Capacity)
	require.Len(t, report.Production, 1)
	assert.Equal(t, queries.GoodsAmount{GoodsID: rules.GoodsTools, Amount: 3}, report.Production[0])
	require.Len(t, report.Consumption, 1)
	assert.Equal(t, queries.GoodsAmount{GoodsID: rules.GoodsOre, Amount: 3}, report.Consumption[0])

	require.Len(t, result.Stock, 1)
	assert.Equal(t, queries.GoodsAmount{GoodsID: rules.GoodsOre, Amount: 10}, result.Stock[0])
}
