package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mvaldes/colonia-go/internal/adapters/persistence"
	"github.com/mvaldes/colonia-go/internal/application/colony/commands"
	"github.com/mvaldes/colonia-go/internal/application/common"
	"github.com/mvaldes/colonia-go/internal/domain/colony"
	"github.com/mvaldes/colonia-go/internal/domain/game"
	"github.com/mvaldes/colonia-go/internal/domain/goods"
	"github.com/mvaldes/colonia-go/internal/domain/rules"
	"github.com/mvaldes/colonia-go/test/helpers"
)

type appFixture struct {
	db       *gorm.DB
	game     *game.Game
	colonies *persistence.GormColonyRepository
	mediator common.Mediator
	colony   *colony.Colony
	worker   *colony.Unit
	hut      *colony.Building
}

func newAppFixture(t *testing.T) *appFixture {
	t.Helper()
	db := helpers.NewTestDB(t)
	g, err := game.New(rules.ClassicRuleset(), game.NewSequenceGenerator())
	require.NoError(t, err)

	players := persistence.NewGormPlayerRepository(db)
	colonies := persistence.NewGormColonyRepository(db, g, players)
	state := persistence.NewGormGameStateRepository(db)

	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[commands.AssignWorkerCommand](m, commands.NewAssignWorkerHandler(colonies)))
	require.NoError(t, common.RegisterHandler[commands.WithdrawWorkerCommand](m, commands.NewWithdrawWorkerHandler(colonies)))
	require.NoError(t, common.RegisterHandler[commands.UpgradeBuildingCommand](m, commands.NewUpgradeBuildingHandler(colonies)))
	require.NoError(t, common.RegisterHandler[commands.DowngradeBuildingCommand](m, commands.NewDowngradeBuildingHandler(colonies)))
	require.NoError(t, common.RegisterHandler[commands.AdvanceTurnCommand](m, commands.NewAdvanceTurnHandler(g, colonies, state)))

	ctx := context.Background()
	p := helpers.NewTestPlayer(t, g, "Aurora")
	require.NoError(t, players.Save(ctx, p))
	c, err := colony.New(g, "Jamestown", p)
	require.NoError(t, err)
	hut := helpers.NewTestBuilding(t, g, c, rules.BuildingBlacksmithHut)
	worker := helpers.NewTestUnit(t, g, c, rules.UnitColonist)

	ore, err := g.Rules().GoodsType(rules.GoodsOre)
	require.NoError(t, err)
	c.AddGoods(goods.StackOf(ore, 10))
	require.NoError(t, colonies.Save(ctx, c))

	return &appFixture{db: db, game: g, colonies: colonies, mediator: m, colony: c, worker: worker, hut: hut}
}

func TestAssignWorkerCommand(t *testing.T) {
	f := newAppFixture(t)
	ctx := context.Background()

	response, err := f.mediator.Send(ctx, commands.AssignWorkerCommand{
		ColonyID:   f.colony.ID(),
		UnitID:     f.worker.ID(),
		BuildingID: rules.BuildingBlacksmithHut,
	})
	require.NoError(t, err)

	result := response.(commands.AssignWorkerResult)
	assert.Equal(t, f.worker.ID(), result.UnitID)
	assert.Equal(t, rules.GoodsTools, result.WorkType)
	assert.Equal(t, 1, f.hut.UnitCount())
}

func TestAssignWorkerCommand_AdmissionFailure(t *testing.T) {
	f := newAppFixture(t)
	ctx := context.Background()

	require.NoError(t, f.hut.Add(f.worker))
	second := helpers.NewTestUnit(t, f.game, f.colony, rules.UnitColonist)
	require.NoError(t, f.hut.Add(second))
	third := helpers.NewTestUnit(t, f.game, f.colony, rules.UnitColonist)
	require.NoError(t, f.colonies.Save(ctx, f.colony))

	_, err := f.mediator.Send(ctx, commands.AssignWorkerCommand{
		ColonyID:   f.colony.ID(),
		UnitID:     third.ID(),
		BuildingID: rules.BuildingBlacksmithHut,
	})
	var admission *colony.AdmissionError
	require.ErrorAs(t, err, &admission)
	assert.Equal(t, colony.ReasonCapacityFull, admission.Reason)
}

func TestWithdrawWorkerCommand(t *testing.T) {
	f := newAppFixture(t)
	ctx := context.Background()
	require.NoError(t, f.hut.Add(f.worker))
	require.NoError(t, f.colonies.Save(ctx, f.colony))

	response, err := f.mediator.Send(ctx, commands.WithdrawWorkerCommand{
		ColonyID: f.colony.ID(),
		UnitID:   f.worker.ID(),
	})
	require.NoError(t, err)

	result := response.(commands.WithdrawWorkerResult)
	assert.Equal(t, string(colony.UnitStateActive), result.State)
	assert.Equal(t, 0, f.hut.UnitCount())
}

func TestUpgradeBuildingCommand(t *testing.T) {
	f := newAppFixture(t)
	ctx := context.Background()

	tools, err := f.game.Rules().GoodsType(rules.GoodsTools)
	require.NoError(t, err)
	f.colony.AddGoods(goods.StackOf(tools, 16))
	require.NoError(t, f.colonies.Save(ctx, f.colony))

	response, err := f.mediator.Send(ctx, commands.UpgradeBuildingCommand{
		ColonyID:   f.colony.ID(),
		BuildingID: rules.BuildingBlacksmithHut,
	})
	require.NoError(t, err)

	result := response.(commands.ChangeBuildingLevelResult)
	assert.True(t, result.Changed)
	assert.Equal(t, rules.BuildingBlacksmithShop, result.TypeID)
	assert.Equal(t, 2, result.Level)
	assert.Equal(t, 0, f.colony.GoodsCount(tools))
}

func TestUpgradeBuildingCommand_RefusalIsNotAnError(t *testing.T) {
	f := newAppFixture(t)

	response, err := f.mediator.Send(context.Background(), commands.UpgradeBuildingCommand{
		ColonyID:   f.colony.ID(),
		BuildingID: rules.BuildingBlacksmithHut,
	})
	require.NoError(t, err)

	result := response.(commands.ChangeBuildingLevelResult)
	assert.False(t, result.Changed)
	assert.Equal(t, rules.BuildingBlacksmithHut, result.TypeID)
}

func TestDowngradeBuildingCommand(t *testing.T) {
	f := newAppFixture(t)
	ctx := context.Background()

	tools, err := f.game.Rules().GoodsType(rules.GoodsTools)
	require.NoError(t, err)
	f.colony.AddGoods(goods.StackOf(tools, 16))
	require.NoError(t, f.colonies.Save(ctx, f.colony))
	_, err = f.mediator.Send(ctx, commands.UpgradeBuildingCommand{
		ColonyID:   f.colony.ID(),
		BuildingID: rules.BuildingBlacksmithHut,
	})
	require.NoError(t, err)

	response, err := f.mediator.Send(ctx, commands.DowngradeBuildingCommand{
		ColonyID:   f.colony.ID(),
		BuildingID: rules.BuildingBlacksmithShop,
	})
	require.NoError(t, err)

	result := response.(commands.ChangeBuildingLevelResult)
	assert.True(t, result.Changed)
	assert.Equal(t, rules.BuildingBlacksmithHut, result.TypeID)
}

func TestAdvanceTurnCommand(t *testing.T) {
	f := newAppFixture(t)
	ctx := context.Background()
	require.NoError(t, f.hut.Add(f.worker))
	require.NoError(t, f.colonies.Save(ctx, f.colony))

	response, err := f.mediator.Send(ctx, commands.AdvanceTurnCommand{})
	require.NoError(t, err)

	result := response.(commands.AdvanceTurnResult)
	assert.Equal(t, 1, result.Turn)
	assert.Equal(t, 1, result.Colonies)

	tools, err := f.game.Rules().GoodsType(rules.GoodsTools)
	require.NoError(t, err)
	ore, err := f.game.Rules().GoodsType(rules.GoodsOre)
	require.NoError(t, err)
	assert.Equal(t, 3, f.colony.GoodsCount(tools))
	assert.Equal(t, 7, f.colony.GoodsCount(ore))
}
