package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/mvaldes/colonia-go/internal/domain/colony"
	"github.com/mvaldes/colonia-go/internal/domain/game"
	"github.com/mvaldes/colonia-go/internal/domain/goods"
	"github.com/mvaldes/colonia-go/internal/domain/player"
	"github.com/mvaldes/colonia-go/internal/domain/rules"
)

// productionContext drives the warehouse/production scenarios against the
// real domain model over the classic ruleset.
type productionContext struct {
	game     *game.Game
	colony   *colony.Colony
	building *colony.Building
	report   *goods.ProductionReport
	err      error
}

func (ctx *productionContext) reset() error {
	g, err := game.New(rules.ClassicRuleset(), game.NewSequenceGenerator())
	if err != nil {
		return err
	}
	p, err := player.New(g.NextID("player"), "Aurora")
	if err != nil {
		return err
	}
	c, err := colony.New(g, "Jamestown", p)
	if err != nil {
		return err
	}
	ctx.game = g
	ctx.colony = c
	ctx.building = nil
	ctx.report = nil
	ctx.err = nil
	return nil
}

// Given steps

func (ctx *productionContext) theWarehouseHolds(amount int, goodsID string) error {
	t, err := ctx.game.Rules().GoodsType(goodsID)
	if err != nil {
		return err
	}
	ctx.colony.AddGoods(goods.StackOf(t, amount))
	return nil
}

func (ctx *productionContext) theWarehouseCapacityIs(capacity int) error {
	ctx.colony.SetWarehouseCapacity(capacity)
	return nil
}

func (ctx *productionContext) aBuilding(typeID string) error {
	bt, err := ctx.game.Rules().BuildingType(typeID)
	if err != nil {
		return err
	}
	ctx.building, err = colony.NewBuilding(ctx.game, ctx.colony, bt)
	return err
}

func (ctx *productionContext) workersOfType(count int, unitTypeID string) error {
	if ctx.building == nil {
		return fmt.Errorf("no building declared yet")
	}
	ut, err := ctx.game.Rules().UnitType(unitTypeID)
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		u, err := colony.NewUnit(ctx.game, ut, ctx.colony.Owner())
		if err != nil {
			return err
		}
		ctx.colony.ReceiveUnit(u)
		if err := ctx.building.Add(u); err != nil {
			return err
		}
	}
	return nil
}

// When steps

func (ctx *productionContext) theProductionReportIsComputed() error {
	ctx.report, ctx.err = ctx.colony.ProductionReportFor(ctx.building)
	return nil
}

// Then steps

func (ctx *productionContext) requireReport() error {
	if ctx.err != nil {
		return fmt.Errorf("production failed: %w", ctx.err)
	}
	if ctx.report == nil {
		return fmt.Errorf("no production report computed yet")
	}
	return nil
}

func findAmount(stacks []goods.Stack, goodsID string) (int, bool) {
	for _, s := range stacks {
		if s.Type().ID() == goodsID {
			return s.Amount(), true
		}
	}
	return 0, false
}

func assertAmount(stacks []goods.Stack, goodsID string, expected int, what string) error {
	amount, ok := findAmount(stacks, goodsID)
	if !ok {
		return fmt.Errorf("no %s entry for %s", what, goodsID)
	}
	if amount != expected {
		return fmt.Errorf("expected %s of %d %s, got %d", what, expected, goodsID, amount)
	}
	return nil
}

func (ctx *productionContext) theBuildingProduces(amount int, goodsID string) error {
	if err := ctx.requireReport(); err != nil {
		return err
	}
	return assertAmount(ctx.report.Production(), goodsID, amount, "production")
}

func (ctx *productionContext) theBuildingConsumes(amount int, goodsID string) error {
	if err := ctx.requireReport(); err != nil {
		return err
	}
	return assertAmount(ctx.report.Consumption(), goodsID, amount, "consumption")
}

func (ctx *productionContext) theMaximumProductionIs(amount int, goodsID string) error {
	if err := ctx.requireReport(); err != nil {
		return err
	}
	return assertAmount(ctx.report.MaximumProduction(), goodsID, amount, "maximum production")
}

func (ctx *productionContext) nothingIsProducedOrConsumed() error {
	if err := ctx.requireReport(); err != nil {
		return err
	}
	if !ctx.report.Empty() {
		return fmt.Errorf("expected an empty report, got production %v consumption %v",
			ctx.report.Production(), ctx.report.Consumption())
	}
	return nil
}

// InitializeProductionScenario registers the production step definitions.
func InitializeProductionScenario(sc *godog.ScenarioContext) {
	ctx := &productionContext{}

	sc.Before(func(gCtx context.Context, sc *godog.Scenario) (context.Context, error) {
		return gCtx, ctx.reset()
	})

	sc.Step(`^the warehouse holds (\d+) "([^"]*)"$`, ctx.theWarehouseHolds)
	sc.Step(`^the warehouse capacity is (\d+)$`, ctx.theWarehouseCapacityIs)
	sc.Step(`^a "([^"]*)" building$`, ctx.aBuilding)
	sc.Step(`^(\d+) "([^"]*)" workers? in the building$`, ctx.workersOfType)
	sc.Step(`^the production report is computed$`, ctx.theProductionReportIsComputed)
	sc.Step(`^the building produces (\d+) "([^"]*)"$`, ctx.theBuildingProduces)
	sc.Step(`^the building consumes (\d+) "([^"]*)"$`, ctx.theBuildingConsumes)
	sc.Step(`^the maximum production is (\d+) "([^"]*)"$`, ctx.theMaximumProductionIs)
	sc.Step(`^nothing is produced or consumed$`, ctx.nothingIsProducedOrConsumed)
}
