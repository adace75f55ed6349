package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/mvaldes/colonia-go/internal/domain/colony"
	"github.com/mvaldes/colonia-go/internal/domain/game"
	"github.com/mvaldes/colonia-go/internal/domain/goods"
	"github.com/mvaldes/colonia-go/internal/domain/player"
	"github.com/mvaldes/colonia-go/internal/domain/rules"
)

// workforceContext drives worker admission and building level scenarios.
type workforceContext struct {
	game     *game.Game
	colony   *colony.Colony
	building *colony.Building
	lastUnit *colony.Unit
	addErr   error
	changed  bool
}

func (ctx *workforceContext) reset() error {
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
	ctx.lastUnit = nil
	ctx.addErr = nil
	ctx.changed = false
	return nil
}

func (ctx *workforceContext) aColonyBuilding(typeID string) error {
	bt, err := ctx.game.Rules().BuildingType(typeID)
	if err != nil {
		return err
	}
	ctx.building, err = colony.NewBuilding(ctx.game, ctx.colony, bt)
	return err
}

func (ctx *workforceContext) theBuildingHasWorkers(count int, unitTypeID string) error {
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

func (ctx *workforceContext) theColonyStocks(amount int, goodsID string) error {
	t, err := ctx.game.Rules().GoodsType(goodsID)
	if err != nil {
		return err
	}
	ctx.colony.AddGoods(goods.StackOf(t, amount))
	return nil
}

func (ctx *workforceContext) anotherWorkerIsAssigned(unitTypeID string) error {
	ut, err := ctx.game.Rules().UnitType(unitTypeID)
	if err != nil {
		return err
	}
	u, err := colony.NewUnit(ctx.game, ut, ctx.colony.Owner())
	if err != nil {
		return err
	}
	ctx.colony.ReceiveUnit(u)
	ctx.lastUnit = u
	ctx.addErr = ctx.building.Add(u)
	return nil
}

func (ctx *workforceContext) theAssignmentIsRefusedBecause(reason string) error {
	var admission *colony.AdmissionError
	if !errors.As(ctx.addErr, &admission) {
		return fmt.Errorf("expected an admission error, got %v", ctx.addErr)
	}
	if string(admission.Reason) != reason {
		return fmt.Errorf("expected refusal %s, got %s", reason, admission.Reason)
	}
	return nil
}

func (ctx *workforceContext) theWorkerJoins() error {
	if ctx.addErr != nil {
		return fmt.Errorf("assignment failed: %v", ctx.addErr)
	}
	if ctx.lastUnit.State() != colony.UnitStateInColony {
		return fmt.Errorf("expected unit state %s, got %s", colony.UnitStateInColony, ctx.lastUnit.State())
	}
	return nil
}

func (ctx *workforceContext) theBuildingIsUpgraded() error {
	ctx.changed = ctx.building.Upgrade()
	return nil
}

func (ctx *workforceContext) theBuildingIsDowngraded() error {
	ctx.changed = ctx.building.Downgrade()
	return nil
}

func (ctx *workforceContext) theBuildingIsNowLevel(typeID string, level int) error {
	if !ctx.changed {
		return fmt.Errorf("the level change was refused")
	}
	if ctx.building.Type().ID() != typeID {
		return fmt.Errorf("expected type %s, got %s", typeID, ctx.building.Type().ID())
	}
	if ctx.building.Level() != level {
		return fmt.Errorf("expected level %d, got %d", level, ctx.building.Level())
	}
	return nil
}

func (ctx *workforceContext) theChangeIsRefused() error {
	if ctx.changed {
		return fmt.Errorf("expected the level change to be refused")
	}
	return nil
}

func (ctx *workforceContext) workersRemainAndStandOnTheTile(remaining, onTile int) error {
	if ctx.building.UnitCount() != remaining {
		return fmt.Errorf("expected %d workers, got %d", remaining, ctx.building.UnitCount())
	}
	if len(ctx.colony.Tile().Units()) != onTile {
		return fmt.Errorf("expected %d units on the tile, got %d", onTile, len(ctx.colony.Tile().Units()))
	}
	return nil
}

// InitializeWorkforceScenario registers the workforce step definitions.
func InitializeWorkforceScenario(sc *godog.ScenarioContext) {
	ctx := &workforceContext{}

	sc.Before(func(gCtx context.Context, sc *godog.Scenario) (context.Context, error) {
		return gCtx, ctx.reset()
	})

	sc.Step(`^a colony with a "([^"]*)" building$`, ctx.aColonyBuilding)
	sc.Step(`^the building has (\d+) "([^"]*)" workers?$`, ctx.theBuildingHasWorkers)
	sc.Step(`^the colony stocks (\d+) "([^"]*)"$`, ctx.theColonyStocks)
	sc.Step(`^another "([^"]*)" is assigned to the building$`, ctx.anotherWorkerIsAssigned)
	sc.Step(`^the assignment is refused because "([^"]*)"$`, ctx.theAssignmentIsRefusedBecause)
	sc.Step(`^the worker joins the building$`, ctx.theWorkerJoins)
	sc.Step(`^the building is upgraded$`, ctx.theBuildingIsUpgraded)
	sc.Step(`^the building is downgraded$`, ctx.theBuildingIsDowngraded)
	sc.Step(`^the building is now "([^"]*)" at level (\d+)$`, ctx.theBuildingIsNowLevel)
	sc.Step(`^the change is refused$`, ctx.theChangeIsRefused)
	sc.Step(`^(\d+) workers remain and (\d+) units? stand on the tile$`, ctx.workersRemainAndStandOnTheTile)
}
