package commands

import (
	"context"
	"fmt"

	"github.com/mvaldes/colonia-go/internal/application/common"
	"github.com/mvaldes/colonia-go/internal/domain/colony"
)

// UpgradeBuildingCommand raises a building to its next level.
type UpgradeBuildingCommand struct {
	ColonyID   string
	BuildingID string
}

// DowngradeBuildingCommand damages a building down one level.
type DowngradeBuildingCommand struct {
	ColonyID   string
	BuildingID string
}

// ChangeBuildingLevelResult reports a level transition. Refused transitions
// are not errors; the caller may retry after accumulating resources.
type ChangeBuildingLevelResult struct {
	BuildingID string
	TypeID     string
	Level      int
	Changed    bool
}

type UpgradeBuildingHandler struct {
	colonies colony.Repository
}

func NewUpgradeBuildingHandler(colonies colony.Repository) *UpgradeBuildingHandler {
	return &UpgradeBuildingHandler{colonies: colonies}
}

func (h *UpgradeBuildingHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(UpgradeBuildingCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type for UpgradeBuildingHandler")
	}
	return changeLevel(ctx, h.colonies, cmd.ColonyID, cmd.BuildingID, func(b *colony.Building) bool {
		return b.Upgrade()
	})
}

type DowngradeBuildingHandler struct {
	colonies colony.Repository
}

func NewDowngradeBuildingHandler(colonies colony.Repository) *DowngradeBuildingHandler {
	return &DowngradeBuildingHandler{colonies: colonies}
}

func (h *DowngradeBuildingHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(DowngradeBuildingCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type for DowngradeBuildingHandler")
	}
	return changeLevel(ctx, h.colonies, cmd.ColonyID, cmd.BuildingID, func(b *colony.Building) bool {
		return b.Downgrade()
	})
}

func changeLevel(ctx context.Context, colonies colony.Repository, colonyID, buildingID string,
	transition func(*colony.Building) bool) (common.Response, error) {

	c, err := colonies.FindByID(ctx, colonyID)
	if err != nil {
		return nil, err
	}
	b := findBuilding(c, buildingID)
	if b == nil {
		return nil, fmt.Errorf("building %s not found in colony %s", buildingID, colonyID)
	}

	changed := transition(b)
	if changed {
		if err := colonies.Save(ctx, c); err != nil {
			return nil, err
		}
	}
	return ChangeBuildingLevelResult{
		BuildingID: b.ID(),
		TypeID:     b.Type().ID(),
		Level:      b.Level(),
		Changed:    changed,
	}, nil
}
