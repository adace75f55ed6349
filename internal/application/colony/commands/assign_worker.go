package commands

import (
	"context"
	"fmt"

	"github.com/mvaldes/colonia-go/internal/application/common"
	"github.com/mvaldes/colonia-go/internal/domain/colony"
)

// AssignWorkerCommand places a unit into a work location.
type AssignWorkerCommand struct {
	ColonyID   string
	UnitID     string
	BuildingID string
}

// AssignWorkerResult reports the assignment outcome.
type AssignWorkerResult struct {
	UnitID     string
	BuildingID string
	WorkType   string
}

// AssignWorkerHandler loads the colony aggregate, admits the worker and
// persists the result.
type AssignWorkerHandler struct {
	colonies colony.Repository
}

func NewAssignWorkerHandler(colonies colony.Repository) *AssignWorkerHandler {
	return &AssignWorkerHandler{colonies: colonies}
}

func (h *AssignWorkerHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(AssignWorkerCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type for AssignWorkerHandler")
	}

	c, err := h.colonies.FindByID(ctx, cmd.ColonyID)
	if err != nil {
		return nil, err
	}
	b := findBuilding(c, cmd.BuildingID)
	if b == nil {
		return nil, fmt.Errorf("building %s not found in colony %s", cmd.BuildingID, cmd.ColonyID)
	}
	u := findUnit(c, cmd.UnitID)
	if u == nil {
		return nil, fmt.Errorf("unit %s not found in colony %s", cmd.UnitID, cmd.ColonyID)
	}

	if err := b.Add(u); err != nil {
		return nil, err
	}
	if err := h.colonies.Save(ctx, c); err != nil {
		return nil, err
	}

	workType := ""
	if u.WorkType() != nil {
		workType = u.WorkType().ID()
	}
	return AssignWorkerResult{
		UnitID:     u.ID(),
		BuildingID: b.ID(),
		WorkType:   workType,
	}, nil
}

func findBuilding(c *colony.Colony, id string) *colony.Building {
	for _, b := range c.Buildings() {
		if b.ID() == id || b.Type().ID() == id {
			return b
		}
	}
	return nil
}

func findUnit(c *colony.Colony, id string) *colony.Unit {
	for _, u := range c.Tile().Units() {
		if u.ID() == id {
			return u
		}
	}
	for _, b := range c.Buildings() {
		for _, u := range b.Units() {
			if u.ID() == id {
				return u
			}
		}
	}
	return nil
}
