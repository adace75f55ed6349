package commands

import (
	"context"
	"fmt"

	"github.com/mvaldes/colonia-go/internal/application/common"
	"github.com/mvaldes/colonia-go/internal/domain/colony"
)

// WithdrawWorkerCommand removes a unit from its work location back to the
// colony tile.
type WithdrawWorkerCommand struct {
	ColonyID string
	UnitID   string
}

// WithdrawWorkerResult reports the withdrawal outcome.
type WithdrawWorkerResult struct {
	UnitID string
	State  string
}

type WithdrawWorkerHandler struct {
	colonies colony.Repository
}

func NewWithdrawWorkerHandler(colonies colony.Repository) *WithdrawWorkerHandler {
	return &WithdrawWorkerHandler{colonies: colonies}
}

func (h *WithdrawWorkerHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(WithdrawWorkerCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type for WithdrawWorkerHandler")
	}

	c, err := h.colonies.FindByID(ctx, cmd.ColonyID)
	if err != nil {
		return nil, err
	}
	u := findUnit(c, cmd.UnitID)
	if u == nil {
		return nil, fmt.Errorf("unit %s not found in colony %s", cmd.UnitID, cmd.ColonyID)
	}

	if b, ok := u.Location().(*colony.Building); ok {
		if err := b.Remove(u); err != nil {
			return nil, err
		}
	}
	if err := h.colonies.Save(ctx, c); err != nil {
		return nil, err
	}

	return WithdrawWorkerResult{UnitID: u.ID(), State: string(u.State())}, nil
}
