package commands

import (
	"context"
	"fmt"

	"github.com/mvaldes/colonia-go/internal/application/common"
	"github.com/mvaldes/colonia-go/internal/domain/colony"
	"github.com/mvaldes/colonia-go/internal/domain/game"
)

// AdvanceTurnCommand moves the simulation forward one turn: every colony
// runs its production pass and the turn counter is persisted.
type AdvanceTurnCommand struct{}

// AdvanceTurnResult reports the new turn number.
type AdvanceTurnResult struct {
	Turn     int
	Colonies int
}

type AdvanceTurnHandler struct {
	game     *game.Game
	colonies colony.Repository
	state    game.StateRepository
}

func NewAdvanceTurnHandler(g *game.Game, colonies colony.Repository, state game.StateRepository) *AdvanceTurnHandler {
	return &AdvanceTurnHandler{game: g, colonies: colonies, state: state}
}

func (h *AdvanceTurnHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(AdvanceTurnCommand); !ok {
		return nil, fmt.Errorf("invalid request type for AdvanceTurnHandler")
	}

	turn := h.game.AdvanceTurn()

	all, err := h.colonies.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range all {
		c.RunTurn()
		if err := h.colonies.Save(ctx, c); err != nil {
			return nil, fmt.Errorf("failed to save colony %s after turn %d: %w", c.ID(), turn, err)
		}
	}
	if err := h.state.SaveTurn(ctx, turn); err != nil {
		return nil, err
	}

	return AdvanceTurnResult{Turn: int(turn), Colonies: len(all)}, nil
}
