package simulation

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/time/rate"

	"github.com/mvaldes/colonia-go/internal/application/colony/commands"
	"github.com/mvaldes/colonia-go/internal/application/common"
)

// TurnRunner advances the simulation a fixed number of turns, paced so an
// observer (or an attached UI) can follow along.
type TurnRunner struct {
	mediator common.Mediator
	limiter  *rate.Limiter
}

// NewTurnRunner creates a runner advancing at most turnsPerSecond turns per
// second. A non-positive rate means unthrottled.
func NewTurnRunner(mediator common.Mediator, turnsPerSecond float64) *TurnRunner {
	limit := rate.Inf
	if turnsPerSecond > 0 {
		limit = rate.Limit(turnsPerSecond)
	}
	return &TurnRunner{
		mediator: mediator,
		limiter:  rate.NewLimiter(limit, 1),
	}
}

// Run advances the given number of turns, honoring context cancellation
// between turns.
func (r *TurnRunner) Run(ctx context.Context, turns int) error {
	if turns < 1 {
		return fmt.Errorf("turns must be at least 1, got %d", turns)
	}
	for i := 0; i < turns; i++ {
		if err := r.limiter.Wait(ctx); err != nil {
			return err
		}
		response, err := r.mediator.Send(ctx, commands.AdvanceTurnCommand{})
		if err != nil {
			return fmt.Errorf("turn advance failed: %w", err)
		}
		if result, ok := response.(commands.AdvanceTurnResult); ok {
			log.Printf("turn %d complete (%d colonies updated)", result.Turn, result.Colonies)
		}
	}
	return nil
}
