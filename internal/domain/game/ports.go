package game

import (
	"context"

	"github.com/mvaldes/colonia-go/internal/domain/rules"
)

// StateRepository persists simulation-wide state (the turn counter).
type StateRepository interface {
	LoadTurn(ctx context.Context) (rules.Turn, error)
	SaveTurn(ctx context.Context, turn rules.Turn) error
}
