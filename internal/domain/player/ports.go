package player

import "context"

// Repository defines persistence operations for players.
type Repository interface {
	FindByID(ctx context.Context, id string) (*Player, error)
	FindByName(ctx context.Context, name string) (*Player, error)
	Save(ctx context.Context, p *Player) error
}
