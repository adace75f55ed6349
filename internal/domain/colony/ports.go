package colony

import "context"

// Repository defines persistence operations for the colony aggregate
// (colony, its buildings, assigned units and warehouse stock).
type Repository interface {
	FindByID(ctx context.Context, id string) (*Colony, error)
	FindByPlayer(ctx context.Context, playerID string) ([]*Colony, error)
	FindAll(ctx context.Context) ([]*Colony, error)
	Save(ctx context.Context, c *Colony) error
}
