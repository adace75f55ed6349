package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mvaldes/colonia-go/internal/domain/rules"
)

const gameStateRowID = 1

// GormGameStateRepository persists simulation-wide state in a single row.
type GormGameStateRepository struct {
	db *gorm.DB
}

func NewGormGameStateRepository(db *gorm.DB) *GormGameStateRepository {
	return &GormGameStateRepository{db: db}
}

func (r *GormGameStateRepository) LoadTurn(ctx context.Context) (rules.Turn, error) {
	var model GameStateModel
	result := r.db.WithContext(ctx).Where("id = ?", gameStateRowID).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to load game state: %w", result.Error)
	}
	return rules.Turn(model.Turn), nil
}

func (r *GormGameStateRepository) SaveTurn(ctx context.Context, turn rules.Turn) error {
	model := &GameStateModel{ID: gameStateRowID, Turn: int(turn)}
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save game state: %w", err)
	}
	return nil
}
