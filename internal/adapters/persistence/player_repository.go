package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mvaldes/colonia-go/internal/domain/player"
)

// GormPlayerRepository implements player.Repository using GORM. Loaded
// players are cached so that aggregates loaded later share the same owner
// instance.
type GormPlayerRepository struct {
	db     *gorm.DB
	loaded map[string]*player.Player
}

func NewGormPlayerRepository(db *gorm.DB) *GormPlayerRepository {
	return &GormPlayerRepository{
		db:     db,
		loaded: make(map[string]*player.Player),
	}
}

func (r *GormPlayerRepository) FindByID(ctx context.Context, id string) (*player.Player, error) {
	if p, ok := r.loaded[id]; ok {
		return p, nil
	}
	var model PlayerModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("player not found: %s", id)
		}
		return nil, fmt.Errorf("failed to find player: %w", result.Error)
	}
	return r.cacheEntity(&model)
}

func (r *GormPlayerRepository) FindByName(ctx context.Context, name string) (*player.Player, error) {
	var model PlayerModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("player not found: %s", name)
		}
		return nil, fmt.Errorf("failed to find player: %w", result.Error)
	}
	if p, ok := r.loaded[model.ID]; ok {
		return p, nil
	}
	return r.cacheEntity(&model)
}

func (r *GormPlayerRepository) Save(ctx context.Context, p *player.Player) error {
	model := &PlayerModel{ID: p.ID(), Name: p.Name()}
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save player %s: %w", p.ID(), err)
	}
	r.loaded[p.ID()] = p
	return nil
}

func (r *GormPlayerRepository) cacheEntity(model *PlayerModel) (*player.Player, error) {
	p, err := player.New(model.ID, model.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to restore player %s: %w", model.ID, err)
	}
	r.loaded[model.ID] = p
	return p, nil
}
