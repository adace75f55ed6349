package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

const sessionRowID = 1

// Session is the CLI's persisted selection state. Unit and building commands
// are only enabled when the session player owns the selected unit.
type Session struct {
	PlayerID string
	UnitID   string
	ColonyID string
}

// SessionRepository stores the single CLI session row.
type SessionRepository interface {
	Load(ctx context.Context) (Session, error)
	Save(ctx context.Context, s Session) error
}

type GormSessionRepository struct {
	db *gorm.DB
}

func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

func (r *GormSessionRepository) Load(ctx context.Context) (Session, error) {
	var model SessionModel
	result := r.db.WithContext(ctx).Where("id = ?", sessionRowID).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return Session{}, nil
		}
		return Session{}, fmt.Errorf("failed to load session: %w", result.Error)
	}
	return Session{
		PlayerID: model.PlayerID,
		UnitID:   model.UnitID,
		ColonyID: model.ColonyID,
	}, nil
}

func (r *GormSessionRepository) Save(ctx context.Context, s Session) error {
	model := &SessionModel{
		ID:       sessionRowID,
		PlayerID: s.PlayerID,
		UnitID:   s.UnitID,
		ColonyID: s.ColonyID,
	}
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
