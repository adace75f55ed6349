package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mvaldes/colonia-go/internal/domain/colony"
	"github.com/mvaldes/colonia-go/internal/domain/game"
	"github.com/mvaldes/colonia-go/internal/domain/goods"
	"github.com/mvaldes/colonia-go/internal/domain/player"
)

// GormColonyRepository implements colony.Repository using GORM. Type ids
// stored in the database are resolved through the game's ruleset during
// reconstruction. Loaded aggregates are kept in an identity map so repeated
// lookups return the same instance registered with the game.
type GormColonyRepository struct {
	db      *gorm.DB
	game    *game.Game
	players player.Repository
	loaded  map[string]*colony.Colony
}

func NewGormColonyRepository(db *gorm.DB, g *game.Game, players player.Repository) *GormColonyRepository {
	return &GormColonyRepository{
		db:      db,
		game:    g,
		players: players,
		loaded:  make(map[string]*colony.Colony),
	}
}

func (r *GormColonyRepository) FindByID(ctx context.Context, id string) (*colony.Colony, error) {
	if c, ok := r.loaded[id]; ok {
		return c, nil
	}
	var model ColonyModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("colony not found: %s", id)
		}
		return nil, fmt.Errorf("failed to find colony: %w", result.Error)
	}
	return r.modelToEntity(ctx, &model)
}

func (r *GormColonyRepository) FindByPlayer(ctx context.Context, playerID string) ([]*colony.Colony, error) {
	var models []ColonyModel
	result := r.db.WithContext(ctx).Where("player_id = ?", playerID).Order("id").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find colonies for player %s: %w", playerID, result.Error)
	}
	return r.entities(ctx, models)
}

func (r *GormColonyRepository) FindAll(ctx context.Context) ([]*colony.Colony, error) {
	var models []ColonyModel
	result := r.db.WithContext(ctx).Order("id").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list colonies: %w", result.Error)
	}
	return r.entities(ctx, models)
}

func (r *GormColonyRepository) entities(ctx context.Context, models []ColonyModel) ([]*colony.Colony, error) {
	colonies := make([]*colony.Colony, 0, len(models))
	for i := range models {
		if c, ok := r.loaded[models[i].ID]; ok {
			colonies = append(colonies, c)
			continue
		}
		c, err := r.modelToEntity(ctx, &models[i])
		if err != nil {
			return nil, err
		}
		colonies = append(colonies, c)
	}
	return colonies, nil
}

// Save persists the whole aggregate: the colony row plus its stock,
// building and unit rows, replaced wholesale inside one transaction.
func (r *GormColonyRepository) Save(ctx context.Context, c *colony.Colony) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := &ColonyModel{
			ID:                c.ID(),
			Name:              c.Name(),
			PlayerID:          c.OwnerID(),
			WarehouseCapacity: c.WarehouseCapacity(),
		}
		if err := tx.Save(model).Error; err != nil {
			return fmt.Errorf("failed to save colony row: %w", err)
		}

		for _, table := range []interface{}{&GoodsStockModel{}, &UnitModel{}, &BuildingModel{}} {
			if err := tx.Where("colony_id = ?", c.ID()).Delete(table).Error; err != nil {
				return fmt.Errorf("failed to clear colony children: %w", err)
			}
		}

		for _, s := range c.Stock() {
			row := &GoodsStockModel{ColonyID: c.ID(), GoodsID: s.Type().ID(), Amount: s.Amount()}
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("failed to save stock row: %w", err)
			}
		}

		for i, b := range c.Buildings() {
			row := &BuildingModel{
				ID:             b.ID(),
				ColonyID:       c.ID(),
				BuildingTypeID: b.Type().ID(),
				Position:       i,
			}
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("failed to save building row: %w", err)
			}
			for j, u := range b.Units() {
				if err := tx.Create(unitRow(c, u, strPtr(b.ID()), j)).Error; err != nil {
					return fmt.Errorf("failed to save unit row: %w", err)
				}
			}
		}
		for j, u := range c.Tile().Units() {
			if err := tx.Create(unitRow(c, u, nil, j)).Error; err != nil {
				return fmt.Errorf("failed to save unit row: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.loaded[c.ID()] = c
	return nil
}

func unitRow(c *colony.Colony, u *colony.Unit, buildingID *string, position int) *UnitModel {
	var workType *string
	if u.WorkType() != nil {
		workType = strPtr(u.WorkType().ID())
	}
	return &UnitModel{
		ID:         u.ID(),
		ColonyID:   c.ID(),
		BuildingID: buildingID,
		UnitTypeID: u.Type().ID(),
		OwnerID:    u.OwnerID(),
		State:      string(u.State()),
		MovesLeft:  u.MovesLeft(),
		WorkTypeID: workType,
		Position:   position,
	}
}

func (r *GormColonyRepository) modelToEntity(ctx context.Context, model *ColonyModel) (*colony.Colony, error) {
	owner, err := r.players.FindByID(ctx, model.PlayerID)
	if err != nil {
		return nil, err
	}
	c, err := colony.Restore(r.game, model.ID, model.Name, owner, model.WarehouseCapacity)
	if err != nil {
		return nil, fmt.Errorf("failed to restore colony %s: %w", model.ID, err)
	}

	var stockRows []GoodsStockModel
	if err := r.db.WithContext(ctx).Where("colony_id = ?", model.ID).Find(&stockRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load stock: %w", err)
	}
	for _, row := range stockRows {
		t, err := r.game.Rules().GoodsType(row.GoodsID)
		if err != nil {
			return nil, err
		}
		c.AddGoods(goods.StackOf(t, row.Amount))
	}

	var buildingRows []BuildingModel
	if err := r.db.WithContext(ctx).Where("colony_id = ?", model.ID).Order("position").Find(&buildingRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load buildings: %w", err)
	}
	buildings := make(map[string]*colony.Building, len(buildingRows))
	for _, row := range buildingRows {
		bt, err := r.game.Rules().BuildingType(row.BuildingTypeID)
		if err != nil {
			return nil, err
		}
		b, err := colony.RestoreBuilding(r.game, c, row.ID, bt)
		if err != nil {
			return nil, fmt.Errorf("failed to restore building %s: %w", row.ID, err)
		}
		buildings[row.ID] = b
	}

	var unitRows []UnitModel
	if err := r.db.WithContext(ctx).Where("colony_id = ?", model.ID).Order("building_id, position").Find(&unitRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load units: %w", err)
	}
	for _, row := range unitRows {
		ut, err := r.game.Rules().UnitType(row.UnitTypeID)
		if err != nil {
			return nil, err
		}
		unitOwner, err := r.players.FindByID(ctx, row.OwnerID)
		if err != nil {
			return nil, err
		}
		var workType *goods.Type
		if row.WorkTypeID != nil {
			workType, err = r.game.Rules().GoodsType(*row.WorkTypeID)
			if err != nil {
				return nil, err
			}
		}
		u, err := colony.RestoreUnit(r.game, row.ID, ut, unitOwner,
			colony.UnitState(row.State), row.MovesLeft, workType)
		if err != nil {
			return nil, fmt.Errorf("failed to restore unit %s: %w", row.ID, err)
		}
		if row.BuildingID != nil {
			b, ok := buildings[*row.BuildingID]
			if !ok {
				return nil, fmt.Errorf("unit %s references unknown building %s", row.ID, *row.BuildingID)
			}
			if err := b.Add(u); err != nil {
				return nil, fmt.Errorf("failed to reseat unit %s: %w", row.ID, err)
			}
		} else {
			c.ReceiveUnit(u)
		}
	}

	c.InvalidateCache()
	r.loaded[model.ID] = c
	return c, nil
}

func strPtr(s string) *string { return &s }
