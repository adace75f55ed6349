package persistence

import "time"

// PlayerModel represents the players table.
type PlayerModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;unique;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

func (PlayerModel) TableName() string {
	return "players"
}

// ColonyModel represents the colonies table.
type ColonyModel struct {
	ID                string       `gorm:"column:id;primaryKey"`
	Name              string       `gorm:"column:name;not null"`
	PlayerID          string       `gorm:"column:player_id;not null"`
	Player            *PlayerModel `gorm:"foreignKey:PlayerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	WarehouseCapacity int          `gorm:"column:warehouse_capacity;not null"`
}

func (ColonyModel) TableName() string {
	return "colonies"
}

// BuildingModel represents the buildings table. Only the type reference is
// persisted; capacity, abilities and productions derive from the ruleset.
type BuildingModel struct {
	ID             string       `gorm:"column:id;primaryKey"`
	ColonyID       string       `gorm:"column:colony_id;not null;index"`
	Colony         *ColonyModel `gorm:"foreignKey:ColonyID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	BuildingTypeID string       `gorm:"column:building_type_id;not null"`
	Position       int          `gorm:"column:position;not null;default:0"`
}

func (BuildingModel) TableName() string {
	return "buildings"
}

// UnitModel represents the units table. Position preserves assignment order
// inside a work location; BuildingID is null for units on the colony tile.
type UnitModel struct {
	ID         string       `gorm:"column:id;primaryKey"`
	ColonyID   string       `gorm:"column:colony_id;not null;index"`
	Colony     *ColonyModel `gorm:"foreignKey:ColonyID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	BuildingID *string      `gorm:"column:building_id;index"`
	UnitTypeID string       `gorm:"column:unit_type_id;not null"`
	OwnerID    string       `gorm:"column:owner_id;not null"`
	State      string       `gorm:"column:state;not null;default:'ACTIVE'"`
	MovesLeft  int          `gorm:"column:moves_left;not null;default:0"`
	WorkTypeID *string      `gorm:"column:work_type_id"`
	Position   int          `gorm:"column:position;not null;default:0"`
}

func (UnitModel) TableName() string {
	return "units"
}

// GoodsStockModel represents the goods_stock table: one row per
// (colony, goods type).
type GoodsStockModel struct {
	ColonyID string `gorm:"column:colony_id;primaryKey"`
	GoodsID  string `gorm:"column:goods_id;primaryKey"`
	Amount   int    `gorm:"column:amount;not null"`
}

func (GoodsStockModel) TableName() string {
	return "goods_stock"
}

// GameStateModel is a single-row table carrying simulation-wide state.
type GameStateModel struct {
	ID   int `gorm:"column:id;primaryKey"`
	Turn int `gorm:"column:turn;not null;default:0"`
}

func (GameStateModel) TableName() string {
	return "game_state"
}

// SessionModel is the single-row CLI session: the current player and the
// selection that gates unit and colony commands.
type SessionModel struct {
	ID       int    `gorm:"column:id;primaryKey"`
	PlayerID string `gorm:"column:player_id"`
	UnitID   string `gorm:"column:unit_id"`
	ColonyID string `gorm:"column:colony_id"`
}

func (SessionModel) TableName() string {
	return "session"
}
