package queries

import (
	"context"
	"fmt"

	"github.com/mvaldes/colonia-go/internal/application/common"
	"github.com/mvaldes/colonia-go/internal/domain/colony"
)

// ColonyProductionQuery asks for the current production state of a colony.
type ColonyProductionQuery struct {
	ColonyID string
}

// GoodsAmount is a flat (goods id, amount) pair for presentation.
type GoodsAmount struct {
	GoodsID string
	Amount  int
}

// BuildingReport is one work location's production for this turn.
type BuildingReport struct {
	BuildingID         string
	TypeID             string
	Level              int
	Workers            int
	Capacity           int
	Production         []GoodsAmount
	MaximumProduction  []GoodsAmount
	Consumption        []GoodsAmount
	MaximumConsumption []GoodsAmount
}

// ColonyProductionResult is the full production/stock view of a colony.
type ColonyProductionResult struct {
	ColonyID  string
	Name      string
	Capacity  int
	Stock     []GoodsAmount
	NetTotals map[string]int
	Buildings []BuildingReport
}

type ColonyProductionHandler struct {
	colonies colony.Repository
}

func NewColonyProductionHandler(colonies colony.Repository) *ColonyProductionHandler {
	return &ColonyProductionHandler{colonies: colonies}
}

func (h *ColonyProductionHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(ColonyProductionQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type for ColonyProductionHandler")
	}

	c, err := h.colonies.FindByID(ctx, query.ColonyID)
	if err != nil {
		return nil, err
	}

	result := ColonyProductionResult{
		ColonyID:  c.ID(),
		Name:      c.Name(),
		Capacity:  c.WarehouseCapacity(),
		NetTotals: c.ProductionTotals(),
	}
	for _, s := range c.Stock() {
		result.Stock = append(result.Stock, GoodsAmount{GoodsID: s.Type().ID(), Amount: s.Amount()})
	}
	for _, b := range c.Buildings() {
		report, err := c.ProductionReportFor(b)
		if err != nil {
			return nil, fmt.Errorf("failed to compute production for %s: %w", b.ID(), err)
		}
		br := BuildingReport{
			BuildingID: b.ID(),
			TypeID:     b.Type().ID(),
			Level:      b.Level(),
			Workers:    b.UnitCount(),
			Capacity:   b.UnitCapacity(),
		}
		for _, s := range report.Production() {
			br.Production = append(br.Production, GoodsAmount{s.Type().ID(), s.Amount()})
		}
		for _, s := range report.MaximumProduction() {
			br.MaximumProduction = append(br.MaximumProduction, GoodsAmount{s.Type().ID(), s.Amount()})
		}
		for _, s := range report.Consumption() {
			br.Consumption = append(br.Consumption, GoodsAmount{s.Type().ID(), s.Amount()})
		}
		for _, s := range report.MaximumConsumption() {
			br.MaximumConsumption = append(br.MaximumConsumption, GoodsAmount{s.Type().ID(), s.Amount()})
		}
		result.Buildings = append(result.Buildings, br)
	}
	return result, nil
}
