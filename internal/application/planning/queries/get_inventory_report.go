package queries

import (
	"context"
	"fmt"

	"github.com/otabekd/factoryops-go/internal/application/common"
	"github.com/otabekd/factoryops-go/internal/domain/inventory"
	"github.com/otabekd/factoryops-go/internal/domain/production"
)

// GetInventoryReportQuery asks for the warehouse valuation, optionally with a
// turnover reading when a yearly sales value is supplied.
type GetInventoryReportQuery struct {
	AnnualSalesValue float64
}

// GetInventoryReportResponse combines valuation and turnover.
type GetInventoryReportResponse struct {
	Valuation inventory.ValuationResult
	Turnover  *inventory.TurnoverResult
}

// GetInventoryReportHandler values the whole catalog.
type GetInventoryReportHandler struct {
	materialRepo production.MaterialRepository
	planner      *inventory.Planner
}

// NewGetInventoryReportHandler creates the handler.
func NewGetInventoryReportHandler(materialRepo production.MaterialRepository, planner *inventory.Planner) *GetInventoryReportHandler {
	return &GetInventoryReportHandler{materialRepo: materialRepo, planner: planner}
}

// Handle executes the query.
func (h *GetInventoryReportHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetInventoryReportQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	materials, err := h.materialRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]inventory.StockItem, 0, len(materials))
	for _, material := range materials {
		items = append(items, inventory.StockItem{
			Name:      material.Name,
			Quantity:  material.CurrentStock,
			UnitPrice: material.UnitPrice,
		})
	}

	valuation := h.planner.Valuation(items)

	response := &GetInventoryReportResponse{Valuation: valuation}
	if query.AnnualSalesValue > 0 {
		turnover := h.planner.Turnover(query.AnnualSalesValue, valuation.TotalValue)
		response.Turnover = &turnover
	}

	return response, nil
}
