package queries

import (
	"context"
	"fmt"

	"github.com/otabekd/factoryops-go/internal/application/common"
	"github.com/otabekd/factoryops-go/internal/domain/inventory"
	"github.com/otabekd/factoryops-go/internal/domain/production"
)

// GetReorderAdviceQuery asks for the replenishment signal of one material.
// SafetyStock nil means "use the configured default buffer".
type GetReorderAdviceQuery struct {
	MaterialKey  string
	DailyUsage   float64
	LeadTimeDays float64
	SafetyStock  *float64
}

// GetReorderAdviceResponse carries the advice for the material.
type GetReorderAdviceResponse struct {
	MaterialKey string
	Advice      inventory.ReorderAdvice
}

// GetReorderAdviceHandler reads current stock from the catalog and delegates
// to the planner.
type GetReorderAdviceHandler struct {
	materialRepo production.MaterialRepository
	planner      *inventory.Planner
}

// NewGetReorderAdviceHandler creates the handler.
func NewGetReorderAdviceHandler(materialRepo production.MaterialRepository, planner *inventory.Planner) *GetReorderAdviceHandler {
	return &GetReorderAdviceHandler{materialRepo: materialRepo, planner: planner}
}

// Handle executes the query.
func (h *GetReorderAdviceHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetReorderAdviceQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	material, err := h.materialRepo.FindByKey(ctx, query.MaterialKey)
	if err != nil {
		return nil, err
	}

	safetyStock := -1.0
	if query.SafetyStock != nil {
		safetyStock = *query.SafetyStock
	}

	advice := h.planner.ReorderPoint(material.CurrentStock, query.DailyUsage, query.LeadTimeDays, safetyStock)

	return &GetReorderAdviceResponse{
		MaterialKey: query.MaterialKey,
		Advice:      advice,
	}, nil
}

// ListStockAlertsQuery scans every material with a known usage rate and
// returns those whose stock status warrants a low-stock alert.
type ListStockAlertsQuery struct {
	DailyUsageByMaterial map[string]float64
	LeadTimeDays         float64
}

// StockAlert pairs a material with its alertable advice.
type StockAlert struct {
	MaterialKey string
	Advice      inventory.ReorderAdvice
}

// ListStockAlertsResponse lists alerts ordered as the catalog returns them.
type ListStockAlertsResponse struct {
	Alerts []StockAlert
}

// ListStockAlertsHandler feeds the notification layer.
type ListStockAlertsHandler struct {
	materialRepo production.MaterialRepository
	planner      *inventory.Planner
}

// NewListStockAlertsHandler creates the handler.
func NewListStockAlertsHandler(materialRepo production.MaterialRepository, planner *inventory.Planner) *ListStockAlertsHandler {
	return &ListStockAlertsHandler{materialRepo: materialRepo, planner: planner}
}

// Handle executes the query.
func (h *ListStockAlertsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ListStockAlertsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	materials, err := h.materialRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var alerts []StockAlert
	for _, material := range materials {
		usage, known := query.DailyUsageByMaterial[material.Key]
		if !known {
			continue
		}
		advice := h.planner.ReorderPoint(material.CurrentStock, usage, query.LeadTimeDays, -1)
		if advice.Status.IsAlertable() {
			alerts = append(alerts, StockAlert{MaterialKey: material.Key, Advice: advice})
		}
	}

	return &ListStockAlertsResponse{Alerts: alerts}, nil
}
