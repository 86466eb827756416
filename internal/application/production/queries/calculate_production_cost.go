package queries

import (
	"context"
	"errors"
	"fmt"

	"github.com/otabekd/factoryops-go/internal/application/common"
	"github.com/otabekd/factoryops-go/internal/domain/costing"
	"github.com/otabekd/factoryops-go/internal/domain/demand"
	"github.com/otabekd/factoryops-go/internal/domain/formula"
	"github.com/otabekd/factoryops-go/internal/domain/production"
	"github.com/otabekd/factoryops-go/internal/domain/profitability"
	"github.com/otabekd/factoryops-go/internal/domain/shared"
	"github.com/otabekd/factoryops-go/pkg/utils"
)

// CalculateProductionCostQuery asks for the full cost/feasibility picture of
// producing Quantity units of a product. Overrides express one-off scenarios
// (a rush-order labor surcharge) without touching the configured tables.
type CalculateProductionCostQuery struct {
	ProductKey        string
	Quantity          float64
	Overrides         map[costing.Category]float64
	KnownSellingPrice float64
}

// CalculateProductionCostResponse wraps the aggregate calculation.
type CalculateProductionCostResponse struct {
	Calculation *production.Calculation
}

// CalculateProductionCostHandler orchestrates the calculation pipeline:
// formula lookup, demand resolution, cost estimation, profitability analysis
// and the read-only feasibility check against the stock snapshot.
type CalculateProductionCostHandler struct {
	formulaRepo  formula.Repository
	materialRepo production.MaterialRepository
	resolver     *demand.Resolver
	estimator    *costing.Estimator
	analyzer     *profitability.Analyzer
}

// NewCalculateProductionCostHandler creates the handler.
func NewCalculateProductionCostHandler(
	formulaRepo formula.Repository,
	materialRepo production.MaterialRepository,
	resolver *demand.Resolver,
	estimator *costing.Estimator,
	analyzer *profitability.Analyzer,
) *CalculateProductionCostHandler {
	return &CalculateProductionCostHandler{
		formulaRepo:  formulaRepo,
		materialRepo: materialRepo,
		resolver:     resolver,
		estimator:    estimator,
		analyzer:     analyzer,
	}
}

// Handle executes the calculation query.
func (h *CalculateProductionCostHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*CalculateProductionCostQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	logger := common.LoggerFromContext(ctx)

	if query.Quantity <= 0 {
		return nil, shared.NewInvalidQuantityError(query.Quantity)
	}

	f, err := h.formulaRepo.FindByProductKey(ctx, query.ProductKey)
	if err != nil {
		return nil, err
	}

	prices, stock, err := h.loadMaterialData(ctx, f)
	if err != nil {
		return nil, err
	}

	demands, warnings, err := h.resolver.Resolve(f, query.Quantity, prices)
	if err != nil {
		return nil, err
	}

	breakdown := h.estimator.Estimate(demands, query.Quantity, f.Category, query.Overrides)
	profit := h.analyzer.Analyze(breakdown.UnitCost, query.Quantity, query.KnownSellingPrice)
	canProduce, missing := production.CheckFeasibility(demands, stock)

	calc := &production.Calculation{
		CalculationID:    utils.GenerateCalculationID(query.ProductKey),
		ProductKey:       query.ProductKey,
		Quantity:         query.Quantity,
		Breakdown:        breakdown,
		Profitability:    profit,
		Materials:        demands,
		CanProduce:       canProduce,
		MissingMaterials: missing,
		Warnings:         warnings,
	}

	logger.Log("INFO", "Production cost calculated", map[string]interface{}{
		"calculation_id": calc.CalculationID,
		"product_key":    query.ProductKey,
		"quantity":       query.Quantity,
		"total_cost":     breakdown.TotalCost,
		"can_produce":    canProduce,
		"warnings":       len(warnings),
	})

	return &CalculateProductionCostResponse{Calculation: calc}, nil
}

// loadMaterialData builds the price book and stock snapshot for a formula's
// materials. A material missing from the catalog is not fatal: its price stays
// unknown (the resolver estimates it) and its stock reads zero.
func (h *CalculateProductionCostHandler) loadMaterialData(ctx context.Context, f *formula.Formula) (demand.PriceBook, production.StockSnapshot, error) {
	prices := make(demand.PriceBook, len(f.Lines))
	stock := make(production.StockSnapshot, len(f.Lines))

	for _, line := range f.Lines {
		material, err := h.materialRepo.FindByKey(ctx, line.MaterialKey)
		if err != nil {
			var nfErr *shared.NotFoundError
			if errors.As(err, &nfErr) {
				continue
			}
			return nil, nil, err
		}
		prices[line.MaterialKey] = material.UnitPrice
		stock[line.MaterialKey] = material.CurrentStock
	}

	return prices, stock, nil
}
