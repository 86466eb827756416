package inventory

import "github.com/otabekd/factoryops-go/internal/domain/shared"

// DefaultSafetyStockDays is the buffer applied when no explicit safety stock
// is supplied: three days of usage.
const DefaultSafetyStockDays = 3

// ReorderAdvice is the replenishment signal for one material.
type ReorderAdvice struct {
	ReorderPoint     float64
	SafetyStock      float64
	LeadTimeDemand   float64
	CurrentStock     float64
	DaysRemaining    float64
	Status           StockStatus
	RecommendedOrder float64
}

// Planner computes reorder/turnover/valuation signals over explicit inputs.
type Planner struct {
	safetyStockDays float64
}

// NewPlanner creates a planner; non-positive safetyStockDays falls back to the
// default.
func NewPlanner(safetyStockDays float64) *Planner {
	if safetyStockDays <= 0 {
		safetyStockDays = DefaultSafetyStockDays
	}
	return &Planner{safetyStockDays: safetyStockDays}
}

// ReorderPoint computes the replenishment advice for a material.
// safetyStock < 0 means "not supplied" and defaults to safetyStockDays of
// usage. A non-positive daily usage yields a degenerate not_used advice
// rather than a division error.
func (p *Planner) ReorderPoint(currentStock, dailyUsage float64, leadTimeDays float64, safetyStock float64) ReorderAdvice {
	if dailyUsage <= 0 {
		return ReorderAdvice{
			CurrentStock: currentStock,
			Status:       StatusNotUsed,
		}
	}

	leadTimeDemand := dailyUsage * leadTimeDays
	if safetyStock < 0 {
		safetyStock = dailyUsage * p.safetyStockDays
	}
	reorderPoint := leadTimeDemand + safetyStock

	var status StockStatus
	switch {
	case currentStock <= safetyStock:
		status = StatusCritical
	case currentStock <= reorderPoint:
		status = StatusLow
	case currentStock <= reorderPoint*1.5:
		status = StatusNormal
	default:
		status = StatusHigh
	}

	recommended := reorderPoint - currentStock
	if recommended < 0 {
		recommended = 0
	}

	return ReorderAdvice{
		ReorderPoint:     reorderPoint,
		SafetyStock:      safetyStock,
		LeadTimeDemand:   leadTimeDemand,
		CurrentStock:     currentStock,
		DaysRemaining:    shared.Round1(currentStock / dailyUsage),
		Status:           status,
		RecommendedOrder: recommended,
	}
}
