package production

import (
	"github.com/otabekd/factoryops-go/internal/domain/costing"
	"github.com/otabekd/factoryops-go/internal/domain/demand"
	"github.com/otabekd/factoryops-go/internal/domain/profitability"
)

// MissingMaterial itemizes one shortfall blocking a production run.
type MissingMaterial struct {
	MaterialKey string
	Required    float64
	Available   float64
	Deficit     float64
}

// Calculation is the aggregate result returned to callers: cost, profit,
// demand and feasibility for one requested production run. A plain value
// object, safe to serialize and discard.
type Calculation struct {
	CalculationID    string
	ProductKey       string
	Quantity         float64
	Breakdown        *costing.CostBreakdown
	Profitability    profitability.Result
	Materials        []demand.MaterialDemand
	CanProduce       bool
	MissingMaterials []MissingMaterial
	Warnings         []demand.Warning
}

// StockSnapshot maps material keys to stock on hand at calculation time. The
// snapshot may be stale by the time a caller commits a run; the atomic
// check-and-decrement is the stock ledger's job.
type StockSnapshot map[string]float64

// CheckFeasibility compares a demand list against a stock snapshot. Any line
// whose requirement exceeds available stock contributes a deficit; the run is
// feasible only when no line falls short.
func CheckFeasibility(demands []demand.MaterialDemand, stock StockSnapshot) (bool, []MissingMaterial) {
	var missing []MissingMaterial
	for _, d := range demands {
		available := stock[d.MaterialKey]
		if d.QuantityRequired > available {
			missing = append(missing, MissingMaterial{
				MaterialKey: d.MaterialKey,
				Required:    d.QuantityRequired,
				Available:   available,
				Deficit:     d.QuantityRequired - available,
			})
		}
	}
	return len(missing) == 0, missing
}
