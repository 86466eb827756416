package costing

import (
	"github.com/otabekd/factoryops-go/internal/domain/demand"
	"github.com/otabekd/factoryops-go/internal/domain/formula"
)

// Estimator turns a material demand list into a layered cost breakdown.
// Material cost is computed first; every additional category is a coefficient
// times material cost, never the running total. That ordering changes results
// and must hold.
type Estimator struct {
	coefficients *CoefficientSet
}

// NewEstimator creates an estimator over an immutable coefficient set.
func NewEstimator(coefficients *CoefficientSet) *Estimator {
	if coefficients == nil {
		coefficients = DefaultCoefficientSet()
	}
	return &Estimator{coefficients: coefficients}
}

// Estimate prices a demand list for a production run. Overrides apply per
// call without mutating the configured tables. UnitCost is reported as 0 when
// quantity is 0.
func (e *Estimator) Estimate(demands []demand.MaterialDemand, quantity float64, productCategory formula.ProductCategory, overrides map[Category]float64) *CostBreakdown {
	var materialCost float64
	for _, d := range demands {
		materialCost += d.QuantityRequired * d.UnitPrice
	}

	additional := make(map[Category]float64, len(AdditionalCategories()))
	for _, category := range AdditionalCategories() {
		coefficient := e.coefficients.Resolve(category, productCategory, overrides)
		additional[category] = materialCost * coefficient
	}

	totalCost := materialCost
	for _, amount := range additional {
		totalCost += amount
	}

	unitCost := 0.0
	if quantity > 0 {
		unitCost = totalCost / quantity
	}

	return &CostBreakdown{
		MaterialCost:    materialCost,
		AdditionalCosts: additional,
		TotalCost:       totalCost,
		UnitCost:        unitCost,
		Quantity:        quantity,
	}
}
