package demand

import (
	"github.com/otabekd/factoryops-go/internal/domain/formula"
	"github.com/otabekd/factoryops-go/internal/domain/shared"
)

// Resolver expands a formula into raw-material demand for a target production
// quantity and prices each line. A missing unit price never fails the
// calculation: the resolver substitutes a keyword-estimated price and attaches
// a warning so the caller can flag reduced confidence.
type Resolver struct {
	estimator *PriceEstimator
}

// NewResolver creates a resolver with the given fallback price estimator.
func NewResolver(estimator *PriceEstimator) *Resolver {
	if estimator == nil {
		estimator = DefaultPriceEstimator()
	}
	return &Resolver{estimator: estimator}
}

// Resolve multiplies each formula line's per-unit quantity by the production
// quantity. Quantity must be positive.
func (r *Resolver) Resolve(f *formula.Formula, quantity float64, prices PriceBook) ([]MaterialDemand, []Warning, error) {
	if quantity <= 0 {
		return nil, nil, shared.NewInvalidQuantityError(quantity)
	}

	demands := make([]MaterialDemand, 0, len(f.Lines))
	var warnings []Warning

	for _, line := range f.Lines {
		required := line.QuantityPerUnit * quantity

		unitPrice, known := prices[line.MaterialKey]
		estimated := false
		if !known || unitPrice <= 0 {
			unitPrice = r.estimator.Estimate(line.MaterialKey)
			estimated = true
			warnings = append(warnings, Warning{
				MaterialKey: line.MaterialKey,
				Message:     "unit price unknown, using estimated price",
			})
		}

		demands = append(demands, MaterialDemand{
			MaterialKey:      line.MaterialKey,
			QuantityRequired: required,
			Unit:             line.Unit,
			UnitPrice:        unitPrice,
			LineCost:         required * unitPrice,
			PriceEstimated:   estimated,
		})
	}

	return demands, warnings, nil
}
