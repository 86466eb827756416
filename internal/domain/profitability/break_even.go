package profitability

import (
	"math"

	"github.com/otabekd/factoryops-go/internal/domain/shared"
)

// BreakEvenResult locates the output quantity at which revenue covers total
// cost. Infeasible whenever price does not exceed variable cost: the break-even
// point is infinite and no volume recovers the fixed costs.
type BreakEvenResult struct {
	Units              float64
	SalesAmount        float64
	ContributionMargin float64
	MarginRatio        float64
	IsFeasible         bool
}

// BreakEven computes the break-even point. Units are rounded to the nearest
// whole unit; the sales amount comes from the exact unit count and is rounded
// to currency precision.
func BreakEven(fixedCosts, pricePerUnit, variableCostPerUnit float64) BreakEvenResult {
	if pricePerUnit <= variableCostPerUnit {
		return BreakEvenResult{
			Units:       math.Inf(1),
			SalesAmount: math.Inf(1),
			IsFeasible:  false,
		}
	}

	contributionMargin := pricePerUnit - variableCostPerUnit
	marginRatio := contributionMargin / pricePerUnit

	units := fixedCosts / contributionMargin

	return BreakEvenResult{
		Units:              math.Round(units),
		SalesAmount:        shared.Round2(units * pricePerUnit),
		ContributionMargin: shared.Round2(contributionMargin),
		MarginRatio:        shared.Round3(marginRatio),
		IsFeasible:         true,
	}
}
