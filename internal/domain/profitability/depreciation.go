package profitability

import "github.com/otabekd/factoryops-go/internal/domain/shared"

// DepreciationMethod selects the depreciation schedule shape.
type DepreciationMethod string

const (
	StraightLine     DepreciationMethod = "straight_line"
	DecliningBalance DepreciationMethod = "declining_balance"
)

// DepreciationYear is one row of a depreciation schedule.
type DepreciationYear struct {
	Year         int
	Depreciation float64
	BookValue    float64
}

// DepreciationResult is a year-by-year depreciation schedule with headline
// annual/monthly figures.
type DepreciationResult struct {
	AnnualDepreciation  float64
	MonthlyDepreciation float64
	TotalDepreciation   float64
	Schedule            []DepreciationYear
	Method              DepreciationMethod
}

// Depreciation builds the schedule for an asset. The declining-balance method
// uses rate 2/life and clamps the final year so book value never drops below
// the salvage value.
func Depreciation(assetValue, salvageValue float64, usefulLifeYears int, method DepreciationMethod) (*DepreciationResult, error) {
	if usefulLifeYears <= 0 {
		return nil, shared.NewValidationError("useful_life_years", "useful life must be positive")
	}
	if salvageValue > assetValue {
		return nil, shared.NewValidationError("salvage_value", "salvage value cannot exceed asset value")
	}

	depreciableAmount := assetValue - salvageValue

	switch method {
	case StraightLine:
		annual := depreciableAmount / float64(usefulLifeYears)
		schedule := make([]DepreciationYear, 0, usefulLifeYears)
		bookValue := assetValue
		for year := 1; year <= usefulLifeYears; year++ {
			bookValue -= annual
			if bookValue < salvageValue {
				bookValue = salvageValue
			}
			schedule = append(schedule, DepreciationYear{
				Year:         year,
				Depreciation: annual,
				BookValue:    bookValue,
			})
		}
		return &DepreciationResult{
			AnnualDepreciation:  annual,
			MonthlyDepreciation: annual / 12,
			TotalDepreciation:   depreciableAmount,
			Schedule:            schedule,
			Method:              StraightLine,
		}, nil

	case DecliningBalance:
		rate := 2 / float64(usefulLifeYears)
		schedule := make([]DepreciationYear, 0, usefulLifeYears)
		bookValue := assetValue
		for year := 1; year <= usefulLifeYears; year++ {
			depreciation := bookValue * rate
			// The final year writes the remaining book value down to salvage
			if year == usefulLifeYears || bookValue-depreciation < salvageValue {
				depreciation = bookValue - salvageValue
			}
			bookValue -= depreciation
			schedule = append(schedule, DepreciationYear{
				Year:         year,
				Depreciation: depreciation,
				BookValue:    bookValue,
			})
		}
		annual := schedule[0].Depreciation
		return &DepreciationResult{
			AnnualDepreciation:  annual,
			MonthlyDepreciation: annual / 12,
			TotalDepreciation:   depreciableAmount,
			Schedule:            schedule,
			Method:              DecliningBalance,
		}, nil

	default:
		return nil, shared.NewValidationError("method", "unknown depreciation method")
	}
}
