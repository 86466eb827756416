package profitability_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otabekd/factoryops-go/internal/domain/profitability"
)

func TestAnalyze_NoKnownPriceUsesDefaultMarkup(t *testing.T) {
	// Arrange
	analyzer := profitability.NewAnalyzer(0.20)

	// Act
	result := analyzer.Analyze(1000, 50, 0)

	// Assert
	assert.InDelta(t, 1400, result.SellingPrice, 0.001)
	assert.InDelta(t, 400, result.ProfitPerUnit, 0.001)
	assert.InDelta(t, 20000, result.TotalProfit, 0.001)
	assert.InDelta(t, 40.0, result.ProfitMarginPercent, 0.001)
	assert.InDelta(t, 28.57, result.MarkupPercent, 0.01)
	assert.True(t, result.IsProfitable)
	assert.InDelta(t, 1400, result.RecommendedPrice, 0.001)
}

func TestAnalyze_ConfiguredMarkupOverridesDefault(t *testing.T) {
	// Arrange
	analyzer := profitability.NewAnalyzerWithMarkup(0.20, 1.6)

	// Act
	result := analyzer.Analyze(1000, 10, 0)

	// Assert
	assert.InDelta(t, 1600, result.SellingPrice, 0.001)
	assert.InDelta(t, 600, result.ProfitPerUnit, 0.001)
}

func TestNewAnalyzerWithMarkup_RejectsFactorAtOrBelowOne(t *testing.T) {
	// Act
	analyzer := profitability.NewAnalyzerWithMarkup(0.20, 1.0)

	// Assert
	assert.InDelta(t, profitability.DefaultMarkupFactor, analyzer.MarkupFactor, 0.001)
}

func TestAnalyze_MarginAndMarkupAreDifferentRatios(t *testing.T) {
	// Arrange: price 1200 on cost 1000 → margin 20% of cost, markup 16.67% of price
	analyzer := profitability.NewAnalyzer(0.20)

	// Act
	result := analyzer.Analyze(1000, 1, 1200)

	// Assert
	assert.InDelta(t, 20.0, result.ProfitMarginPercent, 0.001)
	assert.InDelta(t, 16.667, result.MarkupPercent, 0.001)
	assert.True(t, result.IsProfitable)
}

func TestAnalyze_BelowMinimumMarginRecommendsRaisedPrice(t *testing.T) {
	// Arrange
	analyzer := profitability.NewAnalyzer(0.20)

	// Act: margin = 10%, under the 20% floor
	result := analyzer.Analyze(1000, 10, 1100)

	// Assert
	assert.False(t, result.IsProfitable)
	assert.InDelta(t, 1200, result.RecommendedPrice, 0.001)
}

func TestBreakEven_Feasible(t *testing.T) {
	// Act
	result := profitability.BreakEven(5_000_000, 12000, 8500)

	// Assert
	require.True(t, result.IsFeasible)
	assert.Equal(t, 1429.0, result.Units)
	assert.InDelta(t, 3500, result.ContributionMargin, 0.001)
	assert.InDelta(t, 0.292, result.MarginRatio, 0.0001)
	// sales follow the exact break-even point, not the rounded unit count
	assert.InDelta(t, 17_142_857.14, result.SalesAmount, 0.001)
}

func TestBreakEven_PriceBelowVariableCostIsInfeasible(t *testing.T) {
	// Act
	result := profitability.BreakEven(1_000_000, 8000, 8500)

	// Assert: infinite break-even, not an error
	assert.False(t, result.IsFeasible)
	assert.True(t, math.IsInf(result.Units, 1))
	assert.True(t, math.IsInf(result.SalesAmount, 1))
}

func TestROI_RatingBuckets(t *testing.T) {
	tests := []struct {
		name      string
		netProfit float64
		want      profitability.ReturnRating
	}{
		{"excellent above 50", 5_100_000, profitability.RatingExcellent},
		{"very good above 30", 3_500_000, profitability.RatingVeryGood},
		{"good above 20", 2_500_000, profitability.RatingGood},
		{"average above 10", 1_500_000, profitability.RatingAverage},
		{"poor above 0", 500_000, profitability.RatingPoor},
		{"loss at or below 0", -200_000, profitability.RatingLoss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := profitability.ROI(10_000_000, tt.netProfit, 1)
			assert.Equal(t, tt.want, result.Rating)
		})
	}
}

func TestROI_PaybackInfiniteWhenNoProfit(t *testing.T) {
	// Act
	result := profitability.ROI(10_000_000, 0, 1)

	// Assert
	assert.True(t, math.IsInf(result.PaybackPeriodYears, 1))
	assert.False(t, result.IsProfitable)
}

func TestROI_AnnualizesOverPeriod(t *testing.T) {
	// Act: 50% over two years = 25% annually
	result := profitability.ROI(10_000_000, 5_000_000, 2)

	// Assert
	assert.InDelta(t, 50, result.ROIPercent, 0.001)
	assert.InDelta(t, 25, result.AnnualROIPercent, 0.001)
	assert.InDelta(t, 2, result.PaybackPeriodYears, 0.001)
	assert.InDelta(t, 24, result.PaybackPeriodMonths, 0.001)
}

func TestDepreciation_StraightLine(t *testing.T) {
	// Act
	result, err := profitability.Depreciation(10_000_000, 1_000_000, 5, profitability.StraightLine)

	// Assert
	require.NoError(t, err)
	assert.InDelta(t, 1_800_000, result.AnnualDepreciation, 0.001)
	assert.InDelta(t, 150_000, result.MonthlyDepreciation, 0.001)
	require.Len(t, result.Schedule, 5)
	assert.InDelta(t, 8_200_000, result.Schedule[0].BookValue, 0.001)
	assert.InDelta(t, 1_000_000, result.Schedule[4].BookValue, 0.001)
}

func TestDepreciation_DecliningBalanceClampsFinalYear(t *testing.T) {
	// Act: rate = 2/5 = 40%
	result, err := profitability.Depreciation(10_000_000, 1_000_000, 5, profitability.DecliningBalance)

	// Assert
	require.NoError(t, err)
	require.Len(t, result.Schedule, 5)
	assert.InDelta(t, 4_000_000, result.Schedule[0].Depreciation, 0.001)
	assert.InDelta(t, 6_000_000, result.Schedule[0].BookValue, 0.001)

	// Book value never drops below salvage, and lands exactly on it
	for _, year := range result.Schedule {
		assert.GreaterOrEqual(t, year.BookValue, 1_000_000.0-0.001)
	}
	assert.InDelta(t, 1_000_000, result.Schedule[4].BookValue, 0.001)

	// Total depreciation across the schedule equals the depreciable amount
	var total float64
	for _, year := range result.Schedule {
		total += year.Depreciation
	}
	assert.InDelta(t, 9_000_000, total, 0.001)
}

func TestDepreciation_InvalidInputs(t *testing.T) {
	// Act / Assert
	_, err := profitability.Depreciation(1000, 0, 0, profitability.StraightLine)
	assert.Error(t, err)

	_, err = profitability.Depreciation(1000, 2000, 5, profitability.StraightLine)
	assert.Error(t, err)

	_, err = profitability.Depreciation(1000, 0, 5, "sum_of_years")
	assert.Error(t, err)
}

func TestGrowthRate(t *testing.T) {
	assert.InDelta(t, 25.0, profitability.GrowthRate(1250, 1000), 0.001)
	assert.InDelta(t, -10.0, profitability.GrowthRate(900, 1000), 0.001)
	assert.Equal(t, 0.0, profitability.GrowthRate(500, 0))
}
