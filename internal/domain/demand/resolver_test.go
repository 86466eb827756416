package demand_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otabekd/factoryops-go/internal/domain/demand"
	"github.com/otabekd/factoryops-go/internal/domain/formula"
	"github.com/otabekd/factoryops-go/internal/domain/shared"
)

func cementFormula(t *testing.T) *formula.Formula {
	t.Helper()
	f, err := formula.NewFormula("Sement M500", formula.CategoryCement, "qop", []formula.Line{
		{MaterialKey: "Klinker", ProportionPercent: 90, QuantityPerUnit: 45, Unit: "kg"},
		{MaterialKey: "Gips", ProportionPercent: 5, QuantityPerUnit: 2.5, Unit: "kg"},
		{MaterialKey: "Mineral qo'shimchalar", ProportionPercent: 5, QuantityPerUnit: 2.5, Unit: "kg"},
	})
	require.NoError(t, err)
	return f
}

func TestResolve_ScalesQuantitiesExactly(t *testing.T) {
	// Arrange
	resolver := demand.NewResolver(nil)
	prices := demand.PriceBook{"Klinker": 500, "Gips": 300, "Mineral qo'shimchalar": 200}

	// Act
	demands, warnings, err := resolver.Resolve(cementFormula(t), 100, prices)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, demands, 3)
	assert.Equal(t, 4500.0, demands[0].QuantityRequired)
	assert.Equal(t, 250.0, demands[1].QuantityRequired)
	assert.Equal(t, 4500.0*500, demands[0].LineCost)
	assert.False(t, demands[0].PriceEstimated)
}

func TestResolve_RejectsNonPositiveQuantity(t *testing.T) {
	// Arrange
	resolver := demand.NewResolver(nil)

	for _, qty := range []float64{0, -5} {
		// Act
		_, _, err := resolver.Resolve(cementFormula(t), qty, demand.PriceBook{})

		// Assert
		var iqErr *shared.InvalidQuantityError
		assert.ErrorAs(t, err, &iqErr)
	}
}

func TestResolve_MissingPriceWarnsAndEstimates(t *testing.T) {
	// Arrange: only Gips has a known price
	resolver := demand.NewResolver(nil)
	prices := demand.PriceBook{"Gips": 300}

	// Act
	demands, warnings, err := resolver.Resolve(cementFormula(t), 10, prices)

	// Assert: the calculation proceeds, flagged with warnings
	require.NoError(t, err)
	assert.Len(t, warnings, 2)
	assert.Equal(t, "Klinker", warnings[0].MaterialKey)
	// the rendered warning names the material
	assert.Contains(t, warnings[0].String(), "Klinker")

	// Klinker matches the keyword table; the additive falls through to the
	// wildcard default
	assert.Equal(t, 500.0, demands[0].UnitPrice)
	assert.True(t, demands[0].PriceEstimated)
	assert.Equal(t, 1000.0, demands[2].UnitPrice)
}

func TestResolve_ZeroPriceTreatedAsUnknown(t *testing.T) {
	// Arrange
	resolver := demand.NewResolver(nil)
	prices := demand.PriceBook{"Klinker": 0, "Gips": 300, "Mineral qo'shimchalar": 200}

	// Act
	demands, warnings, err := resolver.Resolve(cementFormula(t), 1, prices)

	// Assert
	require.NoError(t, err)
	assert.Len(t, warnings, 1)
	assert.Equal(t, 500.0, demands[0].UnitPrice)
}

func TestPriceEstimator_KeywordMatchIsCaseInsensitive(t *testing.T) {
	// Arrange
	estimator := demand.DefaultPriceEstimator()

	// Act / Assert
	assert.Equal(t, 500.0, estimator.Estimate("KLINKER yuqori sifat"))
	assert.Equal(t, 2000.0, estimator.Estimate("Temir sutka"))
	assert.Equal(t, 1000.0, estimator.Estimate("Nomalum material"))
}

func TestPriceEstimator_FirstMatchWins(t *testing.T) {
	// Arrange: ordered table, both keywords present in the name
	estimator := demand.NewPriceEstimator([]demand.KeywordPrice{
		{Keyword: "gips", Price: 300},
		{Keyword: "tosh", Price: 180},
	}, 1000)

	// Act
	price := estimator.Estimate("Gips toshi")

	// Assert
	assert.Equal(t, 300.0, price)
}
