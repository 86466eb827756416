package costing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otabekd/factoryops-go/internal/domain/costing"
	"github.com/otabekd/factoryops-go/internal/domain/demand"
	"github.com/otabekd/factoryops-go/internal/domain/formula"
)

func demandFixture(scale float64) []demand.MaterialDemand {
	return []demand.MaterialDemand{
		{MaterialKey: "Klinker", QuantityRequired: 45 * scale, UnitPrice: 500},
		{MaterialKey: "Gips", QuantityRequired: 2.5 * scale, UnitPrice: 300},
	}
}

func TestEstimate_LayersCoefficientsOnMaterialCost(t *testing.T) {
	// Arrange
	estimator := costing.NewEstimator(nil)
	demands := demandFixture(1)
	materialCost := 45*500.0 + 2.5*300.0

	// Act: "other" product category, so global defaults apply
	breakdown := estimator.Estimate(demands, 1, formula.CategoryOther, nil)

	// Assert: each category is a fraction of material cost, not of the total
	assert.InDelta(t, materialCost, breakdown.MaterialCost, 0.001)
	assert.InDelta(t, materialCost*0.25, breakdown.AdditionalCosts[costing.CategoryLabor], 0.001)
	assert.InDelta(t, materialCost*0.15, breakdown.AdditionalCosts[costing.CategoryEnergy], 0.001)
	assert.InDelta(t, materialCost*0.02, breakdown.AdditionalCosts[costing.CategoryQuality], 0.001)
	assert.InDelta(t, materialCost*1.60, breakdown.TotalCost, 0.001)
}

func TestEstimate_ProductCategoryOverridesLaborAndEnergy(t *testing.T) {
	// Arrange
	estimator := costing.NewEstimator(nil)
	demands := demandFixture(1)

	// Act
	breakdown := estimator.Estimate(demands, 1, formula.CategoryTile, nil)

	// Assert: tile runs labor-heavy (0.35) with energy at 0.20; overhead
	// keeps the global default
	mc := breakdown.MaterialCost
	assert.InDelta(t, mc*0.35, breakdown.AdditionalCosts[costing.CategoryLabor], 0.001)
	assert.InDelta(t, mc*0.20, breakdown.AdditionalCosts[costing.CategoryEnergy], 0.001)
	assert.InDelta(t, mc*0.10, breakdown.AdditionalCosts[costing.CategoryOverhead], 0.001)
}

func TestEstimate_CallerOverridesWinOverEverything(t *testing.T) {
	// Arrange
	estimator := costing.NewEstimator(nil)
	demands := demandFixture(1)
	overrides := map[costing.Category]float64{
		costing.CategoryLabor:     0.50,
		costing.CategoryTransport: 0.08,
	}

	// Act: cement would normally override labor to 0.20
	breakdown := estimator.Estimate(demands, 1, formula.CategoryCement, overrides)

	// Assert
	mc := breakdown.MaterialCost
	assert.InDelta(t, mc*0.50, breakdown.AdditionalCosts[costing.CategoryLabor], 0.001)
	assert.InDelta(t, mc*0.18, breakdown.AdditionalCosts[costing.CategoryEnergy], 0.001)
	assert.InDelta(t, mc*0.08, breakdown.AdditionalCosts[costing.CategoryTransport], 0.001)
}

func TestEstimate_LinearInQuantity(t *testing.T) {
	// Arrange
	estimator := costing.NewEstimator(nil)

	// Act
	single := estimator.Estimate(demandFixture(1), 1, formula.CategoryCement, nil)
	double := estimator.Estimate(demandFixture(2), 2, formula.CategoryCement, nil)

	// Assert: doubling quantity doubles material cost and every category
	assert.InDelta(t, single.MaterialCost*2, double.MaterialCost, 0.001)
	for _, category := range costing.AdditionalCategories() {
		assert.InDelta(t, single.AdditionalCosts[category]*2, double.AdditionalCosts[category], 0.001)
	}
	assert.InDelta(t, single.UnitCost, double.UnitCost, 0.001)
}

func TestEstimate_UnitCostTimesQuantityEqualsTotal(t *testing.T) {
	// Arrange
	estimator := costing.NewEstimator(nil)

	for _, quantity := range []float64{1, 7, 100, 1234} {
		// Act
		breakdown := estimator.Estimate(demandFixture(quantity), quantity, formula.CategoryCement, nil)

		// Assert
		assert.InDelta(t, breakdown.TotalCost, breakdown.UnitCost*quantity, 0.01)
	}
}

func TestEstimate_ZeroQuantityReportsZeroUnitCost(t *testing.T) {
	// Act
	breakdown := costing.NewEstimator(nil).Estimate(nil, 0, formula.CategoryOther, nil)

	// Assert: no division by zero, empty distribution
	assert.Equal(t, 0.0, breakdown.UnitCost)
	assert.Empty(t, breakdown.Distribution())
}

func TestDistribution_SumsToOneHundredPercent(t *testing.T) {
	// Arrange
	estimator := costing.NewEstimator(nil)
	breakdown := estimator.Estimate(demandFixture(10), 10, formula.CategoryConcrete, nil)

	// Act
	distribution := breakdown.Distribution()

	// Assert
	require.Len(t, distribution, 7)
	var totalPercent float64
	for _, share := range distribution {
		totalPercent += share.Percentage
	}
	assert.InDelta(t, 100, totalPercent, 0.0001)
}

func TestResolve_Precedence(t *testing.T) {
	// Arrange
	set := costing.DefaultCoefficientSet()

	// Act / Assert: global default, product override, caller override
	assert.Equal(t, 0.25, set.Resolve(costing.CategoryLabor, formula.CategoryOther, nil))
	assert.Equal(t, 0.30, set.Resolve(costing.CategoryLabor, formula.CategoryRebar, nil))
	assert.Equal(t, 0.99, set.Resolve(costing.CategoryLabor, formula.CategoryRebar,
		map[costing.Category]float64{costing.CategoryLabor: 0.99}))

	// Product overrides never touch non-labor/energy categories
	assert.Equal(t, 0.10, set.Resolve(costing.CategoryOverhead, formula.CategoryRebar, nil))
}
