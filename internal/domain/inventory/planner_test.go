package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otabekd/factoryops-go/internal/domain/inventory"
)

func TestReorderPoint_HighStock(t *testing.T) {
	// Arrange
	planner := inventory.NewPlanner(0)

	// Act
	advice := planner.ReorderPoint(800, 50, 7, 100)

	// Assert: reorder point 450, stock above 450×1.5 = 675
	assert.Equal(t, 350.0, advice.LeadTimeDemand)
	assert.Equal(t, 450.0, advice.ReorderPoint)
	assert.Equal(t, inventory.StatusHigh, advice.Status)
	assert.Equal(t, 0.0, advice.RecommendedOrder)
	assert.InDelta(t, 16, advice.DaysRemaining, 0.001)
}

func TestReorderPoint_DefaultSafetyStock(t *testing.T) {
	// Arrange
	planner := inventory.NewPlanner(0)

	// Act: safety stock not supplied → 3 days of usage
	advice := planner.ReorderPoint(500, 50, 7, -1)

	// Assert
	assert.Equal(t, 150.0, advice.SafetyStock)
	assert.Equal(t, 500.0, advice.ReorderPoint)
	assert.Equal(t, inventory.StatusLow, advice.Status)
	assert.Equal(t, 0.0, advice.RecommendedOrder)
}

func TestReorderPoint_DaysRemainingRoundedToOneDecimal(t *testing.T) {
	// Arrange
	planner := inventory.NewPlanner(0)

	// Act: 1000 / 350 = 2.857... days
	advice := planner.ReorderPoint(1000, 350, 7, -1)

	// Assert
	assert.Equal(t, 2.9, advice.DaysRemaining)
}

func TestReorderPoint_StatusClassification(t *testing.T) {
	planner := inventory.NewPlanner(0)

	tests := []struct {
		name         string
		currentStock float64
		want         inventory.StockStatus
		wantOrder    float64
	}{
		{"critical at or below safety stock", 100, inventory.StatusCritical, 350},
		{"low at or below reorder point", 400, inventory.StatusLow, 50},
		{"normal up to 1.5x reorder point", 600, inventory.StatusNormal, 0},
		{"high above 1.5x reorder point", 700, inventory.StatusHigh, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// reorder point = 50×7 + 100 = 450
			advice := planner.ReorderPoint(tt.currentStock, 50, 7, 100)
			assert.Equal(t, tt.want, advice.Status)
			assert.Equal(t, tt.wantOrder, advice.RecommendedOrder)
		})
	}
}

func TestReorderPoint_ZeroUsageReturnsNotUsed(t *testing.T) {
	// Arrange
	planner := inventory.NewPlanner(0)

	// Act: must not divide by zero
	advice := planner.ReorderPoint(800, 0, 7, 100)

	// Assert
	assert.Equal(t, inventory.StatusNotUsed, advice.Status)
	assert.Equal(t, 0.0, advice.ReorderPoint)
	assert.Equal(t, 0.0, advice.RecommendedOrder)
	assert.Equal(t, 800.0, advice.CurrentStock)
}

func TestTurnover_EfficiencyBuckets(t *testing.T) {
	planner := inventory.NewPlanner(0)

	tests := []struct {
		name  string
		sales float64
		want  inventory.TurnoverEfficiency
	}{
		{"excellent above 12", 13_000_000, inventory.TurnoverExcellent},
		{"good above 8", 9_000_000, inventory.TurnoverGood},
		{"average above 4", 5_000_000, inventory.TurnoverAverage},
		{"low above 2", 3_000_000, inventory.TurnoverLow},
		{"very low otherwise", 1_000_000, inventory.TurnoverVeryLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := planner.Turnover(tt.sales, 1_000_000)
			assert.Equal(t, tt.want, result.Efficiency)
		})
	}
}

func TestTurnover_DaysInInventory(t *testing.T) {
	// Arrange
	planner := inventory.NewPlanner(0)

	// Act
	result := planner.Turnover(7_300_000, 1_000_000)

	// Assert: ratio 7.3 → 50 days
	assert.InDelta(t, 7.3, result.Ratio, 0.001)
	assert.InDelta(t, 50, result.DaysInInventory, 0.001)
	assert.False(t, result.NeedsImprovement)
}

func TestTurnover_RoundsRatioAndDays(t *testing.T) {
	// Act: ratio 3.333... turns, 109.5 days
	result := inventory.NewPlanner(0).Turnover(1_000_000, 300_000)

	// Assert
	assert.Equal(t, 3.33, result.Ratio)
	assert.Equal(t, 109.5, result.DaysInInventory)
	assert.True(t, result.NeedsImprovement)
}

func TestTurnover_ZeroInventoryIsDegenerate(t *testing.T) {
	// Act
	result := inventory.NewPlanner(0).Turnover(1_000_000, 0)

	// Assert
	assert.Equal(t, inventory.TurnoverVeryLow, result.Efficiency)
	assert.Equal(t, 0.0, result.Ratio)
	assert.True(t, result.NeedsImprovement)
}

func TestValuation_TopItemsByValueDescending(t *testing.T) {
	// Arrange
	planner := inventory.NewPlanner(0)
	items := []inventory.StockItem{
		{Name: "Klinker", Quantity: 10000, UnitPrice: 500},   // 5,000,000
		{Name: "Gips", Quantity: 5000, UnitPrice: 300},       // 1,500,000
		{Name: "Qum", Quantity: 20000, UnitPrice: 50},        // 1,000,000
		{Name: "Temir sutka", Quantity: 100, UnitPrice: 2000}, // 200,000
		{Name: "Gil", Quantity: 1000, UnitPrice: 150},        // 150,000
		{Name: "Suv", Quantity: 500, UnitPrice: 2},           // 1,000
	}

	// Act
	result := planner.Valuation(items)

	// Assert
	assert.InDelta(t, 7_851_000, result.TotalValue, 0.001)
	assert.Equal(t, 6, result.ItemCount)
	require.Len(t, result.TopItems, 5)
	assert.Equal(t, "Klinker", result.TopItems[0].Name)
	assert.Equal(t, "Gips", result.TopItems[1].Name)
	for i := 1; i < len(result.TopItems); i++ {
		assert.GreaterOrEqual(t, result.TopItems[i-1].TotalValue, result.TopItems[i].TotalValue)
	}
}

func TestValuation_Empty(t *testing.T) {
	// Act
	result := inventory.NewPlanner(0).Valuation(nil)

	// Assert
	assert.Equal(t, 0.0, result.TotalValue)
	assert.Equal(t, 0, result.ItemCount)
	assert.Equal(t, 0.0, result.AverageValuePerItem)
	assert.Empty(t, result.TopItems)
}
