package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otabekd/factoryops-go/internal/domain/demand"
	"github.com/otabekd/factoryops-go/internal/domain/production"
)

func TestCheckFeasibility_AllInStock(t *testing.T) {
	// Arrange
	demands := []demand.MaterialDemand{
		{MaterialKey: "Klinker", QuantityRequired: 4500},
		{MaterialKey: "Gips", QuantityRequired: 250},
	}
	stock := production.StockSnapshot{"Klinker": 10000, "Gips": 5000}

	// Act
	canProduce, missing := production.CheckFeasibility(demands, stock)

	// Assert
	assert.True(t, canProduce)
	assert.Empty(t, missing)
}

func TestCheckFeasibility_ItemizesDeficits(t *testing.T) {
	// Arrange
	demands := []demand.MaterialDemand{
		{MaterialKey: "Klinker", QuantityRequired: 4500},
		{MaterialKey: "Gips", QuantityRequired: 250},
	}
	stock := production.StockSnapshot{"Klinker": 3000, "Gips": 5000}

	// Act
	canProduce, missing := production.CheckFeasibility(demands, stock)

	// Assert: deficit = required − available
	assert.False(t, canProduce)
	require.Len(t, missing, 1)
	assert.Equal(t, "Klinker", missing[0].MaterialKey)
	assert.Equal(t, 1500.0, missing[0].Deficit)
	assert.Equal(t, 3000.0, missing[0].Available)
}

func TestCheckFeasibility_UnknownMaterialCountsAsZeroStock(t *testing.T) {
	// Arrange
	demands := []demand.MaterialDemand{
		{MaterialKey: "Oksir", QuantityRequired: 27},
	}

	// Act
	canProduce, missing := production.CheckFeasibility(demands, production.StockSnapshot{})

	// Assert
	assert.False(t, canProduce)
	require.Len(t, missing, 1)
	assert.Equal(t, 27.0, missing[0].Deficit)
}
