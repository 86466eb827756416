package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otabekd/factoryops-go/internal/adapters/persistence"
	"github.com/otabekd/factoryops-go/internal/domain/production"
	"github.com/otabekd/factoryops-go/internal/domain/shared"
	"github.com/otabekd/factoryops-go/test/helpers"
)

func TestMaterialRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormMaterialRepository(db)

	material := &production.Material{
		Key:          "Klinker",
		Name:         "Klinker",
		Unit:         "kg",
		UnitPrice:    500,
		CurrentStock: 10000,
	}

	// Act - Save
	err := repo.Save(context.Background(), material)

	// Assert
	require.NoError(t, err)

	// Act - FindByKey
	found, err := repo.FindByKey(context.Background(), "Klinker")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, material.Key, found.Key)
	assert.Equal(t, material.UnitPrice, found.UnitPrice)
	assert.Equal(t, material.CurrentStock, found.CurrentStock)
}

func TestMaterialRepository_SaveUpserts(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormMaterialRepository(db)

	require.NoError(t, repo.Save(context.Background(), &production.Material{
		Key: "Gips", Name: "Gips", Unit: "kg", UnitPrice: 300, CurrentStock: 5000,
	}))

	// Act - save again with a new price
	err := repo.Save(context.Background(), &production.Material{
		Key: "Gips", Name: "Gips", Unit: "kg", UnitPrice: 320, CurrentStock: 5000,
	})

	// Assert
	require.NoError(t, err)

	found, err := repo.FindByKey(context.Background(), "Gips")
	require.NoError(t, err)
	assert.Equal(t, 320.0, found.UnitPrice)

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMaterialRepository_NotFound(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormMaterialRepository(db)

	// Act
	_, err := repo.FindByKey(context.Background(), "nonexistent")

	// Assert
	require.Error(t, err)
	var notFound *shared.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestMaterialRepository_ListAllSorted(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormMaterialRepository(db)

	for _, m := range []*production.Material{
		{Key: "Qum", Name: "Qum", Unit: "kg", UnitPrice: 50, CurrentStock: 20000},
		{Key: "Gil", Name: "Gil", Unit: "kg", UnitPrice: 150, CurrentStock: 8000},
	} {
		require.NoError(t, repo.Save(context.Background(), m))
	}

	// Act
	all, err := repo.ListAll(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Gil", all[0].Key)
	assert.Equal(t, "Qum", all[1].Key)
}

func TestMaterialRepository_AdjustStock(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormMaterialRepository(db)

	require.NoError(t, repo.Save(context.Background(), &production.Material{
		Key: "Klinker", Name: "Klinker", Unit: "kg", UnitPrice: 500, CurrentStock: 1000,
	}))

	// Act - receive a delivery, then consume
	afterDelivery, err := repo.AdjustStock(context.Background(), "Klinker", 500)
	require.NoError(t, err)
	afterConsumption, err := repo.AdjustStock(context.Background(), "Klinker", -1200)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1500.0, afterDelivery.CurrentStock)
	assert.Equal(t, 300.0, afterConsumption.CurrentStock)
}

func TestMaterialRepository_AdjustStockRejectsNegativeBalance(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormMaterialRepository(db)

	require.NoError(t, repo.Save(context.Background(), &production.Material{
		Key: "Gips", Name: "Gips", Unit: "kg", UnitPrice: 300, CurrentStock: 100,
	}))

	// Act
	_, err := repo.AdjustStock(context.Background(), "Gips", -150)

	// Assert
	require.Error(t, err)
	var validation *shared.ValidationError
	assert.ErrorAs(t, err, &validation)

	// Stock is untouched after the failed adjustment
	found, findErr := repo.FindByKey(context.Background(), "Gips")
	require.NoError(t, findErr)
	assert.Equal(t, 100.0, found.CurrentStock)
}

func TestMaterialRepository_AdjustStockUnknownMaterial(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormMaterialRepository(db)

	// Act
	_, err := repo.AdjustStock(context.Background(), "nonexistent", 10)

	// Assert
	require.Error(t, err)
	var notFound *shared.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
