package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otabekd/factoryops-go/internal/adapters/persistence"
	"github.com/otabekd/factoryops-go/internal/domain/formula"
	"github.com/otabekd/factoryops-go/internal/domain/shared"
	"github.com/otabekd/factoryops-go/test/helpers"
)

func TestFormulaRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormFormulaRepository(db)

	saved := &formula.Formula{
		ProductKey: "Sement M500",
		Category:   formula.CategoryCement,
		Unit:       "qop",
		Lines: []formula.Line{
			{MaterialKey: "Klinker", ProportionPercent: 90, QuantityPerUnit: 45, Unit: "kg"},
			{MaterialKey: "Gips", ProportionPercent: 5, QuantityPerUnit: 2.5, Unit: "kg"},
			{MaterialKey: "Mineral qo'shimchalar", ProportionPercent: 5, QuantityPerUnit: 2.5, Unit: "kg"},
		},
	}

	// Act - Save
	err := repo.Save(context.Background(), saved)

	// Assert
	require.NoError(t, err)

	// Act - FindByProductKey
	found, err := repo.FindByProductKey(context.Background(), "Sement M500")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, saved.ProductKey, found.ProductKey)
	assert.Equal(t, formula.CategoryCement, found.Category)
	assert.Equal(t, "qop", found.Unit)
	require.Len(t, found.Lines, 3)
	assert.Equal(t, "Klinker", found.Lines[0].MaterialKey)
	assert.Equal(t, "Gips", found.Lines[1].MaterialKey)
	assert.Equal(t, "Mineral qo'shimchalar", found.Lines[2].MaterialKey)
	assert.Equal(t, 90.0, found.Lines[0].ProportionPercent)
	assert.Equal(t, 45.0, found.Lines[0].QuantityPerUnit)
}

func TestFormulaRepository_SaveReplacesLines(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormFormulaRepository(db)

	original := &formula.Formula{
		ProductKey: "Beton M300",
		Category:   formula.CategoryConcrete,
		Unit:       "m3",
		Lines: []formula.Line{
			{MaterialKey: "Sement", ProportionPercent: 50, QuantityPerUnit: 175, Unit: "kg"},
			{MaterialKey: "Qum", ProportionPercent: 50, QuantityPerUnit: 175, Unit: "kg"},
		},
	}
	require.NoError(t, repo.Save(context.Background(), original))

	replacement := &formula.Formula{
		ProductKey: "Beton M300",
		Category:   formula.CategoryConcrete,
		Unit:       "m3",
		Lines: []formula.Line{
			{MaterialKey: "Sement", ProportionPercent: 20, QuantityPerUnit: 350, Unit: "kg"},
			{MaterialKey: "Qum", ProportionPercent: 40, QuantityPerUnit: 700, Unit: "kg"},
			{MaterialKey: "Shag'al", ProportionPercent: 40, QuantityPerUnit: 700, Unit: "kg"},
		},
	}

	// Act
	err := repo.Save(context.Background(), replacement)

	// Assert
	require.NoError(t, err)

	found, err := repo.FindByProductKey(context.Background(), "Beton M300")
	require.NoError(t, err)
	require.Len(t, found.Lines, 3)
	assert.Equal(t, "Shag'al", found.Lines[2].MaterialKey)
	assert.Equal(t, 350.0, found.Lines[0].QuantityPerUnit)
}

func TestFormulaRepository_NotFound(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormFormulaRepository(db)

	// Act
	_, err := repo.FindByProductKey(context.Background(), "nonexistent")

	// Assert
	require.Error(t, err)
	var notFound *shared.FormulaNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestFormulaRepository_ListProductKeys(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormFormulaRepository(db)

	for _, f := range []*formula.Formula{
		{
			ProductKey: "Kafel 30x30",
			Category:   formula.CategoryTile,
			Unit:       "m2",
			Lines:      []formula.Line{{MaterialKey: "Gil", ProportionPercent: 100, QuantityPerUnit: 12, Unit: "kg"}},
		},
		{
			ProductKey: "Gips qop 25kg",
			Category:   formula.CategoryGypsum,
			Unit:       "qop",
			Lines:      []formula.Line{{MaterialKey: "Gips", ProportionPercent: 100, QuantityPerUnit: 25, Unit: "kg"}},
		},
	} {
		require.NoError(t, repo.Save(context.Background(), f))
	}

	// Act
	keys, err := repo.ListProductKeys(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"Gips qop 25kg", "Kafel 30x30"}, keys)
}

func TestSeedStandardFormulas(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormFormulaRepository(db)

	// Act - seed twice to verify idempotence
	require.NoError(t, persistence.SeedStandardFormulas(context.Background(), repo))
	require.NoError(t, persistence.SeedStandardFormulas(context.Background(), repo))

	// Assert
	keys, err := repo.ListProductKeys(context.Background())
	require.NoError(t, err)
	assert.Len(t, keys, len(formula.StandardFormulas()))

	found, err := repo.FindByProductKey(context.Background(), "Sement M500")
	require.NoError(t, err)
	assert.Equal(t, formula.CategoryCement, found.Category)
	assert.NotEmpty(t, found.Lines)
}

func TestSeedStandardFormulas_KeepsLocalEdits(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormFormulaRepository(db)

	edited := &formula.Formula{
		ProductKey: "Sement M500",
		Category:   formula.CategoryCement,
		Unit:       "qop",
		Lines: []formula.Line{
			{MaterialKey: "Klinker", ProportionPercent: 100, QuantityPerUnit: 50, Unit: "kg"},
		},
	}
	require.NoError(t, repo.Save(context.Background(), edited))

	// Act
	require.NoError(t, persistence.SeedStandardFormulas(context.Background(), repo))

	// Assert - seeding does not overwrite the edited formula
	found, err := repo.FindByProductKey(context.Background(), "Sement M500")
	require.NoError(t, err)
	require.Len(t, found.Lines, 1)
	assert.Equal(t, 50.0, found.Lines[0].QuantityPerUnit)
}
