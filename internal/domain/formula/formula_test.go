package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otabekd/factoryops-go/internal/domain/formula"
	"github.com/otabekd/factoryops-go/internal/domain/shared"
)

func validLines() []formula.Line {
	return []formula.Line{
		{MaterialKey: "Klinker", ProportionPercent: 90, QuantityPerUnit: 45, Unit: "kg"},
		{MaterialKey: "Gips", ProportionPercent: 5, QuantityPerUnit: 2.5, Unit: "kg"},
		{MaterialKey: "Mineral qo'shimchalar", ProportionPercent: 5, QuantityPerUnit: 2.5, Unit: "kg"},
	}
}

func TestNewFormula_Valid(t *testing.T) {
	// Act
	f, err := formula.NewFormula("Sement M500", formula.CategoryCement, "qop", validLines())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Sement M500", f.ProductKey)
	assert.InDelta(t, 100, f.TotalProportion(), 0.001)
}

func TestValidate_ProportionSumOutOfTolerance(t *testing.T) {
	// Arrange
	lines := validLines()
	lines[0].ProportionPercent = 89 // sum = 99

	// Act
	_, err := formula.NewFormula("Sement M500", formula.CategoryCement, "qop", lines)

	// Assert
	require.Error(t, err)
	var vErr *shared.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestValidate_AcceptsSumWithinTolerance(t *testing.T) {
	// Arrange: sum = 100.05, inside the ±0.1 tolerance
	lines := validLines()
	lines[0].ProportionPercent = 90.05

	// Act
	_, err := formula.NewFormula("Sement M500", formula.CategoryCement, "qop", lines)

	// Assert
	assert.NoError(t, err)
}

func TestValidate_MissingMaterialKeyAndNonPositiveProportion(t *testing.T) {
	// Arrange
	f := &formula.Formula{
		ProductKey: "Custom",
		Unit:       "qop",
		Lines: []formula.Line{
			{MaterialKey: "", ProportionPercent: 50},
			{MaterialKey: "Qum", ProportionPercent: 0},
		},
	}

	// Act
	errs := f.Validate()

	// Assert: missing key, non-positive proportion, and a bad sum
	assert.Len(t, errs, 3)
}

func TestBuildCustomFormula_NormalizesProportions(t *testing.T) {
	// Arrange: sums to 80, not 100
	lines := []formula.Line{
		{MaterialKey: "Gil", ProportionPercent: 60, QuantityPerUnit: 3.5},
		{MaterialKey: "Qum", ProportionPercent: 20, QuantityPerUnit: 1.0},
	}

	// Act
	f, err := formula.BuildCustomFormula("Maxsus g'isht", lines, "dona")

	// Assert
	require.NoError(t, err)
	assert.InDelta(t, 75, f.Lines[0].ProportionPercent, 0.001)
	assert.InDelta(t, 25, f.Lines[1].ProportionPercent, 0.001)
	assert.InDelta(t, 100, f.TotalProportion(), 0.001)
	assert.Equal(t, formula.CategoryCustom, f.Category)
	assert.Empty(t, f.Validate())
}

func TestBuildCustomFormula_DoesNotMutateInput(t *testing.T) {
	// Arrange
	lines := []formula.Line{
		{MaterialKey: "Gil", ProportionPercent: 60},
		{MaterialKey: "Qum", ProportionPercent: 20},
	}

	// Act
	_, err := formula.BuildCustomFormula("Maxsus g'isht", lines, "dona")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 60.0, lines[0].ProportionPercent)
}

func TestBuildCustomFormula_RejectsNonPositiveProportion(t *testing.T) {
	// Act
	_, err := formula.BuildCustomFormula("Maxsus", []formula.Line{
		{MaterialKey: "Gil", ProportionPercent: -10},
	}, "dona")

	// Assert
	assert.Error(t, err)
}

func TestCatalog_GetUnknownProduct(t *testing.T) {
	// Arrange
	catalog, err := formula.NewCatalog(formula.StandardFormulas())
	require.NoError(t, err)

	// Act
	_, err = catalog.Get("Shisha")

	// Assert
	var nfErr *shared.FormulaNotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestCatalog_StandardFormulasAllValid(t *testing.T) {
	// Arrange
	formulas := formula.StandardFormulas()

	// Act
	catalog, err := formula.NewCatalog(formulas)

	// Assert
	require.NoError(t, err)
	assert.Len(t, catalog.ProductKeys(), len(formulas))
	for _, f := range formulas {
		assert.InDelta(t, 100, f.TotalProportion(), formula.ProportionTolerance, f.ProductKey)
	}
}
