package formula

import (
	"fmt"

	"github.com/otabekd/factoryops-go/internal/domain/shared"
)

// ProportionTolerance is the allowed deviation of a formula's proportion sum
// from 100 percent.
const ProportionTolerance = 0.1

// Line is a single bill-of-materials entry: one raw material, its share of the
// mix and the absolute quantity consumed per output unit.
type Line struct {
	MaterialKey       string
	ProportionPercent float64
	QuantityPerUnit   float64
	Unit              string
}

// Formula is a product's complete bill of materials. Lines are ordered; the
// proportions must sum to 100 within ProportionTolerance.
type Formula struct {
	ProductKey string
	Category   ProductCategory
	Unit       string
	Lines      []Line
}

// NewFormula creates a formula and validates it eagerly.
func NewFormula(productKey string, category ProductCategory, unit string, lines []Line) (*Formula, error) {
	f := &Formula{
		ProductKey: productKey,
		Category:   category,
		Unit:       unit,
		Lines:      lines,
	}
	if errs := f.Validate(); len(errs) > 0 {
		return nil, errs[0]
	}
	return f, nil
}

// Validate checks a registered formula. Out-of-tolerance proportion sums are
// rejected here, never silently corrected; only BuildCustomFormula normalizes.
func (f *Formula) Validate() []error {
	var errs []error

	if f.ProductKey == "" {
		errs = append(errs, shared.NewValidationError("product_key", "product key is required"))
	}
	if len(f.Lines) == 0 {
		errs = append(errs, shared.NewValidationError("lines", "formula has no material lines"))
	}

	var totalPercent float64
	for i, line := range f.Lines {
		field := fmt.Sprintf("lines[%d]", i)
		if line.MaterialKey == "" {
			errs = append(errs, shared.NewValidationError(field, "material key is missing"))
		}
		if line.ProportionPercent <= 0 {
			errs = append(errs, shared.NewValidationError(field, "proportion must be positive"))
		}
		totalPercent += line.ProportionPercent
	}

	if len(f.Lines) > 0 && !withinTolerance(totalPercent) {
		errs = append(errs, shared.NewValidationError(
			"lines",
			fmt.Sprintf("proportions must sum to 100%%, got %.2f%%", totalPercent),
		))
	}

	return errs
}

// TotalProportion returns the sum of proportion percentages across lines.
func (f *Formula) TotalProportion() float64 {
	var total float64
	for _, line := range f.Lines {
		total += line.ProportionPercent
	}
	return total
}

func withinTolerance(totalPercent float64) bool {
	diff := totalPercent - 100
	if diff < 0 {
		diff = -diff
	}
	return diff <= ProportionTolerance
}
