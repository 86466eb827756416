package formula

import "github.com/otabekd/factoryops-go/internal/domain/shared"

// BuildCustomFormula assembles an operator-authored formula. This is the one
// place proportion normalization is permitted: if the supplied proportions do
// not sum to 100, each line is rescaled proportionally so they do. An
// already-registered formula that fails Validate is rejected outright, never
// rescaled.
func BuildCustomFormula(productKey string, lines []Line, unit string) (*Formula, error) {
	if productKey == "" {
		return nil, shared.NewValidationError("product_key", "product key is required")
	}
	if len(lines) == 0 {
		return nil, shared.NewValidationError("lines", "formula has no material lines")
	}

	var totalPercent float64
	for _, line := range lines {
		if line.MaterialKey == "" {
			return nil, shared.NewValidationError("lines", "material key is missing")
		}
		if line.ProportionPercent <= 0 {
			return nil, shared.NewValidationError("lines", "proportion must be positive")
		}
		totalPercent += line.ProportionPercent
	}

	normalized := make([]Line, len(lines))
	copy(normalized, lines)

	if !withinTolerance(totalPercent) {
		for i := range normalized {
			normalized[i].ProportionPercent = normalized[i].ProportionPercent / totalPercent * 100
		}
	}

	return &Formula{
		ProductKey: productKey,
		Category:   CategoryCustom,
		Unit:       unit,
		Lines:      normalized,
	}, nil
}
