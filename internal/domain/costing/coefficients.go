package costing

import "github.com/otabekd/factoryops-go/internal/domain/formula"

// Coefficients are dimensionless fractions of material cost, never of the
// running total. Three layers merge with increasing precedence:
// global defaults, then product-category overrides, then caller overrides.

// CategoryOverrides holds the labor/energy coefficient overrides for one
// product category. Only these two categories vary by product: tile skews
// labor-heavy, cement skews energy-heavy.
type CategoryOverrides struct {
	Labor  float64
	Energy float64
}

// CoefficientSet is the immutable coefficient configuration injected into the
// estimator at construction time.
type CoefficientSet struct {
	defaults         map[Category]float64
	productOverrides map[formula.ProductCategory]CategoryOverrides
}

// NewCoefficientSet builds a coefficient set from explicit tables.
func NewCoefficientSet(defaults map[Category]float64, productOverrides map[formula.ProductCategory]CategoryOverrides) *CoefficientSet {
	d := make(map[Category]float64, len(defaults))
	for k, v := range defaults {
		d[k] = v
	}
	p := make(map[formula.ProductCategory]CategoryOverrides, len(productOverrides))
	for k, v := range productOverrides {
		p[k] = v
	}
	return &CoefficientSet{defaults: d, productOverrides: p}
}

// DefaultCoefficients returns a fresh copy of the global default coefficient
// table. Callers may modify the copy before building a CoefficientSet.
func DefaultCoefficients() map[Category]float64 {
	return map[Category]float64{
		CategoryLabor:     0.25,
		CategoryEnergy:    0.15,
		CategoryOverhead:  0.10,
		CategoryTransport: 0.05,
		CategoryPackaging: 0.03,
		CategoryQuality:   0.02,
	}
}

// DefaultProductOverrides returns a fresh copy of the per-product-category
// labor/energy overrides.
func DefaultProductOverrides() map[formula.ProductCategory]CategoryOverrides {
	return map[formula.ProductCategory]CategoryOverrides{
		formula.CategoryCement:   {Labor: 0.20, Energy: 0.18},
		formula.CategoryRebar:    {Labor: 0.30, Energy: 0.25},
		formula.CategoryTile:     {Labor: 0.35, Energy: 0.20},
		formula.CategoryFlooring: {Labor: 0.25, Energy: 0.15},
		formula.CategoryConcrete: {Labor: 0.15, Energy: 0.10},
	}
}

// DefaultCoefficientSet returns the standard coefficient tables for
// construction-materials production.
func DefaultCoefficientSet() *CoefficientSet {
	return NewCoefficientSet(DefaultCoefficients(), DefaultProductOverrides())
}

// Resolve returns the effective coefficient for a category with documented
// precedence: caller override, then product-category override (labor/energy
// only), then the global default.
func (s *CoefficientSet) Resolve(category Category, productCategory formula.ProductCategory, overrides map[Category]float64) float64 {
	if v, ok := overrides[category]; ok {
		return v
	}

	if po, ok := s.productOverrides[productCategory]; ok {
		switch category {
		case CategoryLabor:
			return po.Labor
		case CategoryEnergy:
			return po.Energy
		}
	}

	return s.defaults[category]
}
