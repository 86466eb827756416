package formula

import "github.com/otabekd/factoryops-go/internal/domain/shared"

// Catalog resolves product keys to registered formulas. Formulas are created
// and edited by the catalog-management workflow; the engine only reads them.
type Catalog struct {
	formulas map[string]*Formula
}

// NewCatalog builds a catalog from a set of formulas. Every formula must pass
// Validate; the first violation is returned.
func NewCatalog(formulas []*Formula) (*Catalog, error) {
	byKey := make(map[string]*Formula, len(formulas))
	for _, f := range formulas {
		if errs := f.Validate(); len(errs) > 0 {
			return nil, errs[0]
		}
		byKey[f.ProductKey] = f
	}
	return &Catalog{formulas: byKey}, nil
}

// Get returns the formula registered for a product key.
func (c *Catalog) Get(productKey string) (*Formula, error) {
	f, ok := c.formulas[productKey]
	if !ok {
		return nil, shared.NewFormulaNotFoundError(productKey)
	}
	return f, nil
}

// Register adds or replaces a formula after validating it.
func (c *Catalog) Register(f *Formula) error {
	if errs := f.Validate(); len(errs) > 0 {
		return errs[0]
	}
	c.formulas[f.ProductKey] = f
	return nil
}

// ProductKeys lists every product with a registered formula.
func (c *Catalog) ProductKeys() []string {
	keys := make([]string, 0, len(c.formulas))
	for k := range c.formulas {
		keys = append(keys, k)
	}
	return keys
}
