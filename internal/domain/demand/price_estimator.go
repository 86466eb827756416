package demand

import "strings"

// KeywordPrice pairs a material-name keyword with a fallback unit price.
// Entries are matched in order; the first keyword contained in the material
// name wins.
type KeywordPrice struct {
	Keyword string
	Price   float64
}

// PriceEstimator supplies fallback unit prices for materials with no known
// price, from an ordered keyword table with a final wildcard default.
type PriceEstimator struct {
	table        []KeywordPrice
	defaultPrice float64
}

// NewPriceEstimator builds an estimator from an ordered keyword table.
func NewPriceEstimator(table []KeywordPrice, defaultPrice float64) *PriceEstimator {
	return &PriceEstimator{table: table, defaultPrice: defaultPrice}
}

// DefaultPriceEstimator returns the built-in fallback table for construction
// raw materials.
func DefaultPriceEstimator() *PriceEstimator {
	return NewPriceEstimator([]KeywordPrice{
		{Keyword: "klinker", Price: 500},
		{Keyword: "gips", Price: 300},
		{Keyword: "qum", Price: 50},
		{Keyword: "shag'al", Price: 80},
		{Keyword: "temir", Price: 2000},
		{Keyword: "gil", Price: 150},
		{Keyword: "plastik", Price: 1200},
		{Keyword: "kimyoviy", Price: 2500},
	}, 1000)
}

// Estimate returns a keyword-matched price for a material name, falling back
// to the wildcard default when no keyword matches.
func (e *PriceEstimator) Estimate(materialName string) float64 {
	name := strings.ToLower(materialName)
	for _, entry := range e.table {
		if strings.Contains(name, strings.ToLower(entry.Keyword)) {
			return entry.Price
		}
	}
	return e.defaultPrice
}
