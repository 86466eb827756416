package demand

// MaterialDemand is one line of resolved raw-material demand for a production
// run. Derived and ephemeral: produced fresh per calculation, never persisted.
type MaterialDemand struct {
	MaterialKey      string
	QuantityRequired float64
	Unit             string
	UnitPrice        float64
	LineCost         float64
	PriceEstimated   bool
}

// PriceBook maps material keys to known unit prices. Materials missing from
// the book get a keyword-estimated fallback price.
type PriceBook map[string]float64

// Warning flags degraded input data that did not abort the calculation.
type Warning struct {
	MaterialKey string
	Message     string
}

func (w Warning) String() string {
	return w.MaterialKey + ": " + w.Message
}
