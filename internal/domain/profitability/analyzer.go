package profitability

// DefaultMarkupFactor is applied to unit cost when no catalog selling price is
/// known: 40% markup on cost.
const DefaultMarkupFactor = 1.4

// DefaultMinimumMargin is the margin-on-cost floor (fraction) below which a
// product is flagged unprofitable.
const DefaultMinimumMargin = 0.20

// Result is the profitability view of one production run.
//
// ProfitMarginPercent is profit relative to cost; MarkupPercent is profit
// relative to selling price. The two are different ratios and the labels are
// fixed: margin-on-cost, markup-on-price.
type Result struct {
	SellingPrice        float64
	ProfitPerUnit       float64
	TotalProfit         float64
	ProfitMarginPercent float64
	MarkupPercent       float64
	RecommendedPrice    float64
	IsProfitable        bool
}

// Analyzer derives selling price, profit and margin recommendations from unit
// cost. MinimumMargin is a fraction (0.20 = 20%); MarkupFactor multiplies unit
// cost when no catalog price exists.
type Analyzer struct {
	MinimumMargin float64
	MarkupFactor  float64
}

// NewAnalyzer creates an analyzer; a non-positive minimum margin falls back to
// the default, as does a markup factor of 1 or less.
func NewAnalyzer(minimumMargin float64) *Analyzer {
	if minimumMargin <= 0 {
		minimumMargin = DefaultMinimumMargin
	}
	return &Analyzer{MinimumMargin: minimumMargin, MarkupFactor: DefaultMarkupFactor}
}

// NewAnalyzerWithMarkup creates an analyzer with an explicit markup factor.
func NewAnalyzerWithMarkup(minimumMargin, markupFactor float64) *Analyzer {
	a := NewAnalyzer(minimumMargin)
	if markupFactor > 1 {
		a.MarkupFactor = markupFactor
	}
	return a
}

// Analyze computes the profitability result for a unit cost and quantity.
// knownPrice ≤ 0 means no catalog price exists; the estimate is unit cost with
// the default markup. When the margin misses the configured minimum, the
// recommended price is raised to meet it; otherwise the selling price stands.
func (a *Analyzer) Analyze(unitCost, quantity, knownPrice float64) Result {
	sellingPrice := knownPrice
	if sellingPrice <= 0 {
		sellingPrice = unitCost * a.MarkupFactor
	}

	profitPerUnit := sellingPrice - unitCost

	var marginPercent float64
	if unitCost > 0 {
		marginPercent = profitPerUnit / unitCost * 100
	}
	var markupPercent float64
	if sellingPrice > 0 {
		markupPercent = profitPerUnit / sellingPrice * 100
	}

	minMarginPercent := a.MinimumMargin * 100
	isProfitable := marginPercent >= minMarginPercent

	recommendedPrice := sellingPrice
	if !isProfitable {
		recommendedPrice = unitCost * (1 + a.MinimumMargin)
	}

	return Result{
		SellingPrice:        sellingPrice,
		ProfitPerUnit:       profitPerUnit,
		TotalProfit:         profitPerUnit * quantity,
		ProfitMarginPercent: marginPercent,
		MarkupPercent:       markupPercent,
		RecommendedPrice:    recommendedPrice,
		IsProfitable:        isProfitable,
	}
}
