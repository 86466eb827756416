package costing

// CostShare is one category's amount and its percentage of total cost.
type CostShare struct {
	Amount     float64
	Percentage float64
}

// CostBreakdown is a layered cost result for a production run. Additional
// categories are fractions of MaterialCost, stacked on top of it.
type CostBreakdown struct {
	MaterialCost    float64
	AdditionalCosts map[Category]float64
	TotalCost       float64
	UnitCost        float64
	Quantity        float64
}

// Distribution expresses each category as a percentage of total cost.
// Returns an empty map when the total is zero.
func (b *CostBreakdown) Distribution() map[Category]CostShare {
	distribution := make(map[Category]CostShare)
	if b.TotalCost <= 0 {
		return distribution
	}

	distribution[CategoryMaterial] = CostShare{
		Amount:     b.MaterialCost,
		Percentage: b.MaterialCost / b.TotalCost * 100,
	}
	for category, amount := range b.AdditionalCosts {
		distribution[category] = CostShare{
			Amount:     amount,
			Percentage: amount / b.TotalCost * 100,
		}
	}
	return distribution
}

// AdditionalTotal sums every coefficient-driven category.
func (b *CostBreakdown) AdditionalTotal() float64 {
	var total float64
	for _, amount := range b.AdditionalCosts {
		total += amount
	}
	return total
}
