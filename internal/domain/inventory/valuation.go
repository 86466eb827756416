package inventory

import "sort"

// TopItemCount is how many highest-value items a valuation surfaces.
const TopItemCount = 5

// StockItem is one warehouse position at valuation time.
type StockItem struct {
	Name      string
	Quantity  float64
	UnitPrice float64
}

// Value returns the position's total value.
func (i StockItem) Value() float64 {
	return i.Quantity * i.UnitPrice
}

// ValuedItem is a stock item with its computed value.
type ValuedItem struct {
	Name       string
	Quantity   float64
	UnitPrice  float64
	TotalValue float64
}

// ValuationResult summarizes the warehouse's monetary value.
type ValuationResult struct {
	TotalValue          float64
	ItemCount           int
	AverageValuePerItem float64
	Items               []ValuedItem
	TopItems            []ValuedItem
}

// Valuation values every stock item and surfaces the top positions by value,
// descending.
func (p *Planner) Valuation(items []StockItem) ValuationResult {
	valued := make([]ValuedItem, 0, len(items))
	var totalValue float64
	for _, item := range items {
		value := item.Value()
		totalValue += value
		valued = append(valued, ValuedItem{
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalValue: value,
		})
	}

	sorted := make([]ValuedItem, len(valued))
	copy(sorted, valued)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalValue > sorted[j].TotalValue
	})

	top := sorted
	if len(top) > TopItemCount {
		top = top[:TopItemCount]
	}

	average := 0.0
	if len(valued) > 0 {
		average = totalValue / float64(len(valued))
	}

	return ValuationResult{
		TotalValue:          totalValue,
		ItemCount:           len(valued),
		AverageValuePerItem: average,
		Items:               valued,
		TopItems:            top,
	}
}
