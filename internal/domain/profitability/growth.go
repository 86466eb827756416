package profitability

// GrowthRate returns the percentage change from previous to current. A zero
// previous value yields 0 rather than a division blowup.
func GrowthRate(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
