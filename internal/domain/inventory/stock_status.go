package inventory

// StockStatus classifies a material's stock level against its reorder point.
type StockStatus string

const (
	StatusCritical StockStatus = "critical"
	StatusLow      StockStatus = "low"
	StatusNormal   StockStatus = "normal"
	StatusHigh     StockStatus = "high"
	StatusNotUsed  StockStatus = "not_used"
)

// NeedsOrder returns true when stock has fallen to or below the reorder point.
func (s StockStatus) NeedsOrder() bool {
	return s == StatusCritical || s == StatusLow
}

// IsAlertable returns true for statuses the notification layer should raise a
// low-stock alert for.
func (s StockStatus) IsAlertable() bool {
	return s == StatusCritical || s == StatusLow
}

// Order returns numeric ordering for comparison. Lower order = less stock.
func (s StockStatus) Order() int {
	switch s {
	case StatusCritical:
		return 1
	case StatusLow:
		return 2
	case StatusNormal:
		return 3
	case StatusHigh:
		return 4
	default:
		return 0
	}
}

func (s StockStatus) String() string {
	return string(s)
}
