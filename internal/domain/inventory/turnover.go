package inventory

import "github.com/otabekd/factoryops-go/internal/domain/shared"

// TurnoverEfficiency buckets the annual turnover ratio.
type TurnoverEfficiency string

const (
	TurnoverExcellent TurnoverEfficiency = "excellent"
	TurnoverGood      TurnoverEfficiency = "good"
	TurnoverAverage   TurnoverEfficiency = "average"
	TurnoverLow       TurnoverEfficiency = "low"
	TurnoverVeryLow   TurnoverEfficiency = "very_low"
)

// RecommendedTurnover is the target ratio reports compare against: six full
// inventory turns per year.
const RecommendedTurnover = 6

// TurnoverResult measures how fast inventory converts into sales.
type TurnoverResult struct {
	Ratio            float64
	DaysInInventory  float64
	Efficiency       TurnoverEfficiency
	NeedsImprovement bool
}

// Turnover computes the inventory turnover ratio over a year of sales. A
// non-positive average inventory yields a zeroed very_low result.
func (p *Planner) Turnover(salesValue, averageInventoryValue float64) TurnoverResult {
	if averageInventoryValue <= 0 {
		return TurnoverResult{
			Efficiency:       TurnoverVeryLow,
			NeedsImprovement: true,
		}
	}

	ratio := salesValue / averageInventoryValue

	daysInInventory := 365.0
	if ratio > 0 {
		daysInInventory = 365 / ratio
	}

	var efficiency TurnoverEfficiency
	switch {
	case ratio > 12:
		efficiency = TurnoverExcellent
	case ratio > 8:
		efficiency = TurnoverGood
	case ratio > 4:
		efficiency = TurnoverAverage
	case ratio > 2:
		efficiency = TurnoverLow
	default:
		efficiency = TurnoverVeryLow
	}

	return TurnoverResult{
		Ratio:            shared.Round2(ratio),
		DaysInInventory:  shared.Round1(daysInInventory),
		Efficiency:       efficiency,
		NeedsImprovement: ratio < 4,
	}
}
