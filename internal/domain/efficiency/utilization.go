package efficiency

// OptimalUtilizationRate is the target utilization fraction reports recommend.
const OptimalUtilizationRate = 0.75

// UtilizationStatus buckets an equipment utilization rate.
type UtilizationStatus string

const (
	UtilizationOver         UtilizationStatus = "over_utilized"
	UtilizationOptimal      UtilizationStatus = "optimal"
	UtilizationUnder        UtilizationStatus = "under_utilized"
	UtilizationLow          UtilizationStatus = "low"
	UtilizationVeryLow      UtilizationStatus = "very_low"
	UtilizationNotAvailable UtilizationStatus = "not_available"
)

// UtilizationResult measures how much of the available machine time was used.
type UtilizationResult struct {
	ActualHours      float64
	AvailableHours   float64
	UtilizationRate  float64
	IdleRate         float64
	Status           UtilizationStatus
	RecommendedHours float64
}

// EquipmentUtilization computes the utilization rate as a percentage of
// available hours. Non-positive availability returns a fully-idle
// not_available result.
func (a *Analyzer) EquipmentUtilization(actualHours, availableHours float64) UtilizationResult {
	if availableHours <= 0 {
		return UtilizationResult{
			ActualHours:    actualHours,
			AvailableHours: availableHours,
			IdleRate:       100,
			Status:         UtilizationNotAvailable,
		}
	}

	rate := actualHours / availableHours * 100

	var status UtilizationStatus
	switch {
	case rate >= 90:
		status = UtilizationOver
	case rate >= 75:
		status = UtilizationOptimal
	case rate >= 50:
		status = UtilizationUnder
	case rate >= 25:
		status = UtilizationLow
	default:
		status = UtilizationVeryLow
	}

	return UtilizationResult{
		ActualHours:      actualHours,
		AvailableHours:   availableHours,
		UtilizationRate:  rate,
		IdleRate:         100 - rate,
		Status:           status,
		RecommendedHours: availableHours * OptimalUtilizationRate,
	}
}
