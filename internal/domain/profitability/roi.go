package profitability

import "math"

// ReturnRating buckets annualized ROI into qualitative grades.
type ReturnRating string

const (
	RatingExcellent ReturnRating = "excellent"
	RatingVeryGood  ReturnRating = "very_good"
	RatingGood      ReturnRating = "good"
	RatingAverage   ReturnRating = "average"
	RatingPoor      ReturnRating = "poor"
	RatingLoss      ReturnRating = "loss"
	RatingInvalid   ReturnRating = "invalid"
)

// RateAnnualROI classifies an annual ROI percentage.
func RateAnnualROI(annualROIPercent float64) ReturnRating {
	switch {
	case annualROIPercent > 50:
		return RatingExcellent
	case annualROIPercent > 30:
		return RatingVeryGood
	case annualROIPercent > 20:
		return RatingGood
	case annualROIPercent > 10:
		return RatingAverage
	case annualROIPercent > 0:
		return RatingPoor
	default:
		return RatingLoss
	}
}

// ROIResult reports return on investment over a period.
type ROIResult struct {
	ROIPercent          float64
	AnnualROIPercent    float64
	PaybackPeriodYears  float64
	PaybackPeriodMonths float64
	Rating              ReturnRating
	IsProfitable        bool
}

// ROI computes return on investment. A non-positive investment yields an
// invalid result; a non-positive net profit makes the payback period infinite.
func ROI(investment, netProfit, periodYears float64) ROIResult {
	if investment <= 0 {
		return ROIResult{
			PaybackPeriodYears:  math.Inf(1),
			PaybackPeriodMonths: math.Inf(1),
			Rating:              RatingInvalid,
		}
	}

	roiPercent := netProfit / investment * 100

	annualROI := roiPercent
	if periodYears > 0 {
		annualROI = roiPercent / periodYears
	}

	payback := math.Inf(1)
	if netProfit > 0 {
		payback = investment / netProfit
	}

	return ROIResult{
		ROIPercent:          roiPercent,
		AnnualROIPercent:    annualROI,
		PaybackPeriodYears:  payback,
		PaybackPeriodMonths: payback * 12,
		Rating:              RateAnnualROI(annualROI),
		IsProfitable:        roiPercent > 0,
	}
}
