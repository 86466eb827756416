package efficiency

// DefaultStandardOutput is the benchmark output rate: 10 units per hour scores
// 100.
const DefaultStandardOutput = 10.0

// Rating buckets an efficiency score.
type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingAverage   Rating = "average"
	RatingLow       Rating = "low"
	RatingVeryLow   Rating = "very_low"
)

// RateScore classifies an efficiency score.
func RateScore(score float64) Rating {
	switch {
	case score >= 90:
		return RatingExcellent
	case score >= 75:
		return RatingGood
	case score >= 60:
		return RatingAverage
	case score >= 40:
		return RatingLow
	default:
		return RatingVeryLow
	}
}

// Recommendations returns the improvement advice shown alongside a
// productivity rating.
func (r Rating) Recommendations() []string {
	switch r {
	case RatingVeryLow:
		return []string{
			"Ish jarayonini qayta ko'rib chiqing",
			"Ishchilarni qayta o'qitish",
			"Texnologiyani yangilash",
		}
	case RatingLow:
		return []string{
			"Vaqtdan yaxshiroq foydalanish",
			"Ish tartibini takomillashtirish",
			"Kichik texnik yaxshilanishlar",
		}
	case RatingAverage:
		return []string{
			"Optimal rejalashtirish",
			"Ishchilarni rag'batlantirish",
			"Doimiy monitoring",
		}
	case RatingGood:
		return []string{
			"Eng yaxshi amaliyotlarni saqlash",
			"Doimiy yaxshilash",
			"Jamoa ishini rivojlantirish",
		}
	case RatingExcellent:
		return []string{
			"Natijalarni saqlash",
			"Tajribani boshqa bo'limlarga o'tkazish",
			"Innovatsiyalarni davom ettirish",
		}
	default:
		return nil
	}
}

// ProductivityResult measures labor output rates for a reporting period.
type ProductivityResult struct {
	TotalOutput         float64
	TotalHours          float64
	Workers             int
	OutputPerHour       float64
	OutputPerWorkerHour float64
	EfficiencyScore     float64
	Rating              Rating
	Recommendations     []string
}

// Analyzer computes labor productivity and equipment utilization over
// explicit inputs.
type Analyzer struct {
	standardOutput float64
}

// NewAnalyzer creates an analyzer; a non-positive standard output falls back
// to the default benchmark.
func NewAnalyzer(standardOutput float64) *Analyzer {
	if standardOutput <= 0 {
		standardOutput = DefaultStandardOutput
	}
	return &Analyzer{standardOutput: standardOutput}
}

// Productivity computes output rates and an efficiency score capped at 100.
// Non-positive hours or workers return a zeroed very_low result instead of
// dividing by zero.
func (a *Analyzer) Productivity(totalOutput, totalHours float64, workers int) ProductivityResult {
	if totalHours <= 0 || workers <= 0 {
		return ProductivityResult{
			TotalOutput:     totalOutput,
			TotalHours:      totalHours,
			Workers:         workers,
			Rating:          RatingVeryLow,
			Recommendations: RatingVeryLow.Recommendations(),
		}
	}

	outputPerHour := totalOutput / totalHours
	outputPerWorkerHour := totalOutput / (totalHours * float64(workers))

	score := outputPerHour / a.standardOutput * 100
	if score > 100 {
		score = 100
	}

	rating := RateScore(score)

	return ProductivityResult{
		TotalOutput:         totalOutput,
		TotalHours:          totalHours,
		Workers:             workers,
		OutputPerHour:       outputPerHour,
		OutputPerWorkerHour: outputPerWorkerHour,
		EfficiencyScore:     score,
		Rating:              rating,
		Recommendations:     rating.Recommendations(),
	}
}
