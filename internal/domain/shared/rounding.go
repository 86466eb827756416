package shared

import "math"

// Round2 rounds a monetary amount to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds a percentage or day count to 1 decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round3 rounds a material quantity to 3 decimal places.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
