package cli

import (
	"fmt"
	"math"
	"strings"
)

// formatSom renders an amount in so'm with thousands separators, rounded to
// whole currency units.
func formatSom(amount float64) string {
	if math.IsInf(amount, 1) {
		return "∞"
	}
	return groupThousands(amount) + " so'm"
}

// formatQuantity renders a quantity with up to two decimals, trimming
// trailing zeros.
func formatQuantity(quantity float64) string {
	s := fmt.Sprintf("%.2f", quantity)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// formatPercent renders a percentage with one decimal place.
func formatPercent(percent float64) string {
	if math.IsInf(percent, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.1f%%", percent)
}

// groupThousands inserts spaces as thousands separators, the local
// convention for so'm amounts.
func groupThousands(amount float64) string {
	negative := amount < 0
	rounded := int64(math.Round(math.Abs(amount)))

	s := fmt.Sprintf("%d", rounded)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	result := strings.Join(parts, " ")
	if negative {
		result = "-" + result
	}
	return result
}
