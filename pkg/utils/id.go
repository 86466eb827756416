package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateCalculationID creates a human-readable calculation ID.
// Format: calc-{productSlug}-{8charHexUUID}
//
// Example:
//   - Input: productKey="Sement M500"
//   - Output: "calc-sement-m500-a3f8e2b1"
func GenerateCalculationID(productKey string) string {
	return "calc-" + slugify(productKey) + "-" + shortUUID()
}

// slugify lowercases a product key and collapses non-alphanumeric runs
// into single hyphens.
func slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// shortUUID creates an 8-character hex string from a UUID. Sufficient
// uniqueness for a per-site calculation history while keeping IDs compact.
func shortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
