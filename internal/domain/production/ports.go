package production

import "context"

// CalculationRepository persists calculation history. Calculations are
// append-only; the history exists for audit and for the recent-runs report.
type CalculationRepository interface {
	Save(ctx context.Context, calc *Calculation) error
	ListRecent(ctx context.Context, limit int) ([]*Calculation, error)
}
