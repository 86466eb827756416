package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/otabekd/factoryops-go/internal/domain/formula"
	"github.com/otabekd/factoryops-go/internal/domain/shared"
)

// SeedStandardFormulas loads the built-in formula library into the repository.
// Existing formulas are left untouched so operator edits survive restarts.
func SeedStandardFormulas(ctx context.Context, repo formula.Repository) error {
	for _, f := range formula.StandardFormulas() {
		_, err := repo.FindByProductKey(ctx, f.ProductKey)
		if err == nil {
			continue
		}
		var nfErr *shared.FormulaNotFoundError
		if !errors.As(err, &nfErr) {
			return fmt.Errorf("failed to check formula %s: %w", f.ProductKey, err)
		}
		if err := repo.Save(ctx, f); err != nil {
			return fmt.Errorf("failed to seed formula %s: %w", f.ProductKey, err)
		}
	}
	return nil
}
