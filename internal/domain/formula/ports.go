package formula

import "context"

// Repository persists formulas. Owned by the catalog-management workflow; the
// engine reads, the custom-formula command writes.
type Repository interface {
	FindByProductKey(ctx context.Context, productKey string) (*Formula, error)
	Save(ctx context.Context, f *Formula) error
	ListProductKeys(ctx context.Context) ([]string, error)
}
