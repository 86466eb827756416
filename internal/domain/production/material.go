package production

import "context"

// Material is the catalog view of one raw material: unit, current stock and
// unit price. The engine reads this snapshot and never writes back; stock
// mutation belongs to the storage layer.
type Material struct {
	Key          string
	Name         string
	Unit         string
	UnitPrice    float64
	CurrentStock float64
}

// MaterialRepository resolves material keys against the catalog/stock ledger.
type MaterialRepository interface {
	FindByKey(ctx context.Context, key string) (*Material, error)
	ListAll(ctx context.Context) ([]*Material, error)
}
