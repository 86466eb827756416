package helpers

import (
	"context"
	"sort"

	"github.com/otabekd/factoryops-go/internal/domain/formula"
	"github.com/otabekd/factoryops-go/internal/domain/shared"
)

// MockFormulaRepository is an in-memory formula.Repository for tests.
type MockFormulaRepository struct {
	Formulas map[string]*formula.Formula
	SaveErr  error
	Saved    []*formula.Formula
}

// NewMockFormulaRepository creates an empty mock repository.
func NewMockFormulaRepository() *MockFormulaRepository {
	return &MockFormulaRepository{Formulas: make(map[string]*formula.Formula)}
}

func (m *MockFormulaRepository) FindByProductKey(ctx context.Context, productKey string) (*formula.Formula, error) {
	if f, ok := m.Formulas[productKey]; ok {
		return f, nil
	}
	return nil, shared.NewFormulaNotFoundError(productKey)
}

func (m *MockFormulaRepository) Save(ctx context.Context, f *formula.Formula) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Formulas[f.ProductKey] = f
	m.Saved = append(m.Saved, f)
	return nil
}

func (m *MockFormulaRepository) ListProductKeys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0, len(m.Formulas))
	for k := range m.Formulas {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
