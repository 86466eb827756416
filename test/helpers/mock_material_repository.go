package helpers

import (
	"context"
	"sort"

	"github.com/otabekd/factoryops-go/internal/domain/production"
	"github.com/otabekd/factoryops-go/internal/domain/shared"
)

// MockMaterialRepository is an in-memory production.MaterialRepository for
// tests.
type MockMaterialRepository struct {
	Materials map[string]*production.Material
}

// NewMockMaterialRepository creates an empty mock repository.
func NewMockMaterialRepository() *MockMaterialRepository {
	return &MockMaterialRepository{Materials: make(map[string]*production.Material)}
}

// Add registers a material under its key.
func (m *MockMaterialRepository) Add(material *production.Material) {
	m.Materials[material.Key] = material
}

func (m *MockMaterialRepository) FindByKey(ctx context.Context, key string) (*production.Material, error) {
	if material, ok := m.Materials[key]; ok {
		return material, nil
	}
	return nil, shared.NewNotFoundError("material", key)
}

func (m *MockMaterialRepository) ListAll(ctx context.Context) ([]*production.Material, error) {
	keys := make([]string, 0, len(m.Materials))
	for k := range m.Materials {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	materials := make([]*production.Material, 0, len(keys))
	for _, k := range keys {
		materials = append(materials, m.Materials[k])
	}
	return materials, nil
}
