package helpers

import (
	"github.com/otabekd/factoryops-go/internal/domain/formula"
	"github.com/otabekd/factoryops-go/internal/domain/production"
)

// CementFixture wires a formula repository and material catalog for the
// standard cement product, with stock levels generous enough to produce 100
// bags.
func CementFixture() (*MockFormulaRepository, *MockMaterialRepository) {
	formulaRepo := NewMockFormulaRepository()
	for _, f := range formula.StandardFormulas() {
		formulaRepo.Formulas[f.ProductKey] = f
	}

	materialRepo := NewMockMaterialRepository()
	materialRepo.Add(&production.Material{Key: "Klinker", Name: "Klinker", Unit: "kg", UnitPrice: 500, CurrentStock: 10000})
	materialRepo.Add(&production.Material{Key: "Gips", Name: "Gips", Unit: "kg", UnitPrice: 300, CurrentStock: 5000})
	materialRepo.Add(&production.Material{Key: "Mineral qo'shimchalar", Name: "Mineral qo'shimchalar", Unit: "kg", UnitPrice: 200, CurrentStock: 2000})

	return formulaRepo, materialRepo
}
