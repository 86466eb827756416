package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/otabekd/factoryops-go/internal/domain/formula"
	"github.com/otabekd/factoryops-go/internal/domain/shared"
)

// GormFormulaRepository implements formula.Repository using GORM
type GormFormulaRepository struct {
	db *gorm.DB
}

// NewGormFormulaRepository creates a new GORM formula repository
func NewGormFormulaRepository(db *gorm.DB) *GormFormulaRepository {
	return &GormFormulaRepository{db: db}
}

// FindByProductKey retrieves a formula with its lines in authoring order
func (r *GormFormulaRepository) FindByProductKey(ctx context.Context, productKey string) (*formula.Formula, error) {
	var model FormulaModel
	result := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("product_key = ?", productKey).
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewFormulaNotFoundError(productKey)
		}
		return nil, fmt.Errorf("failed to find formula: %w", result.Error)
	}

	return r.modelToFormula(&model)
}

// Save upserts a formula, replacing its lines
func (r *GormFormulaRepository) Save(ctx context.Context, f *formula.Formula) error {
	model := r.formulaToModel(f)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_key = ?", f.ProductKey).Delete(&FormulaLineModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear formula lines: %w", err)
		}
		if err := tx.Save(model).Error; err != nil {
			return fmt.Errorf("failed to save formula: %w", err)
		}
		return nil
	})
}

// ListProductKeys returns all known product keys sorted alphabetically
func (r *GormFormulaRepository) ListProductKeys(ctx context.Context) ([]string, error) {
	var keys []string
	result := r.db.WithContext(ctx).
		Model(&FormulaModel{}).
		Order("product_key ASC").
		Pluck("product_key", &keys)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list product keys: %w", result.Error)
	}
	return keys, nil
}

func (r *GormFormulaRepository) modelToFormula(model *FormulaModel) (*formula.Formula, error) {
	lines := make([]formula.Line, 0, len(model.Lines))
	for _, line := range model.Lines {
		lines = append(lines, formula.Line{
			MaterialKey:       line.MaterialKey,
			ProportionPercent: line.ProportionPercent,
			QuantityPerUnit:   line.QuantityPerUnit,
			Unit:              line.Unit,
		})
	}

	return &formula.Formula{
		ProductKey: model.ProductKey,
		Category:   formula.ParseProductCategory(model.Category),
		Unit:       model.Unit,
		Lines:      lines,
	}, nil
}

func (r *GormFormulaRepository) formulaToModel(f *formula.Formula) *FormulaModel {
	lines := make([]FormulaLineModel, 0, len(f.Lines))
	for i, line := range f.Lines {
		lines = append(lines, FormulaLineModel{
			ProductKey:        f.ProductKey,
			MaterialKey:       line.MaterialKey,
			ProportionPercent: line.ProportionPercent,
			QuantityPerUnit:   line.QuantityPerUnit,
			Unit:              line.Unit,
			Position:          i,
		})
	}

	return &FormulaModel{
		ProductKey: f.ProductKey,
		Category:   f.Category.String(),
		Unit:       f.Unit,
		Lines:      lines,
		UpdatedAt:  time.Now(),
	}
}
