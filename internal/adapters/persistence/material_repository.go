package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/otabekd/factoryops-go/internal/domain/production"
	"github.com/otabekd/factoryops-go/internal/domain/shared"
)

// GormMaterialRepository implements production.MaterialRepository using GORM.
// Write methods (Save, AdjustStock) sit outside the domain port; they serve
// the catalog-management CLI and seeding.
type GormMaterialRepository struct {
	db *gorm.DB
}

// NewGormMaterialRepository creates a new GORM material repository
func NewGormMaterialRepository(db *gorm.DB) *GormMaterialRepository {
	return &GormMaterialRepository{db: db}
}

// FindByKey retrieves a material by its catalog key
func (r *GormMaterialRepository) FindByKey(ctx context.Context, key string) (*production.Material, error) {
	var model MaterialModel
	result := r.db.WithContext(ctx).Where("key = ?", key).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("material", key)
		}
		return nil, fmt.Errorf("failed to find material: %w", result.Error)
	}

	return modelToMaterial(&model), nil
}

// ListAll retrieves the full material catalog sorted by key
func (r *GormMaterialRepository) ListAll(ctx context.Context) ([]*production.Material, error) {
	var models []MaterialModel
	result := r.db.WithContext(ctx).Order("key ASC").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list materials: %w", result.Error)
	}

	materials := make([]*production.Material, 0, len(models))
	for i := range models {
		materials = append(materials, modelToMaterial(&models[i]))
	}
	return materials, nil
}

// Save upserts a material
func (r *GormMaterialRepository) Save(ctx context.Context, material *production.Material) error {
	model := MaterialModel{
		Key:          material.Key,
		Name:         material.Name,
		Unit:         material.Unit,
		UnitPrice:    material.UnitPrice,
		CurrentStock: material.CurrentStock,
		UpdatedAt:    time.Now(),
	}
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return fmt.Errorf("failed to save material: %w", err)
	}
	return nil
}

// AdjustStock applies a signed delta to a material's stock level and returns
// the updated material
func (r *GormMaterialRepository) AdjustStock(ctx context.Context, key string, delta float64) (*production.Material, error) {
	var model MaterialModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("key = ?", key).First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.NewNotFoundError("material", key)
			}
			return fmt.Errorf("failed to find material: %w", err)
		}

		newStock := model.CurrentStock + delta
		if newStock < 0 {
			return shared.NewValidationError("stock", fmt.Sprintf("adjustment would drive %s stock below zero", key))
		}

		model.CurrentStock = newStock
		model.UpdatedAt = time.Now()
		if err := tx.Save(&model).Error; err != nil {
			return fmt.Errorf("failed to update stock: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return modelToMaterial(&model), nil
}

func modelToMaterial(model *MaterialModel) *production.Material {
	return &production.Material{
		Key:          model.Key,
		Name:         model.Name,
		Unit:         model.Unit,
		UnitPrice:    model.UnitPrice,
		CurrentStock: model.CurrentStock,
	}
}
