package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/otabekd/factoryops-go/internal/domain/costing"
	"github.com/otabekd/factoryops-go/internal/domain/demand"
	"github.com/otabekd/factoryops-go/internal/domain/production"
	"github.com/otabekd/factoryops-go/internal/domain/profitability"
)

// GormCalculationRepository implements production.CalculationRepository using
// GORM. Summary figures live in columns; the full breakdown travels as a JSON
// details blob.
type GormCalculationRepository struct {
	db *gorm.DB
}

// NewGormCalculationRepository creates a new GORM calculation repository
func NewGormCalculationRepository(db *gorm.DB) *GormCalculationRepository {
	return &GormCalculationRepository{db: db}
}

// calculationDetails is the JSON shape of the non-column calculation data.
type calculationDetails struct {
	Breakdown        *costing.CostBreakdown       `json:"breakdown"`
	Profitability    profitability.Result         `json:"profitability"`
	Materials        []demand.MaterialDemand      `json:"materials"`
	MissingMaterials []production.MissingMaterial `json:"missing_materials,omitempty"`
	Warnings         []demand.Warning             `json:"warnings,omitempty"`
}

// Save appends a calculation to the history
func (r *GormCalculationRepository) Save(ctx context.Context, calc *production.Calculation) error {
	details, err := json.Marshal(calculationDetails{
		Breakdown:        calc.Breakdown,
		Profitability:    calc.Profitability,
		Materials:        calc.Materials,
		MissingMaterials: calc.MissingMaterials,
		Warnings:         calc.Warnings,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal calculation details: %w", err)
	}

	canProduce := 0
	if calc.CanProduce {
		canProduce = 1
	}

	model := CalculationModel{
		CalculationID: calc.CalculationID,
		ProductKey:    calc.ProductKey,
		Quantity:      calc.Quantity,
		MaterialCost:  calc.Breakdown.MaterialCost,
		TotalCost:     calc.Breakdown.TotalCost,
		UnitCost:      calc.Breakdown.UnitCost,
		SellingPrice:  calc.Profitability.SellingPrice,
		TotalProfit:   calc.Profitability.TotalProfit,
		CanProduce:    canProduce,
		Details:       string(details),
		CreatedAt:     time.Now(),
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to save calculation: %w", err)
	}
	return nil
}

// ListRecent returns the most recent calculations, newest first
func (r *GormCalculationRepository) ListRecent(ctx context.Context, limit int) ([]*production.Calculation, error) {
	if limit <= 0 {
		limit = 10
	}

	var models []CalculationModel
	result := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", result.Error)
	}

	calcs := make([]*production.Calculation, 0, len(models))
	for i := range models {
		calc, err := r.modelToCalculation(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert calculation %s: %w", models[i].CalculationID, err)
		}
		calcs = append(calcs, calc)
	}
	return calcs, nil
}

func (r *GormCalculationRepository) modelToCalculation(model *CalculationModel) (*production.Calculation, error) {
	var details calculationDetails
	if model.Details != "" {
		if err := json.Unmarshal([]byte(model.Details), &details); err != nil {
			return nil, fmt.Errorf("failed to unmarshal calculation details: %w", err)
		}
	}

	return &production.Calculation{
		CalculationID:    model.CalculationID,
		ProductKey:       model.ProductKey,
		Quantity:         model.Quantity,
		Breakdown:        details.Breakdown,
		Profitability:    details.Profitability,
		Materials:        details.Materials,
		CanProduce:       model.CanProduce == 1,
		MissingMaterials: details.MissingMaterials,
		Warnings:         details.Warnings,
	}, nil
}
