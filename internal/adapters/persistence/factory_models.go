package persistence

import (
	"time"
)

// MaterialModel represents the materials table
type MaterialModel struct {
	Key          string    `gorm:"column:key;primaryKey"`
	Name         string    `gorm:"column:name;not null"`
	Unit         string    `gorm:"column:unit;not null"`
	UnitPrice    float64   `gorm:"column:unit_price;not null;default:0"`
	CurrentStock float64   `gorm:"column:current_stock;not null;default:0"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (MaterialModel) TableName() string {
	return "materials"
}

// FormulaModel represents the formulas table
type FormulaModel struct {
	ProductKey string             `gorm:"column:product_key;primaryKey"`
	Category   string             `gorm:"column:category;not null"`
	Unit       string             `gorm:"column:unit;not null"`
	Lines      []FormulaLineModel `gorm:"foreignKey:ProductKey;references:ProductKey;constraint:OnDelete:CASCADE"`
	UpdatedAt  time.Time          `gorm:"column:updated_at"`
}

func (FormulaModel) TableName() string {
	return "formulas"
}

// FormulaLineModel represents the formula_lines table. Position preserves the
// authoring order of lines within a formula.
type FormulaLineModel struct {
	ID                uint    `gorm:"column:id;primaryKey;autoIncrement"`
	ProductKey        string  `gorm:"column:product_key;not null;index"`
	MaterialKey       string  `gorm:"column:material_key;not null"`
	ProportionPercent float64 `gorm:"column:proportion_percent;not null"`
	QuantityPerUnit   float64 `gorm:"column:quantity_per_unit;not null"`
	Unit              string  `gorm:"column:unit;not null"`
	Position          int     `gorm:"column:position;not null;default:0"`
}

func (FormulaLineModel) TableName() string {
	return "formula_lines"
}

// CalculationModel represents the calculations history table. Summary columns
// are queryable; the full material/missing/warning detail is JSON stored as
// text (SQLite compatible).
type CalculationModel struct {
	CalculationID string    `gorm:"column:calculation_id;primaryKey"`
	ProductKey    string    `gorm:"column:product_key;not null;index"`
	Quantity      float64   `gorm:"column:quantity;not null"`
	MaterialCost  float64   `gorm:"column:material_cost;not null"`
	TotalCost     float64   `gorm:"column:total_cost;not null"`
	UnitCost      float64   `gorm:"column:unit_cost;not null"`
	SellingPrice  float64   `gorm:"column:selling_price;not null"`
	TotalProfit   float64   `gorm:"column:total_profit;not null"`
	CanProduce    int       `gorm:"column:can_produce;not null;default:0"`
	Details       string    `gorm:"column:details;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at;not null"`
}

func (CalculationModel) TableName() string {
	return "calculations"
}
