package queries

import (
	"context"
	"fmt"

	"github.com/otabekd/factoryops-go/internal/application/common"
	"github.com/otabekd/factoryops-go/internal/domain/profitability"
)

// GetBreakEvenQuery locates the break-even point for a cost structure.
type GetBreakEvenQuery struct {
	FixedCosts          float64
	PricePerUnit        float64
	VariableCostPerUnit float64
}

// GetBreakEvenResponse wraps the domain result.
type GetBreakEvenResponse struct {
	Result profitability.BreakEvenResult
}

// GetBreakEvenHandler is a thin pass-through to the domain computation; it
// exists so break-even shares the mediator's metrics/logging path.
type GetBreakEvenHandler struct{}

// NewGetBreakEvenHandler creates the handler.
func NewGetBreakEvenHandler() *GetBreakEvenHandler {
	return &GetBreakEvenHandler{}
}

// Handle executes the query.
func (h *GetBreakEvenHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetBreakEvenQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	return &GetBreakEvenResponse{
		Result: profitability.BreakEven(query.FixedCosts, query.PricePerUnit, query.VariableCostPerUnit),
	}, nil
}

// GetROIQuery evaluates an investment.
type GetROIQuery struct {
	Investment  float64
	NetProfit   float64
	PeriodYears float64
}

// GetROIResponse wraps the domain result.
type GetROIResponse struct {
	Result profitability.ROIResult
}

// GetROIHandler evaluates return on investment.
type GetROIHandler struct{}

// NewGetROIHandler creates the handler.
func NewGetROIHandler() *GetROIHandler {
	return &GetROIHandler{}
}

// Handle executes the query.
func (h *GetROIHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetROIQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	return &GetROIResponse{
		Result: profitability.ROI(query.Investment, query.NetProfit, query.PeriodYears),
	}, nil
}

// GetDepreciationScheduleQuery builds an asset depreciation schedule.
type GetDepreciationScheduleQuery struct {
	AssetValue      float64
	SalvageValue    float64
	UsefulLifeYears int
	Method          profitability.DepreciationMethod
}

// GetDepreciationScheduleResponse wraps the schedule.
type GetDepreciationScheduleResponse struct {
	Result *profitability.DepreciationResult
}

// GetDepreciationScheduleHandler builds depreciation schedules.
type GetDepreciationScheduleHandler struct{}

// NewGetDepreciationScheduleHandler creates the handler.
func NewGetDepreciationScheduleHandler() *GetDepreciationScheduleHandler {
	return &GetDepreciationScheduleHandler{}
}

// Handle executes the query.
func (h *GetDepreciationScheduleHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetDepreciationScheduleQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	result, err := profitability.Depreciation(query.AssetValue, query.SalvageValue, query.UsefulLifeYears, query.Method)
	if err != nil {
		return nil, err
	}
	return &GetDepreciationScheduleResponse{Result: result}, nil
}
