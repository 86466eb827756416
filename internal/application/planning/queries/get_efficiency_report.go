package queries

import (
	"context"
	"fmt"

	"github.com/otabekd/factoryops-go/internal/application/common"
	"github.com/otabekd/factoryops-go/internal/domain/efficiency"
)

// GetEfficiencyReportQuery measures a production period: labor productivity
// and, when equipment hours are supplied, machine utilization.
type GetEfficiencyReportQuery struct {
	TotalOutput    float64
	TotalHours     float64
	Workers        int
	ActualHours    float64
	AvailableHours float64
}

// GetEfficiencyReportResponse combines both views.
type GetEfficiencyReportResponse struct {
	Productivity efficiency.ProductivityResult
	Utilization  *efficiency.UtilizationResult
}

// GetEfficiencyReportHandler delegates to the efficiency analyzer.
type GetEfficiencyReportHandler struct {
	analyzer *efficiency.Analyzer
}

// NewGetEfficiencyReportHandler creates the handler.
func NewGetEfficiencyReportHandler(analyzer *efficiency.Analyzer) *GetEfficiencyReportHandler {
	return &GetEfficiencyReportHandler{analyzer: analyzer}
}

// Handle executes the query.
func (h *GetEfficiencyReportHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetEfficiencyReportQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	response := &GetEfficiencyReportResponse{
		Productivity: h.analyzer.Productivity(query.TotalOutput, query.TotalHours, query.Workers),
	}

	if query.AvailableHours > 0 {
		utilization := h.analyzer.EquipmentUtilization(query.ActualHours, query.AvailableHours)
		response.Utilization = &utilization
	}

	return response, nil
}
