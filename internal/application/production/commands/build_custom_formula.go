package commands

import (
	"context"
	"fmt"

	"github.com/otabekd/factoryops-go/internal/application/common"
	"github.com/otabekd/factoryops-go/internal/domain/formula"
)

// BuildCustomFormulaCommand authors a new formula from operator-supplied
// lines. Proportions that do not sum to 100 are rescaled; this is the only
// write path that normalizes.
type BuildCustomFormulaCommand struct {
	ProductKey string
	Lines      []formula.Line
	Unit       string
}

// BuildCustomFormulaResponse returns the normalized, persisted formula.
type BuildCustomFormulaResponse struct {
	Formula *formula.Formula
}

// BuildCustomFormulaHandler validates, normalizes and persists a custom
// formula through the repository port.
type BuildCustomFormulaHandler struct {
	formulaRepo formula.Repository
}

// NewBuildCustomFormulaHandler creates the handler.
func NewBuildCustomFormulaHandler(formulaRepo formula.Repository) *BuildCustomFormulaHandler {
	return &BuildCustomFormulaHandler{formulaRepo: formulaRepo}
}

// Handle executes the command.
func (h *BuildCustomFormulaHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*BuildCustomFormulaCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}
	logger := common.LoggerFromContext(ctx)

	f, err := formula.BuildCustomFormula(cmd.ProductKey, cmd.Lines, cmd.Unit)
	if err != nil {
		return nil, err
	}

	if err := h.formulaRepo.Save(ctx, f); err != nil {
		return nil, fmt.Errorf("failed to save custom formula: %w", err)
	}

	logger.Log("INFO", "Custom formula registered", map[string]interface{}{
		"product_key": f.ProductKey,
		"lines":       len(f.Lines),
	})

	return &BuildCustomFormulaResponse{Formula: f}, nil
}
