package setup

import (
	"github.com/otabekd/factoryops-go/internal/application/common"
	planningQueries "github.com/otabekd/factoryops-go/internal/application/planning/queries"
	productionCommands "github.com/otabekd/factoryops-go/internal/application/production/commands"
	productionQueries "github.com/otabekd/factoryops-go/internal/application/production/queries"
	"github.com/otabekd/factoryops-go/internal/domain/costing"
	"github.com/otabekd/factoryops-go/internal/domain/demand"
	"github.com/otabekd/factoryops-go/internal/domain/efficiency"
	"github.com/otabekd/factoryops-go/internal/domain/formula"
	"github.com/otabekd/factoryops-go/internal/domain/inventory"
	"github.com/otabekd/factoryops-go/internal/domain/production"
	"github.com/otabekd/factoryops-go/internal/domain/profitability"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	formulaRepo        formula.Repository
	materialRepo       production.MaterialRepository
	resolver           *demand.Resolver
	estimator          *costing.Estimator
	analyzer           *profitability.Analyzer
	planner            *inventory.Planner
	efficiencyAnalyzer *efficiency.Analyzer
}

// NewHandlerRegistry creates a new handler registry. Nil domain services fall
// back to the built-in tables.
func NewHandlerRegistry(
	formulaRepo formula.Repository,
	materialRepo production.MaterialRepository,
	resolver *demand.Resolver,
	estimator *costing.Estimator,
	analyzer *profitability.Analyzer,
	planner *inventory.Planner,
	efficiencyAnalyzer *efficiency.Analyzer,
) *HandlerRegistry {
	if resolver == nil {
		resolver = demand.NewResolver(nil)
	}
	if estimator == nil {
		estimator = costing.NewEstimator(costing.DefaultCoefficientSet())
	}
	if analyzer == nil {
		analyzer = profitability.NewAnalyzer(profitability.DefaultMinimumMargin)
	}
	if planner == nil {
		planner = inventory.NewPlanner(inventory.DefaultSafetyStockDays)
	}
	if efficiencyAnalyzer == nil {
		efficiencyAnalyzer = efficiency.NewAnalyzer(efficiency.DefaultStandardOutput)
	}

	return &HandlerRegistry{
		formulaRepo:        formulaRepo,
		materialRepo:       materialRepo,
		resolver:           resolver,
		estimator:          estimator,
		analyzer:           analyzer,
		planner:            planner,
		efficiencyAnalyzer: efficiencyAnalyzer,
	}
}

// RegisterProductionHandlers registers the calculation query and the custom
// formula command with the mediator
func (r *HandlerRegistry) RegisterProductionHandlers(m common.Mediator) error {
	calcHandler := productionQueries.NewCalculateProductionCostHandler(
		r.formulaRepo, r.materialRepo, r.resolver, r.estimator, r.analyzer)
	if err := common.RegisterHandler[*productionQueries.CalculateProductionCostQuery](m, calcHandler); err != nil {
		return err
	}

	customHandler := productionCommands.NewBuildCustomFormulaHandler(r.formulaRepo)
	if err := common.RegisterHandler[*productionCommands.BuildCustomFormulaCommand](m, customHandler); err != nil {
		return err
	}

	return nil
}

// RegisterPlanningHandlers registers inventory, financial and efficiency
// report handlers with the mediator
func (r *HandlerRegistry) RegisterPlanningHandlers(m common.Mediator) error {
	reorderHandler := planningQueries.NewGetReorderAdviceHandler(r.materialRepo, r.planner)
	if err := common.RegisterHandler[*planningQueries.GetReorderAdviceQuery](m, reorderHandler); err != nil {
		return err
	}

	alertsHandler := planningQueries.NewListStockAlertsHandler(r.materialRepo, r.planner)
	if err := common.RegisterHandler[*planningQueries.ListStockAlertsQuery](m, alertsHandler); err != nil {
		return err
	}

	inventoryHandler := planningQueries.NewGetInventoryReportHandler(r.materialRepo, r.planner)
	if err := common.RegisterHandler[*planningQueries.GetInventoryReportQuery](m, inventoryHandler); err != nil {
		return err
	}

	if err := common.RegisterHandler[*planningQueries.GetBreakEvenQuery](m, planningQueries.NewGetBreakEvenHandler()); err != nil {
		return err
	}
	if err := common.RegisterHandler[*planningQueries.GetROIQuery](m, planningQueries.NewGetROIHandler()); err != nil {
		return err
	}
	if err := common.RegisterHandler[*planningQueries.GetDepreciationScheduleQuery](m, planningQueries.NewGetDepreciationScheduleHandler()); err != nil {
		return err
	}

	efficiencyHandler := planningQueries.NewGetEfficiencyReportHandler(r.efficiencyAnalyzer)
	if err := common.RegisterHandler[*planningQueries.GetEfficiencyReportQuery](m, efficiencyHandler); err != nil {
		return err
	}

	return nil
}

// RegisterAll registers every command and query handler
func (r *HandlerRegistry) RegisterAll(m common.Mediator) error {
	if err := r.RegisterProductionHandlers(m); err != nil {
		return err
	}
	return r.RegisterPlanningHandlers(m)
}
