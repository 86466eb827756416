package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/otabekd/factoryops-go/internal/adapters/persistence"
	"github.com/otabekd/factoryops-go/internal/application/common"
	"github.com/otabekd/factoryops-go/internal/application/setup"
	"github.com/otabekd/factoryops-go/internal/domain/costing"
	"github.com/otabekd/factoryops-go/internal/domain/demand"
	"github.com/otabekd/factoryops-go/internal/domain/efficiency"
	"github.com/otabekd/factoryops-go/internal/domain/formula"
	"github.com/otabekd/factoryops-go/internal/domain/inventory"
	"github.com/otabekd/factoryops-go/internal/domain/profitability"
	"github.com/otabekd/factoryops-go/internal/infrastructure/config"
	"github.com/otabekd/factoryops-go/internal/infrastructure/database"
)

// engine bundles everything a command needs: configuration, the database and
// the mediator with all handlers registered.
type engine struct {
	cfg             *config.Config
	db              *gorm.DB
	mediator        common.Mediator
	formulaRepo     *persistence.GormFormulaRepository
	materialRepo    *persistence.GormMaterialRepository
	calculationRepo *persistence.GormCalculationRepository
	logRepo         *persistence.GormOperationLogRepository
}

// newEngine loads configuration, opens the database, seeds the standard
// formula library and wires the mediator. Every command starts here.
func newEngine() (*engine, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	formulaRepo := persistence.NewGormFormulaRepository(db)
	materialRepo := persistence.NewGormMaterialRepository(db)
	calculationRepo := persistence.NewGormCalculationRepository(db)
	logRepo := persistence.NewGormOperationLogRepository(db)

	if err := persistence.SeedStandardFormulas(context.Background(), formulaRepo); err != nil {
		return nil, fmt.Errorf("failed to seed formulas: %w", err)
	}

	registry := setup.NewHandlerRegistry(
		formulaRepo,
		materialRepo,
		buildResolver(&cfg.Engine),
		buildEstimator(&cfg.Engine),
		profitability.NewAnalyzerWithMarkup(cfg.Engine.MinimumMargin, cfg.Engine.MarkupFactor),
		inventory.NewPlanner(cfg.Engine.SafetyStockDays),
		efficiency.NewAnalyzer(cfg.Engine.StandardOutputPerHour),
	)

	m := common.NewMediator()
	if err := registry.RegisterAll(m); err != nil {
		return nil, fmt.Errorf("failed to register handlers: %w", err)
	}

	return &engine{
		cfg:             cfg,
		db:              db,
		mediator:        m,
		formulaRepo:     formulaRepo,
		materialRepo:    materialRepo,
		calculationRepo: calculationRepo,
		logRepo:         logRepo,
	}, nil
}

// Close releases the database connection
func (e *engine) Close() {
	_ = database.Close(e.db)
}

// ctx returns a context carrying the configured operation logger. With
// --verbose the database logger is mirrored to the console.
func (e *engine) ctx() context.Context {
	var logger common.OperationLogger
	if e.cfg.Logging.Output == "database" {
		logger = e.logRepo
		if verbose {
			logger = multiLogger{e.logRepo, newConsoleLogger(&e.cfg.Logging)}
		}
	} else {
		logger = newConsoleLogger(&e.cfg.Logging)
	}
	return common.WithLogger(context.Background(), logger)
}

// buildResolver constructs the demand resolver from configured fallback
// prices, or the built-in table when none are configured.
func buildResolver(cfg *config.EngineConfig) *demand.Resolver {
	if len(cfg.FallbackPrices) == 0 {
		return demand.NewResolver(nil)
	}

	table := make([]demand.KeywordPrice, 0, len(cfg.FallbackPrices))
	for _, entry := range cfg.FallbackPrices {
		table = append(table, demand.KeywordPrice{Keyword: entry.Keyword, Price: entry.Price})
	}
	return demand.NewResolver(demand.NewPriceEstimator(table, cfg.DefaultFallbackPrice))
}

// buildEstimator constructs the cost estimator, overlaying configured
// coefficients on the built-in tables.
func buildEstimator(cfg *config.EngineConfig) *costing.Estimator {
	if len(cfg.Coefficients) == 0 {
		return costing.NewEstimator(costing.DefaultCoefficientSet())
	}

	defaults := costing.DefaultCoefficients()
	for name, value := range cfg.Coefficients {
		category, ok := costing.ParseCategory(name)
		if !ok {
			continue
		}
		defaults[category] = value
	}
	return costing.NewEstimator(costing.NewCoefficientSet(defaults, costing.DefaultProductOverrides()))
}

// parseLineSpec parses a --line value of the form
// "material:proportion:quantity:unit", e.g. "Sement:60:3:kg".
func parseLineSpec(spec string) (formula.Line, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 4 {
		return formula.Line{}, fmt.Errorf("invalid line spec %q: want material:proportion:quantity:unit", spec)
	}

	proportion, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return formula.Line{}, fmt.Errorf("invalid proportion in line spec %q: %w", spec, err)
	}
	quantity, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return formula.Line{}, fmt.Errorf("invalid quantity in line spec %q: %w", spec, err)
	}

	return formula.Line{
		MaterialKey:       parts[0],
		ProportionPercent: proportion,
		QuantityPerUnit:   quantity,
		Unit:              parts[3],
	}, nil
}

// cutSpec splits a "name=number" flag value into its parts.
func cutSpec(spec string) (string, float64, bool) {
	name, raw, found := strings.Cut(spec, "=")
	if !found {
		return "", 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", 0, false
	}
	return name, value, true
}

// defaultProductKey reads the user-configured default product, if any.
func defaultProductKey() string {
	handler, err := config.NewUserConfigHandler()
	if err != nil {
		return ""
	}
	userConfig, err := handler.Load()
	if err != nil {
		return ""
	}
	return userConfig.DefaultProduct
}

// defaultLeadTimeDays prefers the user-configured lead time over the
// built-in flag default.
func defaultLeadTimeDays(fallback float64) float64 {
	handler, err := config.NewUserConfigHandler()
	if err != nil {
		return fallback
	}
	userConfig, err := handler.Load()
	if err != nil || userConfig.DefaultLeadTimeDays <= 0 {
		return fallback
	}
	return userConfig.DefaultLeadTimeDays
}

// parseUsageSpecs parses repeated --usage values of the form "material=rate".
func parseUsageSpecs(specs []string) (map[string]float64, error) {
	usage := make(map[string]float64, len(specs))
	for _, spec := range specs {
		key, value, found := strings.Cut(spec, "=")
		if !found {
			return nil, fmt.Errorf("invalid usage spec %q: want material=daily-rate", spec)
		}
		rate, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rate in usage spec %q: %w", spec, err)
		}
		usage[key] = rate
	}
	return usage, nil
}
