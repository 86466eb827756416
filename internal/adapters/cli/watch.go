package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/otabekd/factoryops-go/internal/adapters/metrics"
	"github.com/otabekd/factoryops-go/internal/application/planning/queries"
	productionQueries "github.com/otabekd/factoryops-go/internal/application/production/queries"
)

// NewWatchCommand creates the watch command
func NewWatchCommand() *cobra.Command {
	var (
		interval time.Duration
		usage    []string
		leadTime float64
		products []string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Periodically scan stock levels and raise alerts",
		Long: `Runs a stock alert scan on a fixed interval until interrupted. With
--product, each scan also recalculates that product's unit cost, so price
drift shows up as material prices change.

When metrics are enabled in the configuration, a Prometheus endpoint is
exposed for scraping while the watcher runs.

Examples:
  factoryops watch --usage klinker=450 --usage gips=25 --interval 5m
  factoryops watch --usage klinker=450 --lead-time 10 --interval 30s
  factoryops watch --usage klinker=450 --product "Sement M500"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(interval, usage, leadTime, products)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 5*time.Minute, "Scan interval")
	cmd.Flags().StringArrayVar(&usage, "usage", nil, "Daily usage as material=rate (repeatable) [required]")
	cmd.Flags().Float64Var(&leadTime, "lead-time", 7, "Supplier lead time in days")
	cmd.Flags().StringArrayVar(&products, "product", nil, "Recalculate this product's unit cost each scan (repeatable)")
	cmd.MarkFlagRequired("usage")

	return cmd
}

// runWatch executes the watch command
func runWatch(interval time.Duration, usageSpecs []string, leadTime float64, products []string) error {
	dailyUsage, err := parseUsageSpecs(usageSpecs)
	if err != nil {
		return err
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	var calculationCollector *metrics.CalculationMetricsCollector
	if eng.cfg.Metrics.Enabled {
		metrics.InitRegistry()

		operationCollector := metrics.NewOperationMetricsCollector()
		if err := operationCollector.Register(); err != nil {
			return fmt.Errorf("failed to register operation metrics: %w", err)
		}
		calculationCollector = metrics.NewCalculationMetricsCollector()
		if err := calculationCollector.Register(); err != nil {
			return fmt.Errorf("failed to register calculation metrics: %w", err)
		}
		eng.mediator.Use(metrics.OperationMiddleware(operationCollector))
		eng.mediator.Use(metrics.CalculationMiddleware(calculationCollector))

		go func() {
			addr := fmt.Sprintf("%s:%d", eng.cfg.Metrics.Host, eng.cfg.Metrics.Port)
			fmt.Printf("Metrics listening on http://%s%s\n", addr, eng.cfg.Metrics.Path)
			if err := metrics.Serve(eng.cfg.Metrics.Host, eng.cfg.Metrics.Port, eng.cfg.Metrics.Path); err != nil {
				fmt.Fprintf(os.Stderr, "metrics server stopped: %v\n", err)
			}
		}()
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	fmt.Printf("Watching %d materials every %s. Press Ctrl+C to stop.\n", len(dailyUsage), interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	scan := func() {
		alerts, err := scanStockAlerts(eng, dailyUsage, leadTime)
		if err != nil {
			fmt.Fprintf(os.Stderr, "scan failed: %v\n", err)
			return
		}
		printScanResult(alerts)
		if calculationCollector != nil {
			for _, alert := range alerts {
				calculationCollector.RecordStockAlert(string(alert.Advice.Status))
			}
		}
		scanProductCosts(eng, products)
	}

	scan()
	for {
		select {
		case <-ticker.C:
			scan()
		case <-stop:
			fmt.Println("\nStopping watcher.")
			return nil
		}
	}
}

// scanProductCosts recalculates unit cost for each watched product. The
// calculation runs through the mediator, so the metrics middleware sees it.
func scanProductCosts(eng *engine, products []string) {
	for _, product := range products {
		query := &productionQueries.CalculateProductionCostQuery{
			ProductKey: product,
			Quantity:   1,
		}
		result, err := eng.mediator.Send(eng.ctx(), query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cost scan failed for %s: %v\n", product, err)
			continue
		}
		calc := result.(*productionQueries.CalculateProductionCostResponse).Calculation
		fmt.Printf("%s unit cost: %s\n", product, formatSom(calc.Breakdown.UnitCost))
	}
}

func scanStockAlerts(eng *engine, dailyUsage map[string]float64, leadTime float64) ([]queries.StockAlert, error) {
	query := &queries.ListStockAlertsQuery{
		DailyUsageByMaterial: dailyUsage,
		LeadTimeDays:         leadTime,
	}
	result, err := eng.mediator.Send(eng.ctx(), query)
	if err != nil {
		return nil, err
	}
	return result.(*queries.ListStockAlertsResponse).Alerts, nil
}

func printScanResult(alerts []queries.StockAlert) {
	timestamp := time.Now().Format("15:04:05")
	if len(alerts) == 0 {
		fmt.Printf("[%s] All stock levels healthy.\n", timestamp)
		return
	}
	for _, alert := range alerts {
		fmt.Printf("[%s] %s: status %s, %s days of stock left, order %s\n",
			timestamp,
			alert.MaterialKey,
			alert.Advice.Status,
			formatQuantity(alert.Advice.DaysRemaining),
			formatQuantity(alert.Advice.RecommendedOrder))
	}
}
