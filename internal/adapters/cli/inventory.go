package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/otabekd/factoryops-go/internal/application/planning/queries"
	"github.com/otabekd/factoryops-go/internal/domain/production"
)

// NewInventoryCommand creates the inventory command with subcommands
func NewInventoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Inventory planning and warehouse reports",
		Long: `Manage the material catalog and plan replenishment.

Examples:
  factoryops inventory set --material Klinker --unit kg --price 500 --stock 10000
  factoryops inventory adjust --material Klinker --delta -4500
  factoryops inventory reorder --material Klinker --daily-usage 50 --lead-time 7
  factoryops inventory alerts --lead-time 7 --usage "Klinker=50" --usage "Gips=20"
  factoryops inventory report --annual-sales 50000000`,
	}

	cmd.AddCommand(newInventorySetCommand())
	cmd.AddCommand(newInventoryAdjustCommand())
	cmd.AddCommand(newInventoryReorderCommand())
	cmd.AddCommand(newInventoryAlertsCommand())
	cmd.AddCommand(newInventoryReportCommand())

	return cmd
}

func newInventorySetCommand() *cobra.Command {
	var (
		materialKey string
		name        string
		unit        string
		price       float64
		stock       float64
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update a material in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInventorySet(materialKey, name, unit, price, stock)
		},
	}

	cmd.Flags().StringVar(&materialKey, "material", "", "Material key [required]")
	cmd.Flags().StringVar(&name, "name", "", "Display name (defaults to the key)")
	cmd.Flags().StringVar(&unit, "unit", "kg", "Unit of measure")
	cmd.Flags().Float64Var(&price, "price", 0, "Unit price in so'm")
	cmd.Flags().Float64Var(&stock, "stock", 0, "Current stock level")
	cmd.MarkFlagRequired("material")

	return cmd
}

func newInventoryAdjustCommand() *cobra.Command {
	var (
		materialKey string
		delta       float64
	)

	cmd := &cobra.Command{
		Use:   "adjust",
		Short: "Apply a signed stock adjustment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInventoryAdjust(materialKey, delta)
		},
	}

	cmd.Flags().StringVar(&materialKey, "material", "", "Material key [required]")
	cmd.Flags().Float64Var(&delta, "delta", 0, "Signed stock change [required]")
	cmd.MarkFlagRequired("material")
	cmd.MarkFlagRequired("delta")

	return cmd
}

func newInventoryReorderCommand() *cobra.Command {
	var (
		materialKey string
		dailyUsage  float64
		leadTime    float64
		safetyStock float64
	)

	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "Compute the reorder point for a material",
		RunE: func(cmd *cobra.Command, args []string) error {
			var safety *float64
			if cmd.Flags().Changed("safety-stock") {
				safety = &safetyStock
			}
			if !cmd.Flags().Changed("lead-time") {
				leadTime = defaultLeadTimeDays(leadTime)
			}
			return runInventoryReorder(materialKey, dailyUsage, leadTime, safety)
		},
	}

	cmd.Flags().StringVar(&materialKey, "material", "", "Material key [required]")
	cmd.Flags().Float64Var(&dailyUsage, "daily-usage", 0, "Average daily usage [required]")
	cmd.Flags().Float64Var(&leadTime, "lead-time", 7, "Supplier lead time in days")
	cmd.Flags().Float64Var(&safetyStock, "safety-stock", 0, "Explicit safety stock (default: configured days of usage)")
	cmd.MarkFlagRequired("material")
	cmd.MarkFlagRequired("daily-usage")

	return cmd
}

func newInventoryAlertsCommand() *cobra.Command {
	var (
		leadTime   float64
		usageSpecs []string
	)

	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "List materials whose stock warrants a low-stock alert",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInventoryAlerts(leadTime, usageSpecs)
		},
	}

	cmd.Flags().Float64Var(&leadTime, "lead-time", 7, "Supplier lead time in days")
	cmd.Flags().StringArrayVar(&usageSpecs, "usage", nil, "Daily usage material=rate (repeatable) [required]")
	cmd.MarkFlagRequired("usage")

	return cmd
}

func newInventoryReportCommand() *cobra.Command {
	var annualSales float64

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Warehouse valuation and turnover report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInventoryReport(annualSales)
		},
	}

	cmd.Flags().Float64Var(&annualSales, "annual-sales", 0, "Annual sales value for turnover analysis (0 = skip)")

	return cmd
}

// runInventorySet executes the inventory set command
func runInventorySet(materialKey, name, unit string, price, stock float64) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	if name == "" {
		name = materialKey
	}

	material := &production.Material{
		Key:          materialKey,
		Name:         name,
		Unit:         unit,
		UnitPrice:    price,
		CurrentStock: stock,
	}
	if err := eng.materialRepo.Save(eng.ctx(), material); err != nil {
		return err
	}

	fmt.Printf("Material %q saved: price %s, stock %s %s.\n",
		materialKey, formatSom(price), formatQuantity(stock), unit)
	return nil
}

// runInventoryAdjust executes the inventory adjust command
func runInventoryAdjust(materialKey string, delta float64) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	material, err := eng.materialRepo.AdjustStock(eng.ctx(), materialKey, delta)
	if err != nil {
		return err
	}

	fmt.Printf("Material %q stock is now %s %s.\n",
		materialKey, formatQuantity(material.CurrentStock), material.Unit)
	return nil
}

// runInventoryReorder executes the inventory reorder command
func runInventoryReorder(materialKey string, dailyUsage, leadTime float64, safetyStock *float64) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	query := &queries.GetReorderAdviceQuery{
		MaterialKey:  materialKey,
		DailyUsage:   dailyUsage,
		LeadTimeDays: leadTime,
		SafetyStock:  safetyStock,
	}

	result, err := eng.mediator.Send(eng.ctx(), query)
	if err != nil {
		return err
	}

	advice := result.(*queries.GetReorderAdviceResponse).Advice
	fmt.Printf("Reorder advice for %s:\n", materialKey)
	fmt.Printf("  Current stock:   %s\n", formatQuantity(advice.CurrentStock))
	fmt.Printf("  Reorder point:   %s (lead-time demand %s + safety stock %s)\n",
		formatQuantity(advice.ReorderPoint),
		formatQuantity(advice.LeadTimeDemand),
		formatQuantity(advice.SafetyStock))
	fmt.Printf("  Status:          %s\n", advice.Status)
	fmt.Printf("  Days remaining:  %.1f\n", advice.DaysRemaining)
	if advice.RecommendedOrder > 0 {
		fmt.Printf("  Order now:       %s\n", formatQuantity(advice.RecommendedOrder))
	}
	return nil
}

// runInventoryAlerts executes the inventory alerts command
func runInventoryAlerts(leadTime float64, usageSpecs []string) error {
	usage, err := parseUsageSpecs(usageSpecs)
	if err != nil {
		return err
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	query := &queries.ListStockAlertsQuery{
		DailyUsageByMaterial: usage,
		LeadTimeDays:         leadTime,
	}

	result, err := eng.mediator.Send(eng.ctx(), query)
	if err != nil {
		return err
	}

	alerts := result.(*queries.ListStockAlertsResponse).Alerts
	if len(alerts) == 0 {
		fmt.Println("No low-stock alerts.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MATERIAL\tSTATUS\tSTOCK\tREORDER POINT\tORDER")
	for _, alert := range alerts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			alert.MaterialKey,
			alert.Advice.Status,
			formatQuantity(alert.Advice.CurrentStock),
			formatQuantity(alert.Advice.ReorderPoint),
			formatQuantity(alert.Advice.RecommendedOrder),
		)
	}
	return w.Flush()
}

// runInventoryReport executes the inventory report command
func runInventoryReport(annualSales float64) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	query := &queries.GetInventoryReportQuery{AnnualSalesValue: annualSales}
	result, err := eng.mediator.Send(eng.ctx(), query)
	if err != nil {
		return err
	}

	report := result.(*queries.GetInventoryReportResponse)
	valuation := report.Valuation

	fmt.Printf("Warehouse value: %s across %d positions (avg %s)\n\n",
		formatSom(valuation.TotalValue),
		valuation.ItemCount,
		formatSom(valuation.AverageValuePerItem))

	if len(valuation.TopItems) > 0 {
		fmt.Println("Top positions by value:")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MATERIAL\tQUANTITY\tUNIT PRICE\tVALUE")
		for _, item := range valuation.TopItems {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				item.Name,
				formatQuantity(item.Quantity),
				formatSom(item.UnitPrice),
				formatSom(item.TotalValue),
			)
		}
		w.Flush()
	}

	if report.Turnover != nil {
		t := report.Turnover
		fmt.Printf("\nTurnover: %.1fx per year (%.0f days in inventory), efficiency %s\n",
			t.Ratio, t.DaysInInventory, t.Efficiency)
		if t.NeedsImprovement {
			fmt.Println("Turnover is below target; consider reducing slow-moving stock.")
		}
	}

	return nil
}
