package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/otabekd/factoryops-go/internal/application/production/queries"
	"github.com/otabekd/factoryops-go/internal/domain/costing"
	"github.com/otabekd/factoryops-go/internal/domain/production"
	"github.com/otabekd/factoryops-go/internal/domain/profitability"
)

// NewCalculateCommand creates the calculate command with subcommands
func NewCalculateCommand() *cobra.Command {
	var (
		productKey string
		quantity   float64
		price      float64
		coefSpecs  []string
		noSave     bool
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate production cost and profitability",
		Long: `Calculate the full cost picture of a production run: material demand,
layered costs, profitability and stock feasibility.

Coefficient overrides apply to this run only, e.g. a rush-order labor
surcharge: --coef labor=0.40

Examples:
  factoryops calculate --product "Sement M500" --quantity 100
  factoryops calculate --product "Kafel 30x30" --quantity 500 --price 9000
  factoryops calculate --product "Beton M300" --quantity 20 --coef labor=0.40`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculate(productKey, quantity, price, coefSpecs, noSave)
		},
	}

	cmd.Flags().StringVar(&productKey, "product", "", "Product key (defaults to the configured default product)")
	cmd.Flags().Float64Var(&quantity, "quantity", 0, "Quantity to produce [required]")
	cmd.Flags().Float64Var(&price, "price", 0, "Known selling price per unit (0 = estimate with markup)")
	cmd.Flags().StringArrayVar(&coefSpecs, "coef", nil, "Coefficient override category=value (repeatable)")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not record the calculation in history")
	cmd.MarkFlagRequired("quantity")

	cmd.AddCommand(newCalculateHistoryCommand())

	return cmd
}

// newCalculateHistoryCommand creates the history subcommand
func newCalculateHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent calculations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculateHistory(limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of calculations to show (default from config)")

	return cmd
}

// runCalculate executes the calculate command
func runCalculate(productKey string, quantity, price float64, coefSpecs []string, noSave bool) error {
	overrides, err := parseCoefSpecs(coefSpecs)
	if err != nil {
		return err
	}

	if productKey == "" {
		productKey = defaultProductKey()
		if productKey == "" {
			return fmt.Errorf("no product given: pass --product or set one with 'factoryops config set-product'")
		}
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	query := &queries.CalculateProductionCostQuery{
		ProductKey:        productKey,
		Quantity:          quantity,
		Overrides:         overrides,
		KnownSellingPrice: price,
	}

	ctx := eng.ctx()
	result, err := eng.mediator.Send(ctx, query)
	if err != nil {
		return fmt.Errorf("calculation failed: %w", err)
	}

	calc := result.(*queries.CalculateProductionCostResponse).Calculation

	if !noSave {
		if err := eng.calculationRepo.Save(ctx, calc); err != nil {
			return fmt.Errorf("failed to record calculation: %w", err)
		}
	}

	displayCalculation(calc)
	return nil
}

// runCalculateHistory executes the history subcommand
func runCalculateHistory(limit int) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	if limit <= 0 {
		limit = eng.cfg.Engine.HistoryLimit
	}

	calcs, err := eng.calculationRepo.ListRecent(eng.ctx(), limit)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(calcs) == 0 {
		fmt.Println("No calculations recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tQUANTITY\tTOTAL COST\tUNIT COST\tPROFIT\tFEASIBLE")
	for _, calc := range calcs {
		feasible := "yes"
		if !calc.CanProduce {
			feasible = "no"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			calc.ProductKey,
			formatQuantity(calc.Quantity),
			formatSom(calc.Breakdown.TotalCost),
			formatSom(calc.Breakdown.UnitCost),
			formatSom(calc.Profitability.TotalProfit),
			feasible,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	// calcs are newest first, so previous run is index 1
	if len(calcs) >= 2 && calcs[0].ProductKey == calcs[1].ProductKey {
		growth := profitability.GrowthRate(calcs[0].Breakdown.UnitCost, calcs[1].Breakdown.UnitCost)
		if growth != 0 {
			fmt.Printf("\nUnit cost for %s changed %s since the previous run.\n",
				calcs[0].ProductKey, formatPercent(growth))
		}
	}
	return nil
}

// displayCalculation prints the full calculation report
func displayCalculation(calc *production.Calculation) {
	fmt.Printf("Production calculation: %s x %s\n\n", calc.ProductKey, formatQuantity(calc.Quantity))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MATERIAL\tREQUIRED\tUNIT PRICE\tCOST")
	for _, m := range calc.Materials {
		note := ""
		if m.PriceEstimated {
			note = " (est.)"
		}
		fmt.Fprintf(w, "%s\t%s %s\t%s%s\t%s\n",
			m.MaterialKey,
			formatQuantity(m.QuantityRequired), m.Unit,
			formatSom(m.UnitPrice), note,
			formatSom(m.LineCost),
		)
	}
	w.Flush()

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Material cost\t%s\n", formatSom(calc.Breakdown.MaterialCost))
	for _, category := range costing.AdditionalCategories() {
		if amount, ok := calc.Breakdown.AdditionalCosts[category]; ok {
			fmt.Fprintf(w, "%s\t%s\n", category, formatSom(amount))
		}
	}
	fmt.Fprintf(w, "Total cost\t%s\n", formatSom(calc.Breakdown.TotalCost))
	fmt.Fprintf(w, "Unit cost\t%s\n", formatSom(calc.Breakdown.UnitCost))
	w.Flush()

	p := calc.Profitability
	fmt.Println()
	fmt.Printf("Selling price:  %s per unit\n", formatSom(p.SellingPrice))
	fmt.Printf("Profit:         %s per unit, %s total\n", formatSom(p.ProfitPerUnit), formatSom(p.TotalProfit))
	fmt.Printf("Margin:         %s (markup %s)\n", formatPercent(p.ProfitMarginPercent), formatPercent(p.MarkupPercent))
	if !p.IsProfitable {
		fmt.Printf("Recommended:    raise price to %s\n", formatSom(p.RecommendedPrice))
	}

	fmt.Println()
	if calc.CanProduce {
		fmt.Println("Stock check: OK, all materials available.")
	} else {
		fmt.Println("Stock check: INSUFFICIENT")
		w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MATERIAL\tREQUIRED\tAVAILABLE\tDEFICIT")
		for _, m := range calc.MissingMaterials {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				m.MaterialKey,
				formatQuantity(m.Required),
				formatQuantity(m.Available),
				formatQuantity(m.Deficit),
			)
		}
		w.Flush()
	}

	for _, warning := range calc.Warnings {
		fmt.Printf("Warning: %s\n", warning.String())
	}
}

// parseCoefSpecs parses repeated --coef values of the form "category=value"
func parseCoefSpecs(specs []string) (map[costing.Category]float64, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	overrides := make(map[costing.Category]float64, len(specs))
	for _, spec := range specs {
		name, value, found := cutSpec(spec)
		if !found {
			return nil, fmt.Errorf("invalid coefficient spec %q: want category=value", spec)
		}
		category, ok := costing.ParseCategory(name)
		if !ok {
			return nil, fmt.Errorf("unknown cost category %q", name)
		}
		overrides[category] = value
	}
	return overrides, nil
}
