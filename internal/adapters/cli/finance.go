package cli

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/otabekd/factoryops-go/internal/application/planning/queries"
	"github.com/otabekd/factoryops-go/internal/domain/profitability"
)

// NewFinanceCommand creates the finance command with subcommands
func NewFinanceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finance",
		Short: "Financial planning metrics",
		Long: `Break-even, return-on-investment and depreciation analysis.

Examples:
  factoryops finance break-even --fixed 5000000 --price 12000 --variable 8500
  factoryops finance roi --investment 10000000 --profit 3000000 --years 2
  factoryops finance depreciation --asset 10000000 --salvage 1000000 --life 5 --method declining_balance`,
	}

	cmd.AddCommand(newBreakEvenCommand())
	cmd.AddCommand(newROICommand())
	cmd.AddCommand(newDepreciationCommand())

	return cmd
}

func newBreakEvenCommand() *cobra.Command {
	var fixed, price, variable float64

	cmd := &cobra.Command{
		Use:   "break-even",
		Short: "Compute the break-even point",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBreakEven(fixed, price, variable)
		},
	}

	cmd.Flags().Float64Var(&fixed, "fixed", 0, "Fixed costs per period [required]")
	cmd.Flags().Float64Var(&price, "price", 0, "Selling price per unit [required]")
	cmd.Flags().Float64Var(&variable, "variable", 0, "Variable cost per unit [required]")
	cmd.MarkFlagRequired("fixed")
	cmd.MarkFlagRequired("price")
	cmd.MarkFlagRequired("variable")

	return cmd
}

func newROICommand() *cobra.Command {
	var investment, profit, years float64

	cmd := &cobra.Command{
		Use:   "roi",
		Short: "Evaluate return on investment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runROI(investment, profit, years)
		},
	}

	cmd.Flags().Float64Var(&investment, "investment", 0, "Initial investment [required]")
	cmd.Flags().Float64Var(&profit, "profit", 0, "Net profit over the period [required]")
	cmd.Flags().Float64Var(&years, "years", 1, "Period length in years")
	cmd.MarkFlagRequired("investment")
	cmd.MarkFlagRequired("profit")

	return cmd
}

func newDepreciationCommand() *cobra.Command {
	var (
		asset   float64
		salvage float64
		life    int
		method  string
	)

	cmd := &cobra.Command{
		Use:   "depreciation",
		Short: "Build an asset depreciation schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDepreciation(asset, salvage, life, method)
		},
	}

	cmd.Flags().Float64Var(&asset, "asset", 0, "Asset purchase value [required]")
	cmd.Flags().Float64Var(&salvage, "salvage", 0, "Salvage value at end of life")
	cmd.Flags().IntVar(&life, "life", 0, "Useful life in years [required]")
	cmd.Flags().StringVar(&method, "method", "straight_line", "Method: straight_line or declining_balance")
	cmd.MarkFlagRequired("asset")
	cmd.MarkFlagRequired("life")

	return cmd
}

// runBreakEven executes the break-even command
func runBreakEven(fixed, price, variable float64) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	query := &queries.GetBreakEvenQuery{
		FixedCosts:          fixed,
		PricePerUnit:        price,
		VariableCostPerUnit: variable,
	}
	result, err := eng.mediator.Send(eng.ctx(), query)
	if err != nil {
		return err
	}

	be := result.(*queries.GetBreakEvenResponse).Result
	if !be.IsFeasible {
		fmt.Println("Break-even is unreachable: price does not cover variable cost.")
		return nil
	}

	fmt.Printf("Break-even point: %s units (%s in sales)\n",
		formatQuantity(be.Units), formatSom(be.SalesAmount))
	fmt.Printf("Contribution margin: %s per unit (ratio %.2f)\n",
		formatSom(be.ContributionMargin), be.MarginRatio)
	return nil
}

// runROI executes the roi command
func runROI(investment, profit, years float64) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	query := &queries.GetROIQuery{
		Investment:  investment,
		NetProfit:   profit,
		PeriodYears: years,
	}
	result, err := eng.mediator.Send(eng.ctx(), query)
	if err != nil {
		return err
	}

	roi := result.(*queries.GetROIResponse).Result
	fmt.Printf("ROI: %s over the period (%s annualized), rating %s\n",
		formatPercent(roi.ROIPercent), formatPercent(roi.AnnualROIPercent), roi.Rating)
	if math.IsInf(roi.PaybackPeriodMonths, 1) {
		fmt.Println("Payback: never at this profit level.")
	} else {
		fmt.Printf("Payback: %.1f months\n", roi.PaybackPeriodMonths)
	}
	return nil
}

// runDepreciation executes the depreciation command
func runDepreciation(asset, salvage float64, life int, method string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	query := &queries.GetDepreciationScheduleQuery{
		AssetValue:      asset,
		SalvageValue:    salvage,
		UsefulLifeYears: life,
		Method:          profitability.DepreciationMethod(method),
	}
	result, err := eng.mediator.Send(eng.ctx(), query)
	if err != nil {
		return err
	}

	dep := result.(*queries.GetDepreciationScheduleResponse).Result
	fmt.Printf("Depreciation (%s): %s per year, %s per month\n\n",
		dep.Method, formatSom(dep.AnnualDepreciation), formatSom(dep.MonthlyDepreciation))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "YEAR\tDEPRECIATION\tBOOK VALUE")
	for _, year := range dep.Schedule {
		fmt.Fprintf(w, "%d\t%s\t%s\n", year.Year, formatSom(year.Depreciation), formatSom(year.BookValue))
	}
	w.Flush()

	fmt.Printf("\nTotal depreciation: %s\n", formatSom(dep.TotalDepreciation))
	return nil
}
