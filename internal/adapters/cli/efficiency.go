package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/otabekd/factoryops-go/internal/application/planning/queries"
)

// NewEfficiencyCommand creates the efficiency command
func NewEfficiencyCommand() *cobra.Command {
	var (
		output         float64
		hours          float64
		workers        int
		actualHours    float64
		availableHours float64
	)

	cmd := &cobra.Command{
		Use:   "efficiency",
		Short: "Analyze labor productivity and equipment utilization",
		Long: `Scores a production period against the standard output rate and,
when equipment hours are given, reports machine utilization.

Examples:
  factoryops efficiency --output 960 --hours 80 --workers 4
  factoryops efficiency --output 960 --hours 80 --workers 4 --actual-hours 70 --available-hours 80`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEfficiency(output, hours, workers, actualHours, availableHours)
		},
	}

	cmd.Flags().Float64Var(&output, "output", 0, "Total units produced in the period [required]")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Total hours worked in the period [required]")
	cmd.Flags().IntVar(&workers, "workers", 0, "Number of workers [required]")
	cmd.Flags().Float64Var(&actualHours, "actual-hours", 0, "Equipment hours actually run")
	cmd.Flags().Float64Var(&availableHours, "available-hours", 0, "Equipment hours available")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("hours")
	cmd.MarkFlagRequired("workers")

	return cmd
}

// runEfficiency executes the efficiency command
func runEfficiency(output, hours float64, workers int, actualHours, availableHours float64) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	query := &queries.GetEfficiencyReportQuery{
		TotalOutput:    output,
		TotalHours:     hours,
		Workers:        workers,
		ActualHours:    actualHours,
		AvailableHours: availableHours,
	}
	result, err := eng.mediator.Send(eng.ctx(), query)
	if err != nil {
		return err
	}

	report := result.(*queries.GetEfficiencyReportResponse)
	prod := report.Productivity

	fmt.Printf("Output: %s units in %s hours (%d workers)\n",
		formatQuantity(prod.TotalOutput), formatQuantity(prod.TotalHours), prod.Workers)
	fmt.Printf("Rate: %s units/hour, %s units/worker-hour\n",
		formatQuantity(prod.OutputPerHour), formatQuantity(prod.OutputPerWorkerHour))
	fmt.Printf("Efficiency score: %s (%s)\n", formatPercent(prod.EfficiencyScore), prod.Rating)

	if len(prod.Recommendations) > 0 {
		fmt.Println("\nRecommendations:")
		for _, rec := range prod.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}

	if report.Utilization != nil {
		util := report.Utilization
		fmt.Printf("\nEquipment utilization: %s (%s idle), status %s\n",
			formatPercent(util.UtilizationRate), formatPercent(util.IdleRate), util.Status)
		if util.RecommendedHours > 0 {
			fmt.Printf("Recommended running hours: %s\n", formatQuantity(util.RecommendedHours))
		}
	}

	return nil
}
