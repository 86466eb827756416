package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/otabekd/factoryops-go/internal/application/production/commands"
	"github.com/otabekd/factoryops-go/internal/domain/formula"
)

// NewFormulaCommand creates the formula command with subcommands
func NewFormulaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formula",
		Short: "Manage product formulas",
		Long: `List, inspect and author product formulas.

Formulas define the material composition of one unit of product. Custom
formulas are validated and their proportions normalized to sum to 100%.

Examples:
  factoryops formula list
  factoryops formula show --product "Sement M500"
  factoryops formula create --product "Maxsus blok" --unit dona --line "Sement:60:3:kg" --line "Qum:40:2:kg"`,
	}

	cmd.AddCommand(newFormulaListCommand())
	cmd.AddCommand(newFormulaShowCommand())
	cmd.AddCommand(newFormulaCreateCommand())

	return cmd
}

func newFormulaListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known product keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormulaList()
		},
	}
}

func newFormulaShowCommand() *cobra.Command {
	var productKey string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a formula's composition",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormulaShow(productKey)
		},
	}

	cmd.Flags().StringVar(&productKey, "product", "", "Product key [required]")
	cmd.MarkFlagRequired("product")

	return cmd
}

func newFormulaCreateCommand() *cobra.Command {
	var (
		productKey string
		unit       string
		lineSpecs  []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a custom formula",
		Long: `Create a custom formula from material lines.

Each --line is material:proportion:quantity:unit. Proportions that do
not sum to 100 are rescaled proportionally.

Example:
  factoryops formula create --product "Maxsus blok" --unit dona \
    --line "Sement:60:3:kg" --line "Qum:40:2:kg"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormulaCreate(productKey, unit, lineSpecs)
		},
	}

	cmd.Flags().StringVar(&productKey, "product", "", "Product key [required]")
	cmd.Flags().StringVar(&unit, "unit", "dona", "Production unit (dona, qop, m2, m3, metr)")
	cmd.Flags().StringArrayVar(&lineSpecs, "line", nil, "Formula line material:proportion:quantity:unit (repeatable) [required]")
	cmd.MarkFlagRequired("product")
	cmd.MarkFlagRequired("line")

	return cmd
}

// runFormulaList executes the formula list command
func runFormulaList() error {
	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	keys, err := eng.formulaRepo.ListProductKeys(eng.ctx())
	if err != nil {
		return fmt.Errorf("failed to list formulas: %w", err)
	}

	if len(keys) == 0 {
		fmt.Println("No formulas registered.")
		return nil
	}

	infos := formula.StandardProductInfos()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tTIME/UNIT\tENERGY/UNIT")
	for _, key := range keys {
		if info, ok := infos[key]; ok {
			fmt.Fprintf(w, "%s\t%.3f h\t%.2f kWh\n", key, info.TimePerUnitHours, info.EnergyPerUnitKWh)
		} else {
			fmt.Fprintf(w, "%s\t-\t-\n", key)
		}
	}
	return w.Flush()
}

// runFormulaShow executes the formula show command
func runFormulaShow(productKey string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	f, err := eng.formulaRepo.FindByProductKey(eng.ctx(), productKey)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s, per %s)\n\n", f.ProductKey, f.Category, f.Unit)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MATERIAL\tPROPORTION\tQUANTITY")
	for _, line := range f.Lines {
		fmt.Fprintf(w, "%s\t%s\t%s %s\n",
			line.MaterialKey,
			formatPercent(line.ProportionPercent),
			formatQuantity(line.QuantityPerUnit), line.Unit,
		)
	}
	w.Flush()

	if info, ok := formula.StandardProductInfos()[f.ProductKey]; ok {
		fmt.Println("\nProduction steps:")
		for i, step := range info.ProductionSteps {
			fmt.Printf("  %d. %s\n", i+1, step)
		}
	}

	return nil
}

// runFormulaCreate executes the formula create command
func runFormulaCreate(productKey, unit string, lineSpecs []string) error {
	lines := make([]formula.Line, 0, len(lineSpecs))
	for _, spec := range lineSpecs {
		line, err := parseLineSpec(spec)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	cmd := &commands.BuildCustomFormulaCommand{
		ProductKey: productKey,
		Lines:      lines,
		Unit:       unit,
	}

	result, err := eng.mediator.Send(eng.ctx(), cmd)
	if err != nil {
		return fmt.Errorf("failed to create formula: %w", err)
	}

	created := result.(*commands.BuildCustomFormulaResponse).Formula
	fmt.Printf("Formula %q registered with %d lines.\n", created.ProductKey, len(created.Lines))
	for _, line := range created.Lines {
		fmt.Printf("  %s: %s, %s %s per %s\n",
			line.MaterialKey,
			formatPercent(line.ProportionPercent),
			formatQuantity(line.QuantityPerUnit), line.Unit,
			created.Unit,
		)
	}
	return nil
}
