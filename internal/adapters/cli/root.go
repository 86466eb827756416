package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "factoryops",
		Short: "FactoryOps CLI - Production cost and inventory planning",
		Long: `FactoryOps computes formula-driven production costs, profitability,
inventory replenishment and efficiency reports for a construction
materials factory.

Examples:
  factoryops calculate --product "Sement M500" --quantity 100
  factoryops formula list
  factoryops formula create --product "Maxsus blok" --unit dona --line "Sement:60:3:kg" --line "Qum:40:2:kg"
  factoryops inventory reorder --material Klinker --daily-usage 50 --lead-time 7
  factoryops inventory report --annual-sales 50000000
  factoryops finance break-even --fixed 5000000 --price 12000 --variable 8500
  factoryops efficiency report --output 500 --hours 100 --workers 5`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: config.yaml in . or ./configs)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewCalculateCommand())
	rootCmd.AddCommand(NewFormulaCommand())
	rootCmd.AddCommand(NewInventoryCommand())
	rootCmd.AddCommand(NewFinanceCommand())
	rootCmd.AddCommand(NewEfficiencyCommand())
	rootCmd.AddCommand(NewLogsCommand())
	rootCmd.AddCommand(NewWatchCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
