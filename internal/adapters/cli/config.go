package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/otabekd/factoryops-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user configuration",
		Long: `Manage per-user defaults stored in ~/.factoryops/config.json.

Examples:
  factoryops config set-product sement
  factoryops config show
  factoryops config engine
  factoryops config clear`,
	}

	cmd.AddCommand(newConfigSetProductCommand())
	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigEngineCommand())
	cmd.AddCommand(newConfigPathCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigSetProductCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-product <product-key>",
		Short: "Set the default product for calculate commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return err
			}
			if err := handler.SetDefaultProduct(args[0]); err != nil {
				return err
			}
			fmt.Printf("Default product set to %q.\n", args[0])
			return nil
		},
	}
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current user configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return err
			}
			userConfig, err := handler.Load()
			if err != nil {
				return err
			}
			raw, err := json.MarshalIndent(userConfig, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(raw))
			return nil
		},
	}
}

func newConfigEngineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "engine",
		Short: "Show the effective engine configuration",
		Long: `Prints the engine configuration after file, environment and default
layers are applied. Falls back to built-in defaults when no config file
is readable, so the output always reflects what the engine would run with.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfigOrDefault(configPath)
			raw, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(raw))
			return nil
		},
	}
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the user configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return err
			}
			fmt.Println(handler.GetConfigPath())
			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Reset the user configuration to defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return err
			}
			if err := handler.ClearDefaults(); err != nil {
				return err
			}
			fmt.Println("User configuration cleared.")
			return nil
		},
	}
}
