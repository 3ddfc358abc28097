package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/expenses/config"
)

func newConfigCmd(rc *RootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Generate, validate or show configuration",
		Long: `Manage configuration files.

Subcommands:
  init     - Generate a default configuration file
  validate - Validate an existing configuration file
  show     - Print the configuration in effect

Examples:
  expenses config init --output expenses.yaml
  expenses config validate --path expenses.yaml`,
	}

	var output string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Default().SaveToFile(output); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created default configuration: %s\n", output)
			return nil
		},
	}
	initCmd.Flags().StringVarP(&output, "output", "o", "expenses.yaml", "output config file path")

	var path string
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromFile(path)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Configuration valid: %s\n", path)
			fmt.Fprintf(out, "  File: %s (%s, sync %s)\n", cfg.Data.Path, cfg.Data.Format, cfg.Data.Sync)
			fmt.Fprintf(out, "  Categories: %d\n", len(cfg.Categories))
			return nil
		},
	}
	// -f is taken by the persistent --file flag.
	validateCmd.Flags().StringVar(&path, "path", "", "path to config file (required)")
	validateCmd.MarkFlagRequired("path")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the configuration in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "data.path: %s\n", rc.cfg.Data.Path)
			fmt.Fprintf(out, "data.format: %s\n", rc.cfg.Data.Format)
			fmt.Fprintf(out, "data.sync: %s\n", rc.cfg.Data.Sync)
			cats, err := rc.categories()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "categories: %v\n", cats.Names())
			fmt.Fprintf(out, "log.level: %s\n", rc.cfg.Log.Level)
			return nil
		},
	}

	cmd.AddCommand(initCmd, validateCmd, showCmd)
	return cmd
}
