package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/expenses/category"
	"github.com/rustyeddy/expenses/config"
	"github.com/rustyeddy/expenses/internal/logging"
	"github.com/rustyeddy/expenses/journal"
	"github.com/rustyeddy/expenses/tracker"
)

// RootConfig holds the persistent flags and what PersistentPreRunE builds
// from them.
type RootConfig struct {
	ConfigPath string
	EnvPath    string
	DataPath   string
	Format     string
	Sync       string
	LogLevel   string

	cfg    *config.Config
	logger *log.Logger
}

func NewRootCmd() *cobra.Command {
	rc := &RootConfig{}

	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "A personal expense log",
		Long: `Expenses records spending entries (description, amount, category) in a
plain text file and reports totals overall and per category.

Examples:
  expenses add "Coffee" 4.50 Food
  expenses total
  expenses total --category Food
  expenses shell`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global / persistent flags
	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", "", "path to config file (YAML or JSON)")
	cmd.PersistentFlags().StringVar(&rc.EnvPath, "env-file", ".env", "optional .env file with EXPENSES_* overrides")
	cmd.PersistentFlags().StringVarP(&rc.DataPath, "file", "f", "", "expense file (default from config: expenses.csv)")
	cmd.PersistentFlags().StringVar(&rc.Format, "format", "", "file format: plain|csv")
	cmd.PersistentFlags().StringVar(&rc.Sync, "sync", "", "save policy: always|manual")
	cmd.PersistentFlags().StringVar(&rc.LogLevel, "log-level", "", "log level: debug|info|warn|error")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return rc.setup(cmd)
	}

	cmd.AddCommand(
		newAddCmd(rc),
		newListCmd(rc),
		newTotalCmd(rc),
		newSummaryCmd(rc),
		newCategoriesCmd(rc),
		newCheckCmd(rc),
		newShellCmd(rc),
		newConfigCmd(rc),
		newVersionCmd(),
	)

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setup resolves configuration: defaults < config file < environment <
// flags.
func (rc *RootConfig) setup(cmd *cobra.Command) error {
	if err := config.LoadEnv(rc.EnvPath); err != nil {
		return err
	}

	cfg := config.Default()
	if rc.ConfigPath != "" {
		loaded, err := config.LoadFromFile(rc.ConfigPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	if rc.DataPath != "" {
		cfg.Data.Path = rc.DataPath
	}
	if rc.Format != "" {
		cfg.Data.Format = rc.Format
	}
	if rc.Sync != "" {
		cfg.Data.Sync = rc.Sync
	}
	if rc.LogLevel != "" {
		cfg.Log.Level = rc.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	rc.cfg = cfg
	rc.logger = logger
	return nil
}

// open loads the expense file named by the resolved config.
func (rc *RootConfig) open() (*tracker.Tracker, journal.Report, error) {
	codec, err := rc.cfg.Codec()
	if err != nil {
		return nil, journal.Report{}, err
	}
	policy, err := rc.cfg.Policy()
	if err != nil {
		return nil, journal.Report{}, err
	}
	cats, err := rc.categories()
	if err != nil {
		return nil, journal.Report{}, err
	}

	rc.logger.Debug("opening expense file",
		logging.FieldPath, rc.cfg.Data.Path,
		logging.FieldFormat, codec.Name(),
		logging.FieldPolicy, policy.String())

	tr, rep := tracker.Open(journal.NewFile(rc.cfg.Data.Path, codec), tracker.Options{
		Categories: &cats,
		Policy:     policy,
		Logger:     rc.logger,
	})
	return tr, rep, nil
}

func (rc *RootConfig) categories() (category.Set, error) {
	cats, err := rc.cfg.CategorySet()
	if err != nil {
		return category.Set{}, fmt.Errorf("categories: %w", err)
	}
	return cats, nil
}
