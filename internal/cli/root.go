// Package cli provides the command-line interface for the trading journal.
package cli

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"fxjournal/internal/analytics"
	"fxjournal/internal/config"
	"fxjournal/internal/journal"
	"fxjournal/internal/logging"
	"fxjournal/internal/store"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2026-08-31"
)

// App holds the application dependencies.
type App struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Journal *journal.Service
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	// Build the trade store. Data lives in memory for one run; the
	// sample dataset gives the analytics something to chew on.
	var st *store.TradeStore
	if cfg.Journal.SeedSampleData {
		seeded, err := store.NewSeeded(time.Now())
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to load sample dataset, starting empty")
			st = store.New()
		} else {
			st = seeded
		}
	} else {
		st = store.New()
	}

	svc, err := journal.New(cfg.Journal, logger, st)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize journal")
	} else {
		app.Journal = svc
	}

	rootCmd := &cobra.Command{
		Use:   "fxjournal",
		Short: "fxjournal - forex trading journal and analytics",
		Long: `fxjournal is a terminal trading journal for forex traders.

It keeps a session-local record of closed trades and derives summary
analytics from them: win rate, profit factor, drawdown, per-pair and
per-timeframe breakdowns, and a daily profit series.

Use 'fxjournal help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/fxjournal)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("range", "", "time range: \"all\" or a day count (default from config)")

	addCoreCommands(rootCmd, app)
	addTradeCommands(rootCmd, app)
	addDashboardCommand(rootCmd, app)
	addRiskCommand(rootCmd, app)
	addPairsCommands(rootCmd, app)
	addChartCommand(rootCmd, app)
	addNotificationCommands(rootCmd, app)

	return rootCmd
}

// addCoreCommands adds core utility commands.
func addCoreCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			} else {
				output.Printf("fxjournal v%s\n", Version)
				output.Dim("Build date: %s", BuildDate)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			showConfig(output, app.Config)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration files",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("✓ Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) {
	output.Bold("Journal Configuration")
	output.Printf("  Default Range:    %s\n", cfg.Journal.DefaultRange)
	output.Printf("  Top Pairs Limit:  %d\n", cfg.Journal.TopPairsLimit)
	output.Printf("  Starting Balance: %.2f\n", cfg.Journal.StartingBalance)
	output.Printf("  Chart Days:       %d\n", cfg.Journal.ChartDays)
	output.Printf("  Seed Sample Data: %v\n", cfg.Journal.SeedSampleData)
	output.Println()

	output.Bold("UI Configuration")
	output.Printf("  Color Enabled: %v\n", cfg.UI.ColorEnabled)
	output.Printf("  Date Format:   %s\n", cfg.UI.DateFormat)
	output.Printf("  Time Format:   %s\n", cfg.UI.TimeFormat)
}

// windowFromFlags resolves the active time range: the --range flag when
// given, otherwise the journal's current window.
func windowFromFlags(cmd *cobra.Command, app *App) error {
	raw, _ := cmd.Flags().GetString("range")
	if raw == "" {
		return nil
	}
	window, err := analytics.ParseWindow(raw)
	if err != nil {
		return err
	}
	app.Journal.SetWindow(window)
	return nil
}
