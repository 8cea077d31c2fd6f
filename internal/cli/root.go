// Package cli wires the docspine-landing commands.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nondualworks/docspine-landing/internal/config"
	"github.com/nondualworks/docspine-landing/internal/logging"
)

var (
	configPath     string
	themeFlag      string
	logLevel       string
	logFile        string
	catalogPath    string
	offline        bool
	nonInteractive bool
	noProgress     bool
	jsonOutput     bool

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "docspine-landing",
	Short: "The Docspine landing page, in your terminal",
	Long: `docspine-landing renders the Docspine landing page as an interactive
terminal UI: a themed page with a hoverable service bookshelf and a scripted
CLI session that types itself out.

Run with no subcommand to open the page.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI(cmd.Context())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/docspine-landing/config.yaml)")
	flags.StringVar(&themeFlag, "theme", "", "theme mode: dark or light")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&logFile, "log-file", "", "write logs to this file")
	flags.StringVar(&catalogPath, "catalog", "", "override page content with a .yaml or .toml catalog")
	flags.BoolVar(&offline, "offline", false, "skip the font stylesheet prefetch")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never start the interactive page")
	flags.BoolVar(&noProgress, "no-progress", false, "suppress progress output")
	flags.BoolVar(&jsonOutput, "json", false, "print machine-readable JSON")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	return appConfig
}

func initConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	appConfig = cfg

	logCfg := logging.Config{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	}
	if ownsTerminal(cmd) && logCfg.File == "" {
		logCfg.File = logging.DefaultFile()
	}
	if err := logging.Init(logCfg); err != nil {
		return err
	}

	logger := logging.Component("cli")
	logger.Debug().
		Str("command", cmd.CommandPath()).
		Str("theme", cfg.Theme).
		Str("catalog", defaultIfEmpty(cfg.Catalog.Path, "builtin")).
		Msg("configuration loaded")
	return nil
}

// applyFlagOverrides lets explicitly set flags win over file and env values.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = strings.TrimSpace(themeFlag)
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if flags.Changed("catalog") {
		cfg.Catalog.Path = catalogPath
	}
	if offline {
		cfg.Fonts.Enabled = false
	}
}

// ownsTerminal reports whether the command draws the full-screen page, in
// which case stderr logging would corrupt the display.
func ownsTerminal(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "ui"
}

func defaultIfEmpty(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
