// Package cli provides TUI launch commands.
package cli

import (
	"context"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/nondualworks/docspine-landing/internal/catalog"
	"github.com/nondualworks/docspine-landing/internal/config"
	"github.com/nondualworks/docspine-landing/internal/fonts"
	"github.com/nondualworks/docspine-landing/internal/logging"
	"github.com/nondualworks/docspine-landing/internal/tui"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the landing page",
	Long:  "Open the interactive landing page on the alternate screen.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI(cmd.Context())
	},
}

func runUI(ctx context.Context) error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "the landing page requires an interactive terminal",
			Hint:     "Run with a TTY, or use a headless subcommand",
			NextStep: "docspine-landing replay",
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := GetConfig()
	if cfg == nil {
		defaults := config.DefaultConfig()
		cfg = &defaults
	}
	mode, err := cfg.ThemeMode()
	if err != nil {
		return err
	}

	cat, err := catalog.LoadOrBuiltin(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	logger := logging.Component("tui")
	return tui.Run(ctx, tui.Options{
		Catalog:  cat,
		Mode:     mode,
		Speed:    cfg.Playback.Speed,
		Prefetch: fontPrefetcher(ctx, cfg.Fonts),
		Logger:   &logger,
	})
}

// fontPrefetcher returns nil when prefetching is disabled.
func fontPrefetcher(ctx context.Context, cfg config.FontsConfig) func() {
	if !cfg.Enabled || cfg.URL == "" {
		return nil
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = fonts.DefaultTimeout
	}
	client := &http.Client{Timeout: timeout}
	logger := logging.Component("fonts")
	return func() {
		fonts.Prefetch(ctx, client, cfg.URL, logger)
	}
}
