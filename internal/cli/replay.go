package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/nondualworks/docspine-landing/internal/catalog"
	"github.com/nondualworks/docspine-landing/internal/logging"
	"github.com/nondualworks/docspine-landing/internal/playback"
	"github.com/nondualworks/docspine-landing/internal/tui/styles"
)

var replaySpeed float64

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().Float64Var(&replaySpeed, "speed", 0, "playback speed factor (default from config)")
}

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay the scripted CLI session to stdout",
	Long: `Replay the terminal session from the landing page line by line, on the
same schedule the page uses. Works without a TTY.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg == nil {
			return fmt.Errorf("configuration not loaded")
		}
		speed := cfg.Playback.Speed
		if cmd.Flags().Changed("speed") {
			speed = replaySpeed
		}
		mode, err := cfg.ThemeMode()
		if err != nil {
			return err
		}
		tokens, err := styles.Resolve(mode)
		if err != nil {
			return err
		}
		cat, err := catalog.LoadOrBuiltin(cfg.Catalog.Path)
		if err != nil {
			return err
		}

		err = runReplay(cmd.Context(), cmd.OutOrStdout(), cat.Script, tokens, speed)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

// runReplay schedules lines on real timers and prints each one as it is
// revealed. It returns once every line is out or ctx ends.
func runReplay(ctx context.Context, out io.Writer, lines []playback.Line, tokens styles.ThemeTokens, speed float64) error {
	if ctx == nil {
		ctx = context.Background()
	}

	clock := playback.NewLoopClock(len(lines))
	defer clock.Close()

	printer := newLinePrinter(out, tokens)
	engine, err := playback.New(clock,
		playback.WithSpeed(speed),
		playback.WithLogger(logging.Component("playback")),
		playback.WithRevealHook(printer.print),
	)
	if err != nil {
		return err
	}

	engine.Schedule(lines)
	defer engine.Teardown()

	for !engine.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-clock.C():
			fn()
		}
	}
	return printer.err
}

type linePrinter struct {
	out    io.Writer
	prefix lipgloss.Style
	roles  map[playback.Role]lipgloss.Style
	err    error
}

func newLinePrinter(out io.Writer, tokens styles.ThemeTokens) *linePrinter {
	fg := func(c styles.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c.Over(tokens.TerminalBackground))
	}
	return &linePrinter{
		out:    out,
		prefix: fg(tokens.Emphasis),
		roles: map[playback.Role]lipgloss.Style{
			playback.RolePlain:    fg(tokens.TerminalText),
			playback.RoleMuted:    fg(tokens.TerminalMuted),
			playback.RoleBright:   fg(tokens.TerminalBright),
			playback.RoleEmphasis: fg(tokens.Emphasis),
		},
	}
}

func (p *linePrinter) print(_ int, line playback.Line) {
	if p.err != nil {
		return
	}
	var text string
	if line.GapBefore {
		text = "\n"
	}
	if line.HasPrefix() {
		text += p.prefix.Render(line.Prefix) + " "
	}
	for _, seg := range line.Segments {
		style, ok := p.roles[seg.Role]
		if !ok {
			style = p.roles[playback.RolePlain]
		}
		text += style.Render(seg.Text)
	}
	_, p.err = fmt.Fprintln(p.out, text)
}
