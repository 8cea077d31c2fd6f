package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nondualworks/docspine-landing/internal/catalog"
	"github.com/nondualworks/docspine-landing/internal/playback"
	"github.com/nondualworks/docspine-landing/internal/tui/styles"
)

// TerminalMaxWidth caps the playback window.
const TerminalMaxWidth = 84

var trafficLights = []styles.Color{
	styles.Hex("#ef4444").WithAlpha(0.7),
	styles.Hex("#fbbf24").WithAlpha(0.7),
	styles.Hex("#22c55e").WithAlpha(0.7),
}

// TerminalWindow is the scripted session window. Hidden lines keep their
// row so the window never changes height during playback.
type TerminalWindow struct {
	Title   string
	Lines   []playback.Line
	Visible []bool
}

// RenderTerminal draws the window. It is dark in both modes.
func RenderTerminal(styleSet styles.Styles, win TerminalWindow, width int) string {
	w := min(width, TerminalMaxWidth)
	inner := max(w-2, 1)
	tokens := styleSet.Theme.Tokens

	barBg := styles.Hex(string(styles.TerminalBarTint.Over(tokens.TerminalBackground)))
	var bar strings.Builder
	bar.WriteString(styleSet.TerminalBar.Render(" "))
	for _, c := range trafficLights {
		bar.WriteString(lipgloss.NewStyle().Background(barBg.Solid()).Foreground(c.Over(barBg)).Render("●"))
		bar.WriteString(styleSet.TerminalBar.Render(" "))
	}
	bar.WriteString(lipgloss.NewStyle().Background(barBg.Solid()).Foreground(tokens.TerminalTitle.Over(barBg)).Render(" " + win.Title))
	barLine := Fill(styleSet.TerminalBar, bar.String(), inner)
	rule := lipgloss.NewStyle().
		Background(tokens.TerminalBackground.Solid()).
		Foreground(tokens.TerminalBorder.Over(tokens.TerminalBackground)).
		Render(strings.Repeat("─", inner))

	lines := []string{barLine, rule, Fill(styleSet.TerminalText, "", inner)}
	for i, line := range win.Lines {
		if line.GapBefore {
			lines = append(lines, Fill(styleSet.TerminalText, "", inner))
		}
		visible := i < len(win.Visible) && win.Visible[i]
		lines = append(lines, Fill(styleSet.TerminalText, renderScriptLine(styleSet, line, visible, inner-2), inner))
	}
	lines = append(lines, Fill(styleSet.TerminalText, "", inner))

	return styleSet.Terminal.Render(strings.Join(lines, "\n"))
}

func renderScriptLine(styleSet styles.Styles, line playback.Line, visible bool, width int) string {
	if !visible {
		return ""
	}
	var b strings.Builder
	b.WriteString(styleSet.TerminalText.Render("  "))
	used := 0
	if line.HasPrefix() {
		b.WriteString(styleSet.TerminalAccent.Render(line.Prefix))
		b.WriteString(styleSet.TerminalText.Render(" "))
		used = lipgloss.Width(line.Prefix) + 1
	}
	for _, seg := range line.Segments {
		room := width - used
		if room <= 0 {
			break
		}
		text := Truncate(seg.Text, room)
		used += lipgloss.Width(text)
		b.WriteString(roleStyle(styleSet, seg.Role).Render(text))
	}
	return b.String()
}

func roleStyle(styleSet styles.Styles, role playback.Role) lipgloss.Style {
	switch role {
	case playback.RoleMuted:
		return styleSet.TerminalMuted
	case playback.RoleBright:
		return styleSet.TerminalBright
	case playback.RoleEmphasis:
		return styleSet.TerminalAccent
	default:
		return styleSet.TerminalText
	}
}

// RenderCommands draws the command teaser grid.
func RenderCommands(styleSet styles.Styles, commands []catalog.Command, width int) string {
	if len(commands) == 0 {
		return ""
	}
	tokens := styleSet.Theme.Tokens
	const minCard = 16
	cols := len(commands)
	for cols > 1 && (width-(cols-1))/cols < minCard {
		cols--
	}
	cardWidth := (width - (cols - 1)) / cols

	cards := make([]string, len(commands))
	for i, c := range commands {
		name := styleSet.Surface(tokens.CardBackground, tokens.Emphasis).Render(Truncate(c.Name, cardWidth-4))
		desc := styleSet.Surface(tokens.CardBackground, tokens.ForegroundDim).Render(Truncate(c.Description, cardWidth-4))
		cards[i] = styleSet.Card.
			Width(cardWidth - 2).
			Align(lipgloss.Center).
			Render(name + "\n" + desc)
	}

	gap := styleSet.Page.Render(" ")
	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		parts := []string{}
		for i := start; i < end; i++ {
			if i > start {
				parts = append(parts, gap)
			}
			parts = append(parts, cards[i])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return strings.Join(rows, "\n")
}
