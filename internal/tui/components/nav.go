package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nondualworks/docspine-landing/internal/catalog"
	"github.com/nondualworks/docspine-landing/internal/tui/styles"
)

var logoBars = []rune{'▅', '▆', '█', '▆', '▅'}

// RenderLogo draws the five-spine mark on surface.
func RenderLogo(surface styles.Color) string {
	var b strings.Builder
	for i, bar := range logoBars {
		d := math.Abs(float64(i - 2))
		alpha := 0.35 + (1-d/5)*0.55
		style := lipgloss.NewStyle().
			Background(surface.Solid()).
			Foreground(styles.Emerald.WithAlpha(alpha).Over(surface))
		b.WriteString(style.Render(string(bar)))
	}
	return b.String()
}

// NavBar is the fixed header.
type NavBar struct {
	Product string
	License string
	Links   []catalog.Link
	Mode    styles.ThemeMode
	Width   int
}

// RenderNav renders the header line and its bottom rule.
func RenderNav(styleSet styles.Styles, nav NavBar) string {
	tokens := styleSet.Theme.Tokens
	surface := styles.Hex(string(tokens.NavBackground.Over(tokens.Background)))
	plain := lipgloss.NewStyle().Background(surface.Solid())
	dim := plain.Foreground(tokens.ForegroundDim.Over(surface))
	word := plain.Foreground(tokens.Foreground.Over(surface)).Bold(true)

	left := plain.Render(" ") + RenderLogo(surface) + plain.Render(" ") + word.Render(nav.Product)

	parts := make([]string, 0, len(nav.Links)+2)
	for _, link := range nav.Links {
		label := link.Label
		if link.External {
			label += " ↗"
		}
		parts = append(parts, dim.Render(label))
	}
	parts = append(parts, dim.Render(themeIcon(nav.Mode)))
	if nav.License != "" {
		parts = append(parts, styleSet.Pill.Render(nav.License))
	}
	right := strings.Join(parts, plain.Render("   ")) + plain.Render(" ")

	gap := nav.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Drop the links before the wordmark when the header is too narrow.
		right = dim.Render(themeIcon(nav.Mode)) + plain.Render(" ")
		gap = nav.Width - lipgloss.Width(left) - lipgloss.Width(right)
	}
	if gap < 1 {
		gap = 1
	}
	line := left + plain.Render(strings.Repeat(" ", gap)) + right

	rule := lipgloss.NewStyle().
		Background(tokens.Background.Solid()).
		Foreground(tokens.Border.Over(tokens.Background)).
		Render(strings.Repeat("─", max(nav.Width, 0)))

	return line + "\n" + rule
}

// themeIcon shows the mode a toggle would switch to.
func themeIcon(mode styles.ThemeMode) string {
	if mode == styles.ThemeDark {
		return "☀ t"
	}
	return "☾ t"
}
