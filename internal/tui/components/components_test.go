package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nondualworks/docspine-landing/internal/catalog"
	"github.com/nondualworks/docspine-landing/internal/tui/bookshelf"
	"github.com/nondualworks/docspine-landing/internal/tui/styles"
)

func plain(s string) string {
	return ansi.Strip(s)
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "one searchable hub", 40, []string{"one searchable hub"}},
		{"breaks", "one searchable hub", 10, []string{"one", "searchable", "hub"}},
		{"long word", "internationalization", 8, []string{"interna…"}},
		{"empty", "   ", 10, nil},
		{"zero width", "abc", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.text, tt.width))
		})
	}
}

func TestCenterOffset(t *testing.T) {
	assert.Equal(t, 5, CenterOffset(20, 10))
	assert.Equal(t, 4, CenterOffset(19, 10))
	assert.Equal(t, 0, CenterOffset(8, 10))
}

func TestShelfCaption(t *testing.T) {
	cat := catalog.MustBuiltin()
	services, domains := cat.ShelfSummary()
	assert.Equal(t, "10 services · 4 domains · one searchable hub", ShelfCaption(services, domains))
}

func TestRenderShelfGeometry(t *testing.T) {
	cat := catalog.MustBuiltin()
	tracker := bookshelf.NewTracker(cat.Spines)
	styleSet := styles.DefaultStyles()

	layout, err := RenderShelf(styleSet, tracker, cat.Domains)
	require.NoError(t, err)

	require.Len(t, layout.Spans, len(cat.Spines))
	assert.Equal(t, lipgloss.Width(layout.View), layout.Width)
	assert.Equal(t, bookshelf.MaxRows+1, layout.SpineBottom-layout.SpineTop)
	assert.Equal(t, layout.SpineBottom+1, layout.Height)

	first := layout.Spans[0]
	assert.Equal(t, 0, layout.HitTest(first.Start, layout.SpineTop))
	assert.Equal(t, 1, layout.HitTest(layout.Spans[1].Start+1, layout.SpineBottom-1))
	assert.Equal(t, -1, layout.HitTest(first.End, layout.SpineTop), "gap between spines")
	assert.Equal(t, -1, layout.HitTest(first.Start, 0), "tooltip row")
	assert.Equal(t, -1, layout.HitTest(0, layout.SpineTop), "frame")
}

func TestRenderShelfTooltip(t *testing.T) {
	cat := catalog.MustBuiltin()
	tracker := bookshelf.NewTracker(cat.Spines)
	styleSet := styles.DefaultStyles()

	layout, err := RenderShelf(styleSet, tracker, cat.Domains)
	require.NoError(t, err)
	assert.NotContains(t, plain(layout.View), "pages")

	require.NoError(t, tracker.Set(2))
	hovered, err := RenderShelf(styleSet, tracker, cat.Domains)
	require.NoError(t, err)
	out := plain(hovered.View)
	assert.Contains(t, out, "auth-service")
	assert.Contains(t, out, "identity · 15 pages")
	assert.Equal(t, layout.Height, hovered.Height, "tooltip must not shift the shelf")
}

func TestRenderShelfUnknownDomain(t *testing.T) {
	tracker := bookshelf.NewTracker([]catalog.Spine{{Name: "x", Domain: "missing", Height: 50}})
	_, err := RenderShelf(styles.DefaultStyles(), tracker, catalog.DomainColors{})
	assert.ErrorIs(t, err, bookshelf.ErrUnknownDomain)
}

func TestRenderTerminalHidesUnrevealed(t *testing.T) {
	cat := catalog.MustBuiltin()
	styleSet := styles.DefaultStyles()
	visible := make([]bool, len(cat.Script))
	visible[0] = true

	out := plain(RenderTerminal(styleSet, TerminalWindow{Title: "docspine", Lines: cat.Script, Visible: visible}, 80))
	assert.Contains(t, out, "$ docspine scaffold")
	assert.NotContains(t, out, "payment-api")
	assert.Contains(t, out, "docspine")

	all := make([]bool, len(cat.Script))
	for i := range all {
		all[i] = true
	}
	full := RenderTerminal(styleSet, TerminalWindow{Title: "docspine", Lines: cat.Script, Visible: all}, 80)
	assert.Contains(t, plain(full), "? Service name: payment-api")
	assert.Contains(t, plain(full), "MCP server ready")
	assert.Equal(t, lipgloss.Height(full), strings.Count(out, "\n")+1, "height is stable during playback")
}

func TestTerminalIsDarkInBothModes(t *testing.T) {
	dark := styles.MustResolve(styles.ThemeDark)
	light := styles.MustResolve(styles.ThemeLight)
	assert.Equal(t, dark.TerminalText, light.TerminalText)

	lightStyles, err := styles.StylesFor(styles.ThemeLight)
	require.NoError(t, err)
	assert.Equal(t, light.TerminalBackground.Solid(), lightStyles.TerminalText.GetBackground())
}

func TestRenderLayersHover(t *testing.T) {
	cat := catalog.MustBuiltin()
	styleSet := styles.DefaultStyles()

	grid := RenderLayers(styleSet, cat.Layers, -1, 90)
	require.Len(t, grid.Spans, 3)
	out := plain(grid.View)
	assert.Contains(t, out, "Structure")
	assert.Contains(t, out, "diataxis.fr ↗")
	assert.Equal(t, 1, grid.HitTest(grid.Spans[1].Start, 0))
	assert.Equal(t, -1, grid.HitTest(grid.Spans[1].Start, grid.Height))

	narrow := RenderLayers(styleSet, cat.Layers, -1, 40)
	assert.Nil(t, narrow.Spans)
	assert.Greater(t, narrow.Height, grid.Height)
}

func TestRenderSections(t *testing.T) {
	cat := catalog.MustBuiltin()
	styleSet := styles.DefaultStyles()

	assert.Contains(t, plain(RenderPhilosophy(styleSet, cat.Philosophy, 80)), "The value is in the composition")
	assert.Contains(t, plain(RenderCLIHeader(styleSet, cat.CLI, 80)), "COMING SOON")
	assert.Contains(t, plain(RenderCommands(styleSet, cat.Commands, 80)), "aggregate")

	why := plain(RenderWhy(styleSet, cat.Why, 80))
	assert.Contains(t, why, "WITHOUT STRUCTURE")
	assert.Contains(t, why, "WITH DOCSPINE + MCP")

	credits := plain(RenderCredits(styleSet, cat.Credits, cat.Creditors, 80))
	assert.Contains(t, credits, "by Daniele Procida")
	assert.Contains(t, credits, "https://llmstxt.org")
}

func TestRenderNavAndFooter(t *testing.T) {
	cat := catalog.MustBuiltin()
	styleSet := styles.DefaultStyles()

	nav := RenderNav(styleSet, NavBar{Product: cat.Product, License: cat.License, Links: cat.Nav, Mode: styles.ThemeDark, Width: 100})
	lines := strings.Split(nav, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 100, lipgloss.Width(lines[0]))
	assert.Contains(t, plain(nav), "Apache-2.0")
	assert.Contains(t, plain(nav), "GitHub ↗")

	footer := plain(RenderFooter(styleSet, Footer{Product: cat.Product, License: cat.License, Owner: cat.Owner, Links: cat.Footer}, 90))
	assert.Contains(t, footer, "Docspine · Apache-2.0 · Nondual Works")
	assert.Contains(t, footer, "https://nondualworks.github.io/docspine-demo/")
}
