package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nondualworks/docspine-landing/internal/catalog"
	"github.com/nondualworks/docspine-landing/internal/tui/styles"
)

const (
	cardGap = 2
	// Below this width card grids collapse to one column.
	gridMinWidth = 72
)

// GridLayout is a rendered row of cards with each card's columns.
type GridLayout struct {
	View   string
	Height int
	Spans  []Span
}

// HitTest returns the card under x, or -1. Rows are not distinguished
// because the grid may wrap; y is checked against Height.
func (g GridLayout) HitTest(x, y int) int {
	if y < 0 || y >= g.Height {
		return -1
	}
	for i, span := range g.Spans {
		if span.Contains(x) {
			return i
		}
	}
	return -1
}

// RenderLayers draws the contract layer cards. hovered is the card under the
// pointer, or -1.
func RenderLayers(styleSet styles.Styles, layers []catalog.Layer, hovered, width int) GridLayout {
	if len(layers) == 0 {
		return GridLayout{}
	}
	tokens := styleSet.Theme.Tokens
	on := func(c styles.Color) lipgloss.Style { return styleSet.Surface(tokens.CardBackground, c) }

	cols := len(layers)
	if width < gridMinWidth {
		cols = 1
	}
	cardWidth := (width - cardGap*(cols-1)) / cols
	textWidth := max(cardWidth-4, 1)

	bodies := make([][]string, len(layers))
	tallest := 0
	for i, layer := range layers {
		lines := []string{
			on(layer.Color).Render(layer.Number),
			"",
			on(tokens.Foreground).Bold(true).Render(layer.Title),
		}
		for _, line := range Wrap(layer.Description, textWidth) {
			lines = append(lines, on(tokens.ForegroundDim).Render(line))
		}
		if layer.Link != nil {
			label := layer.Link.Label + " ↗"
			lines = append(lines,
				"",
				on(layer.Color).Render(label),
				on(layer.Color.WithAlpha(tokens.LinkBorderAlpha)).Render(strings.Repeat("╌", lipgloss.Width(label))),
			)
		}
		bodies[i] = lines
		tallest = max(tallest, len(lines))
	}

	cards := make([]string, len(layers))
	for i, layer := range layers {
		style := styleSet.Card
		if i == hovered {
			style = styleSet.CardHover.BorderForeground(layer.Color.WithAlpha(tokens.AccentBorderAlpha).Over(tokens.Background))
		}
		cards[i] = style.Width(cardWidth - 2).Height(tallest).Render(strings.Join(bodies[i], "\n"))
	}
	return layoutGrid(styleSet, cards, cols, cardWidth)
}

func layoutGrid(styleSet styles.Styles, cards []string, cols, cardWidth int) GridLayout {
	gap := styleSet.Page.Render(strings.Repeat(" ", cardGap))
	var rows []string
	spans := make([]Span, len(cards))
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		parts := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				parts = append(parts, gap)
			}
			parts = append(parts, cards[i])
			x := (i - start) * (cardWidth + cardGap)
			spans[i] = Span{Start: x, End: x + cardWidth}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	if cols < len(cards) {
		// Wrapped grids cannot be hit-tested by column alone.
		spans = nil
	}
	view := strings.Join(rows, "\n")
	return GridLayout{View: view, Height: lipgloss.Height(view), Spans: spans}
}
