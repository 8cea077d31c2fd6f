package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nondualworks/docspine-landing/internal/tui/components"
)

const (
	maxColumnWidth = 96
	sectionGap     = 2
)

// pageLayout is the scrollable page content plus the regions the pointer
// can hover, in content coordinates.
type pageLayout struct {
	content string
	lines   int

	shelf     components.ShelfLayout
	shelfTop  int
	shelfLeft int

	layers     components.GridLayout
	layersTop  int
	layersLeft int
}

type pageBuilder struct {
	width  int
	blocks []string
	lines  int
	fill   lipgloss.Style
}

func (b *pageBuilder) add(block string) {
	block = components.Fill(b.fill, block, b.width)
	b.blocks = append(b.blocks, block)
	b.lines += lipgloss.Height(block)
}

func (b *pageBuilder) gap(n int) {
	for i := 0; i < n; i++ {
		b.add("")
	}
}

func (m Model) renderPage() (pageLayout, error) {
	cat := m.catalog
	s := m.styles
	width := m.width
	column := min(max(width-4, 1), maxColumnWidth)
	left := components.CenterOffset(width, column)
	indent := func(block string) string { return components.Indent(s.Page, block, left) }

	b := &pageBuilder{width: width, fill: s.Page}
	var layout pageLayout

	b.gap(sectionGap)
	b.add(components.RenderHeroIntro(s, cat.Hero, cat.Diataxis, width))
	b.gap(1)

	shelf, err := components.RenderShelf(s, m.tracker, cat.Domains)
	if err != nil {
		return pageLayout{}, err
	}
	layout.shelf = shelf
	layout.shelfTop = b.lines
	layout.shelfLeft = components.CenterOffset(width, shelf.Width)
	b.add(components.Center(s.Page, shelf.View, width))

	services, domains := cat.ShelfSummary()
	b.add(components.Center(s.Page, s.Subtle.Render(components.ShelfCaption(services, domains)), width))
	b.gap(sectionGap + 1)

	b.add(indent(components.RenderPhilosophy(s, cat.Philosophy, column)))
	b.gap(sectionGap + 1)

	b.add(indent(components.SectionHeader(s, cat.Spec.Eyebrow, cat.Spec.Heading)))
	b.gap(1)
	layers := components.RenderLayers(s, cat.Layers, m.hoveredLayer, column)
	layout.layers = layers
	layout.layersTop = b.lines
	layout.layersLeft = left
	b.add(indent(layers.View))
	b.gap(sectionGap + 1)

	b.add(indent(components.RenderCLIHeader(s, cat.CLI, column)))
	b.gap(1)
	b.add(indent(components.RenderTerminal(s, components.TerminalWindow{
		Title:   cat.CLI.WindowTitle,
		Lines:   m.engine.Lines(),
		Visible: m.engine.Snapshot(),
	}, column)))
	b.gap(1)
	b.add(indent(components.RenderCommands(s, cat.Commands, min(column, components.TerminalMaxWidth))))
	b.gap(sectionGap + 1)

	b.add(indent(components.RenderWhy(s, cat.Why, column)))
	b.gap(sectionGap + 1)

	b.add(indent(components.RenderCredits(s, cat.Credits, cat.Creditors, column)))
	b.gap(sectionGap + 1)

	b.add(indent(components.RenderFooter(s, components.Footer{
		Product: cat.Product,
		License: cat.License,
		Owner:   cat.Owner,
		Links:   cat.Footer,
	}, column)))
	b.gap(sectionGap)

	// Short pages still paint the whole viewport.
	for b.lines < m.viewport.Height {
		b.add("")
	}

	layout.content = strings.Join(b.blocks, "\n")
	layout.lines = b.lines
	return layout, nil
}

// hitShelf maps a content cell to a spine index, or -1.
func (p pageLayout) hitShelf(x, y int) int {
	return p.shelf.HitTest(x-p.shelfLeft, y-p.shelfTop)
}

// hitLayer maps a content cell to a layer card, or -1.
func (p pageLayout) hitLayer(x, y int) int {
	return p.layers.HitTest(x-p.layersLeft, y-p.layersTop)
}
