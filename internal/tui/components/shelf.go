package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nondualworks/docspine-landing/internal/catalog"
	"github.com/nondualworks/docspine-landing/internal/tui/bookshelf"
	"github.com/nondualworks/docspine-landing/internal/tui/styles"
)

const (
	SpineWidth = 3
	SpineGap   = 1

	// TooltipRows is the space reserved above the shelf for the tooltip.
	TooltipRows = 4

	shelfPadX = 2
	// Left edge and top edge of the first spine cell inside the frame.
	shelfInsetX = 1 + shelfPadX
	shelfInsetY = 1
)

// Span is a half-open column range.
type Span struct {
	Start int
	End   int
}

// Contains reports whether x falls inside the span.
func (s Span) Contains(x int) bool {
	return x >= s.Start && x < s.End
}

// ShelfLayout is a rendered shelf plus the geometry needed for hit testing.
// Coordinates are relative to the top-left cell of View.
type ShelfLayout struct {
	View        string
	Width       int
	Height      int
	Spans       []Span
	SpineTop    int
	SpineBottom int
}

// HitTest returns the spine under (x, y), or -1.
func (l ShelfLayout) HitTest(x, y int) int {
	if y < l.SpineTop || y >= l.SpineBottom {
		return -1
	}
	for i, span := range l.Spans {
		if span.Contains(x) {
			return i
		}
	}
	return -1
}

// RenderShelf draws the tooltip slot and the framed row of spines.
func RenderShelf(styleSet styles.Styles, tracker *bookshelf.Tracker, domains catalog.DomainColors) (ShelfLayout, error) {
	tokens := styleSet.Theme.Tokens
	spines := tracker.Items()
	cardBg := styles.Hex(string(tokens.CardBackground.Over(tokens.Background)))
	blank := lipgloss.NewStyle().Background(cardBg.Solid())

	n := len(spines)
	rows := bookshelf.MaxRows + 1

	visuals := make([]bookshelf.Visual, n)
	for i := range spines {
		v, err := tracker.VisualFor(i, domains, tokens)
		if err != nil {
			return ShelfLayout{}, err
		}
		visuals[i] = v
	}

	grid := make([]string, rows)
	for r := 0; r < rows; r++ {
		var b strings.Builder
		for i, spine := range spines {
			if i > 0 {
				b.WriteString(blank.Render(strings.Repeat(" ", SpineGap)))
			}
			b.WriteString(spineCell(tokens, cardBg, spine, visuals[i], r, rows))
		}
		grid[r] = b.String()
	}

	frame := styleSet.Card.Padding(0, shelfPadX).Render(strings.Join(grid, "\n"))
	frameWidth := lipgloss.Width(frame)

	tip := renderTooltip(styleSet, tracker, frameWidth)
	view := Fill(styleSet.Page, tip, frameWidth) + "\n" + frame

	spans := make([]Span, n)
	for i := range spans {
		start := shelfInsetX + i*(SpineWidth+SpineGap)
		spans[i] = Span{Start: start, End: start + SpineWidth}
	}

	return ShelfLayout{
		View:        view,
		Width:       frameWidth,
		Height:      lipgloss.Height(view),
		Spans:       spans,
		SpineTop:    TooltipRows + shelfInsetY,
		SpineBottom: TooltipRows + shelfInsetY + rows,
	}, nil
}

func spineCell(tokens styles.ThemeTokens, cardBg styles.Color, spine catalog.Spine, v bookshelf.Visual, row, rows int) string {
	bottom := rows - 1
	if v.Elevated {
		bottom--
	}
	top := bottom - v.Rows + 1

	if row < top || row > bottom {
		bg := cardBg.Solid()
		if v.Elevated && row == rows-1 {
			if shadow, err := styles.ParseColor(v.Shadow); err == nil {
				bg = shadow.Over(cardBg)
			}
		}
		return lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", SpineWidth))
	}

	fill := styles.Hex(string(v.Fill.Over(cardBg)))
	style := lipgloss.NewStyle().
		Background(fill.Solid()).
		Foreground(tokens.SpineText.Over(fill))

	label := []rune(Truncate(spine.Name, v.Rows))
	glyph := " "
	if k := row - top; k < len(label) {
		glyph = string(label[k])
	}
	return style.Render(" " + glyph + " ")
}

func renderTooltip(styleSet styles.Styles, tracker *bookshelf.Tracker, width int) string {
	blank := strings.Repeat("\n", TooltipRows-1)
	spine, ok := tracker.Current()
	if !ok {
		return blank
	}
	idx, _ := tracker.Hovered()

	// Border and padding take four columns.
	limit := max(width-4, 1)
	body := styleSet.TooltipTitle.Render(Truncate(spine.Name, limit)) + "\n" +
		styleSet.TooltipMeta.Render(Truncate(Tooltip(spine), limit))
	box := styleSet.Tooltip.Render(body)

	center := shelfInsetX + idx*(SpineWidth+SpineGap) + SpineWidth/2
	left := center - lipgloss.Width(box)/2
	left = max(0, min(left, width-lipgloss.Width(box)))
	return Indent(styleSet.Page, box, left)
}

// Tooltip is the metadata line for a spine.
func Tooltip(spine catalog.Spine) string {
	return spine.Domain + " · " + strconv.Itoa(spine.Docs) + " pages"
}
