package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nondualworks/docspine-landing/internal/catalog"
	"github.com/nondualworks/docspine-landing/internal/tui/styles"
)

// ProseWidth caps body copy in the lower sections.
const ProseWidth = 72

// RenderPhilosophy draws the philosophy section and its pull quote.
func RenderPhilosophy(styleSet styles.Styles, p catalog.Philosophy, width int) string {
	tokens := styleSet.Theme.Tokens
	accent := styleSet.Muted.Foreground(tokens.Emphasis.Over(tokens.Background))
	marks := map[string]lipgloss.Style{"Diataxis": accent, "llms.txt": accent}

	lines := []string{SectionHeader(styleSet, p.Eyebrow, p.Heading), ""}
	for _, line := range Wrap(p.Body, min(width, ProseWidth)) {
		lines = append(lines, Highlight(styleSet.Muted, line, marks))
	}
	if p.Quote != "" {
		lines = append(lines, "", styleSet.Quote.Render(Paragraph(styleSet.Text.Italic(true), p.Quote, min(width, ProseWidth)-3)))
	}
	return strings.Join(lines, "\n")
}

// RenderCLIHeader draws the CLI heading with its badge and intro copy.
func RenderCLIHeader(styleSet styles.Styles, cli catalog.CLISection, width int) string {
	heading := styleSet.Heading.Render(cli.Heading)
	if cli.Badge != "" {
		heading += styleSet.Page.Render("  ") + styleSet.Pill.Render(cli.Badge)
	}
	lines := []string{}
	if cli.Eyebrow != "" {
		lines = append(lines, styleSet.Eyebrow.Render(strings.ToUpper(cli.Eyebrow)))
	}
	lines = append(lines, heading, "")
	if cli.Body != "" {
		lines = append(lines, Paragraph(styleSet.Muted, cli.Body, min(width, ProseWidth)))
	}
	return strings.Join(lines, "\n")
}

// RenderWhy draws the without/with comparison.
func RenderWhy(styleSet styles.Styles, why catalog.Why, width int) string {
	tokens := styleSet.Theme.Tokens
	cols := 2
	if width < gridMinWidth {
		cols = 1
	}
	panelWidth := (width - cardGap*(cols-1)) / cols
	textWidth := max(panelWidth-4, 1)

	bad := comparisonBody(styleSet, why.Without, tokens.BadBackground, styleSet.BadLabel, styleSet.BadText, textWidth)
	good := comparisonBody(styleSet, why.With, tokens.EmphasisDim, styleSet.GoodLabel,
		styleSet.Surface(tokens.EmphasisDim, tokens.Emphasis), textWidth)
	height := max(len(bad), len(good))

	panels := []string{
		styleSet.BadPanel.Width(panelWidth - 2).Height(height).Render(strings.Join(bad, "\n")),
		styleSet.GoodPanel.Width(panelWidth - 2).Height(height).Render(strings.Join(good, "\n")),
	}

	header := SectionHeader(styleSet, why.Eyebrow, why.Heading)
	return header + "\n\n" + layoutGrid(styleSet, panels, cols, panelWidth).View
}

func comparisonBody(styleSet styles.Styles, c catalog.Comparison, surface styles.Color, label, answer lipgloss.Style, width int) []string {
	tokens := styleSet.Theme.Tokens
	arrow := styleSet.Surface(surface, tokens.ForegroundSubtle)
	question := styleSet.Surface(surface, tokens.ForegroundDim)

	lines := []string{label.Render(strings.ToUpper(c.Label)), ""}
	for i, line := range Wrap(`"`+c.Question+`"`, width-2) {
		lead := arrow.Render("→ ")
		if i > 0 {
			lead = arrow.Render("  ")
		}
		lines = append(lines, lead+question.Render(line))
	}
	lines = append(lines, "")
	for _, line := range Wrap(`"`+c.Answer+`"`, width) {
		lines = append(lines, answer.Render(line))
	}
	return lines
}

// RenderCredits draws the prior-work cards.
func RenderCredits(styleSet styles.Styles, section catalog.Section, credits []catalog.Credit, width int) string {
	tokens := styleSet.Theme.Tokens
	on := func(c styles.Color) lipgloss.Style { return styleSet.Surface(tokens.CardBackground, c) }

	cols := len(credits)
	if width < gridMinWidth || cols == 0 {
		cols = 1
	}
	cardWidth := (width - cardGap*(cols-1)) / cols
	textWidth := max(cardWidth-4, 1)

	bodies := make([][]string, len(credits))
	tallest := 0
	for i, c := range credits {
		lines := []string{
			on(tokens.Foreground).Bold(true).Render(c.Name) + on(c.Color).Render(" ↗"),
			on(c.Color).Render("by " + c.Author),
			"",
		}
		for _, line := range Wrap(c.Description, textWidth) {
			lines = append(lines, on(tokens.ForegroundDim).Render(line))
		}
		lines = append(lines, "", on(tokens.ForegroundSubtle).Render(Truncate(c.URL, textWidth)))
		bodies[i] = lines
		tallest = max(tallest, len(lines))
	}

	cards := make([]string, len(credits))
	for i := range credits {
		cards[i] = styleSet.Card.Width(cardWidth - 2).Height(tallest).Render(strings.Join(bodies[i], "\n"))
	}

	header := SectionHeader(styleSet, section.Eyebrow, section.Heading)
	if len(cards) == 0 {
		return header
	}
	return header + "\n\n" + layoutGrid(styleSet, cards, cols, cardWidth).View
}

// Footer is the closing strip.
type Footer struct {
	Product string
	License string
	Owner   catalog.Link
	Links   []catalog.Link
}

// RenderFooter draws the footer rule, the imprint, and every link with its URL.
func RenderFooter(styleSet styles.Styles, f Footer, width int) string {
	tokens := styleSet.Theme.Tokens
	rule := styleSet.Page.Foreground(tokens.Border.Over(tokens.Background)).Render(strings.Repeat("─", width))

	imprint := []string{f.Product}
	if f.License != "" {
		imprint = append(imprint, f.License)
	}
	if f.Owner.Label != "" {
		imprint = append(imprint, f.Owner.Label)
	}
	left := styleSet.Subtle.Render(strings.Join(imprint, " · "))

	labels := make([]string, 0, len(f.Links))
	for _, l := range f.Links {
		labels = append(labels, styleSet.Dim.Render(l.Label))
	}
	right := strings.Join(labels, styleSet.Page.Render("   "))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	top := left
	if gap >= 1 {
		top = left + styleSet.Page.Render(strings.Repeat(" ", gap)) + right
	} else {
		top = left + "\n" + right
	}

	lines := []string{rule, "", top, ""}
	links := append([]catalog.Link{}, f.Links...)
	if f.Owner.URL != "" {
		links = append(links, f.Owner)
	}
	for _, l := range links {
		lines = append(lines, styleSet.Dim.Render(l.Label)+styleSet.Subtle.Render("  "+Truncate(l.URL, max(width-lipgloss.Width(l.Label)-2, 1))))
	}
	return strings.Join(lines, "\n")
}
