package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nondualworks/docspine-landing/internal/catalog"
	"github.com/nondualworks/docspine-landing/internal/tui/styles"
)

// HeroBodyWidth caps the hero copy, close to the page's 580px column.
const HeroBodyWidth = 64

// RenderHeroIntro renders everything in the hero above the bookshelf,
// centered in width.
func RenderHeroIntro(styleSet styles.Styles, hero catalog.Hero, marks catalog.DomainColors, width int) string {
	tokens := styleSet.Theme.Tokens
	glow := styleSet.Surface(tokens.Emphasis.WithAlpha(tokens.GlowAlpha*2), tokens.Emphasis).Bold(true).Padding(0, 1)

	blocks := []string{
		glow.Render(strings.ToUpper(hero.Eyebrow)),
		"",
	}
	for _, line := range hero.Headline {
		blocks = append(blocks, styleSet.Headline.Render(line))
	}
	blocks = append(blocks, "")

	bodyWidth := min(width, HeroBodyWidth)
	highlights := map[string]lipgloss.Style{}
	if c, ok := marks["tutorial"]; ok {
		highlights["Diataxis"] = styleSet.Muted.Foreground(c.Over(tokens.Background)).Underline(true)
	}
	if c, ok := marks["reference"]; ok {
		highlights["llms.txt"] = styleSet.Muted.Foreground(c.Over(tokens.Background)).Underline(true)
	}
	for _, line := range Wrap(hero.Body, bodyWidth) {
		blocks = append(blocks, Highlight(styleSet.Muted, line, highlights))
	}
	blocks = append(blocks, "", renderCTAs(styleSet, hero))

	for i, block := range blocks {
		blocks[i] = Center(styleSet.Page, block, width)
	}
	return strings.Join(blocks, "\n")
}

func renderCTAs(styleSet styles.Styles, hero catalog.Hero) string {
	var parts []string
	if hero.Primary.Label != "" {
		parts = append(parts, styleSet.PrimaryCTA.Render(hero.Primary.Label))
	}
	if hero.Secondary.Label != "" {
		parts = append(parts, styleSet.SecondaryCTA.Render(hero.Secondary.Label))
	}
	return strings.Join(parts, styleSet.Page.Render("  "))
}

// ShelfCaption is the summary line under the bookshelf.
func ShelfCaption(services, domains int) string {
	return fmt.Sprintf("%d services · %d domains · one searchable hub", services, domains)
}
