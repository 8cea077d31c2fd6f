package styles

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Theme Theme

	Page     lipgloss.Style
	Headline lipgloss.Style
	Heading  lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Dim      lipgloss.Style
	Subtle   lipgloss.Style
	Accent   lipgloss.Style
	Eyebrow  lipgloss.Style
	Quote    lipgloss.Style
	Pill     lipgloss.Style
	Nav      lipgloss.Style

	Card      lipgloss.Style
	CardHover lipgloss.Style

	PrimaryCTA   lipgloss.Style
	SecondaryCTA lipgloss.Style

	Tooltip      lipgloss.Style
	TooltipTitle lipgloss.Style
	TooltipMeta  lipgloss.Style

	Terminal       lipgloss.Style
	TerminalBar    lipgloss.Style
	TerminalTitle  lipgloss.Style
	TerminalText   lipgloss.Style
	TerminalMuted  lipgloss.Style
	TerminalBright lipgloss.Style
	TerminalAccent lipgloss.Style

	BadPanel  lipgloss.Style
	BadLabel  lipgloss.Style
	BadText   lipgloss.Style
	GoodPanel lipgloss.Style
	GoodLabel lipgloss.Style

	Selection lipgloss.Style
}

// TerminalBarTint is the title bar wash over the terminal background.
var TerminalBarTint = RGBA(255, 255, 255, 0.03)

// DefaultStyles builds styles from the default theme.
func DefaultStyles() Styles {
	return BuildStyles(DarkTheme)
}

// StylesFor resolves a mode and builds its styles.
func StylesFor(mode ThemeMode) (Styles, error) {
	theme, err := ThemeFor(mode)
	if err != nil {
		return Styles{}, err
	}
	return BuildStyles(theme), nil
}

// BuildStyles converts theme tokens into lipgloss styles.
func BuildStyles(theme Theme) Styles {
	tokens := theme.Tokens
	bg := tokens.Background
	page := lipgloss.NewStyle().Background(bg.Solid())

	fg := func(c Color) lipgloss.Style {
		return page.Foreground(c.Over(bg))
	}

	term := tokens.TerminalBackground
	onTerm := func(c Color) lipgloss.Style {
		return lipgloss.NewStyle().Background(term.Solid()).Foreground(c.Over(term))
	}

	tip := tokens.TooltipBackground
	onTip := func(c Color) lipgloss.Style {
		return lipgloss.NewStyle().Background(tip.Solid()).Foreground(c.Over(tip))
	}

	card := lipgloss.NewStyle().
		Background(tokens.CardBackground.Over(bg)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tokens.Border.Over(bg)).
		BorderBackground(bg.Solid()).
		Padding(0, 1)
	if tokens.HasShadow() {
		card = card.BorderForeground(tokens.BorderHover.Over(bg))
	}

	return Styles{
		Theme: theme,

		Page:     page.Foreground(tokens.Foreground.Over(bg)),
		Headline: fg(tokens.Foreground).Bold(true),
		Heading:  fg(tokens.Foreground).Bold(true),
		Text:     fg(tokens.Foreground),
		Muted:    fg(tokens.ForegroundMuted),
		Dim:      fg(tokens.ForegroundDim),
		Subtle:   fg(tokens.ForegroundSubtle),
		Accent:   fg(tokens.Emphasis),
		Eyebrow:  fg(tokens.Eyebrow).Bold(true),
		Quote: fg(tokens.Foreground).Italic(true).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(tokens.QuoteBorder.Over(bg)).
			BorderBackground(bg.Solid()).
			PaddingLeft(2),
		Pill: lipgloss.NewStyle().
			Background(tokens.EmphasisDim.Over(bg)).
			Foreground(tokens.Emphasis.Solid()).
			Bold(true).
			Padding(0, 1),
		Nav: lipgloss.NewStyle().
			Background(tokens.NavBackground.Over(bg)).
			Foreground(tokens.ForegroundDim.Over(bg)).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(tokens.Border.Over(bg)).
			BorderBackground(bg.Solid()),

		Card:      card,
		CardHover: card.BorderForeground(tokens.BorderHover.Over(bg)),

		PrimaryCTA: lipgloss.NewStyle().
			Background(tokens.Emphasis.Solid()).
			Foreground(tokens.CTAForeground.Solid()).
			Bold(true).
			Padding(0, 2),
		SecondaryCTA: lipgloss.NewStyle().
			Background(tokens.CardBackground.Over(bg)).
			Foreground(tokens.ForegroundMuted.Over(bg)).
			Padding(0, 2),

		Tooltip: lipgloss.NewStyle().
			Background(tip.Solid()).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(tokens.Border.Over(tip)).
			BorderBackground(bg.Solid()).
			Padding(0, 1),
		TooltipTitle: onTip(tokens.Foreground).Bold(true),
		TooltipMeta:  onTip(tokens.ForegroundDim),

		Terminal: lipgloss.NewStyle().
			Background(term.Solid()).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(tokens.TerminalBorder.Over(term)).
			BorderBackground(bg.Solid()),
		TerminalBar:    lipgloss.NewStyle().Background(TerminalBarTint.Over(term)),
		TerminalTitle:  onTerm(tokens.TerminalTitle),
		TerminalText:   onTerm(tokens.TerminalText),
		TerminalMuted:  onTerm(tokens.TerminalMuted),
		TerminalBright: onTerm(tokens.TerminalBright),
		TerminalAccent: onTerm(tokens.Emphasis),

		BadPanel: lipgloss.NewStyle().
			Background(tokens.BadBackground.Over(bg)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(tokens.BadBorder.Over(bg)).
			BorderBackground(bg.Solid()).
			Padding(0, 1),
		BadLabel: lipgloss.NewStyle().Background(tokens.BadBackground.Over(bg)).Foreground(lipgloss.Color("#ef4444")).Bold(true),
		BadText:  lipgloss.NewStyle().Background(tokens.BadBackground.Over(bg)).Foreground(tokens.BadForeground.Over(bg)).Italic(true),
		GoodPanel: lipgloss.NewStyle().
			Background(tokens.EmphasisDim.Over(bg)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(tokens.Emphasis.WithAlpha(AlphaByte("18")).Over(bg)).
			BorderBackground(bg.Solid()).
			Padding(0, 1),
		GoodLabel: lipgloss.NewStyle().Background(tokens.EmphasisDim.Over(bg)).Foreground(tokens.Emphasis.Solid()).Bold(true),

		Selection: lipgloss.NewStyle().
			Background(tokens.Selection.Solid()).
			Foreground(tokens.SelectionForeground.Solid()),
	}
}

// Surface returns a text style painted on an arbitrary translucent surface,
// for content nested in panels whose background differs from the page.
func (s Styles) Surface(surface Color, fg Color) lipgloss.Style {
	bg := surface.Over(s.Theme.Tokens.Background)
	return lipgloss.NewStyle().
		Background(bg).
		Foreground(fg.Over(Hex(string(bg))))
}
