package styles

import "strconv"

// TokenName is the stable key of a token, used by the tokens command and by
// anything that addresses tokens by name instead of by field.
type TokenName string

const (
	TokenBackground          TokenName = "background"
	TokenCardBackground      TokenName = "card.background"
	TokenNavBackground       TokenName = "nav.background"
	TokenPillBackground      TokenName = "pill.background"
	TokenTerminalBackground  TokenName = "terminal.background"
	TokenTooltipBackground   TokenName = "tooltip.background"
	TokenBorder              TokenName = "border"
	TokenBorderHover         TokenName = "border.hover"
	TokenTerminalBorder      TokenName = "terminal.border"
	TokenQuoteBorder         TokenName = "quote.border"
	TokenForeground          TokenName = "foreground"
	TokenForegroundMuted     TokenName = "foreground.muted"
	TokenForegroundDim       TokenName = "foreground.dim"
	TokenForegroundSubtle    TokenName = "foreground.subtle"
	TokenEyebrow             TokenName = "eyebrow"
	TokenEmphasis            TokenName = "emphasis"
	TokenEmphasisDim         TokenName = "emphasis.dim"
	TokenBadBackground       TokenName = "bad.background"
	TokenBadBorder           TokenName = "bad.border"
	TokenBadForeground       TokenName = "bad.foreground"
	TokenSpineText           TokenName = "spine.text"
	TokenSelection           TokenName = "selection.background"
	TokenSelectionForeground TokenName = "selection.foreground"
	TokenCTAForeground       TokenName = "cta.foreground"
	TokenTerminalText        TokenName = "terminal.text"
	TokenTerminalMuted       TokenName = "terminal.muted"
	TokenTerminalBright      TokenName = "terminal.bright"
	TokenTerminalTitle       TokenName = "terminal.title"
	TokenGlowAlpha           TokenName = "glow.alpha"
	TokenSpineAlpha          TokenName = "spine.alpha"
	TokenLinkBorderAlpha     TokenName = "link.border.alpha"
	TokenAccentBorderAlpha   TokenName = "accent.border.alpha"
	TokenQuoteAlpha          TokenName = "quote.alpha"
	TokenShadow              TokenName = "shadow"
	TokenTooltipShadow       TokenName = "tooltip.shadow"
	TokenSpineRestShadow     TokenName = "spine.rest.shadow"
)

// RequiredTokens lists every token a resolved set must carry, in display order.
var RequiredTokens = []TokenName{
	TokenBackground,
	TokenCardBackground,
	TokenNavBackground,
	TokenPillBackground,
	TokenTerminalBackground,
	TokenTooltipBackground,
	TokenBorder,
	TokenBorderHover,
	TokenTerminalBorder,
	TokenQuoteBorder,
	TokenForeground,
	TokenForegroundMuted,
	TokenForegroundDim,
	TokenForegroundSubtle,
	TokenEyebrow,
	TokenEmphasis,
	TokenEmphasisDim,
	TokenBadBackground,
	TokenBadBorder,
	TokenBadForeground,
	TokenSpineText,
	TokenSelection,
	TokenSelectionForeground,
	TokenCTAForeground,
	TokenTerminalText,
	TokenTerminalMuted,
	TokenTerminalBright,
	TokenTerminalTitle,
	TokenGlowAlpha,
	TokenSpineAlpha,
	TokenLinkBorderAlpha,
	TokenAccentBorderAlpha,
	TokenQuoteAlpha,
	TokenShadow,
	TokenTooltipShadow,
	TokenSpineRestShadow,
}

// Map returns the token set keyed by name with every value rendered as text.
func (t ThemeTokens) Map() map[TokenName]string {
	return map[TokenName]string{
		TokenBackground:          t.Background.String(),
		TokenCardBackground:      t.CardBackground.String(),
		TokenNavBackground:       t.NavBackground.String(),
		TokenPillBackground:      t.PillBackground.String(),
		TokenTerminalBackground:  t.TerminalBackground.String(),
		TokenTooltipBackground:   t.TooltipBackground.String(),
		TokenBorder:              t.Border.String(),
		TokenBorderHover:         t.BorderHover.String(),
		TokenTerminalBorder:      t.TerminalBorder.String(),
		TokenQuoteBorder:         t.QuoteBorder.String(),
		TokenForeground:          t.Foreground.String(),
		TokenForegroundMuted:     t.ForegroundMuted.String(),
		TokenForegroundDim:       t.ForegroundDim.String(),
		TokenForegroundSubtle:    t.ForegroundSubtle.String(),
		TokenEyebrow:             t.Eyebrow.String(),
		TokenEmphasis:            t.Emphasis.String(),
		TokenEmphasisDim:         t.EmphasisDim.String(),
		TokenBadBackground:       t.BadBackground.String(),
		TokenBadBorder:           t.BadBorder.String(),
		TokenBadForeground:       t.BadForeground.String(),
		TokenSpineText:           t.SpineText.String(),
		TokenSelection:           t.Selection.String(),
		TokenSelectionForeground: t.SelectionForeground.String(),
		TokenCTAForeground:       t.CTAForeground.String(),
		TokenTerminalText:        t.TerminalText.String(),
		TokenTerminalMuted:       t.TerminalMuted.String(),
		TokenTerminalBright:      t.TerminalBright.String(),
		TokenTerminalTitle:       t.TerminalTitle.String(),
		TokenGlowAlpha:           formatAlpha(t.GlowAlpha),
		TokenSpineAlpha:          formatAlpha(t.SpineAlpha),
		TokenLinkBorderAlpha:     formatAlpha(t.LinkBorderAlpha),
		TokenAccentBorderAlpha:   formatAlpha(t.AccentBorderAlpha),
		TokenQuoteAlpha:          formatAlpha(t.QuoteAlpha),
		TokenShadow:              t.Shadow,
		TokenTooltipShadow:       t.TooltipShadow,
		TokenSpineRestShadow:     t.SpineRestShadow,
	}
}

// Lookup returns a single token by name.
func (t ThemeTokens) Lookup(name TokenName) (string, bool) {
	value, ok := t.Map()[name]
	return value, ok
}

// HasShadow reports whether cards are drawn with a drop shadow.
func (t ThemeTokens) HasShadow() bool {
	return t.Shadow != "" && t.Shadow != ShadowNone
}

// ShadowNone is the shadow value for flat surfaces.
const ShadowNone = "none"

func formatAlpha(alpha float64) string {
	return strconv.FormatFloat(alpha, 'f', 3, 64)
}
