package styles

// Emerald is the page's single emphasis hue.
var Emerald = Hex("#34d399")

// DarkTheme is the default palette.
var DarkTheme = newTheme(ThemeDark, "dark", ThemeTokens{
	Background:         Hex("#0c0c0b"),
	CardBackground:     RGBA(255, 255, 255, 0.025),
	NavBackground:      RGBA(12, 12, 11, 0.9),
	PillBackground:     RGBA(255, 255, 255, 0.04),
	TerminalBackground: Hex("#0e0e0d"),
	TooltipBackground:  Hex("#1c1917"),

	Border:         RGBA(255, 255, 255, 0.06),
	BorderHover:    RGBA(255, 255, 255, 0.12),
	TerminalBorder: RGBA(255, 255, 255, 0.06),

	Foreground:       Hex("#f5f5f4"),
	ForegroundMuted:  Hex("#a8a29e"),
	ForegroundDim:    Hex("#78716c"),
	ForegroundSubtle: Hex("#57534e"),
	Eyebrow:          Emerald,

	Emphasis: Emerald,

	BadBackground: RGBA(239, 68, 68, 0.03),
	BadBorder:     RGBA(239, 68, 68, 0.1),
	BadForeground: Hex("#ef4444").WithAlpha(AlphaByte("80")),

	SpineText:           RGBA(0, 0, 0, 0.6),
	SelectionForeground: Hex("#0c0c0b"),
	CTAForeground:       Hex("#0c0c0b"),

	TerminalText:   terminalText,
	TerminalMuted:  terminalMuted,
	TerminalBright: terminalBright,
	TerminalTitle:  terminalTitle,

	GlowAlpha:         0.04,
	SpineAlpha:        AlphaByte("90"),
	LinkBorderAlpha:   AlphaByte("40"),
	AccentBorderAlpha: AlphaByte("30"),
	QuoteAlpha:        AlphaByte("40"),

	Shadow:          ShadowNone,
	TooltipShadow:   ShadowNone,
	SpineRestShadow: ShadowNone,
})

// The terminal window is dark in both modes.
var (
	terminalText   = Hex("#a8a29e")
	terminalMuted  = Hex("#78716c")
	terminalBright = Hex("#f5f5f4")
	terminalTitle  = Hex("#57534e")
)
