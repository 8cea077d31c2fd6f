package styles

// LightTheme trades the dark surfaces for warm paper tones.
var LightTheme = newTheme(ThemeLight, "light", ThemeTokens{
	Background:         Hex("#fafaf9"),
	CardBackground:     Hex("#ffffff"),
	NavBackground:      RGBA(250, 250, 249, 0.92),
	PillBackground:     RGBA(0, 0, 0, 0.04),
	TerminalBackground: Hex("#1c1917"),
	TooltipBackground:  Hex("#ffffff"),

	Border:         Hex("#e7e5e4"),
	BorderHover:    Hex("#d6d3d1"),
	TerminalBorder: Hex("#2a2724"),

	Foreground:       Hex("#1c1917"),
	ForegroundMuted:  Hex("#57534e"),
	ForegroundDim:    Hex("#78716c"),
	ForegroundSubtle: Hex("#a8a29e"),
	Eyebrow:          Hex("#78716c"),

	Emphasis: Emerald,

	BadBackground: RGBA(239, 68, 68, 0.04),
	BadBorder:     RGBA(239, 68, 68, 0.15),
	BadForeground: Hex("#dc2626").WithAlpha(AlphaByte("a0")),

	SpineText:           RGBA(0, 0, 0, 0.55),
	SelectionForeground: Hex("#ffffff"),
	CTAForeground:       Hex("#ffffff"),

	TerminalText:   terminalText,
	TerminalMuted:  terminalMuted,
	TerminalBright: terminalBright,
	TerminalTitle:  terminalTitle,

	GlowAlpha:         0.06,
	SpineAlpha:        AlphaByte("70"),
	LinkBorderAlpha:   AlphaByte("50"),
	AccentBorderAlpha: AlphaByte("50"),
	QuoteAlpha:        AlphaByte("60"),

	Shadow:          "0 1px 3px rgba(0,0,0,0.04), 0 4px 12px rgba(0,0,0,0.02)",
	TooltipShadow:   "0 4px 12px rgba(0,0,0,0.08)",
	SpineRestShadow: "0 1px 2px rgba(0,0,0,0.06)",
})
