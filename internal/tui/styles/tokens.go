package styles

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownThemeMode is returned when a mode outside {dark, light} is resolved.
var ErrUnknownThemeMode = errors.New("unknown theme mode")

// ThemeMode selects one of the two page palettes.
type ThemeMode int

const (
	ThemeDark ThemeMode = iota
	ThemeLight
)

// DefaultMode is the mode every process starts in.
const DefaultMode = ThemeDark

// EmphasisDimAlpha is the alpha of the dimmed emphasis token. It is shared by
// both modes so the dim variant always reads as the same tint.
const EmphasisDimAlpha = 0.12

func (m ThemeMode) String() string {
	switch m {
	case ThemeDark:
		return "dark"
	case ThemeLight:
		return "light"
	default:
		return "ThemeMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Toggle returns the other mode.
func (m ThemeMode) Toggle() ThemeMode {
	if m == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseThemeMode parses "dark" or "light".
func ParseThemeMode(value string) (ThemeMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dark":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownThemeMode, value)
	}
}

// ThemeTokens defines the semantic style roles for the page.
type ThemeTokens struct {
	Background         Color
	CardBackground     Color
	NavBackground      Color
	PillBackground     Color
	TerminalBackground Color
	TooltipBackground  Color

	Border         Color
	BorderHover    Color
	TerminalBorder Color
	QuoteBorder    Color

	Foreground       Color
	ForegroundMuted  Color
	ForegroundDim    Color
	ForegroundSubtle Color
	Eyebrow          Color

	Emphasis    Color
	EmphasisDim Color

	BadBackground Color
	BadBorder     Color
	BadForeground Color

	SpineText           Color
	Selection           Color
	SelectionForeground Color
	CTAForeground       Color

	TerminalText   Color
	TerminalMuted  Color
	TerminalBright Color
	TerminalTitle  Color

	// Alphas applied to catalog colors at render time.
	GlowAlpha         float64
	SpineAlpha        float64
	LinkBorderAlpha   float64
	AccentBorderAlpha float64
	QuoteAlpha        float64

	Shadow          string
	TooltipShadow   string
	SpineRestShadow string
}

// Theme bundles a palette with its mode.
type Theme struct {
	Mode   ThemeMode
	Name   string
	Tokens ThemeTokens
}

// Resolve returns the complete token set for a mode.
func Resolve(mode ThemeMode) (ThemeTokens, error) {
	switch mode {
	case ThemeDark:
		return DarkTheme.Tokens, nil
	case ThemeLight:
		return LightTheme.Tokens, nil
	default:
		return ThemeTokens{}, fmt.Errorf("%w: %s", ErrUnknownThemeMode, mode)
	}
}

// MustResolve is Resolve for callers that hold a mode they produced
// themselves. An undefined mode is a programming error and panics.
func MustResolve(mode ThemeMode) ThemeTokens {
	tokens, err := Resolve(mode)
	if err != nil {
		panic(err)
	}
	return tokens
}

// ThemeFor returns the named theme for a mode.
func ThemeFor(mode ThemeMode) (Theme, error) {
	switch mode {
	case ThemeDark:
		return DarkTheme, nil
	case ThemeLight:
		return LightTheme, nil
	default:
		return Theme{}, fmt.Errorf("%w: %s", ErrUnknownThemeMode, mode)
	}
}

func newTheme(mode ThemeMode, name string, tokens ThemeTokens) Theme {
	tokens.EmphasisDim = tokens.Emphasis.WithAlpha(EmphasisDimAlpha)
	tokens.QuoteBorder = tokens.Emphasis.WithAlpha(tokens.QuoteAlpha)
	tokens.Selection = tokens.Emphasis
	return Theme{Mode: mode, Name: name, Tokens: tokens}
}

// Modes lists every supported mode.
var Modes = []ThemeMode{ThemeDark, ThemeLight}
