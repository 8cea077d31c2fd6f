package styles

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a token value: an RGB hex color with an alpha in [0,1].
type Color struct {
	Hex   string
	Alpha float64
}

// Hex returns an opaque color.
func Hex(hex string) Color {
	return Color{Hex: strings.ToLower(hex), Alpha: 1}
}

// RGBA builds a color from byte channels and a fractional alpha.
func RGBA(r, g, b uint8, alpha float64) Color {
	return Color{Hex: fmt.Sprintf("#%02x%02x%02x", r, g, b), Alpha: clampAlpha(alpha)}
}

// AlphaByte converts a two-digit hex alpha suffix ("90", "4d") to a fraction.
// It is meant for palette literals; an unparsable suffix yields 1.
func AlphaByte(suffix string) float64 {
	alpha, err := parseAlpha(suffix)
	if err != nil {
		return 1
	}
	return alpha
}

func parseAlpha(suffix string) (float64, error) {
	v, err := strconv.ParseUint(suffix, 16, 8)
	if err != nil {
		return 0, err
	}
	return float64(v) / 255, nil
}

// ParseColor accepts #rgb, #rrggbb and #rrggbbaa.
func ParseColor(value string) (Color, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	alpha := 1.0
	if len(value) == 9 {
		parsed, err := parseAlpha(value[7:])
		if err != nil {
			return Color{}, fmt.Errorf("invalid color alpha %q: %w", value, err)
		}
		alpha = parsed
		value = value[:7]
	}
	parsed, err := colorful.Hex(value)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", value, err)
	}
	return Color{Hex: parsed.Hex(), Alpha: alpha}, nil
}

// WithAlpha returns the same color at a different alpha.
func (c Color) WithAlpha(alpha float64) Color {
	return Color{Hex: c.Hex, Alpha: clampAlpha(alpha)}
}

// IsZero reports whether the color is unset.
func (c Color) IsZero() bool {
	return c.Hex == ""
}

// Opaque reports whether the color renders without blending.
func (c Color) Opaque() bool {
	return c.Alpha >= 1
}

// Solid drops the alpha and returns the raw color.
func (c Color) Solid() lipgloss.Color {
	return lipgloss.Color(c.Hex)
}

// Over flattens the color onto an opaque background. Terminals have no
// alpha channel, so every translucent token is composited before use.
func (c Color) Over(bg Color) lipgloss.Color {
	if c.Opaque() || c.IsZero() {
		return c.Solid()
	}
	fg, err := colorful.Hex(c.Hex)
	if err != nil {
		return c.Solid()
	}
	base, err := colorful.Hex(bg.Hex)
	if err != nil {
		return c.Solid()
	}
	return lipgloss.Color(base.BlendRgb(fg, c.Alpha).Clamped().Hex())
}

// String renders the color as #rrggbb or #rrggbbaa.
func (c Color) String() string {
	if c.IsZero() {
		return ""
	}
	if c.Opaque() {
		return c.Hex
	}
	return fmt.Sprintf("%s%02x", c.Hex, uint8(math.Round(c.Alpha*255)))
}

func clampAlpha(alpha float64) float64 {
	switch {
	case alpha < 0:
		return 0
	case alpha > 1:
		return 1
	default:
		return alpha
	}
}
