package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input     string
		wantHex   string
		wantAlpha float64
		wantErr   bool
	}{
		{"#34D399", "#34d399", 1, false},
		{"#fff", "#ffffff", 1, false},
		{"#fbbf2490", "#fbbf24", 0x90 / 255.0, false},
		{"fbbf24", "", 0, true},
		{"#zzzzzz", "", 0, true},
		{"#34d399zz", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHex, got.Hex)
			assert.InDelta(t, tt.wantAlpha, got.Alpha, 1e-9)
		})
	}
}

func TestColorOver(t *testing.T) {
	black := Hex("#000000")
	white := Hex("#ffffff")

	assert.Equal(t, lipgloss.Color("#ffffff"), white.Over(black))
	assert.Equal(t, lipgloss.Color("#000000"), white.WithAlpha(0).Over(black))
	assert.Equal(t, lipgloss.Color("#808080"), white.WithAlpha(0.5).Over(black))
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "#34d399", Emerald.String())
	assert.Equal(t, "#34d39990", Emerald.WithAlpha(AlphaByte("90")).String())
	assert.Equal(t, "", Color{}.String())
}

func TestAlphaClamp(t *testing.T) {
	assert.Equal(t, 1.0, Emerald.WithAlpha(3).Alpha)
	assert.Equal(t, 0.0, Emerald.WithAlpha(-1).Alpha)
	assert.Equal(t, 1.0, AlphaByte("zz"))
}
