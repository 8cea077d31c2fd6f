package styles

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveIsTotal(t *testing.T) {
	for _, mode := range Modes {
		t.Run(mode.String(), func(t *testing.T) {
			tokens, err := Resolve(mode)
			require.NoError(t, err)

			values := tokens.Map()
			require.Len(t, values, len(RequiredTokens))
			for _, name := range RequiredTokens {
				value, ok := values[name]
				assert.True(t, ok, "missing token %s", name)
				assert.NotEmpty(t, value, "empty token %s", name)
			}
		})
	}
}

func TestResolveUnknownModeFails(t *testing.T) {
	_, err := Resolve(ThemeMode(7))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownThemeMode))

	assert.Panics(t, func() { MustResolve(ThemeMode(-1)) })
}

func TestEmphasisDimIsModeIndependent(t *testing.T) {
	dark := MustResolve(ThemeDark)
	light := MustResolve(ThemeLight)

	for _, tokens := range []ThemeTokens{dark, light} {
		assert.Equal(t, tokens.Emphasis.Hex, tokens.EmphasisDim.Hex)
		assert.InDelta(t, EmphasisDimAlpha, tokens.EmphasisDim.Alpha, 1e-9)
		assert.Equal(t, tokens.Emphasis, tokens.Selection)
		assert.Equal(t, tokens.Emphasis.Hex, tokens.QuoteBorder.Hex)
	}
	assert.Equal(t, dark.EmphasisDim, light.EmphasisDim)
}

func TestSpineAlphaAsymmetry(t *testing.T) {
	dark := MustResolve(ThemeDark)
	light := MustResolve(ThemeLight)

	assert.Greater(t, dark.SpineAlpha, light.SpineAlpha)
	assert.InDelta(t, 0x90/255.0, dark.SpineAlpha, 1e-9)
	assert.InDelta(t, 0x70/255.0, light.SpineAlpha, 1e-9)
}

func TestToggle(t *testing.T) {
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeDark, ThemeDark.Toggle().Toggle())
	assert.Equal(t, ThemeDark, DefaultMode)
}

func TestParseThemeMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ThemeMode
		wantErr bool
	}{
		{"dark", ThemeDark, false},
		{" Light ", ThemeLight, false},
		{"DARK", ThemeDark, false},
		{"", 0, true},
		{"sepia", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseThemeMode(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownThemeMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookup(t *testing.T) {
	tokens := MustResolve(ThemeLight)

	value, ok := tokens.Lookup(TokenBackground)
	require.True(t, ok)
	assert.Equal(t, "#fafaf9", value)

	_, ok = tokens.Lookup(TokenName("nope"))
	assert.False(t, ok)
}

func TestHasShadow(t *testing.T) {
	assert.False(t, MustResolve(ThemeDark).HasShadow())
	assert.True(t, MustResolve(ThemeLight).HasShadow())
}

func TestStylesFor(t *testing.T) {
	styleSet, err := StylesFor(ThemeLight)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, styleSet.Theme.Mode)

	_, err = StylesFor(ThemeMode(9))
	assert.ErrorIs(t, err, ErrUnknownThemeMode)
}
