package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nondualworks/docspine-landing/internal/playback"
	"github.com/nondualworks/docspine-landing/internal/tui/styles"
)

func TestBuiltin(t *testing.T) {
	cat, err := Builtin()
	require.NoError(t, err)

	assert.Equal(t, "Docspine", cat.Product)
	assert.Equal(t, "builtin", cat.Source)
	require.Len(t, cat.Spines, 10)
	assert.Equal(t, "payment-api", cat.Spines[0].Name)
	assert.Equal(t, "alert-engine", cat.Spines[9].Name)

	services, domains := cat.ShelfSummary()
	assert.Equal(t, 10, services)
	assert.Equal(t, 4, domains)

	assert.Equal(t, []string{"checkout", "identity", "observability", "platform"}, cat.Domains.Names())
	assert.Equal(t, styles.Emerald, cat.Diataxis["tutorial"])
	assert.Len(t, cat.Layers, 3)
	assert.Nil(t, cat.Layers[1].Link)
	assert.Len(t, cat.Commands, 5)
	assert.Len(t, cat.Creditors, 2)
}

func TestBuiltinScript(t *testing.T) {
	cat := MustBuiltin()
	require.Len(t, cat.Script, 10)

	want := []time.Duration{
		200 * time.Millisecond, 600 * time.Millisecond, 900 * time.Millisecond,
		1200 * time.Millisecond, 1500 * time.Millisecond, 1800 * time.Millisecond,
		2400 * time.Millisecond, 2800 * time.Millisecond, 3400 * time.Millisecond,
		3800 * time.Millisecond,
	}
	for i, line := range cat.Script {
		assert.Equal(t, want[i], line.Delay, "line %d", i)
	}

	assert.Equal(t, playback.DefaultPrefix, cat.Script[0].Prefix)
	assert.Equal(t, " ", cat.Script[1].Prefix)
	assert.Equal(t, "? Service name: payment-api", cat.Script[1].Text())
	assert.True(t, cat.Script[6].GapBefore)
	assert.True(t, cat.Script[8].GapBefore)
	assert.False(t, cat.Script[7].GapBefore)
	assert.Equal(t, playback.RoleEmphasis, cat.Script[4].Segments[0].Role)
}

func TestSpineIndex(t *testing.T) {
	cat := MustBuiltin()

	idx, ok := cat.SpineIndex("ci-runner")
	assert.True(t, ok)
	assert.Equal(t, 5, idx)

	idx, ok = cat.SpineIndex("missing")
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
}

const minimalYAML = `product: Test
domains:
  core: "#38bdf8"
diataxis:
  tutorial: "#34d399"
spines:
  - { name: api, domain: core, height: 40, docs: 3 }
script:
  - delay: 100ms
    text: hello
`

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "landing.yml")
	require.NoError(t, os.WriteFile(path, []byte(minimalYAML), 0o644))

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cat.Source)
	assert.Equal(t, "Test", cat.Product)
	require.Len(t, cat.Script, 1)
	assert.Equal(t, "hello", cat.Script[0].Text())
}

func TestLoadTOML(t *testing.T) {
	data := `product = "Toml"

[domains]
core = "#38bdf8"

[diataxis]
tutorial = "#34d399"

[[spines]]
name = "api"
domain = "core"
height = 40
docs = 2

[[script]]
delay = "1s"
prefix = ""
text = "output"
`
	path := filepath.Join(t.TempDir(), "landing.toml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Toml", cat.Product)
	assert.Equal(t, time.Second, cat.Script[0].Delay)
	assert.False(t, cat.Script[0].HasPrefix())
}

func TestLoadOrBuiltin(t *testing.T) {
	cat, err := LoadOrBuiltin("")
	require.NoError(t, err)
	assert.Equal(t, "builtin", cat.Source)

	_, err = LoadOrBuiltin(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing product", "domains: {core: '#fff'}\ndiataxis: {tutorial: '#fff'}\nspines: [{name: a, domain: core, height: 1}]\nscript: [{delay: 1s, text: x}]\n"},
		{"unknown domain", "product: x\ndomains: {core: '#fff'}\ndiataxis: {tutorial: '#fff'}\nspines: [{name: a, domain: other, height: 1}]\nscript: [{delay: 1s, text: x}]\n"},
		{"duplicate spine", "product: x\ndomains: {core: '#fff'}\ndiataxis: {tutorial: '#fff'}\nspines: [{name: a, domain: core, height: 1}, {name: a, domain: core, height: 2}]\nscript: [{delay: 1s, text: x}]\n"},
		{"zero height", "product: x\ndomains: {core: '#fff'}\ndiataxis: {tutorial: '#fff'}\nspines: [{name: a, domain: core, height: 0}]\nscript: [{delay: 1s, text: x}]\n"},
		{"bad color", "product: x\ndomains: {core: 'red'}\ndiataxis: {tutorial: '#fff'}\nspines: [{name: a, domain: core, height: 1}]\nscript: [{delay: 1s, text: x}]\n"},
		{"bad color alpha", "product: x\ndomains: {core: '#34d399zz'}\ndiataxis: {tutorial: '#fff'}\nspines: [{name: a, domain: core, height: 1}]\nscript: [{delay: 1s, text: x}]\n"},
		{"bad delay", "product: x\ndomains: {core: '#fff'}\ndiataxis: {tutorial: '#fff'}\nspines: [{name: a, domain: core, height: 1}]\nscript: [{delay: soon, text: x}]\n"},
		{"bad role", "product: x\ndomains: {core: '#fff'}\ndiataxis: {tutorial: '#fff'}\nspines: [{name: a, domain: core, height: 1}]\nscript: [{delay: 1s, segments: [{role: loud, text: x}]}]\n"},
		{"empty script", "product: x\ndomains: {core: '#fff'}\ndiataxis: {tutorial: '#fff'}\nspines: [{name: a, domain: core, height: 1}]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), ".yaml")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestParseRejectsMalformedFiles(t *testing.T) {
	tests := []struct {
		ext  string
		data string
	}{
		{".yaml", "product: [unterminated\n"},
		{".yml", "spines: {name: a\n"},
		{".toml", "product = \n"},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.ext)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestParseUnsupportedFormat(t *testing.T) {
	_, err := Parse([]byte(minimalYAML), ".json")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCatalog)
}
