package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentTagsOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Level: "debug", Output: &buf}))
	t.Cleanup(func() { _ = Close() })

	log := Component("playback")
	log.Debug().Int("line", 3).Msg("revealed")

	out := buf.String()
	assert.Contains(t, out, `"component":"playback"`)
	assert.Contains(t, out, `"line":3`)
	assert.Contains(t, out, `"message":"revealed"`)
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(Config{Level: "warn", Output: &buf}))
	t.Cleanup(func() { _ = Close() })

	log := Logger()
	log.Info().Msg("quiet")
	assert.Empty(t, buf.String())

	log.Warn().Msg("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestInvalidLevel(t *testing.T) {
	err := Init(Config{Level: "shouty"})
	require.Error(t, err)
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	require.NoError(t, Init(Config{File: path}))

	log := Component("test")
	log.Info().Msg("to file")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestDefaultFile(t *testing.T) {
	assert.Equal(t, "docspine-landing.log", filepath.Base(DefaultFile()))
}
