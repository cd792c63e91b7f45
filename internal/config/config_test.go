package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "convexglyph.yaml")
	data := []byte("screenWidth: 1920\nscreenHeight: 1080\nbrushRadius: 20\nwords:\n  - PRUEBA\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int32(1920), cfg.ScreenWidth)
	assert.Equal(t, int32(1080), cfg.ScreenHeight)
	assert.Equal(t, 20.0, cfg.BrushRadius)
	assert.Equal(t, []string{"PRUEBA"}, cfg.Words)
	// Untouched fields keep their defaults.
	assert.Equal(t, Default().TargetFPS, cfg.TargetFPS)
	assert.Equal(t, Default().BrushSamples, cfg.BrushSamples)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("screenWidth: [oops"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidScreenSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.yaml")
	require.NoError(t, os.WriteFile(path, []byte("screenWidth: 0\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEmptyWordListFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.yaml")
	require.NoError(t, os.WriteFile(path, []byte("words: []\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Words, cfg.Words)
}
