// Package config holds the game settings, loadable from a YAML file next
// to the executable. Missing file or fields fall back to defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config contains the tunables the game reads at startup.
type Config struct {
	ScreenWidth  int32 `yaml:"screenWidth"`
	ScreenHeight int32 `yaml:"screenHeight"`
	TargetFPS    int32 `yaml:"targetFPS"`

	// Brush sampling: radius in pixels and the number of perimeter
	// points probed against the hierarchies each frame.
	BrushRadius  float64 `yaml:"brushRadius"`
	BrushSamples int     `yaml:"brushSamples"`

	// LetterScale is the width of one letter on the canvas in pixels.
	LetterScale float64 `yaml:"letterScale"`

	// DegreeLimit for the hierarchy builder; 0 keeps the default.
	DegreeLimit int `yaml:"degreeLimit"`

	// Words played in order after the typed word is completed; the
	// list cycles when it runs out.
	Words []string `yaml:"words"`

	ClickSound string `yaml:"clickSound"`
}

// Default returns the settings the game ships with.
func Default() Config {
	return Config{
		ScreenWidth:  1280,
		ScreenHeight: 720,
		TargetFPS:    60,
		BrushRadius:  10,
		BrushSamples: 100,
		LetterScale:  80,
		Words:        []string{"HOLA", "MUNDO", "ADA", "ALGORITMO", "DOBKIN"},
		ClickSound:   "assets/click.wav",
	}
}

// Load reads settings from path, layered over the defaults. A missing
// file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.ScreenWidth <= 0 || cfg.ScreenHeight <= 0 {
		return cfg, fmt.Errorf("config: invalid screen size %dx%d", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.BrushSamples < 0 {
		cfg.BrushSamples = 0
	}
	if len(cfg.Words) == 0 {
		cfg.Words = Default().Words
	}
	return cfg, nil
}
