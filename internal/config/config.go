package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Path is the preferences file location, relative to the process working
// directory
const Path = "config/goroom.yaml"

// Prefs holds viewer and placement preferences persisted across runs.
// Room layouts are separate and saved next to the scan they belong to.
type Prefs struct {
	WindowWidth  int32 `yaml:"window_width"`
	WindowHeight int32 `yaml:"window_height"`
	TargetFPS    int32 `yaml:"target_fps"`
	ShowGrid     bool  `yaml:"show_grid"`
	ShowHelp     bool  `yaml:"show_help"`

	// Surface sampler tuning
	SampleCount     int     `yaml:"sample_count"`
	AveragingRadius float64 `yaml:"averaging_radius"`

	// Interaction
	DragThresholdPx float64 `yaml:"drag_threshold_px"`
	HistoryDepth    int     `yaml:"history_depth"`
}

// Default returns the default preferences
func Default() Prefs {
	return Prefs{
		WindowWidth:     1400,
		WindowHeight:    900,
		TargetFPS:       60,
		ShowGrid:        true,
		ShowHelp:        true,
		SampleCount:     8,
		AveragingRadius: 6,
		DragThresholdPx: 5,
		HistoryDepth:    50,
	}
}

// Load reads preferences from config/goroom.yaml. A missing or invalid
// file falls back to Default() without creating anything.
func Load() (Prefs, error) {
	data, err := os.ReadFile(Path)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences, creating the config directory if needed
func Save(p Prefs) error {
	dir := filepath.Dir(Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(Path, data, 0644)
}
