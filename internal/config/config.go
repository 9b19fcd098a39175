// Package config provides YAML-based cabinet configuration loading.
// Only peripherals and presentation are configurable; the game rules are fixed
// constants in package mole.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Settings contains all cabinet configuration.
type Settings struct {
	Board    string         `yaml:"board"` // board to run when none is named on the command line
	Seed     int64          `yaml:"seed"`  // 0 = random based on time
	Log      LogSettings    `yaml:"log"`
	Audio    AudioSettings  `yaml:"audio"`
	TUI      TUISettings    `yaml:"tui"`
	Headless HeadlessConfig `yaml:"headless"`
}

// LogSettings configures charmbracelet/log output.
type LogSettings struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty = stderr; the tui board always needs a file
}

// AudioSettings configures the buzzer.
type AudioSettings struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// TUISettings configures the terminal cabinet.
type TUISettings struct {
	KeyFlashMS int `yaml:"key_flash_ms"` // how long a pressed key stays highlighted
	HoleWidth  int `yaml:"hole_width"`   // characters per hole
}

// HeadlessConfig configures the autoplay cabinet.
type HeadlessConfig struct {
	ReactionMS int     `yaml:"reaction_ms"` // delay before the bot presses a lit hole
	Accuracy   float64 `yaml:"accuracy"`    // probability a press lands on the right hole
	Games      int     `yaml:"games"`       // games per simulate run
}

// LogLevel parses the configured level, falling back to info.
func (s Settings) LogLevel() log.Level {
	level, err := log.ParseLevel(s.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// KeyFlash returns the key highlight duration.
func (s Settings) KeyFlash() time.Duration {
	return time.Duration(s.TUI.KeyFlashMS) * time.Millisecond
}

// Validate checks value ranges.
func (s Settings) Validate() error {
	if _, err := log.ParseLevel(s.Log.Level); s.Log.Level != "" && err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
		return fmt.Errorf("config: audio.volume %.2f outside [0, 1]", s.Audio.Volume)
	}
	if s.TUI.KeyFlashMS < 0 {
		return fmt.Errorf("config: tui.key_flash_ms must not be negative")
	}
	if s.TUI.HoleWidth < 3 {
		return fmt.Errorf("config: tui.hole_width %d is too small, need at least 3", s.TUI.HoleWidth)
	}
	if s.Headless.ReactionMS < 0 {
		return fmt.Errorf("config: headless.reaction_ms must not be negative")
	}
	if s.Headless.Accuracy < 0 || s.Headless.Accuracy > 1 {
		return fmt.Errorf("config: headless.accuracy %.2f outside [0, 1]", s.Headless.Accuracy)
	}
	if s.Headless.Games < 1 {
		return fmt.Errorf("config: headless.games must be at least 1")
	}
	return nil
}
