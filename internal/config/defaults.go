package config

import (
	_ "embed"
)

//go:embed defaults/whackamole.yaml
var defaultYAML []byte

// DefaultSettings returns the built-in cabinet configuration.
func DefaultSettings() Settings {
	return Settings{
		Board: "tui",
		Seed:  0,
		Log: LogSettings{
			Level: "info",
		},
		Audio: AudioSettings{
			Enabled: true,
			Volume:  0.3,
		},
		TUI: TUISettings{
			KeyFlashMS: 120,
			HoleWidth:  7,
		},
		Headless: HeadlessConfig{
			ReactionMS: 650,
			Accuracy:   0.9,
			Games:      10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
