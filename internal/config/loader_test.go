package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) failed: %v", err)
	}
	if cfg != DefaultSettings() {
		t.Errorf("Embedded YAML = %+v, expected %+v", cfg, DefaultSettings())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default settings should validate: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cabinet.yaml")
	data := "board: headless\nseed: 77\nheadless:\n  accuracy: 0.5\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board != "headless" {
		t.Errorf("Board = %q, expected headless", cfg.Board)
	}
	if cfg.Seed != 77 {
		t.Errorf("Seed = %d, expected 77", cfg.Seed)
	}
	if cfg.Headless.Accuracy != 0.5 {
		t.Errorf("Accuracy = %.2f, expected 0.5", cfg.Headless.Accuracy)
	}
	// Untouched keys keep their defaults
	if cfg.Headless.ReactionMS != 650 {
		t.Errorf("ReactionMS = %d, expected default 650", cfg.Headless.ReactionMS)
	}
	if cfg.TUI.HoleWidth != 7 {
		t.Errorf("HoleWidth = %d, expected default 7", cfg.TUI.HoleWidth)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Missing custom config should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	os.WriteFile(broken, []byte("board: [unclosed"), 0o600)
	if _, err := Load(broken); err == nil {
		t.Error("Malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("audio:\n  volume: 3\n"), 0o600)
	if _, err := Load(invalid); err == nil {
		t.Error("Out of range volume should fail validation")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		ok     bool
	}{
		{"defaults", func(*Settings) {}, true},
		{"bad log level", func(s *Settings) { s.Log.Level = "loud" }, false},
		{"negative flash", func(s *Settings) { s.TUI.KeyFlashMS = -1 }, false},
		{"narrow holes", func(s *Settings) { s.TUI.HoleWidth = 2 }, false},
		{"accuracy above one", func(s *Settings) { s.Headless.Accuracy = 1.5 }, false},
		{"zero games", func(s *Settings) { s.Headless.Games = 0 }, false},
		{"perfect bot", func(s *Settings) { s.Headless.Accuracy = 1; s.Headless.ReactionMS = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSettings()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestLogLevel(t *testing.T) {
	cfg := DefaultSettings()
	cfg.Log.Level = "debug"
	if cfg.LogLevel() != log.DebugLevel {
		t.Errorf("LogLevel() = %v, expected debug", cfg.LogLevel())
	}
	cfg.Log.Level = "nonsense"
	if cfg.LogLevel() != log.InfoLevel {
		t.Errorf("LogLevel() = %v, expected info fallback", cfg.LogLevel())
	}
}

func TestMarshalRoundTripKeepsKeys(t *testing.T) {
	data, err := Marshal(DefaultSettings())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	for _, key := range []string{"board:", "key_flash_ms:", "reaction_ms:", "volume:"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("Marshalled YAML missing %q:\n%s", key, data)
		}
	}
}

func TestExpandHome(t *testing.T) {
	path, err := ExpandHome("/tmp/x.log")
	if err != nil || path != "/tmp/x.log" {
		t.Errorf("ExpandHome(absolute) = %q, %v", path, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	path, err = ExpandHome("~/logs/x.log")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if path != filepath.Join(home, "logs", "x.log") {
		t.Errorf("ExpandHome() = %q", path)
	}
}
