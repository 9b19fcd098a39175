package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/whackamole/internal/config"
)

// newLogger builds the process logger. The tui board owns the terminal, so
// needFile forces logging into a file even when none is configured.
func newLogger(settings config.Settings, needFile bool) (*log.Logger, func(), error) {
	var (
		w       io.Writer = os.Stderr
		closeFn           = func() {}
	)

	path := settings.Log.File
	if path == "" && needFile {
		path = config.UserPath("whackamole.log")
	}
	if path != "" {
		expanded, err := config.ExpandHome(path)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "whackamole",
		Level:           settings.LogLevel(),
	})
	return logger, closeFn, nil
}
