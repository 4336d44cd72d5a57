// Package logging sets up the process logger. The TUI owns the terminal,
// so log output goes to a rotating file only.
package logging

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup returns a logger writing JSON lines to path with rotation. An
// unrecognized level falls back to info.
func Setup(level, path string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return zerolog.Nop(), err
		}
	}
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     30, // days
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
