// Package logger holds the process-wide structured logger. Output is
// discarded unless Init enables it, so the terminal UI is never disturbed.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger. It discards everything until Init enables logging.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

const (
	logPrefix     = "pdfexplorer-"
	logSuffix     = ".log"
	dateLayout    = "2006-01-02"
	retentionDays = 30
)

// Options configures Init.
type Options struct {
	Enabled bool       // when false all output is discarded
	LogDir  string     // default ~/.pdfexplorer/logs
	Level   slog.Level // default LevelInfo
}

// Init configures logging and returns the log file path, or "" when logging
// is disabled. Call it from main before anything logs.
func Init(opts Options) (string, error) {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return "", nil
	}

	logDir := opts.LogDir
	if logDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		logDir = filepath.Join(home, ".pdfexplorer", "logs")
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return "", err
	}

	cleanOldLogs(logDir, time.Now())

	filename := filepath.Join(logDir, logPrefix+time.Now().Format(dateLayout)+logSuffix)
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return "", err
	}

	level := opts.Level
	if level == 0 {
		level = slog.LevelInfo
	}
	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return filename, nil
}

// cleanOldLogs removes pdfexplorer-YYYY-MM-DD.log files older than the
// retention window. Errors are ignored.
func cleanOldLogs(logDir string, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}
		day, err := time.Parse(dateLayout, strings.TrimSuffix(strings.TrimPrefix(name, logPrefix), logSuffix))
		if err != nil {
			continue
		}
		if day.Before(cutoff) {
			os.Remove(filepath.Join(logDir, name))
		}
	}
}

// Debug logs at debug level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at info level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at warn level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at error level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
