package base

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/lmittmann/tint"
)

// defaultLogFile returns the platform-specific default log file path.
func defaultLogFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("LOCALAPPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Local")
		}
		return filepath.Join(appData, "puzzlein", "logs", "puzzlein.log"), nil

	case "darwin":
		return filepath.Join(home, "Library", "Logs", "puzzlein", "puzzlein.log"), nil

	default: // Unix-like: XDG_STATE_HOME, then XDG_CACHE_HOME, then ~/.local/state
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = os.Getenv("XDG_CACHE_HOME")
			if stateHome == "" {
				stateHome = filepath.Join(home, ".local", "state")
			}
		}
		return filepath.Join(stateHome, "puzzlein", "logs", "puzzlein.log"), nil
	}
}

// InitLogger opens the log file and returns a logger writing to it, along
// with a closure that closes the file. An empty path selects the platform
// default location; an empty level means info.
func InitLogger(path string, level string) (*slog.Logger, func(), error) {
	logPath, err := LogFilePath(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get log file path: %w", err)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	if level == "" {
		level = "info"
	}
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		logFile.Close()
		return nil, nil, fmt.Errorf("invalid log level: %s", level)
	}

	handler := tint.NewHandler(logFile, &tint.Options{
		Level: lv,
	})
	logger := slog.New(handler)
	logger.Debug("logger initialized", "level", level, "path", logPath)

	return logger, func() { logFile.Close() }, nil
}

// LogFilePath returns the effective log file path, creating the parent
// directory of the default location when needed.
func LogFilePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}

	logPath, err := defaultLogFile()
	if err != nil {
		return "", fmt.Errorf("failed to determine log file path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}
	return logPath, nil
}
