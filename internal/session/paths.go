// Package session is a thin, optional layer above the engine/parser/
// validate core: it appends every accepted voice command and the move it
// resolved to onto a durable per-game log, so noisy transcription can be
// replayed and audited after the fact. Board, parser, and validate never
// import this package and stay free of filesystem side effects.
package session

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "speechchess"

// DataDir returns the platform-specific data directory for the
// application: ~/Library/Application Support/speechchess on macOS,
// %APPDATA%/speechchess on Windows, $XDG_DATA_HOME/speechchess (falling
// back to ~/.local/share/speechchess) elsewhere.
func DataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dataDir := filepath.Join(baseDir, appName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}

// DBDir returns the directory the command log's badger instance should
// open, creating it if necessary.
func DBDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	dbDir := filepath.Join(dataDir, "sessions")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}

	return dbDir, nil
}
