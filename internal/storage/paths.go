// Package storage provides persistent storage for user preferences and game statistics.
package storage

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog/log"
)

const appName = "checkersplay"

// DataDirEnv overrides the data directory when set.
const DataDirEnv = "CHECKERS_DATA_DIR"

// GetDataDir returns (and creates) the data directory. CHECKERS_DATA_DIR
// wins; otherwise it is checkersplay/ below the platform's user data
// directory (Application Support on macOS, %APPDATA% on Windows,
// $XDG_DATA_HOME or ~/.local/share elsewhere).
func GetDataDir() (string, error) {
	dataDir := os.Getenv(DataDirEnv)
	if dataDir == "" {
		base, err := userDataDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(base, appName)
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// userDataDir returns the per-user base directory for application data.
func userDataDir() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	case "windows":
		// os.UserConfigDir resolves %APPDATA%.
		return os.UserConfigDir()
	}

	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return xdg, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share"), nil
}

// GetDatabaseDir returns the directory for storing the BadgerDB database.
func GetDatabaseDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return DatabaseDirIn(dataDir)
}

// DatabaseDirIn returns (and creates) the database directory below dataDir.
func DatabaseDirIn(dataDir string) (string, error) {
	dbDir := filepath.Join(dataDir, "db")
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return "", err
	}

	log.Debug().Str("dir", dbDir).Msg("database directory")

	return dbDir, nil
}
