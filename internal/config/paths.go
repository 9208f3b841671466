package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const appDirName = "vaultdiff"

// DefaultConfigPath returns the user-level configuration file path
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appDirName, "config.yaml")
}

// DataDir returns the directory holding persistent application state
func DataDir() string {
	return filepath.Join(xdg.DataHome, appDirName)
}

// StatePath returns the path of the state database
func StatePath() string {
	return filepath.Join(DataDir(), "state.db")
}

// DefaultLogPath returns the log file path used when logging.file is empty
func DefaultLogPath() string {
	return filepath.Join(DataDir(), "vaultdiff.log")
}
