// Package paths resolves configuration and data directory locations for the
// breadboard CLI.
// Implements: prd004-breadboard-cli R6 (directory resolution).
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative directory name used when no override is active.
const DefaultDataDirName = ".breadboard-db"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "CIRCUITS_CONFIG_DIR"
	EnvDataDir   = "CIRCUITS_DATA_DIR"
)

// appDirName is the per-user directory name under the platform config root.
const appDirName = "circuits"

// DefaultConfigDir returns the platform-specific default configuration
// directory.
//
// Linux:   $XDG_CONFIG_HOME/circuits (fallback ~/.config/circuits)
// macOS:   ~/Library/Application Support/circuits
// Windows: %APPDATA%/circuits
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDirName), nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName), nil
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > CIRCUITS_CONFIG_DIR env > platform default.
// Relative overrides are made absolute.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the memo data directory following the precedence
// chain: flag > config.yaml value > CIRCUITS_DATA_DIR env > $(CWD)/.breadboard-db.
// The CWD-relative default keeps each workspace's memo database next to the
// circuits it caches.
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
