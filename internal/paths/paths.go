// Package paths locates the directories wingetman keeps its
// configuration and manifest index in.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appDirName is the subdirectory wingetman claims under the platform
// config and data roots.
const appDirName = "wingetman"

// DefaultDataDirName is the index directory created under the working
// directory when nothing else names one.
const DefaultDataDirName = ".wingetman-index"

// Environment overrides for the resolved directories.
const (
	EnvConfigDir = "WINGETMAN_CONFIG_DIR"
	EnvDataDir   = "WINGETMAN_DATA_DIR"
)

// userDir resolves the per-user directory for the app. Linux follows
// the XDG base directory convention; everywhere else os.UserConfigDir
// already points at the platform root (Application Support, %APPDATA%).
func userDir(xdgVar, homeFallback string) (string, error) {
	if runtime.GOOS != "linux" {
		root, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(root, appDirName), nil
	}
	if root := os.Getenv(xdgVar); root != "" {
		return filepath.Join(root, appDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, homeFallback, appDirName), nil
}

// DefaultConfigDir returns the per-user configuration directory.
func DefaultConfigDir() (string, error) {
	return userDir("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir returns the per-user data directory.
func DefaultDataDir() (string, error) {
	return userDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

// firstAbs returns the first non-empty candidate as an absolute path.
func firstAbs(candidates ...string) (string, bool, error) {
	for _, dir := range candidates {
		if dir == "" {
			continue
		}
		abs, err := filepath.Abs(dir)
		return abs, true, err
	}
	return "", false, nil
}

// ResolveConfigDir picks the configuration directory. An explicit flag
// beats WINGETMAN_CONFIG_DIR, which beats the platform default.
func ResolveConfigDir(flag string) (string, error) {
	if dir, ok, err := firstAbs(flag, os.Getenv(EnvConfigDir)); ok {
		return dir, err
	}
	return DefaultConfigDir()
}

// ResolveDataDir picks the index directory. An explicit flag beats the
// config file value, which beats WINGETMAN_DATA_DIR. With none set the
// index lives under the current working directory.
func ResolveDataDir(flag, configValue string) (string, error) {
	if dir, ok, err := firstAbs(flag, configValue, os.Getenv(EnvDataDir)); ok {
		return dir, err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
