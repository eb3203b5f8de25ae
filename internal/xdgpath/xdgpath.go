package xdgpath

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDir = "desktop-nfty"

func getConfigHome() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return configHome, nil
	}
	// Falls back to %AppData% on Windows and ~/Library/Application Support on macOS.
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return dir, nil
}

// ConfigPath returns the path for a config file. Nothing is created.
func ConfigPath(elem ...string) (string, error) {
	base, err := getConfigHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{base, appDir}, elem...)...), nil
}
