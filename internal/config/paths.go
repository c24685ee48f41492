// ABOUTME: Standard filesystem paths for winget-tui configuration
// ABOUTME: Resolves ~/.winget-tui/ for settings and keybindings files

package config

import (
	"os"
	"path/filepath"
)

const dirName = ".winget-tui"

// Dir returns the user config directory (~/.winget-tui/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", dirName)
	}
	return filepath.Join(home, dirName)
}

// SettingsFile returns the path to the YAML settings file.
func SettingsFile() string {
	return filepath.Join(Dir(), "config.yaml")
}

// KeybindingsFile returns the path to the JSON keybindings file.
func KeybindingsFile() string {
	return filepath.Join(Dir(), "keybindings.json")
}

// LogFile returns the path verbose interactive sessions log to.
func LogFile() string {
	return filepath.Join(Dir(), "debug.log")
}
