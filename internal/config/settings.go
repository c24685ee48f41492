// ABOUTME: YAML settings loading with defaults for missing files and fields
// ABOUTME: Holds startup view, source filter, and additive locale tables

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Locale carries user-supplied translation tables for display languages the
// built-in parser tables do not cover. Purely additive: entries extend the
// parser's alias maps, they never replace built-ins.
type Locale struct {
	// Columns maps a localized header token to a canonical column field
	// (name, id, version, available, source).
	Columns map[string]string `yaml:"columns,omitempty"`
	// DetailKeys maps a localized detail label to a canonical detail key
	// (version, publisher, description, homepage, publisher_url, license,
	// source).
	DetailKeys map[string]string `yaml:"detail_keys,omitempty"`
}

// Settings is the user configuration from ~/.winget-tui/config.yaml.
type Settings struct {
	// DefaultView is the tab shown at startup: installed, upgrades, search.
	DefaultView string `yaml:"default_view,omitempty"`
	// DefaultSource is the startup source filter: all, winget, msstore.
	DefaultSource string `yaml:"default_source,omitempty"`
	// Verbose enables debug logging without the --verbose flag.
	Verbose bool   `yaml:"verbose,omitempty"`
	Locale  Locale `yaml:"locale,omitempty"`
}

// Load reads settings from path. A missing file yields defaults; a malformed
// file is an error so typos do not silently vanish.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	s := defaults()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

func defaults() *Settings {
	return &Settings{
		DefaultView:   "installed",
		DefaultSource: "all",
	}
}
