// ABOUTME: Keybindings loader for the winget-tui keybinding format
// ABOUTME: JSON map of action name to key list, user file overrides defaults

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// KeyAction represents an action that can be bound to keys.
type KeyAction string

const (
	ActionQuit            KeyAction = "quit"
	ActionHelp            KeyAction = "help"
	ActionRefresh         KeyAction = "refresh"
	ActionSearch          KeyAction = "search"
	ActionNextTab         KeyAction = "nextTab"
	ActionPrevTab         KeyAction = "prevTab"
	ActionCycleSource     KeyAction = "cycleSource"
	ActionCursorUp        KeyAction = "cursorUp"
	ActionCursorDown      KeyAction = "cursorDown"
	ActionPageUp          KeyAction = "pageUp"
	ActionPageDown        KeyAction = "pageDown"
	ActionInstall         KeyAction = "install"
	ActionUninstall       KeyAction = "uninstall"
	ActionUpgrade         KeyAction = "upgrade"
	ActionToggleSelect    KeyAction = "toggleSelect"
	ActionUpgradeSelected KeyAction = "upgradeSelected"
	ActionFilter          KeyAction = "filter"
	ActionConfirm         KeyAction = "confirm"
	ActionCancel          KeyAction = "cancel"
)

// Keybindings maps actions to the key sequences that trigger them.
type Keybindings struct {
	Bindings map[KeyAction][]string
}

// NewKeybindings creates Keybindings with the default bindings.
func NewKeybindings() *Keybindings {
	kb := &Keybindings{Bindings: make(map[KeyAction][]string)}
	kb.setDefaultBindings()
	return kb
}

func (kb *Keybindings) setDefaultBindings() {
	kb.Bindings[ActionQuit] = []string{"q", "ctrl+c"}
	kb.Bindings[ActionHelp] = []string{"?"}
	kb.Bindings[ActionRefresh] = []string{"r"}
	kb.Bindings[ActionSearch] = []string{"s"}
	kb.Bindings[ActionNextTab] = []string{"tab"}
	kb.Bindings[ActionPrevTab] = []string{"shift+tab"}
	kb.Bindings[ActionCycleSource] = []string{"f"}
	kb.Bindings[ActionCursorUp] = []string{"up", "k"}
	kb.Bindings[ActionCursorDown] = []string{"down", "j"}
	kb.Bindings[ActionPageUp] = []string{"pgup"}
	kb.Bindings[ActionPageDown] = []string{"pgdown"}
	kb.Bindings[ActionInstall] = []string{"i"}
	kb.Bindings[ActionUninstall] = []string{"d"}
	kb.Bindings[ActionUpgrade] = []string{"u"}
	kb.Bindings[ActionToggleSelect] = []string{" "}
	kb.Bindings[ActionUpgradeSelected] = []string{"U"}
	kb.Bindings[ActionFilter] = []string{"/"}
	kb.Bindings[ActionConfirm] = []string{"y", "enter"}
	kb.Bindings[ActionCancel] = []string{"n", "esc"}
}

// LoadKeybindings loads keybindings from path, merged over defaults.
// A missing file yields the defaults. Unknown action names are ignored.
func LoadKeybindings(path string) (*Keybindings, error) {
	kb := NewKeybindings()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return kb, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading keybindings: %w", err)
	}

	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	for actionName, keys := range raw {
		action := KeyAction(actionName)
		if _, ok := kb.Bindings[action]; ok {
			kb.Bindings[action] = keys
		}
	}
	return kb, nil
}

// Keys returns the keys bound to the given action, for help display.
func (kb *Keybindings) Keys(action KeyAction) []string {
	if kb == nil {
		return nil
	}
	return kb.Bindings[action]
}

// Matches reports whether the pressed key triggers the given action.
func (kb *Keybindings) Matches(key string, action KeyAction) bool {
	if kb == nil {
		return false
	}
	for _, k := range kb.Bindings[action] {
		if k == key {
			return true
		}
	}
	return false
}
