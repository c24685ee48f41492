// ABOUTME: Help overlay listing the active keybindings
// ABOUTME: Built as markdown and rendered with glamour for the terminal

package interactive

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/shanselman/winget-tui/internal/config"
)

var helpEntries = []struct {
	action config.KeyAction
	desc   string
}{
	{config.ActionCursorUp, "Move cursor up"},
	{config.ActionCursorDown, "Move cursor down"},
	{config.ActionPageUp, "Page up"},
	{config.ActionPageDown, "Page down"},
	{config.ActionNextTab, "Next tab"},
	{config.ActionPrevTab, "Previous tab"},
	{config.ActionSearch, "Search packages"},
	{config.ActionFilter, "Filter the current list"},
	{config.ActionCycleSource, "Cycle source filter"},
	{config.ActionRefresh, "Refresh the current list"},
	{config.ActionInstall, "Install selected package"},
	{config.ActionUninstall, "Uninstall selected package"},
	{config.ActionUpgrade, "Upgrade selected package"},
	{config.ActionToggleSelect, "Mark package for batch upgrade"},
	{config.ActionUpgradeSelected, "Upgrade all marked packages"},
	{config.ActionHelp, "Toggle this help"},
	{config.ActionQuit, "Quit"},
}

// helpText renders the keybinding table. Rendering falls back to the raw
// markdown if glamour cannot build a renderer for the terminal.
func (m Model) helpText() string {
	var b strings.Builder
	b.WriteString("# winget-tui\n\n| Key | Action |\n|-----|--------|\n")
	for _, e := range helpEntries {
		keys := m.keys.Keys(e.action)
		label := strings.Join(keys, ", ")
		if label == " " {
			label = "space"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", label, e.desc)
	}
	b.WriteString("\nPress any key to close.\n")

	out, err := glamour.Render(b.String(), "dark")
	if err != nil {
		return b.String()
	}
	return out
}
