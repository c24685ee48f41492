// ABOUTME: Mouse dispatch for the interactive TUI
// ABOUTME: Wheel scroll, row click-to-select, tab-bar clicks, right-click dismiss

package interactive

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shanselman/winget-tui/pkg/tui/width"
)

// Screen rows above the first package row: tab bar, query bar, table header.
const tableTop = 3

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Overlays swallow mouse input the same way they swallow keys.
	if m.showHelp {
		if msg.Action == tea.MouseActionPress {
			m.showHelp = false
		}
		return m, nil
	}
	if m.confirm != nil {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonRight {
			m.confirm = nil
			m.setStatus("Cancelled")
		}
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m, (&m).moveSelection(-1)
	case tea.MouseButtonWheelDown:
		return m, (&m).moveSelection(1)
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if msg.Y == 0 {
		if tab, ok := m.tabAt(msg.X); ok && tab != m.tab {
			return m.switchTab(tab)
		}
		return m, nil
	}

	if row, ok := m.rowAt(msg.Y); ok {
		m.selected = row
		return m, (&m).loadDetail(m.filtered[row])
	}
	return m, nil
}

// tabAt maps an x coordinate on the tab bar to the tab rendered there.
// Labels are rendered as " Name " joined by single spaces, so the hit
// ranges follow from the label display widths.
func (m Model) tabAt(x int) (Tab, bool) {
	pos := 0
	for _, t := range []Tab{TabSearch, TabInstalled, TabUpgrades} {
		w := width.String(" " + t.String() + " ")
		if x >= pos && x < pos+w {
			return t, true
		}
		pos += w + 1
	}
	return 0, false
}

// rowAt maps a y coordinate to an index into the filtered list, accounting
// for the viewport offset. Clicks on chrome or past the end miss.
func (m Model) rowAt(y int) (int, bool) {
	if y < tableTop || y >= tableTop+m.tableHeight() {
		return 0, false
	}
	row := m.tableOffset() + y - tableTop
	if row >= len(m.filtered) {
		return 0, false
	}
	return row, true
}
