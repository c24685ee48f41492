// ABOUTME: Key dispatch for the interactive TUI, routed through keybindings
// ABOUTME: Modal order: help overlay, confirm dialog, text input, normal mode

package interactive

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shanselman/winget-tui/internal/config"
	"github.com/shanselman/winget-tui/internal/winget"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Ctrl+C always quits, regardless of mode.
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.confirm != nil {
		return m.handleConfirmKey(key)
	}

	if m.input != inputNormal {
		return m.handleTextKey(msg)
	}

	return m.handleNormalKey(key)
}

func (m Model) handleConfirmKey(key string) (tea.Model, tea.Cmd) {
	if m.keys.Matches(key, config.ActionConfirm) {
		op := m.confirm.op
		m.confirm = nil
		return m, (&m).execute(op)
	}
	if m.keys.Matches(key, config.ActionCancel) {
		m.confirm = nil
		m.setStatus("Cancelled")
	}
	return m, nil
}

// handleTextKey edits the active query string. enter leaves input mode and
// commits; esc leaves without a commit. The local filter narrows live on
// every keystroke; search only fetches on enter.
func (m Model) handleTextKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	query := &m.searchQuery
	if m.input == inputFilter {
		query = &m.filterQuery
	}

	switch msg.Type {
	case tea.KeyEnter:
		live := m.input == inputFilter
		m.input = inputNormal
		if live {
			m.applyFilter()
			return m, nil
		}
		return m, (&m).refresh()
	case tea.KeyEscape:
		m.input = inputNormal
		return m, nil
	case tea.KeyBackspace:
		if *query != "" {
			runes := []rune(*query)
			*query = string(runes[:len(runes)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		if msg.Type == tea.KeySpace {
			*query += " "
		} else {
			*query += string(msg.Runes)
		}
	default:
		return m, nil
	}

	if m.input == inputFilter {
		m.applyFilter()
	}
	return m, nil
}

func (m Model) handleNormalKey(key string) (tea.Model, tea.Cmd) {
	keys := m.keys

	switch {
	case keys.Matches(key, config.ActionQuit):
		return m, tea.Quit

	case keys.Matches(key, config.ActionHelp):
		m.showHelp = true
		return m, nil

	case keys.Matches(key, config.ActionRefresh):
		return m, (&m).refresh()

	case keys.Matches(key, config.ActionSearch):
		m.tab = TabSearch
		m.input = inputSearch
		m.filterQuery = ""
		return m, nil

	case keys.Matches(key, config.ActionNextTab):
		return m.switchTab(m.tab.Cycle())

	case keys.Matches(key, config.ActionPrevTab):
		return m.switchTab(m.tab.CycleBack())

	case keys.Matches(key, config.ActionCycleSource):
		m.sourceFilter = m.sourceFilter.Cycle()
		return m, (&m).refresh()

	case keys.Matches(key, config.ActionCursorUp):
		return m, (&m).moveSelection(-1)

	case keys.Matches(key, config.ActionCursorDown):
		return m, (&m).moveSelection(1)

	case keys.Matches(key, config.ActionPageUp):
		return m, (&m).moveSelection(-10)

	case keys.Matches(key, config.ActionPageDown):
		return m, (&m).moveSelection(10)

	case keys.Matches(key, config.ActionFilter):
		m.input = inputFilter
		return m, nil

	case keys.Matches(key, config.ActionInstall):
		return m.confirmOp(winget.OpInstall)

	case keys.Matches(key, config.ActionUninstall):
		return m.confirmOp(winget.OpUninstall)

	case keys.Matches(key, config.ActionUpgrade):
		return m.confirmOp(winget.OpUpgrade)

	case keys.Matches(key, config.ActionToggleSelect):
		m.toggleMark()
		return m, nil

	case keys.Matches(key, config.ActionUpgradeSelected):
		return m.confirmBatchUpgrade()
	}

	return m, nil
}

func (m Model) switchTab(tab Tab) (tea.Model, tea.Cmd) {
	m.tab = tab
	m.filterQuery = ""
	m.selected = 0
	return m, (&m).refresh()
}

func (m Model) confirmOp(kind winget.OpKind) (tea.Model, tea.Cmd) {
	p := m.selectedPackage()
	if p == nil {
		return m, nil
	}
	op := winget.Operation{Kind: kind, ID: p.ID}
	m.confirm = &confirmDialog{
		message: op.String() + " — proceed?",
		op:      op,
	}
	return m, nil
}

// toggleMark flips batch-selection for the cursor row. Only the Upgrades tab
// supports batch operations.
func (m *Model) toggleMark() {
	if m.tab != TabUpgrades || m.selectedPackage() == nil {
		return
	}
	if _, ok := m.marked[m.selected]; ok {
		delete(m.marked, m.selected)
	} else {
		m.marked[m.selected] = struct{}{}
	}
}

func (m Model) confirmBatchUpgrade() (tea.Model, tea.Cmd) {
	if len(m.marked) == 0 {
		return m, nil
	}
	indices := make([]int, 0, len(m.marked))
	for i := range m.marked {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	ids := make([]string, 0, len(indices))
	for _, i := range indices {
		if i < len(m.filtered) {
			ids = append(ids, m.filtered[i].ID)
		}
	}
	if len(ids) == 0 {
		return m, nil
	}

	op := winget.Operation{Kind: winget.OpBatchUpgrade, IDs: ids}
	m.confirm = &confirmDialog{
		message: op.String() + " — proceed?",
		op:      op,
	}
	return m, nil
}
