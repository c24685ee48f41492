// ABOUTME: View rendering for the interactive TUI
// ABOUTME: Tab bar, package table, detail panel, status bar, overlays

package interactive

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shanselman/winget-tui/pkg/tui/width"
)

// Column widths for the package table, in display columns.
const (
	colNameWidth      = 34
	colIDWidth        = 32
	colVersionWidth   = 14
	colAvailableWidth = 14
)

// View renders the full screen.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.styles.Help.Render(m.helpText())
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteByte('\n')
	b.WriteString(m.viewQueryBar())
	b.WriteByte('\n')
	b.WriteString(m.viewTable())
	b.WriteByte('\n')
	b.WriteString(m.viewDetail())
	b.WriteByte('\n')
	b.WriteString(m.viewStatus())

	if m.confirm != nil {
		dialog := m.styles.Dialog.Render(m.confirm.message + "  [y]es / [n]o")
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
	}
	return b.String()
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, 3)
	for _, t := range []Tab{TabSearch, TabInstalled, TabUpgrades} {
		label := " " + t.String() + " "
		if t == m.tab {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(label))
		}
	}
	source := m.styles.FilterBar.Render("source: " + m.sourceFilter.String())
	return strings.Join(tabs, " ") + "   " + source
}

func (m Model) viewQueryBar() string {
	switch {
	case m.tab == TabSearch:
		cursor := ""
		if m.input == inputSearch {
			cursor = "▌"
		}
		return m.styles.FilterBar.Render("search: " + m.searchQuery + cursor)
	case m.input == inputFilter || m.filterQuery != "":
		cursor := ""
		if m.input == inputFilter {
			cursor = "▌"
		}
		return m.styles.FilterBar.Render("filter: " + m.filterQuery + cursor)
	default:
		return ""
	}
}

// viewTable renders the package list with a scrolling viewport that keeps
// the cursor visible.
func (m Model) viewTable() string {
	showAvailable := m.tab == TabUpgrades

	header := width.Pad("Name", colNameWidth) + width.Pad("Id", colIDWidth) +
		width.Pad("Version", colVersionWidth)
	if showAvailable {
		header += width.Pad("Available", colAvailableWidth)
	}
	header += "Source"

	rows := []string{m.styles.ListHeader.Render("  " + header)}

	visible := m.tableHeight()
	offset := m.tableOffset()

	for i := offset; i < len(m.filtered) && i < offset+visible; i++ {
		p := m.filtered[i]

		marker := "  "
		if _, ok := m.marked[i]; ok {
			marker = m.styles.ListMarked.Render("✔ ")
		}

		line := width.Pad(p.Name, colNameWidth) + width.Pad(p.ID, colIDWidth) +
			width.Pad(p.Version, colVersionWidth)
		if showAvailable {
			line += width.Pad(p.Available, colAvailableWidth)
		}
		line += p.Source

		style := m.styles.ListRow
		if i == m.selected {
			style = m.styles.ListSelected
		} else if p.Truncated {
			style = m.styles.Truncated
		}
		rows = append(rows, marker+style.Render(line))
	}

	if len(m.filtered) == 0 && !m.loading {
		rows = append(rows, m.styles.Status.Render("  no packages"))
	}
	return strings.Join(rows, "\n")
}

func (m Model) tableHeight() int {
	// Chrome: tabs, query bar, table header, detail panel, status bar.
	h := m.height - 4 - m.detailHeight()
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) detailHeight() int { return 8 }

// tableOffset is the index of the first visible row; the viewport slides
// just enough to keep the cursor on screen.
func (m Model) tableOffset() int {
	visible := m.tableHeight()
	if m.selected >= visible {
		return m.selected - visible + 1
	}
	return 0
}

func (m Model) viewDetail() string {
	if m.detail == nil {
		return strings.Repeat("\n", m.detailHeight()-1)
	}
	d := m.detail
	s := m.styles

	pair := func(k, v string) string {
		if v == "" {
			return ""
		}
		return s.DetailKey.Render(k+": ") + s.DetailValue.Render(v)
	}

	title := d.Name
	if m.detailLoading {
		title += "  (loading…)"
	}
	lines := []string{
		s.ListHeader.Render(title),
		pair("Id", d.ID),
		pair("Version", versionLine(d.Version, d.Available)),
		pair("Publisher", d.Publisher),
		pair("License", d.License),
		pair("Homepage", d.Homepage),
		pair("Source", d.Source),
		pair("Description", width.Truncate(d.Description, max(m.width-14, 10))),
	}

	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	for len(out) < m.detailHeight() {
		out = append(out, "")
	}
	return strings.Join(out[:m.detailHeight()], "\n")
}

func versionLine(version, available string) string {
	if available != "" && available != version {
		return fmt.Sprintf("%s → %s", version, available)
	}
	return version
}

func (m Model) viewStatus() string {
	text := m.status
	if m.loading || m.detailLoading {
		text = string(m.spinner()) + " " + text
	}
	if m.statusIsError {
		return m.styles.StatusError.Render(text)
	}
	return m.styles.Status.Render(text)
}
