// ABOUTME: Lipgloss style palette for the interactive TUI
// ABOUTME: One Styles struct built once; views pull from it instead of inlining

package interactive

import "github.com/charmbracelet/lipgloss"

// Styles is the palette shared by all views.
type Styles struct {
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style
	FilterBar    lipgloss.Style
	ListHeader   lipgloss.Style
	ListRow      lipgloss.Style
	ListSelected lipgloss.Style
	ListMarked   lipgloss.Style
	Truncated    lipgloss.Style
	DetailKey    lipgloss.Style
	DetailValue  lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
	Dialog       lipgloss.Style
	Help         lipgloss.Style
}

// DefaultStyles returns the built-in palette.
func DefaultStyles() Styles {
	return Styles{
		TabActive:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Underline(true),
		TabInactive:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		FilterBar:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		ListHeader:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		ListRow:      lipgloss.NewStyle(),
		ListSelected: lipgloss.NewStyle().Reverse(true),
		ListMarked:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Truncated:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		DetailKey:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		DetailValue:  lipgloss.NewStyle(),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatusError:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("212")).
			Padding(1, 2),
		Help: lipgloss.NewStyle().Padding(1, 2),
	}
}
