// ABOUTME: Column layout detection for winget's header/separator table format
// ABOUTME: Offsets measured in display columns so multi-byte rows slice correctly

package winget

import (
	"strings"

	"github.com/shanselman/winget-tui/pkg/tui/width"
)

// Column is one table column: header token plus its start offset in
// display columns. The last column's effective end is unbounded.
type Column struct {
	Name  string
	Start int
}

// findSeparator returns the index of the header/data separator line, or -1.
// The separator is the first line past index 0 whose trimmed form is longer
// than 10 characters and consists only of dashes and spaces with at least
// one dash. winget also emits short spinner leftovers like "-" before the
// table, which the length requirement excludes.
func findSeparator(lines []string) int {
	for i, line := range lines {
		if i == 0 {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > 10 && strings.Contains(trimmed, "-") && isDashSpace(trimmed) {
			return i
		}
	}
	return -1
}

func isDashSpace(s string) bool {
	for _, r := range s {
		if r != '-' && r != ' ' {
			return false
		}
	}
	return true
}

// DetectColumns tokenizes a header line into columns. Each maximal non-space
// run is one column name; its start is recorded in display columns, not
// bytes. Header text is typically ASCII (bytes equal columns) but the data
// rows below may contain glyphs like '…' that occupy one column across
// several bytes, so all downstream slicing is width-based.
func DetectColumns(header string) []Column {
	var cols []Column
	w := 0
	byteStart, widthStart := -1, 0

	flush := func(end int) {
		if byteStart >= 0 {
			cols = append(cols, Column{Name: header[byteStart:end], Start: widthStart})
			byteStart = -1
		}
	}

	for i, r := range header {
		if r == ' ' {
			flush(i)
		} else if byteStart < 0 {
			byteStart = i
			widthStart = w
		}
		w += width.Rune(r)
	}
	flush(len(header))
	return cols
}
