// ABOUTME: Cell-level helpers for fixed-width table rendering
// ABOUTME: Truncate with ellipsis and right-pad, both in display columns

package width

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Truncate shortens s to at most max display columns, appending an ellipsis
// when anything was cut. Returns s unchanged when it already fits.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if String(s) <= max {
		return s
	}
	return runewidth.Truncate(s, max, "…")
}

// Pad right-pads s with spaces to exactly w display columns, truncating
// first when s is too wide. Used to keep table columns aligned.
func Pad(s string, w int) string {
	s = Truncate(s, w)
	if gap := w - String(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
