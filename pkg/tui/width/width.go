// ABOUTME: Display-width measurement for monospace terminal text
// ABOUTME: Per-rune widths for table field slicing; grapheme-aware string widths

package width

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Rune returns the number of terminal columns r occupies. Multi-byte glyphs
// such as '…' occupy one column but several bytes, which is why table field
// slicing must accumulate rune widths instead of byte offsets.
func Rune(r rune) int {
	return runewidth.RuneWidth(r)
}

// String returns the display width of s. ASCII takes a fast path where
// bytes equal columns; anything else is measured per grapheme cluster so
// combining sequences and wide glyphs count correctly.
func String(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		w += graphemeWidth(cluster)
		s = rest
		state = newState
	}
	return w
}

// isPlainASCII returns true if s contains only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

// graphemeWidth returns the display width of a single grapheme cluster.
func graphemeWidth(cluster string) int {
	if len(cluster) == 0 {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
