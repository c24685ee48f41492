// ABOUTME: Row parser turning winget table lines into Package records
// ABOUTME: Locale/positional column mapping, footer exclusion, plausibility filter

package winget

import (
	"strings"

	"github.com/shanselman/winget-tui/internal/log"
	"github.com/shanselman/winget-tui/pkg/tui/width"
)

// columnMap holds resolved column indexes per canonical field; -1 = absent.
type columnMap struct {
	name, id, version, available, source int
}

// resolveColumns maps canonical fields onto column indexes. Header tokens are
// matched case-insensitively against the locale tables; when the identifier
// column cannot be resolved by name and the table is wide enough, positions
// fall back to winget's fixed column order for an unrecognized locale.
func resolveColumns(cols []Column) columnMap {
	m := columnMap{name: -1, id: -1, version: -1, available: -1, source: -1}
	for i, c := range cols {
		f, ok := columnField(c.Name)
		if !ok {
			continue
		}
		switch f {
		case FieldName:
			m.name = i
		case FieldID:
			m.id = i
		case FieldVersion:
			m.version = i
		case FieldAvailable:
			m.available = i
		case FieldSource:
			m.source = i
		}
	}

	if m.id < 0 && len(cols) >= 4 {
		m.name, m.id, m.version = 0, 1, 2
		if len(cols) >= 5 {
			m.available, m.source = 3, 4
		} else {
			m.source = 3
		}
	}
	return m
}

// extractField slices one column's text out of a data line. It walks the
// line's runes accumulating display width and keeps a rune when its occupied
// width interval overlaps the column's [start, end) range. The last column's
// end is unbounded.
func extractField(line string, cols []Column, idx int) string {
	if idx < 0 || idx >= len(cols) {
		return ""
	}
	start := cols[idx].Start
	end := -1 // unbounded
	if idx+1 < len(cols) {
		end = cols[idx+1].Start
	}

	var b strings.Builder
	w := 0
	for _, r := range line {
		rw := width.Rune(r)
		if w+rw > start && (end < 0 || w < end) {
			b.WriteRune(r)
		}
		w += rw
		if end >= 0 && w >= end {
			break
		}
	}
	return strings.TrimSpace(b.String())
}

// isCountFooter reports whether a line is an informational count footer such
// as "2 upgrades available." or "2 Pakete verfügen über verfügbare Updates.":
// after trimming leading whitespace, one or more ASCII digits immediately
// followed by a space. A product name like "7-Zip 25.01 (x64)" or a bare
// version "2026.01.29" does not match because no space follows the digit run.
// This is a per-line predicate, never a stop-at-first-match cutoff, so one
// false positive cannot discard subsequent legitimate rows. It remains
// best-effort: a package name of the form "<digit> <word>" would be skipped.
func isCountFooter(line string) bool {
	s := strings.TrimLeft(line, " \t")
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i > 0 && i < len(s) && s[i] == ' '
}

// hasTruncationMarker reports whether winget shortened the field to fit the
// terminal. winget emits U+2026; ASCII "..." is accepted as well.
func hasTruncationMarker(s string) bool {
	return strings.HasSuffix(s, "…") || strings.HasSuffix(s, "...")
}

// plausibleID reports whether a parsed identifier looks like a real package
// ID. winget IDs are either dotted (Google.Chrome) or backslashed MSI-style
// paths; informational lines misread as rows have neither shape.
func plausibleID(id string) bool {
	return id != "" && strings.ContainsAny(id, ".\\")
}

// ParseTable extracts Package records from normalized winget table output.
// No separator means an empty layout: zero records, not an error. Parsing
// identical input always yields an identical result; nothing is stateful.
func ParseTable(text string) []Package {
	lines := strings.Split(text, "\n")
	sep := findSeparator(lines)
	if sep < 0 {
		return nil
	}

	cols := DetectColumns(lines[sep-1])
	m := resolveColumns(cols)

	var pkgs []Package
	for _, line := range lines[sep+1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if isCountFooter(line) {
			continue
		}

		id := extractField(line, cols, m.id)
		if !plausibleID(id) {
			log.Debug("dropping implausible row %q", strings.TrimSpace(line))
			continue
		}

		pkgs = append(pkgs, Package{
			ID:        id,
			Name:      extractField(line, cols, m.name),
			Version:   extractField(line, cols, m.version),
			Available: extractField(line, cols, m.available),
			Source:    extractField(line, cols, m.source),
			Truncated: hasTruncationMarker(id),
		})
	}
	return pkgs
}

// ParseSources extracts configured sources from `winget source list` output,
// which uses the same header/separator table format with Name/Argument/Type
// columns.
func ParseSources(text string) []Source {
	lines := strings.Split(text, "\n")
	sep := findSeparator(lines)
	if sep < 0 {
		return nil
	}

	cols := DetectColumns(lines[sep-1])
	nameIdx, argIdx, typeIdx := -1, -1, -1
	for i, c := range cols {
		switch strings.ToLower(c.Name) {
		case "name":
			nameIdx = i
		case "argument":
			argIdx = i
		case "type":
			typeIdx = i
		}
	}

	var sources []Source
	for _, line := range lines[sep+1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		name := extractField(line, cols, nameIdx)
		if name == "" {
			continue
		}
		sources = append(sources, Source{
			Name: name,
			URL:  extractField(line, cols, argIdx),
			Type: extractField(line, cols, typeIdx),
		})
	}
	return sources
}
