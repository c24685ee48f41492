// ABOUTME: Detail parser for `winget show` key/value blocks
// ABOUTME: Locale-tolerant found-header, translated keys, multi-line descriptions

package winget

import "strings"

// ParseDetail extracts a PackageDetail from a normalized show block.
//
// The header line has the locale-variant form "<prefix> <name> [<id>]", e.g.
// "Found Google Chrome [Google.Chrome]" or "Gefunden Chrome [Google.Chrome]".
// It is recognized as any line containing a bracket pair and no colon; the
// first whitespace-delimited token is the localized prefix and is dropped.
//
// Other non-indented lines are "Key: Value" pairs whose lowercased keys are
// resolved through the locale table; unrecognized keys are ignored. The
// description continues across lines indented by two or more spaces.
// "Publisher Url" only fills Homepage when no homepage was seen.
func ParseDetail(text string) PackageDetail {
	var d PackageDetail
	var publisherURL string

	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if isFoundHeader(trimmed) {
			open := strings.LastIndex(trimmed, "[")
			end := strings.LastIndex(trimmed, "]")
			d.ID = trimmed[open+1 : end]
			before := strings.TrimSpace(trimmed[:open])
			// Drop the localized prefix word ("Found", "Gefunden", ...).
			if _, rest, ok := strings.Cut(before, " "); ok {
				d.Name = strings.TrimSpace(rest)
			}
			continue
		}

		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			continue
		}
		label, value, ok := strings.Cut(trimmed, ":")
		if !ok {
			continue
		}
		key, ok := detailKey(label)
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch key {
		case keyVersion:
			d.Version = value
		case keyPublisher:
			d.Publisher = value
		case keyDescription:
			parts := []string{}
			if value != "" {
				parts = append(parts, value)
			}
			for i+1 < len(lines) && strings.HasPrefix(lines[i+1], "  ") {
				i++
				parts = append(parts, strings.TrimSpace(lines[i]))
			}
			d.Description = strings.Join(parts, " ")
		case keyHomepage:
			d.Homepage = value
		case keyPublisherURL:
			publisherURL = value
		case keyLicense:
			d.License = value
		case keySource:
			d.Source = value
		}
	}

	if d.Homepage == "" {
		d.Homepage = publisherURL
	}
	return d
}

// isFoundHeader reports whether a line is the "<prefix> <name> [<id>]"
// header: a bracket pair with contents and no colon anywhere in the line
// (a colon would make it a Key: Value row).
func isFoundHeader(trimmed string) bool {
	if strings.Contains(trimmed, ":") {
		return false
	}
	open := strings.LastIndex(trimmed, "[")
	end := strings.LastIndex(trimmed, "]")
	return open >= 0 && end > open
}
