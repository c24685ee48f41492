// ABOUTME: Local fuzzy narrowing of the visible package list
// ABOUTME: Matches against "Name ID" haystacks, best matches first

package interactive

import (
	"github.com/shanselman/winget-tui/internal/winget"
	"github.com/shanselman/winget-tui/pkg/tui/fuzzy"
)

// fuzzyNarrow returns the packages matching pattern, ranked best-first.
// This is client-side narrowing of an already-fetched list, distinct from
// the Search tab's server-side query.
func fuzzyNarrow(pattern string, pkgs []winget.Package) []winget.Package {
	haystack := make([]string, len(pkgs))
	for i, p := range pkgs {
		haystack[i] = p.Name + " " + p.ID
	}

	matches := fuzzy.Find(pattern, haystack)
	out := make([]winget.Package, 0, len(matches))
	for _, match := range matches {
		out = append(out, pkgs[match.Index])
	}
	return out
}
