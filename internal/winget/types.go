// ABOUTME: Core data types for winget console output interpretation
// ABOUTME: Package rows, detail records, sources, source filter, and operations

package winget

import (
	"fmt"
	"strings"
)

// Package is one row of a winget table listing. Rebuilt wholesale on every
// successful list fetch; never mutated in place.
type Package struct {
	ID        string
	Name      string
	Version   string
	Source    string
	Available string // only present in upgrade listings
	// Truncated is set when the ID ends in an ellipsis marker, meaning a
	// follow-up detail lookup for this row is unreliable.
	Truncated bool
}

// PackageDetail is the record behind `winget show` for a single package.
// May start life as a provisional record synthesized from a Package row.
type PackageDetail struct {
	ID          string
	Name        string
	Version     string
	Publisher   string
	Description string
	Homepage    string
	License     string
	Source      string
	// Available carries the upgrade listing's available version, if any.
	Available string
}

// Source is one configured winget source from `winget source list`.
type Source struct {
	Name string
	URL  string
	Type string
}

// SourceFilter narrows listings to one winget source.
type SourceFilter int

const (
	SourceAll SourceFilter = iota
	SourceWinget
	SourceMsStore
)

// ParseSourceFilter maps a flag or config value to a SourceFilter.
func ParseSourceFilter(s string) (SourceFilter, error) {
	switch strings.ToLower(s) {
	case "", "all":
		return SourceAll, nil
	case "winget":
		return SourceWinget, nil
	case "msstore":
		return SourceMsStore, nil
	}
	return SourceAll, fmt.Errorf("unknown source %q (want all, winget, or msstore)", s)
}

// Cycle returns the next filter in the All -> winget -> msstore rotation.
func (f SourceFilter) Cycle() SourceFilter {
	switch f {
	case SourceAll:
		return SourceWinget
	case SourceWinget:
		return SourceMsStore
	default:
		return SourceAll
	}
}

// Matches reports whether a package's source label passes this filter.
func (f SourceFilter) Matches(source string) bool {
	switch f {
	case SourceWinget:
		return strings.EqualFold(source, "winget")
	case SourceMsStore:
		return strings.EqualFold(source, "msstore")
	default:
		return true
	}
}

// Arg returns the value for winget's --source flag, or "" for no filter.
func (f SourceFilter) Arg() string {
	switch f {
	case SourceWinget:
		return "winget"
	case SourceMsStore:
		return "msstore"
	default:
		return ""
	}
}

// String returns the filter label shown in the filter bar.
func (f SourceFilter) String() string {
	switch f {
	case SourceWinget:
		return "winget"
	case SourceMsStore:
		return "msstore"
	default:
		return "All"
	}
}

// OpKind identifies a mutating operation against the external tool.
type OpKind int

const (
	OpInstall OpKind = iota
	OpUninstall
	OpUpgrade
	OpBatchUpgrade
)

// Operation describes one requested mutating operation.
type Operation struct {
	Kind    OpKind
	ID      string
	Version string   // optional, install only
	IDs     []string // batch upgrade only
}

// TargetIDs returns every package ID the operation touches. Used to drop
// detail cache entries after the operation completes, success or not.
func (o Operation) TargetIDs() []string {
	if o.Kind == OpBatchUpgrade {
		return o.IDs
	}
	return []string{o.ID}
}

// String renders a progress description like "Installing Google.Chrome".
func (o Operation) String() string {
	switch o.Kind {
	case OpInstall:
		if o.Version != "" {
			return fmt.Sprintf("Installing %s v%s", o.ID, o.Version)
		}
		return "Installing " + o.ID
	case OpUninstall:
		return "Uninstalling " + o.ID
	case OpUpgrade:
		return "Upgrading " + o.ID
	case OpBatchUpgrade:
		return fmt.Sprintf("Upgrading %d packages", len(o.IDs))
	default:
		return "Unknown operation"
	}
}

// OpResult is the single message a completed operation reports back.
type OpResult struct {
	Op      Operation
	Success bool
	Message string
}
