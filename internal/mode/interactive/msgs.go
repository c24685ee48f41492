// ABOUTME: Typed Bubble Tea messages sent by background fetch/operation units
// ABOUTME: List and detail results carry the generation they were issued under

package interactive

import (
	"time"

	"github.com/shanselman/winget-tui/internal/winget"
)

// packagesMsg delivers a completed list fetch. gen is the view generation at
// issuance; stale generations are discarded without side effects.
type packagesMsg struct {
	gen  uint64
	pkgs []winget.Package
}

// detailMsg delivers a completed detail fetch, tagged like packagesMsg.
type detailMsg struct {
	gen    uint64
	detail winget.PackageDetail
}

// opDoneMsg delivers the single outcome of a completed mutating operation.
type opDoneMsg struct {
	result winget.OpResult
}

// statusMsg updates the status bar, e.g. per-step batch progress.
type statusMsg struct {
	text string
}

// errMsg carries a fetch failure; it becomes status text, never a crash.
// Tagged like the success messages: a stale failure must not clobber the
// status or spinner state of a fresher in-flight fetch. detail selects
// which generation counter the tag is compared against.
type errMsg struct {
	gen    uint64
	detail bool
	err    error
}

// tickMsg drives the loading spinner.
type tickMsg time.Time
