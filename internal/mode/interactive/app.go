// ABOUTME: Root Bubble Tea model owning all shared UI state for winget-tui
// ABOUTME: Generation counters, detail cache, merge policy, and key dispatch

package interactive

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shanselman/winget-tui/internal/config"
	"github.com/shanselman/winget-tui/internal/winget"
)

// Tab identifies the active view.
type Tab int

const (
	TabSearch Tab = iota
	TabInstalled
	TabUpgrades
)

// Cycle returns the next tab.
func (t Tab) Cycle() Tab {
	switch t {
	case TabSearch:
		return TabInstalled
	case TabInstalled:
		return TabUpgrades
	default:
		return TabSearch
	}
}

// CycleBack returns the previous tab.
func (t Tab) CycleBack() Tab {
	switch t {
	case TabSearch:
		return TabUpgrades
	case TabInstalled:
		return TabSearch
	default:
		return TabInstalled
	}
}

// String returns the tab label.
func (t Tab) String() string {
	switch t {
	case TabSearch:
		return "Search"
	case TabInstalled:
		return "Installed"
	default:
		return "Upgrades"
	}
}

// inputMode selects where keystrokes go.
type inputMode int

const (
	inputNormal inputMode = iota
	inputSearch
	inputFilter
)

// confirmDialog asks before a mutating operation runs.
type confirmDialog struct {
	message string
	op      winget.Operation
}

// ProgramSender is the send half of *tea.Program. Background units that need
// to report interim progress (batch upgrades) hold one; everything else
// returns its single message through the command it runs in.
type ProgramSender interface {
	Send(msg tea.Msg)
}

// shared holds state that must survive Model value copies. Bubble Tea copies
// the model on each Update; pointer fields are shared across copies, and
// Update being single-threaded means no mutex is needed.
type shared struct {
	program ProgramSender
}

func (s *shared) send(msg tea.Msg) {
	if s.program != nil {
		s.program.Send(msg)
	}
}

// Deps wires the Model's collaborators.
type Deps struct {
	Backend winget.Backend
	Keys    *config.Keybindings
	Tab     Tab
	Source  winget.SourceFilter
}

// Model is the root Bubble Tea model. It is the only mutator of package
// lists, the detail cache, generations, and selection; background units
// hold copies of inputs and a way to send exactly one result message.
type Model struct {
	sh      *shared
	backend winget.Backend
	keys    *config.Keybindings
	styles  Styles

	tab          Tab
	input        inputMode
	sourceFilter winget.SourceFilter
	searchQuery  string
	filterQuery  string

	packages []winget.Package
	filtered []winget.Package
	selected int
	marked   map[int]struct{} // indices into filtered, batch upgrade targets

	detail        *winget.PackageDetail
	detailLoading bool
	detailCache   map[string]winget.PackageDetail

	// Bumped synchronously at request issuance; a result carrying an older
	// generation is discarded on arrival. This substitutes for cancellation.
	viewGen   uint64
	detailGen uint64

	status        string
	statusIsError bool
	loading       bool
	confirm       *confirmDialog
	showHelp      bool

	width, height int
	tick          int
}

// NewModel creates a Model wired with the given dependencies.
func NewModel(deps Deps) Model {
	keys := deps.Keys
	if keys == nil {
		keys = config.NewKeybindings()
	}
	return Model{
		sh:           &shared{},
		backend:      deps.Backend,
		keys:         keys,
		styles:       DefaultStyles(),
		tab:          deps.Tab,
		sourceFilter: deps.Source,
		marked:       make(map[int]struct{}),
		detailCache:  make(map[string]winget.PackageDetail),
		status:       "Loading...",
	}
}

// SetProgram wires the running program for interim batch progress sends.
func (m *Model) SetProgram(p ProgramSender) {
	m.sh.program = p
}

// initMsg triggers the first list fetch from inside Update, so the
// generation bump lands on the model the program actually holds.
type initMsg struct{}

// Init starts the spinner and requests the initial list fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(func() tea.Msg { return initMsg{} }, tickCmd())
}

// Update is the single-threaded control loop body: the sole place shared
// state changes, and the sole place stale generations are discarded.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case initMsg:
		return m, (&m).refresh()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		m.tick++
		if m.loading || m.detailLoading {
			return m, tickCmd()
		}
		return m, nil

	case packagesMsg:
		// Discard stale results from a superseded view or search.
		if msg.gen < m.viewGen {
			return m, nil
		}
		m.packages = msg.pkgs
		m.applyFilter()
		m.loading = false
		count := len(m.filtered)
		plural := "s"
		if count == 1 {
			plural = ""
		}
		m.setStatus(fmt.Sprintf("%d package%s found", count, plural))
		if p := m.selectedPackage(); p != nil {
			return m, (&m).loadDetail(*p)
		}
		m.detail = nil
		return m, nil

	case detailMsg:
		// Discard stale detail from a previous selection.
		if msg.gen < m.detailGen {
			return m, nil
		}
		merged := mergeDetail(msg.detail, m.detail)
		if merged.ID != "" {
			m.detailCache[merged.ID] = merged
		}
		m.detail = &merged
		m.detailLoading = false
		return m, nil

	case opDoneMsg:
		// Cache entries for touched packages are stale regardless of the
		// operation's outcome.
		for _, id := range msg.result.Op.TargetIDs() {
			delete(m.detailCache, id)
		}
		if msg.result.Op.Kind == winget.OpBatchUpgrade {
			m.marked = make(map[int]struct{})
		}
		if msg.result.Success {
			m.setStatus(fmt.Sprintf("%s: done", msg.result.Op))
		} else {
			m.setError(fmt.Sprintf("%s failed: %s", msg.result.Op, msg.result.Message))
		}
		m.loading = false
		return m, (&m).refresh()

	case statusMsg:
		m.setStatus(msg.text)
		return m, nil

	case errMsg:
		if msg.detail {
			if msg.gen < m.detailGen {
				return m, nil
			}
			m.detailLoading = false
		} else {
			if msg.gen < m.viewGen {
				return m, nil
			}
			m.loading = false
		}
		m.setError("Error: " + msg.err.Error())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// refresh bumps the view generation and dispatches the fetch for the active
// tab. The bump happens here, synchronously, before any background work.
func (m *Model) refresh() tea.Cmd {
	m.viewGen++
	gen := m.viewGen
	m.loading = true

	backend := m.backend
	tab := m.tab
	query := m.searchQuery
	source := m.sourceFilter

	fetch := func() tea.Msg {
		var pkgs []winget.Package
		var err error
		switch tab {
		case TabSearch:
			if query == "" {
				pkgs = nil
			} else {
				pkgs, err = backend.Search(context.Background(), query, source)
			}
		case TabInstalled:
			pkgs, err = backend.ListInstalled(context.Background(), source)
		case TabUpgrades:
			pkgs, err = backend.ListUpgrades(context.Background(), source)
		}
		if err != nil {
			return errMsg{gen: gen, err: err}
		}
		return packagesMsg{gen: gen, pkgs: pkgs}
	}
	return tea.Batch(fetch, tickCmd())
}

// loadDetail is the detail fast path. The generation bump is unconditional:
// returning from cache must still invalidate any in-flight older fetch, or a
// stale response could later overwrite the fresher cache-derived display.
func (m *Model) loadDetail(pkg winget.Package) tea.Cmd {
	m.detailGen++

	if cached, ok := m.detailCache[pkg.ID]; ok {
		m.detail = &cached
		m.detailLoading = false
		return nil
	}

	// Provisional record from summary fields for instant display.
	provisional := winget.PackageDetail{
		ID:        pkg.ID,
		Name:      pkg.Name,
		Version:   pkg.Version,
		Source:    pkg.Source,
		Available: pkg.Available,
	}
	m.detail = &provisional
	m.detailLoading = true

	gen := m.detailGen
	backend := m.backend
	id := pkg.ID
	fetch := func() tea.Msg {
		d, err := backend.Show(context.Background(), id)
		if err != nil {
			return errMsg{gen: gen, detail: true, err: err}
		}
		return detailMsg{gen: gen, detail: d}
	}
	return tea.Batch(fetch, tickCmd())
}

// mergeDetail applies the merge-on-arrival policy: identifying fields keep
// the fetched value unless it is empty, descriptive fields always take the
// fetched value.
func mergeDetail(fetched winget.PackageDetail, displayed *winget.PackageDetail) winget.PackageDetail {
	if displayed == nil {
		return fetched
	}
	merged := fetched
	if merged.ID == "" {
		merged.ID = displayed.ID
	}
	if merged.Name == "" {
		merged.Name = displayed.Name
	}
	if merged.Version == "" {
		merged.Version = displayed.Version
	}
	if merged.Source == "" {
		merged.Source = displayed.Source
	}
	if merged.Available == "" {
		merged.Available = displayed.Available
	}
	return merged
}

// execute dispatches a mutating operation as one background unit. Batch
// upgrades run their members strictly sequentially: the Windows Installer
// serializes anyway, and concurrent runs just contend on its lock.
func (m *Model) execute(op winget.Operation) tea.Cmd {
	m.loading = true
	m.setStatus(op.String() + "...")

	backend := m.backend
	sh := m.sh

	if op.Kind == winget.OpBatchUpgrade {
		ids := op.IDs
		return func() tea.Msg {
			total := len(ids)
			var failures []string
			for i, id := range ids {
				sh.send(statusMsg{text: fmt.Sprintf("Upgrading %d/%d: %s...", i+1, total, id)})
				if _, err := backend.Upgrade(context.Background(), id); err != nil {
					failures = append(failures, fmt.Sprintf("%s: %v", id, err))
				}
			}
			if len(failures) == 0 {
				return opDoneMsg{result: winget.OpResult{
					Op: op, Success: true,
					Message: fmt.Sprintf("All %d packages upgraded", total),
				}}
			}
			return opDoneMsg{result: winget.OpResult{
				Op: op, Success: false,
				Message: fmt.Sprintf("%d/%d succeeded, %d failed: %s",
					total-len(failures), total, len(failures), strings.Join(failures, "; ")),
			}}
		}
	}

	return func() tea.Msg {
		var text string
		var err error
		switch op.Kind {
		case winget.OpInstall:
			text, err = backend.Install(context.Background(), op.ID, op.Version)
		case winget.OpUninstall:
			text, err = backend.Uninstall(context.Background(), op.ID)
		case winget.OpUpgrade:
			text, err = backend.Upgrade(context.Background(), op.ID)
		}
		if err != nil {
			return opDoneMsg{result: winget.OpResult{Op: op, Success: false, Message: err.Error()}}
		}
		return opDoneMsg{result: winget.OpResult{Op: op, Success: true, Message: text}}
	}
}

// applyFilter recomputes the visible package list. With a concrete source
// filter active winget already filtered server-side (and omits the Source
// column), so every returned row is accepted; only All filters client-side.
// A local fuzzy query narrows further. Multi-select indices are stale after
// any refilter and are cleared.
func (m *Model) applyFilter() {
	var base []winget.Package
	if m.sourceFilter == winget.SourceAll {
		for _, p := range m.packages {
			if m.sourceFilter.Matches(p.Source) {
				base = append(base, p)
			}
		}
	} else {
		base = append(base, m.packages...)
	}

	if m.filterQuery != "" {
		base = fuzzyNarrow(m.filterQuery, base)
	}
	m.filtered = base

	if m.selected >= len(m.filtered) {
		m.selected = max(len(m.filtered)-1, 0)
	}
	m.marked = make(map[int]struct{})
}

// selectedPackage returns the package under the cursor, or nil.
func (m *Model) selectedPackage() *winget.Package {
	if m.selected < 0 || m.selected >= len(m.filtered) {
		return nil
	}
	return &m.filtered[m.selected]
}

// moveSelection moves the cursor by delta, wrapping at both ends.
func (m *Model) moveSelection(delta int) tea.Cmd {
	n := len(m.filtered)
	if n == 0 {
		return nil
	}
	m.selected = ((m.selected+delta)%n + n) % n
	if p := m.selectedPackage(); p != nil {
		return m.loadDetail(*p)
	}
	return nil
}

func (m *Model) setStatus(text string) {
	m.status = text
	m.statusIsError = false
}

func (m *Model) setError(text string) {
	m.status = text
	m.statusIsError = true
}

func tickCmd() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

var spinnerFrames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}

func (m Model) spinner() rune {
	return spinnerFrames[m.tick%len(spinnerFrames)]
}
