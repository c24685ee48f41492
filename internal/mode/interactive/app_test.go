// ABOUTME: Tests for the interactive model's reconciliation and key handling
// ABOUTME: Uses a fake backend; drives Update directly with typed messages

package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shanselman/winget-tui/internal/winget"
)

type fakeBackend struct {
	searchResult []winget.Package
	installed    []winget.Package
	upgrades     []winget.Package
	details      map[string]winget.PackageDetail
	showErr      error
	upgradeErr   map[string]error

	showCalls    []string
	upgradeCalls []string
}

func (f *fakeBackend) Search(_ context.Context, _ string, _ winget.SourceFilter) ([]winget.Package, error) {
	return f.searchResult, nil
}

func (f *fakeBackend) ListInstalled(_ context.Context, _ winget.SourceFilter) ([]winget.Package, error) {
	return f.installed, nil
}

func (f *fakeBackend) ListUpgrades(_ context.Context, _ winget.SourceFilter) ([]winget.Package, error) {
	return f.upgrades, nil
}

func (f *fakeBackend) Show(_ context.Context, id string) (winget.PackageDetail, error) {
	f.showCalls = append(f.showCalls, id)
	if f.showErr != nil {
		return winget.PackageDetail{}, f.showErr
	}
	return f.details[id], nil
}

func (f *fakeBackend) Install(_ context.Context, id, _ string) (string, error) {
	return "Successfully installed " + id, nil
}

func (f *fakeBackend) Uninstall(_ context.Context, id string) (string, error) {
	return "Successfully uninstalled " + id, nil
}

func (f *fakeBackend) Upgrade(_ context.Context, id string) (string, error) {
	f.upgradeCalls = append(f.upgradeCalls, id)
	if err := f.upgradeErr[id]; err != nil {
		return "", err
	}
	return "Successfully upgraded " + id, nil
}

func (f *fakeBackend) ListSources(_ context.Context) ([]winget.Source, error) {
	return []winget.Source{{Name: "winget", URL: "https://cdn.winget.microsoft.com/cache"}}, nil
}

type fakeSender struct {
	msgs []tea.Msg
}

func (f *fakeSender) Send(msg tea.Msg) { f.msgs = append(f.msgs, msg) }

func newTestModel(fb *fakeBackend, tab Tab) Model {
	m := NewModel(Deps{Backend: fb, Tab: tab})
	m.width, m.height = 100, 30
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next, cmd
}

func pkgs(ids ...string) []winget.Package {
	out := make([]winget.Package, 0, len(ids))
	for _, id := range ids {
		name := strings.ReplaceAll(id, ".", " ")
		out = append(out, winget.Package{ID: id, Name: name, Version: "1.0", Source: "winget"})
	}
	return out
}

func TestStalePackageListDiscarded(t *testing.T) {
	fb := &fakeBackend{}
	m := newTestModel(fb, TabInstalled)
	m.viewGen = 5
	m.packages = pkgs("Keep.Me")
	m.applyFilter()

	m, _ = update(t, m, packagesMsg{gen: 4, pkgs: pkgs("Stale.One", "Stale.Two")})
	if len(m.filtered) != 1 || m.filtered[0].ID != "Keep.Me" {
		t.Errorf("stale list applied: filtered = %v", m.filtered)
	}

	m, _ = update(t, m, packagesMsg{gen: 5, pkgs: pkgs("Fresh.One", "Fresh.Two")})
	if len(m.filtered) != 2 {
		t.Errorf("current list not applied: got %d packages, want 2", len(m.filtered))
	}
}

func TestRefreshBumpsGenerationBeforeFetch(t *testing.T) {
	fb := &fakeBackend{installed: pkgs("A.B")}
	m := newTestModel(fb, TabInstalled)

	before := m.viewGen
	cmd := (&m).refresh()
	if m.viewGen != before+1 {
		t.Errorf("viewGen = %d after refresh, want %d", m.viewGen, before+1)
	}
	if cmd == nil {
		t.Fatal("refresh returned nil cmd")
	}
	if !m.loading {
		t.Error("loading = false after refresh, want true")
	}
}

func TestSearchTabEmptyQueryFetchesNothing(t *testing.T) {
	fb := &fakeBackend{searchResult: pkgs("Should.NotAppear")}
	m := newTestModel(fb, TabSearch)

	cmd := (&m).refresh()
	msgs := collect(cmd)
	for _, msg := range msgs {
		if pm, ok := msg.(packagesMsg); ok && len(pm.pkgs) != 0 {
			t.Errorf("empty search query fetched %d packages, want 0", len(pm.pkgs))
		}
	}
}

func TestCachedDetailAppliedWithoutFetch(t *testing.T) {
	fb := &fakeBackend{}
	m := newTestModel(fb, TabInstalled)
	cached := winget.PackageDetail{ID: "Git.Git", Name: "Git", Publisher: "The Git Project"}
	m.detailCache["Git.Git"] = cached

	before := m.detailGen
	cmd := (&m).loadDetail(winget.Package{ID: "Git.Git", Name: "Git"})

	if cmd != nil {
		t.Error("cache hit dispatched a fetch, want none")
	}
	if len(fb.showCalls) != 0 {
		t.Errorf("backend.Show called %d times on cache hit, want 0", len(fb.showCalls))
	}
	if m.detail == nil || m.detail.Publisher != "The Git Project" {
		t.Errorf("detail = %+v, want cached entry", m.detail)
	}
	if m.detailGen != before+1 {
		t.Errorf("detailGen = %d, want %d; cache hits must still invalidate in-flight fetches", m.detailGen, before+1)
	}

	// A fetch issued before the cache hit must not overwrite it on arrival.
	stale := winget.PackageDetail{ID: "Old.Package", Name: "Old", Publisher: "Stale Corp"}
	m, _ = update(t, m, detailMsg{gen: before, detail: stale})
	if m.detail.ID != "Git.Git" {
		t.Errorf("stale detail overwrote cache hit: detail.ID = %q", m.detail.ID)
	}
}

func TestUncachedDetailShowsProvisionalThenFetches(t *testing.T) {
	fb := &fakeBackend{details: map[string]winget.PackageDetail{
		"Mozilla.Firefox": {ID: "Mozilla.Firefox", Name: "Firefox", Publisher: "Mozilla"},
	}}
	m := newTestModel(fb, TabInstalled)

	cmd := (&m).loadDetail(winget.Package{
		ID: "Mozilla.Firefox", Name: "Firefox", Version: "120.0", Source: "winget",
	})
	if cmd == nil {
		t.Fatal("uncached package dispatched no fetch")
	}
	if m.detail == nil || m.detail.ID != "Mozilla.Firefox" || m.detail.Version != "120.0" {
		t.Errorf("provisional detail = %+v, want summary fields", m.detail)
	}
	if m.detail.Publisher != "" {
		t.Errorf("provisional Publisher = %q, want empty before fetch", m.detail.Publisher)
	}
	if !m.detailLoading {
		t.Error("detailLoading = false, want true while fetch is in flight")
	}

	for _, msg := range collect(cmd) {
		if dm, ok := msg.(detailMsg); ok {
			m, _ = update(t, m, dm)
		}
	}
	if m.detail.Publisher != "Mozilla" {
		t.Errorf("Publisher = %q after fetch, want Mozilla", m.detail.Publisher)
	}
	if m.detailLoading {
		t.Error("detailLoading = true after fetch applied")
	}
	if _, ok := m.detailCache["Mozilla.Firefox"]; !ok {
		t.Error("fetched detail not cached")
	}
}

func TestMergeDetailKeepsDisplayedIdentityFields(t *testing.T) {
	displayed := &winget.PackageDetail{
		ID: "Foo.Bar", Name: "Foo Bar", Version: "2.1", Source: "winget", Available: "2.2",
	}
	fetched := winget.PackageDetail{
		Name: "Foo Bar Deluxe", Publisher: "Foo Corp", Description: "A tool",
	}

	merged := mergeDetail(fetched, displayed)
	if merged.ID != "Foo.Bar" {
		t.Errorf("ID = %q, want displayed value retained", merged.ID)
	}
	if merged.Name != "Foo Bar Deluxe" {
		t.Errorf("Name = %q, want fetched value", merged.Name)
	}
	if merged.Version != "2.1" || merged.Source != "winget" || merged.Available != "2.2" {
		t.Errorf("identity fields = %+v, want displayed values retained", merged)
	}
	if merged.Publisher != "Foo Corp" {
		t.Errorf("Publisher = %q, want fetched value", merged.Publisher)
	}
}

func TestMergeDetailDescriptiveFieldsAlwaysFetched(t *testing.T) {
	displayed := &winget.PackageDetail{ID: "X.Y", Publisher: "Old Publisher", Homepage: "https://old"}
	fetched := winget.PackageDetail{ID: "X.Y", Version: "3.0"}

	merged := mergeDetail(fetched, displayed)
	if merged.Publisher != "" || merged.Homepage != "" {
		t.Errorf("descriptive fields = %q/%q, want fetched (empty) values", merged.Publisher, merged.Homepage)
	}
}

func TestDetailWithoutIDNotCached(t *testing.T) {
	fb := &fakeBackend{}
	m := newTestModel(fb, TabInstalled)
	m.detailGen = 1

	m, _ = update(t, m, detailMsg{gen: 1, detail: winget.PackageDetail{Name: "Nameless"}})
	if len(m.detailCache) != 0 {
		t.Errorf("detail without ID was cached: %v", m.detailCache)
	}
	if m.detail == nil || m.detail.Name != "Nameless" {
		t.Error("detail without ID not displayed")
	}
}

func TestOpDoneInvalidatesCacheAndRefreshes(t *testing.T) {
	for _, success := range []bool{true, false} {
		t.Run(fmt.Sprintf("success=%v", success), func(t *testing.T) {
			fb := &fakeBackend{}
			m := newTestModel(fb, TabInstalled)
			m.detailCache["Touched.Pkg"] = winget.PackageDetail{ID: "Touched.Pkg"}
			m.detailCache["Other.Pkg"] = winget.PackageDetail{ID: "Other.Pkg"}

			op := winget.Operation{Kind: winget.OpUpgrade, ID: "Touched.Pkg"}
			before := m.viewGen
			m, cmd := update(t, m, opDoneMsg{result: winget.OpResult{Op: op, Success: success, Message: "x"}})

			if _, ok := m.detailCache["Touched.Pkg"]; ok {
				t.Error("cache entry for operated package survived")
			}
			if _, ok := m.detailCache["Other.Pkg"]; !ok {
				t.Error("unrelated cache entry was dropped")
			}
			if cmd == nil {
				t.Error("no refresh dispatched after operation")
			}
			if m.viewGen != before+1 {
				t.Errorf("viewGen = %d, want %d after post-op refresh", m.viewGen, before+1)
			}
		})
	}
}

func TestBatchUpgradeSequentialWithAggregateResult(t *testing.T) {
	fb := &fakeBackend{upgradeErr: map[string]error{
		"Fail.One": errors.New("installer hash mismatch"),
	}}
	m := newTestModel(fb, TabUpgrades)
	sender := &fakeSender{}
	m.SetProgram(sender)

	op := winget.Operation{Kind: winget.OpBatchUpgrade, IDs: []string{"Ok.One", "Fail.One", "Ok.Two"}}
	cmd := (&m).execute(op)

	msg := cmd()
	done, ok := msg.(opDoneMsg)
	if !ok {
		t.Fatalf("execute produced %T, want opDoneMsg", msg)
	}

	wantCalls := []string{"Ok.One", "Fail.One", "Ok.Two"}
	if len(fb.upgradeCalls) != len(wantCalls) {
		t.Fatalf("upgrade calls = %v, want %v", fb.upgradeCalls, wantCalls)
	}
	for i, id := range wantCalls {
		if fb.upgradeCalls[i] != id {
			t.Errorf("upgrade call %d = %q, want %q (order must be preserved)", i, fb.upgradeCalls[i], id)
		}
	}

	if done.result.Success {
		t.Error("aggregate result Success = true with one failure")
	}
	if !strings.Contains(done.result.Message, "Fail.One") {
		t.Errorf("aggregate message %q does not name the failed package", done.result.Message)
	}
	if !strings.Contains(done.result.Message, "2/3 succeeded") {
		t.Errorf("aggregate message %q, want success/failure counts", done.result.Message)
	}

	if len(sender.msgs) != 3 {
		t.Fatalf("got %d interim status messages, want 3", len(sender.msgs))
	}
	first, ok := sender.msgs[0].(statusMsg)
	if !ok || !strings.Contains(first.text, "1/3") {
		t.Errorf("first interim message = %v, want per-step progress", sender.msgs[0])
	}
}

func TestBatchCompletionClearsMarked(t *testing.T) {
	fb := &fakeBackend{}
	m := newTestModel(fb, TabUpgrades)
	m.packages = pkgs("A.A", "B.B")
	m.applyFilter()
	m.marked[0] = struct{}{}
	m.marked[1] = struct{}{}

	op := winget.Operation{Kind: winget.OpBatchUpgrade, IDs: []string{"A.A", "B.B"}}
	m, _ = update(t, m, opDoneMsg{result: winget.OpResult{Op: op, Success: true, Message: "ok"}})
	if len(m.marked) != 0 {
		t.Errorf("marked = %v after batch completion, want empty", m.marked)
	}
}

func TestApplyFilterFuzzyNarrows(t *testing.T) {
	fb := &fakeBackend{}
	m := newTestModel(fb, TabInstalled)
	m.packages = []winget.Package{
		{ID: "Git.Git", Name: "Git", Source: "winget"},
		{ID: "Mozilla.Firefox", Name: "Firefox", Source: "winget"},
		{ID: "7zip.7zip", Name: "7-Zip", Source: "winget"},
	}
	m.filterQuery = "fire"
	m.applyFilter()

	if len(m.filtered) != 1 || m.filtered[0].ID != "Mozilla.Firefox" {
		t.Errorf("filtered = %v, want only Mozilla.Firefox", m.filtered)
	}
}

func TestApplyFilterBoundsSelection(t *testing.T) {
	fb := &fakeBackend{}
	m := newTestModel(fb, TabInstalled)
	m.packages = pkgs("A.A", "B.B", "C.C")
	m.applyFilter()
	m.selected = 2

	m.packages = pkgs("A.A")
	m.applyFilter()
	if m.selected != 0 {
		t.Errorf("selected = %d after list shrank, want 0", m.selected)
	}
}

func TestMoveSelectionWraps(t *testing.T) {
	fb := &fakeBackend{}
	m := newTestModel(fb, TabInstalled)
	m.packages = pkgs("A.A", "B.B", "C.C")
	m.applyFilter()

	(&m).moveSelection(-1)
	if m.selected != 2 {
		t.Errorf("selected = %d after up from 0, want 2", m.selected)
	}
	(&m).moveSelection(1)
	if m.selected != 0 {
		t.Errorf("selected = %d after down from last, want 0", m.selected)
	}
}

func TestSwitchTabClearsFilterAndRefreshes(t *testing.T) {
	fb := &fakeBackend{}
	m := newTestModel(fb, TabInstalled)
	m.filterQuery = "leftover"
	m.selected = 3

	updated, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	next := updated.(Model)
	if next.tab != TabUpgrades {
		t.Errorf("tab = %v after tab key, want %v", next.tab, TabUpgrades)
	}
	if next.filterQuery != "" {
		t.Errorf("filterQuery = %q after tab switch, want empty", next.filterQuery)
	}
	if next.selected != 0 {
		t.Errorf("selected = %d after tab switch, want 0", next.selected)
	}
	if cmd == nil {
		t.Error("no refresh dispatched on tab switch")
	}
}

func TestToggleMarkOnlyOnUpgradesTab(t *testing.T) {
	fb := &fakeBackend{}
	m := newTestModel(fb, TabInstalled)
	m.packages = pkgs("A.A")
	m.applyFilter()

	(&m).toggleMark()
	if len(m.marked) != 0 {
		t.Errorf("marked = %v on installed tab, want empty", m.marked)
	}

	m.tab = TabUpgrades
	(&m).toggleMark()
	if _, ok := m.marked[0]; !ok {
		t.Error("toggle on upgrades tab did not mark the row")
	}
	(&m).toggleMark()
	if len(m.marked) != 0 {
		t.Error("second toggle did not unmark the row")
	}
}

func TestConfirmDialogFlow(t *testing.T) {
	fb := &fakeBackend{}
	m := newTestModel(fb, TabInstalled)
	m.packages = pkgs("Git.Git")
	m.applyFilter()

	updated, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m = updated.(Model)
	if m.confirm == nil {
		t.Fatal("uninstall key did not open a confirm dialog")
	}
	if m.confirm.op.Kind != winget.OpUninstall || m.confirm.op.ID != "Git.Git" {
		t.Errorf("pending op = %+v, want uninstall of Git.Git", m.confirm.op)
	}

	updated, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = updated.(Model)
	if m.confirm != nil {
		t.Error("cancel did not dismiss the dialog")
	}
	if m.status != "Cancelled" {
		t.Errorf("status = %q after cancel, want Cancelled", m.status)
	}

	updated, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m = updated.(Model)
	updated, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	m = updated.(Model)
	if m.confirm != nil {
		t.Error("confirm did not dismiss the dialog")
	}
	if cmd == nil {
		t.Fatal("confirm dispatched no operation")
	}
}

func TestErrMsgBecomesStatusNotCrash(t *testing.T) {
	fb := &fakeBackend{}
	m := newTestModel(fb, TabInstalled)
	m.loading = true

	m, _ = update(t, m, errMsg{err: errors.New("winget not found")})
	if !m.statusIsError {
		t.Error("statusIsError = false after errMsg")
	}
	if !strings.Contains(m.status, "winget not found") {
		t.Errorf("status = %q, want error text", m.status)
	}
	if m.loading {
		t.Error("loading = true after error")
	}
}

func TestViewRendersPackagesAndDetail(t *testing.T) {
	fb := &fakeBackend{}
	m := newTestModel(fb, TabInstalled)
	m.packages = pkgs("Git.Git")
	m.applyFilter()
	m.detail = &winget.PackageDetail{ID: "Git.Git", Name: "Git", Publisher: "The Git Project"}

	out := m.View()
	if !strings.Contains(out, "Git.Git") {
		t.Error("view does not show the package ID")
	}
	if !strings.Contains(out, "The Git Project") {
		t.Error("view does not show the detail publisher")
	}
	if !strings.Contains(out, "Installed") {
		t.Error("view does not show the tab bar")
	}
}

func TestSearchInputCommitTriggersFetch(t *testing.T) {
	fb := &fakeBackend{searchResult: pkgs("Git.Git")}
	m := newTestModel(fb, TabSearch)
	m.input = inputSearch

	for _, r := range "git" {
		updated, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	if m.searchQuery != "git" {
		t.Errorf("searchQuery = %q, want git", m.searchQuery)
	}

	before := m.viewGen
	updated, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if m.input != inputNormal {
		t.Error("enter did not leave input mode")
	}
	if cmd == nil {
		t.Fatal("enter on search dispatched no fetch")
	}
	if m.viewGen != before+1 {
		t.Errorf("viewGen = %d, want bump on committed search", m.viewGen)
	}
}

// collect runs a command tree and gathers every produced message.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestStaleListErrorDiscarded(t *testing.T) {
	fb := &fakeBackend{}
	m := newTestModel(fb, TabInstalled)
	m.viewGen = 3
	m.loading = true
	m.setStatus("Loading...")

	m, _ = update(t, m, errMsg{gen: 2, err: errors.New("old fetch failed")})
	if m.statusIsError {
		t.Error("stale fetch error reached the status bar")
	}
	if !m.loading {
		t.Error("stale fetch error cleared loading while a fresh fetch is in flight")
	}

	m, _ = update(t, m, errMsg{gen: 3, err: errors.New("current fetch failed")})
	if !m.statusIsError || !strings.Contains(m.status, "current fetch failed") {
		t.Errorf("status = %q, want current fetch error applied", m.status)
	}
	if m.loading {
		t.Error("current fetch error did not clear loading")
	}
}

func TestStaleDetailErrorDiscarded(t *testing.T) {
	fb := &fakeBackend{}
	m := newTestModel(fb, TabInstalled)
	m.detailGen = 2
	m.detailLoading = true

	m, _ = update(t, m, errMsg{gen: 1, detail: true, err: errors.New("old show failed")})
	if m.statusIsError {
		t.Error("stale detail error reached the status bar")
	}
	if !m.detailLoading {
		t.Error("stale detail error cleared detailLoading while a fresh fetch is in flight")
	}

	m, _ = update(t, m, errMsg{gen: 2, detail: true, err: errors.New("current show failed")})
	if !m.statusIsError {
		t.Error("current detail error not applied")
	}
	if m.detailLoading {
		t.Error("current detail error did not clear detailLoading")
	}
}
