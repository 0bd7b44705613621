package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/sentinel/internal/annot"
	"github.com/abelbrown/sentinel/internal/catalog"
	"github.com/abelbrown/sentinel/internal/engine"
	"github.com/abelbrown/sentinel/internal/locale"
	"github.com/abelbrown/sentinel/internal/store"
)

func newTestApp(t *testing.T) (App, *engine.Engine, *annot.Store) {
	t.Helper()
	cat := catalog.Builtin()
	bundle := locale.NewBundle(cat)
	annots := annot.NewStore(cat, bundle, annot.NewMemoryKV())
	eng := engine.New(cat, annots, engine.Options{})
	return NewApp(eng, annots, bundle, "en"), eng, annots
}

func sized(t *testing.T, a App) App {
	t.Helper()
	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m.(App)
}

// runCycle pushes items through the engine and delivers the report to the app.
func runCycle(t *testing.T, a App, eng *engine.Engine, titles []string) App {
	t.Helper()
	items := make([]store.Item, len(titles))
	for i, title := range titles {
		items[i] = store.Item{ID: title, SourceName: "Reuters World", Title: title}
	}
	report := eng.Run(items)
	m, _ := a.Update(CycleComplete{Report: report})
	return m.(App)
}

// tradeWarHeadlines activate the trade escalation pattern: three of its
// component topics fire in one cycle.
var tradeWarHeadlines = []string{
	"Government imposes new tariffs on steel imports",
	"Beijing warns of retaliation as tensions rise with China",
	"Port congestion deepens supply chain disruption",
}

func TestAppShowsWaitingBeforeFirstCycle(t *testing.T) {
	a, _, _ := newTestApp(t)
	a = sized(t, a)

	view := a.View()
	if !strings.Contains(view, "Waiting for the first cycle") {
		t.Errorf("expected waiting message, got: %s", view)
	}
}

func TestAppListsActivations(t *testing.T) {
	a, eng, _ := newTestApp(t)
	a = sized(t, a)
	a = runCycle(t, a, eng, tradeWarHeadlines)

	view := a.View()
	if !strings.Contains(view, "Trade War Escalation") {
		t.Errorf("expected trade war pattern in list, got: %s", view)
	}
}

func TestAppNavigationBounds(t *testing.T) {
	a, eng, _ := newTestApp(t)
	a = sized(t, a)
	a = runCycle(t, a, eng, tradeWarHeadlines)

	// Cursor must not go negative
	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyUp})
	a = m.(App)
	if a.cursor != 0 {
		t.Errorf("cursor went negative: %d", a.cursor)
	}

	// Cursor must not run past the activation list
	for i := 0; i < 20; i++ {
		m, _ = a.Update(tea.KeyMsg{Type: tea.KeyDown})
		a = m.(App)
	}
	if a.report != nil && a.cursor >= len(a.report.Activations) {
		t.Errorf("cursor %d out of range for %d activations", a.cursor, len(a.report.Activations))
	}
}

func TestAppDetailShowsNarrative(t *testing.T) {
	a, eng, _ := newTestApp(t)
	a = sized(t, a)
	a = runCycle(t, a, eng, tradeWarHeadlines)

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = m.(App)

	if a.mode != modeDetail {
		t.Fatalf("expected detail mode, got %d", a.mode)
	}

	view := a.View()
	if !strings.Contains(view, "Key Judgments") {
		t.Errorf("expected narrative headings in detail view, got: %s", view)
	}
}

func TestAppAnnotateAppendsNote(t *testing.T) {
	a, eng, annots := newTestApp(t)
	a = sized(t, a)
	a = runCycle(t, a, eng, tradeWarHeadlines)

	patternID := a.report.Activations[0].PatternID

	// Enter detail, then annotation mode
	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = m.(App)
	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	a = m.(App)
	if a.mode != modeAnnotate {
		t.Fatalf("expected annotate mode, got %d", a.mode)
	}

	// Type a note and submit
	for _, r := range "watch freight rates" {
		m, _ = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		a = m.(App)
	}
	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = m.(App)

	additions := annots.Additions("en", patternID)
	found := false
	for _, entries := range additions {
		for _, entry := range entries {
			if entry == "watch freight rates" {
				found = true
			}
		}
	}
	if !found {
		t.Error("annotation was not recorded")
	}
	if a.mode != modeDetail {
		t.Errorf("expected return to detail mode, got %d", a.mode)
	}
}

func TestAppAnnotateEscCancels(t *testing.T) {
	a, eng, annots := newTestApp(t)
	a = sized(t, a)
	a = runCycle(t, a, eng, tradeWarHeadlines)

	patternID := a.report.Activations[0].PatternID

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = m.(App)
	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	a = m.(App)
	for _, r := range "discard me" {
		m, _ = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		a = m.(App)
	}
	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	a = m.(App)

	if len(annots.Additions("en", patternID)) != 0 {
		t.Error("cancelled annotation should not be recorded")
	}
}

func TestAppLocaleToggle(t *testing.T) {
	a, eng, _ := newTestApp(t)
	a = sized(t, a)
	a = runCycle(t, a, eng, tradeWarHeadlines)

	start := a.locale
	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	a = m.(App)

	if a.locale == start {
		t.Errorf("expected locale to change from %s", start)
	}
}

func TestAppQuitKeys(t *testing.T) {
	a, _, _ := newTestApp(t)
	a = sized(t, a)

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command for 'q'")
	}
}
