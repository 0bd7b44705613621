package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/sentinel/internal/annot"
	"github.com/abelbrown/sentinel/internal/catalog"
	"github.com/abelbrown/sentinel/internal/engine"
	"github.com/abelbrown/sentinel/internal/locale"
)

// viewMode selects which screen the app is showing.
type viewMode int

const (
	modeList viewMode = iota
	modeDetail
	modeAnnotate
)

// categoryLabels maps narrative categories to display headings.
var categoryLabels = map[string]string{
	catalog.CategoryKeyJudgments:        "Key Judgments",
	catalog.CategoryIndicators:          "Indicators",
	catalog.CategoryConfirmationSignals: "Confirmation Signals",
	catalog.CategoryAssumptions:         "Assumptions",
	catalog.CategoryChangeTriggers:      "Change Triggers",
}

// App is the root Bubble Tea model.
type App struct {
	engine *engine.Engine
	annots *annot.Store
	bundle *locale.Bundle

	locale  string
	locales []string

	report *engine.CycleReport
	cursor int
	mode   viewMode

	viewport viewport.Model
	input    textinput.Model
	category int // index into catalog.Categories() while annotating

	width  int
	height int
	ready  bool

	status string
}

// NewApp creates the root model.
func NewApp(e *engine.Engine, annots *annot.Store, bundle *locale.Bundle, loc string) App {
	input := textinput.New()
	input.Placeholder = "add a note"
	input.CharLimit = 200

	return App{
		engine:  e,
		annots:  annots,
		bundle:  bundle,
		locale:  loc,
		locales: bundle.Locales(),
		input:   input,
		status:  "waiting for first cycle",
	}
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if !a.ready {
			a.viewport = viewport.New(msg.Width, msg.Height-2)
			a.ready = true
		} else {
			a.viewport.Width = msg.Width
			a.viewport.Height = msg.Height - 2
		}
		return a, nil

	case CycleComplete:
		a.report = msg.Report
		if a.cursor >= len(a.report.Activations) {
			a.cursor = max(0, len(a.report.Activations)-1)
		}
		a.status = fmt.Sprintf("cycle %d: %d items, %d active patterns",
			msg.Report.Cycle, msg.Report.ItemCount, len(msg.Report.Activations))
		if a.mode == modeDetail {
			a.viewport.SetContent(a.renderDetail())
		}
		return a, nil

	case FetchComplete:
		if msg.Err != nil {
			a.status = fmt.Sprintf("%s: fetch failed", msg.Source)
		} else {
			a.status = fmt.Sprintf("%s: %d new items", msg.Source, msg.NewItems)
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Annotation entry captures all keys except esc/enter.
	if a.mode == modeAnnotate {
		switch msg.String() {
		case "esc":
			a.mode = modeDetail
			a.input.Blur()
			a.input.Reset()
			return a, nil
		case "tab":
			a.category = (a.category + 1) % len(catalog.Categories())
			return a, nil
		case "enter":
			text := a.input.Value()
			if act, ok := a.selected(); ok && strings.TrimSpace(text) != "" {
				a.annots.Append(a.locale, act.PatternID, catalog.Categories()[a.category], text)
				a.status = "note saved"
			}
			a.mode = modeDetail
			a.input.Blur()
			a.input.Reset()
			a.viewport.SetContent(a.renderDetail())
			return a, nil
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "up", "k":
		if a.mode == modeDetail {
			a.viewport.ScrollUp(1)
		} else if a.cursor > 0 {
			a.cursor--
		}

	case "down", "j":
		if a.mode == modeDetail {
			a.viewport.ScrollDown(1)
		} else if a.report != nil && a.cursor < len(a.report.Activations)-1 {
			a.cursor++
		}

	case "enter":
		if a.mode == modeList {
			if _, ok := a.selected(); ok {
				a.mode = modeDetail
				a.viewport.SetContent(a.renderDetail())
				a.viewport.GotoTop()
			}
		}

	case "esc":
		if a.mode == modeDetail {
			a.mode = modeList
		}

	case "a":
		if a.mode == modeDetail {
			a.mode = modeAnnotate
			a.category = 0
			a.input.Focus()
			return a, textinput.Blink
		}

	case "l":
		a.locale = nextLocale(a.locales, a.locale)
		a.engine.SetLocale(a.locale)
		a.status = fmt.Sprintf("locale: %s (applies next cycle)", a.locale)
		if a.mode == modeDetail {
			a.viewport.SetContent(a.renderDetail())
		}
	}

	return a, nil
}

// selected returns the activation under the cursor.
func (a App) selected() (engine.Activation, bool) {
	if a.report == nil || a.cursor >= len(a.report.Activations) {
		return engine.Activation{}, false
	}
	return a.report.Activations[a.cursor], true
}

func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var body string
	switch a.mode {
	case modeList:
		body = a.renderList()
	case modeDetail, modeAnnotate:
		body = a.viewport.View()
	}

	lines := []string{body}
	if a.mode == modeAnnotate {
		label := categoryLabels[catalog.Categories()[a.category]]
		lines = append(lines, AnnotateBar.Render(fmt.Sprintf("[%s] %s  (tab: category, enter: save, esc: cancel)", label, a.input.View())))
	}
	lines = append(lines, a.renderStatusBar())

	return strings.Join(lines, "\n")
}

func (a App) renderList() string {
	if a.report == nil {
		return HelpStyle.Render("Waiting for the first cycle to complete...")
	}
	if len(a.report.Activations) == 0 {
		return HelpStyle.Render(fmt.Sprintf("Cycle %d: no compound patterns active.", a.report.Cycle))
	}

	var b strings.Builder
	for i, act := range a.report.Activations {
		line := fmt.Sprintf("%-28s %s  %d/%d topics",
			act.Decorated.Name,
			ScoreStyle.Render(fmt.Sprintf("%5.2f", act.Score)),
			act.MatchedCount,
			len(act.Pattern.Topics))
		if act.Sustained {
			line += "  " + SustainedBadge.Render("sustained")
		}
		if i == a.cursor {
			b.WriteString(SelectedRow.Render(line))
		} else {
			b.WriteString(NormalRow.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderDetail builds the narrative view for the selected pattern, with
// manual annotations re-applied so notes added from this screen show up
// without waiting for the next cycle.
func (a App) renderDetail() string {
	act, ok := a.selected()
	if !ok {
		return ""
	}

	decorated := a.annots.Decorate(act.Pattern, a.locale)
	manual := a.annots.Additions(a.locale, act.PatternID)

	var b strings.Builder
	b.WriteString(SelectedRow.Render(decorated.Name))
	b.WriteString("\n")

	var topics []string
	for _, id := range act.MatchedTopics {
		topics = append(topics, TopicBadge.Render(id))
	}
	b.WriteString(strings.Join(topics, ""))
	b.WriteString("\n")

	for _, category := range catalog.Categories() {
		entries := decorated.Narrative.List(category)
		if len(entries) == 0 {
			continue
		}
		b.WriteString(SectionHeader.Render(categoryLabels[category]))
		b.WriteString("\n")
		manualSet := make(map[string]bool)
		for _, m := range manual[category] {
			manualSet[m] = true
		}
		for _, entry := range entries {
			if manualSet[entry] {
				b.WriteString("  " + ManualEntry.Render("+ "+entry))
			} else {
				b.WriteString("  - " + entry)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (a App) renderStatusBar() string {
	var hints string
	switch a.mode {
	case modeList:
		hints = StatusBarKey.Render("enter") + StatusBarText.Render(" detail  ") +
			StatusBarKey.Render("l") + StatusBarText.Render(" locale  ") +
			StatusBarKey.Render("q") + StatusBarText.Render(" quit")
	case modeDetail:
		hints = StatusBarKey.Render("a") + StatusBarText.Render(" annotate  ") +
			StatusBarKey.Render("esc") + StatusBarText.Render(" back  ") +
			StatusBarKey.Render("q") + StatusBarText.Render(" quit")
	case modeAnnotate:
		hints = StatusBarText.Render("annotating")
	}

	left := fmt.Sprintf("[%s] %s", a.locale, a.status)
	return StatusBar.Render(left + "  " + hints)
}

func nextLocale(locales []string, current string) string {
	for i, loc := range locales {
		if loc == current {
			return locales[(i+1)%len(locales)]
		}
	}
	if len(locales) > 0 {
		return locales[0]
	}
	return current
}
