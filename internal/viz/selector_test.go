package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/roulette/internal/roulette"
)

type fixedPicker struct {
	vals []int
	i    int
}

func (p *fixedPicker) IntN(n int) int {
	v := p.vals[p.i%len(p.vals)]
	p.i++
	return v % n
}

func newTestModel(t *testing.T, final, extraSteps int) Model {
	t.Helper()
	anim, err := roulette.NewAnimator(roulette.DefaultItems(), &fixedPicker{vals: []int{final, extraSteps}})
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(anim, Options{Theme: "ocean"})
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	quitKey  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	themeKey = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}}
	helpKey  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}
)

func drive(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < roulette.MaxSteps+1; i++ {
		if !m.anim.State().Animating {
			return m
		}
		next, _ := m.Update(stepMsg{gen: m.gen})
		m = next.(Model)
	}
	t.Fatal("run did not finish")
	return m
}

func TestModel_TriggerStartsRun(t *testing.T) {
	m := newTestModel(t, 2, 0)

	m, cmd := press(t, m, enterKey)
	if cmd == nil {
		t.Fatal("expected a scheduling command")
	}
	if !m.anim.State().Animating {
		t.Error("expected run in progress")
	}
	if m.gen != 1 {
		t.Errorf("gen = %d, want 1", m.gen)
	}
	if !strings.Contains(m.View(), "selecting...") {
		t.Error("busy label missing from view")
	}
}

func TestModel_TriggerWhileAnimatingIgnored(t *testing.T) {
	m := newTestModel(t, 2, 0)
	m, _ = press(t, m, enterKey)
	next, _ := m.Update(stepMsg{gen: m.gen})
	m = next.(Model)

	before := m.anim.State()
	m, cmd := press(t, m, enterKey)
	if cmd != nil {
		t.Error("re-trigger scheduled a command")
	}
	if m.gen != 1 {
		t.Errorf("gen changed to %d", m.gen)
	}
	if m.anim.State().CurrentIndex != before.CurrentIndex {
		t.Error("re-trigger changed the cycling index")
	}
}

func TestModel_RunShowsResult(t *testing.T) {
	m := newTestModel(t, 2, 0)
	m, _ = press(t, m, enterKey)
	m = drive(t, m)

	state := m.anim.State()
	if state.Selected == nil || state.Selected.ID != 3 {
		t.Fatalf("selected = %+v, want id 3", state.Selected)
	}
	view := m.View()
	if !strings.Contains(view, "🎉") || !strings.Contains(view, "Chicago Pizza") {
		t.Errorf("result panel missing:\n%s", view)
	}
	if !strings.Contains(view, "🎊") {
		t.Error("selected row marker missing")
	}
	if strings.Contains(view, "👉") {
		t.Error("cycling marker shown after the run")
	}
}

func TestModel_CyclingMarker(t *testing.T) {
	m := newTestModel(t, 0, 5)
	m, _ = press(t, m, enterKey)
	next, _ := m.Update(stepMsg{gen: m.gen})
	m = next.(Model)

	view := m.View()
	if !strings.Contains(view, "👉 Pizzeria Bar 3") {
		t.Errorf("expected first row highlighted:\n%s", view)
	}
	if strings.Contains(view, "🎉") {
		t.Error("result panel shown while animating")
	}
}

func TestModel_StaleStepIgnored(t *testing.T) {
	m := newTestModel(t, 1, 0)
	m, _ = press(t, m, enterKey)
	stale := m.gen

	m, cmd := press(t, m, quitKey)
	if cmd == nil {
		t.Error("expected quit command")
	}
	if m.anim.State().Animating {
		t.Fatal("quit left the run animating")
	}

	next, cmd := m.Update(stepMsg{gen: stale})
	m = next.(Model)
	if cmd != nil {
		t.Error("stale step scheduled another step")
	}
	if m.anim.State().CurrentIndex != roulette.NoIndex {
		t.Error("stale step mutated state")
	}
}

func TestModel_StaleStepFromEarlierRun(t *testing.T) {
	m := newTestModel(t, 1, 0)
	m, _ = press(t, m, enterKey)
	m = drive(t, m)
	m, _ = press(t, m, enterKey)

	next, cmd := m.Update(stepMsg{gen: m.gen - 1})
	m = next.(Model)
	if cmd != nil || m.anim.State().CurrentIndex != 1 {
		t.Error("step from the previous run was applied")
	}
}

func TestModel_ThemeAndHelpKeys(t *testing.T) {
	m := newTestModel(t, 0, 0)
	m, _ = press(t, m, themeKey)
	if m.theme.Name != NextTheme("ocean").Name {
		t.Errorf("theme = %s", m.theme.Name)
	}
	m, _ = press(t, m, helpKey)
	if !m.help.ShowAll {
		t.Error("help not expanded")
	}
}

func TestModel_WindowResize(t *testing.T) {
	m := newTestModel(t, 0, 0)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	if got := next.(Model).width; got != 40 {
		t.Errorf("width = %d", got)
	}
}
