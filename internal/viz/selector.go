package viz

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/san-kum/roulette/internal/roulette"
)

const (
	defaultWidth = 60
	barWidth     = 30
)

// stepMsg wakes the model for the next step of run gen.
type stepMsg struct {
	gen uint64
}

type Options struct {
	Theme     string
	TimeScale float64
	Logger    *slog.Logger
}

// Model hosts a roulette.Animator inside a bubbletea program. Steps are
// scheduled with tea.Tick and tagged with a run generation so that ticks
// from an abandoned run are dropped.
type Model struct {
	anim     *roulette.Animator
	gen      uint64
	scale    float64
	theme    Theme
	styles   styles
	keys     KeyMap
	help     help.Model
	spinner  spinner.Model
	width    int
	quitting bool
	logger   *slog.Logger
}

func NewModel(anim *roulette.Animator, opts Options) Model {
	theme := GetTheme(opts.Theme)
	scale := opts.TimeScale
	if scale <= 0 {
		scale = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := Model{
		anim:   anim,
		scale:  scale,
		keys:   DefaultKeyMap,
		help:   help.New(),
		width:  defaultWidth,
		logger: logger,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
		),
	}
	m.setTheme(theme)
	return m
}

func (m *Model) setTheme(t Theme) {
	m.theme = t
	m.styles = newStyles(t)
	m.spinner.Style = lipgloss.NewStyle().Foreground(t.Hot)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case stepMsg:
		return m, m.step(msg)
	case spinner.TickMsg:
		if !m.anim.State().Animating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stop()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Trigger):
		return m, m.trigger()
	case key.Matches(msg, m.keys.Theme):
		m.setTheme(NextTheme(m.theme.Name))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) trigger() tea.Cmd {
	delay, ok := m.anim.Trigger()
	if !ok {
		m.logger.Debug("trigger ignored while selecting")
		return nil
	}
	m.gen++
	plan := m.anim.Plan()
	m.logger.Debug("run started", "run", m.gen, "steps", plan.TotalSteps)
	return tea.Batch(m.schedule(delay), m.spinner.Tick)
}

func (m *Model) schedule(d time.Duration) tea.Cmd {
	gen := m.gen
	return tea.Tick(time.Duration(float64(d)*m.scale), func(time.Time) tea.Msg {
		return stepMsg{gen: gen}
	})
}

func (m *Model) step(msg stepMsg) tea.Cmd {
	if msg.gen != m.gen {
		return nil
	}
	tick := m.anim.Step()
	if !tick.Done {
		return m.schedule(tick.Next)
	}
	if sel := m.anim.State().Selected; sel != nil {
		m.logger.Debug("run finished", "run", m.gen, "id", sel.ID, "name", sel.Name)
	}
	return nil
}

// stop abandons a run in progress; its pending tick becomes stale.
func (m *Model) stop() {
	if !m.anim.State().Animating {
		return
	}
	m.gen++
	m.anim.Reset()
	m.logger.Debug("run abandoned")
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	state := m.anim.State()
	width := m.width
	if width <= 0 || width > defaultWidth {
		width = defaultWidth
	}

	var b strings.Builder
	b.WriteString("\n  " + GradientText("🎰 ROULETTE SELECTOR", m.theme.Title, m.theme.Hot) + "\n")
	b.WriteString("  " + m.styles.subtitle.Render("press start to spin through the rows and land on one") + "\n")
	b.WriteString("  " + Separator(m.theme, width-4) + "\n\n")

	b.WriteString(indent(m.viewButton(state), 2) + "\n")
	if state.Animating {
		b.WriteString("  " + ProgressBar(m.theme, m.anim.Progress(), barWidth) + " " + m.styles.muted.Render(m.anim.Phase().String()) + "\n")
	}
	if state.ShowResult() {
		text := fmt.Sprintf("🎉 selected... %s! 🏬", state.Selected.Name)
		b.WriteString(indent(m.styles.result.Render(text), 2) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(indent(m.viewTable(state), 2) + "\n\n")
	b.WriteString("  " + m.help.View(m.keys) + "\n")
	return b.String()
}

func (m Model) viewButton(state roulette.State) string {
	if !state.ButtonEnabled() {
		return m.styles.buttonBusy.Render(m.spinner.View() + " " + state.ButtonLabel())
	}
	return m.styles.button.Render("🎯 " + state.ButtonLabel())
}

func (m Model) viewTable(state roulette.State) string {
	items := m.anim.Items()
	rows := make([][]string, len(items))
	highlights := make([]roulette.Highlight, len(items))
	for i, it := range items {
		h := state.Highlight(i, it)
		highlights[i] = h
		name := it.Name
		switch h {
		case roulette.HighlightCycling:
			name = "👉 " + name
		case roulette.HighlightSelected:
			name = name + " 🎊"
		}
		rows[i] = []string{strconv.Itoa(it.ID), name}
	}

	cycling := cyclingStyle(m.theme, m.anim.Progress())
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(m.styles.border).
		Headers("ID", "NAME").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return m.styles.header
			}
			if row < 0 || row >= len(highlights) {
				return m.styles.cell
			}
			switch highlights[row] {
			case roulette.HighlightCycling:
				return cycling
			case roulette.HighlightSelected:
				return m.styles.selected
			}
			return m.styles.cell
		}).
		Render()
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

// RunInteractive runs the selector until the user quits. A run still in
// progress at exit is abandoned.
func RunInteractive(anim *roulette.Animator, opts Options) error {
	final, err := tea.NewProgram(NewModel(anim, opts), tea.WithAltScreen()).Run()
	if m, ok := final.(Model); ok {
		m.stop()
	}
	return err
}
