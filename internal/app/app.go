package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adityak/codedrill/internal/app/deps"
	"github.com/adityak/codedrill/internal/router"
	"github.com/adityak/codedrill/internal/screens/home"
	"github.com/adityak/codedrill/internal/screens/practice"
	"github.com/adityak/codedrill/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   deps.Deps
	router *router.Router
	width  int
	height int

	// Header stats, refreshed on navigation rather than per frame.
	solved int
	streak int

	straightPractice bool
}

// newAppModel creates the root model on the home screen. When
// straightToPractice is set, Init pushes a practice session on top.
func newAppModel(d deps.Deps, straightToPractice bool) AppModel {
	m := AppModel{
		deps:             d,
		router:           router.New(home.New(d)),
		straightPractice: straightToPractice,
	}
	m.refreshStats()
	return m
}

func (m *AppModel) refreshStats() {
	doc := m.deps.Progress.Load(context.Background())
	m.solved = doc.Record.QuickStats.ProblemsSolved
	m.streak = doc.Record.StreakData.Current
}

func (m AppModel) Init() tea.Cmd {
	if m.straightPractice {
		d := m.deps
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: practice.New(d)}
		}
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Fall through so screens can react to resizes too.

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	switch msg.(type) {
	case router.PopScreenMsg, router.ReplaceScreenMsg:
		m.refreshStats()
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.solved, m.streak, m.width)

	footerHints := m.footerHints()
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen for hints, falling back to stack
// defaults.
func (m AppModel) footerHints() []layout.KeyHint {
	if provider, ok := m.router.Active().(interface{ KeyHints() []layout.KeyHint }); ok {
		if hints := provider.KeyHints(); hints != nil {
			return hints
		}
	}

	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program on the home screen.
func Run(d deps.Deps) error {
	return run(d, false)
}

// RunPractice starts the program directly in a practice session.
func RunPractice(d deps.Deps) error {
	return run(d, true)
}

func run(d deps.Deps, straightToPractice bool) error {
	p := tea.NewProgram(newAppModel(d, straightToPractice))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
