package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adityak/codedrill/internal/adaptive"
	"github.com/adityak/codedrill/internal/app/deps"
	"github.com/adityak/codedrill/internal/router"
	"github.com/adityak/codedrill/internal/screen"
	"github.com/adityak/codedrill/internal/screens/dashboard"
	"github.com/adityak/codedrill/internal/screens/practice"
	"github.com/adityak/codedrill/internal/screens/problemlist"
	"github.com/adityak/codedrill/internal/ui/components"
	"github.com/adityak/codedrill/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps   deps.Deps
	menu   components.Menu
	tier   string
	solved int
	streak int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. The progress document is read once to
// seed the stats banner; screens re-read it themselves.
func New(d deps.Deps) *HomeScreen {
	doc := d.Progress.Load(context.Background())

	items := []components.MenuItem{
		{Label: "START PRACTICE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practice.New(d)}
			}
		}},
		{Label: "DASHBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(d.Progress)}
			}
		}},
		{Label: "BROWSE PROBLEMS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: problemlist.New(d.Source)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps:   d,
		menu:   components.NewMenu(items),
		tier:   string(adaptive.Recommend(doc.Counters)),
		solved: doc.Record.QuickStats.ProblemsSolved,
		streak: doc.Record.StreakData.Current,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("C O D E D R I L L")
	subtitle := theme.Subtitle.Width(width).Render("adaptive coding practice, in your terminal")
	sections = append(sections, title, subtitle, "")

	stats := fmt.Sprintf("tier %s   •   %d solved   •   %d day streak",
		theme.DifficultyStyle(h.tier).Render(h.tier), h.solved, h.streak)
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(width).
		Align(lipgloss.Center).
		Render(stats), "")

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Card.Render(h.menu.View()))
	sections = append(sections, menu)

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
