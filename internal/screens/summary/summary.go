package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adityak/codedrill/internal/router"
	"github.com/adityak/codedrill/internal/screen"
	"github.com/adityak/codedrill/internal/session"
	"github.com/adityak/codedrill/internal/ui/layout"
	"github.com/adityak/codedrill/internal/ui/theme"
)

// SummaryScreen shows the results of a finished practice session.
type SummaryScreen struct {
	summary *session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen for the given session results.
func New(s *session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: s}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder
	b.WriteString(theme.Title.Render("Session Complete"))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Duration", sum.Duration.Round(time.Second).String()},
		{"Attempted", fmt.Sprintf("%d", sum.Attempted)},
		{"Solved", fmt.Sprintf("%d", sum.Solved)},
		{"Accuracy", fmt.Sprintf("%.0f%%", sum.Accuracy*100)},
		{"Final tier", string(sum.FinalTier)},
	}

	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			theme.Hint.Width(12).Render(row.label),
			theme.Body.Render(row.value)))
	}

	if sum.Attempted > 0 && sum.Solved == sum.Attempted {
		b.WriteString("\n")
		b.WriteString(theme.Pass.Render("Perfect session!"))
	}

	card := theme.Card.Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}
