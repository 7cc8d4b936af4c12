package problemlist

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adityak/codedrill/internal/problems"
	"github.com/adityak/codedrill/internal/screen"
	"github.com/adityak/codedrill/internal/ui/layout"
	"github.com/adityak/codedrill/internal/ui/theme"
)

// ProblemListScreen is a browsable view of the problem catalog.
type ProblemListScreen struct {
	source   problems.Source
	list     []problems.Problem
	filter   problems.Difficulty // "" shows everything
	selected int
	loadErr  error
}

var _ screen.Screen = (*ProblemListScreen)(nil)
var _ screen.KeyHintProvider = (*ProblemListScreen)(nil)

// problemsLoadedMsg carries the fetched problem list.
type problemsLoadedMsg struct {
	List []problems.Problem
	Err  error
}

// New creates a problem list screen over the given source.
func New(source problems.Source) *ProblemListScreen {
	return &ProblemListScreen{source: source}
}

func (s *ProblemListScreen) Init() tea.Cmd {
	src := s.source
	return func() tea.Msg {
		list, err := src.Problems(context.Background())
		return problemsLoadedMsg{List: list, Err: err}
	}
}

func (s *ProblemListScreen) Title() string {
	return "Problems"
}

func (s *ProblemListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Browse"},
		{Key: "F", Description: "Filter difficulty"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProblemListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case problemsLoadedMsg:
		s.list = msg.List
		s.loadErr = msg.Err
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.visible())-1 {
				s.selected++
			}
		case "f":
			s.cycleFilter()
		}
	}
	return s, nil
}

// cycleFilter rotates all → easy → medium → hard → all.
func (s *ProblemListScreen) cycleFilter() {
	switch s.filter {
	case "":
		s.filter = problems.Easy
	case problems.Easy:
		s.filter = problems.Medium
	case problems.Medium:
		s.filter = problems.Hard
	default:
		s.filter = ""
	}
	s.selected = 0
}

func (s *ProblemListScreen) visible() []problems.Problem {
	if s.filter == "" {
		return s.list
	}
	var out []problems.Problem
	for _, p := range s.list {
		if p.Difficulty == s.filter {
			out = append(out, p)
		}
	}
	return out
}

func (s *ProblemListScreen) View(width, height int) string {
	var b strings.Builder

	label := "all difficulties"
	if s.filter != "" {
		label = string(s.filter)
	}
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  showing: %s", label)))
	b.WriteString("\n")
	if s.loadErr != nil {
		b.WriteString(theme.Fail.Render("  remote catalog unavailable, using built-ins"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	visible := s.visible()
	maxRows := height - 5
	if maxRows < 1 {
		maxRows = 1
	}

	start := 0
	if s.selected >= maxRows {
		start = s.selected - maxRows + 1
	}
	end := start + maxRows
	if end > len(visible) {
		end = len(visible)
	}

	for i := start; i < end; i++ {
		p := visible[i]
		diff := theme.DifficultyStyle(string(p.Difficulty)).Render(fmt.Sprintf("%-6s", p.Difficulty))
		row := fmt.Sprintf("%s  %-28s %s", diff, p.Title, theme.Hint.Render(p.Category))
		if i == s.selected {
			b.WriteString(theme.Selected.Render("  ▸ " + row))
		} else {
			b.WriteString("    " + row)
		}
		b.WriteString("\n")
	}

	if len(visible) > end {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("    ... %d more", len(visible)-end)))
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}
