package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adityak/codedrill/internal/progress"
	"github.com/adityak/codedrill/internal/screen"
	"github.com/adityak/codedrill/internal/ui/components"
	"github.com/adityak/codedrill/internal/ui/theme"
)

// DashboardScreen shows the learner's profile, stats, and history.
type DashboardScreen struct {
	store *progress.Store
	doc   progress.Document
}

var _ screen.Screen = (*DashboardScreen)(nil)

// docLoadedMsg carries the freshly loaded progress document.
type docLoadedMsg struct {
	Doc progress.Document
}

// New creates a dashboard screen over the given progress store.
func New(store *progress.Store) *DashboardScreen {
	return &DashboardScreen{store: store}
}

func (d *DashboardScreen) Init() tea.Cmd {
	st := d.store
	return func() tea.Msg {
		return docLoadedMsg{Doc: st.Load(context.Background())}
	}
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(docLoadedMsg); ok {
		d.doc = m.Doc
	}
	return d, nil
}

func (d *DashboardScreen) View(width, height int) string {
	r := d.doc.Record

	colWidth := (width - 6) / 2
	if colWidth < 36 {
		colWidth = 36
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		renderProfile(r, colWidth),
		"",
		renderQuickStats(r, colWidth),
		"",
		renderCategories(r, colWidth),
	)

	right := lipgloss.JoinVertical(lipgloss.Left,
		renderRecentTests(r, colWidth),
		"",
		renderAchievements(r, colWidth),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

func renderProfile(r progress.Record, width int) string {
	p := r.Profile

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render(p.Name))
	b.WriteString("  ")
	b.WriteString(theme.Hint.Render(p.Initials))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(p.Rank))
	b.WriteString(theme.Hint.Render(fmt.Sprintf("   top %d%%   %d pts", p.Percentile, p.Score)))

	return theme.Card.Width(width).Render(b.String())
}

func renderQuickStats(r progress.Record, width int) string {
	q := r.QuickStats

	rows := []struct {
		label string
		value string
	}{
		{"Streak", fmt.Sprintf("%d days", q.Streak)},
		{"Tests", fmt.Sprintf("%d", q.TestsCompleted)},
		{"Accuracy", fmt.Sprintf("%.1f%%", q.AvgAccuracy)},
		{"Study time", fmt.Sprintf("%dh %dm", q.StudyMinutes/60, q.StudyMinutes%60)},
		{"Solved", fmt.Sprintf("%d", q.ProblemsSolved)},
	}

	var b strings.Builder
	b.WriteString(theme.Hint.Render("Quick stats"))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%s %s\n",
			theme.Hint.Width(12).Render(row.label),
			theme.Body.Render(row.value)))
	}

	return theme.Card.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func renderCategories(r progress.Record, width int) string {
	var b strings.Builder
	b.WriteString(theme.Hint.Render("Categories"))
	b.WriteString("\n")

	barWidth := width - 6
	for _, c := range r.CategoryPerformance {
		bar := components.ProgressBar{
			Label:       fmt.Sprintf("%-24s", c.Name),
			Percent:     float64(c.Score) / 100,
			ShowPercent: true,
			Width:       barWidth,
			Fill:        lipgloss.Color(c.Color),
		}
		b.WriteString(bar.View())
		b.WriteString(" ")
		b.WriteString(trendGlyph(c.Trend))
		b.WriteString("\n")
	}

	return theme.Card.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func renderRecentTests(r progress.Record, width int) string {
	var b strings.Builder
	b.WriteString(theme.Hint.Render("Recent tests"))
	b.WriteString("\n")

	if len(r.RecentTests) == 0 {
		b.WriteString(theme.Hint.Render("nothing yet — go practice"))
	}
	for _, t := range r.RecentTests {
		score := theme.Pass
		if t.Score < 60 {
			score = theme.Fail
		}
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			score.Render(fmt.Sprintf("%3d", t.Score)),
			theme.Body.Render(t.Name),
			theme.Hint.Render(t.Date)))
	}

	return theme.Card.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func renderAchievements(r progress.Record, width int) string {
	var b strings.Builder
	b.WriteString(theme.Hint.Render("Achievements"))
	b.WriteString("\n")

	for _, a := range r.Achievements {
		if a.Earned {
			b.WriteString(theme.Pass.Render("★ " + a.Name))
		} else {
			b.WriteString(theme.Hint.Render("☆ " + a.Name))
		}
		b.WriteString("\n")
	}

	return theme.Card.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func trendGlyph(t progress.Trend) string {
	switch t {
	case progress.TrendUp:
		return theme.Pass.Render("▲")
	case progress.TrendDown:
		return theme.Fail.Render("▼")
	default:
		return theme.Hint.Render("–")
	}
}
