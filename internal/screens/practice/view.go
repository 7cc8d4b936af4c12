package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/adityak/codedrill/internal/judge"
	"github.com/adityak/codedrill/internal/session"
	"github.com/adityak/codedrill/internal/ui/theme"
)

func (p *PracticeScreen) View(width, height int) string {
	p.width = width
	p.height = height

	switch {
	case p.errMsg != "" && p.phase == phaseLoading:
		return renderCentered(width, height, theme.Fail.Render("Could not start session:\n"+p.errMsg))
	case p.phase == phaseLoading:
		return renderCentered(width, height, theme.Hint.Render("Building your problem set..."))
	case p.phase == phaseJudging:
		return renderCentered(width, height, theme.Hint.Render("Running test cases..."))
	case p.phase == phaseHinting:
		return renderCentered(width, height, theme.Hint.Render("Thinking about a hint..."))
	case p.phase == phaseVerdict:
		return p.renderVerdict(width, height)
	default:
		return p.renderEditing(width, height)
	}
}

// renderEditing shows the problem statement beside the code editor.
func (p *PracticeScreen) renderEditing(width, height int) string {
	stmtWidth := p.statementWidth()

	statement := theme.Card.Width(stmtWidth).Render(p.renderStatement(stmtWidth - 4))
	editor := theme.CodeBlock.Render(p.editor.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, statement, " ", editor)

	if p.errMsg != "" {
		body += "\n" + theme.Fail.Render("  "+p.errMsg)
	}

	return body
}

func (p *PracticeScreen) renderStatement(width int) string {
	var b strings.Builder

	diff := string(p.problem.Difficulty)
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render(p.problem.Title))
	b.WriteString("  ")
	b.WriteString(theme.DifficultyStyle(diff).Render("[" + diff + "]"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(p.problem.Category))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render(p.problem.Description))

	visible := 0
	for _, tc := range p.problem.TestCases {
		if tc.Hidden {
			continue
		}
		if visible == 0 {
			b.WriteString("\n\n")
			b.WriteString(theme.Hint.Render("Examples:"))
		}
		visible++
		b.WriteString(fmt.Sprintf("\n  %s → %s", tc.Input, tc.Expected))
	}

	return b.String()
}

// renderVerdict shows pass/fail per case, plus the hint when requested.
func (p *PracticeScreen) renderVerdict(width, height int) string {
	var b strings.Builder

	if p.verdict.Solved {
		b.WriteString(theme.Pass.Render("  ✓ All test cases passed!"))
	} else {
		b.WriteString(theme.Fail.Render("  ✗ Some test cases failed"))
	}
	if p.verdict.TierChanged {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  Difficulty adjusted to %s", p.verdict.Tier)))
	}
	b.WriteString("\n\n")

	for _, c := range p.verdict.Result.Cases {
		b.WriteString(renderCase(c, width-6))
		b.WriteString("\n")
	}

	if p.hint != nil {
		hintBody := fmt.Sprintf("Hint (%s):\n%s", p.hint.Concept, p.hint.Text)
		if p.hint.Explanation != "" {
			hintBody += "\n\n" + p.hint.Explanation
		}
		b.WriteString("\n")
		b.WriteString(theme.Card.Width(width - 4).Render(hintBody))
	} else if p.hintErr != nil {
		b.WriteString("\n")
		b.WriteString(theme.Fail.Render("  hint unavailable: " + p.hintErr.Error()))
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func renderCase(c judge.CaseResult, width int) string {
	mark := theme.Pass.Render("✓")
	if !c.Passed {
		mark = theme.Fail.Render("✗")
	}

	line := fmt.Sprintf("  %s %s", mark, c.Input)
	if !c.Passed {
		line += theme.Hint.Render(fmt.Sprintf("   expected %s, got %s", c.Expected, c.Actual))
	}

	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

func renderCentered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (p *PracticeScreen) statementWidth() int {
	w := p.width * 2 / 5
	if w < 30 {
		w = 30
	}
	return w
}

func (p *PracticeScreen) editorWidth() int {
	w := p.width - p.statementWidth() - 5
	if w < 40 {
		w = 40
	}
	return w
}

func (p *PracticeScreen) editorHeight() int {
	h := p.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

// failedCases extracts the failing visible results from an outcome.
func failedCases(out *session.Outcome) []judge.CaseResult {
	if out == nil || out.Result == nil {
		return nil
	}
	var failed []judge.CaseResult
	for _, c := range out.Result.Cases {
		if !c.Passed {
			failed = append(failed, c)
		}
	}
	return failed
}
