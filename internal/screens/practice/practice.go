package practice

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/adityak/codedrill/internal/app/deps"
	"github.com/adityak/codedrill/internal/hintgen"
	"github.com/adityak/codedrill/internal/problems"
	"github.com/adityak/codedrill/internal/router"
	"github.com/adityak/codedrill/internal/screen"
	"github.com/adityak/codedrill/internal/screens/summary"
	"github.com/adityak/codedrill/internal/session"
	"github.com/adityak/codedrill/internal/ui/components"
	"github.com/adityak/codedrill/internal/ui/layout"
)

// phase is the practice screen's state machine.
type phase int

const (
	phaseLoading phase = iota
	phaseEditing
	phaseJudging
	phaseVerdict
	phaseHinting
)

// defaultLanguage is what submissions are judged as. The judge endpoint
// decides what it actually supports.
const defaultLanguage = "python"

// PracticeScreen runs one practice session.
type PracticeScreen struct {
	deps   deps.Deps
	engine *session.Engine

	phase   phase
	problem *problems.Problem
	editor  components.Editor
	verdict *session.Outcome
	hint    *hintgen.Hint
	hintErr error
	errMsg  string

	width  int
	height int
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice screen. The engine starts asynchronously in Init.
func New(d deps.Deps) *PracticeScreen {
	return &PracticeScreen{
		deps:  d,
		phase: phaseLoading,
	}
}

func (p *PracticeScreen) Init() tea.Cmd {
	return p.startEngine()
}

func (p *PracticeScreen) Title() string {
	return "Practice"
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	switch p.phase {
	case phaseEditing:
		return []layout.KeyHint{
			{Key: "Ctrl+S", Description: "Submit"},
			{Key: "Ctrl+R", Description: "Reset code"},
			{Key: "Esc", Description: "Leave"},
		}
	case phaseVerdict:
		hints := []layout.KeyHint{
			{Key: "N", Description: "Next problem"},
		}
		if p.canHint() {
			hints = append(hints, layout.KeyHint{Key: "H", Description: "Hint"})
		}
		hints = append(hints,
			layout.KeyHint{Key: "R", Description: "Retry"},
			layout.KeyHint{Key: "Q", Description: "End session"},
		)
		return hints
	default:
		return nil
	}
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.resizeEditor()
		return p, nil

	case engineReadyMsg:
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		p.engine = msg.Engine
		return p, p.nextProblem()

	case problemMsg:
		if !msg.OK {
			p.errMsg = "no problems available"
			return p, nil
		}
		p.problem = msg.Problem
		p.verdict = nil
		p.hint = nil
		p.hintErr = nil
		p.editor = components.NewEditor(msg.Problem.StarterCode, p.editorWidth(), p.editorHeight())
		p.phase = phaseEditing
		return p, p.editor.Init()

	case verdictMsg:
		if msg.Err != nil {
			// Judge unavailable: back to the editor with the error shown.
			p.errMsg = msg.Err.Error()
			p.phase = phaseEditing
			return p, nil
		}
		p.verdict = msg.Outcome
		p.phase = phaseVerdict
		return p, nil

	case hintMsg:
		p.hint = msg.Hint
		p.hintErr = msg.Err
		p.phase = phaseVerdict
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	if p.phase == phaseEditing {
		var cmd tea.Cmd
		p.editor, cmd = p.editor.Update(msg)
		return p, cmd
	}

	return p, nil
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch p.phase {
	case phaseEditing:
		switch msg.String() {
		case "ctrl+s":
			p.errMsg = ""
			p.phase = phaseJudging
			return p, p.submit()
		case "ctrl+r":
			if p.problem != nil {
				p.editor.SetCode(p.problem.StarterCode)
			}
			return p, nil
		}
		var cmd tea.Cmd
		p.editor, cmd = p.editor.Update(msg)
		return p, cmd

	case phaseVerdict:
		switch msg.String() {
		case "n":
			return p, p.nextProblem()
		case "r":
			p.phase = phaseEditing
			return p, p.editor.Init()
		case "h":
			if p.canHint() {
				p.phase = phaseHinting
				return p, p.requestHint()
			}
		case "q":
			return p, p.endSession()
		}
	}

	return p, nil
}

// startEngine builds the session engine off the UI goroutine.
func (p *PracticeScreen) startEngine() tea.Cmd {
	d := p.deps
	return func() tea.Msg {
		eng, err := session.New(context.Background(), session.Options{
			Progress: d.Progress,
			Attempts: d.Attempts,
			Judge:    d.Judge,
			Source:   d.Source,
		})
		return engineReadyMsg{Engine: eng, Err: err}
	}
}

func (p *PracticeScreen) nextProblem() tea.Cmd {
	eng := p.engine
	return func() tea.Msg {
		prob, ok := eng.Next(context.Background())
		return problemMsg{Problem: prob, OK: ok}
	}
}

func (p *PracticeScreen) submit() tea.Cmd {
	eng := p.engine
	prob := *p.problem
	code := p.editor.Value()
	return func() tea.Msg {
		out, err := eng.Submit(context.Background(), prob, defaultLanguage, code)
		return verdictMsg{Outcome: out, Err: err}
	}
}

func (p *PracticeScreen) requestHint() tea.Cmd {
	d := p.deps
	prob := *p.problem
	code := p.editor.Value()
	failed := failedCases(p.verdict)
	return func() tea.Msg {
		h, err := d.Hints.Hint(context.Background(), prob, code, failed, 1)
		return hintMsg{Hint: h, Err: err}
	}
}

func (p *PracticeScreen) endSession() tea.Cmd {
	sum := p.engine.Summary()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

func (p *PracticeScreen) canHint() bool {
	return p.deps.Hints != nil && p.verdict != nil && !p.verdict.Solved
}

func (p *PracticeScreen) resizeEditor() {
	if p.phase == phaseEditing || p.phase == phaseVerdict {
		p.editor.Resize(p.editorWidth(), p.editorHeight())
	}
}
