package practice

import (
	"github.com/adityak/codedrill/internal/hintgen"
	"github.com/adityak/codedrill/internal/problems"
	"github.com/adityak/codedrill/internal/session"
)

// engineReadyMsg is sent when the session engine has been created.
type engineReadyMsg struct {
	Engine *session.Engine
	Err    error
}

// problemMsg is sent when the next problem is ready.
type problemMsg struct {
	Problem *problems.Problem
	OK      bool
}

// verdictMsg is sent when the judge finishes a submission.
type verdictMsg struct {
	Outcome *session.Outcome
	Err     error
}

// hintMsg is sent when hint generation completes.
type hintMsg struct {
	Hint *hintgen.Hint
	Err  error
}
