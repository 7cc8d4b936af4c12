// Package deps carries the wired services screens need. It sits in its
// own package so screens can share one bundle without importing app.
package deps

import (
	"github.com/adityak/codedrill/internal/hintgen"
	"github.com/adityak/codedrill/internal/judge"
	"github.com/adityak/codedrill/internal/problems"
	"github.com/adityak/codedrill/internal/progress"
	"github.com/adityak/codedrill/internal/store"
)

// Deps is the dependency bundle handed to screens.
type Deps struct {
	Progress *progress.Store
	Attempts store.AttemptRepo
	Judge    judge.Judge
	Source   problems.Source

	// Hints is nil when no LLM provider is configured; the practice
	// screen hides the hint action in that case.
	Hints *hintgen.Service
}
