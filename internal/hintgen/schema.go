package hintgen

import "github.com/adityak/codedrill/internal/llm"

// HintSchema defines the JSON schema for LLM hint responses.
var HintSchema = &llm.Schema{
	Name:        "coding-hint",
	Description: "A graded hint for a stuck learner, without revealing the full solution",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint": map[string]any{
				"type":        "string",
				"description": "A short nudge toward the fix. Point at the flaw, never paste corrected code.",
			},
			"concept": map[string]any{
				"type":        "string",
				"description": "The underlying concept or technique the learner should review, in a few words",
			},
			"level": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     3,
				"description": "How revealing the hint is: 1 gentle nudge, 2 names the flawed line or case, 3 outlines the approach",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "One or two sentences on why the failing cases fail, in plain language",
			},
		},
		"required":             []any{"hint", "concept", "level", "explanation"},
		"additionalProperties": false,
	},
}
