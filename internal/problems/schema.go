package problems

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// listSchema is the JSON Schema every remote problem-list payload must
// satisfy before it is converted to typed problems. Validating once at the
// boundary means downstream code never probes fields defensively.
var listSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"id", "title", "difficulty", "category", "description", "test_cases"},
		"properties": map[string]any{
			"id":         map[string]any{"type": "string", "minLength": 1},
			"title":      map[string]any{"type": "string", "minLength": 1},
			"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			"category":   map[string]any{"type": "string"},
			"topics": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"description":  map[string]any{"type": "string"},
			"starter_code": map[string]any{"type": "string"},
			"test_cases": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"input", "expected_output"},
					"properties": map[string]any{
						"input":           map[string]any{"type": "string"},
						"expected_output": map[string]any{"type": "string"},
						"hidden":          map[string]any{"type": "boolean"},
					},
				},
			},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateList checks raw payload bytes against the problem-list schema.
func validateList(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://problem-list.json", listSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://problem-list.json")
	})
	if compileErr != nil {
		return fmt.Errorf("compile problem-list schema: %w", compileErr)
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
