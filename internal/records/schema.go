package records

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema is the contract with the extraction collaborator.
// Course entries are deliberately permissive: code and name may be
// empty and credits may be absent — such entries degrade to unmatched
// records downstream instead of failing the upload.
var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"student": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{"type": "string"},
				"id":   map[string]any{"type": "string"},
			},
			"required": []any{"name", "id"},
		},
		"courses": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"code":    map[string]any{"type": "string"},
					"name":    map[string]any{"type": "string"},
					"credits": map[string]any{"type": "integer", "minimum": 0},
				},
			},
		},
	},
	"required":             []any{"student", "courses"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateDocument checks raw JSON against the records schema. The
// schema is compiled once and reused across calls.
func validateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compileOnce.Do(func() {
		compiledSchema, compileErr = compileSchema()
	})
	if compileErr != nil {
		return fmt.Errorf("compile records schema: %w", compileErr)
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("records document rejected by schema: %w", err)
	}
	return nil
}

func compileSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value, not raw bytes.
	defBytes, err := json.Marshal(documentSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://records.json", defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile("schema://records.json")
}
