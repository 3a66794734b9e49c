package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionFileSchema validates the shape of an imported question file
// before decoding. Content-level rules (answer membership, option counts)
// stay in question.Validate; the schema only rejects structurally broken
// documents with a pointable error.
var questionFileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "string"},
					"text": map[string]any{"type": "string"},
					"kind": map[string]any{
						"type": "string",
						"enum": []any{"single_choice", "multiple_choice", "match", "assertion_reason"},
					},
					"options": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"correct": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"single": map[string]any{"type": "string"},
							"set": map[string]any{
								"type":  "array",
								"items": map[string]any{"type": "string"},
							},
							"pairs": map[string]any{
								"type":                 "object",
								"additionalProperties": map[string]any{"type": "string"},
							},
						},
						"additionalProperties": false,
					},
					"explanation": map[string]any{"type": "string"},
					"reference":   map[string]any{"type": "string"},
					"topic":       map[string]any{"type": "string"},
					"subtopic":    map[string]any{"type": "string"},
				},
				"required":             []any{"id", "text", "kind", "correct"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"questions"},
	"additionalProperties": false,
}

var (
	compiledSchema     *jsonschema.Schema
	compileSchemaOnce  sync.Once
	compileSchemaError error
)

// compiledFileSchema compiles the question-file schema once and caches it.
func compiledFileSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw
		// bytes. Marshal then unmarshal to get a clean representation.
		defBytes, err := json.Marshal(questionFileSchema)
		if err != nil {
			compileSchemaError = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileSchemaError = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://question-file.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileSchemaError = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileSchemaError = c.Compile(schemaURL)
	})
	return compiledSchema, compileSchemaError
}

// validateDocument checks raw JSON against the question-file schema.
func validateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledFileSchema()
	if err != nil {
		return fmt.Errorf("compile question-file schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("question file rejected by schema: %w", err)
	}
	return nil
}
