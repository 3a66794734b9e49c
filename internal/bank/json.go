// Package bank loads raw question records from their sources — a JSON
// question file or a SQLite question bank — into the engine's question
// type. The loaders only decode shape; well-formedness is judged by
// question.Intake at the session boundary.
package bank

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/asengupta/quizdeck/internal/question"
)

// questionFile is the JSON document shape.
type questionFile struct {
	Questions []question.Question `json:"questions"`
}

// LoadJSON reads a question file, validates the document against the
// embedded JSON schema, and decodes it. Schema violations name the
// offending path; they are document-level failures, distinct from the
// per-question exclusions intake produces later.
func LoadJSON(path string) ([]question.Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question file: %w", err)
	}

	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc questionFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode question file: %w", err)
	}
	return doc.Questions, nil
}
