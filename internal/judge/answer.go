// Package judge holds the single correctness function shared by both
// play modes, and the raw answer union it consumes. Learning mode calls
// it per submission, exam mode calls it once per question at the final
// submit — there is exactly one definition of "correct".
package judge

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

type answerShape int

const (
	shapeNone answerShape = iota
	shapeText
	shapeSet
	shapePairs
)

// RawAnswer is the tagged union of everything a widget can submit: a
// positional letter or literal text, a set of either, or a left→right
// pair mapping. Construct it with Letter, Text, TextSet, or PairMap.
type RawAnswer struct {
	shape answerShape
	text  string
	set   []string
	pairs map[string]string
}

// Letter wraps a positional option letter ("A" is the first displayed
// option). Resolution happens at judge time against the question's
// current option order.
func Letter(s string) RawAnswer {
	return RawAnswer{shape: shapeText, text: s}
}

// Text wraps a literal answer string.
func Text(s string) RawAnswer {
	return RawAnswer{shape: shapeText, text: s}
}

// TextSet wraps a set of letters or literals for multiple-choice.
func TextSet(items []string) RawAnswer {
	return RawAnswer{shape: shapeSet, set: append([]string(nil), items...)}
}

// PairMap wraps a left→right mapping for match questions.
func PairMap(pairs map[string]string) RawAnswer {
	copied := make(map[string]string, len(pairs))
	for k, v := range pairs {
		copied[k] = v
	}
	return RawAnswer{shape: shapePairs, pairs: copied}
}

// IsZero reports whether the answer carries nothing.
func (a RawAnswer) IsZero() bool {
	return a.shape == shapeNone
}

// String renders the answer for event logs and the report breakdown.
func (a RawAnswer) String() string {
	switch a.shape {
	case shapeText:
		return a.text
	case shapeSet:
		sorted := append([]string(nil), a.set...)
		sort.Strings(sorted)
		return strings.Join(sorted, ", ")
	case shapePairs:
		lefts := make([]string, 0, len(a.pairs))
		for k := range a.pairs {
			lefts = append(lefts, k)
		}
		sort.Strings(lefts)
		parts := make([]string, 0, len(lefts))
		for _, k := range lefts {
			parts = append(parts, fmt.Sprintf("%s→%s", k, a.pairs[k]))
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

// rawAnswerJSON is the autosave wire shape.
type rawAnswerJSON struct {
	Kind  string            `json:"kind"`
	Text  string            `json:"text,omitempty"`
	Set   []string          `json:"set,omitempty"`
	Pairs map[string]string `json:"pairs,omitempty"`
}

func (a RawAnswer) MarshalJSON() ([]byte, error) {
	env := rawAnswerJSON{}
	switch a.shape {
	case shapeText:
		env.Kind = "text"
		env.Text = a.text
	case shapeSet:
		env.Kind = "set"
		env.Set = a.set
	case shapePairs:
		env.Kind = "pairs"
		env.Pairs = a.pairs
	default:
		env.Kind = "none"
	}
	return json.Marshal(env)
}

func (a *RawAnswer) UnmarshalJSON(data []byte) error {
	var env rawAnswerJSON
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	switch env.Kind {
	case "text":
		*a = Text(env.Text)
	case "set":
		*a = TextSet(env.Set)
	case "pairs":
		*a = PairMap(env.Pairs)
	case "none", "":
		*a = RawAnswer{}
	default:
		return fmt.Errorf("unknown answer kind %q", env.Kind)
	}
	return nil
}
