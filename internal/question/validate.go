package question

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoValidQuestions is returned when intake leaves nothing playable.
var ErrNoValidQuestions = errors.New("no valid questions")

// ValidationError describes why one question was rejected at intake.
type ValidationError struct {
	ID     string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("question %s: %s", e.ID, e.Reason)
}

// Exclusion is one intake rejection, surfaced to the user so a malformed
// question never fails the whole load silently.
type Exclusion struct {
	ID     string
	Reason string
}

// Validate checks one question for well-formedness: non-empty text, a
// known kind, enough distinct options, and a correct answer that is
// actually reachable from the displayed options.
func Validate(q Question) error {
	if strings.TrimSpace(q.Text) == "" {
		return &ValidationError{ID: q.ID, Reason: "question text is empty"}
	}
	if !q.Kind.Known() {
		return &ValidationError{ID: q.ID, Reason: fmt.Sprintf("unknown kind %q", q.Kind)}
	}

	switch q.Kind {
	case Match:
		if len(q.Correct.Pairs) == 0 {
			return &ValidationError{ID: q.ID, Reason: "match question has no pairs"}
		}
		for k, v := range q.Correct.Pairs {
			if strings.TrimSpace(k) == "" || strings.TrimSpace(v) == "" {
				return &ValidationError{ID: q.ID, Reason: "match pair has an empty side"}
			}
		}
		return nil

	case MultipleChoice:
		if err := validateOptions(q); err != nil {
			return err
		}
		if len(q.Correct.Set) == 0 {
			return &ValidationError{ID: q.ID, Reason: "correct answer set is empty"}
		}
		for _, want := range q.Correct.Set {
			if !optionExists(q.Options, want) {
				return &ValidationError{ID: q.ID, Reason: fmt.Sprintf("correct answer %q is not among the options", want)}
			}
		}
		return nil

	default: // SingleChoice, AssertionReason
		if err := validateOptions(q); err != nil {
			return err
		}
		if strings.TrimSpace(q.Correct.Single) == "" {
			return &ValidationError{ID: q.ID, Reason: "correct answer is empty"}
		}
		if !optionExists(q.Options, q.Correct.Single) {
			return &ValidationError{ID: q.ID, Reason: fmt.Sprintf("correct answer %q is not among the options", q.Correct.Single)}
		}
		return nil
	}
}

func validateOptions(q Question) error {
	distinct := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return &ValidationError{ID: q.ID, Reason: "option text is empty"}
		}
		distinct[strings.ToLower(strings.TrimSpace(opt))] = true
	}
	if len(distinct) < 2 {
		return &ValidationError{ID: q.ID, Reason: "needs at least 2 options"}
	}
	return nil
}

func optionExists(options []string, want string) bool {
	for _, opt := range options {
		if strings.EqualFold(strings.TrimSpace(opt), strings.TrimSpace(want)) {
			return true
		}
	}
	return false
}

// Intake filters raw loaded questions into a playable list. Malformed
// questions are excluded with a reason rather than failing the load; the
// survivors are deep-copied and get topic defaults applied. An empty
// survivor set is the one fatal case.
func Intake(raw []Question) ([]Question, []Exclusion, error) {
	var valid []Question
	var excluded []Exclusion

	for _, q := range raw {
		if err := Validate(q); err != nil {
			var verr *ValidationError
			reason := err.Error()
			if errors.As(err, &verr) {
				reason = verr.Reason
			}
			excluded = append(excluded, Exclusion{ID: q.ID, Reason: reason})
			continue
		}
		clean := q.Clone()
		if strings.TrimSpace(clean.Topic) == "" {
			clean.Topic = DefaultTopic
		}
		if strings.TrimSpace(clean.Subtopic) == "" {
			clean.Subtopic = DefaultSubtopic
		}
		valid = append(valid, clean)
	}

	if len(valid) == 0 {
		return nil, excluded, ErrNoValidQuestions
	}
	return valid, excluded, nil
}
