package question

import (
	"errors"
	"math/rand"
	"sort"
	"testing"
)

func validSingle(id string) Question {
	return Question{
		ID:      id,
		Text:    "Capital of France?",
		Kind:    SingleChoice,
		Options: []string{"Paris", "Lyon", "Nice"},
		Correct: Answer{Single: "Paris"},
		Topic:   "Geography",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Question)
		wantErr bool
	}{
		{"valid", func(q *Question) {}, false},
		{"empty text", func(q *Question) { q.Text = "  " }, true},
		{"unknown kind", func(q *Question) { q.Kind = "essay" }, true},
		{"one option", func(q *Question) { q.Options = []string{"Paris"} }, true},
		{"no options", func(q *Question) { q.Options = nil }, true},
		{"duplicate options only", func(q *Question) { q.Options = []string{"Paris", "paris"} }, true},
		{"empty option", func(q *Question) { q.Options = []string{"Paris", ""} }, true},
		{"answer not among options", func(q *Question) { q.Correct.Single = "Berlin" }, true},
		{"empty answer", func(q *Question) { q.Correct.Single = "" }, true},
		{"answer matches case-insensitively", func(q *Question) { q.Correct.Single = "PARIS" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validSingle("q1")
			tt.mutate(&q)
			err := Validate(q)
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidate_MultipleChoice(t *testing.T) {
	q := Question{
		ID:      "mc",
		Text:    "Select the primary colors",
		Kind:    MultipleChoice,
		Options: []string{"Red", "Green", "Blue"},
		Correct: Answer{Set: []string{"Red", "Blue"}},
	}
	if err := Validate(q); err != nil {
		t.Fatalf("valid MC rejected: %v", err)
	}

	q.Correct.Set = nil
	if err := Validate(q); err == nil {
		t.Error("expected error for empty correct set")
	}

	q.Correct.Set = []string{"Red", "Yellow"}
	if err := Validate(q); err == nil {
		t.Error("expected error for set member not among options")
	}
}

func TestValidate_Match(t *testing.T) {
	q := Question{
		ID:      "m",
		Text:    "Match country to capital",
		Kind:    Match,
		Correct: Answer{Pairs: map[string]string{"France": "Paris"}},
	}
	if err := Validate(q); err != nil {
		t.Fatalf("valid match rejected: %v", err)
	}

	q.Correct.Pairs = nil
	if err := Validate(q); err == nil {
		t.Error("expected error for empty pairs")
	}

	q.Correct.Pairs = map[string]string{"France": ""}
	if err := Validate(q); err == nil {
		t.Error("expected error for empty pair side")
	}
}

func TestIntake_FiltersMalformed(t *testing.T) {
	raw := []Question{
		validSingle("q1"),
		validSingle("q2"),
		{ID: "bad", Text: "Broken", Kind: SingleChoice, Options: []string{"only"}, Correct: Answer{Single: "only"}},
		validSingle("q4"),
		validSingle("q5"),
	}

	valid, excluded, err := Intake(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(valid) != 4 {
		t.Errorf("valid count = %d, want 4", len(valid))
	}
	if len(excluded) != 1 {
		t.Fatalf("excluded count = %d, want 1", len(excluded))
	}
	if excluded[0].ID != "bad" {
		t.Errorf("excluded ID = %q, want %q", excluded[0].ID, "bad")
	}
	if excluded[0].Reason != "needs at least 2 options" {
		t.Errorf("exclusion reason = %q", excluded[0].Reason)
	}
}

func TestIntake_AllMalformed(t *testing.T) {
	raw := []Question{
		{ID: "a", Text: "", Kind: SingleChoice},
		{ID: "b", Text: "x", Kind: "essay"},
	}
	_, excluded, err := Intake(raw)
	if !errors.Is(err, ErrNoValidQuestions) {
		t.Fatalf("error = %v, want ErrNoValidQuestions", err)
	}
	if len(excluded) != 2 {
		t.Errorf("excluded count = %d, want 2", len(excluded))
	}
}

func TestIntake_TopicDefaults(t *testing.T) {
	q := validSingle("q1")
	q.Topic = ""
	q.Subtopic = ""

	valid, _, err := Intake([]Question{q})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if valid[0].Topic != DefaultTopic {
		t.Errorf("topic = %q, want %q", valid[0].Topic, DefaultTopic)
	}
	if valid[0].Subtopic != DefaultSubtopic {
		t.Errorf("subtopic = %q, want %q", valid[0].Subtopic, DefaultSubtopic)
	}
}

func TestIntake_DeepCopies(t *testing.T) {
	q := validSingle("q1")
	valid, _, err := Intake([]Question{q})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	valid[0].Options[0] = "mutated"
	if q.Options[0] != "Paris" {
		t.Error("intake leaked a reference to the caller's options")
	}
}

func TestShuffleOptions_PreservesMembership(t *testing.T) {
	q := validSingle("q1")
	before := append([]string(nil), q.Options...)

	rng := rand.New(rand.NewSource(7))
	ShuffleOptions(&q, rng)

	after := append([]string(nil), q.Options...)
	sort.Strings(before)
	sort.Strings(after)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("shuffle changed membership: %v vs %v", before, after)
		}
	}
}

func TestAnswerString(t *testing.T) {
	tests := []struct {
		name   string
		answer Answer
		want   string
	}{
		{"empty", Answer{}, ""},
		{"single", Answer{Single: "Paris"}, "Paris"},
		{"set", Answer{Set: []string{"Red", "Blue"}}, "Red, Blue"},
		{"pairs in left-key order", Answer{Pairs: map[string]string{
			"Spain":  "Madrid",
			"France": "Paris",
		}}, "France→Paris, Spain→Madrid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.answer.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMatchItems(t *testing.T) {
	q := Question{
		Kind: Match,
		Correct: Answer{Pairs: map[string]string{
			"France": "Paris",
			"Spain":  "Madrid",
			"Italy":  "Rome",
		}},
	}

	lefts := q.LeftItems()
	want := []string{"France", "Italy", "Spain"}
	for i := range want {
		if lefts[i] != want[i] {
			t.Fatalf("lefts = %v, want %v", lefts, want)
		}
	}

	rights := q.RightItems()
	if len(rights) != 3 {
		t.Errorf("rights count = %d, want 3", len(rights))
	}
}
