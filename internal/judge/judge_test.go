package judge

import (
	"encoding/json"
	"testing"

	"github.com/asengupta/quizdeck/internal/question"
)

func singleChoice(options []string, correct string) question.Question {
	return question.Question{
		ID:      "q",
		Text:    "Capital of France?",
		Kind:    question.SingleChoice,
		Options: options,
		Correct: question.Answer{Single: correct},
	}
}

func TestJudge_LetterResolvesPositionally(t *testing.T) {
	q := singleChoice([]string{"Lyon", "Paris", "Nice"}, "Paris")

	tests := []struct {
		letter string
		want   bool
	}{
		{"A", false},
		{"B", true},
		{"b", true},
		{"C", false},
		{"Z", false}, // beyond range, stays literal
	}
	for _, tt := range tests {
		if got := Judge(&q, Letter(tt.letter)); got != tt.want {
			t.Errorf("Judge(Letter(%q)) = %v, want %v", tt.letter, got, tt.want)
		}
	}
}

func TestJudge_LettersFollowReshuffle(t *testing.T) {
	q := singleChoice([]string{"Paris", "Lyon"}, "Paris")
	if !Judge(&q, Letter("A")) {
		t.Fatal("expected A correct before reshuffle")
	}

	q.Options = []string{"Lyon", "Paris"}
	if Judge(&q, Letter("A")) {
		t.Error("A should be wrong after reshuffle")
	}
	if !Judge(&q, Letter("B")) {
		t.Error("B should be right after reshuffle")
	}
}

func TestJudge_TextCaseAndWhitespace(t *testing.T) {
	q := singleChoice([]string{"Paris", "Lyon"}, "Paris")

	for _, raw := range []string{"Paris", "paris", "PARIS", "  Paris  "} {
		if !Judge(&q, Text(raw)) {
			t.Errorf("Judge(Text(%q)) = false, want true", raw)
		}
	}
	if Judge(&q, Text("Lyon")) {
		t.Error("wrong option judged correct")
	}
}

func TestJudge_AssertionReason(t *testing.T) {
	q := question.Question{
		ID:   "ar",
		Kind: question.AssertionReason,
		Options: []string{
			"Both true, reason explains assertion",
			"Both true, reason does not explain assertion",
			"Assertion true, reason false",
			"Assertion false, reason true",
		},
		Correct: question.Answer{Single: "Assertion true, reason false"},
	}
	if !Judge(&q, Letter("C")) {
		t.Error("expected C correct")
	}
	if Judge(&q, Letter("A")) {
		t.Error("expected A incorrect")
	}
}

func TestJudge_SetOrderIndependent(t *testing.T) {
	q := question.Question{
		ID:      "mc",
		Kind:    question.MultipleChoice,
		Options: []string{"Paris", "Lyon", "Marseille"},
		Correct: question.Answer{Set: []string{"Paris", "Lyon"}},
	}

	tests := []struct {
		name string
		set  []string
		want bool
	}{
		{"same order", []string{"Paris", "Lyon"}, true},
		{"reversed", []string{"Lyon", "Paris"}, true},
		{"letters", []string{"B", "A"}, true},
		{"mixed case", []string{"LYON", "paris"}, true},
		{"partial", []string{"Paris"}, false},
		{"superset", []string{"Paris", "Lyon", "Marseille"}, false},
		{"disjoint", []string{"Marseille"}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Judge(&q, TextSet(tt.set)); got != tt.want {
				t.Errorf("Judge(TextSet(%v)) = %v, want %v", tt.set, got, tt.want)
			}
		})
	}
}

func TestJudge_SingleElementSet(t *testing.T) {
	q := question.Question{
		ID:      "mc1",
		Kind:    question.MultipleChoice,
		Options: []string{"Paris", "Lyon"},
		Correct: question.Answer{Set: []string{"Paris"}},
	}
	if !Judge(&q, TextSet([]string{"A"})) {
		t.Error("single-element set via letter should be correct")
	}
	if Judge(&q, TextSet([]string{"A", "B"})) {
		t.Error("superset should be incorrect")
	}
}

func TestJudge_MatchPairs(t *testing.T) {
	q := question.Question{
		ID:   "m",
		Kind: question.Match,
		Correct: question.Answer{Pairs: map[string]string{
			"France": "Paris",
			"Spain":  "Madrid",
		}},
	}

	tests := []struct {
		name  string
		pairs map[string]string
		want  bool
	}{
		{"exact", map[string]string{"France": "Paris", "Spain": "Madrid"}, true},
		{"case-insensitive", map[string]string{"FRANCE": "paris", "spain": "MADRID"}, true},
		{"one wrong", map[string]string{"France": "Madrid", "Spain": "Paris"}, false},
		{"partial", map[string]string{"France": "Paris"}, false},
		{"extra key", map[string]string{"France": "Paris", "Spain": "Madrid", "Italy": "Rome"}, false},
		{"empty", map[string]string{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Judge(&q, PairMap(tt.pairs)); got != tt.want {
				t.Errorf("Judge(PairMap(%v)) = %v, want %v", tt.pairs, got, tt.want)
			}
		})
	}
}

func TestJudge_ShapeMismatchIsFalse(t *testing.T) {
	q := singleChoice([]string{"Paris", "Lyon"}, "Paris")

	if Judge(&q, TextSet([]string{"Paris"})) {
		t.Error("set answer on single-choice should be false")
	}
	if Judge(&q, PairMap(map[string]string{"a": "b"})) {
		t.Error("pairs answer on single-choice should be false")
	}
	if Judge(&q, RawAnswer{}) {
		t.Error("empty answer should be false")
	}
}

func TestJudge_UnknownKindIsFalse(t *testing.T) {
	q := question.Question{ID: "x", Kind: "essay"}
	if Judge(&q, Text("anything")) {
		t.Error("unknown kind should judge false")
	}
}

func TestRawAnswer_JSONRoundTrip(t *testing.T) {
	q := question.Question{
		ID:   "m",
		Kind: question.Match,
		Correct: question.Answer{Pairs: map[string]string{
			"France": "Paris",
		}},
	}

	answers := []RawAnswer{
		Letter("B"),
		Text("Paris"),
		TextSet([]string{"A", "C"}),
		PairMap(map[string]string{"France": "Paris"}),
	}

	for _, a := range answers {
		data, err := json.Marshal(a)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var back RawAnswer
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if a.String() != back.String() {
			t.Errorf("round trip changed answer: %q vs %q", a.String(), back.String())
		}
	}

	// Verdicts survive the round trip.
	orig := PairMap(map[string]string{"France": "Paris"})
	data, _ := json.Marshal(orig)
	var back RawAnswer
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if Judge(&q, orig) != Judge(&q, back) {
		t.Error("verdict changed after JSON round trip")
	}
}
