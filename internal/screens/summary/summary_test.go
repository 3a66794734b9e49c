package summary

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/asengupta/quizdeck/internal/judge"
	"github.com/asengupta/quizdeck/internal/question"
	sess "github.com/asengupta/quizdeck/internal/session"
)

func revealConfig() sess.Config {
	cfg := sess.DefaultConfig()
	cfg.ShowCorrectAnswer = true
	cfg.ExplanationMode = sess.ExplainNone
	return cfg
}

func TestRevealCorrectAnswer_SingleChoice(t *testing.T) {
	qs := []question.Question{{
		ID:      "q1",
		Text:    "Capital of France?",
		Kind:    question.SingleChoice,
		Options: []string{"Paris", "Lyon"},
		Correct: question.Answer{Single: "Paris"},
	}}
	sum := sess.Summary{
		Score: 0, Total: 1,
		Ledger: map[int]sess.LedgerEntry{
			0: {Correct: false, Answer: judge.Text("Lyon")},
		},
	}

	view := New(sum, qs, revealConfig()).View(80, 30)
	if !strings.Contains(view, "correct: Paris") {
		t.Error("wrong single-choice answer should reveal the canonical answer")
	}
}

func TestRevealCorrectAnswer_MultipleChoice(t *testing.T) {
	qs := []question.Question{{
		ID:      "q1",
		Text:    "Select the primary colors",
		Kind:    question.MultipleChoice,
		Options: []string{"Red", "Green", "Blue"},
		Correct: question.Answer{Set: []string{"Red", "Blue"}},
	}}
	sum := sess.Summary{
		Score: 0, Total: 1,
		Ledger: map[int]sess.LedgerEntry{
			0: {Correct: false, Answer: judge.TextSet([]string{"Green"})},
		},
	}

	view := New(sum, qs, revealConfig()).View(80, 30)
	if !strings.Contains(view, "correct: Red, Blue") {
		t.Error("wrong multiple-choice answer should reveal the full correct set")
	}
}

func TestRevealCorrectAnswer_Match(t *testing.T) {
	qs := []question.Question{{
		ID:   "q1",
		Text: "Match country to capital",
		Kind: question.Match,
		Correct: question.Answer{Pairs: map[string]string{
			"France": "Paris",
			"Spain":  "Madrid",
		}},
	}}
	sum := sess.Summary{
		Score: 0, Total: 1,
		Ledger: map[int]sess.LedgerEntry{
			0: {Correct: false, Answer: judge.PairMap(map[string]string{"France": "Madrid", "Spain": "Paris"})},
		},
	}

	view := New(sum, qs, revealConfig()).View(80, 30)
	if !strings.Contains(view, "correct: France→Paris, Spain→Madrid") {
		t.Error("wrong match answer should reveal all pairs in left-key order")
	}
}

func TestRevealSkippedWhenCorrect(t *testing.T) {
	qs := []question.Question{{
		ID:      "q1",
		Text:    "Capital of France?",
		Kind:    question.SingleChoice,
		Options: []string{"Paris", "Lyon"},
		Correct: question.Answer{Single: "Paris"},
	}}
	sum := sess.Summary{
		Score: 1, Total: 1,
		Ledger: map[int]sess.LedgerEntry{
			0: {Correct: true, Answer: judge.Text("Paris")},
		},
	}

	view := New(sum, qs, revealConfig()).View(80, 30)
	if strings.Contains(view, "correct:") {
		t.Error("correct entries should not repeat the canonical answer")
	}
}

func TestRenderRow_TruncatesOnRuneBoundary(t *testing.T) {
	qs := []question.Question{{
		ID:      "q1",
		Text:    strings.Repeat("é", 80),
		Kind:    question.SingleChoice,
		Options: []string{"a", "b"},
		Correct: question.Answer{Single: "a"},
	}}
	sum := sess.Summary{
		Score: 1, Total: 1,
		Ledger: map[int]sess.LedgerEntry{
			0: {Correct: true, Answer: judge.Text("a")},
		},
	}

	view := New(sum, qs, revealConfig()).View(40, 30)
	if !utf8.ValidString(view) {
		t.Fatal("truncating a multibyte question text produced invalid UTF-8")
	}
	if !strings.Contains(view, "...") {
		t.Error("long question text should be truncated with an ellipsis")
	}
}
