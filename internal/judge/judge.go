package judge

import (
	"fmt"
	"os"
	"strings"

	"github.com/asengupta/quizdeck/internal/question"
)

// Judge decides whether ans is correct for q. Comparison is uniformly
// case-insensitive and whitespace-trimmed across kinds. Single-character
// alphabetic answers resolve positionally against the question's current
// option order (A is the first displayed option), so a reshuffle changes
// which letter is correct but never whether the canonical answer is.
// Unknown kinds and shape mismatches judge false with a stderr warning;
// they indicate a malformed question that slipped past intake.
func Judge(q *question.Question, ans RawAnswer) bool {
	switch q.Kind {
	case question.SingleChoice, question.AssertionReason:
		if ans.shape != shapeText {
			warnf("question %s: expected a single answer, got %s", q.ID, shapeName(ans.shape))
			return false
		}
		return judgeSingle(q, ans.text)

	case question.MultipleChoice:
		if ans.shape != shapeSet {
			warnf("question %s: expected an answer set, got %s", q.ID, shapeName(ans.shape))
			return false
		}
		return judgeSet(q, ans.set)

	case question.Match:
		if ans.shape != shapePairs {
			warnf("question %s: expected answer pairs, got %s", q.ID, shapeName(ans.shape))
			return false
		}
		return judgePairs(q, ans.pairs)
	}

	warnf("question %s: unknown kind %q", q.ID, q.Kind)
	return false
}

func judgeSingle(q *question.Question, raw string) bool {
	resolved := resolveOption(q.Options, raw)
	return strings.EqualFold(canon(resolved), canon(q.Correct.Single))
}

// judgeSet compares the submission as a set: same size, every element
// present in the canonical set. Order never matters; partial overlap is
// incorrect.
func judgeSet(q *question.Question, raw []string) bool {
	want := make(map[string]bool, len(q.Correct.Set))
	for _, w := range q.Correct.Set {
		want[canon(w)] = true
	}
	got := make(map[string]bool, len(raw))
	for _, r := range raw {
		got[canon(resolveOption(q.Options, r))] = true
	}
	if len(got) != len(want) {
		return false
	}
	for k := range got {
		if !want[k] {
			return false
		}
	}
	return true
}

// judgePairs requires the full canonical mapping: identical left sets and
// an equal right side per left. A missing or extra pair is incorrect.
func judgePairs(q *question.Question, raw map[string]string) bool {
	want := canonPairs(q.Correct.Pairs)
	got := canonPairs(raw)
	if len(got) != len(want) {
		return false
	}
	for k, v := range want {
		if got[k] != v {
			return false
		}
	}
	return true
}

// resolveOption maps a single alphabetic character to the option at that
// position; anything else is taken literally. A letter beyond the option
// range stays literal and will simply fail the comparison.
func resolveOption(options []string, raw string) string {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) == 1 {
		var idx = -1
		c := trimmed[0]
		switch {
		case c >= 'A' && c <= 'Z':
			idx = int(c - 'A')
		case c >= 'a' && c <= 'z':
			idx = int(c - 'a')
		}
		if idx >= 0 && idx < len(options) {
			return options[idx]
		}
	}
	return trimmed
}

func canon(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func canonPairs(pairs map[string]string) map[string]string {
	out := make(map[string]string, len(pairs))
	for k, v := range pairs {
		out[canon(k)] = canon(v)
	}
	return out
}

func shapeName(s answerShape) string {
	switch s {
	case shapeText:
		return "text"
	case shapeSet:
		return "set"
	case shapePairs:
		return "pairs"
	}
	return "empty"
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
