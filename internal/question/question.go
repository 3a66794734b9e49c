// Package question defines the question model shared by both play modes:
// the kind taxonomy, the canonical correct-answer shapes, and intake
// validation that turns raw loaded records into a playable list.
package question

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// Kind is the question taxonomy.
type Kind string

const (
	SingleChoice    Kind = "single_choice"
	MultipleChoice  Kind = "multiple_choice"
	Match           Kind = "match"
	AssertionReason Kind = "assertion_reason"
)

// Known reports whether k is a recognized kind.
func (k Kind) Known() bool {
	switch k {
	case SingleChoice, MultipleChoice, Match, AssertionReason:
		return true
	}
	return false
}

// Defaults applied at intake when classification fields are missing.
const (
	DefaultTopic    = "Unknown Topic"
	DefaultSubtopic = "General"
)

// Answer is the canonical correct answer. Exactly one field is set,
// matching the question kind: Single for single-choice and
// assertion-reason, Set for multiple-choice, Pairs for match.
type Answer struct {
	Single string            `json:"single,omitempty"`
	Set    []string          `json:"set,omitempty"`
	Pairs  map[string]string `json:"pairs,omitempty"`
}

// String renders the canonical answer for display: the single value, the
// set joined by commas, or the pairs as left→right in left-key order.
func (a Answer) String() string {
	switch {
	case a.Single != "":
		return a.Single
	case len(a.Set) > 0:
		return strings.Join(a.Set, ", ")
	case len(a.Pairs) > 0:
		lefts := make([]string, 0, len(a.Pairs))
		for k := range a.Pairs {
			lefts = append(lefts, k)
		}
		sort.Strings(lefts)
		parts := make([]string, 0, len(lefts))
		for _, left := range lefts {
			parts = append(parts, fmt.Sprintf("%s→%s", left, a.Pairs[left]))
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

// Question is one playable question.
type Question struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	Kind        Kind     `json:"kind"`
	Options     []string `json:"options,omitempty"`
	Correct     Answer   `json:"correct"`
	Explanation string   `json:"explanation,omitempty"`
	Reference   string   `json:"reference,omitempty"`
	Topic       string   `json:"topic,omitempty"`
	Subtopic    string   `json:"subtopic,omitempty"`
}

// Clone returns a deep copy. Sessions own their question lists so that
// option reshuffles never leak into the caller's slice.
func (q Question) Clone() Question {
	out := q
	if q.Options != nil {
		out.Options = append([]string(nil), q.Options...)
	}
	if q.Correct.Set != nil {
		out.Correct.Set = append([]string(nil), q.Correct.Set...)
	}
	if q.Correct.Pairs != nil {
		pairs := make(map[string]string, len(q.Correct.Pairs))
		for k, v := range q.Correct.Pairs {
			pairs[k] = v
		}
		out.Correct.Pairs = pairs
	}
	return out
}

// CloneAll deep-copies a question list.
func CloneAll(qs []Question) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = q.Clone()
	}
	return out
}

// Shuffle permutes the question list in place.
func Shuffle(qs []Question, rng *rand.Rand) {
	rng.Shuffle(len(qs), func(i, j int) {
		qs[i], qs[j] = qs[j], qs[i]
	})
}

// ShuffleOptions permutes one question's options in place. Correctness is
// unaffected: the canonical answer is stored by content, and letter
// submissions resolve against the displayed order at judge time.
func ShuffleOptions(q *Question, rng *rand.Rand) {
	rng.Shuffle(len(q.Options), func(i, j int) {
		q.Options[i], q.Options[j] = q.Options[j], q.Options[i]
	})
}

// LeftItems returns the match question's left column in stable order.
func (q Question) LeftItems() []string {
	lefts := make([]string, 0, len(q.Correct.Pairs))
	for k := range q.Correct.Pairs {
		lefts = append(lefts, k)
	}
	sort.Strings(lefts)
	return lefts
}

// RightItems returns the distinct right-side options in stable order.
func (q Question) RightItems() []string {
	seen := make(map[string]bool, len(q.Correct.Pairs))
	rights := make([]string, 0, len(q.Correct.Pairs))
	for _, v := range q.Correct.Pairs {
		if !seen[v] {
			seen[v] = true
			rights = append(rights, v)
		}
	}
	sort.Strings(rights)
	return rights
}
