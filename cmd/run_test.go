package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/asengupta/quizdeck/internal/question"
)

func TestIntakeError_EmptySource(t *testing.T) {
	err := intakeError(question.ErrNoValidQuestions, 0)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "returned no questions") {
		t.Errorf("err = %q, want the empty-source wording", err)
	}
}

func TestIntakeError_AllExcluded(t *testing.T) {
	err := intakeError(question.ErrNoValidQuestions, 3)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "all 3 questions failed validation") {
		t.Errorf("err = %q, want the all-invalid wording with the count", err)
	}
}

func TestIntakeError_DistinguishesCauses(t *testing.T) {
	empty := intakeError(question.ErrNoValidQuestions, 0)
	invalid := intakeError(question.ErrNoValidQuestions, 2)
	if empty.Error() == invalid.Error() {
		t.Errorf("empty source and all-invalid input produce the same message: %q", empty)
	}
}

func TestIntakeError_PassesThroughOtherErrors(t *testing.T) {
	sentinel := errors.New("disk on fire")
	if got := intakeError(sentinel, 0); got != sentinel {
		t.Errorf("err = %v, want the original error unchanged", got)
	}
}
