package exam

import (
	"github.com/asengupta/quizdeck/internal/judge"
	"github.com/asengupta/quizdeck/internal/question"
)

// Results is the aggregate handed to the report renderer at submission.
// The engine computes it; formatting is the renderer's problem.
type Results struct {
	TotalQuestions   int
	TotalAnswered    int
	CorrectCount     int
	Percentage       float64
	TimeSpentSeconds int
}

// QuestionResult is one row of the detailed report breakdown.
type QuestionResult struct {
	Index      int
	Question   question.Question
	Answered   bool
	Bookmarked bool
	UserAnswer judge.RawAnswer
	Correct    bool
}

// Breakdown re-derives per-question correctness for the detailed report.
// It goes through judge.Judge — the same function that scored the exam —
// so the report can never disagree with the Results it accompanies.
func (s *Session) Breakdown() []QuestionResult {
	rows := make([]QuestionResult, len(s.Questions))
	for i := range s.Questions {
		ans, ok := s.answers[i]
		rows[i] = QuestionResult{
			Index:      i,
			Question:   s.Questions[i],
			Answered:   ok,
			Bookmarked: s.bookmarks[i],
			UserAnswer: ans,
			Correct:    ok && judge.Judge(&s.Questions[i], ans),
		}
	}
	return rows
}
