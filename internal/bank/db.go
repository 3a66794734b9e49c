package bank

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/asengupta/quizdeck/internal/question"
)

// Filter narrows a question-bank query. Zero values mean "no constraint".
type Filter struct {
	Topics []string
	Kinds  []question.Kind
	Limit  int
}

// LoadDB reads questions from the bank tables: `questions` holds the
// prompt and classification, `options` the choice rows with an is_correct
// flag, and `match_pairs` the left/right pairs for match questions. Rows
// are assembled into engine questions; malformed rows surface later as
// intake exclusions, not load errors.
func LoadDB(ctx context.Context, db *sql.DB, f Filter) ([]question.Question, error) {
	query, args := buildQuestionQuery(f)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var qs []question.Question
	for rows.Next() {
		var q question.Question
		var explanation, reference, topic, subtopic sql.NullString
		if err := rows.Scan(&q.ID, &q.Text, (*string)(&q.Kind), &explanation, &reference, &topic, &subtopic); err != nil {
			return nil, fmt.Errorf("scan question row: %w", err)
		}
		q.Explanation = explanation.String
		q.Reference = reference.String
		q.Topic = topic.String
		q.Subtopic = subtopic.String
		qs = append(qs, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}

	for i := range qs {
		if qs[i].Kind == question.Match {
			if err := attachPairs(ctx, db, &qs[i]); err != nil {
				return nil, err
			}
			continue
		}
		if err := attachOptions(ctx, db, &qs[i]); err != nil {
			return nil, err
		}
	}

	return qs, nil
}

func buildQuestionQuery(f Filter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, question_text, kind, explanation, reference, topic, subtopic FROM questions`)

	var conds []string
	var args []any
	if len(f.Topics) > 0 {
		conds = append(conds, "topic IN ("+placeholders(len(f.Topics))+")")
		for _, t := range f.Topics {
			args = append(args, t)
		}
	}
	if len(f.Kinds) > 0 {
		conds = append(conds, "kind IN ("+placeholders(len(f.Kinds))+")")
		for _, k := range f.Kinds {
			args = append(args, string(k))
		}
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY id")
	if f.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, f.Limit)
	}
	return sb.String(), args
}

func attachOptions(ctx context.Context, db *sql.DB, q *question.Question) error {
	rows, err := db.QueryContext(ctx,
		`SELECT option_text, is_correct FROM options WHERE question_id = ? ORDER BY id`, q.ID)
	if err != nil {
		return fmt.Errorf("query options for %s: %w", q.ID, err)
	}
	defer rows.Close()

	var correct []string
	for rows.Next() {
		var text string
		var isCorrect bool
		if err := rows.Scan(&text, &isCorrect); err != nil {
			return fmt.Errorf("scan option row for %s: %w", q.ID, err)
		}
		q.Options = append(q.Options, text)
		if isCorrect {
			correct = append(correct, text)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate options for %s: %w", q.ID, err)
	}

	switch q.Kind {
	case question.MultipleChoice:
		q.Correct = question.Answer{Set: correct}
	default:
		if len(correct) > 0 {
			q.Correct = question.Answer{Single: correct[0]}
		}
	}
	return nil
}

func attachPairs(ctx context.Context, db *sql.DB, q *question.Question) error {
	rows, err := db.QueryContext(ctx,
		`SELECT left_item, right_item FROM match_pairs WHERE question_id = ? ORDER BY id`, q.ID)
	if err != nil {
		return fmt.Errorf("query match pairs for %s: %w", q.ID, err)
	}
	defer rows.Close()

	pairs := make(map[string]string)
	for rows.Next() {
		var left, right string
		if err := rows.Scan(&left, &right); err != nil {
			return fmt.Errorf("scan match pair for %s: %w", q.ID, err)
		}
		pairs[left] = right
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate match pairs for %s: %w", q.ID, err)
	}

	q.Correct = question.Answer{Pairs: pairs}
	return nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
