package bank

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/asengupta/quizdeck/internal/question"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSON_Valid(t *testing.T) {
	path := writeTempFile(t, `{
		"questions": [
			{
				"id": "geo-1",
				"text": "Capital of France?",
				"kind": "single_choice",
				"options": ["Paris", "Lyon"],
				"correct": {"single": "Paris"},
				"topic": "Geography"
			},
			{
				"id": "geo-2",
				"text": "Match country to capital",
				"kind": "match",
				"correct": {"pairs": {"France": "Paris", "Spain": "Madrid"}}
			}
		]
	}`)

	qs, err := LoadJSON(path)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	require.Equal(t, question.SingleChoice, qs[0].Kind)
	require.Equal(t, "Paris", qs[0].Correct.Single)
	require.Equal(t, question.Match, qs[1].Kind)
	require.Len(t, qs[1].Correct.Pairs, 2)
}

func TestLoadJSON_SchemaRejections(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `{{{`},
		{"missing questions key", `{"items": []}`},
		{"empty questions", `{"questions": []}`},
		{"unknown kind", `{"questions": [{"id": "x", "text": "t", "kind": "essay", "correct": {}}]}`},
		{"missing required field", `{"questions": [{"id": "x", "kind": "match", "correct": {}}]}`},
		{"unknown question field", `{"questions": [{"id": "x", "text": "t", "kind": "match", "correct": {}, "bogus": 1}]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempFile(t, tc.content)
			_, err := LoadJSON(path)
			require.Error(t, err)
		})
	}
}

func TestLoadJSON_MissingFile(t *testing.T) {
	_, err := LoadJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func openBankDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file::memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	schema := `
	CREATE TABLE questions (
		id TEXT PRIMARY KEY,
		question_text TEXT NOT NULL,
		kind TEXT NOT NULL,
		explanation TEXT,
		reference TEXT,
		topic TEXT,
		subtopic TEXT
	);
	CREATE TABLE options (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		question_id TEXT NOT NULL,
		option_text TEXT NOT NULL,
		is_correct INTEGER NOT NULL DEFAULT 0
	);
	CREATE TABLE match_pairs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		question_id TEXT NOT NULL,
		left_item TEXT NOT NULL,
		right_item TEXT NOT NULL
	);`
	_, err = db.Exec(schema)
	require.NoError(t, err)
	return db
}

func seedBank(t *testing.T, db *sql.DB) {
	t.Helper()
	stmts := []struct {
		q    string
		args []any
	}{
		{`INSERT INTO questions VALUES ('q1', 'Capital of France?', 'single_choice', 'Paris is the capital.', NULL, 'Geography', 'Europe')`, nil},
		{`INSERT INTO options (question_id, option_text, is_correct) VALUES ('q1', 'Paris', 1), ('q1', 'Lyon', 0), ('q1', 'Nice', 0)`, nil},
		{`INSERT INTO questions VALUES ('q2', 'Select the primary colors', 'multiple_choice', NULL, NULL, 'Art', NULL)`, nil},
		{`INSERT INTO options (question_id, option_text, is_correct) VALUES ('q2', 'Red', 1), ('q2', 'Green', 0), ('q2', 'Blue', 1)`, nil},
		{`INSERT INTO questions VALUES ('q3', 'Match country to capital', 'match', NULL, NULL, 'Geography', NULL)`, nil},
		{`INSERT INTO match_pairs (question_id, left_item, right_item) VALUES ('q3', 'France', 'Paris'), ('q3', 'Spain', 'Madrid')`, nil},
	}
	for _, s := range stmts {
		_, err := db.Exec(s.q, s.args...)
		require.NoError(t, err)
	}
}

func TestLoadDB_AssemblesRows(t *testing.T) {
	db := openBankDB(t)
	seedBank(t, db)

	qs, err := LoadDB(context.Background(), db, Filter{})
	require.NoError(t, err)
	require.Len(t, qs, 3)

	byID := make(map[string]question.Question)
	for _, q := range qs {
		byID[q.ID] = q
	}

	q1 := byID["q1"]
	require.Equal(t, question.SingleChoice, q1.Kind)
	require.Equal(t, []string{"Paris", "Lyon", "Nice"}, q1.Options)
	require.Equal(t, "Paris", q1.Correct.Single)
	require.Equal(t, "Paris is the capital.", q1.Explanation)

	q2 := byID["q2"]
	require.Equal(t, question.MultipleChoice, q2.Kind)
	require.ElementsMatch(t, []string{"Red", "Blue"}, q2.Correct.Set)

	q3 := byID["q3"]
	require.Equal(t, question.Match, q3.Kind)
	require.Equal(t, map[string]string{"France": "Paris", "Spain": "Madrid"}, q3.Correct.Pairs)
}

func TestLoadDB_Filter(t *testing.T) {
	db := openBankDB(t)
	seedBank(t, db)
	ctx := context.Background()

	byTopic, err := LoadDB(ctx, db, Filter{Topics: []string{"Geography"}})
	require.NoError(t, err)
	require.Len(t, byTopic, 2)

	byKind, err := LoadDB(ctx, db, Filter{Kinds: []question.Kind{question.Match}})
	require.NoError(t, err)
	require.Len(t, byKind, 1)
	require.Equal(t, "q3", byKind[0].ID)

	limited, err := LoadDB(ctx, db, Filter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
}

func TestLoadDB_FeedsIntake(t *testing.T) {
	db := openBankDB(t)
	seedBank(t, db)

	// A broken row (no options) loads fine but is excluded at intake.
	_, err := db.Exec(`INSERT INTO questions VALUES ('bad', 'Broken question', 'single_choice', NULL, NULL, NULL, NULL)`)
	require.NoError(t, err)

	qs, err := LoadDB(context.Background(), db, Filter{})
	require.NoError(t, err)
	require.Len(t, qs, 4)

	valid, excluded, err := question.Intake(qs)
	require.NoError(t, err)
	require.Len(t, valid, 3)
	require.Len(t, excluded, 1)
	require.Equal(t, "bad", excluded[0].ID)
}
