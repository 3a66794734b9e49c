package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asengupta/quizdeck/internal/app"
	"github.com/asengupta/quizdeck/internal/bank"
	"github.com/asengupta/quizdeck/internal/config"
	"github.com/asengupta/quizdeck/internal/question"
	"github.com/asengupta/quizdeck/internal/store"
)

// runApp opens the store, loads and validates the question set, and
// launches the TUI in the given start mode.
func runApp(cmd *cobra.Command, mode app.StartMode) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	raw, err := loadQuestions(cmd.Context(), cmd, cfg)
	if err != nil {
		return err
	}

	questions, excluded, err := question.Intake(raw)
	for _, ex := range excluded {
		fmt.Fprintf(os.Stderr, "warning: skipping question %s: %s\n", ex.ID, ex.Reason)
	}
	if err != nil {
		return intakeError(err, len(excluded))
	}

	return app.Run(app.Options{
		Questions:    questions,
		Config:       cfg,
		EventRepo:    st.EventRepo(),
		SnapshotRepo: st.SnapshotRepo(),
		StartMode:    mode,
	})
}

// intakeError turns an intake failure into a message that tells an empty
// source apart from a source whose every question failed validation. The
// per-question reasons were already printed by the caller.
func intakeError(err error, excluded int) error {
	if !errors.Is(err, question.ErrNoValidQuestions) {
		return err
	}
	if excluded == 0 {
		return errors.New("the question source returned no questions")
	}
	return fmt.Errorf("all %d questions failed validation", excluded)
}

// loadQuestions picks the question source in priority order: the
// --questions flag, the configured JSON file, then the configured bank
// database.
func loadQuestions(ctx context.Context, cmd *cobra.Command, cfg config.Config) ([]question.Question, error) {
	if p, _ := cmd.Flags().GetString("questions"); p != "" {
		return bank.LoadJSON(p)
	}
	if cfg.Questions.File != "" {
		return bank.LoadJSON(cfg.Questions.File)
	}
	if cfg.Questions.Bank != "" {
		db, err := sql.Open("sqlite", cfg.Questions.Bank)
		if err != nil {
			return nil, fmt.Errorf("open question bank: %w", err)
		}
		defer db.Close()
		return bank.LoadDB(ctx, db, bank.Filter{})
	}
	return nil, fmt.Errorf("no question source: pass --questions or set questions.file / questions.bank in %s", config.DefaultPath())
}
