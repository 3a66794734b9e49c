package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asengupta/quizdeck/internal/bank"
	"github.com/asengupta/quizdeck/internal/question"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.json>",
	Short: "Check a question file and report malformed entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := bank.LoadJSON(args[0])
		if err != nil {
			return err
		}

		valid, excluded, err := question.Intake(raw)
		for _, ex := range excluded {
			fmt.Printf("SKIP  %s: %s\n", ex.ID, ex.Reason)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], intakeError(err, len(excluded)))
		}
		fmt.Printf("%d valid, %d skipped\n", len(valid), len(excluded))
		return nil
	},
}
