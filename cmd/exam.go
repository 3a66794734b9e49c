package cmd

import (
	"github.com/spf13/cobra"

	"github.com/asengupta/quizdeck/internal/app"
)

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Start a timed exam directly",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.StartExam)
	},
}
