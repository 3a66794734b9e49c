package cmd

import (
	"github.com/spf13/cobra"

	"github.com/asengupta/quizdeck/internal/app"
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Start a learning session directly",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.StartLearn)
	},
}
