package cli

import (
	"github.com/spf13/cobra"
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trivia",
		Short: "Turn-based multiple-choice trivia for the terminal",
	}

	cmd.AddCommand(NewPlayCmd())
	return cmd
}
