package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/fixturelab/mimic/internal/spin"
)

func newSpinCmd() *cobra.Command {
	var (
		duration time.Duration
		message  string
	)

	cmd := &cobra.Command{
		Use:     "spin",
		Short:   "Slow command with animated progress",
		GroupID: GroupFixture,
		Args:    cobra.NoArgs,
		Long: `Simulate a long-running command that shows live progress. On a TTY an
animated spinner renders to stderr for the duration; when stdout is
captured the fixture degrades to the plain banner and pause of
'mimic sleep', keeping the captured bytes deterministic.

Key presses are ignored while spinning, matching a real busy command.`,
		Example: `  mimic spin                     # 2s spinner (or plain banner when piped)
  mimic spin --duration 30s      # Exercise a harness's progress handling
  mimic spin | cat               # Deterministic non-TTY output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := spin.Options{
				Message:  message,
				Duration: duration,
			}
			return spin.Run(cmd.Context(), commandStreams(cmd), opts)
		},
	}

	cmd.Flags().DurationVar(&duration, "duration", 0, "how long the fixture spins (0 means the default 2s)")
	cmd.Flags().StringVar(&message, "message", "", "text next to the spinner (default \"Working...\")")

	return cmd
}
