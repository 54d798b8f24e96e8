package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/fixturelab/mimic/internal/fixture"
)

func newPromptCmd() *cobra.Command {
	var (
		delay    time.Duration
		status   string
		question string
	)

	cmd := &cobra.Command{
		Use:     "prompt",
		Short:   "Slow command that asks for confirmation",
		GroupID: GroupFixture,
		Args:    cobra.NoArgs,
		Long: `Print a status line, pause, ask a yes/no question, and block until
one line arrives on stdin. The answer is never inspected: "y", "n",
"banana", an empty line, and a closed stream all end the fixture with
exit code 0.

The question is written without a trailing newline and is fully
flushed before the fixture blocks, so a harness reading incrementally
always sees the complete prompt while input is withheld.`,
		Example: `  mimic prompt                   # Working... / proceed? [y/n]
  mimic prompt --delay 5s        # Slower harness timeout testing
  yes | mimic prompt             # Pipe an answer
  mimic prompt </dev/null        # Closed stdin still exits 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := fixture.PromptOptions{
				Status:   status,
				Question: question,
				Delay:    delay,
			}
			return fixture.Prompt(cmd.Context(), commandStreams(cmd), opts)
		},
	}

	cmd.Flags().DurationVar(&delay, "delay", fixture.DefaultDelay, "pause between status and question (0 means the default 1s)")
	cmd.Flags().StringVar(&status, "status", fixture.DefaultStatus, "status line printed before the pause")
	cmd.Flags().StringVar(&question, "question", fixture.DefaultQuestion, "question printed after the pause (no trailing newline)")

	return cmd
}
