package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/fixturelab/mimic/internal/fixture"
)

func newSleepCmd() *cobra.Command {
	var (
		duration time.Duration
		message  string
		silent   bool
	)

	cmd := &cobra.Command{
		Use:     "sleep",
		Short:   "Slow command that just blocks",
		GroupID: GroupFixture,
		Args:    cobra.NoArgs,
		Long: `Print a banner line, then block for the duration and exit 0. Stdin is
never touched. Use this where a harness needs a child that is simply
busy: timeout paths, progress polling, kill-and-reap logic.`,
		Example: `  mimic sleep                      # "Sleeping for 2s..." then 2s pause
  mimic sleep --duration 10s       # Longer pause
  mimic sleep --message "building" # Custom banner
  mimic sleep --silent             # No output at all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := fixture.SleepOptions{
				Duration: duration,
				Message:  message,
				Quiet:    silent,
			}
			return fixture.Sleep(cmd.Context(), commandStreams(cmd), opts)
		},
	}

	cmd.Flags().DurationVar(&duration, "duration", fixture.DefaultSleepDuration, "how long the fixture blocks (0 means the default 2s)")
	cmd.Flags().StringVar(&message, "message", "", "banner line (default derived from duration)")
	cmd.Flags().BoolVar(&silent, "silent", false, "suppress the banner")

	return cmd
}
