package main

import (
	"github.com/spf13/cobra"

	"github.com/fixturelab/mimic/internal/fixture"
)

func newEchoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "echo",
		Short:   "Mirror stdin lines back to stdout",
		GroupID: GroupFixture,
		Args:    cobra.NoArgs,
		Long: `Read stdin line by line and write every line back to stdout until the
stream closes. Exits 0 in all cases, including an immediately closed
stdin. Use this to verify a harness's bidirectional piping: everything
fed in must come back out, in order.`,
		Example: `  printf 'a\nb\n' | mimic echo   # Prints a, then b
  mimic echo </dev/null          # Prints nothing, exits 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fixture.Echo(cmd.Context(), commandStreams(cmd))
		},
	}

	return cmd
}
