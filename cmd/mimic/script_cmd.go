package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fixturelab/mimic/internal/script"
)

func newScriptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "script FILE",
		Short:   "Run a scripted fixture from a TOML file",
		GroupID: GroupFixture,
		Args:    cobra.ExactArgs(1),
		Long: `Execute a fixture described in a TOML file: an ordered list of steps,
each exactly one of print (line to stdout), prompt (text without a
trailing newline), sleep (a duration like "1s"), or read (consume one
stdin line, closed stream tolerated).

Example script reproducing the default delay prompt:

  [[step]]
  print = "Working..."

  [[step]]
  sleep = "1s"

  [[step]]
  prompt = "Do you want to proceed? [y/n] "

  [[step]]
  read = true`,
		Example: `  mimic script scenario.toml
  echo y | mimic script scenario.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return fmt.Errorf("load script: %w", err)
			}
			return s.Run(cmd.Context(), commandStreams(cmd))
		},
	}

	return cmd
}
