package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fixturelab/mimic/internal/fixture"
	"github.com/fixturelab/mimic/internal/log"
	"github.com/fixturelab/mimic/internal/output"
)

var (
	// Global flags
	verbose bool
	quiet   bool
)

// Command group IDs for organizing help output
const (
	GroupFixture = "fixture"
	GroupUtility = "utility"
)

// rootCmd represents the base command. Run bare, it performs the
// canonical delay-prompt fixture so `mimic` can drop in wherever a
// dummy slow-confirmation command is needed, with no arguments at all.
var rootCmd = &cobra.Command{
	Use:   "mimic",
	Short: "Mock commands for testing interactive process harnesses",
	Long: `mimic provides fixture commands that stand in for slow, interactive
programs when testing process wrappers, expect-style harnesses, and
interactive-automation tools.

Every fixture writes deterministic bytes to stdout and treats a closed
stdin as a normal way to finish. Diagnostics go to stderr only.

Run without a subcommand, mimic prints "Working...", pauses one second,
asks "Do you want to proceed? [y/n] ", and waits for one line of input.
The answer is discarded; any line, or closing stdin, ends the fixture
with exit code 0.`,
	Example: `  mimic                          # The default delay prompt
  echo y | mimic                 # Answer is read and discarded
  mimic prompt --delay 5s        # Same fixture, slower
  mimic sleep --duration 10s     # A plain slow command
  mimic script scenario.toml     # A scripted interaction`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	Args:                       cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// No fixture has run yet, so it is safe to build the
		// context here from the parsed global flags.
		ctx := cmd.Context()
		ctx = log.WithLogger(ctx, log.New(os.Stderr, verbose, quiet))
		ctx = output.WithPrinter(ctx, cmd.OutOrStdout())
		cmd.SetContext(ctx)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return fixture.Prompt(cmd.Context(), commandStreams(cmd), fixture.PromptOptions{})
	},
}

// Execute runs the root command.
//
// No signal handling is installed on purpose: fixtures must die the
// way the naive programs they imitate do, leaving termination to the
// hosting environment.
func Execute() {
	rootCmd.SetContext(context.Background())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log fixture events to stderr")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all stderr diagnostics")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupFixture, Title: "Fixture Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
	)

	// Fixture commands
	rootCmd.AddCommand(newPromptCmd())
	rootCmd.AddCommand(newSleepCmd())
	rootCmd.AddCommand(newEchoCmd())
	rootCmd.AddCommand(newSpinCmd())
	rootCmd.AddCommand(newScriptCmd())

	// Utility commands
	rootCmd.AddCommand(newListCmd())
}

// commandStreams builds fixture streams from a command's stdin and the
// context printer, so tests can swap both.
func commandStreams(cmd *cobra.Command) fixture.Streams {
	return fixture.Streams{
		In:  cmd.InOrStdin(),
		Out: output.FromContext(cmd.Context()).Writer(),
	}
}
