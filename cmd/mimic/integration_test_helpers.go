//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/spf13/cobra"

	"github.com/fixturelab/mimic/internal/log"
	"github.com/fixturelab/mimic/internal/output"
)

// runFixtureCommand executes a freshly constructed command end to end
// with the given args and stdin, capturing the fixture byte stream.
func runFixtureCommand(t *testing.T, newCmd func() *cobra.Command, args []string, stdin io.Reader) (string, error) {
	t.Helper()

	cmd := newCmd()
	var out bytes.Buffer

	if args == nil {
		// nil makes cobra fall back to os.Args, which holds test flags.
		args = []string{}
	}

	ctx := context.Background()
	ctx = log.WithLogger(ctx, log.New(io.Discard, false, true))
	ctx = output.WithPrinter(ctx, &out)

	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}
