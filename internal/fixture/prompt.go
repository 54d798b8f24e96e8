package fixture

import (
	"bufio"
	"context"
	"fmt"
	"time"

	"github.com/fixturelab/mimic/internal/log"
)

// Defaults for the delay prompt. Harnesses in the wild grep for these
// exact strings, so changing them is a breaking change.
const (
	DefaultStatus   = "Working..."
	DefaultQuestion = "Do you want to proceed? [y/n] "
	DefaultDelay    = time.Second
)

// PromptOptions configure the delay prompt. Zero values reproduce the
// canonical fixture: status line, one second pause, y/n question.
// There is no way to request an empty string or a zero pause; a
// fixture that skips the delay would no longer be this fixture.
type PromptOptions struct {
	Status   string
	Question string
	Delay    time.Duration
}

func (o PromptOptions) withDefaults() PromptOptions {
	if o.Status == "" {
		o.Status = DefaultStatus
	}
	if o.Question == "" {
		o.Question = DefaultQuestion
	}
	if o.Delay == 0 {
		o.Delay = DefaultDelay
	}
	return o
}

// Prompt simulates a slow command that asks for manual confirmation:
// it prints the status line, block-sleeps for the delay, prints the
// question without a trailing newline, then blocks reading one line
// from stdin. The answer's content is discarded; "y", "n", an empty
// line, and a closed stream all finish the fixture the same way.
//
// The question is never written before the delay has elapsed, and no
// read happens before the question is written.
func Prompt(ctx context.Context, s Streams, opts PromptOptions) error {
	s = s.WithDefaults()
	opts = opts.withDefaults()
	l := log.FromContext(ctx)

	l.Debug("prompt fixture", "delay", opts.Delay)

	if _, err := fmt.Fprintln(s.Out, opts.Status); err != nil {
		return fmt.Errorf("write status: %w", err)
	}

	s.Sleep(opts.Delay)

	if _, err := fmt.Fprint(s.Out, opts.Question); err != nil {
		return fmt.Errorf("write question: %w", err)
	}

	return ReadLine(bufio.NewReader(s.In))
}
