package fixture

import (
	"context"
	"fmt"
	"time"

	"github.com/fixturelab/mimic/internal/log"
)

// DefaultSleepDuration matches the slow commands this fixture usually
// stands in for: long enough that a harness's "still running" paths
// trigger, short enough to keep test suites fast.
const DefaultSleepDuration = 2 * time.Second

// SleepOptions configure the sleep fixture.
type SleepOptions struct {
	// Duration is how long the fixture blocks. Zero means
	// DefaultSleepDuration.
	Duration time.Duration
	// Message is the banner printed before sleeping. Empty means a
	// generated "Sleeping for <duration>..." line. Set Quiet to
	// suppress the banner entirely.
	Message string
	Quiet   bool
}

// Sleep simulates a plain slow command: an optional banner line, then
// a blocking pause, then exit. It never touches stdin.
func Sleep(ctx context.Context, s Streams, opts SleepOptions) error {
	s = s.WithDefaults()
	if opts.Duration == 0 {
		opts.Duration = DefaultSleepDuration
	}
	l := log.FromContext(ctx)
	l.Debug("sleep fixture", "duration", opts.Duration)

	if !opts.Quiet {
		msg := opts.Message
		if msg == "" {
			msg = fmt.Sprintf("Sleeping for %s...", opts.Duration)
		}
		if _, err := fmt.Fprintln(s.Out, msg); err != nil {
			return fmt.Errorf("write banner: %w", err)
		}
	}

	s.Sleep(opts.Duration)
	return nil
}
