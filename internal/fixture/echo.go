package fixture

import (
	"bufio"
	"context"
	"fmt"

	"github.com/fixturelab/mimic/internal/log"
)

// Echo reads stdin line by line and writes each line back to stdout
// until the stream closes. Harnesses use it to verify bidirectional
// piping: every byte fed in must come back out, in order, before the
// fixture exits 0.
func Echo(ctx context.Context, s Streams) error {
	s = s.WithDefaults()
	l := log.FromContext(ctx)

	lines := 0
	scanner := bufio.NewScanner(s.In)
	for scanner.Scan() {
		if _, err := fmt.Fprintln(s.Out, scanner.Text()); err != nil {
			return fmt.Errorf("write line: %w", err)
		}
		lines++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	l.Debug("echo fixture done", "lines", lines)
	return nil
}
