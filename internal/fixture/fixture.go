// Package fixture implements the mock commands mimic runs.
//
// A fixture stands in for a real program when exercising tools that
// wrap interactive processes: it produces a fixed byte stream on
// stdout, pauses like a slow command would, and blocks on stdin the
// way a confirmation-gated command does. The bytes a fixture writes
// are its contract; nothing here may buffer, reorder, or decorate
// them.
//
// End-of-stream on stdin is always a normal way for a fixture to
// finish. A harness that closes the child's stdin without answering
// is simulating exactly the case fixtures exist to reproduce, so it
// must not look like a failure. The check is a narrow io.EOF match;
// real read errors still propagate.
package fixture

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// Streams holds a fixture's endpoints. Zero values mean the real
// process streams and a real clock; tests inject buffers and a fake
// sleep instead.
type Streams struct {
	In    io.Reader
	Out   io.Writer
	Sleep func(time.Duration)
}

// WithDefaults fills unset endpoints with the real process streams
// and clock.
func (s Streams) WithDefaults() Streams {
	if s.In == nil {
		s.In = os.Stdin
	}
	if s.Out == nil {
		s.Out = os.Stdout
	}
	if s.Sleep == nil {
		s.Sleep = time.Sleep
	}
	return s
}

// ReadLine consumes one line from r. A closed stream, with or
// without a partial line, is normal termination; real read errors
// propagate. This is the single home of the EOF policy fixtures
// share.
func ReadLine(r *bufio.Reader) error {
	_, err := r.ReadString('\n')
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("read stdin: %w", err)
}
