// Package script runs multi-step fixtures described in TOML files.
//
// A script is an ordered list of steps, each doing exactly one thing:
//
//	[[step]]
//	print = "Working..."
//
//	[[step]]
//	sleep = "1s"
//
//	[[step]]
//	prompt = "Do you want to proceed? [y/n] "
//
//	[[step]]
//	read = true
//
// print writes a line, prompt writes text without a trailing newline,
// sleep blocks for the given duration, and read consumes one stdin
// line (a closed stream counts as answered). Scripts let harness
// authors model interaction shapes the built-in fixtures don't cover
// without recompiling anything.
package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/fixturelab/mimic/internal/fixture"
	"github.com/fixturelab/mimic/internal/log"
)

// Duration wraps time.Duration so TOML values like "1s" parse.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Step is a single script action. Exactly one field may be set.
type Step struct {
	Print  string   `toml:"print"`
	Prompt string   `toml:"prompt"`
	Sleep  Duration `toml:"sleep"`
	Read   bool     `toml:"read"`
}

func (s Step) actions() int {
	n := 0
	if s.Print != "" {
		n++
	}
	if s.Prompt != "" {
		n++
	}
	if s.Sleep != 0 {
		n++
	}
	if s.Read {
		n++
	}
	return n
}

// Script is an ordered list of steps.
type Script struct {
	Steps []Step `toml:"step"`
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	var s Script
	meta, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse %s: unknown key %q", path, undecoded[0].String())
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &s, nil
}

func (s *Script) validate() error {
	if len(s.Steps) == 0 {
		return errors.New("script has no steps")
	}
	for i, step := range s.Steps {
		if n := step.actions(); n != 1 {
			return fmt.Errorf("step %d: want exactly one of print, prompt, sleep, read (got %d)", i+1, n)
		}
	}
	return nil
}

// Run executes the steps in order against the given streams.
func (s *Script) Run(ctx context.Context, streams fixture.Streams) error {
	streams = streams.WithDefaults()
	l := log.FromContext(ctx)
	l.Debug("running script", "steps", len(s.Steps))

	// One reader for the whole script so buffered bytes survive
	// across read steps.
	stdin := bufio.NewReader(streams.In)

	for i, step := range s.Steps {
		var err error
		switch {
		case step.Print != "":
			_, err = fmt.Fprintln(streams.Out, step.Print)
		case step.Prompt != "":
			_, err = fmt.Fprint(streams.Out, step.Prompt)
		case step.Sleep != 0:
			streams.Sleep(time.Duration(step.Sleep))
		case step.Read:
			err = fixture.ReadLine(stdin)
		}
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}
