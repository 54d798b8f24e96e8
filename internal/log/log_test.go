package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestPrintf_Quiet(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, false, true)
	l.Printf("hello %s\n", "world")
	l.Println("more")

	if buf.Len() != 0 {
		t.Errorf("quiet logger wrote %q, want nothing", buf.String())
	}
}

func TestPrintf_Normal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, false, false)
	l.Printf("hello %s\n", "world")

	if got := buf.String(); got != "hello world\n" {
		t.Errorf("Printf wrote %q, want %q", got, "hello world\n")
	}
}

func TestDebug_OnlyWhenVerbose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		verbose bool
		want    string
	}{
		{"verbose prints pairs", true, "running fixture=prompt delay=1s\n"},
		{"non-verbose is silent", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			l := New(&buf, tt.verbose, false)
			l.Debug("running", "fixture", "prompt", "delay", "1s")

			if got := buf.String(); got != tt.want {
				t.Errorf("Debug wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDebug_OddArgs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, true, false)
	l.Debug("msg", "dangling")

	got := buf.String()
	if !strings.HasPrefix(got, "msg") {
		t.Errorf("Debug wrote %q, want message prefix", got)
	}
	if strings.Contains(got, "dangling") {
		t.Errorf("Debug wrote unpaired key %q", got)
	}
}

func TestFromContext_Fallback(t *testing.T) {
	t.Parallel()

	l := FromContext(context.Background())
	// Must not panic and must not write anywhere visible.
	l.Printf("dropped")
	l.Debug("dropped")
	if l.Verbose() {
		t.Error("fallback logger should not be verbose")
	}
}

func TestWithLogger_RoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, true, false)
	ctx := WithLogger(context.Background(), l)

	if got := FromContext(ctx); got != l {
		t.Error("FromContext did not return attached logger")
	}
}
