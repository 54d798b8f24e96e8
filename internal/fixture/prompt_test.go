package fixture

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

const wantStdout = "Working...\nDo you want to proceed? [y/n] "

func TestPrompt_AnswerIndependence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stdin string
	}{
		{"yes", "y\n"},
		{"no", "n\n"},
		{"arbitrary text", "banana\n"},
		{"empty line", "\n"},
		{"partial line then close", "y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			s := Streams{
				In:    strings.NewReader(tt.stdin),
				Out:   &out,
				Sleep: func(time.Duration) {},
			}

			if err := Prompt(context.Background(), s, PromptOptions{}); err != nil {
				t.Fatalf("Prompt failed: %v", err)
			}
			if got := out.String(); got != wantStdout {
				t.Errorf("stdout = %q, want %q", got, wantStdout)
			}
		})
	}
}

func TestPrompt_ClosedStdin(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	s := Streams{
		In:    strings.NewReader(""),
		Out:   &out,
		Sleep: func(time.Duration) {},
	}

	if err := Prompt(context.Background(), s, PromptOptions{}); err != nil {
		t.Fatalf("Prompt with closed stdin failed: %v", err)
	}
	if got := out.String(); got != wantStdout {
		t.Errorf("stdout = %q, want %q", got, wantStdout)
	}
}

// TestPrompt_Ordering pins the write/sleep/read sequence: the status
// line is complete before the sleep starts, and the question appears
// only after the sleep returns.
func TestPrompt_Ordering(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	var atSleep string
	s := Streams{
		In:  strings.NewReader("y\n"),
		Out: &out,
		Sleep: func(d time.Duration) {
			atSleep = out.String()
			if d != DefaultDelay {
				t.Errorf("slept %v, want %v", d, DefaultDelay)
			}
		},
	}

	if err := Prompt(context.Background(), s, PromptOptions{}); err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}
	if atSleep != "Working...\n" {
		t.Errorf("output at sleep = %q, want status line only", atSleep)
	}
	if got := out.String(); got != wantStdout {
		t.Errorf("final stdout = %q, want %q", got, wantStdout)
	}
}

// TestPrompt_FlushBeforeBlock verifies the question is fully written
// before the fixture blocks on stdin: input is withheld until the
// full prompt has been observed on stdout.
func TestPrompt_FlushBeforeBlock(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	out := newSyncBuffer()
	s := Streams{
		In:    pr,
		Out:   out,
		Sleep: func(time.Duration) {},
	}

	done := make(chan error, 1)
	go func() {
		done <- Prompt(context.Background(), s, PromptOptions{})
	}()

	// Wait for the full prompt while the fixture blocks reading.
	deadline := time.After(5 * time.Second)
	for out.String() != wantStdout {
		select {
		case err := <-done:
			t.Fatalf("Prompt returned before input was provided: %v", err)
		case <-deadline:
			t.Fatalf("prompt never fully written, stdout = %q", out.String())
		case <-time.After(time.Millisecond):
		}
	}

	if _, err := io.WriteString(pw, "y\n"); err != nil {
		t.Fatalf("write stdin: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}
}

func TestPrompt_RealDelay(t *testing.T) {
	t.Parallel()

	delay := 50 * time.Millisecond
	var out bytes.Buffer
	s := Streams{
		In:  strings.NewReader("\n"),
		Out: &out,
		// Sleep left nil: the real clock is under test.
	}

	start := time.Now()
	if err := Prompt(context.Background(), s, PromptOptions{Delay: delay}); err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < delay {
		t.Errorf("finished after %v, want at least %v", elapsed, delay)
	}
}

func TestPrompt_CustomText(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	s := Streams{
		In:    strings.NewReader("\n"),
		Out:   &out,
		Sleep: func(time.Duration) {},
	}
	opts := PromptOptions{
		Status:   "Deploying...",
		Question: "Continue? ",
	}

	if err := Prompt(context.Background(), s, opts); err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}
	want := "Deploying...\nContinue? "
	if got := out.String(); got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestPrompt_WriteError(t *testing.T) {
	t.Parallel()

	s := Streams{
		In:    strings.NewReader("\n"),
		Out:   failingWriter{},
		Sleep: func(time.Duration) {},
	}

	if err := Prompt(context.Background(), s, PromptOptions{}); err == nil {
		t.Fatal("Prompt should propagate stdout write errors")
	}
}
