// Package spin implements the animated slow-command fixture.
//
// On a TTY it renders a live spinner for the duration, simulating a
// command with in-place progress output. When stdout is captured by a
// harness it degrades to the plain banner-and-sleep behavior so the
// captured bytes stay deterministic. Animation always goes to stderr;
// stdout stays clean for capture.
package spin

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"

	"github.com/fixturelab/mimic/internal/fixture"
	"github.com/fixturelab/mimic/internal/log"
)

// Options configure the spin fixture.
type Options struct {
	// Message shown next to the spinner, and printed as the banner
	// in the non-TTY fallback. Empty means fixture.DefaultStatus.
	Message string
	// Duration of the simulated work. Zero means
	// fixture.DefaultSleepDuration.
	Duration time.Duration
}

func (o Options) withDefaults() Options {
	if o.Message == "" {
		o.Message = fixture.DefaultStatus
	}
	if o.Duration == 0 {
		o.Duration = fixture.DefaultSleepDuration
	}
	return o
}

// Run executes the spin fixture. Input on stdin is ignored entirely;
// like the command it mimics, the fixture finishes only when its work
// duration elapses.
func Run(ctx context.Context, s fixture.Streams, opts Options) error {
	opts = opts.withDefaults()
	l := log.FromContext(ctx)

	if !terminalWriter(s.Out) {
		l.Debug("spin fixture without tty", "duration", opts.Duration)
		return fixture.Sleep(ctx, s, fixture.SleepOptions{
			Duration: opts.Duration,
			Message:  opts.Message,
		})
	}

	l.Debug("spin fixture", "duration", opts.Duration)

	// Detect color profile for stderr (handles NO_COLOR etc.).
	profile := colorprofile.Detect(os.Stderr, os.Environ())

	p := tea.NewProgram(newModel(opts.Message, opts.Duration),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
		tea.WithoutSignalHandler(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run spinner: %w", err)
	}
	return nil
}

// terminalWriter reports whether w is an interactive terminal.
func terminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// doneMsg is sent when the simulated work duration elapses.
type doneMsg struct{}

type model struct {
	spinner  spinner.Model
	message  string
	duration time.Duration
	done     bool
}

var spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))

func newModel(message string, duration time.Duration) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return model{
		spinner:  sp,
		message:  message,
		duration: duration,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		tea.Tick(m.duration, func(time.Time) tea.Msg { return doneMsg{} }),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyPressMsg:
		// A real slow command doesn't stop when keys are mashed.
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

// content is the rendered frame View wraps; empty once done.
func (m model) content() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s", spinnerStyle.Render(m.spinner.View()), m.message)
}

func (m model) View() tea.View {
	return tea.NewView(m.content())
}
