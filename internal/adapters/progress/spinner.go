package progress

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/payday-labs/sndeploy/internal/usecase"
)

// SpinnerSink reports deployment stages with a spinner while work is in flight
type SpinnerSink struct {
	spinner      *spinner.Spinner
	out          io.Writer
	currentStage string
	stageStart   time.Time
	// spinning tracks spinner stages even when the writer is not a terminal
	// and the spinner itself stays disabled
	spinning bool
}

// NewSpinnerSink creates a spinner-based progress sink writing to out
func NewSpinnerSink(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerSink{
		spinner: s,
		out:     out,
	}
}

// OnProgress handles progress events
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if r.currentStage != "" && r.currentStage != event.Stage {
		r.completeStage()
	}
	if r.currentStage != event.Stage {
		r.currentStage = event.Stage
		r.stageStart = time.Now()
	}

	if event.Spinner {
		r.spinning = true
		r.spinner.Suffix = " " + event.Message
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		return
	}

	// Cache hits are rendered with the command result
	r.Stop()
	if event.Stage == usecase.StageCompleted {
		r.currentStage = ""
	}
}

// Info prints an info message
func (r *SpinnerSink) Info(message string) {
	r.pause(func() { color.New(color.FgCyan).Fprintln(r.out, message) })
}

// Error prints an error message
func (r *SpinnerSink) Error(message string) {
	r.pause(func() { color.New(color.FgRed).Fprintln(r.out, message) })
}

// Stop halts the spinner if it is still running
func (r *SpinnerSink) Stop() {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

func (r *SpinnerSink) pause(fn func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	fn()
	if wasActive {
		r.spinner.Start()
	}
}

// completeStage prints a check line for a finished spinner stage
func (r *SpinnerSink) completeStage() {
	if !r.spinning {
		return
	}
	r.spinning = false
	r.Stop()
	duration := time.Since(r.stageStart).Round(time.Millisecond)
	fmt.Fprintf(r.out, "%s %s (%s)\n",
		color.New(color.FgGreen).Sprint("✓"),
		stageLabel(r.currentStage),
		duration)
}

func stageLabel(stage string) string {
	switch stage {
	case usecase.StageCompiling:
		return "Compiled"
	case usecase.StageSubmitting:
		return "Submitted"
	case usecase.StageWaiting:
		return "Accepted"
	default:
		return stage
	}
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
