package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/payday-labs/sndeploy/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func TestSpinnerSink(t *testing.T) {
	color.NoColor = true
	ctx := context.Background()

	t.Run("cache hit prints nothing", func(t *testing.T) {
		var buf bytes.Buffer
		sink := NewSpinnerSink(&buf)

		sink.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageCacheHit, Message: "Found local contract: 0x1"})

		assert.Empty(t, buf.String())
	})

	t.Run("stage transitions print completion marks", func(t *testing.T) {
		var buf bytes.Buffer
		sink := NewSpinnerSink(&buf)

		sink.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageCompiling, Message: "Compiling foo", Spinner: true})
		sink.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageSubmitting, Message: "Submitting", Spinner: true})
		sink.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageCompleted, Message: "done"})
		sink.Stop()

		assert.Contains(t, buf.String(), "✓ Compiled")
		assert.Contains(t, buf.String(), "✓ Submitted")
	})

	t.Run("info and error", func(t *testing.T) {
		var buf bytes.Buffer
		sink := NewSpinnerSink(&buf)

		sink.Info("hello")
		sink.Error("boom")

		assert.Contains(t, buf.String(), "hello\n")
		assert.Contains(t, buf.String(), "boom\n")
	})
}
