package cli

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/plotfence/plotfence/pkg/observability"
)

// spinnerHooks drives a Spinner's message from pipeline progress events.
// Completed counts cover rendered and cached figures. Blocks that fail
// before their toolkit runs never advance the counter; the spinner is
// cleared before any summary prints, so the gap is invisible.
type spinnerHooks struct {
	observability.NoopPipelineHooks
	observability.NoopRenderHooks
	observability.NoopCacheHooks

	spinner *Spinner
	total   atomic.Int64
	done    atomic.Int64
}

// watchProgress registers hooks that update the spinner while a document
// is processed. Callers must observability.Reset() when done.
func watchProgress(s *Spinner) {
	h := &spinnerHooks{spinner: s}
	observability.SetPipelineHooks(h)
	observability.SetRenderHooks(h)
	observability.SetCacheHooks(h)
}

func (h *spinnerHooks) OnProcessStart(_ context.Context, blocks int) {
	h.total.Store(int64(blocks))
	h.update()
}

func (h *spinnerHooks) OnRenderComplete(context.Context, string, string, time.Duration, error) {
	h.done.Add(1)
	h.update()
}

func (h *spinnerHooks) OnCacheHit(context.Context, string) {
	h.done.Add(1)
	h.update()
}

func (h *spinnerHooks) update() {
	h.spinner.SetMessage(fmt.Sprintf("Rendering figures (%d/%d)...", h.done.Load(), h.total.Load()))
}
