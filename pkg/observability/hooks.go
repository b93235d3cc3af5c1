// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about document processing, figure rendering, and cache
// operations.
//
// # Architecture
//
// The package uses a simple hooks pattern: one interface per event category,
// a no-op default for each, and a process-wide registry that main populates.
// Hooks are registered by the application, never by library packages, which
// keeps the rendering packages free of backend imports and avoids cycles.
// Any backend works (OpenTelemetry, Prometheus, plain counters in tests).
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Render().OnRenderStart(ctx, toolkit, format)
//	// ... run the toolkit interpreter ...
//	observability.Render().OnRenderComplete(ctx, toolkit, format, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from document processing.
type PipelineHooks interface {
	// OnProcessStart records the start of a document pass with the number
	// of eligible figure blocks found.
	OnProcessStart(ctx context.Context, blockCount int)

	// OnProcessComplete records the end of a document pass.
	OnProcessComplete(ctx context.Context, rendered, failed int, duration time.Duration, err error)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from figure rendering subprocesses.
type RenderHooks interface {
	// OnRenderStart records the start of a toolkit invocation.
	OnRenderStart(ctx context.Context, toolkit, format string)

	// OnRenderComplete records the end of a toolkit invocation.
	OnRenderComplete(ctx context.Context, toolkit, format string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from the on-disk figure cache.
type CacheHooks interface {
	// OnCacheHit records a figure served from an existing artifact.
	OnCacheHit(ctx context.Context, toolkit string)

	// OnCacheMiss records a figure that required rendering.
	OnCacheMiss(ctx context.Context, toolkit string)

	// OnCacheSet records a newly written artifact.
	OnCacheSet(ctx context.Context, toolkit string, size int64)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnProcessStart(context.Context, int)                               {}
func (NoopPipelineHooks) OnProcessComplete(context.Context, int, int, time.Duration, error) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string, string)                          {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)        {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)       {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int64) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	renderHooks   RenderHooks   = NoopRenderHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any documents are processed.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any figures are rendered.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	renderHooks = NoopRenderHooks{}
	cacheHooks = NoopCacheHooks{}
}
