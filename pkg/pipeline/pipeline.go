// Package pipeline walks a markdown document, renders every eligible
// code block into a figure, and substitutes the results back into the
// tree.
//
// # Architecture
//
// A document pass is a single traversal with three phases:
//
//  1. Build: derive a validated figure spec from each fenced code block
//  2. Render: execute specs under a bounded worker pool, consulting the
//     artifact cache first
//  3. Substitute: rewrite the document tree in original block order
//
// Block failures are isolated: a broken figure becomes a visible error
// marker plus a logged diagnostic, and every other block still renders.
// Only problems that precede the pass (configuration, document I/O) are
// fatal to the run.
//
// # Usage
//
//	p := pipeline.New(cfg, buildinfo.Version, logger)
//	doc := document.Parse(source)
//	result, err := p.Process(ctx, doc)
//	if result.Failed() {
//	    // some blocks carry error markers; exit non-zero after writing
//	}
//	err = doc.RenderHTML(w)
package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/plotfence/plotfence/pkg/config"
	"github.com/plotfence/plotfence/pkg/document"
	"github.com/plotfence/plotfence/pkg/errors"
	"github.com/plotfence/plotfence/pkg/figure"
	"github.com/plotfence/plotfence/pkg/observability"
	"github.com/plotfence/plotfence/pkg/render"
)

// Diagnostic describes one failed block.
type Diagnostic struct {
	Index   int    // position among the document's plot blocks, zero-based
	Toolkit string // resolved toolkit tag, empty when no spec was built
	Err     error
}

// Result aggregates one document pass.
type Result struct {
	Blocks    int // fenced code blocks inspected
	Rendered  int // figures produced by a toolkit invocation
	CacheHits int // figures reused from existing artifacts
	Skipped   int // blocks without a toolkit tag, passed through
	Failures  []Diagnostic
}

// Failed reports whether any block failed.
func (r *Result) Failed() bool { return len(r.Failures) > 0 }

// Processor runs document passes. It is stateless between calls apart
// from the shared configuration and logger, so one Processor can serve
// many documents.
type Processor struct {
	cfg      *config.Config
	builder  *figure.Builder
	renderer *render.Renderer
	logger   *log.Logger
}

// New creates a Processor. If logger is nil, the default logger is used.
func New(cfg *config.Config, version string, logger *log.Logger) *Processor {
	if logger == nil {
		logger = log.Default()
	}
	return &Processor{
		cfg:      cfg,
		builder:  figure.NewBuilder(cfg, version, logger),
		renderer: render.New(cfg, logger),
		logger:   logger,
	}
}

// task carries one eligible block through the render phase.
type task struct {
	block *document.CodeBlock
	spec  *figure.Spec

	res *render.Result
	err error
}

// Process renders every eligible block in doc and substitutes the
// results, preserving document order regardless of completion order.
// The Result is complete even when blocks failed; the error is non-nil
// only when the pass as a whole was cut short.
func (p *Processor) Process(ctx context.Context, doc *document.Document) (*Result, error) {
	start := time.Now()
	blocks := doc.Blocks()
	result := &Result{Blocks: len(blocks)}

	// Phase 1: build specs. Runs single-threaded; builders read files
	// but spawn nothing.
	tasks := make([]*task, 0, len(blocks))
	for _, block := range blocks {
		spec, ok, err := p.builder.Build(block)
		if !ok && err == nil {
			result.Skipped++
			continue
		}
		tasks = append(tasks, &task{block: block, spec: spec, err: err})
	}

	observability.Pipeline().OnProcessStart(ctx, len(tasks))

	// Phase 2: render under a bounded pool. Each task writes only its
	// own slot, so completion order is irrelevant.
	jobs := p.cfg.Jobs
	if jobs < 1 {
		jobs = 1
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, jobs)

	for _, t := range tasks {
		if t.err != nil {
			continue
		}
		wg.Add(1)
		go func(t *task) {
			defer wg.Done()
			sem <- struct{}{}        // Acquire
			defer func() { <-sem }() // Release

			t.res, t.err = p.renderer.Render(ctx, t.spec)
		}(t)
	}
	wg.Wait()

	// Phase 3: substitute in document order.
	for i, t := range tasks {
		if t.err != nil {
			tag := ""
			if t.spec != nil {
				tag = t.spec.Toolkit.Tag()
			}
			p.logger.Error("figure failed", "block", i, "toolkit", tag, "err", t.err)
			t.block.ReplaceWithError(errors.UserMessage(t.err))
			result.Failures = append(result.Failures, Diagnostic{Index: i, Toolkit: tag, Err: t.err})
			continue
		}

		t.block.ReplaceWithFigure(&document.Figure{
			Path:    t.res.OutputPath,
			Caption: t.spec.Caption,
			ID:      t.spec.ID,
			Attrs:   t.spec.Attrs,
		})
		if t.spec.IncludeSource {
			t.block.AppendSourceLink(t.res.SourcePath)
		}

		if t.res.CacheHit {
			result.CacheHits++
		} else {
			result.Rendered++
		}
	}

	observability.Pipeline().OnProcessComplete(ctx, result.Rendered, len(result.Failures), time.Since(start), ctx.Err())

	p.logger.Info("document processed",
		"blocks", result.Blocks,
		"rendered", result.Rendered,
		"cached", result.CacheHits,
		"failed", len(result.Failures),
		"duration", time.Since(start))

	return result, ctx.Err()
}
