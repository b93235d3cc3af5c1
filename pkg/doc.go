// Package pkg provides the core libraries for plotfence figure rendering.
//
// # Overview
//
// Plotfence turns fenced code blocks in Markdown documents into rendered
// figures by driving external plotting toolkits. The pkg directory follows
// the document pass end to end:
//
//  1. [document] - Markdown parsing, plot block discovery, figure substitution
//  2. [figure] - Blocks and configuration resolved into renderable specs
//  3. [toolkit] - The closed set of supported plotting toolkits
//  4. [render] - Toolkit subprocess execution over the artifact cache
//  5. [pipeline] - Orchestration (build, render, substitute)
//
// # Architecture
//
// The typical data flow through plotfence:
//
//	Markdown document
//	         ↓
//	    [document] package (parse, find plot blocks)
//	         ↓
//	    [figure] package (assemble scripts, fingerprint)
//	         ↓
//	    [render] package (toolkit subprocess, artifact cache)
//	         ↓
//	    [pipeline] package (worker pool, substitution)
//	         ↓
//	    HTML output with <figure> elements
//
// # Quick Start
//
// Render the plot blocks in a document:
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/plotfence/plotfence/pkg/config"
//	    "github.com/plotfence/plotfence/pkg/document"
//	    "github.com/plotfence/plotfence/pkg/pipeline"
//	)
//
//	source, _ := os.ReadFile("notes.md")
//	doc := document.Parse(source)
//
//	proc := pipeline.New(config.Default(), "v1.0.0", nil)
//	result, err := proc.Process(context.Background(), doc)
//	if err != nil {
//	    // context cancellation; per-figure failures are in result.Failures
//	}
//
//	out, _ := os.Create("notes.html")
//	defer out.Close()
//	_ = doc.RenderHTML(out)
//
// # Main Packages
//
// [document] - goldmark-based Markdown adapter. Finds fenced code blocks,
// parses pandoc-style attribute syntax, and swaps blocks for custom figure,
// source-link, and error nodes rendered at HTML serialization time.
//
// [figure] - Builds figure specifications from blocks and configuration:
// script assembly (header, preamble, body), attribute resolution, and the
// content fingerprint that names artifacts and powers caching.
//
// [toolkit] - The supported plotting toolkits (matplotlib, octave, gnuplot,
// graphviz, ggplot2, d2) as static descriptors: executable names, script
// extensions, comment syntax, output formats, and invocation templates.
//
// [render] - Runs one toolkit subprocess per figure with optional timeouts,
// interprets exit status, and reuses artifacts already on disk.
//
// [artifacts] - The on-disk store for figures and scripts. Presence of an
// artifact is the whole cache state; deleting the directory flushes it.
//
// [pipeline] - Document-order processing with a bounded worker pool and
// per-block failure isolation. Also hosts Clean, which removes a document's
// output directories.
//
// [config] - TOML configuration merged over built-in defaults ([config.Load]).
//
// [errors] - Coded errors shared by every package ([errors.New],
// [errors.Wrap]) plus input validation helpers.
//
// [observability] - Process-wide hook points for pipeline, render, and cache
// events; no-op unless registered.
//
// [buildinfo] - ldflags-injected version identity. The version is stamped
// into every generated script header, so releases re-render figures.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/figure/...   # Specific package
//
// No real plotting toolkit is required: suites use small shell scripts as
// stand-in executables.
//
// [document]: https://pkg.go.dev/github.com/plotfence/plotfence/pkg/document
// [figure]: https://pkg.go.dev/github.com/plotfence/plotfence/pkg/figure
// [toolkit]: https://pkg.go.dev/github.com/plotfence/plotfence/pkg/toolkit
// [render]: https://pkg.go.dev/github.com/plotfence/plotfence/pkg/render
// [artifacts]: https://pkg.go.dev/github.com/plotfence/plotfence/pkg/artifacts
// [pipeline]: https://pkg.go.dev/github.com/plotfence/plotfence/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/plotfence/plotfence/pkg/config
// [errors]: https://pkg.go.dev/github.com/plotfence/plotfence/pkg/errors
// [observability]: https://pkg.go.dev/github.com/plotfence/plotfence/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/plotfence/plotfence/pkg/buildinfo
package pkg
