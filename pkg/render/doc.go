// Package render drives plotting toolkit subprocesses to produce figure
// artifacts.
//
// # Overview
//
// A [Renderer] takes validated figure specs and turns each one into an
// image file on disk:
//
//   - Resolves the toolkit interpreter (configured override or PATH)
//   - Persists the assembled script next to the figure
//   - Invokes the interpreter via the toolkit's command template
//   - Verifies the expected artifact exists afterwards
//
//	r := render.New(cfg, logger)
//	res, err := r.Render(ctx, spec)  // res.OutputPath, res.SourcePath
//
// # Caching
//
// Artifact paths are derived from the spec fingerprint, so an existing
// file at the output path means the exact same script already rendered.
// [Renderer.ShouldRender] makes that call; cache hits skip the
// subprocess entirely. There is no index to invalidate: deleting the
// output directory is a full cache flush.
//
// # Failure Interpretation
//
// A non-zero exit, a missing artifact despite exit zero, and a timeout
// each map to a distinct error code in
// [github.com/plotfence/plotfence/pkg/errors]. Toolkit stdout and stderr
// are discarded; errors name the toolkit and point at the usual cause,
// a missing external dependency.
package render
