package render

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/plotfence/plotfence/pkg/artifacts"
	"github.com/plotfence/plotfence/pkg/config"
	"github.com/plotfence/plotfence/pkg/errors"
	"github.com/plotfence/plotfence/pkg/figure"
	"github.com/plotfence/plotfence/pkg/observability"
	"github.com/plotfence/plotfence/pkg/toolkit"
)

// Result is the outcome of one successful render or cache reuse.
type Result struct {
	Spec       *figure.Spec
	OutputPath string // figure artifact
	SourcePath string // persisted script artifact
	CacheHit   bool
	Duration   time.Duration
}

// Renderer executes figure specs. Safe for concurrent use: it holds only
// the immutable configuration and a logger.
type Renderer struct {
	cfg    *config.Config
	logger *log.Logger
}

// New returns a Renderer.
func New(cfg *config.Config, logger *log.Logger) *Renderer {
	return &Renderer{cfg: cfg, logger: logger}
}

// ShouldRender reports whether spec needs a toolkit invocation: true
// when regeneration is forced or no artifact exists at the spec's
// output path.
func (r *Renderer) ShouldRender(spec *figure.Spec) bool {
	if r.cfg.Force {
		return true
	}
	info, err := os.Stat(spec.OutputPath())
	return err != nil || info.IsDir()
}

// Render produces the figure for spec. The script is written in every
// case, including cache hits, so source links never dangle; the toolkit
// subprocess only runs when no cached artifact can be reused.
func (r *Renderer) Render(ctx context.Context, spec *figure.Spec) (*Result, error) {
	tk := spec.Toolkit
	start := time.Now()

	exe := toolkit.ResolveExecutable(tk, r.cfg)
	if !exe.Available() {
		return nil, errors.New(errors.ErrCodeToolkitUnavailable,
			"%s executable %q not found; install it or set executable in the [%s] config section",
			tk.Tag(), exe.Name, tk.Tag())
	}

	store, err := artifacts.NewStore(spec.Directory)
	if err != nil {
		return nil, err
	}

	outputPath := spec.OutputPath()
	scriptPath := spec.ScriptPath()
	if err := store.WriteScript(scriptPath, spec.Script); err != nil {
		return nil, err
	}

	if !r.ShouldRender(spec) {
		observability.Cache().OnCacheHit(ctx, tk.Tag())
		r.logger.Debug("figure cached", "toolkit", tk.Tag(), "output", outputPath)
		return &Result{
			Spec:       spec,
			OutputPath: outputPath,
			SourcePath: scriptPath,
			CacheHit:   true,
			Duration:   time.Since(start),
		}, nil
	}
	observability.Cache().OnCacheMiss(ctx, tk.Tag())

	observability.Render().OnRenderStart(ctx, tk.Tag(), string(spec.Format))
	err = r.invoke(ctx, tk, exe.Path, tk.Command(scriptPath, outputPath, spec.Format, spec.DPI))
	observability.Render().OnRenderComplete(ctx, tk.Tag(), string(spec.Format), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	if !store.Has(outputPath) {
		return nil, errors.New(errors.ErrCodeRenderFailed,
			"%s exited successfully but produced no output at %s", tk.Tag(), outputPath)
	}
	observability.Cache().OnCacheSet(ctx, tk.Tag(), store.Size(outputPath))

	r.logger.Debug("figure rendered",
		"toolkit", tk.Tag(),
		"output", outputPath,
		"duration", time.Since(start))

	return &Result{
		Spec:       spec,
		OutputPath: outputPath,
		SourcePath: scriptPath,
		Duration:   time.Since(start),
	}, nil
}

// invoke runs one toolkit subprocess. Stdout and stderr go to the null
// device; the exit status is the only signal observed.
func (r *Renderer) invoke(ctx context.Context, tk toolkit.Toolkit, exe string, args []string) error {
	timeout := r.cfg.Timeout.Duration
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	r.logger.Debug("invoking toolkit", "exe", exe, "args", strings.Join(args, " "))

	err := exec.CommandContext(ctx, exe, args...).Run()
	if err == nil {
		return nil
	}

	switch ctx.Err() {
	case context.DeadlineExceeded:
		return errors.New(errors.ErrCodeRenderTimeout,
			"%s render timed out after %s", tk.Tag(), timeout)
	case context.Canceled:
		return errors.Wrap(errors.ErrCodeRenderFailed, ctx.Err(),
			"%s render canceled", tk.Tag())
	}

	if exit, ok := err.(*exec.ExitError); ok {
		cause := &errors.ExitError{Toolkit: tk.Tag(), ExitCode: exit.ExitCode()}
		return errors.Wrap(errors.ErrCodeRenderFailed, cause,
			"%s failed to render the figure; check that the script's dependencies are installed",
			tk.Tag())
	}
	return errors.Wrap(errors.ErrCodeRenderFailed, err, "failed to start %s", exe)
}
