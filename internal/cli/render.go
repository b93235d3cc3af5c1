package cli

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/plotfence/plotfence/pkg/buildinfo"
	"github.com/plotfence/plotfence/pkg/config"
	"github.com/plotfence/plotfence/pkg/document"
	"github.com/plotfence/plotfence/pkg/errors"
	"github.com/plotfence/plotfence/pkg/observability"
	"github.com/plotfence/plotfence/pkg/pipeline"
	"github.com/plotfence/plotfence/pkg/toolkit"
)

// renderOpts holds the command-line flags for the render command.
// Flags the user does not set fall back to the configuration file.
type renderOpts struct {
	output     string        // output HTML path (stdout if empty)
	configPath string        // explicit config file path
	dir        string        // where figures and scripts are written
	format     string        // figure image format
	dpi        int           // figure resolution
	source     bool          // link each figure to its script
	jobs       int           // concurrent toolkit processes
	timeout    time.Duration // per-figure render timeout
	force      bool          // re-render figures even when cached
}

// apply overlays the flags the user actually set onto the loaded config.
// Flag defaults never clobber file values, so --dpi 80 and an unset --dpi
// behave differently when the file says dpi = 150.
func (o *renderOpts) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.Directory = o.dir
	}
	if flags.Changed("format") {
		if _, err := toolkit.ParseFormat(o.format); err != nil {
			return err
		}
		cfg.Format = o.format
	}
	if flags.Changed("dpi") {
		cfg.DPI = o.dpi
	}
	if flags.Changed("source") {
		cfg.Source = o.source
	}
	if flags.Changed("jobs") {
		cfg.Jobs = o.jobs
	}
	if flags.Changed("timeout") {
		cfg.Timeout = config.Duration{Duration: o.timeout}
	}
	cfg.Force = o.force
	return cfg.Validate()
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render the plot blocks in a markdown document",
		Long: `Render every plot block in a markdown document and write the document
as HTML with figures substituted for the blocks.

Blocks that fail to render are left in place with the toolkit's error
message beneath them, and the command exits non-zero. The input may be
"-" to read from stdin. Without --output the document is written to
stdout and status output stays on stderr.

Examples:
  plotfence render README.md -o README.html
  plotfence render --format svg --jobs 8 docs/report.md
  cat notes.md | plotfence render - > notes.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultFilename+" if present)")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "directory for rendered figures and scripts")
	cmd.Flags().StringVar(&opts.format, "format", "", "figure format (png, pdf, svg, ...)")
	cmd.Flags().IntVar(&opts.dpi, "dpi", 0, "figure resolution in dots per inch")
	cmd.Flags().BoolVar(&opts.source, "source", false, "link each figure to its generated script")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "figures to render concurrently (default CPU count)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "per-figure render timeout (0 disables)")
	cmd.Flags().BoolVar(&opts.force, "force", false, "re-render figures even when cached")

	return cmd
}

// runRender executes the render command against a single document.
func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	ctx := cmd.Context()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if err := opts.apply(cmd, cfg); err != nil {
		return err
	}

	source, err := readDocument(input)
	if err != nil {
		return err
	}
	doc := document.Parse(source)

	spinner := newSpinnerWithContext(ctx, "Rendering figures...")
	watchProgress(spinner)
	defer observability.Reset()

	spinner.Start()
	result, err := pipeline.New(cfg, buildinfo.Version, c.Logger).Process(ctx, doc)
	spinner.Stop()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := doc.RenderHTML(&buf); err != nil {
		return err
	}
	if opts.output == "" {
		if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
			return errors.Wrap(errors.ErrCodeFilesystem, err, "failed to write stdout")
		}
	} else {
		if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeFilesystem, err, "failed to write %s", opts.output)
		}
		printSuccess("Rendered %s", input)
		printFile(opts.output)
		printStats(result.Rendered, result.CacheHits, len(result.Failures))
	}

	if result.Failed() {
		return errors.New(errors.ErrCodeRenderFailed, "%d of %d figures failed to render",
			len(result.Failures), result.Blocks-result.Skipped)
	}
	return nil
}

// readDocument reads the markdown source, treating "-" as stdin.
func readDocument(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFilesystem, err, "failed to read stdin")
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "document not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeFilesystem, err, "failed to read %s", path)
	}
	return data, nil
}
