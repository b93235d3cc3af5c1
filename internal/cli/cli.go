package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/plotfence/plotfence/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for config files and display.
const appName = "plotfence"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Plotfence renders markdown code blocks as figures",
		Long: `Plotfence finds fenced code blocks marked with a plotting toolkit class
(matplotlib, gnuplot, graphviz, ...) in a markdown document, renders each
one to an image by running the toolkit, and substitutes the figures back
into the document. Figures are cached by content, so re-processing an
unchanged document never re-runs a toolkit.`,
		Version: buildinfo.Version,
		// main prints the returned error itself, so silence cobra's copy.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.toolkitsCommand())
	root.AddCommand(c.cleanCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}
