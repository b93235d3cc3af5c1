package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plotfence/plotfence/pkg/buildinfo"
	"github.com/plotfence/plotfence/pkg/config"
	"github.com/plotfence/plotfence/pkg/document"
	"github.com/plotfence/plotfence/pkg/pipeline"
)

// cleanCommand creates the clean command, which removes the output
// directories a document's plot blocks render into.
func (c *CLI) cleanCommand() *cobra.Command {
	var (
		configPath string
		dir        string
	)

	cmd := &cobra.Command{
		Use:   "clean [file]",
		Short: "Remove a document's rendered figures",
		Long: `Remove every output directory the plot blocks in a markdown document
render into, including per-block directory overrides. The next render
starts from an empty cache.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("dir") {
				cfg.Directory = dir
			}

			source, err := readDocument(args[0])
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			dirs, err := pipeline.New(cfg, buildinfo.Version, c.Logger).Clean(document.Parse(source))
			if err != nil {
				return err
			}
			if len(dirs) == 0 {
				printInfo("No plot blocks in %s; nothing to clean", args[0])
				return nil
			}
			prog.done(fmt.Sprintf("Cleaned %d output directories", len(dirs)))

			printSuccess("Removed %d output directories", len(dirs))
			for _, d := range dirs {
				printFile(d)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultFilename+" if present)")
	cmd.Flags().StringVar(&dir, "dir", "", "output directory to remove (overrides config)")

	return cmd
}
