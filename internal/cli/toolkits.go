package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plotfence/plotfence/pkg/config"
	"github.com/plotfence/plotfence/pkg/toolkit"
)

// toolkitsCommand creates the toolkits command, which reports which
// plotting toolkits plotfence can currently use.
func (c *CLI) toolkitsCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "toolkits",
		Short: "Show plotting toolkit availability",
		Long: `Show every plotting toolkit plotfence knows about, whether its
executable was found on PATH, and the image formats it can produce.

Executables can be overridden per toolkit in the configuration file,
which is why the command accepts --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render("Plotting toolkits"))
			printNewline()

			available := 0
			for _, tk := range toolkit.All() {
				exe := toolkit.ResolveExecutable(tk, cfg)
				if exe.Available() {
					available++
					printSuccess("%s", tk.Tag())
					printDetail("executable  %s", exe.Path)
				} else {
					printError("%s %s", tk.Tag(), StyleDim.Render("(not found: "+exe.Name+")"))
				}
				printDetail("formats     %s", toolkit.FormatList(tk.Formats()))
			}

			if available == 0 {
				printNewline()
				printWarning("No toolkits found on PATH; install one or set executables in %s", config.DefaultFilename)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultFilename+" if present)")

	return cmd
}
