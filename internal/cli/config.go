package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plotfence/plotfence/pkg/config"
)

// configCommand creates the config management command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage plotfence configuration",
	}

	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configInitCommand creates the "config init" subcommand.
func (c *CLI) configInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write an example configuration file",
		Long: `Write a commented example configuration. Without a path the file is
written as ` + config.DefaultFilename + ` in the current directory, where
render picks it up automatically.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultFilename
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := os.WriteFile(path, []byte(config.Example()), 0o644); err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			printSuccess("Wrote %s", path)
			printNextStep("Render a document", appName+" render README.md")
			return nil
		},
	}
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			printKeyValue("directory", cfg.Directory)
			printKeyValue("format", cfg.Format)
			printKeyValue("dpi", strconv.Itoa(cfg.DPI))
			printKeyValue("source", strconv.FormatBool(cfg.Source))
			printKeyValue("jobs", strconv.Itoa(cfg.Jobs))

			timeout := "none"
			if cfg.Timeout.Duration > 0 {
				timeout = cfg.Timeout.Duration.String()
			}
			printKeyValue("timeout", timeout)

			if len(cfg.Dependencies) > 0 {
				printKeyValue("dependencies", strings.Join(cfg.Dependencies, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultFilename+" if present)")

	return cmd
}
