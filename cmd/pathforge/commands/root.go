// Package commands implements the CLI commands for pathforge.
package commands

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pathforge/internal/app"
	"go.trai.ch/pathforge/internal/build"
	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for pathforge.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pathforge",
		Short:         "Grid path planning: A*, jump point search, Theta* and flow fields",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("file", "f", ".", "Scenario file, or a directory holding "+domain.ScenarioFileName)
	rootCmd.PersistentFlags().Bool("json", false, "Log JSON lines instead of text")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only log warnings and errors")
	rootCmd.PersistentFlags().Bool("trace", false, "Log every finished span")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		jsonLogs, _ := cmd.Flags().GetBool("json")
		quiet, _ := cmd.Flags().GetBool("quiet")
		trace, _ := cmd.Flags().GetBool("trace")
		c.app.Configure(app.GlobalOptions{JSON: jsonLogs, Quiet: quiet, Trace: trace})
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newSearchCmd())
	rootCmd.AddCommand(c.newFlowCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context and flushes telemetry afterwards.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	if serr := c.app.Shutdown(context.WithoutCancel(ctx)); serr != nil {
		err = errors.Join(err, zerr.Wrap(serr, "failed to flush telemetry"))
	}
	return err
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

func scenarioPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("file")
	return path
}
