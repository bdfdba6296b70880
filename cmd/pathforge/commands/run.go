package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pathforge/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve every query of the scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			workers, _ := cmd.Flags().GetInt("workers")
			noCache, _ := cmd.Flags().GetBool("no-cache")
			render, _ := cmd.Flags().GetBool("render")
			dumpMetrics, _ := cmd.Flags().GetBool("metrics")
			watch, _ := cmd.Flags().GetBool("watch")
			return c.app.Run(cmd.Context(), scenarioPath(cmd), app.RunOptions{
				Overrides: overridesFrom(cmd),
				Workers:   workers,
				NoCache:   noCache,
				Render:    render,
				Metrics:   dumpMetrics,
				Watch:     watch,
			})
		},
	}
	cmd.Flags().IntP("workers", "w", 1, "Number of queries searched at once")
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the result cache")
	cmd.Flags().BoolP("render", "r", false, "Draw each found path")
	cmd.Flags().Bool("metrics", false, "Print collected metrics when done")
	cmd.Flags().Bool("watch", false, "Run again whenever the scenario file changes")
	addOverrideFlags(cmd)
	return cmd
}
