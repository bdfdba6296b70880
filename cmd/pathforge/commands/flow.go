package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pathforge/internal/app"
)

func (c *CLI) newFlowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flow",
		Short: "Draw the direction field toward a target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, err := pointFlag(cmd, "target")
			if err != nil {
				return err
			}
			from, err := pointFlag(cmd, "from")
			if err != nil {
				return err
			}
			workers, _ := cmd.Flags().GetInt("workers")
			return c.app.Flow(cmd.Context(), scenarioPath(cmd), app.FlowOptions{
				Target:  target,
				Workers: workers,
				From:    from,
			})
		},
	}
	cmd.Flags().StringP("target", "t", "", "Target cell as x,y; defaults to the scenario's flow target")
	cmd.Flags().String("from", "", "Also trace the route from this cell")
	cmd.Flags().IntP("workers", "w", 0, "Goroutines used to orient the field")
	return cmd
}
