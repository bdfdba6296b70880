package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pathforge/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [query]",
		Short: "Animate a time-sliced search in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := pointFlag(cmd, "from")
			if err != nil {
				return err
			}
			to, err := pointFlag(cmd, "to")
			if err != nil {
				return err
			}
			opts := app.WatchOptions{From: from, To: to, Overrides: overridesFrom(cmd)}
			if len(args) == 1 {
				opts.Query = args[0]
			}
			opts.Budget, _ = cmd.Flags().GetDuration("budget")
			opts.FrameInterval, _ = cmd.Flags().GetDuration("frame")
			opts.ExitOnDone, _ = cmd.Flags().GetBool("exit")
			return c.app.Watch(cmd.Context(), scenarioPath(cmd), opts)
		},
	}
	cmd.Flags().String("from", "", "Start cell as x,y; needs --to")
	cmd.Flags().String("to", "", "Goal cell as x,y; needs --from")
	cmd.Flags().Duration("budget", 0, "Search time per frame")
	cmd.Flags().Duration("frame", 0, "Time between frames")
	cmd.Flags().Bool("exit", false, "Quit as soon as the search ends")
	cmd.MarkFlagsRequiredTogether("from", "to")
	addOverrideFlags(cmd)
	return cmd
}
