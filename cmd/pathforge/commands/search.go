package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pathforge/internal/app"
	"go.trai.ch/pathforge/internal/core/domain"
)

func (c *CLI) newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <from> <to>",
		Short: "Find a path between two cells written as x,y",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := domain.ParsePoint(args[0])
			if err != nil {
				return err
			}
			to, err := domain.ParsePoint(args[1])
			if err != nil {
				return err
			}
			noRender, _ := cmd.Flags().GetBool("no-render")
			return c.app.Search(cmd.Context(), scenarioPath(cmd), app.SearchOptions{
				From:      from,
				To:        to,
				Overrides: overridesFrom(cmd),
				Quiet:     noRender,
			})
		},
	}
	cmd.Flags().Bool("no-render", false, "Only log the result")
	addOverrideFlags(cmd)
	return cmd
}
