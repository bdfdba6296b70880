package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pathforge/internal/app"
	"go.trai.ch/pathforge/internal/core/domain"
)

func addOverrideFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("algorithm", "a", "", "Search algorithm: astar, jps, theta or hpa")
	cmd.Flags().String("heuristic", "", "Heuristic: octile, manhattan, euclidean or zero")
	cmd.Flags().Float64("weight", 0, "Heuristic weight; above 1 trades optimality for speed")
	cmd.Flags().Int("max-expansions", 0, "Give up after this many expanded nodes")
	cmd.Flags().Bool("tie-breaking", false, "Prefer nodes closer to the goal among equal f")
	cmd.Flags().Bool("smooth", false, "Drop waypoints that have line of sight past them")
	cmd.Flags().Int("cluster-size", 0, "Cluster edge length for hpa")
}

func overridesFrom(cmd *cobra.Command) app.Overrides {
	algorithm, _ := cmd.Flags().GetString("algorithm")
	heuristic, _ := cmd.Flags().GetString("heuristic")
	weight, _ := cmd.Flags().GetFloat64("weight")
	maxExpansions, _ := cmd.Flags().GetInt("max-expansions")
	tieBreaking, _ := cmd.Flags().GetBool("tie-breaking")
	smooth, _ := cmd.Flags().GetBool("smooth")
	clusterSize, _ := cmd.Flags().GetInt("cluster-size")
	return app.Overrides{
		Algorithm:     algorithm,
		Heuristic:     heuristic,
		Weight:        weight,
		MaxExpansions: maxExpansions,
		TieBreaking:   tieBreaking,
		Smooth:        smooth,
		ClusterSize:   clusterSize,
	}
}

// pointFlag parses an optional "x,y" flag. Unset flags return nil.
func pointFlag(cmd *cobra.Command, name string) (*domain.Point, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	raw, _ := cmd.Flags().GetString(name)
	p, err := domain.ParsePoint(raw)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
