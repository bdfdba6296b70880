package domain

import "time"

// ScenarioFileName is the scenario file looked up when no path is given.
const ScenarioFileName = "pathforge.yaml"

// Algorithm names accepted by scenarios and the CLI.
const (
	AlgorithmAStar = "astar"
	AlgorithmJPS   = "jps"
	AlgorithmTheta = "theta"
	AlgorithmHPA   = "hpa"
)

// Scenario is a validated description of a grid world and the queries to run on it.
type Scenario struct {
	Name    string
	Grid    GridSpec
	Search  SearchSettings
	Cache   CacheSettings
	Flow    FlowSettings
	Queries []Query
}

// GridSpec describes how to build a grid world.
type GridSpec struct {
	Width    int
	Height   int
	Diagonal DiagonalMode
	Blocked  []Point
	Regions  []Rect
	Costs    []CellCost
}

// CellCost assigns a traversal cost to one cell.
type CellCost struct {
	At   Point
	Cost float64
}

// SearchSettings configures the search algorithm used for queries.
type SearchSettings struct {
	Algorithm       string
	Heuristic       string
	HeuristicWeight float64
	TieBreaking     bool
	MaxExpansions   int
	Smooth          bool
	// ClusterSize is the cluster edge length of hierarchical search. Zero picks the default.
	ClusterSize int
}

// CacheSettings configures the result cache. A zero Capacity disables caching.
type CacheSettings struct {
	Capacity int
	TTL      time.Duration
}

// FlowSettings configures direction field computation.
type FlowSettings struct {
	Target  *Point
	Workers int
}

// Query is one start/goal pair.
type Query struct {
	Name string
	From Point
	To   Point
}
