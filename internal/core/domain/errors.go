package domain

import "go.trai.ch/zerr"

var (
	// ErrNoPathFound is returned when the frontier is exhausted without reaching the goal.
	ErrNoPathFound = zerr.New("no path found")

	// ErrExpansionLimitExceeded is returned when a search hits its max-expansions cap.
	// It wraps ErrNoPathFound so callers treating both alike can match on the latter.
	ErrExpansionLimitExceeded = zerr.Wrap(ErrNoPathFound, "expansion limit exceeded")

	// ErrInvalidNode is returned when a start or goal node is outside the world or not passable.
	ErrInvalidNode = zerr.New("invalid node")

	// ErrBudgetMisuse is returned when a budgeted search result is taken before the search terminated.
	ErrBudgetMisuse = zerr.New("budgeted search has not terminated")

	// ErrOutOfBounds is returned when a grid mutation addresses a cell outside the grid.
	ErrOutOfBounds = zerr.New("cell out of bounds")

	// ErrInvalidCost is returned when a cell cost is not a positive finite number.
	ErrInvalidCost = zerr.New("cell cost must be positive and finite")

	// ErrInvalidDimensions is returned when a grid is created with non-positive dimensions.
	ErrInvalidDimensions = zerr.New("grid dimensions must be positive")

	// ErrInvalidClusterSize is returned when a hierarchical grid is built with a non-positive cluster size.
	ErrInvalidClusterSize = zerr.New("cluster size must be positive")

	// ErrInvalidScenario is returned when a scenario file fails validation.
	ErrInvalidScenario = zerr.New("invalid scenario")

	// ErrScenarioNotFound is returned when the scenario file does not exist.
	ErrScenarioNotFound = zerr.New("scenario not found")

	// ErrUnknownAlgorithm is returned when a search algorithm name is not recognized.
	ErrUnknownAlgorithm = zerr.New("unknown search algorithm")

	// ErrUnknownHeuristic is returned when a heuristic name is not recognized.
	ErrUnknownHeuristic = zerr.New("unknown heuristic")

	// ErrUnknownDiagonalMode is returned when a diagonal movement policy name is not recognized.
	ErrUnknownDiagonalMode = zerr.New("unknown diagonal mode")

	// ErrInvalidPoint is returned when a cell coordinate cannot be parsed.
	ErrInvalidPoint = zerr.New("invalid point")

	// ErrWatchUnavailable is returned when watch mode is requested without a file watcher.
	ErrWatchUnavailable = zerr.New("scenario watching is not available")

	// ErrNoQueries is returned when a scenario run has nothing to search.
	ErrNoQueries = zerr.New("no queries specified")
)
