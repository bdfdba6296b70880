// Package search implements best-first path searches over ports.Graph worlds:
// A*, jump point search on uniform grids, Theta* any-angle search and a
// frame-budgeted incremental driver.
package search

// Config holds the tunables shared by every search in this package.
type Config struct {
	// HeuristicWeight scales h in f = g + w*h. Values above 1 trade optimality for speed.
	HeuristicWeight float64
	// TieBreaking orders nodes with equal f by smaller h first.
	TieBreaking bool
	// MaxExpansions caps the number of expanded nodes. Zero means unbounded.
	MaxExpansions int
}

// DefaultConfig returns weight 1, no tie-breaking and no expansion cap.
func DefaultConfig() Config {
	return Config{HeuristicWeight: 1}
}

// Option is a function that modifies Config.
type Option func(*Config)

// WithHeuristicWeight sets the heuristic weight. Non-positive weights are ignored.
func WithHeuristicWeight(w float64) Option {
	return func(c *Config) {
		if w > 0 {
			c.HeuristicWeight = w
		}
	}
}

// WithTieBreaking enables or disables the equal-f secondary ordering.
func WithTieBreaking(enabled bool) Option {
	return func(c *Config) { c.TieBreaking = enabled }
}

// WithMaxExpansions caps node expansions. Zero or negative means unbounded.
func WithMaxExpansions(n int) Option {
	return func(c *Config) { c.MaxExpansions = max(n, 0) }
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
		if c.HeuristicWeight <= 0 {
			c.HeuristicWeight = 1
		}
		c.MaxExpansions = max(c.MaxExpansions, 0)
	}
}

// NewConfig applies opts to DefaultConfig.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
