package flowfield

// Config controls field computation.
type Config struct {
	// Workers is the number of goroutines assigning directions. Values below 1 mean 1.
	Workers int
}

// Option is a function that modifies Config.
type Option func(*Config)

// WithWorkers sets how many row bands are oriented concurrently.
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = n }
}

func newConfig(opts []Option) Config {
	cfg := Config{Workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
