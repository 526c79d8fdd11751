package repository

// Option applies a configuration option to Load.
type Option func(*loadConfig)

type loadConfig struct {
	path string
}

// WithPath loads the catalog from a YAML file instead of the embedded seed.
// An empty path keeps the seed.
func WithPath(path string) Option {
	return func(c *loadConfig) {
		c.path = path
	}
}
