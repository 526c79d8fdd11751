// Package memo caches derived results keyed on their inputs.
package memo

// Option applies a configuration option to a Cache.
type Option func(*settings)

type settings struct {
	maxSize int
}

// WithMaxSize bounds the number of entries. When full, the oldest entry is
// evicted. maxSize <= 0 disables caching: every Get misses and Put is a no-op.
func WithMaxSize(maxSize int) Option {
	return func(s *settings) {
		s.maxSize = maxSize
	}
}
