package setfilter

// Option customizes a filter call by mutating its config.
type Option func(*config)

// config holds the resolved switches for one call.
type config struct {
	symmetric bool // also filter the second slice
}

// WithSymmetric makes RemoveIntersection filter b with the same predicate
// as a. Off by default: b is returned untouched.
func WithSymmetric() Option {
	return func(c *config) {
		c.symmetric = true
	}
}

// newConfig applies opts over the defaults. Nil options are skipped.
func newConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}
