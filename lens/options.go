package lens

// Option configures a lens at construction time.
type Option func(*config)

type config struct {
	skipAbsent bool
}

// WithSkipAbsent makes Over leave the document unchanged when the
// focus is absent instead of invoking the update function on the
// absent marker. View and Set are unaffected.
func WithSkipAbsent() Option {
	return func(c *config) {
		c.skipAbsent = true
	}
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
