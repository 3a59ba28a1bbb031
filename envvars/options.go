package envvars

type options struct {
	source Source
}

// Option configures a population pass.
type Option func(*options)

// WithSource reads values from s instead of the process environment.
func WithSource(s Source) Option {
	return func(o *options) {
		o.source = s
	}
}

// WithLookup reads values through fn instead of os.LookupEnv. A nil fn keeps the default.
func WithLookup(fn func(name string) (string, bool)) Option {
	if fn == nil {
		return WithSource(nil)
	}

	return WithSource(LookupFunc(fn))
}

func newOptions(opts []Option) *options {
	o := &options{source: OS}
	for _, opt := range opts {
		opt(o)
	}

	if o.source == nil {
		o.source = OS
	}

	return o
}
