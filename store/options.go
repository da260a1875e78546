package store

import "context"

type Option func(*Options)

type Options struct {
	// Location is a provider-specific locator: a file path for sqlite,
	// a connection string for postgres.
	Location string
	Context  context.Context
}

func WithLocation(loc string) Option {
	return func(o *Options) {
		o.Location = loc
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		Context: context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
