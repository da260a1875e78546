package searcher

import (
	"context"

	"github.com/ashton-hoops/Defense/cache"
	"github.com/ashton-hoops/Defense/embedder"
	"github.com/ashton-hoops/Defense/store"
)

type Option func(*Options)

type Options struct {
	Store    store.Store
	Cache    cache.Cache
	Embedder embedder.Embedder
	// DefaultLimit is the result count used when a search does not ask
	// for one.
	DefaultLimit int
	Context      context.Context
}

func WithStore(store store.Store) Option {
	return func(o *Options) {
		o.Store = store
	}
}

func WithCache(cache cache.Cache) Option {
	return func(o *Options) {
		o.Cache = cache
	}
}

func WithEmbedder(embedder embedder.Embedder) Option {
	return func(o *Options) {
		o.Embedder = embedder
	}
}

func WithDefaultLimit(limit int) Option {
	return func(o *Options) {
		o.DefaultLimit = limit
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		DefaultLimit: 20,
		Context:      context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

type SearchOption func(*SearchOptions)

type SearchOptions struct {
	Limit   int
	Context context.Context
}

func WithLimit(limit int) SearchOption {
	return func(o *SearchOptions) {
		o.Limit = limit
	}
}

func NewSearchOptions(opts ...SearchOption) SearchOptions {
	options := SearchOptions{
		Context: context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
