package store

import (
	"context"

	"github.com/ashton-hoops/Defense/clip"
)

// Store is the clip metadata store. FetchAll returns clips newest first.
// Fetch returns (nil, nil) when no clip has the given id.
type Store interface {
	FetchAll(ctx context.Context) ([]clip.Record, error)
	Fetch(ctx context.Context, id string) (*clip.Record, error)
	Upsert(ctx context.Context, rec clip.Record) error
	Remove(ctx context.Context, id string) error
	Close() error
}
