package cache

import "context"

// Cache persists the clip id to embedding mapping as a single unit.
// Save replaces any prior content atomically from a reader's point of
// view. Load returns (nil, nil) when nothing has ever been saved; a
// corrupt or unreadable cache is also reported as absent so callers
// rebuild instead of failing.
type Cache interface {
	Save(ctx context.Context, embeddings map[string][]float32) error
	Load(ctx context.Context) (map[string][]float32, error)
}
