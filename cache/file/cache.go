package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ashton-hoops/Defense/cache"
)

type fileCache struct {
	options cache.Options
}

func (c *fileCache) Save(ctx context.Context, embeddings map[string][]float32) error {
	dir := filepath.Dir(c.options.Location)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	data, err := json.Marshal(embeddings)
	if err != nil {
		return fmt.Errorf("failed to encode embeddings: %w", err)
	}

	// write to a temp file in the same directory and rename so a reader
	// never observes a partially written cache
	tmp, err := os.CreateTemp(dir, "embeddings-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp cache file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close cache file: %w", err)
	}

	if err := os.Rename(tmp.Name(), c.options.Location); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace cache file: %w", err)
	}

	return nil
}

func (c *fileCache) Load(ctx context.Context) (map[string][]float32, error) {
	data, err := os.ReadFile(c.options.Location)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		slog.WarnContext(ctx, "embedding cache is unreadable, treating as absent", "path", c.options.Location, "error", err)
		return nil, nil
	}

	var embeddings map[string][]float32
	if err := json.Unmarshal(data, &embeddings); err != nil {
		slog.WarnContext(ctx, "embedding cache is corrupt, treating as absent", "path", c.options.Location, "error", err)
		return nil, nil
	}

	return embeddings, nil
}

func NewCache(opts ...cache.Option) cache.Cache {
	options := cache.NewOptions(opts...)

	if options.Location == "" {
		options.Location = filepath.Join("data", "clip_embeddings.json")
	}

	return &fileCache{
		options: options,
	}
}
