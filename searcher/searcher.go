package searcher

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ashton-hoops/Defense/clip"
)

// Result is a clip joined with its similarity to the query.
type Result struct {
	clip.Record
	SimilarityScore float64 `json:"similarity_score"`
}

// Report summarizes a rebuild.
type Report struct {
	Count int `json:"count"`
}

// Searcher answers free-text queries against the clip corpus by cosine
// ranking over cached embeddings. It rebuilds the cache on demand when
// none exists.
type Searcher struct {
	options Options
}

func New(opts ...Option) *Searcher {
	options := NewOptions(opts...)

	return &Searcher{
		options: options,
	}
}

// Available reports whether an embedding provider was wired in.
func (s *Searcher) Available() bool {
	return s.options.Embedder != nil
}

func (s *Searcher) Search(ctx context.Context, query string, opts ...SearchOption) ([]Result, error) {
	if !s.Available() {
		return nil, ErrNotConfigured
	}

	if len(strings.TrimSpace(query)) == 0 {
		return nil, ErrEmptyQuery
	}

	options := NewSearchOptions(opts...)

	limit := options.Limit
	if limit < 1 {
		limit = s.options.DefaultLimit
	}

	corpus, err := s.options.Cache.Load(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to load embedding cache, rebuilding", "error", err)
		corpus = nil
	}

	if len(corpus) == 0 {
		slog.InfoContext(ctx, "no embedding cache found, generating now")

		corpus, err = s.buildEmbeddings(ctx)
		if err != nil {
			return nil, err
		}

		if err := s.options.Cache.Save(ctx, corpus); err != nil {
			return nil, fmt.Errorf("failed to save embedding cache: %w", err)
		}
	}

	queryVec, err := s.options.Embedder.EmbedOne(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	matches := Rank(queryVec, corpus, limit)

	records, err := s.options.Store.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clips: %w", err)
	}

	byId := make(map[string]clip.Record, len(records))
	for _, rec := range records {
		byId[rec.Id] = rec
	}

	results := make([]Result, 0, len(matches))
	for _, m := range matches {
		rec, exists := byId[m.Id]
		if !exists {
			// orphaned cache entry; the clip was removed after the last rebuild
			continue
		}
		results = append(results, Result{
			Record:          rec,
			SimilarityScore: m.Score,
		})
	}

	return results, nil
}

// Rebuild regenerates the full embedding cache from current store
// contents. It is never partial: a failure leaves the prior cache
// untouched.
func (s *Searcher) Rebuild(ctx context.Context) (*Report, error) {
	if !s.Available() {
		return nil, ErrNotConfigured
	}

	embeddings, err := s.buildEmbeddings(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.options.Cache.Save(ctx, embeddings); err != nil {
		return nil, fmt.Errorf("failed to save embedding cache: %w", err)
	}

	slog.InfoContext(ctx, "rebuilt clip embeddings", "count", len(embeddings))

	return &Report{Count: len(embeddings)}, nil
}

func (s *Searcher) buildEmbeddings(ctx context.Context) (map[string][]float32, error) {
	records, err := s.options.Store.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clips: %w", err)
	}

	embeddings := make(map[string][]float32, len(records))
	if len(records) == 0 {
		return embeddings, nil
	}

	ids := make([]string, 0, len(records))
	texts := make([]string, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.Id)
		texts = append(texts, clip.Project(rec))
	}

	vecs, err := s.options.Embedder.Embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(vecs) != len(ids) {
		return nil, fmt.Errorf("%w: expected %d embeddings but got %d", ErrUnavailable, len(ids), len(vecs))
	}

	for i, id := range ids {
		embeddings[id] = vecs[i]
	}

	return embeddings, nil
}
