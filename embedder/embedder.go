package embedder

import "context"

// Embedder turns text into fixed-dimension vectors. Embed returns one
// vector per input text, in input order, in a single batched call.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	EmbedOne(ctx context.Context, text string) ([]float32, error)
}
