package searcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, CosineSimilarity([]float32{1, 0}, []float32{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, CosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)

	// zero norm and shape mismatches score 0 rather than erroring
	assert.Equal(t, 0.0, CosineSimilarity([]float32{0, 0}, []float32{1, 0}))
	assert.Equal(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{1, 0, 0}))
	assert.Equal(t, 0.0, CosineSimilarity(nil, nil))
}

func TestRankDescending(t *testing.T) {
	corpus := map[string][]float32{
		"far":    {0, 1},
		"near":   {1, 0},
		"middle": {1, 1},
	}

	matches := Rank([]float32{1, 0}, corpus, 3)

	require.Len(t, matches, 3)
	assert.Equal(t, "near", matches[0].Id)
	assert.Equal(t, "middle", matches[1].Id)
	assert.Equal(t, "far", matches[2].Id)
	assert.Greater(t, matches[0].Score, matches[1].Score)
	assert.Greater(t, matches[1].Score, matches[2].Score)
}

func TestRankTopKBeyondCorpus(t *testing.T) {
	corpus := map[string][]float32{
		"a": {1, 0},
		"b": {0, 1},
	}

	matches := Rank([]float32{1, 0}, corpus, 10)

	require.Len(t, matches, 2)
}

func TestRankTruncatesToTopK(t *testing.T) {
	corpus := map[string][]float32{
		"a": {1, 0},
		"b": {1, 1},
		"c": {0, 1},
	}

	matches := Rank([]float32{1, 0}, corpus, 1)

	require.Len(t, matches, 1)
	assert.Equal(t, "a", matches[0].Id)
}

func TestRankZeroVectorScoresZero(t *testing.T) {
	corpus := map[string][]float32{
		"zero": {0, 0},
		"real": {1, 0.1},
	}

	matches := Rank([]float32{1, 0}, corpus, 2)

	require.Len(t, matches, 2)
	assert.Equal(t, "real", matches[0].Id)
	assert.Equal(t, "zero", matches[1].Id)
	assert.Equal(t, 0.0, matches[1].Score)
}

func TestRankTieBreaksByAscendingId(t *testing.T) {
	corpus := map[string][]float32{
		"b": {1, 0},
		"a": {1, 0},
		"c": {1, 0},
	}

	matches := Rank([]float32{1, 0}, corpus, 3)

	require.Len(t, matches, 3)
	assert.Equal(t, "a", matches[0].Id)
	assert.Equal(t, "b", matches[1].Id)
	assert.Equal(t, "c", matches[2].Id)
}

func TestRankEmptyCorpus(t *testing.T) {
	assert.Nil(t, Rank([]float32{1, 0}, map[string][]float32{}, 5))
	assert.Nil(t, Rank([]float32{1, 0}, map[string][]float32{"a": {1, 0}}, 0))
}
