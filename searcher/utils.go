package searcher

import (
	"math"
	"sort"
)

type Match struct {
	Id    string
	Score float64
}

// Rank scores every corpus vector against the query by cosine similarity
// and returns the top k matches in descending score order. Ties keep
// ascending id order so results are deterministic. Asking for more than
// the corpus holds returns the whole corpus.
func Rank(query []float32, corpus map[string][]float32, topK int) []Match {
	if topK < 1 || len(corpus) == 0 {
		return nil
	}

	ids := make([]string, 0, len(corpus))
	for id := range corpus {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	matches := make([]Match, 0, len(ids))
	for _, id := range ids {
		matches = append(matches, Match{
			Id:    id,
			Score: CosineSimilarity(query, corpus[id]),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}

	return matches
}

func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
