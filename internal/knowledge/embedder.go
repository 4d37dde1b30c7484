package knowledge

import (
	"context"
	"math"
	"strings"
)

// Embedder turns text into a dense vector for similarity ranking
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// cosineDistance returns 1 - cosine similarity; lower is closer.
// Mismatched or zero-length vectors rank last.
func cosineDistance(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 1.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 1.0
	}

	return 1.0 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}

// lexicalDistance scores by token overlap between query and document,
// used when no embedder is configured. Returns 1 - overlap fraction so
// the scale matches cosineDistance (lower is closer).
func lexicalDistance(query, doc string) float64 {
	queryTokens := tokenize(query)
	if len(queryTokens) == 0 {
		return 1.0
	}

	docTokens := make(map[string]bool)
	for _, tok := range tokenize(doc) {
		docTokens[tok] = true
	}

	matched := 0
	for _, tok := range queryTokens {
		if docTokens[tok] {
			matched++
		}
	}

	return 1.0 - float64(matched)/float64(len(queryTokens))
}

func tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 2 { // skip stopword-sized tokens
			tokens = append(tokens, f)
		}
	}
	return tokens
}
