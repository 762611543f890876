package rag

import (
	"math"
	"sort"
)

// Search tokenizes the query with the indexing rules, scores every
// document by cosine similarity over the shared vocabulary, and returns
// the top-K matches by descending score. Ties keep document insertion
// order. A query with no vocabulary overlap returns an empty result.
func (ix *Index) Search(query string, topK int) []ScoredDocument {
	if topK <= 0 {
		topK = 3
	}

	queryVec, queryNorm := ix.queryVector(query)
	if len(queryVec) == 0 || queryNorm == 0 {
		return nil
	}

	results := make([]ScoredDocument, 0, len(ix.docs))
	for i, doc := range ix.docs {
		score := cosineSimilarity(queryVec, queryNorm, ix.vectors[i], ix.norms[i])
		if score <= 0 {
			continue
		}
		results = append(results, ScoredDocument{Document: doc, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if topK > len(results) {
		topK = len(results)
	}
	return results[:topK]
}

// queryVector builds the TF-IDF weight vector for a query, restricted to
// the index vocabulary.
func (ix *Index) queryVector(query string) (map[string]float64, float64) {
	tokens := Tokenize(query)
	counts := make(map[string]int, len(tokens))
	matched := 0
	for _, tok := range tokens {
		if !ix.HasTerm(tok) {
			continue
		}
		counts[tok]++
		matched++
	}
	if matched == 0 {
		return nil, 0
	}

	vector := make(map[string]float64, len(counts))
	norm := 0.0
	for term, count := range counts {
		weight := (float64(count) / float64(matched)) * ix.idf(term)
		vector[term] = weight
		norm += weight * weight
	}
	return vector, math.Sqrt(norm)
}

// cosineSimilarity computes the cosine of two sparse term-weight vectors.
func cosineSimilarity(a map[string]float64, normA float64, b map[string]float64, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}
	dot := 0.0
	for term, weight := range a {
		if other, ok := b[term]; ok {
			dot += weight * other
		}
	}
	return dot / (normA * normB)
}
