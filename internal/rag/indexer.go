package rag

import (
	"math"

	"github.com/mwiater/chainsight/internal/corpus"
)

// Index is the term-weight structure built once over the full document
// set. It is read-only after construction and safe for concurrent reads.
type Index struct {
	docs    []corpus.Document
	docFreq map[string]int
	vectors []map[string]float64
	norms   []float64
}

// BuildIndex consumes the document set and produces the TF-IDF index.
// Building from the same documents always yields identical weights;
// rebuilding discards any prior index by construction.
func BuildIndex(docs []corpus.Document) *Index {
	ix := &Index{
		docs:    docs,
		docFreq: make(map[string]int),
		vectors: make([]map[string]float64, len(docs)),
		norms:   make([]float64, len(docs)),
	}

	termCounts := make([]map[string]int, len(docs))
	termTotals := make([]int, len(docs))
	for i, doc := range docs {
		tokens := Tokenize(doc.Text)
		counts := make(map[string]int, len(tokens))
		for _, tok := range tokens {
			counts[tok]++
		}
		termCounts[i] = counts
		termTotals[i] = len(tokens)
		for term := range counts {
			ix.docFreq[term]++
		}
	}

	for i := range docs {
		vector := make(map[string]float64, len(termCounts[i]))
		norm := 0.0
		total := termTotals[i]
		if total == 0 {
			total = 1
		}
		for term, count := range termCounts[i] {
			weight := (float64(count) / float64(total)) * ix.idf(term)
			vector[term] = weight
			norm += weight * weight
		}
		ix.vectors[i] = vector
		ix.norms[i] = math.Sqrt(norm)
	}

	return ix
}

// idf is the inverse-document-frequency factor for a term, using the
// smoothed form ln((N+1)/(df+1)). Terms present in every document weigh
// exactly zero; a singleton corpus is degenerate and pinned to 1.
func (ix *Index) idf(term string) float64 {
	n := len(ix.docs)
	if n == 1 {
		return 1
	}
	return math.Log(float64(n+1) / float64(ix.docFreq[term]+1))
}

// Documents returns the indexed documents in insertion order.
func (ix *Index) Documents() []corpus.Document {
	return ix.docs
}

// Len returns the number of indexed documents.
func (ix *Index) Len() int {
	return len(ix.docs)
}

// VocabSize returns the number of distinct indexed terms.
func (ix *Index) VocabSize() int {
	return len(ix.docFreq)
}

// HasTerm reports whether a term appears in the index vocabulary.
func (ix *Index) HasTerm(term string) bool {
	_, ok := ix.docFreq[term]
	return ok
}
