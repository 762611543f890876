package rag

import "github.com/mwiater/chainsight/internal/corpus"

// ScoredDocument pairs a retrieved document with its similarity score.
type ScoredDocument struct {
	Document corpus.Document
	Score    float64
}

// Answer is the composed response to one query. It is never mutated after
// construction.
type Answer struct {
	Text      string
	Mode      string
	SourceIDs []string
	Context   string
}

// Answer modes.
const (
	ModeAI       = "ai"
	ModeTemplate = "template"
)

// FallbackAnswer is returned when retrieval finds no relevant documents.
const FallbackAnswer = "No relevant information found for this question."
