// internal/intel/system.go
// Package intel wires the dataset, document index, answer composer,
// and analytics helpers into one queryable system.
package intel

import (
	"context"
	"fmt"

	"github.com/mwiater/chainsight/internal/appconfig"
	"github.com/mwiater/chainsight/internal/corpus"
	"github.com/mwiater/chainsight/internal/dataset"
	"github.com/mwiater/chainsight/internal/forecast"
	"github.com/mwiater/chainsight/internal/providers"
	"github.com/mwiater/chainsight/internal/rag"
	"github.com/mwiater/chainsight/internal/risk"
)

// syntheticBaselineDivisor converts total units sold into an
// approximate daily demand when no sales history is recorded.
const syntheticBaselineDivisor = 30.0

// System is the assembled supply-chain intelligence engine.
type System struct {
	cfg      appconfig.Config
	data     *dataset.Dataset
	docs     []corpus.Document
	index    *rag.Index
	composer *rag.Composer
}

// New loads the configured data file, builds the document corpus and
// term index over it, and attaches generator for answer composition.
// A nil generator forces template-mode answers.
func New(cfg appconfig.Config, generator providers.Generator) (*System, error) {
	data, err := dataset.Load(cfg.DataFilePath())
	if err != nil {
		return nil, fmt.Errorf("intel: loading dataset: %w", err)
	}

	docs := corpus.Build(data.Products())
	return &System{
		cfg:      cfg,
		data:     data,
		docs:     docs,
		index:    rag.BuildIndex(docs),
		composer: rag.NewComposer(generator, cfg.ContextCharLimit(), cfg.GenerateTimeout()),
	}, nil
}

// Query retrieves the most relevant documents for question and composes
// an answer from them.
func (s *System) Query(ctx context.Context, question string) (rag.Answer, error) {
	results := s.index.Search(question, s.cfg.RetrievalTopK())
	return s.composer.Compose(ctx, question, results), nil
}

// Search exposes raw retrieval results without answer composition.
func (s *System) Search(question string, topK int) []rag.ScoredDocument {
	return s.index.Search(question, topK)
}

// ForecastDemand projects demand for the given SKU over the requested
// number of days. Unknown SKUs are rejected.
func (s *System) ForecastDemand(sku string, days int) (forecast.Result, error) {
	p, ok := s.data.BySKU(sku)
	if !ok {
		return forecast.Result{}, fmt.Errorf("intel: unknown SKU %q", sku)
	}
	return forecast.Forecast(sku, s.demandHistory(p), days)
}

// AnalyzeRisks scores every product and returns the topN riskiest.
func (s *System) AnalyzeRisks(topN int) ([]risk.Assessment, error) {
	return risk.Rank(s.data.Products(), topN)
}

// AssessProduct evaluates the risk of a single SKU.
func (s *System) AssessProduct(sku string) (risk.Assessment, error) {
	p, ok := s.data.BySKU(sku)
	if !ok {
		return risk.Assessment{}, fmt.Errorf("intel: unknown SKU %q", sku)
	}
	return risk.Analyze(p), nil
}

// Documents returns the built corpus in insertion order.
func (s *System) Documents() []corpus.Document {
	return s.docs
}

// Index returns the underlying term index.
func (s *System) Index() *rag.Index {
	return s.index
}

// Dataset returns the loaded product records.
func (s *System) Dataset() *dataset.Dataset {
	return s.data
}

// demandHistory returns the trailing demand observations for a product,
// synthesizing a deterministic baseline ramp when none are recorded.
func (s *System) demandHistory(p dataset.Product) []float64 {
	window := s.cfg.HistoryWindow()
	if len(p.SalesHistory) > 0 {
		if len(p.SalesHistory) > window {
			return p.SalesHistory[len(p.SalesHistory)-window:]
		}
		return p.SalesHistory
	}

	base := float64(p.UnitsSold) / syntheticBaselineDivisor
	if base <= 0 {
		base = 1
	}
	history := make([]float64, window)
	for i := range history {
		history[i] = base * (1 + 0.2*float64(i)/float64(window))
	}
	return history
}
