// internal/intel/system_test.go
package intel

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/chainsight/internal/appconfig"
	"github.com/mwiater/chainsight/internal/corpus"
	"github.com/mwiater/chainsight/internal/providers"
	"github.com/mwiater/chainsight/internal/rag"
	"github.com/mwiater/chainsight/internal/risk"
)

const testCSV = `SKU,Product type,Price,Stock levels,Number of products sold,Supplier name,Location,Lead time,Defect rates,Shipping times,Transportation modes,Routes,Sales history
SKU-100,haircare,12.50,240,960,Acme Supply,Mumbai,7,1.2,4,Road,Route A,30;32;31;33;35;34;36;38;37;40
SKU-200,skincare,24.00,4,120,Beta Traders,Kolkata,25,8.5,12,Air,Route B,
SKU-300,cosmetics,8.75,88,450,Gamma Goods,Delhi,14,2.0,6,Rail,Route C,15;15;15;15;15;15
`

func newTestSystem(t *testing.T, generator providers.Generator) *System {
	t.Helper()

	dir := t.TempDir()
	dataPath := filepath.Join(dir, "products.csv")
	if err := os.WriteFile(dataPath, []byte(testCSV), 0o644); err != nil {
		t.Fatalf("writing test data: %v", err)
	}

	cfg := appconfig.Config{DataFile: dataPath}
	s, err := New(cfg, generator)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

// TestNewBuildsCorpusAndIndex verifies the policy documents precede the
// product documents and the index covers all of them.
func TestNewBuildsCorpusAndIndex(t *testing.T) {
	t.Parallel()

	s := newTestSystem(t, nil)
	docs := s.Documents()
	if len(docs) != 6 {
		t.Fatalf("len(docs) = %d, want 3 policies + 3 products", len(docs))
	}
	for i := 0; i < 3; i++ {
		if docs[i].Category != corpus.CategoryPolicy {
			t.Errorf("docs[%d].Category = %q, want policy", i, docs[i].Category)
		}
	}
	if docs[3].ID != "product:SKU-100" {
		t.Errorf("docs[3].ID = %q, want product:SKU-100", docs[3].ID)
	}
	if s.Index().Len() != len(docs) {
		t.Errorf("index length = %d, want %d", s.Index().Len(), len(docs))
	}
	if s.Dataset().Len() != 3 {
		t.Errorf("dataset length = %d, want 3", s.Dataset().Len())
	}
}

// TestQueryPolicyQuestion feeds the canonical safety stock question and
// expects a template answer quoting the inventory policy.
func TestQueryPolicyQuestion(t *testing.T) {
	t.Parallel()

	s := newTestSystem(t, nil)
	answer, err := s.Query(context.Background(), "What is the safety stock policy?")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if answer.Mode != rag.ModeTemplate {
		t.Errorf("Mode = %q, want %q", answer.Mode, rag.ModeTemplate)
	}
	if !strings.Contains(answer.Text, "20%") {
		t.Errorf("answer %q does not quote the safety stock policy", answer.Text)
	}
	if len(answer.SourceIDs) == 0 {
		t.Error("expected at least one source document")
	}
}

// TestQueryNoOverlap verifies a question sharing no vocabulary with the
// corpus degrades to the fixed fallback phrase.
func TestQueryNoOverlap(t *testing.T) {
	t.Parallel()

	s := newTestSystem(t, nil)
	answer, err := s.Query(context.Background(), "zzz qqq xxx")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if answer.Text != rag.FallbackAnswer {
		t.Errorf("answer = %q, want fallback phrase", answer.Text)
	}
}

// TestQueryGenerativeMode routes composition through the generator when
// one is attached.
func TestQueryGenerativeMode(t *testing.T) {
	t.Parallel()

	gen := providers.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		if !strings.Contains(prompt, "Question:") {
			t.Errorf("prompt missing question section: %q", prompt)
		}
		return "Maintain 20% safety stock per policy.", nil
	})

	s := newTestSystem(t, gen)
	answer, err := s.Query(context.Background(), "What is the safety stock policy?")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if answer.Mode != rag.ModeAI {
		t.Errorf("Mode = %q, want %q", answer.Mode, rag.ModeAI)
	}
}

// TestForecastDemandRecordedHistory uses the product's own sales series.
func TestForecastDemandRecordedHistory(t *testing.T) {
	t.Parallel()

	s := newTestSystem(t, nil)
	result, err := s.ForecastDemand("SKU-100", 7)
	if err != nil {
		t.Fatalf("ForecastDemand: %v", err)
	}
	if len(result.Predictions) != 7 {
		t.Fatalf("predictions = %d, want 7", len(result.Predictions))
	}
	for _, p := range result.Predictions {
		if p.Value < 0 {
			t.Errorf("day %d prediction %f is negative", p.Day, p.Value)
		}
	}
}

// TestForecastDemandSynthesized verifies products without a sales series
// still forecast via the deterministic baseline.
func TestForecastDemandSynthesized(t *testing.T) {
	t.Parallel()

	s := newTestSystem(t, nil)
	first, err := s.ForecastDemand("SKU-200", 14)
	if err != nil {
		t.Fatalf("ForecastDemand: %v", err)
	}
	second, err := s.ForecastDemand("SKU-200", 14)
	if err != nil {
		t.Fatalf("ForecastDemand: %v", err)
	}
	if len(first.Predictions) != 14 {
		t.Fatalf("predictions = %d, want 14", len(first.Predictions))
	}
	if first.Predictions[0].Value != second.Predictions[0].Value {
		t.Error("synthesized forecast is not deterministic")
	}
}

// TestForecastDemandUnknownSKU rejects identifiers not in the dataset.
func TestForecastDemandUnknownSKU(t *testing.T) {
	t.Parallel()

	s := newTestSystem(t, nil)
	if _, err := s.ForecastDemand("SKU-NOPE", 7); err == nil {
		t.Error("expected error for unknown SKU")
	}
}

// TestAnalyzeRisks ranks the distressed product first.
func TestAnalyzeRisks(t *testing.T) {
	t.Parallel()

	s := newTestSystem(t, nil)
	ranked, err := s.AnalyzeRisks(3)
	if err != nil {
		t.Fatalf("AnalyzeRisks: %v", err)
	}
	if len(ranked) != 3 {
		t.Fatalf("len = %d, want 3", len(ranked))
	}
	if ranked[0].SKU != "SKU-200" {
		t.Errorf("top risk = %q, want SKU-200", ranked[0].SKU)
	}
	if ranked[0].Level != risk.LevelHigh {
		t.Errorf("top level = %q, want %q", ranked[0].Level, risk.LevelHigh)
	}
}

// TestAssessProduct evaluates a single SKU.
func TestAssessProduct(t *testing.T) {
	t.Parallel()

	s := newTestSystem(t, nil)
	a, err := s.AssessProduct("SKU-100")
	if err != nil {
		t.Fatalf("AssessProduct: %v", err)
	}
	if a.Level != risk.LevelLow {
		t.Errorf("Level = %q, want %q", a.Level, risk.LevelLow)
	}
	if _, err := s.AssessProduct("SKU-NOPE"); err == nil {
		t.Error("expected error for unknown SKU")
	}
}

// TestNewMissingDataFile surfaces the load failure.
func TestNewMissingDataFile(t *testing.T) {
	t.Parallel()

	cfg := appconfig.Config{DataFile: filepath.Join(t.TempDir(), "absent.csv")}
	if _, err := New(cfg, nil); err == nil {
		t.Error("expected error for missing data file")
	}
}
