// internal/dataset/dataset_test.go
package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoad verifies that a well-formed CSV loads all columns, including
// the optional sales history series.
func TestLoad(t *testing.T) {
	t.Parallel()

	csvData := `SKU,Product type,Price,Stock levels,Number of products sold,Supplier name,Location,Lead time,Defect rates,Shipping times,Transportation modes,Routes,Sales history
SKU0,haircare,12.50,55,802,Supplier 1,Mumbai,7,2.26,4,Road,Route B,10;12;11
SKU1,skincare,44.10,8,521,Supplier 3,Delhi,30,6.10,12,Air,Route A,
`
	ds, err := Load(writeTempCSV(t, csvData))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("expected 2 products, got %d", ds.Len())
	}

	p, ok := ds.BySKU("SKU0")
	if !ok {
		t.Fatal("SKU0 not found")
	}
	if p.ProductType != "haircare" || p.StockLevel != 55 || p.LeadTimeDays != 7 {
		t.Fatalf("unexpected product: %+v", p)
	}
	if len(p.SalesHistory) != 3 || p.SalesHistory[1] != 12 {
		t.Fatalf("unexpected sales history: %v", p.SalesHistory)
	}

	p, _ = ds.BySKU("SKU1")
	if p.SalesHistory != nil {
		t.Fatalf("expected empty sales history, got %v", p.SalesHistory)
	}
}

// TestLoadDefaults verifies that missing columns and malformed numbers
// degrade to placeholders instead of failing the load.
func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	csvData := `SKU,Price,Stock levels
SKU5,not-a-number,12
,9.99,3
`
	ds, err := Load(writeTempCSV(t, csvData))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("expected 2 products, got %d", ds.Len())
	}

	p, ok := ds.BySKU("SKU5")
	if !ok {
		t.Fatal("SKU5 not found")
	}
	if p.Price != 0 {
		t.Fatalf("malformed price should default to 0, got %v", p.Price)
	}
	if p.SupplierName != "unknown" || p.ProductType != "unknown" {
		t.Fatalf("missing text columns should default to unknown: %+v", p)
	}
	if p.StockLevel != 12 {
		t.Fatalf("expected stock 12, got %d", p.StockLevel)
	}

	// Row with empty SKU gets a positional placeholder identifier.
	if _, ok := ds.BySKU("SKU-ROW3"); !ok {
		t.Fatal("expected placeholder SKU for row with missing identifier")
	}
}

// TestLoadDuplicateSKU verifies first-occurrence-wins on duplicate identifiers.
func TestLoadDuplicateSKU(t *testing.T) {
	t.Parallel()

	csvData := `SKU,Stock levels
SKU9,5
SKU9,99
`
	ds, err := Load(writeTempCSV(t, csvData))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if ds.Len() != 1 {
		t.Fatalf("expected 1 product after dedupe, got %d", ds.Len())
	}
	p, _ := ds.BySKU("SKU9")
	if p.StockLevel != 5 {
		t.Fatalf("expected first occurrence kept, got stock %d", p.StockLevel)
	}
}

// TestLoadErrors verifies that unreadable or empty files are rejected.
func TestLoadErrors(t *testing.T) {
	t.Parallel()

	if _, err := Load("nonexistent.csv"); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := Load(writeTempCSV(t, "SKU,Price\n")); err == nil {
		t.Fatal("expected error for file without product rows")
	}
}
