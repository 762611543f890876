// internal/dataset/dataset.go
// Package dataset loads the tabular product data that feeds the corpus,
// forecasting, and risk components.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mwiater/chainsight/internal/logging"
)

// Product is one row of the input data file. Fields are immutable once loaded.
type Product struct {
	SKU           string
	ProductType   string
	Price         float64
	StockLevel    int
	UnitsSold     int
	SupplierName  string
	Location      string
	LeadTimeDays  int
	DefectRatePct float64
	ShippingDays  int
	TransportMode string
	Route         string
	SalesHistory  []float64
}

// Dataset holds the loaded product set with SKU lookup.
type Dataset struct {
	products []Product
	bySKU    map[string]int
}

// Column headers recognized in the input file. Missing columns degrade to
// defaults rather than failing the load.
const (
	colSKU           = "SKU"
	colProductType   = "Product type"
	colPrice         = "Price"
	colStockLevel    = "Stock levels"
	colUnitsSold     = "Number of products sold"
	colSupplierName  = "Supplier name"
	colLocation      = "Location"
	colLeadTime      = "Lead time"
	colDefectRate    = "Defect rates"
	colShippingTimes = "Shipping times"
	colTransport     = "Transportation modes"
	colRoutes        = "Routes"
	colSalesHistory  = "Sales history"
)

// unknownValue is the placeholder used for missing text attributes.
const unknownValue = "unknown"

// Load reads the product CSV at path. Rows with missing or malformed
// attributes are loaded with documented defaults; only an unreadable file
// or a file without rows is an error.
func Load(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file %q: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read data file %q: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("data file %q contains no product rows", path)
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[strings.TrimSpace(name)] = i
	}

	ds := &Dataset{bySKU: make(map[string]int)}
	for rowNum, row := range rows[1:] {
		p := parseRow(header, row, rowNum)
		if _, dup := ds.bySKU[p.SKU]; dup {
			logging.LogEvent("dataset: duplicate SKU %q at row %d, keeping first occurrence", p.SKU, rowNum+2)
			continue
		}
		ds.bySKU[p.SKU] = len(ds.products)
		ds.products = append(ds.products, p)
	}

	return ds, nil
}

// parseRow builds a Product from one CSV row, substituting defaults for
// anything missing or malformed.
func parseRow(header map[string]int, row []string, rowNum int) Product {
	field := func(col string) (string, bool) {
		idx, ok := header[col]
		if !ok || idx >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[idx]), true
	}
	text := func(col string) string {
		v, ok := field(col)
		if !ok || v == "" {
			return unknownValue
		}
		return v
	}
	number := func(col string) float64 {
		v, ok := field(col)
		if !ok || v == "" {
			return 0
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			logging.LogEvent("dataset: bad %s %q at row %d, using 0", col, v, rowNum+2)
			return 0
		}
		return n
	}

	sku, ok := field(colSKU)
	if !ok || sku == "" {
		sku = fmt.Sprintf("SKU-ROW%d", rowNum+2)
	}

	return Product{
		SKU:           sku,
		ProductType:   text(colProductType),
		Price:         number(colPrice),
		StockLevel:    int(number(colStockLevel)),
		UnitsSold:     int(number(colUnitsSold)),
		SupplierName:  text(colSupplierName),
		Location:      text(colLocation),
		LeadTimeDays:  int(number(colLeadTime)),
		DefectRatePct: number(colDefectRate),
		ShippingDays:  int(number(colShippingTimes)),
		TransportMode: text(colTransport),
		Route:         text(colRoutes),
		SalesHistory:  parseSalesHistory(row, header, rowNum),
	}
}

// parseSalesHistory decodes the optional semicolon-separated demand series.
func parseSalesHistory(row []string, header map[string]int, rowNum int) []float64 {
	idx, ok := header[colSalesHistory]
	if !ok || idx >= len(row) {
		return nil
	}
	raw := strings.TrimSpace(row[idx])
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ";")
	series := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			logging.LogEvent("dataset: bad sales history value %q at row %d, skipping", part, rowNum+2)
			continue
		}
		series = append(series, v)
	}
	return series
}

// Products returns the loaded products in input order.
func (d *Dataset) Products() []Product {
	return d.products
}

// BySKU looks up a product by its identifier.
func (d *Dataset) BySKU(sku string) (Product, bool) {
	idx, ok := d.bySKU[sku]
	if !ok {
		return Product{}, false
	}
	return d.products[idx], true
}

// Len returns the number of loaded products.
func (d *Dataset) Len() int {
	return len(d.products)
}
