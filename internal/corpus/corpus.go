// internal/corpus/corpus.go
// Package corpus turns product records and static policy texts into the
// immutable document set behind retrieval.
package corpus

import (
	"fmt"
	"strings"

	"github.com/mwiater/chainsight/internal/dataset"
)

// Document is one retrievable text unit. Documents are created once at
// startup and never mutated.
type Document struct {
	ID       string
	Category string
	Text     string
	Source   string
}

// Document categories.
const (
	CategoryPolicy  = "policy"
	CategoryProduct = "product"
)

// Build produces the full document set: policy statements first, then one
// document per product in input order. The output is deterministic for a
// given input.
func Build(products []dataset.Product) []Document {
	docs := make([]Document, 0, len(policyStatements)+len(products))

	for i, text := range policyStatements {
		docs = append(docs, Document{
			ID:       fmt.Sprintf("policy:%d", i),
			Category: CategoryPolicy,
			Text:     strings.TrimSpace(text),
			Source:   "policy library",
		})
	}

	for _, p := range products {
		docs = append(docs, Document{
			ID:       "product:" + p.SKU,
			Category: CategoryProduct,
			Text:     productText(p),
			Source:   p.SKU,
		})
	}

	return docs
}

// productText synthesizes a readable description of one product row.
// Missing attributes arrive from the dataset layer already defaulted, so
// every product yields a document.
func productText(p dataset.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Product %s: %s at $%.2f. ", p.SKU, p.ProductType, p.Price)
	fmt.Fprintf(&b, "Stock: %d units. Sold: %d units. ", p.StockLevel, p.UnitsSold)
	fmt.Fprintf(&b, "Supplier: %s (%s). ", p.SupplierName, p.Location)
	fmt.Fprintf(&b, "Lead time: %d days. Defect rate: %.2f%%. ", p.LeadTimeDays, p.DefectRatePct)
	fmt.Fprintf(&b, "Shipping: %d days by %s via %s.", p.ShippingDays, p.TransportMode, p.Route)
	return b.String()
}
