// internal/risk/risk.go
// Package risk scores products against fixed supply-chain risk thresholds.
package risk

import (
	"fmt"
	"sort"

	"github.com/mwiater/chainsight/internal/dataset"
)

// Level is a discrete risk classification.
type Level string

// Risk levels.
const (
	LevelLow    Level = "LOW"
	LevelMedium Level = "MEDIUM"
	LevelHigh   Level = "HIGH"
)

// Threshold constants mirror the risk management framework policy.
const (
	lowStockThreshold   = 10
	longLeadThreshold   = 20
	highDefectThreshold = 5.0
	slowShipThreshold   = 10
)

// Factor weights.
const (
	lowStockScore   = 3
	longLeadScore   = 2
	highDefectScore = 3
	slowShipScore   = 1
)

// Level boundaries.
const (
	highScoreFloor   = 6
	mediumScoreFloor = 3
)

// Assessment is the risk evaluation of a single product.
type Assessment struct {
	SKU     string
	Level   Level
	Score   int
	Factors []string
	Action  string
}

// Analyze scores one product against the fixed thresholds and returns
// its classification with the contributing factors.
func Analyze(p dataset.Product) Assessment {
	score := 0
	var factors []string

	if p.StockLevel < lowStockThreshold {
		score += lowStockScore
		factors = append(factors, "Low Stock")
	}
	if p.LeadTimeDays > longLeadThreshold {
		score += longLeadScore
		factors = append(factors, "Long Lead Time")
	}
	if p.DefectRatePct > highDefectThreshold {
		score += highDefectScore
		factors = append(factors, "High Defect Rate")
	}
	if p.ShippingDays > slowShipThreshold {
		score += slowShipScore
		factors = append(factors, "Slow Shipping")
	}

	level, action := classify(score)
	return Assessment{
		SKU:     p.SKU,
		Level:   level,
		Score:   score,
		Factors: factors,
		Action:  action,
	}
}

func classify(score int) (Level, string) {
	switch {
	case score >= highScoreFloor:
		return LevelHigh, "URGENT ACTION REQUIRED"
	case score >= mediumScoreFloor:
		return LevelMedium, "Review and Monitor"
	default:
		return LevelLow, "Continue Normal Operations"
	}
}

// Rank analyzes every product and returns the topN highest-risk ones,
// score descending with input order preserved on ties.
func Rank(products []dataset.Product, topN int) ([]Assessment, error) {
	if topN <= 0 {
		return nil, fmt.Errorf("risk: count must be positive, got %d", topN)
	}

	assessments := make([]Assessment, len(products))
	for i, p := range products {
		assessments[i] = Analyze(p)
	}

	sort.SliceStable(assessments, func(i, j int) bool {
		return assessments[i].Score > assessments[j].Score
	})

	if topN > len(assessments) {
		topN = len(assessments)
	}
	return assessments[:topN], nil
}

// Summary counts assessments per level.
func Summary(assessments []Assessment) map[Level]int {
	counts := make(map[Level]int, 3)
	for _, a := range assessments {
		counts[a.Level]++
	}
	return counts
}
