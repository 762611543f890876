// internal/forecast/forecast.go
// Package forecast contains pure statistical routines over demand series.
package forecast

import (
	"errors"
	"fmt"
	"math"
)

// Trend labels.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// Recommended actions.
const (
	ActionIncrease = "INCREASE"
	ActionDecrease = "DECREASE"
	ActionMaintain = "MAINTAIN"
)

// trendSlopeThreshold separates a stable series from a trending one.
const trendSlopeThreshold = 0.1

// growthActionThresholdPct separates MAINTAIN from INCREASE/DECREASE.
const growthActionThresholdPct = 15.0

// Coverage multipliers for stocking recommendations, in forecast-average
// units: two weeks of target stock, one week of reorder buffer.
const (
	targetStockDays  = 14
	reorderPointDays = 7
)

// Prediction is one future point estimate with a 95% interval.
type Prediction struct {
	Day   int
	Value float64
	Lower float64
	Upper float64
}

// Metrics summarizes the historical series and the forecast.
type Metrics struct {
	HistoricalAvg float64
	ForecastAvg   float64
	GrowthRatePct float64
	Trend         string
	Confidence    float64
}

// Recommendations is the stocking guidance derived from the forecast.
type Recommendations struct {
	Action       string
	TargetStock  float64
	ReorderPoint float64
	Rationale    string
}

// Result is a complete demand forecast for one product.
type Result struct {
	SKU             string
	Predictions     []Prediction
	Metrics         Metrics
	Recommendations Recommendations
}

// Forecast produces point estimates for the next periods days from a
// chronologically ordered demand history. An empty history or
// non-positive horizon is rejected.
func Forecast(sku string, history []float64, periods int) (Result, error) {
	if len(history) == 0 {
		return Result{}, errors.New("forecast: demand history is empty")
	}
	if periods <= 0 {
		return Result{}, fmt.Errorf("forecast: horizon must be positive, got %d", periods)
	}

	avg := mean(history)
	std := stddev(history, avg)
	slope := trendSlope(history)
	trend := trendLabel(slope)

	n := len(history)
	predictions := make([]Prediction, periods)
	forecastSum := 0.0
	for i := 0; i < periods; i++ {
		value := avg + slope*float64(n+i)
		if value < 0 {
			value = 0
		}
		lower := value - 1.96*std
		if lower < 0 {
			lower = 0
		}
		predictions[i] = Prediction{
			Day:   i + 1,
			Value: value,
			Lower: lower,
			Upper: value + 1.96*std,
		}
		forecastSum += value
	}
	forecastAvg := forecastSum / float64(periods)

	growth := growthRate(history)
	action := ActionMaintain
	switch {
	case growth > growthActionThresholdPct:
		action = ActionIncrease
	case growth < -growthActionThresholdPct:
		action = ActionDecrease
	}

	return Result{
		SKU:         sku,
		Predictions: predictions,
		Metrics: Metrics{
			HistoricalAvg: avg,
			ForecastAvg:   forecastAvg,
			GrowthRatePct: growth,
			Trend:         trend,
			Confidence:    confidence(avg, std),
		},
		Recommendations: Recommendations{
			Action:       action,
			TargetStock:  forecastAvg * targetStockDays,
			ReorderPoint: forecastAvg * reorderPointDays,
			Rationale:    fmt.Sprintf("Based on %s trend with %+.1f%% growth", trend, growth),
		},
	}, nil
}

// MovingAverage smooths a series with a trailing window. The first
// window-1 points average over what is available so the output has the
// same length as the input.
func MovingAverage(series []float64, window int) []float64 {
	if window <= 1 || len(series) == 0 {
		return append([]float64(nil), series...)
	}

	out := make([]float64, len(series))
	sum := 0.0
	for i, v := range series {
		sum += v
		if i >= window {
			sum -= series[i-window]
		}
		span := i + 1
		if span > window {
			span = window
		}
		out[i] = sum / float64(span)
	}
	return out
}

// ExponentialSmoothing applies single exponential smoothing with factor
// alpha in (0,1]. Alpha outside the range returns a copy of the input.
func ExponentialSmoothing(series []float64, alpha float64) []float64 {
	if len(series) == 0 || alpha <= 0 || alpha > 1 {
		return append([]float64(nil), series...)
	}

	out := make([]float64, len(series))
	out[0] = series[0]
	for i := 1; i < len(series); i++ {
		out[i] = alpha*series[i] + (1-alpha)*out[i-1]
	}
	return out
}

// trendSlope fits a least-squares line over the series indices and
// returns its slope.
func trendSlope(series []float64) float64 {
	n := float64(len(series))
	if n < 2 {
		return 0
	}

	xMean := (n - 1) / 2
	yMean := mean(series)
	num, den := 0.0, 0.0
	for i, y := range series {
		dx := float64(i) - xMean
		num += dx * (y - yMean)
		den += dx * dx
	}
	if den == 0 {
		return 0
	}
	return num / den
}

func trendLabel(slope float64) string {
	switch {
	case slope > trendSlopeThreshold:
		return TrendIncreasing
	case slope < -trendSlopeThreshold:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

// growthRate is the percentage change from the first to the last
// observation. A near-zero starting point reports zero growth rather
// than exploding.
func growthRate(series []float64) float64 {
	if len(series) < 2 {
		return 0
	}
	first, last := series[0], series[len(series)-1]
	if math.Abs(first) < 1e-9 {
		return 0
	}
	return (last - first) / first * 100
}

// confidence maps series volatility to (0,1]: 1 for a perfectly steady
// series, approaching 0 as the coefficient of variation grows.
func confidence(avg, std float64) float64 {
	if avg <= 0 {
		return 0
	}
	return 1 / (1 + std/avg)
}

func mean(series []float64) float64 {
	sum := 0.0
	for _, v := range series {
		sum += v
	}
	return sum / float64(len(series))
}

func stddev(series []float64, avg float64) float64 {
	if len(series) < 2 {
		return 0
	}
	sum := 0.0
	for _, v := range series {
		d := v - avg
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(series)))
}
