package impact

import "math"

// WeightedSentiment is one article's sentiment together with its recency weight.
type WeightedSentiment struct {
	Sentiment float64
	Weight    float64
}

// Aggregator folds weighted article sentiment into one clamped impact percentage.
type Aggregator struct {
	scale  float64
	maxPct float64
}

func NewAggregator(scaleFactor, maxImpactPct float64) Aggregator {
	return Aggregator{scale: scaleFactor, maxPct: math.Abs(maxImpactPct)}
}

// Aggregate returns clamp(Σ(s·w)/Σw · scale, -max, max). Empty input or a zero weight
// sum yields 0. Non-finite or negatively weighted entries are ignored.
func (a Aggregator) Aggregate(items []WeightedSentiment) float64 {
	var weighted, totalWeight float64
	for _, it := range items {
		if !isFinite(it.Sentiment) || !isFinite(it.Weight) || it.Weight < 0 {
			continue
		}
		weighted += it.Sentiment * it.Weight
		totalWeight += it.Weight
	}
	if totalWeight == 0 {
		return 0
	}

	avg := weighted / totalWeight
	return clamp(avg*a.scale, -a.maxPct, a.maxPct)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
