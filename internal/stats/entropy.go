package stats

import (
	"math"
)

// ShannonEntropy calculates the Shannon entropy of a frequency distribution.
// counts may be raw frequencies or probabilities; result is in bits.
func ShannonEntropy(counts []float64) float64 {
	if len(counts) == 0 {
		return 0
	}

	sum := Sum(counts)
	if sum == 0 {
		return 0
	}

	var entropy float64
	for _, v := range counts {
		if v > 0 {
			p := v / sum
			entropy -= p * math.Log2(p)
		}
	}

	return entropy
}

// NormalizedEntropy calculates Shannon entropy scaled to 0..1.
// Divides by log2(n) where n is the number of categories, including empty ones.
func NormalizedEntropy(counts []float64) float64 {
	if len(counts) <= 1 {
		return 0
	}

	maxEntropy := math.Log2(float64(len(counts)))
	if maxEntropy == 0 {
		return 0
	}

	return ShannonEntropy(counts) / maxEntropy
}
