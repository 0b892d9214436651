package stats

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMeanAndMedian(t *testing.T) {
	values := []float64{6, 2, 5, 5}

	if got := Mean(values); !almostEqual(got, 4.5) {
		t.Fatalf("Mean=%v", got)
	}
	if got := Median(values); !almostEqual(got, 5) {
		t.Fatalf("Median=%v", got)
	}
	if values[0] != 6 || values[1] != 2 {
		t.Fatalf("Median reordered input: %v", values)
	}
	if got := Mean(nil); got != 0 {
		t.Fatalf("Mean(nil)=%v", got)
	}
}

func TestStdDev_Population(t *testing.T) {
	// population stddev of {2,4,4,4,5,5,7,9} is exactly 2
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	if got := StdDev(values); !almostEqual(got, 2) {
		t.Fatalf("StdDev=%v", got)
	}
	if got := StdDev([]float64{3}); got != 0 {
		t.Fatalf("StdDev single=%v", got)
	}
}

func TestMinMax(t *testing.T) {
	values := []float64{3, 1, 6, 4}
	if Min(values) != 1 || Max(values) != 6 {
		t.Fatalf("Min=%v Max=%v", Min(values), Max(values))
	}
}

func TestNormalizedEntropy(t *testing.T) {
	if got := NormalizedEntropy([]float64{10, 0, 0, 0, 0, 0}); got != 0 {
		t.Fatalf("consensus entropy=%v", got)
	}
	if got := NormalizedEntropy([]float64{1, 1, 1, 1, 1, 1}); !almostEqual(got, 1) {
		t.Fatalf("uniform entropy=%v", got)
	}
	if got := ShannonEntropy([]float64{1, 1}); !almostEqual(got, 1) {
		t.Fatalf("two-way entropy=%v", got)
	}
}

func TestRoundTo(t *testing.T) {
	if got := RoundTo(4.5678, 2); !almostEqual(got, 4.57) {
		t.Fatalf("RoundTo=%v", got)
	}
}
