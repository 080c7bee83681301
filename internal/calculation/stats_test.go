package calculation

import (
	"math"
	"testing"
)

func TestPercentileInterpolates(t *testing.T) {
	sorted := []float64{10, 20, 30, 40, 50}
	cases := []struct {
		p    float64
		want float64
	}{
		{0, 10},
		{5, 12},
		{25, 20},
		{50, 30},
		{62.5, 35},
		{95, 48},
		{100, 50},
	}
	for _, c := range cases {
		if got := percentile(sorted, c.p); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("percentile(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestPercentileEvenCount(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	if got := percentile(sorted, 50); got != 2.5 {
		t.Errorf("median of even sample = %v, want 2.5", got)
	}
	if got := percentile(sorted, 5); math.Abs(got-1.15) > 1e-9 {
		t.Errorf("p5 = %v, want 1.15", got)
	}
	if got := percentile(sorted, 95); math.Abs(got-3.85) > 1e-9 {
		t.Errorf("p95 = %v, want 3.85", got)
	}
}

func TestPercentileSingleValue(t *testing.T) {
	if got := percentile([]float64{42}, 95); got != 42 {
		t.Errorf("Percentile of single value = %v, want 42", got)
	}
}

func TestPercentileEmptySample(t *testing.T) {
	if got := percentile(nil, 50); !math.IsNaN(got) {
		t.Errorf("percentile of empty sample = %v, want NaN", got)
	}
}

func TestPercentileClampsRange(t *testing.T) {
	sorted := []float64{1, 2, 3}
	if got := percentile(sorted, -10); got != 1 {
		t.Errorf("percentile(-10) = %v, want 1", got)
	}
	if got := percentile(sorted, 150); got != 3 {
		t.Errorf("percentile(150) = %v, want 3", got)
	}
}

func TestPercentilesSortsInPlace(t *testing.T) {
	values := []float64{5, 1, 4, 2, 3}
	got := percentiles(values, 0, 50, 100)
	if got[0] != 1 || got[1] != 3 || got[2] != 5 {
		t.Errorf("percentiles = %v, want [1 3 5]", got)
	}
	if values[0] != 1 || values[4] != 5 {
		t.Errorf("values not sorted: %v", values)
	}
}

func TestRandomSourceReplaysSeed(t *testing.T) {
	a := newRandomSource(99)
	b := newRandomSource(99)
	for i := 0; i < 100; i++ {
		if x, y := a.NormFloat64(), b.NormFloat64(); x != y {
			t.Fatalf("draw %d differs: %v != %v", i, x, y)
		}
	}
}
