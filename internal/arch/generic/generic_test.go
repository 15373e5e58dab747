package generic

import (
	"math"
	"testing"
)

func TestSum(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		init float64
		want float64
	}{
		{"empty", nil, 0, 0},
		{"empty with init", []float64{}, 10, 10},
		{"single", []float64{2.5}, 0, 2.5},
		{"ramp", []float64{0, 1, 2, 3, 4}, 0, 10},
		{"init added", []float64{1, 2}, 0.5, 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sum(tt.x, tt.init); got != tt.want {
				t.Errorf("Sum() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDotProduct(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, -5, 6}
	if got := DotProduct(a, b); got != 12 {
		t.Errorf("DotProduct() = %v, want 12", got)
	}
	if got := DotProduct(nil, nil); got != 0 {
		t.Errorf("DotProduct(nil) = %v, want 0", got)
	}
}

func TestPositiveDiff(t *testing.T) {
	a := []float64{5, 1, 3, -1, math.Inf(1)}
	b := []float64{2, 4, 3, -4, 0}
	want := []float64{3, 0, 0, 3, math.Inf(1)}

	dst := make([]float64, len(a))
	PositiveDiff(dst, a, b)
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}
