package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxAbsDiffIdentical(t *testing.T) {
	a := []float64{1, 2, 3}

	d, err := MaxAbsDiff(a, a)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if d != 0 {
		t.Fatalf("MaxAbsDiff = %v, want 0 for identical slices", d)
	}
}

func TestRelErr(t *testing.T) {
	if e := RelErr(1000, 1000.5); math.Abs(e-0.5/1000.5) > 1e-15 {
		t.Fatalf("RelErr = %v", e)
	}
	// Near zero the error is absolute.
	if e := RelErr(1e-3, 0); e != 1e-3 {
		t.Fatalf("RelErr near zero = %v, want 1e-3", e)
	}
}

func TestRequireBitIdenticalPasses(t *testing.T) {
	RequireBitIdentical(t, []float64{1, 2, math.Inf(1)}, []float64{1, 2, math.Inf(1)})
	RequireNearlyEqualRel(t, 1e6+1e-7, 1e6, 1e-12)
}
