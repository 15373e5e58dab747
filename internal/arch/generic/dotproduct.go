package generic

// DotProduct returns the dot product of a and b: sum(a[i] * b[i]).
// len(b) must be at least len(a); the dispatcher enforces equal lengths.
func DotProduct(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	b = b[:len(a)]

	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
