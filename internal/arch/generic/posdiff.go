package generic

// PositiveDiff performs rectified subtraction: dst[i] = max(a[i]-b[i], 0).
// a and b must be at least len(dst) long.
func PositiveDiff(dst, a, b []float64) {
	if len(dst) == 0 {
		return
	}
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = max(a[i]-b[i], 0)
	}
}
