package generic

// Sum returns init plus the sum of all elements in x.
// Returns init for an empty slice.
func Sum(x []float64, init float64) float64 {
	sum := init
	for i := range x {
		sum += x[i]
	}
	return sum
}
