package analysis

// Zero-filled allocation helpers shared by the analyzers. Go zeroes new
// slices already; these exist so matrix shapes are allocated in one place.

// ZeroVector allocates a float64 vector of length n.
func ZeroVector(n int) []float64 {
	return make([]float64, n)
}

// ZeroMatrix allocates a rows×cols float64 matrix.
func ZeroMatrix(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

// ZeroIntMatrix allocates a rows×cols int matrix.
func ZeroIntMatrix(rows, cols int) [][]int {
	m := make([][]int, rows)
	for i := range m {
		m[i] = make([]int, cols)
	}
	return m
}

// ZeroCube allocates an x×y×z float64 tensor.
func ZeroCube(x, y, z int) [][][]float64 {
	c := make([][][]float64, x)
	for i := range c {
		c[i] = ZeroMatrix(y, z)
	}
	return c
}

// Flatten3 flattens a 3-level nested tensor into a single slice, outermost
// dimension first, preserving element order. Nil and ragged inputs are
// fine; missing levels simply contribute nothing.
func Flatten3(t [][][]float64) []float64 {
	n := 0
	for _, plane := range t {
		for _, row := range plane {
			n += len(row)
		}
	}
	flat := make([]float64, 0, n)
	for _, plane := range t {
		for _, row := range plane {
			flat = append(flat, row...)
		}
	}
	return flat
}
