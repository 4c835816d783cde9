package reorder

// Reorder returns files rearranged into the pattern described in the
// package documentation. The input slice is left untouched.
func Reorder[T any](files []T) []T {
	n := len(files)
	if n == 0 {
		return []T{}
	}

	result := make([]T, 0, n)
	processed := make([]bool, n)

	result = append(result, files[n-1])
	processed[n-1] = true

	// Windows start two before the last element and step back four at a time
	for start := n - 3; start >= 0; start -= 4 {
		// Always 2 while start >= 0; kept as the bounds rule for the window
		take := 1
		if start+1 < n {
			take = 2
		}

		for i := 0; i < take; i++ {
			idx := start + i
			if idx < n {
				result = append(result, files[idx])
				processed[idx] = true
			}
		}
	}

	for i, file := range files {
		if !processed[i] {
			result = append(result, file)
		}
	}

	return result
}

// Indices returns the original 0-based index of the element that ends up
// at each output position when n elements are reordered.
func Indices(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return Reorder(indices)
}
