// Package tsp — cost utilities.
//
// TourCost sums the directed edge weights along a closed tour. Solve uses it
// as a post-condition check; callers may use it to price any candidate tour
// against the same matrix.
//
// Design:
//   - Strict sentinels from types.go on any invalid input.
//   - Defensive range checks even if validateDistances was called earlier.
//
// Complexity:
//   - O(n) time for a tour of length n+1, O(1) extra space.
package tsp

import "fmt"

// TourCost returns Σ dist[tour[i]][tour[i+1]] over consecutive pairs.
//
// Contract:
//   - dist is square (n×n) and non-empty;
//   - len(tour) ≥ 2 and every index is within [0..n-1];
//   - every traversed weight is non-negative.
//
// Errors: ErrInvalidInput.
//
// Complexity: O(len(tour)).
func TourCost(dist [][]int, tour []int) (int, error) {
	var n = len(dist)
	if n == 0 {
		return 0, fmt.Errorf("%w: empty distance matrix", ErrInvalidInput)
	}
	if len(tour) < 2 {
		return 0, fmt.Errorf("%w: tour has %d entries, want at least 2", ErrInvalidInput, len(tour))
	}

	var (
		sum  int
		i    int
		u, v int
		w    int
		last = len(tour) - 1
	)
	for i = 0; i < last; i++ {
		u = tour[i]
		v = tour[i+1]

		// Index range checks.
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, fmt.Errorf("%w: edge %d→%d out of range [0,%d)", ErrInvalidInput, u, v, n)
		}
		if len(dist[u]) != n {
			return 0, fmt.Errorf("%w: row %d has %d entries, want %d", ErrInvalidInput, u, len(dist[u]), n)
		}

		w = dist[u][v]
		if w < 0 {
			return 0, fmt.Errorf("%w: dist[%d][%d]=%d is negative", ErrInvalidInput, u, v, w)
		}
		sum += w
	}

	return sum, nil
}
