// Package tsp — tour invariants.
//
// A tour over n cities is a closed Hamiltonian cycle anchored at Origin:
//
//	len(tour) == n+1, tour[0] == tour[n] == Origin,
//	each city v ∈ [0..n-1] appears exactly once in positions [0..n-1].
//
// For n == 1 the only tour is [0, 0].
package tsp

import "fmt"

// ValidateTour enforces the Hamiltonian-cycle invariants above.
// Returns nil if valid, otherwise a wrapped ErrInvalidInput.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: n=%d", ErrInvalidSize, n)
	}
	if len(tour) != n+1 {
		return fmt.Errorf("%w: tour has %d entries, want %d", ErrInvalidInput, len(tour), n+1)
	}
	if tour[0] != Origin || tour[n] != Origin {
		return fmt.Errorf("%w: tour must start and end at %d, got %d…%d", ErrInvalidInput, Origin, tour[0], tour[n])
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: city %d out of range [0,%d)", ErrInvalidInput, v, n)
		}
		if seen[v] {
			return fmt.Errorf("%w: city %d visited twice", ErrInvalidInput, v)
		}
		seen[v] = true
	}

	return nil
}
