// Package tsp - validation utilities for the exact solver.
//
// Both checks run once, at entry, before any allocation proportional to 2ⁿ
// and before the recursion starts; the recursion itself never fails.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go,
//     wrapped with the offending position for diagnostics.
//   - O(n²) worst-case where n is the matrix size.
package tsp

import "fmt"

// validateOptions checks internal consistency of Options.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.MaxCities < 1 || opts.MaxCities > HardMaxCities {
		return fmt.Errorf("%w: MaxCities=%d, want 1..%d", ErrInvalidSize, opts.MaxCities, HardMaxCities)
	}

	return nil
}

// validateDistances performs full matrix validation and returns n on success:
//   - options consistent (ErrInvalidSize);
//   - non-empty (ErrInvalidInput and ErrInvalidSize both match);
//   - n ≤ opts.MaxCities, checked before scanning cells (ErrInvalidSize);
//   - every row has exactly n entries (ErrInvalidInput);
//   - every entry in [0..MaxDistance] (ErrInvalidInput). The diagonal is
//     never read by the solver but is held to the same range.
//
// Complexity: O(n²).
func validateDistances(dist [][]int, opts Options) (int, error) {
	if err := validateOptions(opts); err != nil {
		return 0, err
	}

	var n = len(dist)
	if n == 0 {
		return 0, fmt.Errorf("%w: %w: empty distance matrix", ErrInvalidInput, ErrInvalidSize)
	}
	if n > opts.MaxCities {
		return 0, fmt.Errorf("%w: n=%d, want 1..%d", ErrInvalidSize, n, opts.MaxCities)
	}

	var (
		i, j int // loop indices
		w    int // current entry
	)
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, fmt.Errorf("%w: row %d has %d entries, want %d", ErrInvalidInput, i, len(dist[i]), n)
		}
		for j = 0; j < n; j++ {
			w = dist[i][j]
			if w < 0 {
				return 0, fmt.Errorf("%w: dist[%d][%d]=%d is negative", ErrInvalidInput, i, j, w)
			}
			if w > MaxDistance {
				return 0, fmt.Errorf("%w: dist[%d][%d]=%d exceeds %d", ErrInvalidInput, i, j, w, MaxDistance)
			}
		}
	}

	return n, nil
}
