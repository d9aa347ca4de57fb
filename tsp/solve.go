// Package tsp - one-shot entry point.
//
// Solve runs the full pipeline on a fresh Solver:
//
//	validate → allocate tables → Solve(Origin, {Origin}) → Reconstruct → check
//
// The post-check (ValidateTour + TourCost) costs O(n) and guards the
// documented guarantees: a Hamiltonian cycle whose edge sum equals the
// returned cost.
package tsp

import (
	"fmt"

	"go.uber.org/zap"
)

// Solve computes the optimal tour of dist starting and ending at Origin.
//
// Contracts: see NewSolver.
//
// Errors: ErrInvalidInput, ErrInvalidSize; ErrInternal if the post-check
// fails. No partial result is returned.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
func Solve(dist [][]int, opts Options) (Result, error) {
	s, err := NewSolver(dist, opts)
	if err != nil {
		return Result{}, err
	}

	var start = Bit(Origin)
	cost, err := s.Solve(Origin, start)
	if err != nil {
		return Result{}, err
	}
	tour, err := s.Reconstruct(Origin, start)
	if err != nil {
		return Result{}, err
	}

	if err = checkTour(s.dist, tour, cost); err != nil {
		return Result{}, err
	}

	Logger().Debug("tour solved",
		zap.Int("cities", s.N()),
		zap.Int("cost", cost),
		zap.Int("evaluations", s.Evaluations()),
		zap.Ints("tour", tour),
	)

	return Result{Tour: tour, Cost: cost}, nil
}

// checkTour verifies that tour is a Hamiltonian cycle of dist whose edge sum
// is cost. Any failure here is the solver's fault, so it wraps ErrInternal.
func checkTour(dist [][]int, tour []int, cost int) error {
	if err := ValidateTour(tour, len(dist)); err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	sum, err := TourCost(dist, tour)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if sum != cost {
		return fmt.Errorf("%w: tour cost %d differs from optimum %d", ErrInternal, sum, cost)
	}

	return nil
}
