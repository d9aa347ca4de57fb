package tsp

import (
	"errors"
	"math"
)

const (
	// Origin is the fixed start and end city of every tour.
	Origin = 0

	// DefaultMaxCities bounds n when the caller does not override Options.MaxCities.
	// 20 cities already need 20·2²⁰ memo entries.
	DefaultMaxCities = 20

	// HardMaxCities is the largest MaxCities accepted by Options.
	// Beyond it the tables do not fit in memory on ordinary hosts.
	HardMaxCities = 22

	// MaxDistance is the largest accepted matrix entry. A tour has at most
	// HardMaxCities+1 edges, so any tour cost stays representable as int.
	MaxDistance = math.MaxInt / (HardMaxCities + 1)
)

// Sentinel errors. Callers match them with errors.Is; context is attached
// with fmt.Errorf("%w: …") at the point of failure.
var (
	// ErrInvalidSize is returned when n is not in [1..MaxCities], or when
	// Options.MaxCities itself is out of range.
	ErrInvalidSize = errors.New("tsp: invalid problem size")

	// ErrInvalidInput is returned when the distance matrix is not n×n, holds
	// a negative or oversized entry, or when a state (pos, visited) passed to
	// Solve/Reconstruct is not a valid state of the instance.
	ErrInvalidInput = errors.New("tsp: invalid input")

	// ErrNotSolved is returned by Reconstruct when the requested start state
	// has not been evaluated by Solve.
	ErrNotSolved = errors.New("tsp: state not solved")

	// ErrInternal reports a broken solver invariant (the reconstructed tour
	// disagrees with the computed optimum). It never signals bad input.
	ErrInternal = errors.New("tsp: internal error")
)

// Options configures the solver.
type Options struct {
	// MaxCities is the capacity guard for n. Must be in [1..HardMaxCities].
	MaxCities int
}

// DefaultOptions returns the recommended configuration.
func DefaultOptions() Options {
	return Options{MaxCities: DefaultMaxCities}
}

// Result holds the outcome of a full solve.
type Result struct {
	// Tour is the sequence of city indices, starting and ending at Origin.
	// For n cities, len(Tour) == n+1 and Tour[0] == Tour[n] == 0.
	Tour []int

	// Cost is the total distance of the cycle.
	Cost int
}
