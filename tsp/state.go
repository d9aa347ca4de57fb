// Package tsp — per-instance memo storage for the Held–Karp recursion.
//
// A StateSpace holds, for every pair (pos, visited):
//   - cost:  minimum cost to finish the tour from pos having visited 'visited';
//   - known: whether cost has been computed (explicit presence flag, no sentinel
//     value that could be mistaken for a real cost or overflow when added);
//   - next:  the city chosen next on an optimal completion, or noChoice.
//
// Layout: three flat slices of length n·2ⁿ indexed by pos<<n | visited, so a
// lookup is one shift, one OR and one load.
//
// Complexity: O(n·2ⁿ) memory, O(1) per access.
package tsp

import (
	"fmt"

	"go.uber.org/zap"
)

// noChoice marks a terminal or not-yet-evaluated entry of the choice table.
const noChoice int8 = -1

// StateSpace owns the memo tables of one problem instance.
// It is not safe for concurrent use.
type StateSpace struct {
	n     int    // number of cities
	full  Mask   // (1<<n)-1, every city visited
	cost  []int  // best completion cost, valid only where known[i]
	known []bool // presence flag for cost
	next  []int8 // chosen successor, noChoice when absent
}

// NewStateSpace allocates fresh tables for an n-city instance.
//
// Contracts:
//   - opts.MaxCities in [1..HardMaxCities];
//   - 1 ≤ n ≤ opts.MaxCities (n == 1 is the degenerate single-city tour).
//
// Errors: ErrInvalidSize.
//
// Complexity: O(n·2ⁿ) time and memory.
func NewStateSpace(n int, opts Options) (*StateSpace, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if n <= 0 || n > opts.MaxCities {
		return nil, fmt.Errorf("%w: n=%d, want 1..%d", ErrInvalidSize, n, opts.MaxCities)
	}

	var states = n << uint(n) // n rows of 2ⁿ masks
	s := &StateSpace{
		n:     n,
		full:  FullMask(n),
		cost:  make([]int, states),
		known: make([]bool, states),
		next:  make([]int8, states),
	}
	s.Reset()

	Logger().Debug("state space allocated",
		zap.Int("cities", n),
		zap.Int("states", states),
	)

	return s, nil
}

// Reset marks every entry as unknown with no successor, so the tables can be
// reused for another solve of the same instance size.
//
// Complexity: O(n·2ⁿ).
func (s *StateSpace) Reset() {
	var i int
	for i = range s.next {
		s.cost[i] = 0
		s.known[i] = false
		s.next[i] = noChoice
	}
}

// N returns the number of cities.
func (s *StateSpace) N() int { return s.n }

// Full returns the all-visited mask.
func (s *StateSpace) Full() Mask { return s.full }

// Contains reports whether (pos, visited) addresses an entry of the tables.
func (s *StateSpace) Contains(pos int, visited Mask) bool {
	return pos >= 0 && pos < s.n && visited <= s.full
}

// Lookup returns the memoized cost of (pos, visited) and whether it is set.
// Out-of-range states report false.
func (s *StateSpace) Lookup(pos int, visited Mask) (int, bool) {
	if !s.Contains(pos, visited) {
		return 0, false
	}
	i := s.index(pos, visited)
	if !s.known[i] {
		return 0, false
	}

	return s.cost[i], true
}

// Next returns the recorded successor of (pos, visited) and whether one exists.
// Terminal states (visited == Full) and unevaluated states report false.
func (s *StateSpace) Next(pos int, visited Mask) (int, bool) {
	if !s.Contains(pos, visited) {
		return 0, false
	}
	c := s.next[s.index(pos, visited)]
	if c == noChoice {
		return 0, false
	}

	return int(c), true
}

// store records the evaluated cost and successor of (pos, visited).
// The caller guarantees Contains(pos, visited) and 0 ≤ next < n.
func (s *StateSpace) store(pos int, visited Mask, cost int, next int) {
	i := s.index(pos, visited)
	s.cost[i] = cost
	s.known[i] = true
	s.next[i] = int8(next)
}

// index maps (pos, visited) to the flat table offset.
func (s *StateSpace) index(pos int, visited Mask) int {
	return pos<<uint(s.n) | int(visited)
}
