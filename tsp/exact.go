package tsp

import "fmt"

// Solver computes optimal tours for one distance matrix with the Held–Karp
// recursion. It owns a private copy of the matrix and its StateSpace, so
// nothing leaks between instances; create a new Solver per matrix.
//
// A Solver is not safe for concurrent use.
type Solver struct {
	dist  [][]int
	space *StateSpace
	evals int // memo entries filled so far
}

// NewSolver validates dist once and allocates the memo tables.
//
// Contracts:
//   - dist is n×n with 1 ≤ n ≤ opts.MaxCities;
//   - every entry is in [0..MaxDistance].
//
// Errors: ErrInvalidInput, ErrInvalidSize.
//
// Complexity: O(n²) validation + O(n·2ⁿ) allocation.
func NewSolver(dist [][]int, opts Options) (*Solver, error) {
	n, err := validateDistances(dist, opts)
	if err != nil {
		return nil, err
	}

	space, err := NewStateSpace(n, opts)
	if err != nil {
		return nil, err
	}

	// Private copy: the memo is only valid for the matrix it was built from.
	var (
		cp = make([][]int, n)
		i  int
	)
	for i = 0; i < n; i++ {
		cp[i] = append([]int(nil), dist[i]...)
	}

	return &Solver{dist: cp, space: space}, nil
}

// N returns the number of cities.
func (s *Solver) N() int { return s.space.n }

// States exposes the memo tables (read-only use).
func (s *Solver) States() *StateSpace { return s.space }

// Evaluations returns how many (pos, visited) states have been computed.
// Memo hits do not count, so repeating a Solve call leaves it unchanged.
func (s *Solver) Evaluations() int { return s.evals }

// Solve returns the minimum cost to complete a tour from city pos, having
// already visited the cities in visited, and finishing at Origin.
// The top-level call is Solve(Origin, Bit(Origin)).
//
// As a side effect the cost and choice tables are filled for every state
// reached; Reconstruct reads them afterwards.
//
// Contracts:
//   - 0 ≤ pos < n;
//   - visited ⊆ FullMask(n), and contains both pos and Origin.
//
// Errors: ErrInvalidInput for a state outside the instance.
//
// Complexity: O(n²·2ⁿ) time over the whole state space, O(n) stack.
func (s *Solver) Solve(pos int, visited Mask) (int, error) {
	if err := s.checkState(pos, visited); err != nil {
		return 0, err
	}

	return s.solve(pos, visited), nil
}

// solve is the memoized recursion. All states reaching it are valid.
func (s *Solver) solve(pos int, visited Mask) int {
	// Every city visited: close the cycle back to the origin.
	if visited == s.space.full {
		return s.dist[pos][Origin]
	}
	if c, ok := s.space.Lookup(pos, visited); ok {
		return c
	}

	var (
		n      = s.space.n
		row    = s.dist[pos]
		best   int
		choice = -1 // -1 until the first candidate
		city   int
		cand   int
	)
	// Ascending city order with strict '<': the lowest index wins ties.
	for city = 0; city < n; city++ {
		if visited.Has(city) {
			continue
		}
		cand = row[city] + s.solve(city, visited.With(city))
		if choice < 0 || cand < best {
			best = cand
			choice = city
		}
	}

	s.space.store(pos, visited, best, choice)
	s.evals++

	return best
}

// checkState verifies that (pos, visited) is a state of this instance from
// which a tour back to Origin can be completed.
//
// Complexity: O(1).
func (s *Solver) checkState(pos int, visited Mask) error {
	if pos < 0 || pos >= s.space.n {
		return fmt.Errorf("%w: city %d out of range [0,%d)", ErrInvalidInput, pos, s.space.n)
	}
	if visited > s.space.full {
		return fmt.Errorf("%w: visited set %#b wider than %d cities", ErrInvalidInput, uint32(visited), s.space.n)
	}
	if !visited.Has(pos) {
		return fmt.Errorf("%w: visited set %#b does not contain city %d", ErrInvalidInput, uint32(visited), pos)
	}
	if !visited.Has(Origin) {
		return fmt.Errorf("%w: visited set %#b does not contain origin", ErrInvalidInput, uint32(visited))
	}

	return nil
}
