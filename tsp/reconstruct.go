package tsp

import "fmt"

// Reconstruct returns the visiting order of the optimal completion from
// (start, visited), as recorded by a prior Solve with the same arguments.
// The top-level call is Reconstruct(Origin, Bit(Origin)), which yields
// n+1 cities: Origin, every other city exactly once, then Origin again.
//
// The walk follows the choice table until it meets a state without a
// successor, which happens exactly when every city has been visited, and
// then appends Origin to close the cycle.
//
// Errors:
//   - ErrInvalidInput for a state outside the instance;
//   - ErrNotSolved when Solve(start, visited) has not been run.
//
// Complexity: O(n).
func (s *Solver) Reconstruct(start int, visited Mask) ([]int, error) {
	if err := s.checkState(start, visited); err != nil {
		return nil, err
	}
	if visited != s.space.full {
		if _, ok := s.space.Lookup(start, visited); !ok {
			return nil, fmt.Errorf("%w: city %d, visited %#b", ErrNotSolved, start, uint32(visited))
		}
	}

	var (
		tour    = make([]int, 0, s.space.n-visited.Count()+2)
		current = start
		mask    = visited
		next    int
		ok      bool
	)
	tour = append(tour, start)
	for {
		next, ok = s.space.Next(current, mask)
		if !ok {
			break
		}
		tour = append(tour, next)
		mask = mask.With(next)
		current = next
	}
	tour = append(tour, Origin)

	return tour, nil
}
