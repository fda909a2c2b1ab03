package heuristic

import (
	"fmt"
	"strings"
)

// registry holds the built-in estimators in table order.
var registry = []Heuristic{
	plain{Manhattan, ManhattanDistance},
	plain{Euclidean, EuclideanDistance},
	plain{Chebyshev, ChebyshevDistance},
	plain{Octile, OctileDistance},
	custom{},
}

// Lookup resolves a heuristic by name, ignoring case and surrounding space.
// Unknown names return ErrUnknownHeuristic wrapped with the requested name.
func Lookup(name string) (Heuristic, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, h := range registry {
		if h.Name() == key {
			return h, nil
		}
	}

	return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownHeuristic, name, strings.Join(Names(), ", "))
}

// MustLookup is like Lookup but panics on unknown names.
func MustLookup(name string) Heuristic {
	h, err := Lookup(name)
	if err != nil {
		panic(err)
	}

	return h
}

// Names returns the registered names in table order.
func Names() []string {
	out := make([]string, len(registry))
	for i, h := range registry {
		out[i] = h.Name()
	}

	return out
}

// Admissible reports whether name never overestimates under the given
// movement rule (orthogonal cost 1, diagonal cost √2), i.e. whether A* with
// it is guaranteed to return a shortest path.
//
//	manhattan: orthogonal movement only
//	euclidean: always
//	chebyshev: always (max(|Δr|,|Δc|) ≤ octile ≤ true cost)
//	octile:    always
//	custom:    never
//
// Unknown names report false.
func Admissible(name string, allowDiagonal bool) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Manhattan:
		return !allowDiagonal
	case Euclidean, Chebyshev, Octile:
		return true
	default:
		return false
	}
}
