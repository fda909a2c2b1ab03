// Package heuristic provides the distance estimators A* uses to order its
// frontier, behind one uniform interface.
//
// Every estimator implements
//
//	Estimate(pos, goal gridgraph.Position, c Context) float64
//
// Context carries optional search information (currently the start cell).
// Estimators that do not need it ignore it, so the engine never switches on
// heuristic identity.
//
// Built-in estimators:
//
//	name       formula                                     admissible for
//	manhattan  |Δr| + |Δc|                                 4-directional movement
//	euclidean  √(Δr² + Δc²)                                any movement
//	chebyshev  max(|Δr|, |Δc|)                             8-directional, any diagonal cost ≥ 1
//	octile     (Δr+Δc) + (√2−2)·min(Δr,Δc)                 8-directional, diagonal cost √2
//	custom     2·manhattan + 0.001·|cross(pos−goal, start−goal)|   never (weighted, greedy)
//
// The custom estimator is a deliberate weighted-A* variant: doubling Manhattan
// makes the search behave like best-first search and the cross-product term
// keeps expansion close to the straight start→goal line. Paths found with it
// are valid but not guaranteed shortest.
//
// Lookup resolves names case-insensitively. Unknown names fail with
// ErrUnknownHeuristic; there is no silent fallback.
package heuristic
