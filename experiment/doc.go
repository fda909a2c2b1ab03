// Package experiment runs heuristic comparison suites: for every difficulty
// level it generates a batch of mazes from a fixed seed, solves each maze
// with every configured heuristic in parallel, and checks each cost against
// a uniform-cost oracle.
//
// A suite is described by Config, loaded from YAML or taken from one of the
// embedded presets (see Presets). Run returns a Report whose trials are
// ordered by difficulty, then maze, then heuristic, independent of the order
// in which workers finish.
package experiment
