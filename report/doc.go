// Package report turns search results into the shapes consumed outside the
// engine: a stable JSON Record, an append-only CSV run log, and per-heuristic
// summaries rendered as text tables.
//
// What:
//
//   - Record    one search, serialised as
//     {success, path, explored, nodes_explored, path_length, path_cost, time_taken, heuristic}
//     with positions as [row, col] pairs and time_taken in seconds.
//   - Row       one line of the CSV run log.
//   - CSVLog    goroutine-safe appender; the header is written once per file.
//   - Summarize per-heuristic averages over successful runs plus success rate.
//   - Winner    the heuristic with the lowest average nodes explored.
//
// Errors:
//
//   - ErrNilResult  FromResult was given a nil *astar.Result.
//   - ErrNoWinner   no heuristic had a successful run.
package report
