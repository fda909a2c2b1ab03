// Package server exposes the pathfinding engine as a JSON HTTP API.
//
//	GET  /              service status and version
//	GET  /generate      new maze: ?size=15&mode=random|carved&p=0.3&seed=N&solvable=1
//	POST /solve         one search: {grid, start, goal, heuristic, allow_diagonal}
//	POST /compare       several heuristics on one maze, appended to the CSV log
//	GET  /download-csv  the CSV log as an attachment
//	GET  /metrics       Prometheus exposition
//
// Request problems answer 400, input the engine rejects answers 422, both
// with a {"error": "..."} body. Every request is logged through slog and
// carries a CORS header for the browser frontend.
package server
