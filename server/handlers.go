package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathlab/astar"
	"github.com/katalvlaran/pathlab/gridgraph"
	"github.com/katalvlaran/pathlab/heuristic"
	"github.com/katalvlaran/pathlab/mazegen"
	"github.com/katalvlaran/pathlab/report"
)

type errorResp struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResp{Error: msg})
}

// statusFor maps engine errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, astar.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, gridgraph.ErrEmptyGrid),
		errors.Is(err, gridgraph.ErrNonRectangular),
		errors.Is(err, gridgraph.ErrInvalidCell),
		errors.Is(err, astar.ErrOutOfBounds),
		errors.Is(err, astar.ErrBlockedEndpoint),
		errors.Is(err, heuristic.ErrUnknownHeuristic),
		errors.Is(err, astar.ErrExpansionLimit):
		return http.StatusUnprocessableEntity
	case errors.Is(err, astar.ErrAborted):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// decode reads a JSON body into v, answering 400 itself on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}

	return true
}

// checkSize rejects grids larger than MaxGridSize in either dimension.
func (s *Server) checkSize(grid [][]int) error {
	if len(grid) > s.cfg.MaxGridSize || (len(grid) > 0 && len(grid[0]) > s.cfg.MaxGridSize) {
		return fmt.Errorf("grid exceeds %d cells per side", s.cfg.MaxGridSize)
	}

	return nil
}

// search runs one request with the server-wide cap and records metrics.
func (s *Server) search(r *http.Request, req astar.Request) (report.Record, error) {
	name := req.HeuristicName()
	res, err := astar.Run(r.Context(), req, astar.WithMaxExpansions(s.cfg.MaxExpansions))
	if err != nil {
		s.metrics.Observe(name, nil)
		return report.Record{}, err
	}
	s.metrics.Observe(name, res)

	return report.FromResult(res, name)
}

// ---- Index ----

type indexResp struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, indexResp{Status: "Heuristic Pathfinding API running", Version: s.cfg.Version})
}

// ---- Generate ----

const (
	defaultMazeSize     = 15
	defaultObstacleProb = 0.3
)

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	size := defaultMazeSize
	if v := q.Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > s.cfg.MaxGridSize {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("size must be an integer in [1, %d]", s.cfg.MaxGridSize))
			return
		}
		size = n
	}
	p := defaultObstacleProb
	if v := q.Get("p"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "p must be a number in [0, 1]")
			return
		}
		p = f
	}
	seed := s.seed()
	if v := q.Get("seed"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "seed must be an integer")
			return
		}
		seed = n
	}
	rng := rand.New(rand.NewSource(seed))

	var (
		m   *mazegen.Maze
		err error
	)
	switch mode := strings.ToLower(q.Get("mode")); mode {
	case "", "random":
		m, err = mazegen.Random(size, size, p, rng)
	case "carved":
		m, err = mazegen.Carved(size, rng)
	case "kruskal":
		m, err = mazegen.Kruskal(size, rng)
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown mode %q (want random, carved or kruskal)", mode))
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if solvable, _ := strconv.ParseBool(q.Get("solvable")); solvable {
		diagonal, _ := strconv.ParseBool(q.Get("diagonal"))
		if _, err := mazegen.EnsurePath(m, diagonal); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}
	writeJSON(w, http.StatusOK, m)
}

// ---- Solve ----

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req astar.Request
	if !s.decode(w, r, &req) {
		return
	}
	if len(req.Grid) == 0 || len(req.Start) == 0 || len(req.Goal) == 0 {
		writeError(w, http.StatusBadRequest, "Missing data")
		return
	}
	if err := s.checkSize(req.Grid); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rec, err := s.search(r, req)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// ---- Compare ----

type compareReq struct {
	Grid          [][]int  `json:"grid"`
	Start         []int    `json:"start"`
	Goal          []int    `json:"goal"`
	Heuristics    []string `json:"heuristics"`
	AllowDiagonal bool     `json:"allow_diagonal"`
}

type compareResp struct {
	Results []report.Record `json:"results"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareReq
	if !s.decode(w, r, &req) {
		return
	}
	if len(req.Grid) == 0 || len(req.Start) == 0 || len(req.Goal) == 0 {
		writeError(w, http.StatusBadRequest, "Missing data")
		return
	}
	if err := s.checkSize(req.Grid); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	names := req.Heuristics
	if len(names) == 0 {
		names = []string{astar.DefaultHeuristic}
	}
	// reject unknown names before any search starts
	for _, name := range names {
		if _, err := heuristic.Lookup(name); err != nil {
			writeError(w, statusFor(err), err.Error())
			return
		}
	}

	records := make([]report.Record, len(names))
	var g errgroup.Group
	g.SetLimit(s.cfg.Parallel)
	for i, name := range names {
		g.Go(func() error {
			rec, err := s.search(r, astar.Request{
				Grid:          req.Grid,
				Start:         req.Start,
				Goal:          req.Goal,
				Heuristic:     name,
				AllowDiagonal: req.AllowDiagonal,
			})
			if err != nil {
				return err
			}
			records[i] = rec

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	now := time.Now()
	size := fmt.Sprintf("%dx%d", len(req.Grid), len(req.Grid[0]))
	rows := make([]report.Row, len(records))
	for i, rec := range records {
		rows[i] = rec.Row(now, uuid.NewString(), size)
	}
	if err := s.csv.Append(rows...); err != nil {
		s.log.Error("csv append failed", "path", s.csv.Path(), "error", err)
	}
	writeJSON(w, http.StatusOK, compareResp{Results: records})
}

// ---- Download ----

func (s *Server) handleDownloadCSV(w http.ResponseWriter, r *http.Request) {
	if !s.csv.Exists() {
		writeError(w, http.StatusNotFound, "No data found")
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="heuristic_data.csv"`)
	if _, err := s.csv.WriteTo(w); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			writeError(w, http.StatusNotFound, "No data found")
			return
		}
		s.log.Error("csv download failed", "error", err)
	}
}
