package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// TimestampLayout formats the Timestamp column.
const TimestampLayout = "2006-01-02 15:04:05"

// Header is the first line of every run log.
var Header = []string{
	"Timestamp", "Run ID", "Maze Size", "Heuristic",
	"Nodes Explored", "Path Length", "Path Cost", "Time (s)", "Success",
}

// CSVLog appends rows to a CSV file. Safe for concurrent use.
type CSVLog struct {
	mu   sync.Mutex
	path string
}

// NewCSVLog returns a log writing to path. The file and its parent directory
// are created on the first Append.
func NewCSVLog(path string) *CSVLog {
	return &CSVLog{path: path}
}

// Path returns the file location.
func (l *CSVLog) Path() string { return l.path }

// Exists reports whether the log file has been created.
func (l *CSVLog) Exists() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, err := os.Stat(l.path)

	return err == nil
}

// Append writes rows, preceded by Header when the file is new or empty.
func (l *CSVLog) Append(rows ...Row) error {
	if len(rows) == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if dir := filepath.Dir(l.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("report: create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("report: open log: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("report: stat log: %w", err)
	}
	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(Header); err != nil {
			return fmt.Errorf("report: write header: %w", err)
		}
	}
	for _, r := range rows {
		if err := w.Write(r.fields()); err != nil {
			return fmt.Errorf("report: write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("report: flush log: %w", err)
	}

	return f.Close()
}

// WriteTo copies the whole log to w while holding the append lock. A log
// that was never written returns an error matching os.ErrNotExist.
func (l *CSVLog) WriteTo(w io.Writer) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	f, err := os.Open(l.path)
	if err != nil {
		return 0, fmt.Errorf("report: open log: %w", err)
	}
	defer f.Close()

	return io.Copy(w, f)
}

func (r Row) fields() []string {
	return []string{
		r.Timestamp.Format(TimestampLayout),
		r.RunID,
		r.MazeSize,
		r.Heuristic,
		strconv.Itoa(r.NodesExplored),
		strconv.Itoa(r.PathLength),
		strconv.FormatFloat(r.PathCost, 'f', 4, 64),
		strconv.FormatFloat(r.TimeSeconds, 'f', 6, 64),
		strconv.FormatBool(r.Success),
	}
}
