package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Summarize groups rows by heuristic and returns one Summary per heuristic,
// sorted by name.
func Summarize(rows []Row) []Summary {
	byName := make(map[string]*Summary)
	for _, r := range rows {
		s, ok := byName[r.Heuristic]
		if !ok {
			s = &Summary{Heuristic: r.Heuristic}
			byName[r.Heuristic] = s
		}
		s.Runs++
		if !r.Success {
			continue
		}
		s.Successes++
		s.AvgNodes += float64(r.NodesExplored)
		s.AvgPathLength += float64(r.PathLength)
		s.AvgTime += r.TimeSeconds
	}

	out := make([]Summary, 0, len(byName))
	for _, s := range byName {
		if s.Successes > 0 {
			n := float64(s.Successes)
			s.AvgNodes /= n
			s.AvgPathLength /= n
			s.AvgTime /= n
		}
		s.SuccessRate = 100 * float64(s.Successes) / float64(s.Runs)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Heuristic < out[j].Heuristic })

	return out
}

// Winner returns the summary with the lowest average nodes explored among
// heuristics with at least one success. Ties go to the earlier entry.
func Winner(summaries []Summary) (Summary, error) {
	best := -1
	for i, s := range summaries {
		if s.Successes == 0 {
			continue
		}
		if best < 0 || s.AvgNodes < summaries[best].AvgNodes {
			best = i
		}
	}
	if best < 0 {
		return Summary{}, ErrNoWinner
	}

	return summaries[best], nil
}

// RenderTable writes summaries as a text table.
func RenderTable(w io.Writer, summaries []Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Heuristic", "Runs", "Avg Nodes", "Avg Path", "Avg Time (s)", "Success Rate"})
	for _, s := range summaries {
		t.AppendRow(table.Row{
			s.Heuristic,
			s.Runs,
			fmt.Sprintf("%.1f", s.AvgNodes),
			fmt.Sprintf("%.1f", s.AvgPathLength),
			fmt.Sprintf("%.6f", s.AvgTime),
			fmt.Sprintf("%.1f%%", s.SuccessRate),
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	t.Render()
}

// RenderRecords writes one line per record, in order, for side-by-side
// comparison of heuristics on a single maze.
func RenderRecords(w io.Writer, records []Record) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Heuristic", "Success", "Nodes Explored", "Path Length", "Path Cost", "Time (s)"})
	for _, r := range records {
		t.AppendRow(table.Row{
			r.Heuristic,
			r.Success,
			r.NodesExplored,
			r.PathLength,
			fmt.Sprintf("%.4f", r.PathCost),
			fmt.Sprintf("%.6f", r.TimeTaken),
		})
	}
	t.Render()
}
