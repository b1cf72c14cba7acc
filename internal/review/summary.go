package review

import (
	"fmt"
	"path"
	"strings"
)

// SummaryRow is one displayed line of the Change Summary table.
type SummaryRow struct {
	Name    string // basename, used for display
	Path    string // full path, kept for snippet lookup
	Added   int
	Removed int
}

// Total is the combined line-change count of the row.
func (r SummaryRow) Total() int { return r.Added + r.Removed }

// Summary aggregates the included per-file rows plus grand totals. Rows
// preserve the order in which paths first appeared in the diff.
type Summary struct {
	Rows         []SummaryRow
	TotalAdded   int
	TotalRemoved int
}

func (s Summary) TotalChanged() int { return s.TotalAdded + s.TotalRemoved }

func (s Summary) Empty() bool { return len(s.Rows) == 0 }

// BuildSummary derives the Change Summary from already-filtered files.
func BuildSummary(files []*FileChange) Summary {
	var s Summary
	for _, f := range files {
		s.Rows = append(s.Rows, SummaryRow{
			Name:    path.Base(f.Path),
			Path:    f.Path,
			Added:   f.Added,
			Removed: f.Removed,
		})
		s.TotalAdded += f.Added
		s.TotalRemoved += f.Removed
	}
	return s
}

const (
	tableHeader  = "| File                 | +Adds | -Removes | ΔTotal |"
	tableDivider = "|:---------------------|:-----:|:--------:|:------:|"
)

// Render emits the markdown table. Output is byte-identical for equal
// summaries: fixed column widths, rows in summary order, totals last.
func (s Summary) Render() string {
	var b strings.Builder
	b.WriteString(tableHeader)
	b.WriteByte('\n')
	b.WriteString(tableDivider)
	for _, r := range s.Rows {
		b.WriteByte('\n')
		fmt.Fprintf(&b, "| `%s` | %4d | %4d | %5d |", r.Name, r.Added, r.Removed, r.Total())
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "| **Total**            | %4d | %4d | %5d |", s.TotalAdded, s.TotalRemoved, s.TotalChanged())
	return b.String()
}
