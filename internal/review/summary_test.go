package review

import (
	"strings"
	"testing"
)

const twoFileDiff = `diff --git a/a.py b/a.py
index 1111111..2222222 100644
--- a/a.py
+++ b/a.py
@@ -1,3 +1,7 @@
 ctx
-gone
+one
+two
+three
+four
+five
 ctx
diff --git a/.github/workflows/x.yml b/.github/workflows/x.yml
index 3333333..4444444 100644
--- a/.github/workflows/x.yml
+++ b/.github/workflows/x.yml
@@ -1,1 +1,3 @@
 name: x
+a
+b
`

func TestFilterFiles_ExcludesPrefix(t *testing.T) {
	files := ParseDiff(twoFileDiff)
	included, skipped := FilterFiles(files, PrefixExcluder([]string{".github/"}))
	if len(included) != 1 || included[0].Path != "a.py" {
		t.Fatalf("expected only a.py included, got %d files", len(included))
	}
	if len(skipped) != 1 || skipped[0].Path != ".github/workflows/x.yml" {
		t.Fatalf("expected workflow file skipped, got %d files", len(skipped))
	}
}

func TestBuildSummary_EndToEnd(t *testing.T) {
	files := ParseDiff(twoFileDiff)
	included, _ := FilterFiles(files, PrefixExcluder([]string{".github/"}))
	s := BuildSummary(included)

	if len(s.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(s.Rows))
	}
	row := s.Rows[0]
	if row.Name != "a.py" || row.Added != 5 || row.Removed != 1 || row.Total() != 6 {
		t.Fatalf("unexpected row %+v", row)
	}
	if s.TotalAdded != 5 || s.TotalRemoved != 1 || s.TotalChanged() != 6 {
		t.Fatalf("unexpected totals +%d/-%d", s.TotalAdded, s.TotalRemoved)
	}
}

func TestBuildSummary_TotalsMatchRows(t *testing.T) {
	files := []*FileChange{
		{Path: "x/one.go", Added: 3, Removed: 2},
		{Path: "y/two.go", Added: 7, Removed: 0},
		{Path: "three.go", Added: 0, Removed: 4},
	}
	s := BuildSummary(files)

	var added, removed int
	for _, r := range s.Rows {
		added += r.Added
		removed += r.Removed
	}
	if s.TotalAdded != added || s.TotalRemoved != removed {
		t.Fatalf("totals %d/%d do not match row sums %d/%d", s.TotalAdded, s.TotalRemoved, added, removed)
	}
}

func TestBuildSummary_PreservesOrder(t *testing.T) {
	files := []*FileChange{
		{Path: "z/last.go"},
		{Path: "a/first.go"},
		{Path: "m/middle.go"},
	}
	s := BuildSummary(files)
	want := []string{"last.go", "first.go", "middle.go"}
	for i, w := range want {
		if s.Rows[i].Name != w {
			t.Fatalf("row %d: expected %q, got %q", i, w, s.Rows[i].Name)
		}
	}
}

func TestSummaryRender_Exact(t *testing.T) {
	s := BuildSummary([]*FileChange{{Path: "src/a.py", Added: 5, Removed: 1}})
	want := strings.Join([]string{
		"| File                 | +Adds | -Removes | ΔTotal |",
		"|:---------------------|:-----:|:--------:|:------:|",
		"| `a.py` |    5 |    1 |     6 |",
		"| **Total**            |    5 |    1 |     6 |",
	}, "\n")
	if got := s.Render(); got != want {
		t.Fatalf("unexpected table:\n%s\nwant:\n%s", got, want)
	}
}

func TestSummaryRender_Idempotent(t *testing.T) {
	s := BuildSummary(ParseDiff(twoFileDiff))
	if s.Render() != s.Render() {
		t.Fatalf("rendering the same summary twice differed")
	}
}

func TestSummaryRender_EmptyHasZeroTotals(t *testing.T) {
	s := BuildSummary(nil)
	if !s.Empty() {
		t.Fatalf("expected empty summary")
	}
	if s.TotalAdded != 0 || s.TotalRemoved != 0 {
		t.Fatalf("expected zero totals, got +%d/-%d", s.TotalAdded, s.TotalRemoved)
	}
	if !strings.Contains(s.Render(), "| **Total**            |    0 |    0 |     0 |") {
		t.Fatalf("expected zero totals row:\n%s", s.Render())
	}
}
