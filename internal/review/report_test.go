package review

import (
	"strings"
	"testing"
)

func TestAssembleReport_SectionOrder(t *testing.T) {
	files := ParseDiff(singleFileDiff)
	summary := BuildSummary(files)
	report := AssembleReport(summary, files, "THE NARRATIVE")

	header := strings.Index(report, reportHeader)
	table := strings.Index(report, tableHeader)
	details := strings.Index(report, "<details>")
	narrative := strings.Index(report, "THE NARRATIVE")

	if header != 0 {
		t.Fatalf("report must start with the fixed header")
	}
	if !(header < table && table < details && details < narrative) {
		t.Fatalf("sections out of order: %d %d %d %d", header, table, details, narrative)
	}
}

func TestAssembleReport_ExcerptsPerFile(t *testing.T) {
	files := ParseDiff(twoFileDiff)
	report := AssembleReport(BuildSummary(files), files, "n")
	if !strings.Contains(report, "**`a.py`**") {
		t.Fatalf("excerpt heading for a.py missing:\n%s", report)
	}
	if !strings.Contains(report, "```diff\n@@ -1,3 +1,7 @@") {
		t.Fatalf("fenced hunk excerpt missing:\n%s", report)
	}
}

func TestMinimalReport(t *testing.T) {
	r := MinimalReport()
	if !strings.HasPrefix(r, reportHeader) {
		t.Fatalf("minimal report missing header: %q", r)
	}
	if !strings.Contains(r, "No relevant changes") {
		t.Fatalf("minimal report missing notice: %q", r)
	}
}
