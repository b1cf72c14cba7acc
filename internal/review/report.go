package review

import (
	"fmt"
	"strings"
)

const (
	reportHeader   = "## 🤖 Code Review Summary"
	summaryHeading = "### 1️⃣ Change Summary"
)

// AssembleReport concatenates the fixed header, the Change Summary table, a
// collapsible per-file excerpt section, and the narrative text, in that
// order. The report is never mutated after assembly.
func AssembleReport(summary Summary, files []*FileChange, narrative string) string {
	var b strings.Builder
	b.WriteString(reportHeader)
	b.WriteString("\n\n")
	b.WriteString(summaryHeading)
	b.WriteByte('\n')
	b.WriteString(summary.Render())
	b.WriteString("\n\n")
	if excerpts := renderExcerpts(files); excerpts != "" {
		b.WriteString(excerpts)
		b.WriteString("\n\n")
	}
	b.WriteString(strings.TrimSpace(narrative))
	b.WriteByte('\n')
	return b.String()
}

// renderExcerpts wraps one short snippet per file in a collapsible block.
func renderExcerpts(files []*FileChange) string {
	if len(files) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<details>\n<summary>Diff excerpts</summary>\n")
	for _, f := range files {
		fmt.Fprintf(&b, "\n**`%s`**\n\n```diff\n%s\n```\n", f.Path, Snippet(f))
	}
	b.WriteString("</details>")
	return b.String()
}

// MinimalReport is the comment body used when every changed path was
// excluded from review.
func MinimalReport() string {
	return reportHeader + "\n\nNo relevant changes found in this pull request.\n"
}
