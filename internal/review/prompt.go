package review

import (
	"fmt"
	"strings"
)

// systemPrompt is the role instruction sent with every narrative request.
const systemPrompt = "You are a concise, structured PR reviewer."

// Section declares one narrative section the model is asked to produce.
// Sections are plain data rendered by concatenation; the numbering continues
// after the locally rendered Change Summary section.
type Section struct {
	Title       string
	Instruction string
}

// DefaultSections covers the three narrative sections of the posted report.
var DefaultSections = []Section{
	{
		Title: "2️⃣ PR Overview",
		Instruction: "Analyze the diff above and describe the primary objectives of this PR, " +
			"noting any file additions or deletions, and summarizing the expected impact on " +
			"functionality, performance, and maintainability.",
	},
	{
		Title: "3️⃣ File-level Changes",
		Instruction: "For each file in the Change Summary, provide bullet points detailing key " +
			"modifications, additions, and deletions. Include brief code snippets from the diff " +
			"for context.",
	},
	{
		Title: "4️⃣ Recommendations / Improvements",
		Instruction: "Based on the diff, suggest actionable recommendations such as adding null " +
			"checks, improving validation, refactoring duplicated logic, and updating " +
			"documentation or tests.",
	},
}

// BuildPrompt renders the user-role prompt: the section instructions, the
// rendered Change Summary table, and the fenced diff text.
func BuildPrompt(sections []Section, summaryTable, diffText string) string {
	var b strings.Builder
	for _, s := range sections {
		fmt.Fprintf(&b, "### %s\n%s\n\n", s.Title, s.Instruction)
	}
	b.WriteString("### Change Summary\n")
	b.WriteString(summaryTable)
	b.WriteString("\n\n### Full Diff\n```diff\n")
	b.WriteString(strings.TrimRight(diffText, "\n"))
	b.WriteString("\n```")
	return b.String()
}
