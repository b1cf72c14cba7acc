package review

import "strings"

// snippetContextLines is how many lines after the hunk header are kept in a
// file's illustrative excerpt.
const snippetContextLines = 5

const noSnippetPlaceholder = "(no hunk content)"

// Snippet returns the file's first hunk header together with the following
// few lines. Files without any "@@" marker (pure renames, mode changes)
// yield a placeholder.
func Snippet(f *FileChange) string {
	for i, line := range f.Hunks {
		if strings.HasPrefix(line, "@@") {
			end := i + 1 + snippetContextLines
			if end > len(f.Hunks) {
				end = len(f.Hunks)
			}
			return strings.Join(f.Hunks[i:end], "\n")
		}
	}
	return noSnippetPlaceholder
}
