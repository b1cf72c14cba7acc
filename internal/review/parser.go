package review

import "strings"

// ParseDiff scans unified-diff text into per-file change records, keyed by
// post-change path in first-seen order. Parsing is total: malformed or
// truncated input degrades to a partial or empty result, never an error.
func ParseDiff(text string) []*FileChange {
	var (
		files   []*FileChange
		byPath  = map[string]*FileChange{}
		current *FileChange
	)
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "diff --git ") {
			path := headerPath(line)
			if path == "" {
				// unusable header; drop the context so stray +/- lines
				// are not attributed to the previous file
				current = nil
				continue
			}
			if existing, ok := byPath[path]; ok {
				current = existing
			} else {
				current = &FileChange{Path: path}
				byPath[path] = current
				files = append(files, current)
			}
			continue
		}
		if current == nil {
			continue
		}
		current.Hunks = append(current.Hunks, line)
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			// file header lines, not content
		case strings.HasPrefix(line, "+"):
			current.Added++
		case strings.HasPrefix(line, "-"):
			current.Removed++
		}
		if strings.HasPrefix(line, "new file mode") {
			current.Created = true
		} else if strings.HasPrefix(line, "deleted file mode") {
			current.Deleted = true
		}
	}
	return files
}

// headerPath extracts the post-change path from a
// "diff --git a/<old> b/<new>" header line.
func headerPath(line string) string {
	idx := strings.LastIndex(line, " b/")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(line[idx+len(" b/"):])
}
