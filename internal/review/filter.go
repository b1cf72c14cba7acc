package review

import "strings"

// PathExcluder reports whether a path is excluded from the summary and the
// narrative prompt.
type PathExcluder func(path string) bool

// PrefixExcluder builds an excluder matching any of the given path prefixes.
// Blank prefixes are ignored; an empty list excludes nothing.
func PrefixExcluder(prefixes []string) PathExcluder {
	cleaned := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return func(path string) bool {
		for _, p := range cleaned {
			if strings.HasPrefix(path, p) {
				return true
			}
		}
		return false
	}
}

// FilterFiles splits parsed files into included and skipped sets, preserving
// the input order.
func FilterFiles(files []*FileChange, excluded PathExcluder) (included, skipped []*FileChange) {
	for _, f := range files {
		if excluded != nil && excluded(f.Path) {
			skipped = append(skipped, f)
			continue
		}
		included = append(included, f)
	}
	return included, skipped
}
