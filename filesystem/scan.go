package filesystem

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultFilter matches every file that has an extension.
var DefaultFilter = []string{"*"}

// NormalizeFilter turns filter tokens into slash-separated glob patterns
// relative to the scanned directory.
//
// Rules, in order:
//   - "*.ext" is used as-is
//   - ".ext" becomes "*.ext"
//   - "ext" becomes "*.ext"
func NormalizeFilter(tokens []string) []string {
	if len(tokens) == 0 {
		tokens = DefaultFilter
	}

	patterns := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = filepath.ToSlash(token)
		switch {
		case strings.HasPrefix(token, "*."):
			patterns = append(patterns, token)
		case strings.HasPrefix(token, "."):
			patterns = append(patterns, "*"+token)
		default:
			patterns = append(patterns, "*."+token)
		}
	}
	return patterns
}

// ValidateFilter reports the first token whose pattern cannot be matched.
func ValidateFilter(tokens []string) error {
	for i, pattern := range NormalizeFilter(tokens) {
		if !doublestar.ValidatePattern(pattern) {
			token := "*"
			if i < len(tokens) {
				token = tokens[i]
			}
			return fmt.Errorf("invalid filter %q (pattern %q): %w", token, pattern, doublestar.ErrBadPattern)
		}
	}
	return nil
}

// Scan returns the regular files in dir matching any of the filter tokens.
// The result is deduplicated and sorted lexicographically so repeated scans
// of the same directory list files in the same order.
//
// Hidden files (base name starting with ".") are skipped unless the pattern
// itself starts with a dot.
func Scan(fsys FS, dir string, tokens []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range NormalizeFilter(tokens) {
		matches, err := fsys.Glob(dir, pattern)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			if seen[match] || !fsys.IsFile(match) {
				continue
			}
			if hidden(match) && !strings.HasPrefix(pattern, ".") {
				continue
			}
			seen[match] = true
			files = append(files, match)
		}
	}

	sort.Strings(files)
	return files, nil
}

func hidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
