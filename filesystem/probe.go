package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// FS is the set of filesystem primitives the prompt resolver depends on.
type FS interface {
	IsFile(path string) bool
	IsDir(path string) bool
	MkdirAll(path string) error    // Idempotent
	CreateEmpty(path string) error // Parent must exist
	Stat(path string) (fs.FileInfo, error)
	Glob(dir, pattern string) ([]string, error) // Pattern is relative to dir; matches include dir
}

// OS implements FS on the host filesystem.
type OS struct{}

// IsFile reports whether path names an existing regular file.
func (OS) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path names an existing directory.
func (OS) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (OS) MkdirAll(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", path, err)
	}
	return nil
}

// CreateEmpty creates an empty file, truncating one that already exists.
func (OS) CreateEmpty(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("cannot create file %s: %w", path, err)
	}
	return f.Close()
}

func (OS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// Glob returns the paths under dir matching a slash-separated pattern.
// Patterns support ** for recursive matches. Only the pattern is glob
// syntax: brackets or braces in dir are taken literally.
func (OS) Glob(dir, pattern string) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	matches, err := doublestar.Glob(os.DirFS(dir), pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	for i, m := range matches {
		matches[i] = filepath.Join(dir, filepath.FromSlash(m))
	}
	return matches, nil
}
