package filesystem

import (
	"fmt"
	"path/filepath"
)

// Operation is a filesystem change made on behalf of the user.
//
// Execute performs the change. Partial results of a failed Execute are left
// in place; callers only learn that it failed.
//
// Description returns a human-readable description for output
// (e.g., "file notes/today.txt").
type Operation interface {
	Execute() error
	Description() string
}

// CreateFileOp creates an empty file along with any missing parent
// directories.
type CreateFileOp struct {
	FS   FS
	Path string
}

func (op *CreateFileOp) Execute() error {
	dir := filepath.Dir(op.Path)
	if dir != "." && !op.FS.IsDir(dir) {
		if err := op.FS.MkdirAll(dir); err != nil {
			return err
		}
	}
	return op.FS.CreateEmpty(op.Path)
}

func (op *CreateFileOp) Description() string {
	return fmt.Sprintf("file %s", op.Path)
}

// CreateDirOp creates a directory and all of its parents.
type CreateDirOp struct {
	FS   FS
	Path string
}

func (op *CreateDirOp) Execute() error {
	return op.FS.MkdirAll(op.Path)
}

func (op *CreateDirOp) Description() string {
	return fmt.Sprintf("folder %s", op.Path)
}
