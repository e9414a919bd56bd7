package input

import (
	"fmt"

	"github.com/simonhull/firebird-suite/perch/filesystem"
)

// Create decides what a File or Folder prompt does with a path that does
// not exist.
type Create int

const (
	NoCreate          Create = iota // Missing paths fail the round
	CreateWithConfirm               // Ask before creating
	CreateSilently                  // Create without asking
)

type pathKind struct {
	dir    bool
	create Create
}

// File accepts the path of an existing regular file.
func File(create Create) Kind[string] { return pathKind{create: create} }

// Folder accepts the path of an existing directory.
func Folder(create Create) Kind[string] { return pathKind{dir: true, create: create} }

func (k pathKind) Name() string {
	if k.dir {
		return "folder"
	}
	return "file"
}

func (k pathKind) noun() string {
	if k.dir {
		return "Folder"
	}
	return "File"
}

func (pathKind) check() error { return nil }

func (k pathKind) render(r *round, def *string) (string, error) {
	if def == nil {
		return r.inlinePrompt("", false), nil
	}
	return r.inlinePrompt(*def, true), nil
}

func (k pathKind) coerce(r *round, raw string) (string, error) {
	fsys := r.p.fs
	if (k.dir && fsys.IsDir(raw)) || (!k.dir && fsys.IsFile(raw)) {
		return raw, nil
	}

	if k.create == NoCreate {
		return "", &CoercionError{Reason: PathNotFound, Input: raw}
	}

	if k.create == CreateWithConfirm {
		question := fmt.Sprintf("%s '%s' does not exist, create it?", k.noun(), raw)
		if !r.p.Confirm(question) {
			return "", &CoercionError{Reason: CreationDeclined, Input: raw}
		}
	}

	var op filesystem.Operation = &filesystem.CreateFileOp{FS: fsys, Path: raw}
	if k.dir {
		op = &filesystem.CreateDirOp{FS: fsys, Path: raw}
	}
	if err := op.Execute(); err != nil {
		return "", &CoercionError{Reason: CreationFailed, Input: raw, Err: err}
	}

	r.p.console.Success("Created " + op.Description())
	return raw, nil
}

func (pathKind) format(v string) string { return v }

func (pathKind) masked() bool { return false }
