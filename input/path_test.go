package input

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/simonhull/firebird-suite/perch/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_FileExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exists.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	h := newHarness(t, path)
	res := Resolve(h.p, Spec[string]{Title: "File", Kind: File(NoCreate)})

	assert.Equal(t, path, res.Value)
	assert.Equal(t, Answered, res.Outcome)
}

func TestResolve_FileMissingWithoutAutoCreate(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")

	h := newHarness(t, missing)
	res := Resolve(h.p, Spec[string]{Title: "File", Kind: File(NoCreate), MaxRetry: 1})

	assert.Equal(t, Exhausted, res.Outcome)
	var ce *CoercionError
	require.True(t, errors.As(res.Err, &ce))
	assert.Equal(t, PathNotFound, ce.Reason)
	assert.NoFileExists(t, missing)
}

func TestResolve_FileDirectoryIsNotAFile(t *testing.T) {
	dir := t.TempDir()

	h := newHarness(t, dir)
	res := Resolve(h.p, Spec[string]{Title: "File", Kind: File(NoCreate), MaxRetry: 1})

	assert.Equal(t, Exhausted, res.Outcome)
}

func TestResolve_FileAutoCreateConfirmed(t *testing.T) {
	chdir(t, t.TempDir())

	h := newHarness(t, "new.txt", "y")
	res := Resolve(h.p, Spec[string]{Title: "File", Kind: File(CreateWithConfirm)})

	assert.Equal(t, "new.txt", res.Value)
	assert.Equal(t, Answered, res.Outcome)
	assert.FileExists(t, "new.txt")
	assert.Equal(t, "File 'new.txt' does not exist, create it? [y/n]: ", h.reader.prompts[1])
	assert.Contains(t, h.out.String(), "Created file new.txt")
}

func TestResolve_FileAutoCreateNestedParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c.txt")

	h := newHarness(t, path)
	res := Resolve(h.p, Spec[string]{Title: "File", Kind: File(CreateSilently)})

	assert.Equal(t, path, res.Value)
	assert.FileExists(t, path)
	assert.Equal(t, 1, h.reader.reads(), "no confirmation when creating silently")
}

func TestResolve_FileAutoCreateDeclined(t *testing.T) {
	dir := t.TempDir()
	declined := filepath.Join(dir, "no.txt")
	existing := filepath.Join(dir, "yes.txt")
	require.NoError(t, os.WriteFile(existing, nil, 0644))

	h := newHarness(t, declined, "n", existing)
	res := Resolve(h.p, Spec[string]{Title: "File", Kind: File(CreateWithConfirm)})

	assert.Equal(t, existing, res.Value)
	assert.Equal(t, 1, res.Attempts)
	assert.NoFileExists(t, declined)

	var ce *CoercionError
	require.True(t, errors.As(res.Err, &ce))
	assert.Equal(t, CreationDeclined, ce.Reason)
}

func TestResolve_FolderAutoCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x", "y")

	h := newHarness(t, path, "Y")
	res := Resolve(h.p, Spec[string]{Title: "Folder", Kind: Folder(CreateWithConfirm)})

	assert.Equal(t, path, res.Value)
	assert.DirExists(t, path)
	assert.Contains(t, h.reader.prompts[1], "Folder '"+path+"' does not exist")
}

type createFailFS struct{ filesystem.OS }

func (createFailFS) CreateEmpty(path string) error {
	return errors.New("disk full")
}

func (createFailFS) MkdirAll(path string) error {
	return errors.New("disk full")
}

func TestResolve_CreationFailureIsCoercionFailure(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "f.txt")
		h := newHarnessFS(t, createFailFS{}, path)
		res := Resolve(h.p, Spec[string]{Title: "File", Kind: File(CreateSilently), Default: Default("fallback.txt"), MaxRetry: 1})

		assert.Equal(t, "fallback.txt", res.Value)
		assert.Equal(t, Exhausted, res.Outcome)

		var ce *CoercionError
		require.True(t, errors.As(res.Err, &ce))
		assert.Equal(t, CreationFailed, ce.Reason)
		assert.Contains(t, ce.Error(), "disk full")
	})

	t.Run("folder", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "d")
		h := newHarnessFS(t, createFailFS{}, path)
		res := Resolve(h.p, Spec[string]{Title: "Folder", Kind: Folder(CreateSilently), MaxRetry: 1})

		assert.Equal(t, Exhausted, res.Outcome)
		assert.False(t, res.Present)
	})
}
