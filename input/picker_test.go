package input

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/simonhull/firebird-suite/perch/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(name), 0644))
	}
}

func TestResolve_FileSelectByNumber(t *testing.T) {
	dir := t.TempDir()
	makeFiles(t, dir, "a.txt", "b.txt")

	tests := []struct {
		form OutputForm
		want string
	}{
		{Filename, "b.txt"},
		{FullPath, filepath.Join(dir, "b.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.form.String(), func(t *testing.T) {
			h := newHarness(t, "2")
			res := Resolve(h.p, Spec[string]{
				Title: "Pick a file",
				Kind:  FileSelect(Picker{Dir: dir, Filter: []string{"txt"}, Output: tt.form}),
			})

			assert.Equal(t, tt.want, res.Value)
			assert.Equal(t, Answered, res.Outcome)
			assert.Contains(t, h.out.String(), "Selected file: "+tt.want)
		})
	}
}

func TestResolve_FileSelectRelative(t *testing.T) {
	root := t.TempDir()
	makeFiles(t, root, filepath.Join("data", "a.csv"))
	chdir(t, root)

	h := newHarness(t, "1")
	h.p.workDir = root

	res := Resolve(h.p, Spec[string]{
		Title: "Data",
		Kind:  FileSelect(Picker{Dir: "data", Filter: []string{".csv"}, Output: Relative}),
	})

	assert.Equal(t, filepath.Join("data", "a.csv"), res.Value)
}

func TestResolve_FileSelectMenu(t *testing.T) {
	dir := t.TempDir()
	makeFiles(t, dir, "b.txt", "a.txt", "skip.md")
	mtime := time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "a.txt"), mtime, mtime))

	h := newHarness(t, "1")
	Resolve(h.p, Spec[string]{
		Title:   "Pick",
		Kind:    FileSelect(Picker{Dir: dir, Filter: []string{"txt"}, Output: Filename}),
		Default: Default("b.txt"),
	})

	out := h.out.String()
	assert.Contains(t, out, " 1. a.txt [5 bytes, modified: 2024-03-09 14:05:07]\n")
	assert.Contains(t, out, " 2. b.txt [5 bytes, modified: ")
	assert.Contains(t, out, "] (default)")
	assert.NotContains(t, out, "skip.md")
	assert.Equal(t, "Choose file (1-2) [output: file name]: ", h.reader.prompts[0])
}

func TestResolve_FileSelectByName(t *testing.T) {
	dir := t.TempDir()
	makeFiles(t, dir, "alpha.json", "beta.json")

	h := newHarness(t, "beta.json")
	res := Resolve(h.p, Spec[string]{
		Title: "Pick",
		Kind:  FileSelect(Picker{Dir: dir, Filter: []string{"*.json"}, Output: FullPath}),
	})

	assert.Equal(t, filepath.Join(dir, "beta.json"), res.Value)
}

func TestResolve_FileSelectNameIsCaseSensitive(t *testing.T) {
	dir := t.TempDir()
	makeFiles(t, dir, "alpha.json")

	h := newHarness(t, "ALPHA.json")
	res := Resolve(h.p, Spec[string]{
		Title:    "Pick",
		Kind:     FileSelect(Picker{Dir: dir, Filter: []string{"json"}, Output: Filename}),
		MaxRetry: 1,
	})

	assert.Equal(t, Exhausted, res.Outcome)
	assert.True(t, errors.Is(res.Err, ErrSelectionNotFound))
}

func TestResolve_FileSelectOutOfRange(t *testing.T) {
	dir := t.TempDir()
	makeFiles(t, dir, "a.txt", "b.txt")

	h := newHarness(t, "5", "0", "1")
	res := Resolve(h.p, Spec[string]{
		Title: "Pick",
		Kind:  FileSelect(Picker{Dir: dir, Filter: []string{"txt"}, Output: Filename}),
	})

	assert.Equal(t, "a.txt", res.Value)
	assert.Equal(t, 2, res.Attempts)
	assert.True(t, errors.Is(res.Err, ErrSelectionOutOfRange))
}

func TestResolve_FileSelectAmbiguous(t *testing.T) {
	dir := t.TempDir()
	makeFiles(t, dir, filepath.Join("x.d", "conf.yml"), filepath.Join("y.d", "conf.yml"))

	h := newHarness(t, "conf.yml", "2")
	res := Resolve(h.p, Spec[string]{
		Title: "Pick",
		Kind:  FileSelect(Picker{Dir: dir, Filter: []string{"*.d/*.yml"}, Output: FullPath}),
	})

	assert.Equal(t, filepath.Join(dir, "y.d", "conf.yml"), res.Value)
	assert.Equal(t, 1, res.Attempts)

	var amb *AmbiguousSelectionError
	require.True(t, errors.As(res.Err, &amb))
	assert.Len(t, amb.Matches, 2)
	assert.Contains(t, h.out.String(), "choose one by number")
}

func TestResolve_FileSelectNoMatches(t *testing.T) {
	dir := t.TempDir()
	makeFiles(t, dir, "a.txt")

	h := newHarness(t, "", "")
	res := Resolve(h.p, Spec[string]{
		Title:    "Pick",
		Kind:     FileSelect(Picker{Dir: dir, Filter: []string{"pdf", "docx"}}),
		Default:  Default("none.pdf"),
		MaxRetry: 2,
	})

	assert.Equal(t, "none.pdf", res.Value)
	assert.Equal(t, Exhausted, res.Outcome)
	assert.Equal(t, 2, res.Attempts)
	assert.True(t, errors.Is(res.Err, ErrNoMatchingFiles))
	assert.Equal(t, 1, h.reader.reads(), "one pause between the two scans")
	assert.Contains(t, h.out.String(), "No files matching 'pdf, docx' in directory '"+dir+"'")
}

func TestResolve_FileSelectNoMatchesUseDefaultOnError(t *testing.T) {
	h := newHarness(t)
	res := Resolve(h.p, Spec[string]{
		Title:             "Pick",
		Kind:              FileSelect(Picker{Dir: t.TempDir(), Filter: []string{"pdf"}}),
		Default:           Default("fallback.pdf"),
		UseDefaultOnError: true,
	})

	assert.Equal(t, "fallback.pdf", res.Value)
	assert.Equal(t, Defaulted, res.Outcome)
	assert.Equal(t, 0, h.reader.reads())
}

func TestResolve_FileSelectFilesAppearAfterRescan(t *testing.T) {
	dir := t.TempDir()

	h := newHarness(t, "", "1")
	h.reader.onRead = func() {
		if h.reader.reads() == 1 {
			makeFiles(t, dir, "late.txt")
		}
	}

	res := Resolve(h.p, Spec[string]{
		Title: "Pick",
		Kind:  FileSelect(Picker{Dir: dir, Filter: []string{"txt"}, Output: Filename}),
	})

	assert.Equal(t, "late.txt", res.Value)
	assert.Equal(t, 1, res.Attempts)
}

func TestParseOutputForm(t *testing.T) {
	for in, want := range map[string]OutputForm{
		"":         FullPath,
		"fullpath": FullPath,
		"relative": Relative,
		"FILENAME": Filename,
	} {
		got, err := ParseOutputForm(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseOutputForm("basename-ish")
	assert.Error(t, err)
}

func TestResolve_FileSelectInvalidFilterIsMisconfigured(t *testing.T) {
	h := newHarness(t, "1")
	res := Resolve(h.p, Spec[string]{
		Title: "Pick",
		Kind:  FileSelect(Picker{Dir: t.TempDir(), Filter: []string{"["}}),
	})

	assert.Equal(t, Misconfigured, res.Outcome)
	assert.False(t, res.Present)
	assert.Equal(t, 0, h.reader.reads())
	assert.ErrorIs(t, res.Err, doublestar.ErrBadPattern)
}

type globFailFS struct{ filesystem.OS }

func (globFailFS) Glob(dir, pattern string) ([]string, error) {
	return nil, errors.New("permission denied")
}

func TestResolve_FileSelectScanErrorWaitsForInput(t *testing.T) {
	h := newHarnessFS(t, globFailFS{}, "")
	res := Resolve(h.p, Spec[string]{
		Title:   "Pick",
		Kind:    FileSelect(Picker{Dir: t.TempDir(), Filter: []string{"txt"}}),
		Default: Default("fallback.txt"),
	})

	// Unlimited retries: each failed scan waits for a line, and end of input ends the call.
	assert.Equal(t, Aborted, res.Outcome)
	assert.Equal(t, "fallback.txt", res.Value)
	assert.Equal(t, 2, res.Attempts)
	assert.Equal(t, 2, h.reader.reads())
	assert.Equal(t, 2, strings.Count(h.out.String(), "permission denied"))
}

func TestResolve_FileSelectDirectoryWithGlobCharacters(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports{2024}")
	makeFiles(t, dir, "a.txt")

	h := newHarness(t, "1")
	res := Resolve(h.p, Spec[string]{
		Title: "Pick",
		Kind:  FileSelect(Picker{Dir: dir, Filter: []string{"txt"}, Output: FullPath}),
	})

	assert.Equal(t, Answered, res.Outcome)
	assert.Equal(t, filepath.Join(dir, "a.txt"), res.Value)
}

func TestResolve_FileSelectHidesDotFiles(t *testing.T) {
	dir := t.TempDir()
	makeFiles(t, dir, ".secret.txt", "public.txt")

	h := newHarness(t, "1")
	res := Resolve(h.p, Spec[string]{
		Title: "Pick",
		Kind:  FileSelect(Picker{Dir: dir, Filter: []string{"txt"}, Output: Filename}),
	})

	assert.Equal(t, "public.txt", res.Value)
	assert.NotContains(t, h.out.String(), ".secret.txt")
}

// statFailFS fails Stat for one path, as if the file vanished after the scan.
type statFailFS struct {
	filesystem.OS
	fail string
}

func (f statFailFS) Stat(path string) (fs.FileInfo, error) {
	if filepath.Base(path) == f.fail {
		return nil, fs.ErrNotExist
	}
	return f.OS.Stat(path)
}

func TestResolve_FileSelectSkipsUnreadableCandidates(t *testing.T) {
	dir := t.TempDir()
	makeFiles(t, dir, "a.txt", "b.txt")

	h := newHarnessFS(t, statFailFS{fail: "a.txt"}, "1")
	h.p.Console().SetVerbose(true)
	res := Resolve(h.p, Spec[string]{
		Title: "Pick",
		Kind:  FileSelect(Picker{Dir: dir, Filter: []string{"txt"}, Output: Filename}),
	})

	assert.Equal(t, "b.txt", res.Value)
	assert.NotContains(t, h.out.String(), "0001-01-01")
	assert.Contains(t, h.out.String(), "Skipping "+filepath.Join(dir, "a.txt"))
}

func TestResolve_FileSelectAllCandidatesUnreadable(t *testing.T) {
	dir := t.TempDir()
	makeFiles(t, dir, "a.txt")

	h := newHarnessFS(t, statFailFS{fail: "a.txt"})
	res := Resolve(h.p, Spec[string]{
		Title:    "Pick",
		Kind:     FileSelect(Picker{Dir: dir, Filter: []string{"txt"}}),
		MaxRetry: 1,
	})

	assert.Equal(t, Exhausted, res.Outcome)
	assert.ErrorIs(t, res.Err, ErrNoMatchingFiles)
	assert.Equal(t, 0, h.reader.reads())
}
