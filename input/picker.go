package input

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/simonhull/firebird-suite/perch/filesystem"
)

// TimeLayout formats modification times in the file menu.
const TimeLayout = "2006-01-02 15:04:05"

// OutputForm controls both what the file menu shows and what it returns.
type OutputForm int

const (
	FullPath OutputForm = iota // Absolute path
	Relative                   // Path relative to the working directory
	Filename                   // Base name only
)

func (f OutputForm) String() string {
	switch f {
	case FullPath:
		return "fullpath"
	case Relative:
		return "relative"
	case Filename:
		return "filename"
	default:
		return fmt.Sprintf("OutputForm(%d)", int(f))
	}
}

func (f OutputForm) label() string {
	switch f {
	case Relative:
		return "relative path"
	case Filename:
		return "file name"
	default:
		return "full path"
	}
}

// ParseOutputForm parses "fullpath", "relative" or "filename". An empty
// string is FullPath.
func ParseOutputForm(s string) (OutputForm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fullpath", "full", "absolute":
		return FullPath, nil
	case "relative":
		return Relative, nil
	case "filename", "name":
		return Filename, nil
	default:
		return FullPath, fmt.Errorf("unknown output form %q (want fullpath, relative or filename)", s)
	}
}

// Picker configures a FileSelect prompt.
type Picker struct {
	Dir    string     // Directory to scan (default ".")
	Filter []string   // Extension filters: "txt", ".txt" or "*.txt" (default "*")
	Output OutputForm // Form of the displayed and returned path
}

func (p Picker) dir() string {
	if p.Dir == "" {
		return "."
	}
	return p.Dir
}

func (p Picker) filter() []string {
	if len(p.Filter) == 0 {
		return filesystem.DefaultFilter
	}
	return p.Filter
}

// Candidate is one file listed by a FileSelect prompt.
type Candidate struct {
	Path    string // As returned by the scan
	Display string // Shown in the menu
	Output  string // Returned when selected; always equal to Display
	Size    int64
	ModTime time.Time
}

type pickerKind struct {
	picker Picker
}

// FileSelect lists the files matching a filter and lets the user pick one by
// number or by name.
func FileSelect(p Picker) Kind[string] {
	p.Filter = append([]string(nil), p.Filter...)
	return pickerKind{picker: p}
}

func (pickerKind) Name() string { return "fileselect" }

func (k pickerKind) check() error {
	if k.picker.Output < FullPath || k.picker.Output > Filename {
		return fmt.Errorf("unknown output form %s", k.picker.Output)
	}
	return filesystem.ValidateFilter(k.picker.Filter)
}

func (k pickerKind) render(r *round, def *string) (string, error) {
	c := r.p.console
	dir := k.picker.dir()

	files, err := filesystem.Scan(r.p.fs, dir, k.picker.filter())
	if err != nil {
		return "", err
	}

	r.candidates = k.candidates(r.p, files)
	if len(r.candidates) == 0 {
		c.Error(fmt.Sprintf("No files matching '%s' in directory '%s'", strings.Join(k.picker.filter(), ", "), dir))
		return "", ErrNoMatchingFiles
	}

	c.Print("")
	c.Title(r.title)
	c.Print("Available files:")
	for i, cand := range r.candidates {
		mark := ""
		if def != nil && cand.Output == *def {
			mark = " (default)"
		}
		c.Step(fmt.Sprintf("%2d. %s [%d bytes, modified: %s]%s",
			i+1, cand.Display, cand.Size, cand.ModTime.Format(TimeLayout), mark))
	}

	return c.PromptText(fmt.Sprintf("Choose file (1-%d)", len(r.candidates)),
		fmt.Sprintf("[output: %s]", k.picker.Output.label())), nil
}

// candidates skips files that vanish or cannot be read between the scan and
// the stat, so the menu only lists real metadata.
func (k pickerKind) candidates(p *Prompter, files []string) []Candidate {
	cands := make([]Candidate, 0, len(files))
	for _, path := range files {
		info, err := p.fs.Stat(path)
		if err != nil {
			p.console.Verbose(fmt.Sprintf("Skipping %s: %v", path, err))
			continue
		}
		out := p.pathForm(path, k.picker.Output)
		cands = append(cands, Candidate{
			Path:    path,
			Display: out,
			Output:  out,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return cands
}

func (k pickerKind) coerce(r *round, raw string) (string, error) {
	cands := r.candidates

	if isDigits(raw) {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > len(cands) {
			return "", fmt.Errorf("%w: choose between 1 and %d", ErrSelectionOutOfRange, len(cands))
		}
		return cands[n-1].Output, nil
	}

	var matches []Candidate
	for _, cand := range cands {
		if raw == cand.Display || raw == filepath.Base(cand.Path) {
			matches = append(matches, cand)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: '%s'", ErrSelectionNotFound, raw)
	case 1:
		return matches[0].Output, nil
	default:
		outputs := make([]string, len(matches))
		for i, m := range matches {
			outputs[i] = m.Output
		}
		return "", &AmbiguousSelectionError{Input: raw, Matches: outputs}
	}
}

func (pickerKind) announce(r *round, v string) {
	r.p.console.Success("Selected file: " + v)
}

func (pickerKind) format(v string) string { return v }

func (pickerKind) masked() bool { return false }
