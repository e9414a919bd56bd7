package input

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/benbjohnson/clock"
	"github.com/simonhull/firebird-suite/perch/filesystem"
	"github.com/simonhull/firebird-suite/perch/output"
)

// DefaultAffirmative is the answer that confirms a yes/no question.
const DefaultAffirmative = "y"

// Prompter holds the collaborators shared by every prompt: where lines come
// from, where messages go, the filesystem and the clock.
type Prompter struct {
	reader      LineReader
	console     *output.Console
	fs          filesystem.FS
	clock       clock.Clock
	affirmative []string
	workDir     string
}

// Options configures a Prompter. Nil fields get defaults.
type Options struct {
	Reader      LineReader      // Default: Terminal over os.Stdin, prompts on the console writer
	Console     *output.Console // Default: output.Default()
	FS          filesystem.FS   // Default: filesystem.OS{}
	Clock       clock.Clock     // Default: wall clock
	Affirmative []string        // Answers accepted as "yes" (default: ["y"])
	WorkDir     string          // Base for relative file menu paths (default: os.Getwd)
}

// New creates a prompter with sensible defaults.
func New(opts *Options) *Prompter {
	if opts == nil {
		opts = &Options{}
	}

	p := &Prompter{
		reader:  opts.Reader,
		console: opts.Console,
		fs:      opts.FS,
		clock:   opts.Clock,
		workDir: opts.WorkDir,
	}

	if p.console == nil {
		p.console = output.Default()
	}
	if p.reader == nil {
		p.reader = NewTerminal(os.Stdin, p.console.Writer())
	}
	if p.fs == nil {
		p.fs = filesystem.OS{}
	}
	if p.clock == nil {
		p.clock = clock.New()
	}
	if p.workDir == "" {
		if wd, err := os.Getwd(); err == nil {
			p.workDir = wd
		}
	}

	for _, a := range opts.Affirmative {
		if a = strings.ToLower(strings.TrimSpace(a)); a != "" {
			p.affirmative = append(p.affirmative, a)
		}
	}
	if len(p.affirmative) == 0 {
		p.affirmative = []string{DefaultAffirmative}
	}

	return p
}

// Console returns the console the prompter reports to.
func (p *Prompter) Console() *output.Console {
	return p.console
}

// Confirm asks a yes/no question. Only a configured affirmative answer
// (case-insensitive) counts as yes; anything else, including end of input,
// is no.
//
//	if p.Confirm("File 'notes.txt' does not exist, create it?") {
//	    // create
//	}
//	// Displays: File 'notes.txt' does not exist, create it? [y/n]: _
func (p *Prompter) Confirm(question string) bool {
	answer, err := p.reader.ReadLine(p.console.PromptText(trimTitle(question), "[y/n]"))
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	for _, a := range p.affirmative {
		if answer == a {
			return true
		}
	}
	return false
}

// pathForm renders a scanned path in the requested output form.
func (p *Prompter) pathForm(path string, form OutputForm) string {
	if form == Filename {
		return filepath.Base(path)
	}

	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(p.workDir, path)
	}
	abs = filepath.Clean(abs)

	if form == Relative {
		if rel, err := filepath.Rel(p.workDir, abs); err == nil {
			return rel
		}
	}
	return abs
}
