package input

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/simonhull/firebird-suite/perch/filesystem"
	"github.com/simonhull/firebird-suite/perch/output"
)

// scriptedReader replays lines and records every prompt it was given.
type scriptedReader struct {
	lines   []string
	prompts []string
	masked  []bool

	// onRead runs before each line is returned (e.g., to advance a clock).
	onRead func()
}

func (s *scriptedReader) ReadLine(prompt string) (string, error) {
	return s.next(prompt, false)
}

func (s *scriptedReader) ReadPassword(prompt string) (string, error) {
	return s.next(prompt, true)
}

func (s *scriptedReader) next(prompt string, masked bool) (string, error) {
	s.prompts = append(s.prompts, prompt)
	s.masked = append(s.masked, masked)
	if s.onRead != nil {
		s.onRead()
	}
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *scriptedReader) reads() int {
	return len(s.prompts)
}

type harness struct {
	p      *Prompter
	reader *scriptedReader
	out    *bytes.Buffer
	clock  *clock.Mock
}

func newHarness(t *testing.T, lines ...string) *harness {
	t.Helper()
	return newHarnessFS(t, filesystem.OS{}, lines...)
}

func newHarnessFS(t *testing.T, fsys filesystem.FS, lines ...string) *harness {
	t.Helper()

	h := &harness{
		reader: &scriptedReader{lines: lines},
		out:    &bytes.Buffer{},
		clock:  clock.NewMock(),
	}
	h.p = New(&Options{
		Reader:  h.reader,
		Console: output.New(&output.Options{Writer: h.out, NoColor: true}),
		FS:      fsys,
		Clock:   h.clock,
		WorkDir: t.TempDir(),
	})
	return h
}

// tick makes every read take d on the mock clock.
func (h *harness) tick(d time.Duration) {
	h.reader.onRead = func() { h.clock.Add(d) }
}
