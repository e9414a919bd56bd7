package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// LineReader acquires one line of user input. Both methods return io.EOF
// when the input source is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
}

// Terminal reads lines from an input stream and writes prompts to out.
type Terminal struct {
	in   *bufio.Reader
	file *os.File // Set when the input is a file descriptor
	out  io.Writer
}

// NewTerminal creates a reader over in. Passwords are read without echo
// when in is a terminal; otherwise they are read like any other line.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	t := &Terminal{in: bufio.NewReader(in), out: out}
	if f, ok := in.(*os.File); ok {
		t.file = f
	}
	return t
}

// ReadLine prints prompt and returns the next line without its line ending.
// A final line without a newline is returned before io.EOF.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)

	line, err := t.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadPassword prints prompt and reads a line with echo disabled.
func (t *Terminal) ReadPassword(prompt string) (string, error) {
	if t.file == nil || !isTerminal(t.file.Fd()) {
		return t.ReadLine(prompt)
	}

	fmt.Fprint(t.out, prompt)
	secret, err := term.ReadPassword(int(t.file.Fd()))
	fmt.Fprintln(t.out)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(secret), nil
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
