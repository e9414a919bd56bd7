// Package output provides styled terminal output for perch.
//
// Every message the prompt resolver shows (prompts, menus, confirmations,
// errors) goes through a Console so callers can redirect it and tests can
// capture it.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Console writes styled lines to a writer.
type Console struct {
	w       io.Writer
	verbose bool

	success lipgloss.Style
	failure lipgloss.Style
	info    lipgloss.Style
	step    lipgloss.Style
	prompt  lipgloss.Style
	hint    lipgloss.Style
}

// Options configures a Console
type Options struct {
	Writer  io.Writer // Destination (default: os.Stdout at write time)
	Verbose bool      // Print Verbose messages
	NoColor bool      // Strip all colors and text attributes
}

// New creates a console. A nil opts writes to os.Stdout.
func New(opts *Options) *Console {
	if opts == nil {
		opts = &Options{}
	}

	var r *lipgloss.Renderer
	if opts.Writer != nil {
		r = lipgloss.NewRenderer(opts.Writer)
	} else {
		r = lipgloss.DefaultRenderer()
	}
	if opts.NoColor {
		if opts.Writer == nil {
			r = lipgloss.NewRenderer(os.Stdout)
		}
		r.SetColorProfile(termenv.Ascii)
	}

	return &Console{
		w:       opts.Writer,
		verbose: opts.Verbose,
		success: r.NewStyle().Foreground(lipgloss.Color("green")).Bold(true),
		failure: r.NewStyle().Foreground(lipgloss.Color("red")).Bold(true),
		info:    r.NewStyle().Foreground(lipgloss.Color("cyan")),
		step:    r.NewStyle().Foreground(lipgloss.Color("240")),
		prompt:  r.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true),
		hint:    r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Writer returns the destination of this console.
func (c *Console) Writer() io.Writer {
	if c.w == nil {
		return os.Stdout
	}
	return c.w
}

// SetVerbose enables or disables verbose output for debugging.
func (c *Console) SetVerbose(v bool) {
	c.verbose = v
}

// Print writes an unstyled line.
func (c *Console) Print(msg string) {
	fmt.Fprintln(c.Writer(), msg)
}

// Title writes a prompt title on its own line.
func (c *Console) Title(msg string) {
	fmt.Fprintln(c.Writer(), c.prompt.Render(msg))
}

// PromptText formats an input prompt with an optional gray hint.
// The result ends with ": " and carries no newline.
//
//	c.PromptText("Port", "(default: 8080)") // Port (default: 8080): _
func (c *Console) PromptText(msg, hint string) string {
	if hint == "" {
		return c.prompt.Render(msg) + ": "
	}
	return c.prompt.Render(msg) + " " + c.hint.Render(hint) + ": "
}

// Success prints a success message with 🔥 emoji and green color.
func (c *Console) Success(msg string) {
	fmt.Fprintln(c.Writer(), c.success.Render("🔥 "+msg))
}

// Error prints an error message with ❌ emoji and red color.
func (c *Console) Error(msg string) {
	fmt.Fprintln(c.Writer(), c.failure.Render("❌ "+msg))
}

// Info prints an informational message with ℹ️ emoji and cyan color.
func (c *Console) Info(msg string) {
	fmt.Fprintln(c.Writer(), c.info.Render("ℹ️  "+msg))
}

// Step prints an indented step message in gray.
// Menus use it for their entries.
func (c *Console) Step(msg string) {
	fmt.Fprintln(c.Writer(), c.step.Render("   "+msg))
}

// Verbose prints a debug message with 🔍 emoji only if verbose mode is enabled.
func (c *Console) Verbose(msg string) {
	if c.verbose {
		fmt.Fprintln(c.Writer(), c.step.Render("🔍 "+msg))
	}
}

var std = New(nil)

// Default returns the console behind the package-level functions.
func Default() *Console {
	return std
}

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	std.SetVerbose(v)
}

// Success prints a success message on the default console.
//
// Example:
//
//	output.Success("Created file: notes.txt")
func Success(msg string) {
	std.Success(msg)
}

// Error prints an error message on the default console.
func Error(msg string) {
	std.Error(msg)
}

// Info prints an informational message on the default console.
func Info(msg string) {
	std.Info(msg)
}

// Step prints an indented step message on the default console.
func Step(msg string) {
	std.Step(msg)
}

// Verbose prints a debug message on the default console when verbose mode is on.
func Verbose(msg string) {
	std.Verbose(msg)
}
