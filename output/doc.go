// Package output provides styled terminal output for perch.
//
// # Overview
//
// The prompt resolver never writes to the terminal directly. Prompts, menus,
// confirmations and status lines all go through a Console, which keeps the
// styling consistent with the rest of the Firebird Suite and lets tests
// capture everything in a buffer.
//
// # Usage
//
//	c := output.New(&output.Options{Writer: os.Stderr})
//	c.Title("Pick a database:")
//	c.Step(" 1. postgres (default)")
//	c.Error("Invalid input (not a number)")
//
// The package-level functions write to a default console on os.Stdout:
//
//	output.Success("Created file: notes.txt")
//	output.SetVerbose(true)
//	output.Verbose("state prompting -> validating")
//
// # Styling
//
//   - Success: 🔥 green bold
//   - Error: ❌ red bold
//   - Info: ℹ️ cyan
//   - Step: indented gray
//   - Verbose: 🔍 gray (when enabled)
//   - Prompts: cyan bold, hints gray
//
// Options.NoColor switches the renderer to the ASCII profile.
package output
