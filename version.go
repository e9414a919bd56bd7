// Package perch holds build metadata for the perch CLI.
package perch

// Version is the perch release, overridden at build time with
// -ldflags "-X github.com/simonhull/firebird-suite/perch.Version=..."
var Version = "0.1.0"
