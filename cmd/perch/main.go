package main

import (
	"os"

	"github.com/simonhull/firebird-suite/perch/internal/commands"
	"github.com/simonhull/firebird-suite/perch/output"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.AskCmd())
	rootCmd.AddCommand(commands.RunCmd())
	rootCmd.AddCommand(commands.VersionCmd())

	if err := rootCmd.Execute(); err != nil {
		output.New(&output.Options{Writer: os.Stderr}).Error(err.Error())
		os.Exit(1)
	}
}
