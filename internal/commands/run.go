package commands

import (
	"fmt"
	"os"

	"github.com/simonhull/firebird-suite/perch/form"
	"github.com/spf13/cobra"
)

// RunCmd creates the 'run' command, which asks every question of a form file
func RunCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "run <form.yml>",
		Short: "Ask the questions of a form and print the answers as YAML",
		Long: `Runs a form definition and prints the answers as YAML.

Answers keep the order of the questions. Questions that produced no value
are written as null.

Example:
  perch run setup.perch.yml --out answers.yml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sessionFrom(cmd.Context())
			if err != nil {
				return err
			}

			s.console.Verbose(fmt.Sprintf("Loading form: %s", args[0]))
			def, err := form.Parse(args[0])
			if err != nil {
				return err
			}

			answers, err := form.Run(s.prompter, def, s.defaults())
			if err != nil {
				return err
			}

			data, err := answers.YAML()
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			if err := os.WriteFile(outPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write answers: %w", err)
			}
			s.console.Success(fmt.Sprintf("Wrote %d answers to %s", len(answers), outPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Write the answers to a file instead of stdout")

	return cmd
}
