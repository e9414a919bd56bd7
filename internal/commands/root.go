package commands

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/simonhull/firebird-suite/perch"
	"github.com/simonhull/firebird-suite/perch/config"
	"github.com/simonhull/firebird-suite/perch/form"
	"github.com/simonhull/firebird-suite/perch/input"
	"github.com/simonhull/firebird-suite/perch/output"
	"github.com/spf13/cobra"
)

// session is what every subcommand needs once flags and config are read.
type session struct {
	config   *config.Config
	console  *output.Console
	prompter *input.Prompter
}

func (s *session) defaults() form.Defaults {
	return form.Defaults{
		ErrorMessage: s.config.ErrorMessage,
		Timeout:      s.config.Timeout,
		MaxRetry:     s.config.MaxRetry,
	}
}

type sessionKey struct{}

// RootCmd creates and returns the root command for the perch CLI
func RootCmd() *cobra.Command {
	var (
		verbose    bool
		noColor    bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "perch",
		Short: "Ask for typed input on the terminal",
		Long: heredoc.Doc(`
			Perch asks questions on the terminal and prints validated answers.

			Every prompt retries until the answer is valid, falls back to its
			default when the user gives up, and never fails on bad input:
			• Numbers, options and multi-selections
			• Files and folders, created on demand
			• A file picker with extension filters

			Prompts and messages go to stderr so answers can be captured:
			  port=$(perch ask "Port" --type int --default 8080)`),
		Version:       perch.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Verbose = verbose
			}
			if cmd.Flags().Changed("no-color") {
				cfg.NoColor = noColor
			}

			output.SetVerbose(cfg.Verbose)
			console := output.New(&output.Options{
				Writer:  cmd.ErrOrStderr(),
				Verbose: cfg.Verbose,
				NoColor: cfg.NoColor,
			})
			console.Verbose(fmt.Sprintf("Config: timeout=%s max_retry=%d affirmative=%v", cfg.Timeout, cfg.MaxRetry, cfg.Affirmative))

			s := &session{
				config:  cfg,
				console: console,
				prompter: input.New(&input.Options{
					Reader:      input.NewTerminal(cmd.InOrStdin(), cmd.ErrOrStderr()),
					Console:     console,
					Affirmative: cfg.Affirmative,
				}),
			}
			cmd.SetContext(withSession(cmd.Context(), s))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ./perch.yml)")

	return cmd
}

// VersionCmd prints the release.
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Perch v%s\n", perch.Version)
		},
	}
}
