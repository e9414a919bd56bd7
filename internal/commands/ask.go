package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/simonhull/firebird-suite/perch/form"
	"github.com/spf13/cobra"
)

// AskCmd creates the 'ask' command, which asks one question built from flags
func AskCmd() *cobra.Command {
	var (
		q             form.Question
		def           string
		timeout       string
		minValue      float64
		maxValue      float64
		confirmCreate bool
		filter        []string
	)

	cmd := &cobra.Command{
		Use:   "ask [title]",
		Short: "Ask one question and print the answer",
		Long: heredoc.Doc(`
			Asks one question and prints the answer on stdout.

			Types: str, int, float, option, multiselect, password, file, folder,
			fileselect. The command exits with status 1 when no value was
			produced (no default and the user gave up or entered nothing).

			Examples:
			  perch ask "Port" --type int --default 8080 --min 1 --max 65535
			  perch ask "Database" --type option --option postgres --option sqlite
			  perch ask "Config" --type fileselect --dir ./configs --filter yml,yaml
			  perch ask "Log folder" --type folder --auto-create`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sessionFrom(cmd.Context())
			if err != nil {
				return err
			}

			q.Name = "value"
			q.Title = "Value"
			if len(args) == 1 {
				q.Title = args[0]
			}

			flags := cmd.Flags()
			if flags.Changed("default") {
				q.Default = def
			}
			if flags.Changed("timeout") {
				q.Timeout = timeout
			}
			if flags.Changed("min") {
				q.Min = &minValue
			}
			if flags.Changed("max") {
				q.Max = &maxValue
			}
			q.ConfirmCreate = &confirmCreate
			q.Filter = form.StringList(filter)

			ans, err := form.Ask(s.prompter, q, s.defaults())
			if err != nil {
				return err
			}

			s.console.Verbose(fmt.Sprintf("Outcome: %s", ans.Outcome))
			if !ans.Present {
				return fmt.Errorf("no value (%s)", ans.Outcome)
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatValue(ans.Value))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&q.Type, "type", "t", "str", "Question type (str, int, float, option, multiselect, password, file, folder, fileselect)")
	flags.StringArrayVarP(&q.Options, "option", "o", nil, "Choice for option and multiselect (repeatable)")
	flags.StringVarP(&def, "default", "d", "", "Default value (comma-separated for multiselect)")
	flags.StringVar(&q.ErrorMessage, "error-message", "", "Message shown after invalid input")
	flags.BoolVar(&q.UseDefaultOnError, "use-default-on-error", false, "Return the default on the first invalid input")
	flags.BoolVar(&q.AllowEmpty, "allow-empty", false, "Accept empty input when there is no default")
	flags.StringVar(&q.Regex, "regex", "", "Regular expression the answer must match in full")
	flags.IntVar(&q.MaxRetry, "max-retry", 0, "Give up after this many invalid answers (0: never)")
	flags.StringVar(&timeout, "timeout", "", "Give up after this long, e.g. 30s")
	flags.Float64Var(&minValue, "min", 0, "Smallest accepted number")
	flags.Float64Var(&maxValue, "max", 0, "Largest accepted number")
	flags.BoolVar(&q.AutoCreate, "auto-create", false, "Create missing files and folders")
	flags.BoolVar(&confirmCreate, "confirm-create", true, "Ask before creating a missing path")
	flags.StringSliceVar(&filter, "filter", nil, "Extensions listed by fileselect, e.g. txt,.csv,*.json")
	flags.StringVar(&q.Directory, "dir", "", "Directory scanned by fileselect (default: .)")
	flags.StringVar(&q.Output, "output", "", "Path form returned by fileselect (fullpath, relative, filename)")

	return cmd
}

func formatValue(v any) string {
	switch val := v.(type) {
	case []string:
		return strings.Join(val, ", ")
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
