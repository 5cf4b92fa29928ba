package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/takaishi/minigrep/app"
	"github.com/takaishi/minigrep/config"
	"github.com/takaishi/minigrep/output"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates the minigrep command
func NewRootCommand() *cobra.Command {
	var (
		colorFlag   string
		verbose     bool
		lineNumbers bool
	)

	cmd := &cobra.Command{
		Use:   "minigrep [flags] <query> <filename>",
		Short: "Print the lines of a file that contain a query string",
		Long: `minigrep prints every line of <filename> that contains <query>.

Matching is case-sensitive unless the CASE_INSENSITIVE environment variable
is set (to any value). When exactly two arguments are given they are always
the query and the filename. Otherwise put -- before a query that starts with
a dash.`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		// Errors are labelled and printed by main
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := output.ParseColorMode(colorFlag)
			if err != nil {
				return &config.ArgumentError{Err: err}
			}

			cfg, err := config.New(append([]string{cmd.Name()}, args...))
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), verbose)
			return app.Run(cfg, cmd.OutOrStdout(),
				app.WithLogger(logger),
				app.WithColor(mode),
				app.WithLineNumbers(lineNumbers),
			)
		},
	}

	cmd.Flags().StringVar(&colorFlag, "color", string(output.ColorAuto), "Highlight matches: auto, always or never")
	cmd.Flags().BoolVarP(&lineNumbers, "line-number", "n", false, "Prefix each match with its line number")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log debug information to stderr")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &config.ArgumentError{Err: err}
	})

	return cmd
}

// Execute runs the minigrep command with args (program name excluded). With
// exactly two arguments flag parsing is off, so they are always taken as the
// query and the filename even when the query looks like a flag.
func Execute(args []string, stdout, stderr io.Writer) error {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if len(args) == 2 {
		cmd.DisableFlagParsing = true
	}
	return cmd.Execute()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
