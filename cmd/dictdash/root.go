package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dictdash/dash"
)

var rootCmd = &cobra.Command{
	Use:   "dictdash",
	Short: "dictdash finds shortest word ladders",
	Long: `dictdash reads a dictionary and query pairs in the Dictionary Dash
line protocol (word count, words, pair count, start/end pairs) and
prints, per pair, the shortest ladder length to stdout — or -1 when no
ladder exists — with the full trace on stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		verbose, _ := cmd.Flags().GetBool("verbose")

		var in io.Reader = cmd.InOrStdin()
		if input != "" {
			f, err := os.Open(input)
			if err != nil {
				return fmt.Errorf("opening input: %w", err)
			}
			defer f.Close()
			in = f
		}

		problem, err := dash.Parse(in)
		if err != nil {
			return fmt.Errorf("parsing input: %w", err)
		}

		runner := dash.NewRunner()
		runner.Out = cmd.OutOrStdout()
		runner.Diag = cmd.ErrOrStderr()
		if verbose {
			runner.Log = newLogger(cmd.ErrOrStderr(), slog.LevelDebug)
		}

		failed, err := runner.Run(problem)
		if err != nil {
			return err
		}
		if failed {
			// Keep the per-pair output intact; signal via exit code only.
			cmd.SilenceUsage = true
			return fmt.Errorf("did not find ladders for all word pairs")
		}

		return nil
	},
}

// newLogger builds the CLI logger: text handler on the diagnostic
// stream at the given level.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command and exits nonzero on any failure,
// including a batch with unsolvable pairs.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().String("input", "", "Read the problem from a file instead of stdin")
	rootCmd.Flags().BoolP("verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.SilenceErrors = true
}
