package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"scanfmt/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "scanfmt",
	Short:         "Lexer for scanf-family format strings",
	Long:          `scanfmt splits scanf format strings into literal, whitespace and conversion tokens and checks catalogs of formats`,
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: startProfiling,
}

// exitError carries an exit status for failures already reported to the user.
type exitError struct {
	code int
}

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// main sets the --version string, registers subcommands and persistent
// flags, and executes the root command.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	addPersistentFlags(rootCmd)

	err := rootCmd.Execute()
	if stopErr := stopProfiling(); stopErr != nil {
		fmt.Fprintf(os.Stderr, "error: profiling: %v\n", stopErr)
	}
	if err != nil {
		var exitErr exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	cmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	cmd.PersistentFlags().Bool("timings", false, "show timing information")
	cmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	cmd.PersistentFlags().String("config", "", "path to scanfmt.toml (default: search upwards from the working directory)")
	cmd.PersistentFlags().Int("max-tokens", 0, "fail a format that yields more tokens (0 = unlimited)")
	cmd.PersistentFlags().Uint("max-width", 0, "largest accepted field width (0 = platform maximum)")
	cmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to this file")
	cmd.PersistentFlags().String("mem-profile", "", "write a heap profile to this file on exit")
	cmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to this file")
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the column count of f, or 0 when f is not a terminal.
func terminalWidth(f *os.File) int {
	if !isTerminal(f) {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}
