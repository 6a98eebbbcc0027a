package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scanfmt/internal/diagfmt"
	"scanfmt/internal/driver"
	"scanfmt/internal/lexer"
	"scanfmt/internal/observ"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [file.fmt]",
	Short: "Tokenize one format string",
	Long: `Tokenize splits one scanf format string into tokens. The format is either
the whole content of a file or given inline with --expr.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().String("expr", "", "inline format string to tokenize")
	tokenizeCmd.Flags().Bool("nfc", false, "normalize the file to Unicode NFC before lexing")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	st, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	expr, err := cmd.Flags().GetString("expr")
	if err != nil {
		return fmt.Errorf("failed to get expr flag: %w", err)
	}
	hasExpr := flagChanged(cmd, "expr")
	switch {
	case hasExpr && len(args) > 0:
		return fmt.Errorf("use either --expr or a file, not both")
	case !hasExpr && len(args) == 0:
		return fmt.Errorf("nothing to tokenize: pass a file or --expr")
	}

	var timer *observ.Timer
	if st.timings {
		timer = observ.NewTimer()
	}
	opts := driver.TokenizeOptions{
		Lexer:          lexer.Options{MaxTokens: st.maxTokens, MaxWidth: st.maxWidth},
		MaxDiagnostics: st.maxDiagnostics,
		NFC:            st.nfc,
		Timer:          timer,
	}

	var result *driver.TokenizeResult
	if hasExpr {
		result = driver.TokenizeString(expr, opts)
	} else {
		result, err = driver.Tokenize(args[0], opts)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
	}

	format, _ := diagfmt.ParseTokenFormat(st.format)
	out := cmd.OutOrStdout()
	path := ""
	if result.File != nil {
		path = result.File.Path
	}

	if result.Err != nil {
		if format == diagfmt.TokenFormatPretty {
			diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, diagfmt.PrettyOpts{
				Color:     useColor(st.color, os.Stderr),
				Context:   1,
				PathMode:  diagfmt.PathModeAuto,
				ShowNotes: true,
				Width:     terminalWidth(os.Stderr),
			})
			if st.timings {
				printTimings(cmd.ErrOrStderr(), timer)
			}
		} else {
			bag := result.Bag
			if st.timings {
				driver.AppendTimingDiagnostic(bag, "tokenize", path, timer.Report())
			}
			if err := diagfmt.Diagnostics(out, format, bag, result.FileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				PathMode:         diagfmt.PathModeAuto,
				IncludeNotes:     true,
			}); err != nil {
				return err
			}
		}
		return exitError{code: 1}
	}

	if err := diagfmt.FormatTokens(out, format, result.Tokens, result.File, result.FileSet, diagfmt.PathModeAuto); err != nil {
		return err
	}
	if st.timings {
		printTimings(cmd.ErrOrStderr(), timer)
	}
	return nil
}
