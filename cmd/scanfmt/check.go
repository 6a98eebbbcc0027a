package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scanfmt/internal/diag"
	"scanfmt/internal/diagfmt"
	"scanfmt/internal/driver"
	"scanfmt/internal/lexer"
	"scanfmt/internal/observ"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] catalog.fmt...",
	Short: "Lex every format of one or more catalogs",
	Long: `Check reads catalogs holding one format per line and lexes every entry in
parallel. Blank lines and lines starting with '#' are skipped; a line starting
with '"' is a Go quoted string. Exits with status 1 when any entry fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	checkCmd.Flags().Bool("nfc", false, "normalize catalogs to Unicode NFC before lexing")
	checkCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json|msgpack)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	st, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	mode, err := parseSwitch("ui", st.ui)
	if err != nil {
		return err
	}
	if st.jobs < 0 {
		return fmt.Errorf("--jobs must not be negative")
	}

	var timer *observ.Timer
	if st.timings {
		timer = observ.NewTimer()
	}
	opts := driver.CheckOptions{
		Lexer:          lexer.Options{MaxTokens: st.maxTokens, MaxWidth: st.maxWidth},
		Jobs:           st.jobs,
		MaxDiagnostics: st.maxDiagnostics,
		NFC:            st.nfc,
		Timer:          timer,
	}

	format, _ := diagfmt.ParseTokenFormat(st.format)
	pretty := format == diagfmt.TokenFormatPretty
	var res *driver.CheckResult
	if pretty && !st.quiet && shouldUseTUI(mode) {
		res, err = runCheckWithUI(cmd.Context(), "checking catalogs", args, opts)
	} else {
		res, err = driver.Check(cmd.Context(), args, opts)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if pretty {
		prettyOpts := diagfmt.PrettyOpts{
			Color:     useColor(st.color, os.Stderr),
			Context:   0,
			PathMode:  diagfmt.PathModeAuto,
			ShowNotes: true,
			Width:     terminalWidth(os.Stderr),
		}
		for i := range res.Catalogs {
			diagfmt.Pretty(cmd.ErrOrStderr(), res.Catalogs[i].Bag, res.FileSet, prettyOpts)
		}
		if !st.quiet {
			fmt.Fprintln(cmd.OutOrStdout(), checkSummary(res.Entries(), len(res.Catalogs), res.Failed()))
		}
		if st.timings {
			printTimings(cmd.ErrOrStderr(), timer)
		}
	} else {
		all := diag.NewBag(0)
		for i := range res.Catalogs {
			all.Merge(res.Catalogs[i].Bag)
		}
		if st.timings {
			driver.AppendTimingDiagnostic(all, "check", "", timer.Report())
		}
		if err := diagfmt.Diagnostics(cmd.OutOrStdout(), format, all, res.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeAuto,
			IncludeNotes:     true,
		}); err != nil {
			return err
		}
	}

	if res.Failed() > 0 {
		return exitError{code: 1}
	}
	return nil
}

func checkSummary(entries, catalogs, failed int) string {
	noun := "catalogs"
	if catalogs == 1 {
		noun = "catalog"
	}
	return fmt.Sprintf("checked %d formats in %d %s: %d failed", entries, catalogs, noun, failed)
}
