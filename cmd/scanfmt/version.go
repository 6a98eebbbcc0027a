package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"scanfmt/internal/version"
)

const versionTagline = "every byte of the format accounted for"

// buildFact is one optional line of version output.
type buildFact struct {
	flag  string // selecting flag, also the JSON key suffix
	label string
	value string
}

type versionInfo struct {
	Version string
	Facts   []buildFact
}

type versionPayload struct {
	Tool       string `json:"tool"`
	Version    string `json:"version"`
	Tagline    string `json:"tagline"`
	GitCommit  string `json:"git_commit,omitempty"`
	GitMessage string `json:"git_message,omitempty"`
	BuildDate  string `json:"build_date,omitempty"`
}

var (
	versionFormat string
	versionFull   bool
	versionPicks  = map[string]*bool{"hash": new(bool), "message": new(bool), "date": new(bool)}
)

func init() {
	f := versionCmd.Flags()
	f.BoolVar(versionPicks["hash"], "hash", false, "include git commit hash")
	f.BoolVar(versionPicks["message"], "message", false, "include git commit message")
	f.BoolVar(versionPicks["date"], "date", false, "include build timestamp")
	f.BoolVar(&versionFull, "full", false, "show every recorded bit of build metadata")
	f.StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show scanfmt build fingerprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		colorFlag, err := cmd.Flags().GetString("color")
		if err != nil {
			return fmt.Errorf("failed to get color flag: %w", err)
		}
		info := collectVersionInfo(func(flag string) bool {
			return versionFull || *versionPicks[flag]
		})
		out := cmd.OutOrStdout()
		switch strings.ToLower(versionFormat) {
		case "pretty":
			renderVersionPretty(out, info, useColor(colorFlag, os.Stdout))
			return nil
		case "json":
			return renderVersionJSON(out, info)
		}
		return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
	},
}

// collectVersionInfo keeps the build facts picked reports true for.
func collectVersionInfo(picked func(flag string) bool) versionInfo {
	v := strings.TrimSpace(version.Version)
	if v == "" {
		v = "dev"
	}
	info := versionInfo{Version: v}
	for _, f := range []buildFact{
		{"hash", "commit", version.GitCommit},
		{"message", "message", version.GitMessage},
		{"date", "built", version.BuildDate},
	} {
		if picked(f.flag) {
			f.value = strings.TrimSpace(f.value)
			if f.value == "" {
				f.value = "unknown"
			}
			info.Facts = append(info.Facts, f)
		}
	}
	return info
}

func renderVersionPretty(out io.Writer, info versionInfo, colored bool) {
	fmt.Fprintf(out, "scanfmt %s: %s\n", version.Colored(info.Version, colored), versionTagline)
	for _, f := range info.Facts {
		fmt.Fprintf(out, "%-8s %s\n", f.label+":", f.value)
	}
	if len(info.Facts) == 0 {
		fmt.Fprintln(out, "set --hash, --message, --date, or --full for more build trivia")
	}
}

func renderVersionJSON(out io.Writer, info versionInfo) error {
	payload := versionPayload{Tool: "scanfmt", Version: info.Version, Tagline: versionTagline}
	for _, f := range info.Facts {
		switch f.flag {
		case "hash":
			payload.GitCommit = f.value
		case "message":
			payload.GitMessage = f.value
		case "date":
			payload.BuildDate = f.value
		}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
