package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"scanfmt/internal/diagfmt"
)

const configFileName = "scanfmt.toml"

type fileConfig struct {
	Lexer  lexerConfig  `toml:"lexer"`
	Output outputConfig `toml:"output"`
	Check  checkConfig  `toml:"check"`
}

type lexerConfig struct {
	MaxTokens int  `toml:"max_tokens"`
	MaxWidth  uint `toml:"max_width"`
}

type outputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

type checkConfig struct {
	Jobs int    `toml:"jobs"`
	NFC  bool   `toml:"nfc"`
	UI   string `toml:"ui"`
}

// settings is the effective configuration of one command run:
// defaults, then scanfmt.toml, then explicitly set flags.
type settings struct {
	configPath     string
	color          string
	quiet          bool
	timings        bool
	maxDiagnostics int
	format         string
	maxTokens      int
	maxWidth       uint
	jobs           int
	nfc            bool
	ui             string
}

func defaultSettings() settings {
	return settings{
		color:          "auto",
		maxDiagnostics: 100,
		format:         string(diagfmt.TokenFormatPretty),
		ui:             string(switchAuto),
	}
}

func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadConfig(path string) (fileConfig, toml.MetaData, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, meta, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fileConfig{}, meta, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if cfg.Lexer.MaxTokens < 0 {
		return fileConfig{}, meta, fmt.Errorf("%s: [lexer].max_tokens must not be negative", path)
	}
	if cfg.Check.Jobs < 0 {
		return fileConfig{}, meta, fmt.Errorf("%s: [check].jobs must not be negative", path)
	}
	if meta.IsDefined("output", "format") {
		if _, ok := diagfmt.ParseTokenFormat(cfg.Output.Format); !ok {
			return fileConfig{}, meta, fmt.Errorf("%s: [output].format must be pretty, json or msgpack", path)
		}
	}
	if meta.IsDefined("output", "color") {
		if _, err := parseSwitch("color", cfg.Output.Color); err != nil {
			return fileConfig{}, meta, fmt.Errorf("%s: [output].color: %w", path, err)
		}
	}
	if meta.IsDefined("check", "ui") {
		if _, err := parseSwitch("ui", cfg.Check.UI); err != nil {
			return fileConfig{}, meta, fmt.Errorf("%s: [check].ui: %w", path, err)
		}
	}
	return cfg, meta, nil
}

// apply copies only the keys present in the file.
func (s *settings) apply(cfg fileConfig, meta toml.MetaData) {
	if meta.IsDefined("lexer", "max_tokens") {
		s.maxTokens = cfg.Lexer.MaxTokens
	}
	if meta.IsDefined("lexer", "max_width") {
		s.maxWidth = cfg.Lexer.MaxWidth
	}
	if meta.IsDefined("output", "format") {
		s.format = cfg.Output.Format
	}
	if meta.IsDefined("output", "color") {
		s.color = cfg.Output.Color
	}
	if meta.IsDefined("check", "jobs") {
		s.jobs = cfg.Check.Jobs
	}
	if meta.IsDefined("check", "nfc") {
		s.nfc = cfg.Check.NFC
	}
	if meta.IsDefined("check", "ui") {
		s.ui = cfg.Check.UI
	}
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

// resolveSettings builds the settings for cmd. An explicit --config must
// exist; otherwise scanfmt.toml is looked up from the working directory.
func resolveSettings(cmd *cobra.Command) (settings, error) {
	s := defaultSettings()
	flags := cmd.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		return s, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path == "" {
		found, ok, err := findConfig(".")
		if err != nil {
			return s, err
		}
		if ok {
			path = found
		}
	}
	if path != "" {
		cfg, meta, err := loadConfig(path)
		if err != nil {
			return s, err
		}
		s.apply(cfg, meta)
		s.configPath = path
	}

	if flagChanged(cmd, "color") {
		if s.color, err = flags.GetString("color"); err != nil {
			return s, err
		}
	}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return s, err
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return s, err
	}
	if s.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return s, err
	}
	if flagChanged(cmd, "format") {
		if s.format, err = flags.GetString("format"); err != nil {
			return s, err
		}
	}
	if flagChanged(cmd, "max-tokens") {
		if s.maxTokens, err = flags.GetInt("max-tokens"); err != nil {
			return s, err
		}
	}
	if flagChanged(cmd, "max-width") {
		if s.maxWidth, err = flags.GetUint("max-width"); err != nil {
			return s, err
		}
	}
	if flagChanged(cmd, "jobs") {
		if s.jobs, err = flags.GetInt("jobs"); err != nil {
			return s, err
		}
	}
	if flagChanged(cmd, "nfc") {
		if s.nfc, err = flags.GetBool("nfc"); err != nil {
			return s, err
		}
	}
	if flagChanged(cmd, "ui") {
		if s.ui, err = flags.GetString("ui"); err != nil {
			return s, err
		}
	}

	if _, err := parseSwitch("color", s.color); err != nil {
		return s, err
	}
	if _, ok := diagfmt.ParseTokenFormat(s.format); !ok {
		return s, fmt.Errorf("unknown format %q (expected pretty|json|msgpack)", s.format)
	}
	if s.maxTokens < 0 {
		return s, fmt.Errorf("--max-tokens must not be negative")
	}
	return s, nil
}
