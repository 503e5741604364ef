// Package config loads tracker configuration by layering defaults, an
// optional YAML file, and MATDRAFT_-prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all tracker settings
type Config struct {
	// DraftFile is the path to the draft roster CSV
	DraftFile string `koanf:"draft_file"`

	// ResultsFile is the path to the transcript text file
	ResultsFile string `koanf:"results_file"`

	// ResultsURL optionally points at a results web page to fetch instead
	// of reading ResultsFile
	ResultsURL string `koanf:"results_url"`

	// OutputDir receives reports, CSV exports, and the run snapshot
	OutputDir string `koanf:"output_dir"`

	// WeightClasses lists the bracket weight classes in order
	WeightClasses []string `koanf:"weight_classes"`

	// WatchedWrestlers are names flagged in the diagnostics whenever they
	// appear in a transcript line
	WatchedWrestlers []string `koanf:"watched_wrestlers"`

	// LogLevel controls verbosity: debug, info, warn, error
	LogLevel string `koanf:"log_level"`

	// Parallel processes weight classes concurrently
	Parallel bool `koanf:"parallel"`
}

// Defaults returns the built-in configuration
func Defaults() *Config {
	return &Config{
		DraftFile:   "draft.csv",
		ResultsFile: "results.txt",
		OutputDir:   "output",
		WeightClasses: []string{
			"125", "133", "141", "149", "157",
			"165", "174", "184", "197", "285", "DH",
		},
		LogLevel: "info",
	}
}

// Load builds a Config. Precedence, low to high: defaults, the YAML file at
// path (skipped when path is empty and no file exists at the default
// location), then MATDRAFT_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	} else if _, err := os.Stat("matdraft.yml"); err == nil {
		if err := k.Load(file.Provider("matdraft.yml"), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	envProvider := env.Provider("MATDRAFT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "MATDRAFT_"))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.DraftFile == "" {
		return nil, fmt.Errorf("draft_file must not be empty")
	}
	if cfg.ResultsFile == "" && cfg.ResultsURL == "" {
		return nil, fmt.Errorf("one of results_file or results_url is required")
	}
	return cfg, nil
}
