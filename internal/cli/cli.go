package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kdfrederick/matdraft/internal/config"
	"github.com/kdfrederick/matdraft/internal/export"
	"github.com/kdfrederick/matdraft/internal/logger"
	"github.com/kdfrederick/matdraft/internal/pipeline"
	"github.com/kdfrederick/matdraft/internal/report"
	"github.com/kdfrederick/matdraft/internal/roster"
	"github.com/kdfrederick/matdraft/internal/scraper"
	"github.com/kdfrederick/matdraft/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig        string
	flagDraft         string
	flagResults       string
	flagResultsURL    string
	flagOutputDir     string
	flagFormat        string
	flagVerbose       bool
	flagParallel      bool
	flagNoSnapshot    bool
	flagDebugWrestler string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matdraft",
		Short: "Score a fantasy wrestling draft from tournament results",
		Long: `Parses an NCAA-style tournament transcript against a fantasy draft
roster, tracks each wrestler through the championship and consolation
brackets, and scores advancement, bonus, and placement points per team.

Reports and CSV tables are written to the output directory; a snapshot of
team standings is kept there so repeat runs show what changed.`,
		RunE: runTrack,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file (default matdraft.yml if present)")
	cmd.Flags().StringVar(&flagDraft, "draft", "", "Path to draft roster CSV")
	cmd.Flags().StringVar(&flagResults, "results", "", "Path to results transcript file")
	cmd.Flags().StringVar(&flagResultsURL, "results-url", "", "Fetch the transcript from a results web page instead")
	cmd.Flags().StringVar(&flagOutputDir, "output-dir", "", "Directory for reports, CSVs, and the run snapshot")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	cmd.Flags().BoolVar(&flagParallel, "parallel", false, "Process weight classes concurrently")
	cmd.Flags().BoolVar(&flagNoSnapshot, "no-snapshot", false, "Skip saving the run snapshot and diffing the previous run")
	cmd.Flags().StringVar(&flagDebugWrestler, "debug-wrestler", "", "Print one wrestler's full match detail and exit")

	return cmd
}

// runTrack is the main command logic
func runTrack(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger.Setup(cfg.LogLevel, os.Stderr)

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	r, err := roster.Load(cfg.DraftFile)
	if err != nil {
		return fmt.Errorf("loading draft roster: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"owners":  len(r.Owners()),
		"entries": r.Len(),
		"source":  cfg.DraftFile,
	}).Info("roster loaded")

	transcript, source, err := loadTranscript(cfg)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(transcript, r, pipeline.Options{
		Watched:  cfg.WatchedWrestlers,
		Parallel: cfg.Parallel,
	})
	if err != nil {
		return fmt.Errorf("processing results: %w", err)
	}

	if flagDebugWrestler != "" {
		return writeWrestlerDetail(os.Stdout, result, flagDebugWrestler)
	}

	var diff *storage.DiffResult
	if !flagNoSnapshot {
		diff, err = saveSnapshot(cfg.OutputDir, result)
		if err != nil {
			return err
		}
	}

	if err := writeOutputs(cfg.OutputDir, result, source); err != nil {
		return err
	}

	return WriteOutput(os.Stdout, result, diff, format)
}

// loadConfig layers the config file with flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if flagDraft != "" {
		cfg.DraftFile = flagDraft
	}
	if flagResults != "" {
		cfg.ResultsFile = flagResults
	}
	if flagResultsURL != "" {
		cfg.ResultsURL = flagResultsURL
	}
	if flagOutputDir != "" {
		cfg.OutputDir = flagOutputDir
	}
	if flagParallel {
		cfg.Parallel = true
	}
	if flagVerbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// loadTranscript reads the results text from disk or fetches it from a page.
// The second return names the source for the report header.
func loadTranscript(cfg *config.Config) (string, string, error) {
	if cfg.ResultsURL != "" {
		transcript, err := scraper.New().FetchTranscript(cfg.ResultsURL)
		if err != nil {
			return "", "", fmt.Errorf("fetching results: %w", err)
		}
		return transcript, cfg.ResultsURL, nil
	}

	data, err := os.ReadFile(cfg.ResultsFile)
	if err != nil {
		return "", "", fmt.Errorf("reading results file: %w", err)
	}
	return string(data), cfg.ResultsFile, nil
}

// saveSnapshot diffs against the previous run and stores the new snapshot
func saveSnapshot(outputDir string, result *pipeline.Result) (*storage.DiffResult, error) {
	store, err := storage.New(outputDir)
	if err != nil {
		return nil, fmt.Errorf("initializing snapshot storage: %w", err)
	}

	previous, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading previous snapshot: %w", err)
	}

	diff := storage.Diff(previous, result.Teams, result.Placed)

	snap := storage.BuildSnapshot(result.RunID, time.Now().UTC().Format(time.RFC3339), result.Teams, result.Placed)
	if err := store.Save(snap); err != nil {
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}
	return diff, nil
}

// writeOutputs writes the detailed report and CSV tables to the output dir
func writeOutputs(outputDir string, result *pipeline.Result, source string) error {
	if err := export.WriteAll(outputDir, result); err != nil {
		return fmt.Errorf("exporting CSVs: %w", err)
	}

	path := filepath.Join(outputDir, "report.txt")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer f.Close()

	if err := report.WriteDetailed(f, result, source); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	logrus.WithField("dir", outputDir).Info("outputs written")
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
