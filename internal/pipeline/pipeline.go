package pipeline

import (
	"errors"
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kdfrederick/matdraft/internal/analytics"
	"github.com/kdfrederick/matdraft/internal/bracket"
	"github.com/kdfrederick/matdraft/internal/diag"
	"github.com/kdfrederick/matdraft/internal/match"
	"github.com/kdfrederick/matdraft/internal/parse"
	"github.com/kdfrederick/matdraft/internal/roster"
	"github.com/kdfrederick/matdraft/internal/score"
)

var (
	// ErrNoRoster indicates a missing or empty draft roster
	ErrNoRoster = errors.New("no roster loaded")
	// ErrEmptyTranscript indicates the results text held no lines at all
	ErrEmptyTranscript = errors.New("transcript is empty")
)

// weightHeader matches section header lines like "125", "125 lbs.", or "DH"
var weightHeader = regexp.MustCompile(`^(\d{2,3}|DH)(?:\s*lbs\.?)?$`)

// Options configures a pipeline run
type Options struct {
	// Watched wrestler names flagged on sight in any transcript line
	Watched []string
	// Parallel processes weight-class sections concurrently. Output is
	// identical either way; sections merge back in transcript order.
	Parallel bool
}

// Result is the full output of one pipeline run
type Result struct {
	RunID       string                  `json:"run_id"`
	Competitors []*bracket.Record       `json:"competitors"`
	RoundLabels []string                `json:"round_labels"`
	Placed      []*bracket.Record       `json:"placed"`
	Teams       []score.TeamSummary     `json:"teams"`
	Metrics     []analytics.TeamMetrics `json:"metrics"`
	Pivot       *analytics.Pivot        `json:"pivot"`
	Diagnostics *diag.Collector         `json:"-"`
}

// section is one weight class's transcript lines in order
type section struct {
	weight string
	lines  []string
}

// Run executes the full pipeline over a results transcript and draft roster.
// It fails fast only on structurally missing input; all per-line and
// per-competitor trouble is collected as diagnostics on the result.
func Run(transcript string, r *roster.Roster, opts Options) (*Result, error) {
	if r == nil || r.Len() == 0 {
		return nil, ErrNoRoster
	}
	if strings.TrimSpace(transcript) == "" {
		return nil, ErrEmptyTranscript
	}

	collector := diag.NewCollector()
	resolver := roster.NewResolver(r, collector)
	parser := parse.New(opts.Watched)

	sections := splitSections(transcript)
	logrus.WithFields(logrus.Fields{
		"sections": len(sections),
		"entries":  r.Len(),
	}).Debug("starting pipeline run")

	tracker := bracket.New()
	if opts.Parallel && len(sections) > 1 && weightsDisjoint(sections) {
		runParallel(sections, parser, resolver, tracker, collector)
	} else {
		for _, sec := range sections {
			processSection(sec, parser, resolver, tracker, collector)
		}
	}

	records := tracker.Records()
	teams := score.TeamPoints(records)

	return &Result{
		RunID:       uuid.NewString(),
		Competitors: records,
		RoundLabels: tracker.RoundLabels(),
		Placed:      tracker.Placed(),
		Teams:       teams,
		Metrics:     analytics.TeamStats(records, teams),
		Pivot:       analytics.WeightPivot(records),
		Diagnostics: collector,
	}, nil
}

// splitSections groups transcript lines under their weight-class headers.
// Lines before the first header belong to an unnamed section.
func splitSections(transcript string) []section {
	var sections []section
	current := -1

	for _, line := range strings.Split(transcript, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := weightHeader.FindStringSubmatch(line); m != nil {
			sections = append(sections, section{weight: m[1]})
			current = len(sections) - 1
			continue
		}

		if current == -1 {
			sections = append(sections, section{})
			current = 0
		}
		sections[current].lines = append(sections[current].lines, line)
	}

	return sections
}

// weightsDisjoint reports whether every section covers a distinct weight
// class. A transcript that revisits a weight must be processed sequentially
// since its bracket state spans sections.
func weightsDisjoint(sections []section) bool {
	seen := make(map[string]bool, len(sections))
	for _, sec := range sections {
		if seen[sec.weight] {
			return false
		}
		seen[sec.weight] = true
	}
	return true
}

// processSection parses and tracks one weight class's lines in order
func processSection(sec section, parser *parse.Parser, resolver *roster.Resolver,
	tracker *bracket.Tracker, collector *diag.Collector) {
	for _, line := range sec.lines {
		evt, ok := parser.ParseLine(line, sec.weight, collector)
		if !ok {
			continue
		}
		winnerRes, loserRes := resolveEvent(evt, resolver)
		tracker.Process(evt, winnerRes, loserRes, collector)
	}
}

// runParallel fans sections out across goroutines, then merges trackers and
// collectors back in section order so the result matches a sequential run.
func runParallel(sections []section, parser *parse.Parser, resolver *roster.Resolver,
	tracker *bracket.Tracker, collector *diag.Collector) {
	trackers := make([]*bracket.Tracker, len(sections))
	collectors := make([]*diag.Collector, len(sections))

	var wg sync.WaitGroup
	for i, sec := range sections {
		wg.Add(1)
		go func(i int, sec section) {
			defer wg.Done()
			trackers[i] = bracket.New()
			collectors[i] = diag.NewCollector()
			processSection(sec, parser, resolver, trackers[i], collectors[i])
		}(i, sec)
	}
	wg.Wait()

	for i := range sections {
		tracker.Merge(trackers[i])
		collector.Merge(collectors[i])
	}
}

// resolveEvent attributes both sides of a match to roster entries
func resolveEvent(evt *match.Event, resolver *roster.Resolver) (roster.Result, roster.Result) {
	winnerRes := resolver.Resolve(evt.WinnerName, evt.Weight, evt.WinnerSeed)
	loserRes := resolver.Resolve(evt.LoserName, evt.Weight, 0)
	return winnerRes, loserRes
}
