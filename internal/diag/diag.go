// Package diag collects non-fatal diagnostics raised while processing a
// tournament run.
//
// Parsing, resolution, and tracking all continue past bad input; anything
// worth a human look (unparseable lines, ambiguous wrestlers, overtime
// results) is recorded here and returned alongside the normal output instead
// of being logged into ambient process state.
package diag

import "fmt"

// Kind categorizes a diagnostic entry
type Kind string

const (
	// KindUnparsedLine marks a transcript line neither grammar matched
	KindUnparsedLine Kind = "unparsed_line"
	// KindFallbackPattern marks a line only the permissive backup pattern matched
	KindFallbackPattern Kind = "fallback_pattern"
	// KindNoteworthyWin marks sudden-victory and tie-breaker results
	KindNoteworthyWin Kind = "noteworthy_win"
	// KindUnknownPlacement marks a placement ordinal with no winner/loser mapping
	KindUnknownPlacement Kind = "unknown_placement"
	// KindAmbiguousWrestler marks a name matching entries from multiple owners
	KindAmbiguousWrestler Kind = "ambiguous_wrestler"
	// KindUnmatchedWrestler marks a competitor absent from every roster
	KindUnmatchedWrestler Kind = "unmatched_wrestler"
	// KindProblemRoster marks duplicate or inconsistent roster entries
	KindProblemRoster Kind = "problem_roster"
	// KindWatchedWrestler marks a line mentioning a watch-listed name
	KindWatchedWrestler Kind = "watched_wrestler"
)

// Entry is a single recorded diagnostic
type Entry struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Weight  string `json:"weight,omitempty"`
	Line    string `json:"line,omitempty"`
}

// Collector accumulates diagnostic entries in the order they were raised.
// It is passed explicitly through the pipeline stages; the zero value is
// not usable, create one with NewCollector.
type Collector struct {
	entries []Entry
}

// NewCollector creates an empty diagnostics collector
func NewCollector() *Collector {
	return &Collector{entries: make([]Entry, 0)}
}

// Add records an entry
func (c *Collector) Add(e Entry) {
	c.entries = append(c.entries, e)
}

// Addf records an entry with a formatted message
func (c *Collector) Addf(kind Kind, weight, line, format string, args ...interface{}) {
	c.entries = append(c.entries, Entry{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Weight:  weight,
		Line:    line,
	})
}

// Merge appends all entries from another collector, preserving their order
func (c *Collector) Merge(other *Collector) {
	if other == nil {
		return
	}
	c.entries = append(c.entries, other.entries...)
}

// Entries returns the recorded entries in insertion order
func (c *Collector) Entries() []Entry {
	return c.entries
}

// Len returns the number of recorded entries
func (c *Collector) Len() int {
	return len(c.entries)
}

// CountByKind tallies entries per kind
func (c *Collector) CountByKind() map[Kind]int {
	counts := make(map[Kind]int)
	for _, e := range c.entries {
		counts[e.Kind]++
	}
	return counts
}
