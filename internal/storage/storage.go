package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kdfrederick/matdraft/internal/bracket"
	"github.com/kdfrederick/matdraft/internal/score"
)

const snapshotFile = "snapshot.json"

// Snapshot captures the scoreboard state of one run
type Snapshot struct {
	RunID   string              `json:"run_id"`
	SavedAt string              `json:"saved_at"` // RFC3339
	Teams   []score.TeamSummary `json:"teams"`
	// Placements maps "name|weight" to final placement
	Placements map[string]int `json:"placements"`
}

// Storage handles snapshot persistence under a data directory
type Storage struct {
	dataDir string
}

// New creates a Storage rooted at dataDir, creating the directory if needed.
// A leading ~/ expands to the user's home directory.
func New(dataDir string) (*Storage, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{dataDir: dataDir}, nil
}

// BuildSnapshot assembles a snapshot from a run's outputs
func BuildSnapshot(runID, savedAt string, teams []score.TeamSummary, placed []*bracket.Record) *Snapshot {
	snap := &Snapshot{
		RunID:      runID,
		SavedAt:    savedAt,
		Teams:      teams,
		Placements: make(map[string]int),
	}
	for _, rec := range placed {
		snap.Placements[competitorKey(rec.Name, rec.Weight)] = rec.Placement
	}
	return snap
}

// Save writes the snapshot, replacing any previous one
func (s *Storage) Save(snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	path := filepath.Join(s.dataDir, snapshotFile)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

// Load reads the previous snapshot. A missing snapshot is not an error; the
// first return is nil when no prior run exists.
func (s *Storage) Load() (*Snapshot, error) {
	data, err := os.ReadFile(filepath.Join(s.dataDir, snapshotFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return &snap, nil
}

// TeamDelta is one owner's score movement since the previous run
type TeamDelta struct {
	Owner    string  `json:"owner"`
	Previous float64 `json:"previous"`
	Current  float64 `json:"current"`
	Delta    float64 `json:"delta"`
}

// DiffResult describes what changed between two runs
type DiffResult struct {
	TeamDeltas  []TeamDelta       `json:"team_deltas"`
	NewlyPlaced []*bracket.Record `json:"newly_placed"`
}

// Changed reports whether anything moved since the previous run
func (d *DiffResult) Changed() bool {
	if len(d.NewlyPlaced) > 0 {
		return true
	}
	for _, delta := range d.TeamDeltas {
		if delta.Delta != 0 {
			return true
		}
	}
	return false
}

// Diff compares the current run against a previous snapshot. A nil previous
// snapshot treats every team and placement as new.
func Diff(previous *Snapshot, teams []score.TeamSummary, placed []*bracket.Record) *DiffResult {
	prevTotals := make(map[string]float64)
	prevPlacements := make(map[string]int)
	if previous != nil {
		for _, team := range previous.Teams {
			prevTotals[team.Owner] = team.TotalPoints
		}
		prevPlacements = previous.Placements
	}

	result := &DiffResult{}
	for _, team := range teams {
		prev := prevTotals[team.Owner]
		result.TeamDeltas = append(result.TeamDeltas, TeamDelta{
			Owner:    team.Owner,
			Previous: prev,
			Current:  team.TotalPoints,
			Delta:    team.TotalPoints - prev,
		})
	}

	for _, rec := range placed {
		if _, seen := prevPlacements[competitorKey(rec.Name, rec.Weight)]; !seen {
			result.NewlyPlaced = append(result.NewlyPlaced, rec)
		}
	}
	return result
}

func competitorKey(name, weight string) string {
	return name + "|" + weight
}
