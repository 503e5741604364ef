// Package export writes pipeline results as CSV files: the competitor table,
// the round-by-round grid, final placements, and the team summary.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/kdfrederick/matdraft/internal/pipeline"
)

// File names written into the output directory
const (
	ResultsFile    = "results.csv"
	RoundsFile     = "rounds.csv"
	PlacementsFile = "placements.csv"
	TeamsFile      = "team_summary.csv"
)

// WriteAll writes every CSV into dir, creating it if needed
func WriteAll(dir string, result *pipeline.Result) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	writers := []struct {
		name  string
		write func(*csv.Writer, *pipeline.Result) error
	}{
		{ResultsFile, writeResults},
		{RoundsFile, writeRounds},
		{PlacementsFile, writePlacements},
		{TeamsFile, writeTeams},
	}

	for _, w := range writers {
		if err := writeFile(filepath.Join(dir, w.name), result, w.write); err != nil {
			return fmt.Errorf("writing %s: %w", w.name, err)
		}
	}
	return nil
}

func writeFile(path string, result *pipeline.Result, write func(*csv.Writer, *pipeline.Result) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := write(w, result); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func writeResults(w *csv.Writer, result *pipeline.Result) error {
	header := []string{
		"name", "school", "weight", "seed", "owner", "status",
		"champ_wins", "cons_wins", "losses",
		"advancement_points", "bonus_points", "placement_points", "total_points", "placement",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, rec := range result.Competitors {
		row := []string{
			rec.Name, rec.School, rec.Weight, intCell(rec.Seed),
			rec.Owner, string(rec.Status),
			strconv.Itoa(rec.ChampWins), strconv.Itoa(rec.ConsWins), strconv.Itoa(rec.Losses),
			pointCell(rec.Advancement), pointCell(rec.Bonus),
			pointCell(rec.PlacementPoints), pointCell(rec.Total),
			intCell(rec.Placement),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeRounds(w *csv.Writer, result *pipeline.Result) error {
	header := append([]string{"name", "weight", "owner"}, result.RoundLabels...)
	if err := w.Write(header); err != nil {
		return err
	}

	for _, rec := range result.Competitors {
		row := []string{rec.Name, rec.Weight, rec.Owner}
		for _, label := range result.RoundLabels {
			row = append(row, rec.Grid[label])
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writePlacements(w *csv.Writer, result *pipeline.Result) error {
	if err := w.Write([]string{"weight", "placement", "name", "school", "owner", "total_points"}); err != nil {
		return err
	}

	for _, rec := range result.Placed {
		row := []string{
			rec.Weight, strconv.Itoa(rec.Placement),
			rec.Name, rec.School, rec.Owner, pointCell(rec.Total),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeTeams(w *csv.Writer, result *pipeline.Result) error {
	header := []string{
		"owner", "total_points", "total_advancement", "total_bonus",
		"total_placement_points", "scorers",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, team := range result.Teams {
		row := []string{
			team.Owner, pointCell(team.TotalPoints), pointCell(team.Advancement),
			pointCell(team.Bonus), pointCell(team.PlacementPoints),
			strconv.Itoa(team.Scorers),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// pointCell formats points with one decimal place, matching the 0.5-point
// scoring granularity
func pointCell(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}

// intCell renders zero-valued optional ints (seed, placement) as empty cells
func intCell(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
