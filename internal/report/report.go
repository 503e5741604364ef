// Package report renders pipeline results as plain-text reports: a short
// standings summary and a detailed per-team breakdown with match histories.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/kdfrederick/matdraft/internal/bracket"
	"github.com/kdfrederick/matdraft/internal/diag"
	"github.com/kdfrederick/matdraft/internal/pipeline"
)

// WriteSummary writes the team standings table
func WriteSummary(w io.Writer, result *pipeline.Result) error {
	if _, err := fmt.Fprintln(w, "TEAM STANDINGS"); err != nil {
		return err
	}
	fmt.Fprintln(w, strings.Repeat("=", 62))
	fmt.Fprintf(w, "%-4s %-20s %8s %8s %8s %8s\n", "Rank", "Team", "Total", "Adv", "Bonus", "Place")

	standings := standingsOrder(result)
	for i, team := range standings {
		fmt.Fprintf(w, "%-4d %-20s %8.1f %8.1f %8.1f %8.1f\n",
			i+1, team.Owner, team.TotalPoints, team.Advancement, team.Bonus, team.PlacementPoints)
	}
	return nil
}

// WriteDetailed writes the full report: standings, per-team rosters with
// match histories, unattributed competitors, and a diagnostics summary.
func WriteDetailed(w io.Writer, result *pipeline.Result, source string) error {
	fmt.Fprintln(w, "FANTASY WRESTLING TOURNAMENT REPORT")
	fmt.Fprintln(w, strings.Repeat("=", 62))
	if source != "" {
		fmt.Fprintf(w, "Results source: %s\n", source)
	}
	fmt.Fprintf(w, "Run: %s\n\n", result.RunID)

	if err := WriteSummary(w, result); err != nil {
		return err
	}

	for _, team := range standingsOrder(result) {
		fmt.Fprintf(w, "\n%s (%.1f points, %d scoring)\n", team.Owner, team.TotalPoints, team.Scorers)
		fmt.Fprintln(w, strings.Repeat("-", 62))

		for _, rec := range teamRecords(result, team.Owner) {
			writeCompetitor(w, rec)
		}
	}

	if unowned := unownedRecords(result); len(unowned) > 0 {
		fmt.Fprintf(w, "\nUNATTRIBUTED COMPETITORS (%d)\n", len(unowned))
		fmt.Fprintln(w, strings.Repeat("-", 62))
		for _, rec := range unowned {
			fmt.Fprintf(w, "  %s (%s) at %s: %s\n", rec.Name, rec.School, rec.Weight, rec.Status)
		}
	}

	counts := result.Diagnostics.CountByKind()
	if len(counts) > 0 {
		fmt.Fprintf(w, "\nDIAGNOSTICS (%d)\n", result.Diagnostics.Len())
		fmt.Fprintln(w, strings.Repeat("-", 62))
		kinds := make([]string, 0, len(counts))
		for kind := range counts {
			kinds = append(kinds, string(kind))
		}
		sort.Strings(kinds)
		for _, kind := range kinds {
			fmt.Fprintf(w, "  %-22s %d\n", kind, counts[diag.Kind(kind)])
		}
	}
	return nil
}

// writeCompetitor writes one wrestler's line and match history
func writeCompetitor(w io.Writer, rec *bracket.Record) {
	placement := ""
	if rec.Placement > 0 {
		placement = fmt.Sprintf("  [placed %s]", ordinal(rec.Placement))
	}
	seed := ""
	if rec.Seed > 0 {
		seed = fmt.Sprintf(" (#%d)", rec.Seed)
	}
	fmt.Fprintf(w, "  %s%s (%s) %s: %.1f pts (%d-%d)%s\n",
		rec.Name, seed, rec.School, rec.Weight, rec.Total,
		rec.ChampWins+rec.ConsWins, rec.Losses, placement)

	for _, evt := range rec.Matches {
		code := "L"
		if strings.EqualFold(evt.WinnerName, rec.Name) {
			code = "W"
		}
		fmt.Fprintf(w, "    %s %-10s %s over %s (%s)\n",
			code, evt.FullRound, evt.WinnerName, evt.LoserName, evt.WinType)
	}
}

// standingsOrder sorts team rows by total points descending
func standingsOrder(result *pipeline.Result) []teamRow {
	rows := make([]teamRow, 0, len(result.Teams))
	for _, team := range result.Teams {
		rows = append(rows, teamRow{team.Owner, team.TotalPoints, team.Advancement, team.Bonus, team.PlacementPoints, team.Scorers})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TotalPoints != rows[j].TotalPoints {
			return rows[i].TotalPoints > rows[j].TotalPoints
		}
		return rows[i].Owner < rows[j].Owner
	})
	return rows
}

type teamRow struct {
	Owner           string
	TotalPoints     float64
	Advancement     float64
	Bonus           float64
	PlacementPoints float64
	Scorers         int
}

// teamRecords returns one owner's competitors, highest scorer first
func teamRecords(result *pipeline.Result, owner string) []*bracket.Record {
	var records []*bracket.Record
	for _, rec := range result.Competitors {
		if rec.Owned() && rec.Owner == owner {
			records = append(records, rec)
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Total != records[j].Total {
			return records[i].Total > records[j].Total
		}
		return bracket.WeightLess(records[i].Weight, records[j].Weight)
	})
	return records
}

func unownedRecords(result *pipeline.Result) []*bracket.Record {
	var records []*bracket.Record
	for _, rec := range result.Competitors {
		if !rec.Owned() {
			records = append(records, rec)
		}
	}
	return records
}

// ordinal renders 1 as "1st", 2 as "2nd", etc. Placements only reach 8th.
func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", n)
	}
}
