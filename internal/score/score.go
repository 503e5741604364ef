// Package score aggregates competitor records into per-owner team summaries.
package score

import (
	"sort"

	"github.com/kdfrederick/matdraft/internal/bracket"
)

// TeamSummary is one owner's point totals for the tournament
type TeamSummary struct {
	Owner           string  `json:"owner"`
	TotalPoints     float64 `json:"total_points"`
	Advancement     float64 `json:"total_advancement"`
	Bonus           float64 `json:"total_bonus"`
	PlacementPoints float64 `json:"total_placement_points"`
	Scorers         int     `json:"scorers"` // competitors with points > 0
}

// TeamPoints groups competitor records by owner and sums their point
// categories. Unowned competitors are skipped; they stay visible in the
// record-level output. Rows come back sorted by owner name so repeat runs
// produce identical tables.
func TeamPoints(records []*bracket.Record) []TeamSummary {
	byOwner := make(map[string]*TeamSummary)

	for _, rec := range records {
		if !rec.Owned() {
			continue
		}
		summary, ok := byOwner[rec.Owner]
		if !ok {
			summary = &TeamSummary{Owner: rec.Owner}
			byOwner[rec.Owner] = summary
		}
		summary.TotalPoints += rec.Total
		summary.Advancement += rec.Advancement
		summary.Bonus += rec.Bonus
		summary.PlacementPoints += rec.PlacementPoints
		if rec.Total > 0 {
			summary.Scorers++
		}
	}

	summaries := make([]TeamSummary, 0, len(byOwner))
	for _, summary := range byOwner {
		summaries = append(summaries, *summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Owner < summaries[j].Owner
	})
	return summaries
}
