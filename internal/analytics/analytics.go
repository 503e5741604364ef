// Package analytics derives team-level metrics from competitor records:
// scoring efficiency, bonus-point share, All-American counts, and a
// team-by-weight-class points pivot.
package analytics

import (
	"math"
	"sort"

	"github.com/kdfrederick/matdraft/internal/bracket"
	"github.com/kdfrederick/matdraft/internal/score"
)

// TeamMetrics holds derived efficiency numbers for one owner
type TeamMetrics struct {
	Owner           string  `json:"owner"`
	PointsPerScorer float64 `json:"points_per_scorer"`
	BonusShare      float64 `json:"bonus_share"` // percent of total points from bonus
	AllAmericans    int     `json:"all_americans"`
	BestWeight      string  `json:"best_weight,omitempty"`
}

// TeamStats computes per-owner metrics from the finished records and team
// summaries. Rows are ordered to match the summaries argument.
func TeamStats(records []*bracket.Record, summaries []score.TeamSummary) []TeamMetrics {
	placedByOwner := make(map[string]int)
	pointsByOwnerWeight := make(map[string]map[string]float64)

	for _, rec := range records {
		if !rec.Owned() {
			continue
		}
		if rec.Placement > 0 {
			placedByOwner[rec.Owner]++
		}
		weights, ok := pointsByOwnerWeight[rec.Owner]
		if !ok {
			weights = make(map[string]float64)
			pointsByOwnerWeight[rec.Owner] = weights
		}
		weights[rec.Weight] += rec.Total
	}

	metrics := make([]TeamMetrics, 0, len(summaries))
	for _, summary := range summaries {
		m := TeamMetrics{
			Owner:        summary.Owner,
			AllAmericans: placedByOwner[summary.Owner],
			BestWeight:   bestWeight(pointsByOwnerWeight[summary.Owner]),
		}
		if summary.Scorers > 0 {
			m.PointsPerScorer = round2(summary.TotalPoints / float64(summary.Scorers))
		}
		if summary.TotalPoints > 0 {
			m.BonusShare = round2(summary.Bonus / summary.TotalPoints * 100)
		}
		metrics = append(metrics, m)
	}
	return metrics
}

// bestWeight picks the weight class contributing the most points; ties go to
// the lighter class so repeat runs agree.
func bestWeight(points map[string]float64) string {
	best := ""
	var bestPoints float64
	weights := make([]string, 0, len(points))
	for weight := range points {
		weights = append(weights, weight)
	}
	sort.Slice(weights, func(i, j int) bool { return bracket.WeightLess(weights[i], weights[j]) })
	for _, weight := range weights {
		if points[weight] > bestPoints {
			best = weight
			bestPoints = points[weight]
		}
	}
	return best
}

// Pivot is a team-by-weight-class points table
type Pivot struct {
	Owners  []string    `json:"owners"`
	Weights []string    `json:"weights"`
	Points  [][]float64 `json:"points"` // Points[i][j] = Owners[i] at Weights[j]
}

// WeightPivot builds the points pivot over all owned records. Owners sort
// alphabetically, weight classes numerically.
func WeightPivot(records []*bracket.Record) *Pivot {
	cells := make(map[string]map[string]float64)
	weightSet := make(map[string]bool)

	for _, rec := range records {
		if !rec.Owned() {
			continue
		}
		row, ok := cells[rec.Owner]
		if !ok {
			row = make(map[string]float64)
			cells[rec.Owner] = row
		}
		row[rec.Weight] += rec.Total
		weightSet[rec.Weight] = true
	}

	pivot := &Pivot{}
	for owner := range cells {
		pivot.Owners = append(pivot.Owners, owner)
	}
	sort.Strings(pivot.Owners)
	for weight := range weightSet {
		pivot.Weights = append(pivot.Weights, weight)
	}
	sort.Slice(pivot.Weights, func(i, j int) bool {
		return bracket.WeightLess(pivot.Weights[i], pivot.Weights[j])
	})

	pivot.Points = make([][]float64, len(pivot.Owners))
	for i, owner := range pivot.Owners {
		row := make([]float64, len(pivot.Weights))
		for j, weight := range pivot.Weights {
			row[j] = cells[owner][weight]
		}
		pivot.Points[i] = row
	}
	return pivot
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
