package analytics

import (
	"testing"

	"github.com/kdfrederick/matdraft/internal/bracket"
	"github.com/kdfrederick/matdraft/internal/roster"
	"github.com/kdfrederick/matdraft/internal/score"
)

func record(owner, weight string, total, bonus float64, placement int) *bracket.Record {
	return &bracket.Record{
		Owner:     owner,
		Status:    roster.StatusResolved,
		Weight:    weight,
		Total:     total,
		Bonus:     bonus,
		Placement: placement,
	}
}

func TestTeamStats(t *testing.T) {
	records := []*bracket.Record{
		record("Team Alpha", "125", 6.0, 2.0, 1),
		record("Team Alpha", "141", 4.0, 0, 0),
		record("Team Beta", "133", 2.0, 1.0, 3),
		{Name: "Unowned", Status: roster.StatusUnmatched, Weight: "125", Total: 8.0, Placement: 2},
	}
	summaries := []score.TeamSummary{
		{Owner: "Team Alpha", TotalPoints: 10.0, Bonus: 2.0, Scorers: 2},
		{Owner: "Team Beta", TotalPoints: 2.0, Bonus: 1.0, Scorers: 1},
	}

	metrics := TeamStats(records, summaries)
	if len(metrics) != 2 {
		t.Fatalf("expected 2 metric rows, got %d", len(metrics))
	}

	alpha := metrics[0]
	if alpha.PointsPerScorer != 5.0 {
		t.Errorf("Team Alpha points per scorer = %v, want 5.0", alpha.PointsPerScorer)
	}
	if alpha.BonusShare != 20.0 {
		t.Errorf("Team Alpha bonus share = %v, want 20.0", alpha.BonusShare)
	}
	if alpha.AllAmericans != 1 {
		t.Errorf("Team Alpha All-Americans = %d, want 1", alpha.AllAmericans)
	}
	if alpha.BestWeight != "125" {
		t.Errorf("Team Alpha best weight = %q, want 125", alpha.BestWeight)
	}

	beta := metrics[1]
	if beta.AllAmericans != 1 || beta.BestWeight != "133" {
		t.Errorf("Team Beta = %d AA / best %q", beta.AllAmericans, beta.BestWeight)
	}
}

func TestTeamStatsZeroGuards(t *testing.T) {
	summaries := []score.TeamSummary{{Owner: "Team Alpha"}}

	metrics := TeamStats(nil, summaries)
	if metrics[0].PointsPerScorer != 0 || metrics[0].BonusShare != 0 {
		t.Errorf("zero-point team should produce zero metrics: %+v", metrics[0])
	}
}

func TestWeightPivot(t *testing.T) {
	records := []*bracket.Record{
		record("Team Beta", "285", 3.0, 0, 0),
		record("Team Alpha", "125", 2.0, 0, 0),
		record("Team Alpha", "125", 1.5, 0, 0),
		record("Team Alpha", "285", 1.0, 0, 0),
		{Name: "Unowned", Status: roster.StatusUnmatched, Weight: "125", Total: 9.0},
	}

	pivot := WeightPivot(records)

	if len(pivot.Owners) != 2 || pivot.Owners[0] != "Team Alpha" {
		t.Fatalf("unexpected owners: %v", pivot.Owners)
	}
	if len(pivot.Weights) != 2 || pivot.Weights[0] != "125" || pivot.Weights[1] != "285" {
		t.Fatalf("unexpected weights: %v", pivot.Weights)
	}

	if pivot.Points[0][0] != 3.5 {
		t.Errorf("Alpha at 125 = %v, want 3.5", pivot.Points[0][0])
	}
	if pivot.Points[0][1] != 1.0 {
		t.Errorf("Alpha at 285 = %v, want 1.0", pivot.Points[0][1])
	}
	if pivot.Points[1][0] != 0 {
		t.Errorf("Beta at 125 = %v, want 0", pivot.Points[1][0])
	}
	if pivot.Points[1][1] != 3.0 {
		t.Errorf("Beta at 285 = %v, want 3.0", pivot.Points[1][1])
	}
}
