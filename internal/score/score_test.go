package score

import (
	"testing"

	"github.com/kdfrederick/matdraft/internal/bracket"
	"github.com/kdfrederick/matdraft/internal/roster"
)

func ownedRecord(owner string, adv, bonus, place float64) *bracket.Record {
	return &bracket.Record{
		Owner:           owner,
		Status:          roster.StatusResolved,
		Advancement:     adv,
		Bonus:           bonus,
		PlacementPoints: place,
		Total:           adv + bonus + place,
	}
}

func TestTeamPoints(t *testing.T) {
	records := []*bracket.Record{
		ownedRecord("Team Alpha", 3.0, 2.0, 1.0),
		ownedRecord("Team Alpha", 1.0, 0, 0),
		ownedRecord("Team Alpha", 0, 0, 0), // drafted but scoreless
		ownedRecord("Team Beta", 0.5, 1.5, 0),
		{Name: "Free Agent", Status: roster.StatusUnmatched, Total: 4.0, Advancement: 4.0},
	}

	summaries := TeamPoints(records)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 team rows, got %d", len(summaries))
	}

	alpha := summaries[0]
	if alpha.Owner != "Team Alpha" {
		t.Fatalf("expected sorted owners, got %s first", alpha.Owner)
	}
	if alpha.TotalPoints != 7.0 {
		t.Errorf("Team Alpha total = %v, want 7.0", alpha.TotalPoints)
	}
	if alpha.Advancement != 4.0 || alpha.Bonus != 2.0 || alpha.PlacementPoints != 1.0 {
		t.Errorf("Team Alpha categories = %v/%v/%v", alpha.Advancement, alpha.Bonus, alpha.PlacementPoints)
	}
	if alpha.Scorers != 2 {
		t.Errorf("Team Alpha scorers = %d, want 2", alpha.Scorers)
	}

	beta := summaries[1]
	if beta.TotalPoints != 2.0 || beta.Scorers != 1 {
		t.Errorf("Team Beta = %v points / %d scorers", beta.TotalPoints, beta.Scorers)
	}
}

func TestTeamPointsConservation(t *testing.T) {
	records := []*bracket.Record{
		ownedRecord("Team Alpha", 2.0, 1.5, 0),
		ownedRecord("Team Beta", 1.0, 0, 1.0),
		ownedRecord("Team Gamma", 0.5, 2.0, 0),
		{Name: "Unowned", Status: roster.StatusUnmatched, Total: 9.0},
	}

	var ownedTotal float64
	for _, rec := range records {
		if rec.Owned() {
			ownedTotal += rec.Total
		}
	}

	var teamTotal float64
	for _, summary := range TeamPoints(records) {
		teamTotal += summary.TotalPoints
	}

	if teamTotal != ownedTotal {
		t.Errorf("team totals %v != owned record totals %v", teamTotal, ownedTotal)
	}
}

func TestTeamPointsEmpty(t *testing.T) {
	if got := TeamPoints(nil); len(got) != 0 {
		t.Errorf("expected no rows for no records, got %d", len(got))
	}
}
