package bracket

import (
	"testing"

	"github.com/kdfrederick/matdraft/internal/diag"
	"github.com/kdfrederick/matdraft/internal/match"
	"github.com/kdfrederick/matdraft/internal/roster"
)

func resolved(owner string) roster.Result {
	return roster.Result{Status: roster.StatusResolved, Entry: roster.Entry{Owner: owner}}
}

func unmatched() roster.Result {
	return roster.Result{Status: roster.StatusUnmatched}
}

func champEvent(round int, winner, loser, weight string) *match.Event {
	evt := &match.Event{
		Bracket:    match.BracketChampionship,
		RoundNum:   round,
		FullRound:  match.RoundLabel(match.BracketChampionship, round),
		Weight:     weight,
		WinnerName: winner,
		LoserName:  loser,
		WinType:    match.WinDecision,
	}
	evt.AdvancementPoints = 1.0
	evt.TotalPoints = 1.0
	return evt
}

func consEvent(round int, winner, loser, weight string, winType match.WinType) *match.Event {
	evt := &match.Event{
		Bracket:    match.BracketConsolation,
		RoundNum:   round,
		FullRound:  match.RoundLabel(match.BracketConsolation, round),
		Weight:     weight,
		WinnerName: winner,
		LoserName:  loser,
		WinType:    winType,
	}
	evt.AdvancementPoints = 0.5
	evt.BonusPoints = winType.BonusPoints()
	evt.TotalPoints = evt.AdvancementPoints + evt.BonusPoints
	return evt
}

func placementEvent(rank int, winner, loser, weight string, winType match.WinType) *match.Event {
	labels := map[int]string{1: "1st Place", 3: "3rd Place", 5: "5th Place", 7: "7th Place"}
	evt := &match.Event{
		Bracket:         match.BracketPlacement,
		FullRound:       labels[rank],
		Weight:          weight,
		WinnerName:      winner,
		LoserName:       loser,
		WinType:         winType,
		WinnerPlacement: rank,
		LoserPlacement:  rank + 1,
	}
	evt.BonusPoints = winType.BonusPoints()
	evt.TotalPoints = evt.BonusPoints
	return evt
}

func TestProcessAccumulatesWinnerPoints(t *testing.T) {
	tr := New()
	c := diag.NewCollector()

	tr.Process(champEvent(1, "John Smith", "Mike Jones", "125"), resolved("Team Alpha"), resolved("Team Beta"), c)
	tr.Process(champEvent(2, "John Smith", "Dan Brown", "125"), resolved("Team Alpha"), unmatched(), c)

	records := tr.Records()
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	smith := records[0]
	if smith.Name != "John Smith" {
		t.Fatalf("expected John Smith first, got %s", smith.Name)
	}
	if smith.ChampWins != 2 || smith.ConsWins != 0 {
		t.Errorf("expected 2 champ wins, got %d/%d", smith.ChampWins, smith.ConsWins)
	}
	if smith.Advancement != 2.0 || smith.Total != 2.0 {
		t.Errorf("unexpected points: adv=%v total=%v", smith.Advancement, smith.Total)
	}
	if smith.Grid["Champ R1"] != "W" || smith.Grid["Champ R2"] != "W" {
		t.Errorf("unexpected grid: %v", smith.Grid)
	}
	if len(smith.Matches) != 2 {
		t.Errorf("expected 2 matches in history, got %d", len(smith.Matches))
	}

	jones := records[1]
	if jones.Total != 0 || jones.Advancement != 0 {
		t.Errorf("loser should accumulate no points, got adv=%v total=%v", jones.Advancement, jones.Total)
	}
	if jones.Grid["Champ R1"] != "L" {
		t.Errorf("loser grid entry should be L, got %v", jones.Grid)
	}
	if jones.Losses != 1 {
		t.Errorf("expected 1 loss, got %d", jones.Losses)
	}
}

func TestProcessConsolationBonus(t *testing.T) {
	tr := New()
	c := diag.NewCollector()

	tr.Process(consEvent(2, "John Smith", "Mike Jones", "133", match.WinFall), resolved("Team Alpha"), unmatched(), c)

	smith := tr.Records()[0]
	if smith.ConsWins != 1 || smith.ChampWins != 0 {
		t.Errorf("expected 1 cons win, got %d/%d", smith.ConsWins, smith.ChampWins)
	}
	if smith.Advancement != 0.5 || smith.Bonus != 2.0 || smith.Total != 2.5 {
		t.Errorf("unexpected points: adv=%v bonus=%v total=%v", smith.Advancement, smith.Bonus, smith.Total)
	}
}

func TestProcessPlacementTerminal(t *testing.T) {
	tr := New()
	c := diag.NewCollector()

	tr.Process(champEvent(1, "John Smith", "Mike Jones", "141"), resolved("Team Alpha"), resolved("Team Beta"), c)
	tr.Process(placementEvent(1, "John Smith", "Ed White", "141", match.WinMajorDecision), resolved("Team Alpha"), unmatched(), c)

	smith := tr.Records()[0]
	if smith.Placement != 1 {
		t.Errorf("expected placement 1, got %d", smith.Placement)
	}
	if smith.PlacementPoints != 1.0 {
		t.Errorf("expected 1.0 placement points, got %v", smith.PlacementPoints)
	}
	if smith.Advancement != 1.0 {
		t.Errorf("placement match should not change advancement, got %v", smith.Advancement)
	}
	if smith.Total != 2.0 {
		t.Errorf("expected total 2.0, got %v", smith.Total)
	}

	var white *Record
	for _, rec := range tr.Records() {
		if rec.Name == "Ed White" {
			white = rec
		}
	}
	if white == nil {
		t.Fatal("expected a record for the placement loser")
	}
	if white.Placement != 2 {
		t.Errorf("expected loser placement 2, got %d", white.Placement)
	}
	if white.Total != 0 {
		t.Errorf("placement loser earns no points, got %v", white.Total)
	}
	if white.Grid["1st Place"] != "L" {
		t.Errorf("expected L in 1st Place column, got %v", white.Grid)
	}
}

func TestProcessUpgradesResolution(t *testing.T) {
	tr := New()
	c := diag.NewCollector()

	// First event cannot attribute the winner; the second can
	tr.Process(champEvent(1, "John Smith", "Mike Jones", "149"), unmatched(), unmatched(), c)
	tr.Process(champEvent(2, "John Smith", "Dan Brown", "149"),
		roster.Result{Status: roster.StatusResolved, Entry: roster.Entry{Owner: "Team Alpha", Seed: 3}},
		unmatched(), c)

	smith := tr.Records()[0]
	if !smith.Owned() || smith.Owner != "Team Alpha" {
		t.Errorf("expected upgraded attribution to Team Alpha, got %q (%s)", smith.Owner, smith.Status)
	}
	if smith.Seed != 3 {
		t.Errorf("expected seed from roster entry, got %d", smith.Seed)
	}
}

func TestProcessDiagnostics(t *testing.T) {
	tr := New()
	c := diag.NewCollector()

	ambiguous := roster.Result{
		Status: roster.StatusAmbiguous,
		Candidates: []roster.Entry{
			{Owner: "Team Alpha", Name: "John Smith", Weight: "157"},
			{Owner: "Team Beta", Name: "John Smith", Weight: "157"},
		},
	}
	tr.Process(champEvent(1, "John Smith", "Mike Jones", "157"), ambiguous, unmatched(), c)

	counts := c.CountByKind()
	if counts[diag.KindAmbiguousWrestler] != 1 {
		t.Errorf("expected 1 ambiguous diagnostic, got %d", counts[diag.KindAmbiguousWrestler])
	}
	if counts[diag.KindUnmatchedWrestler] != 1 {
		t.Errorf("expected 1 unmatched diagnostic, got %d", counts[diag.KindUnmatchedWrestler])
	}

	// Reprocessing the same competitors adds no duplicate diagnostics
	tr.Process(champEvent(2, "John Smith", "Dan Brown", "157"), ambiguous, unmatched(), c)
	if got := c.CountByKind()[diag.KindAmbiguousWrestler]; got != 1 {
		t.Errorf("expected no duplicate ambiguous diagnostics, got %d", got)
	}

	smith := tr.Records()[0]
	if smith.Owned() {
		t.Error("ambiguous competitor must stay unowned")
	}
}

func TestRoundCounters(t *testing.T) {
	tr := New()
	c := diag.NewCollector()

	tr.Process(champEvent(1, "A A", "B B", "165"), unmatched(), unmatched(), c)
	tr.Process(champEvent(2, "A A", "C C", "165"), unmatched(), unmatched(), c)
	tr.Process(consEvent(3, "B B", "D D", "165", match.WinDecision), unmatched(), unmatched(), c)
	tr.Process(champEvent(1, "E E", "F F", "174"), unmatched(), unmatched(), c)

	if got := tr.ChampRound("165"); got != 2 {
		t.Errorf("ChampRound(165) = %d, want 2", got)
	}
	if got := tr.ConsRound("165"); got != 3 {
		t.Errorf("ConsRound(165) = %d, want 3", got)
	}
	if got := tr.ChampRound("174"); got != 1 {
		t.Errorf("ChampRound(174) = %d, want 1", got)
	}
	if got := tr.ChampRound("285"); got != 0 {
		t.Errorf("ChampRound(285) = %d, want 0", got)
	}
}

func TestRoundLabelsOrdering(t *testing.T) {
	tr := New()
	c := diag.NewCollector()

	tr.Process(consEvent(1, "A A", "B B", "184", match.WinDecision), unmatched(), unmatched(), c)
	tr.Process(placementEvent(3, "C C", "D D", "184", match.WinDecision), unmatched(), unmatched(), c)
	tr.Process(champEvent(2, "E E", "F F", "184"), unmatched(), unmatched(), c)
	tr.Process(champEvent(1, "G G", "H H", "184"), unmatched(), unmatched(), c)

	want := []string{"Champ R1", "Champ R2", "Cons R1", "3rd Place"}
	got := tr.RoundLabels()
	if len(got) != len(want) {
		t.Fatalf("RoundLabels() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RoundLabels()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPlaced(t *testing.T) {
	tr := New()
	c := diag.NewCollector()

	tr.Process(placementEvent(3, "A A", "B B", "285", match.WinDecision), unmatched(), unmatched(), c)
	tr.Process(placementEvent(1, "C C", "D D", "125", match.WinDecision), unmatched(), unmatched(), c)

	placed := tr.Placed()
	if len(placed) != 4 {
		t.Fatalf("expected 4 placed records, got %d", len(placed))
	}
	// 125-class placers come before 285, winners before losers
	if placed[0].Name != "C C" || placed[0].Placement != 1 {
		t.Errorf("unexpected first placer: %s (%d)", placed[0].Name, placed[0].Placement)
	}
	if placed[3].Name != "B B" || placed[3].Weight != "285" {
		t.Errorf("unexpected last placer: %s at %s", placed[3].Name, placed[3].Weight)
	}
}

func TestSameNameDifferentWeightsSeparateRecords(t *testing.T) {
	tr := New()
	c := diag.NewCollector()

	tr.Process(champEvent(1, "John Smith", "A A", "125"), unmatched(), unmatched(), c)
	tr.Process(champEvent(1, "John Smith", "B B", "133"), unmatched(), unmatched(), c)

	var count int
	for _, rec := range tr.Records() {
		if rec.Name == "John Smith" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected separate records per weight class, got %d", count)
	}
}
