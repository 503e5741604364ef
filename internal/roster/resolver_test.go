package roster

import (
	"testing"

	"github.com/kdfrederick/matdraft/internal/diag"
)

func rosterFromEntries(entries []Entry) *Roster {
	r := &Roster{byOwner: make(map[string][]Entry)}
	for _, e := range entries {
		r.byOwner[e.Owner] = append(r.byOwner[e.Owner], e)
	}
	return r
}

func TestResolveUnique(t *testing.T) {
	c := diag.NewCollector()
	rv := NewResolver(rosterFromEntries([]Entry{
		{Owner: "Team Alpha", Name: "John Smith", Weight: "125", Seed: 1},
		{Owner: "Team Beta", Name: "Mike Jones", Weight: "133", Seed: 2},
	}), c)

	res := rv.Resolve("John Smith", "125", 0)
	if res.Status != StatusResolved {
		t.Fatalf("expected resolved, got %s", res.Status)
	}
	if res.Entry.Owner != "Team Alpha" {
		t.Errorf("expected Team Alpha, got %s", res.Entry.Owner)
	}
	if c.Len() != 0 {
		t.Errorf("clean roster should record no problems, got %d", c.Len())
	}
}

func TestResolveNormalizedName(t *testing.T) {
	c := diag.NewCollector()
	rv := NewResolver(rosterFromEntries([]Entry{
		{Owner: "Team Alpha", Name: "A.J. Ferrari", Weight: "197"},
	}), c)

	res := rv.Resolve("AJ  Ferrari", "197", 0)
	if res.Status != StatusResolved {
		t.Fatalf("expected normalized match, got %s", res.Status)
	}
}

func TestResolveUnmatched(t *testing.T) {
	c := diag.NewCollector()
	rv := NewResolver(rosterFromEntries([]Entry{
		{Owner: "Team Alpha", Name: "John Smith", Weight: "125"},
	}), c)

	res := rv.Resolve("Nobody Drafted", "125", 0)
	if res.Status != StatusUnmatched {
		t.Fatalf("expected unmatched, got %s", res.Status)
	}
}

func TestResolveWrongWeightStaysUnmatched(t *testing.T) {
	c := diag.NewCollector()
	rv := NewResolver(rosterFromEntries([]Entry{
		{Owner: "Team Alpha", Name: "John Smith", Weight: "125", Seed: 1},
	}), c)

	// An undrafted 174 wrestler sharing a drafted name must not credit the
	// owner's 125 pick
	res := rv.Resolve("John Smith", "174", 0)
	if res.Status != StatusUnmatched {
		t.Fatalf("expected unmatched at wrong weight, got %s (owner %s)", res.Status, res.Entry.Owner)
	}
}

func TestResolveEmptyWeightMatchesByName(t *testing.T) {
	c := diag.NewCollector()
	rv := NewResolver(rosterFromEntries([]Entry{
		{Owner: "Team Alpha", Name: "John Smith", Weight: "125"},
	}), c)

	// Lines before any weight header carry no weight and match by name alone
	res := rv.Resolve("John Smith", "", 0)
	if res.Status != StatusResolved || res.Entry.Owner != "Team Alpha" {
		t.Fatalf("expected name-only match, got %s/%+v", res.Status, res.Entry)
	}
}

func TestResolveSameOwnerDuplicateCollapsed(t *testing.T) {
	c := diag.NewCollector()
	rv := NewResolver(rosterFromEntries([]Entry{
		{Owner: "Team Alpha", Name: "John Smith", Weight: "125"},
		{Owner: "Team Alpha", Name: "John Smith", Weight: "125"},
	}), c)

	if got := c.CountByKind()[diag.KindProblemRoster]; got != 1 {
		t.Errorf("expected 1 problem-roster diagnostic, got %d", got)
	}

	// The repeated row collapses; the owner keeps the wrestler's points
	res := rv.Resolve("John Smith", "125", 0)
	if res.Status != StatusResolved || res.Entry.Owner != "Team Alpha" {
		t.Fatalf("expected Team Alpha after collapse, got %s/%+v", res.Status, res.Entry)
	}
}

func TestResolveCrossOwnerDuplicateBySeed(t *testing.T) {
	c := diag.NewCollector()
	rv := NewResolver(rosterFromEntries([]Entry{
		{Owner: "Team Alpha", Name: "John Smith", Weight: "125", Seed: 3},
		{Owner: "Team Beta", Name: "John Smith", Weight: "133", Seed: 5},
	}), c)

	// Both weights carry the name; cross-weight duplicate is a problem entry
	if got := c.CountByKind()[diag.KindProblemRoster]; got != 1 {
		t.Errorf("expected 1 problem-roster diagnostic, got %d", got)
	}

	// Weight filter isolates the 125 entry
	res := rv.Resolve("John Smith", "125", 0)
	if res.Status != StatusResolved || res.Entry.Owner != "Team Alpha" {
		t.Fatalf("expected Team Alpha at 125, got %s/%+v", res.Status, res.Entry)
	}
}

func TestResolveSameWeightCollisionStaysAmbiguous(t *testing.T) {
	c := diag.NewCollector()
	rv := NewResolver(rosterFromEntries([]Entry{
		{Owner: "Team Alpha", Name: "John Smith", Weight: "125"},
		{Owner: "Team Beta", Name: "John Smith", Weight: "125"},
	}), c)

	// No seed to break the tie: stays ambiguous, never guessed
	res := rv.Resolve("John Smith", "125", 0)
	if res.Status != StatusAmbiguous {
		t.Fatalf("expected ambiguous, got %s", res.Status)
	}
	if len(res.Candidates) != 2 {
		t.Errorf("expected 2 candidates, got %d", len(res.Candidates))
	}
}

func TestResolveSameWeightCollisionSeedTieBreak(t *testing.T) {
	c := diag.NewCollector()
	rv := NewResolver(rosterFromEntries([]Entry{
		{Owner: "Team Alpha", Name: "John Smith", Weight: "125", Seed: 3},
		{Owner: "Team Beta", Name: "John Smith", Weight: "125", Seed: 7},
	}), c)

	res := rv.Resolve("John Smith", "125", 7)
	if res.Status != StatusResolved {
		t.Fatalf("expected seed tie-break to resolve, got %s", res.Status)
	}
	if res.Entry.Owner != "Team Beta" {
		t.Errorf("expected Team Beta (seed 7), got %s", res.Entry.Owner)
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"John Smith", "john smith"},
		{"  John   Smith  ", "john smith"},
		{"A.J. Ferrari", "aj ferrari"},
		{"JOHN SMITH", "john smith"},
	}

	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
