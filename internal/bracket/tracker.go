package bracket

import (
	"sort"
	"strconv"
	"strings"

	"github.com/kdfrederick/matdraft/internal/diag"
	"github.com/kdfrederick/matdraft/internal/match"
	"github.com/kdfrederick/matdraft/internal/roster"
)

// Record accumulates one competitor's tournament results
type Record struct {
	Name   string `json:"name"`
	School string `json:"school"`
	Weight string `json:"weight"`
	Seed   int    `json:"seed,omitempty"`

	// Owner attribution; Owner is empty unless Status is resolved
	Owner  string        `json:"owner,omitempty"`
	Status roster.Status `json:"status"`

	Matches []*match.Event `json:"matches"`

	ChampWins int `json:"champ_wins"`
	ConsWins  int `json:"cons_wins"`
	Losses    int `json:"losses"`

	Advancement     float64 `json:"advancement_points"`
	Bonus           float64 `json:"bonus_points"`
	PlacementPoints float64 `json:"placement_points"`
	Total           float64 `json:"total_points"`

	// Final placement, 1-8; 0 until a placement match decides it
	Placement int `json:"placement,omitempty"`

	// Grid maps round label ("Champ R1", "3rd Place") to outcome code
	Grid map[string]string `json:"grid"`
}

// Owned reports whether the competitor was attributed to a roster owner
func (r *Record) Owned() bool {
	return r.Status == roster.StatusResolved && r.Owner != ""
}

// weightState is the per-weight-class bracket traversal state
type weightState struct {
	champRound int
	consRound  int
	placed     bool // a placement match has been seen
}

// Tracker builds competitor records from a stream of match events
type Tracker struct {
	weights map[string]*weightState
	records map[string]*Record
	order   []string // record keys in first-seen order
	rounds  map[string]bool
}

// New creates an empty Tracker
func New() *Tracker {
	return &Tracker{
		weights: make(map[string]*weightState),
		records: make(map[string]*Record),
		rounds:  make(map[string]bool),
	}
}

// Process applies one match event. winnerRes and loserRes are the roster
// resolutions for the two competitors; unresolved competitors are still
// tracked, just without an owner. Events for a weight class must arrive in
// transcript order.
func (t *Tracker) Process(evt *match.Event, winnerRes, loserRes roster.Result, c *diag.Collector) {
	state := t.weightState(evt.Weight)

	winner := t.record(evt.WinnerName, evt.WinnerSchool, evt.Weight, winnerRes, c)
	loser := t.record(evt.LoserName, evt.LoserSchool, evt.Weight, loserRes, c)

	if evt.WinnerSeed > 0 && winner.Seed == 0 {
		winner.Seed = evt.WinnerSeed
	}

	winner.Matches = append(winner.Matches, evt)
	loser.Matches = append(loser.Matches, evt)
	t.rounds[evt.FullRound] = true

	winner.Grid[evt.FullRound] = "W"
	loser.Grid[evt.FullRound] = "L"
	loser.Losses++

	if evt.IsPlacement() {
		state.placed = true
		winner.Placement = evt.WinnerPlacement
		loser.Placement = evt.LoserPlacement

		// Placement matches pay bonus only, and only to the winner;
		// the loser takes home the rank.
		winner.PlacementPoints += evt.BonusPoints
		winner.Total += evt.TotalPoints
		return
	}

	switch evt.Bracket {
	case match.BracketChampionship:
		winner.ChampWins++
		if evt.RoundNum > state.champRound {
			state.champRound = evt.RoundNum
		}
	case match.BracketConsolation:
		winner.ConsWins++
		if evt.RoundNum > state.consRound {
			state.consRound = evt.RoundNum
		}
	}

	winner.Advancement += evt.AdvancementPoints
	winner.Bonus += evt.BonusPoints
	winner.Total += evt.TotalPoints
}

// record finds or creates the competitor record for (name, weight)
func (t *Tracker) record(name, school, weight string, res roster.Result, c *diag.Collector) *Record {
	key := roster.NormalizeName(name) + "|" + weight
	if rec, ok := t.records[key]; ok {
		// A later event may resolve a competitor the first event could not
		// (seed annotations appear irregularly in transcripts)
		if rec.Status != roster.StatusResolved && res.Status == roster.StatusResolved {
			rec.Status = roster.StatusResolved
			rec.Owner = res.Entry.Owner
			if rec.Seed == 0 {
				rec.Seed = res.Entry.Seed
			}
		}
		return rec
	}

	rec := &Record{
		Name:    name,
		School:  school,
		Weight:  weight,
		Status:  res.Status,
		Matches: make([]*match.Event, 0, 4),
		Grid:    make(map[string]string),
	}

	switch res.Status {
	case roster.StatusResolved:
		rec.Owner = res.Entry.Owner
		rec.Seed = res.Entry.Seed
	case roster.StatusAmbiguous:
		owners := make([]string, 0, len(res.Candidates))
		for _, cand := range res.Candidates {
			owners = append(owners, cand.Owner)
		}
		c.Addf(diag.KindAmbiguousWrestler, weight, "",
			"%q at %s matches rosters of %s", name, weight, strings.Join(owners, ", "))
	case roster.StatusUnmatched:
		c.Addf(diag.KindUnmatchedWrestler, weight, "", "%q at %s is not on any roster", name, weight)
	}

	t.records[key] = rec
	t.order = append(t.order, key)
	return rec
}

func (t *Tracker) weightState(weight string) *weightState {
	state, ok := t.weights[weight]
	if !ok {
		state = &weightState{}
		t.weights[weight] = state
	}
	return state
}

// Merge absorbs another tracker's state. Intended for combining per-weight
// trackers after fan-out; the two trackers must not share a weight class.
func (t *Tracker) Merge(other *Tracker) {
	if other == nil {
		return
	}
	for weight, state := range other.weights {
		t.weights[weight] = state
	}
	for _, key := range other.order {
		if _, exists := t.records[key]; !exists {
			t.order = append(t.order, key)
		}
		t.records[key] = other.records[key]
	}
	for label := range other.rounds {
		t.rounds[label] = true
	}
}

// Records returns all competitor records in first-seen transcript order
func (t *Tracker) Records() []*Record {
	records := make([]*Record, 0, len(t.order))
	for _, key := range t.order {
		records = append(records, t.records[key])
	}
	return records
}

// Placed returns the records that earned a final placement, ordered by
// weight class then placement
func (t *Tracker) Placed() []*Record {
	var placed []*Record
	for _, rec := range t.Records() {
		if rec.Placement > 0 {
			placed = append(placed, rec)
		}
	}
	sort.SliceStable(placed, func(i, j int) bool {
		if placed[i].Weight != placed[j].Weight {
			return WeightLess(placed[i].Weight, placed[j].Weight)
		}
		return placed[i].Placement < placed[j].Placement
	})
	return placed
}

// RoundLabels returns every grid column seen, in bracket order:
// championship rounds, consolation rounds, then placement matches.
func (t *Tracker) RoundLabels() []string {
	labels := make([]string, 0, len(t.rounds))
	for label := range t.rounds {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		gi, gj := roundGroup(labels[i]), roundGroup(labels[j])
		if gi != gj {
			return gi < gj
		}
		return roundOrdinal(labels[i]) < roundOrdinal(labels[j])
	})
	return labels
}

// ChampRound returns the highest championship round seen for a weight class
func (t *Tracker) ChampRound(weight string) int {
	if state, ok := t.weights[weight]; ok {
		return state.champRound
	}
	return 0
}

// ConsRound returns the highest consolation round seen for a weight class
func (t *Tracker) ConsRound(weight string) int {
	if state, ok := t.weights[weight]; ok {
		return state.consRound
	}
	return 0
}

func roundGroup(label string) int {
	switch {
	case strings.HasPrefix(label, string(match.BracketChampionship)):
		return 0
	case strings.HasPrefix(label, string(match.BracketConsolation)):
		return 1
	default:
		return 2
	}
}

// roundOrdinal extracts the leading number from "Champ R3" or "3rd Place"
func roundOrdinal(label string) int {
	if i := strings.Index(label, " R"); i >= 0 {
		if n, err := strconv.Atoi(label[i+2:]); err == nil {
			return n
		}
	}
	digits := label
	for i, r := range label {
		if r < '0' || r > '9' {
			digits = label[:i]
			break
		}
	}
	if n, err := strconv.Atoi(digits); err == nil {
		return n
	}
	return 0
}

// WeightLess orders weight classes numerically with non-numeric classes last
func WeightLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
