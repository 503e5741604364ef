package match

import "fmt"

// Bracket identifies which bracket a match belongs to
type Bracket string

const (
	BracketChampionship Bracket = "Champ"
	BracketConsolation  Bracket = "Cons"
	BracketPlacement    Bracket = "Place"
)

// AdvancementPoints returns the points awarded for winning a round in this
// bracket: 1.0 in championship, 0.5 in consolation, 0 for placement matches.
func (b Bracket) AdvancementPoints() float64 {
	switch b {
	case BracketChampionship:
		return 1.0
	case BracketConsolation:
		return 0.5
	default:
		return 0
	}
}

// Event represents a single parsed match result
type Event struct {
	Bracket      Bracket `json:"bracket"`
	RoundNum     int     `json:"round_num,omitempty"` // 0 for placement matches
	FullRound    string  `json:"full_round"`          // e.g. "Champ R1" or "1st Place"
	Weight       string  `json:"weight"`
	WinnerName   string  `json:"winner_name"`
	WinnerSchool string  `json:"winner_school"`
	WinnerSeed   int     `json:"winner_seed,omitempty"` // 0 when no seed annotation present
	LoserName    string  `json:"loser_name"`
	LoserSchool  string  `json:"loser_school"`
	WinType      WinType `json:"win_type"`
	WinPhrase    string  `json:"win_phrase"` // raw phrase between "won by/in" and "over"

	AdvancementPoints float64 `json:"advancement_points"`
	BonusPoints       float64 `json:"bonus_points"`
	TotalPoints       float64 `json:"total_points"`

	// Placement results; 0 means not a placement match or undeterminable
	WinnerPlacement int `json:"winner_placement,omitempty"`
	LoserPlacement  int `json:"loser_placement,omitempty"`

	Raw string `json:"raw"`
}

// IsPlacement reports whether the event decided a final placement
func (e *Event) IsPlacement() bool {
	return e.Bracket == BracketPlacement
}

// RoundLabel builds the grid column label for a bracket round, e.g. "Cons R3"
func RoundLabel(b Bracket, round int) string {
	return fmt.Sprintf("%s R%d", b, round)
}
