package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/kdfrederick/matdraft/internal/diag"
	"github.com/kdfrederick/matdraft/internal/match"
)

var (
	// Placement grammar: "<ordinal> Place Match - Winner (School) ... won by|in <phrase> over Loser (School) ..."
	placementHint    = regexp.MustCompile(`(1st|2nd|3rd|4th|5th|6th|7th|8th) Place Match`)
	placementPattern = regexp.MustCompile(`(1st|2nd|3rd|4th|5th|6th|7th|8th) Place Match - (.*?) \((.*?)\)(.*?)won (by|in) (.*?) over (.*?) \((.*?)\)(.*)`)

	// Regular grammar, primary pattern with explicit win-phrase capture
	regularPattern = regexp.MustCompile(`(Champ|Cons)\. Round (\d+) - (.*?) \((.*?)\)(.*?)won (by|in) (.*?) over (.*?) \((.*?)\)(.*)`)

	// Fallback pattern: tolerates a mangled win phrase between "won" and "over"
	fallbackPattern = regexp.MustCompile(`(Champ|Cons)\. Round (\d+) - (.*?) \((.*?)\)(.*?)won.* over (.*?) \((.*?)\)(.*)`)

	// Seed annotation after the winner's record, e.g. "(Iowa) 24-1 (#3)"
	seedPattern = regexp.MustCompile(`\(.*?\)\s+(\d+)-\d+\s+(?:\(#(\d+)\))?`)
)

// placementPairs maps a decided placement match to the (winner, loser) ranks
// it fixes. Even ordinals never head a placement match in well-formed
// transcripts, so anything absent here is flagged rather than guessed.
var placementPairs = map[string][2]int{
	"1st": {1, 2},
	"3rd": {3, 4},
	"5th": {5, 6},
	"7th": {7, 8},
}

// Parser extracts match events from transcript lines
type Parser struct {
	watched []string // lowercased wrestler names to flag on sight
}

// New creates a Parser. Watched names are surfaced as diagnostics whenever
// they appear in a line, parsed or not.
func New(watched []string) *Parser {
	p := &Parser{watched: make([]string, 0, len(watched))}
	for _, name := range watched {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			p.watched = append(p.watched, name)
		}
	}
	return p
}

// ParseLine parses one transcript line into an Event. The weight is the
// weight class currently being processed. A false return means the line
// matched neither grammar; the failure is recorded on the collector and the
// caller should move on.
func (p *Parser) ParseLine(line, weight string, c *diag.Collector) (*match.Event, bool) {
	p.flagWatched(line, weight, c)

	if placementHint.MatchString(line) {
		return p.parsePlacement(line, weight, c)
	}
	return p.parseRegular(line, weight, c)
}

// parsePlacement handles "<ordinal> Place Match" lines
func (p *Parser) parsePlacement(line, weight string, c *diag.Collector) (*match.Event, bool) {
	m := placementPattern.FindStringSubmatch(line)
	if m == nil {
		c.Addf(diag.KindUnparsedLine, weight, line, "placement line matched no pattern")
		logrus.WithFields(logrus.Fields{"weight": weight, "line": line}).Debug("unparsed placement line")
		return nil, false
	}

	ordinal := m[1]
	phrase := strings.TrimSpace(m[6])

	evt := &match.Event{
		Bracket:      match.BracketPlacement,
		FullRound:    ordinal + " Place",
		Weight:       weight,
		WinnerName:   strings.TrimSpace(m[2]),
		WinnerSchool: strings.TrimSpace(m[3]),
		LoserName:    strings.TrimSpace(m[7]),
		LoserSchool:  strings.TrimSpace(m[8]),
		WinPhrase:    phrase,
		Raw:          line,
	}

	if pair, ok := placementPairs[ordinal]; ok {
		evt.WinnerPlacement = pair[0]
		evt.LoserPlacement = pair[1]
	} else {
		c.Addf(diag.KindUnknownPlacement, weight, line,
			"%s place match has no winner/loser rank mapping", ordinal)
	}

	p.applyWinType(evt, phrase, line, c)

	// Placement matches never award advancement points
	evt.AdvancementPoints = 0
	evt.TotalPoints = evt.BonusPoints
	return evt, true
}

// parseRegular handles "<Champ|Cons>. Round <n>" lines, trying the primary
// pattern first and the permissive fallback second.
func (p *Parser) parseRegular(line, weight string, c *diag.Collector) (*match.Event, bool) {
	var (
		bracket, roundStr            string
		winner, winnerSchool, phrase string
		loser, loserSchool           string
	)

	if m := regularPattern.FindStringSubmatch(line); m != nil {
		bracket, roundStr = m[1], m[2]
		winner, winnerSchool = strings.TrimSpace(m[3]), strings.TrimSpace(m[4])
		phrase = strings.TrimSpace(m[7])
		loser, loserSchool = strings.TrimSpace(m[8]), strings.TrimSpace(m[9])
	} else if m := fallbackPattern.FindStringSubmatch(line); m != nil {
		bracket, roundStr = m[1], m[2]
		winner, winnerSchool = strings.TrimSpace(m[3]), strings.TrimSpace(m[4])
		phrase = "decision" // fallback drops the phrase capture
		loser, loserSchool = strings.TrimSpace(m[6]), strings.TrimSpace(m[7])

		c.Addf(diag.KindFallbackPattern, weight, line, "parsed with fallback pattern")
		logrus.WithFields(logrus.Fields{"weight": weight, "line": line}).Debug("fallback pattern used")
	} else {
		c.Addf(diag.KindUnparsedLine, weight, line, "line matched no pattern")
		logrus.WithFields(logrus.Fields{"weight": weight, "line": line}).Debug("unparsed line")
		return nil, false
	}

	round, err := strconv.Atoi(roundStr)
	if err != nil {
		// Unreachable given the \d+ capture, but never trust a regex
		c.Addf(diag.KindUnparsedLine, weight, line, "bad round number %q", roundStr)
		return nil, false
	}

	b := match.Bracket(bracket)
	evt := &match.Event{
		Bracket:      b,
		RoundNum:     round,
		FullRound:    match.RoundLabel(b, round),
		Weight:       weight,
		WinnerName:   winner,
		WinnerSchool: winnerSchool,
		LoserName:    loser,
		LoserSchool:  loserSchool,
		WinPhrase:    phrase,
		WinnerSeed:   extractSeed(line),
		Raw:          line,
	}

	p.applyWinType(evt, phrase, line, c)

	evt.AdvancementPoints = b.AdvancementPoints()
	evt.TotalPoints = evt.AdvancementPoints + evt.BonusPoints
	return evt, true
}

// applyWinType classifies the win phrase, applies the literal SV/TB marker
// override, and records noteworthy results.
func (p *Parser) applyWinType(evt *match.Event, phrase, line string, c *diag.Collector) {
	winType := match.ClassifyWinType(phrase, line)

	// Literal overtime markers win over whatever the phrase said; these
	// lines historically misclassify on phrase text alone.
	if strings.Contains(line, "(SV-1") {
		winType = match.WinSuddenVictory
	} else if strings.Contains(line, "(TB-1") {
		winType = match.WinTieBreaker
	}

	evt.WinType = winType
	evt.BonusPoints = winType.BonusPoints()

	if winType.Noteworthy() {
		c.Addf(diag.KindNoteworthyWin, evt.Weight, line, "%s result: %s over %s",
			winType, evt.WinnerName, evt.LoserName)
	}
}

// extractSeed pulls the winner's seed from a "(#n)" annotation next to the
// winner's record. Missing or malformed annotations return 0.
func extractSeed(line string) int {
	m := seedPattern.FindStringSubmatch(line)
	if m == nil || m[2] == "" {
		return 0
	}
	seed, err := strconv.Atoi(m[2])
	if err != nil {
		return 0
	}
	return seed
}

// flagWatched records a diagnostic for each watch-listed name in the line
func (p *Parser) flagWatched(line, weight string, c *diag.Collector) {
	if len(p.watched) == 0 {
		return
	}
	lower := strings.ToLower(line)
	for _, name := range p.watched {
		if strings.Contains(lower, name) {
			c.Addf(diag.KindWatchedWrestler, weight, line, "watched wrestler %q seen", name)
		}
	}
}
