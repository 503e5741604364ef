package match

import "strings"

// WinType is the fixed category a win phrase classifies into
type WinType string

const (
	WinFall          WinType = "Fall"
	WinTechFall      WinType = "TF"
	WinMajorDecision WinType = "MD"
	WinDecision      WinType = "Dec"
	WinDefaultOrDQ   WinType = "Def/DQ"
	WinSuddenVictory WinType = "SV"
	WinTieBreaker    WinType = "TB"
	WinOther         WinType = "Other"
)

// BonusPoints returns the bonus-point value awarded for this win type,
// independent of bracket.
func (w WinType) BonusPoints() float64 {
	switch w {
	case WinFall, WinDefaultOrDQ:
		return 2.0
	case WinTechFall:
		return 1.5
	case WinMajorDecision:
		return 1.0
	default:
		return 0
	}
}

// Noteworthy reports whether a detection of this win type should be surfaced
// for manual review. Sudden-victory and tie-breaker results historically show
// up in irregular transcript formats.
func (w WinType) Noteworthy() bool {
	return w == WinSuddenVictory || w == WinTieBreaker
}

// dqPhrases are all phrase fragments scored as a default/DQ win
var dqPhrases = []string{"default", "forfeit", "disqualification", "misconduct"}

// ClassifyWinType maps a free-text win phrase to a WinType. The phrase is the
// text captured between "won by/in" and "over"; line is the full match line,
// consulted only when the phrase alone is inconclusive (overtime results are
// sometimes written as bare "(SV-1 3-1)" style annotations instead of words).
// Checks run in priority order; the first match wins.
func ClassifyWinType(phrase, line string) WinType {
	phrase = strings.ToLower(strings.TrimSpace(phrase))

	switch {
	case strings.Contains(phrase, "tech fall"):
		return WinTechFall
	case strings.Contains(phrase, "major decision"):
		return WinMajorDecision
	case strings.Contains(phrase, "fall") || strings.Contains(phrase, "pin"):
		return WinFall
	case containsAny(phrase, dqPhrases):
		return WinDefaultOrDQ
	case strings.Contains(phrase, "sudden victory"):
		return WinSuddenVictory
	case strings.Contains(phrase, "tie breaker"):
		return WinTieBreaker
	case strings.Contains(phrase, "decision"):
		return WinDecision
	}

	// Phrase was inconclusive; re-scan the whole line for overtime markers
	switch {
	case strings.Contains(line, "sudden victory"),
		strings.Contains(line, " SV-1 "),
		strings.Contains(line, " SV-2 "),
		strings.Contains(line, "(SV-1"):
		return WinSuddenVictory
	case strings.Contains(line, "tie breaker"),
		strings.Contains(line, " TB-1 "),
		strings.Contains(line, " TB-2 "),
		strings.Contains(line, "(TB-1"):
		return WinTieBreaker
	}

	return WinOther
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
