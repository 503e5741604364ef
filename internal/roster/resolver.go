package roster

import (
	"fmt"
	"strings"

	"github.com/kdfrederick/matdraft/internal/diag"
)

// Status tags the outcome of resolving a competitor name
type Status string

const (
	StatusResolved  Status = "resolved"
	StatusAmbiguous Status = "ambiguous"
	StatusUnmatched Status = "unmatched"
)

// Result is the tagged outcome of a resolution attempt. Entry is set only
// for StatusResolved; Candidates only for StatusAmbiguous.
type Result struct {
	Status     Status
	Entry      Entry
	Candidates []Entry
}

// Resolver attributes parsed competitor names to roster owners
type Resolver struct {
	byName       map[string][]Entry
	byWeightSeed map[string][]Entry
	problems     []Entry
}

// NewResolver builds the lookup tables from a roster. Names drafted by more
// than one owner and names listed under different weight classes are recorded
// as problem entries on the collector; they stay in the lookup tables so
// seed-based disambiguation can still attribute them. An exact repeat of a
// row (same owner, name, and weight) is collapsed to one entry with a
// problem diagnostic.
func NewResolver(r *Roster, c *diag.Collector) *Resolver {
	rv := &Resolver{
		byName:       make(map[string][]Entry),
		byWeightSeed: make(map[string][]Entry),
	}

	for _, entry := range r.Entries() {
		key := NormalizeName(entry.Name)
		existing := rv.byName[key]

		duplicate := false
		for _, prev := range existing {
			switch {
			case prev.Owner != entry.Owner:
				rv.problems = append(rv.problems, entry)
				c.Addf(diag.KindProblemRoster, entry.Weight, "",
					"%q drafted by both %s and %s", entry.Name, prev.Owner, entry.Owner)
			case prev.Weight != entry.Weight:
				rv.problems = append(rv.problems, entry)
				c.Addf(diag.KindProblemRoster, entry.Weight, "",
					"%q listed at both %s and %s", entry.Name, prev.Weight, entry.Weight)
			default:
				// Exact repeat of an earlier row for the same owner and
				// weight: collapse it so the wrestler still resolves.
				duplicate = true
				rv.problems = append(rv.problems, entry)
				c.Addf(diag.KindProblemRoster, entry.Weight, "",
					"%q listed twice by %s at %s", entry.Name, entry.Owner, entry.Weight)
			}
		}
		if duplicate {
			continue
		}

		rv.byName[key] = append(existing, entry)
		if entry.Seed > 0 {
			wsKey := weightSeedKey(entry.Weight, entry.Seed)
			rv.byWeightSeed[wsKey] = append(rv.byWeightSeed[wsKey], entry)
		}
	}

	return rv
}

// Resolve attributes a competitor to a roster entry. The weight class always
// comes from the bracket section being parsed; seed is 0 when the transcript
// carried no seed annotation.
//
// Matching order: unique name match within the weight class wins; on a name
// collision the (weight, seed) index breaks the tie; otherwise the result is
// ambiguous or unmatched and the caller keeps the competitor as unowned.
func (rv *Resolver) Resolve(name, weight string, seed int) Result {
	candidates := rv.byName[NormalizeName(name)]

	// Only candidates drafted at the event's weight class are eligible; a
	// same-named entry at another weight must never take the credit. Lines
	// before any weight header carry an empty weight and match by name alone.
	if weight != "" {
		var inWeight []Entry
		for _, entry := range candidates {
			if entry.Weight == weight {
				inWeight = append(inWeight, entry)
			}
		}
		candidates = inWeight
	}

	switch len(candidates) {
	case 0:
		return Result{Status: StatusUnmatched}
	case 1:
		return Result{Status: StatusResolved, Entry: candidates[0]}
	}

	// Name collision: fall back to the (weight, seed) index
	if seed > 0 {
		bySeed := rv.byWeightSeed[weightSeedKey(weight, seed)]
		if len(bySeed) == 1 {
			return Result{Status: StatusResolved, Entry: bySeed[0]}
		}
	}

	return Result{Status: StatusAmbiguous, Candidates: candidates}
}

// Problems returns the roster entries flagged during table construction
func (rv *Resolver) Problems() []Entry {
	return rv.problems
}

// NormalizeName canonicalizes a wrestler name for lookup: lowercase, periods
// stripped, interior whitespace collapsed.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, ".", "")
	return strings.Join(strings.Fields(name), " ")
}

func weightSeedKey(weight string, seed int) string {
	return fmt.Sprintf("%s|%d", weight, seed)
}
