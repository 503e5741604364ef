package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// ErrNoEntries indicates the roster file contained a header but no rows
var ErrNoEntries = errors.New("roster contains no entries")

// Entry is one drafted wrestler
type Entry struct {
	Owner  string `json:"owner"`
	Name   string `json:"name"`
	Weight string `json:"weight"`
	Seed   int    `json:"seed,omitempty"` // 0 when undrafted without a seed
}

// Roster is the full draft, grouped by owner
type Roster struct {
	byOwner map[string][]Entry
}

// Load reads a draft roster CSV. The file must have a header row naming at
// least the owner, wrestler, and weight columns; a seed column is optional.
// Header matching is case-insensitive and tolerant of the common variants
// ("wrestler" vs "wrestler_name", "weight" vs "weight_class").
func Load(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening roster: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading roster csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoEntries
	}

	cols, err := mapColumns(records[0])
	if err != nil {
		return nil, err
	}

	r := &Roster{byOwner: make(map[string][]Entry)}
	for _, row := range records[1:] {
		entry, ok := cols.entryFromRow(row)
		if !ok {
			continue // blank or short row
		}
		r.byOwner[entry.Owner] = append(r.byOwner[entry.Owner], entry)
	}

	if r.Len() == 0 {
		return nil, ErrNoEntries
	}
	return r, nil
}

// columnMap locates the roster columns found in the header row
type columnMap struct {
	owner, name, weight int
	seed                int // -1 when absent
}

var headerAliases = map[string]string{
	"owner":         "owner",
	"team":          "owner",
	"wrestler":      "name",
	"wrestler_name": "name",
	"name":          "name",
	"weight":        "weight",
	"weight_class":  "weight",
	"seed":          "seed",
}

func mapColumns(header []string) (*columnMap, error) {
	cols := &columnMap{owner: -1, name: -1, weight: -1, seed: -1}
	for i, h := range header {
		switch headerAliases[strings.ToLower(strings.TrimSpace(h))] {
		case "owner":
			cols.owner = i
		case "name":
			cols.name = i
		case "weight":
			cols.weight = i
		case "seed":
			cols.seed = i
		}
	}

	var missing []string
	if cols.owner == -1 {
		missing = append(missing, "owner")
	}
	if cols.name == -1 {
		missing = append(missing, "wrestler")
	}
	if cols.weight == -1 {
		missing = append(missing, "weight")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("roster header missing required columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

func (c *columnMap) entryFromRow(row []string) (Entry, bool) {
	max := c.owner
	if c.name > max {
		max = c.name
	}
	if c.weight > max {
		max = c.weight
	}
	if len(row) <= max {
		return Entry{}, false
	}

	entry := Entry{
		Owner:  strings.TrimSpace(row[c.owner]),
		Name:   strings.TrimSpace(row[c.name]),
		Weight: strings.TrimSpace(row[c.weight]),
	}
	if entry.Owner == "" || entry.Name == "" {
		return Entry{}, false
	}

	if c.seed >= 0 && len(row) > c.seed {
		entry.Seed = parseSeed(row[c.seed])
	}
	return entry, true
}

// parseSeed accepts "3" or "#3"; anything else is no seed
func parseSeed(s string) int {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if s == "" {
		return 0
	}
	seed, err := strconv.Atoi(s)
	if err != nil || seed < 1 {
		return 0
	}
	return seed
}

// Owners returns owner names in sorted order
func (r *Roster) Owners() []string {
	owners := make([]string, 0, len(r.byOwner))
	for owner := range r.byOwner {
		owners = append(owners, owner)
	}
	sort.Strings(owners)
	return owners
}

// EntriesFor returns one owner's drafted wrestlers
func (r *Roster) EntriesFor(owner string) []Entry {
	return r.byOwner[owner]
}

// Entries returns every entry, ordered by owner then draft order
func (r *Roster) Entries() []Entry {
	var all []Entry
	for _, owner := range r.Owners() {
		all = append(all, r.byOwner[owner]...)
	}
	return all
}

// Len returns the total number of drafted wrestlers
func (r *Roster) Len() int {
	n := 0
	for _, entries := range r.byOwner {
		n += len(entries)
	}
	return n
}
