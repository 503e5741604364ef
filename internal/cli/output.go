package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kdfrederick/matdraft/internal/diag"
	"github.com/kdfrederick/matdraft/internal/pipeline"
	"github.com/kdfrederick/matdraft/internal/report"
	"github.com/kdfrederick/matdraft/internal/storage"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// jsonOutput is the envelope for --format json
type jsonOutput struct {
	*pipeline.Result
	Diff        *storage.DiffResult `json:"diff,omitempty"`
	Diagnostics []diag.Entry        `json:"diagnostics"`
}

// WriteOutput writes the run result in the requested format
func WriteOutput(w io.Writer, result *pipeline.Result, diff *storage.DiffResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result, diff)
	case FormatText:
		return writeText(w, result, diff)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeJSON(w io.Writer, result *pipeline.Result, diff *storage.DiffResult) error {
	out := jsonOutput{
		Result:      result,
		Diff:        diff,
		Diagnostics: result.Diagnostics.Entries(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}

func writeText(w io.Writer, result *pipeline.Result, diff *storage.DiffResult) error {
	if err := report.WriteSummary(w, result); err != nil {
		return err
	}
	if diff != nil {
		writeDiff(w, diff)
	}
	return nil
}

// writeDiff summarizes movement since the previous run
func writeDiff(w io.Writer, diff *storage.DiffResult) {
	if !diff.Changed() {
		fmt.Fprintln(w, "\nNo changes since previous run.")
		return
	}

	fmt.Fprintln(w, "\nSINCE PREVIOUS RUN")
	fmt.Fprintln(w, strings.Repeat("-", 62))
	for _, delta := range diff.TeamDeltas {
		if delta.Delta == 0 {
			continue
		}
		fmt.Fprintf(w, "  %-20s %+.1f (%.1f -> %.1f)\n",
			delta.Owner, delta.Delta, delta.Previous, delta.Current)
	}
	for _, rec := range diff.NewlyPlaced {
		fmt.Fprintf(w, "  %s (%s) placed %d at %s\n", rec.Name, rec.School, rec.Placement, rec.Weight)
	}
}

// writeWrestlerDetail dumps everything tracked for one wrestler, matched
// case-insensitively by name. Used by --debug-wrestler.
func writeWrestlerDetail(w io.Writer, result *pipeline.Result, name string) error {
	found := false
	for _, rec := range result.Competitors {
		if !strings.EqualFold(rec.Name, name) {
			continue
		}
		found = true

		fmt.Fprintf(w, "%s (%s) at %s\n", rec.Name, rec.School, rec.Weight)
		fmt.Fprintln(w, strings.Repeat("-", 62))
		fmt.Fprintf(w, "  Owner:       %s\n", ownerLabel(rec.Owner))
		fmt.Fprintf(w, "  Resolution:  %s\n", rec.Status)
		if rec.Seed > 0 {
			fmt.Fprintf(w, "  Seed:        #%d\n", rec.Seed)
		}
		fmt.Fprintf(w, "  Record:      %d-%d (champ %d, cons %d)\n",
			rec.ChampWins+rec.ConsWins, rec.Losses, rec.ChampWins, rec.ConsWins)
		fmt.Fprintf(w, "  Points:      %.1f total (adv %.1f, bonus %.1f, place %.1f)\n",
			rec.Total, rec.Advancement, rec.Bonus, rec.PlacementPoints)
		if rec.Placement > 0 {
			fmt.Fprintf(w, "  Placement:   %d\n", rec.Placement)
		}

		fmt.Fprintln(w, "\n  Matches:")
		for _, evt := range rec.Matches {
			code := "L"
			if strings.EqualFold(evt.WinnerName, rec.Name) {
				code = "W"
			}
			fmt.Fprintf(w, "    %s %-10s %s (%s) over %s (%s) by %s [%s]\n",
				code, evt.FullRound, evt.WinnerName, evt.WinnerSchool,
				evt.LoserName, evt.LoserSchool, evt.WinPhrase, evt.WinType)
			fmt.Fprintf(w, "      raw: %s\n", evt.Raw)
		}
	}

	if !found {
		return fmt.Errorf("no competitor named %q in the results", name)
	}
	return nil
}

func ownerLabel(owner string) string {
	if owner == "" {
		return "(undrafted)"
	}
	return owner
}
