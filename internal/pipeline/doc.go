// Package pipeline composes the tournament processing stages: transcript
// lines are parsed into match events, competitors are resolved against the
// draft roster, bracket state is tracked per weight class, and the finished
// records are scored into team summaries.
//
// The run is a pure batch transformation. Weight-class sections are
// independent and can be processed concurrently; diagnostics from every stage
// are merged into one collector in section order so identical input always
// produces identical output.
package pipeline
