// Package storage persists a JSON snapshot of each run's team standings and
// placements, and diffs the current run against the previous snapshot.
//
// Tournament transcripts grow between refreshes; the diff answers "what
// changed since I last ran this" with per-team point deltas and newly
// decided placements, without the core pipeline keeping any history itself.
package storage
