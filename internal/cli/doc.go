// Package cli implements the command-line interface for matdraft.
//
// The cli package provides the Cobra-based CLI that loads the draft roster
// and tournament transcript, runs the scoring pipeline, and writes reports,
// CSV exports, and the run snapshot. It coordinates the config, roster,
// pipeline, report, export, and storage packages; the core never touches
// files or flags itself.
package cli
