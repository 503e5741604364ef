// Package match defines the core match event model for tournament transcripts.
//
// The match package represents a single bracket match as an immutable Event with
// winner/loser attribution, bracket and round identification, and the three point
// components (advancement, bonus, total) fixed by NCAA fantasy scoring rules. It
// also provides the win-type classifier that maps free-text win phrases such as
// "fall", "major decision", or "tech fall 18-2" to a fixed category and bonus value.
package match
