// Package parse turns raw tournament transcript lines into match events.
//
// Match lines come in two grammars: regular bracket rounds
// ("Champ. Round 1 - Name (School) won by decision over Name (School)") and
// placement matches ("3rd Place Match - ..."). The parser tries an ordered
// chain of patterns per grammar: placement first, then the primary regular
// pattern, then a permissive fallback that tolerates mangled win phrases.
// Lines matching nothing are skipped with a diagnostic; parsing never aborts
// a run.
package parse
