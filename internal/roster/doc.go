// Package roster loads the fantasy draft roster and resolves parsed
// competitor names back to their owners.
//
// The roster is a CSV of (owner, wrestler, weight class, optional seed) rows.
// Resolution builds two lookup tables: a primary index on normalized wrestler
// name and a secondary index on (weight class, seed) for disambiguating
// duplicate names. Names drafted by more than one owner, or appearing with
// inconsistent weight classes, are kept as problem entries for manual review
// rather than merged or dropped.
package roster
