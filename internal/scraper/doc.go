// Package scraper fetches tournament results pages and extracts the bracket
// transcript lines the pipeline knows how to parse.
//
// Results sites wrap the transcript in arbitrary markup; the scraper walks
// the page text and keeps only weight-class headers and lines matching the
// match grammars, reassembling them into the same plain-text form a local
// results file would hold.
package scraper
