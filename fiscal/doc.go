// Package fiscal derives the ten-character name-and-date prefix of a personal
// taxpayer code from a person's names and birth date.
//
// The pipeline is fixed:
//
//	Parse            uppercase, fold diacritics, drop given-name fillers
//	ReducePrecision  CH -> C, LL -> L at the head of each name
//	StripArticles    remove particles (DE, DEL, LA, ...) from the paternal surname
//	SelectRule       surnames of one or two letters use RuleComposite
//	Compose          four letters from the names
//	FilterWord       blocklisted name codes become XXXX
//	EncodeDate       YYMMDD
//
// Example:
//
//	code, err := fiscal.Generate("Alvaro", "de la O", "Lozano", fiscal.DateString("01-12-1940"))
//	// code.String() == "OLAL401201"
//
// A Generator holds only read-only collaborators (tables, clock, logger) and
// is safe for concurrent use.
package fiscal
