// Package diag defines the diagnostic model shared by the lexer, the parser
// and the driver.
//
// Diagnostic is the central record: Severity, a numeric Code with a stable
// string form (LEX1xxx, SYN2xxx, IO4xxx), a short Message, the Primary span
// and optional Notes. A failed query produces exactly one SYN2001 whose notes
// carry the "while parsing ..." chain.
//
// Producers emit through a Reporter so that storage stays decoupled:
// BagReporter collects into a Bag (limit, sort, dedup). Rendering lives in
// internal/diagfmt.
package diag
