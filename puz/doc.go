// Package puz reads, validates, scrambles and serializes Across Lite
// crossword puzzle files, in both the binary .puz container and its
// plain-text sibling dialect.
//
// The package exposes a single aggregate, Puzzle, that owns every piece of
// a puzzle's data: dimensions, solution and player grids, metadata strings,
// clues, and the optional rebus/timer/extras/user-rebus sections. Puzzles
// are produced either by constructing one with New and filling it in with
// the accessor methods, or by parsing an existing file with LoadBinary or
// LoadText.
//
// Package puz does no I/O of its own; callers hand it byte slices and get
// byte slices back. Memory-mapping a file, or anything involving a
// terminal or network, belongs to an external caller (see cmd/puzdump for
// an example front end).
package puz
