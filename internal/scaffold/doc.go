// Package scaffold generates a new pack directory from embedded templates.
// It powers the "new" command: a pack.json with an empty filter list and an
// initial changelog entry, plus a README.md for contributors to fill in.
package scaffold
