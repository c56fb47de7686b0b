// Package validator checks every pack in a packs directory: well-formed
// JSON, the pack schema, the id against its directory name, and each tag
// against the category taxonomy. A failing pack never stops the run; the
// report records every failure and the caller decides the exit status.
package validator
