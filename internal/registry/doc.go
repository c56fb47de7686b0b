// Package registry builds the registry document: it discovers pack
// directories, extracts a summary of each pack, orders the summaries by
// display name with locale-aware collation, and writes the whole document
// in one write. It does no schema or tag validation of its own; run the
// validator first when only valid packs may be published.
package registry
