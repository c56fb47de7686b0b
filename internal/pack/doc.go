// Package pack models community pack documents (pack.json): parsing, the
// flat-or-grouped filter union, JSON Schema validation against the embedded
// schema/pack.schema.json, and semantic-version helpers.
package pack
