// Package config resolves where a catalog's inputs and outputs live. Settings
// come from an optional packs.yaml at the catalog root, then PACKS_*
// environment variables, then built-in defaults. Relative paths are resolved
// against the catalog root.
package config
