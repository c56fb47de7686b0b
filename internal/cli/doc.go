// Package cli defines the Cobra command tree for the packs CLI. Each file
// registers one top-level command (validate, build-registry, convert, search,
// version) with the root command. Commands resolve settings through config
// and delegate to the validator, registry, convert and search packages; they
// only handle flag parsing and output.
package cli
