// Package branding provides compile-time identity values for the CLI.
//
// Values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork only edits the YAML.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName         string `yaml:"cli_name"`
	DisplayName     string `yaml:"display_name"`
	Description     string `yaml:"description"`
	EnvPrefix       string `yaml:"env_prefix"`
	GitHubRepo      string `yaml:"github_repo"`
	BaseURL         string `yaml:"base_url"`
	RegistryVersion string `yaml:"registry_version"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:         "packs",
			DisplayName:     "Log Compass Community Packs",
			Description:     "Validate, convert and index community log-filter packs",
			EnvPrefix:       "PACKS",
			GitHubRepo:      "log-compass/community-packs",
			BaseURL:         "https://raw.githubusercontent.com/log-compass/community-packs/main",
			RegistryVersion: "1.0.0",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "packs").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "PACKS").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// BaseURL returns the raw-content URL packs are served from, embedded in
// every generated registry.
func BaseURL() string { load(); return defaults.BaseURL }

// RegistryVersion returns the version stamp written into the registry.
func RegistryVersion() string { load(); return defaults.RegistryVersion }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("base_url") → "PACKS_BASE_URL".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
