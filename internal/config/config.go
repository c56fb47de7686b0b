package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/log-compass/community-packs/internal/branding"
)

const (
	fileName = "packs"
	fileType = "yaml"
)

// Keys recognised in packs.yaml and as PACKS_<KEY> environment variables.
const (
	KeyPacksDir        = "packs_dir"
	KeyCategoriesFile  = "categories_file"
	KeyRegistryFile    = "registry_file"
	KeyBaseURL         = "base_url"
	KeyRegistryVersion = "registry_version"
)

// Settings holds the resolved locations and registry stamps for one run.
type Settings struct {
	Root            string // catalog root; everything else is relative to it
	PacksDir        string // directory of pack subdirectories
	CategoriesFile  string // taxonomy document
	RegistryFile    string // generated registry document
	BaseURL         string
	RegistryVersion string
	ConfigFile      string // packs.yaml that was read, empty if none
}

// FilePath returns the config file path for a catalog root (<root>/packs.yaml).
func FilePath(root string) string {
	return filepath.Join(root, fileName+"."+fileType)
}

// Load resolves settings for the catalog rooted at root. A missing config
// file is not an error; an unreadable or malformed one is.
func Load(root string) (*Settings, error) {
	if root == "" {
		root = "."
	}

	v := viper.New()
	v.SetDefault(KeyPacksDir, "packs")
	v.SetDefault(KeyCategoriesFile, "categories.json")
	v.SetDefault(KeyRegistryFile, "registry.json")
	v.SetDefault(KeyBaseURL, branding.BaseURL())
	v.SetDefault(KeyRegistryVersion, branding.RegistryVersion())

	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	s := &Settings{Root: root}

	configFile := FilePath(root)
	if _, err := os.Stat(configFile); err == nil {
		v.SetConfigFile(configFile)
		v.SetConfigType(fileType)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
		s.ConfigFile = configFile
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("checking config file %s: %w", configFile, err)
	}

	s.PacksDir = resolve(root, v.GetString(KeyPacksDir))
	s.CategoriesFile = resolve(root, v.GetString(KeyCategoriesFile))
	s.RegistryFile = resolve(root, v.GetString(KeyRegistryFile))
	s.BaseURL = v.GetString(KeyBaseURL)
	s.RegistryVersion = v.GetString(KeyRegistryVersion)

	return s, nil
}

func resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
