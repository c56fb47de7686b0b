package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	perrors "github.com/log-compass/community-packs/internal/errors"
	"github.com/log-compass/community-packs/internal/pack"
)

// Write replaces the registry document at path in a single write, creating
// the parent directory if needed.
func Write(path string, reg *Registry) error {
	data, err := pack.MarshalIndent(reg)
	if err != nil {
		return fmt.Errorf("encoding registry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return perrors.Wrapf(err, perrors.ErrWriteFailed, "creating directory for %s", path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return perrors.Wrapf(err, perrors.ErrWriteFailed, "writing %s", path)
	}
	return nil
}

// Load reads a previously written registry document.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, perrors.Newf(perrors.ErrMissingFile, "%s not found", path)
		}
		return nil, fmt.Errorf("reading registry %s: %w", path, err)
	}
	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, perrors.Wrapf(err, perrors.ErrMalformedDocument, "parsing registry %s", path)
	}
	return &reg, nil
}
