package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/log-compass/community-packs/internal/pack"
)

// Discover lists the immediate subdirectories of packsDir that hold a pack
// document, in directory-name order. A missing packsDir yields no entries.
func Discover(packsDir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(packsDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading packs directory %s: %w", packsDir, err)
	}

	var result []Entry
	for _, d := range dirEntries {
		if !d.IsDir() {
			continue
		}
		dir := filepath.Join(packsDir, d.Name())

		packPath := filepath.Join(dir, pack.FileName)
		if !isFile(packPath) {
			continue
		}

		e := Entry{Dir: d.Name(), PackPath: packPath}
		if readme := filepath.Join(dir, pack.ReadmeName); isFile(readme) {
			e.ReadmePath = readme
		}
		result = append(result, e)
	}
	return result, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
