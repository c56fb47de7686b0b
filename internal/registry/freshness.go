package registry

import (
	"fmt"
	"os"
	"path"
	"time"
)

// GeneratedTime parses the registry's generatedAt stamp.
func (r *Registry) GeneratedTime() (time.Time, error) {
	t, err := time.Parse(TimeFormat, r.GeneratedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing generatedAt %q: %w", r.GeneratedAt, err)
	}
	return t, nil
}

// StalePacks returns the directories under packsDir whose pack document or
// README changed after reg was generated, or that reg does not list.
// Listing is matched on the directory in each summary's path.
// A registry without a readable generatedAt stamp treats every pack as stale.
func StalePacks(reg *Registry, packsDir string) ([]string, error) {
	entries, err := Discover(packsDir)
	if err != nil {
		return nil, err
	}

	generated, err := reg.GeneratedTime()
	if err != nil {
		generated = time.Time{}
	}

	// Entries are keyed by directory; a pack's id need not match it.
	listed := make(map[string]bool, len(reg.Packs))
	for _, s := range reg.Packs {
		listed[path.Base(path.Dir(s.Path))] = true
	}

	var stale []string
	for _, e := range entries {
		if !listed[e.Dir] || modifiedAfter(e.PackPath, generated) ||
			(e.HasReadme() && modifiedAfter(e.ReadmePath, generated)) {
			stale = append(stale, e.Dir)
		}
	}
	return stale, nil
}

// modifiedAfter compares at millisecond precision, the precision of the
// registry stamp.
func modifiedAfter(path string, t time.Time) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.ModTime().Truncate(time.Millisecond).After(t)
}
