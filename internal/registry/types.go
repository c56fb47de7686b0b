package registry

import "github.com/log-compass/community-packs/internal/taxonomy"

// TimeFormat is the timestamp layout used in the registry (ISO 8601, UTC,
// millisecond precision).
const TimeFormat = "2006-01-02T15:04:05.000Z"

// Registry is the aggregated document consumed by clients.
type Registry struct {
	Version     string              `json:"version"`
	GeneratedAt string              `json:"generatedAt"`
	BaseURL     string              `json:"baseUrl"`
	Categories  []taxonomy.Category `json:"categories"`
	Packs       []Summary           `json:"packs"`
}

// Summary is the registry record for one pack.
type Summary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Author      string   `json:"author"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
	Path        string   `json:"path"`
	Readme      *string  `json:"readme"`
	UpdatedAt   string   `json:"updatedAt"`
}

// Entry is a pack directory found on disk.
type Entry struct {
	Dir        string // directory name, e.g. "android-crashes"
	PackPath   string // absolute or root-relative path to pack.json
	ReadmePath string // path to README.md, empty when absent
}

// HasReadme reports whether the pack ships a README.
func (e Entry) HasReadme() bool { return e.ReadmePath != "" }
