package registry

import (
	"path"
	"time"

	perrors "github.com/log-compass/community-packs/internal/errors"
	"github.com/log-compass/community-packs/internal/logging"
	"github.com/log-compass/community-packs/internal/pack"
	"github.com/log-compass/community-packs/internal/taxonomy"
)

// DefaultPathPrefix is the repository-relative directory summary paths are
// rooted at.
const DefaultPathPrefix = "packs"

// Options configures a registry build.
type Options struct {
	PacksDir       string
	CategoriesFile string
	BaseURL        string
	Version        string
	PathPrefix     string           // prefix of summary paths; DefaultPathPrefix when empty
	Now            func() time.Time // clock; time.Now when nil
}

// Build assembles a fresh registry from every pack under opts.PacksDir.
// The taxonomy document must exist; an absent packs directory yields a
// registry with no packs. Packs are not validated: fields of the wrong type
// are summarized as empty. A pack document that is not a JSON object aborts
// the build.
func Build(opts Options) (*Registry, error) {
	logger := logging.GetLogger("registry")
	defer logging.LogOperationStart(logger, "build")()

	tx, err := taxonomy.Load(opts.CategoriesFile)
	if err != nil {
		return nil, err
	}

	entries, err := Discover(opts.PacksDir)
	if err != nil {
		return nil, err
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	prefix := opts.PathPrefix
	if prefix == "" {
		prefix = DefaultPathPrefix
	}

	summaries := make([]Summary, 0, len(entries))
	for _, e := range entries {
		h, err := pack.ParseHeaderFileLenient(e.PackPath)
		if err != nil {
			return nil, perrors.Wrapf(err, perrors.ErrMalformedDocument, "reading pack %s", e.Dir)
		}
		summaries = append(summaries, Summarize(e, h, prefix, stamp(now())))
		logger.Debug().Str("pack", h.ID).Bool("readme", e.HasReadme()).Msg("Added pack")
	}

	SortSummaries(summaries)

	categories := tx.Categories
	if categories == nil {
		categories = []taxonomy.Category{}
	}

	return &Registry{
		Version:     opts.Version,
		GeneratedAt: stamp(now()),
		BaseURL:     opts.BaseURL,
		Categories:  categories,
		Packs:       summaries,
	}, nil
}

// Summarize builds the registry record for one discovered pack. The first
// tag is the display category; an untagged pack gets an empty category.
func Summarize(e Entry, h *pack.Header, prefix, updatedAt string) Summary {
	s := Summary{
		ID:          h.ID,
		Name:        h.Name,
		Version:     h.Version,
		Author:      h.Author,
		Description: h.Description,
		Tags:        h.Tags,
		Path:        path.Join(prefix, e.Dir, pack.FileName),
		UpdatedAt:   updatedAt,
	}
	if s.Tags == nil {
		s.Tags = []string{}
	}
	if len(h.Tags) > 0 {
		s.Category = h.Tags[0]
	}
	if e.HasReadme() {
		readme := path.Join(prefix, e.Dir, pack.ReadmeName)
		s.Readme = &readme
	}
	return s
}

func stamp(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}
