package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	perrors "github.com/log-compass/community-packs/internal/errors"
	"github.com/log-compass/community-packs/internal/logging"
	"github.com/log-compass/community-packs/internal/pack"
)

// DefaultAuthor applies when the caller names no author.
const DefaultAuthor = "unknown"

// DefaultTags returns the tags given to converted packs by default.
func DefaultTags() []string { return []string{"custom:logviewer"} }

// Version is the version stamped on every converted pack.
const Version = "1.0.0"

// Options configures a conversion.
type Options struct {
	Input    string   // LogViewer .filter file
	Output   string   // pack document to write; DefaultOutput(Input) when empty
	PackID   string   // derived from the input name when empty
	PackName string   // derived from the input name when empty
	Author   string   // DefaultAuthor when empty
	Tags     []string // DefaultTags when empty
	Group    string   // wrap every filter in one group with this name
	Now      func() time.Time
}

// Result is the outcome of parsing a LogViewer file.
type Result struct {
	Filters []*LegacyFilter
	Skipped []error // one malformed-line error per skipped line
}

// Outcome is what a completed conversion produced.
type Outcome struct {
	Output string
	Pack   *pack.Pack
	Result *Result
}

// Parse reads LogViewer lines from r. Blank lines are ignored and do not
// count towards line numbers; malformed lines are collected in Skipped.
func Parse(r io.Reader) (*Result, error) {
	logger := logging.GetLogger("convert")

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading filters: %w", err)
	}

	res := &Result{}
	index := 0
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		f, err := ParseLine(line, index)
		index++
		if err != nil {
			logger.Warn().Err(err).Msg("Skipping line")
			res.Skipped = append(res.Skipped, err)
			continue
		}
		res.Filters = append(res.Filters, f)
	}
	return res, nil
}

// ParseFile parses the LogViewer file at path.
func ParseFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, perrors.Newf(perrors.ErrMissingFile, "Input file not found: %s", path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

var nonIDChars = regexp.MustCompile(`[^a-z0-9]`)

// baseName returns the input file name without directory or extension.
func baseName(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DefaultPackID derives a pack id from the input file name.
func DefaultPackID(input string) string {
	return nonIDChars.ReplaceAllString(strings.ToLower(baseName(input)), "-")
}

// DefaultPackName derives a display name from the input file name.
func DefaultPackName(input string) string {
	return strings.NewReplacer("-", " ", "_", " ").Replace(baseName(input))
}

// DefaultOutput returns <dir>/<base>_converted.json next to the input.
func DefaultOutput(input string) string {
	return filepath.Join(filepath.Dir(input), baseName(input)+"_converted.json")
}

// BuildPack assembles the pack document for the converted filters.
// Severity and the raw LogViewer values are not carried into the pack.
func BuildPack(filters []*LegacyFilter, opts Options) *pack.Pack {
	opts = withDefaults(opts)

	clean := make([]pack.Filter, 0, len(filters))
	for _, f := range filters {
		pf := f.Filter
		pf.Severity = ""
		clean = append(clean, pf)
	}

	p := &pack.Pack{
		Header: pack.Header{
			ID:          opts.PackID,
			Name:        opts.PackName,
			Version:     Version,
			Author:      opts.Author,
			Description: fmt.Sprintf("Converted from LogViewer filter file: %s", filepath.Base(opts.Input)),
			Tags:        opts.Tags,
		},
		ExceptionRules: []json.RawMessage{},
		LogFormats:     []json.RawMessage{},
		Changelog: []pack.ChangelogEntry{{
			Version: Version,
			Date:    opts.Now().UTC().Format("2006-01-02"),
			Changes: []string{fmt.Sprintf("Converted from LogViewer format (%d filters)", len(filters))},
		}},
	}

	if opts.Group != "" {
		p.Filters = pack.NewGroupedFilters(pack.FilterGroup{
			ID:      "group-1",
			Name:    opts.Group,
			Filters: clean,
		})
	} else {
		p.Filters = pack.NewFlatFilters(clean)
	}
	return p
}

// Run converts opts.Input and writes the pack document. The input must exist
// and yield at least one filter; otherwise nothing is written.
func Run(opts Options) (*Outcome, error) {
	logger := logging.GetLogger("convert")
	defer logging.LogOperationStart(logger, "convert")()

	if opts.Input == "" {
		return nil, perrors.New(perrors.ErrMissingFile, "no input file given")
	}
	opts = withDefaults(opts)

	res, err := ParseFile(opts.Input)
	if err != nil {
		return nil, err
	}
	if len(res.Filters) == 0 {
		return nil, perrors.New(perrors.ErrEmptyResult, "No valid filters found in the input file").
			WithDetail("skipped", len(res.Skipped))
	}

	p := BuildPack(res.Filters, opts)
	data, err := pack.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding pack: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(opts.Output), 0755); err != nil {
		return nil, perrors.Wrapf(err, perrors.ErrWriteFailed, "creating output directory for %s", opts.Output)
	}
	if err := os.WriteFile(opts.Output, data, 0644); err != nil {
		return nil, perrors.Wrapf(err, perrors.ErrWriteFailed, "writing %s", opts.Output)
	}
	logger.Info().
		Str("output", opts.Output).
		Int("filters", len(res.Filters)).
		Int("skipped", len(res.Skipped)).
		Msg("Wrote pack")

	return &Outcome{Output: opts.Output, Pack: p, Result: res}, nil
}

func withDefaults(opts Options) Options {
	if opts.Output == "" {
		opts.Output = DefaultOutput(opts.Input)
	}
	if opts.PackID == "" {
		opts.PackID = DefaultPackID(opts.Input)
	}
	if opts.PackName == "" {
		opts.PackName = DefaultPackName(opts.Input)
	}
	if opts.Author == "" {
		opts.Author = DefaultAuthor
	}
	if len(opts.Tags) == 0 {
		opts.Tags = DefaultTags()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return opts
}
