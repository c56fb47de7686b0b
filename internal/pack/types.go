package pack

import (
	"encoding/json"
	"errors"
)

const msgExclusiveFilters = "filters and filterGroups are mutually exclusive"

// File names inside a pack directory.
const (
	FileName   = "pack.json"
	ReadmeName = "README.md"
)

// Severity is the log level a filter is meant to highlight.
type Severity string

const (
	SeverityVerbose Severity = "verbose"
	SeverityDebug   Severity = "debug"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// ValidSeverities lists every severity in ascending order.
var ValidSeverities = []Severity{
	SeverityVerbose,
	SeverityDebug,
	SeverityInfo,
	SeverityWarning,
	SeverityError,
}

// Valid reports whether s is one of ValidSeverities.
func (s Severity) Valid() bool {
	for _, v := range ValidSeverities {
		if s == v {
			return true
		}
	}
	return false
}

// Filter is a single highlight/match rule.
type Filter struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Pattern       string   `json:"pattern"`
	IsRegex       bool     `json:"isRegex"`
	CaseSensitive bool     `json:"caseSensitive"`
	Color         string   `json:"color"`
	Enabled       bool     `json:"enabled"`
	Severity      Severity `json:"severity,omitempty"`
}

// FilterGroup is a named set of filters.
type FilterGroup struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Filters []Filter `json:"filters"`
}

// ChangelogEntry records the changes shipped in one pack version.
type ChangelogEntry struct {
	Version string   `json:"version"`
	Date    string   `json:"date"`
	Changes []string `json:"changes"`
}

// Header holds the fields every pack must declare. It is what the registry
// needs, and it decodes even when the rest of the document would not.
type Header struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Author      string   `json:"author"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags"`
}

// Pack is a full pack document.
type Pack struct {
	Header
	Filters FilterSet
	// ExceptionRules and LogFormats are kept as raw JSON. A nil slice is
	// omitted on output; an empty one is written as [].
	ExceptionRules []json.RawMessage
	LogFormats     []json.RawMessage
	Changelog      []ChangelogEntry
}

// packJSON fixes the on-disk field order.
type packJSON struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Version        string             `json:"version"`
	Author         string             `json:"author"`
	Description    string             `json:"description,omitempty"`
	Tags           []string           `json:"tags"`
	Filters        *[]Filter          `json:"filters,omitempty"`
	ExceptionRules *[]json.RawMessage `json:"exceptionRules,omitempty"`
	LogFormats     *[]json.RawMessage `json:"logFormats,omitempty"`
	Changelog      []ChangelogEntry   `json:"changelog,omitempty"`
	FilterGroups   *[]FilterGroup     `json:"filterGroups,omitempty"`
}

// MarshalJSON writes the filter union as exactly one of filters or
// filterGroups.
func (p Pack) MarshalJSON() ([]byte, error) {
	out := packJSON{
		ID:          p.ID,
		Name:        p.Name,
		Version:     p.Version,
		Author:      p.Author,
		Description: p.Description,
		Tags:        p.Tags,
		Changelog:   p.Changelog,
	}
	switch p.Filters.Kind() {
	case FlatFilters:
		flat := nonNil(p.Filters.flat)
		out.Filters = &flat
	case GroupedFilters:
		groups := nonNil(p.Filters.groups)
		out.FilterGroups = &groups
	}
	if p.ExceptionRules != nil {
		out.ExceptionRules = &p.ExceptionRules
	}
	if p.LogFormats != nil {
		out.LogFormats = &p.LogFormats
	}
	return encode(out, "")
}

// UnmarshalJSON reads a pack document. A document that declares both
// filters and filterGroups is rejected.
func (p *Pack) UnmarshalJSON(data []byte) error {
	var in packJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.Filters != nil && in.FilterGroups != nil {
		return errors.New(msgExclusiveFilters)
	}

	*p = Pack{
		Header: Header{
			ID:          in.ID,
			Name:        in.Name,
			Version:     in.Version,
			Author:      in.Author,
			Description: in.Description,
			Tags:        in.Tags,
		},
		Changelog: in.Changelog,
	}
	switch {
	case in.Filters != nil:
		p.Filters = NewFlatFilters(*in.Filters)
	case in.FilterGroups != nil:
		p.Filters = NewGroupedFilters(*in.FilterGroups...)
	}
	if in.ExceptionRules != nil {
		p.ExceptionRules = nonNil(*in.ExceptionRules)
	}
	if in.LogFormats != nil {
		p.LogFormats = nonNil(*in.LogFormats)
	}
	return nil
}

// IsEmpty reports whether the pack ships no filters, exception rules or
// log formats.
func (p *Pack) IsEmpty() bool {
	return p.Filters.Count() == 0 && len(p.ExceptionRules) == 0 && len(p.LogFormats) == 0
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
