// Package taxonomy loads the category document that governs pack tags and
// decides, tag by tag, whether a tag is acceptable.
//
// A tag is acceptable when it names a known category, or when it carries the
// custom-tag prefix, custom tags are enabled, and the remainder satisfies the
// configured length bounds and pattern. CheckTag is a pure function of the
// loaded taxonomy and the tag.
package taxonomy

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	perrors "github.com/log-compass/community-packs/internal/errors"
)

// Category is one entry of the category list. Fields other than the id are
// carried through to the registry untouched.
type Category struct {
	ID  string
	raw json.RawMessage
}

// UnmarshalJSON keeps the raw object and extracts the id.
func (c *Category) UnmarshalJSON(data []byte) error {
	var head struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	c.ID = head.ID
	c.raw = append(c.raw[:0], data...)
	return nil
}

// MarshalJSON writes the category exactly as it was read.
func (c Category) MarshalJSON() ([]byte, error) {
	if len(c.raw) == 0 {
		return json.Marshal(struct {
			ID string `json:"id"`
		}{c.ID})
	}
	return c.raw, nil
}

// CustomTagRules constrain the part of a custom tag after the prefix.
type CustomTagRules struct {
	MinLength int    `json:"minLength"`
	MaxLength int    `json:"maxLength"`
	Pattern   string `json:"pattern"`
}

// Taxonomy is the parsed category document.
type Taxonomy struct {
	Categories        []Category     `json:"categories"`
	CustomTagPrefix   string         `json:"customTagPrefix"`
	CustomTagsAllowed bool           `json:"customTagsAllowed"`
	CustomTagRules    CustomTagRules `json:"customTagRules"`

	ids     map[string]bool
	pattern *regexp2.Regexp
}

// Load reads and parses the category document at path.
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, perrors.Newf(perrors.ErrMissingFile, "%s not found", path).WithDetail("path", path)
		}
		return nil, perrors.Wrapf(err, perrors.ErrMissingFile, "reading %s", path)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, perrors.Wrapf(err, perrors.ErrMalformedDocument, "parsing %s", path)
	}
	return t, nil
}

// Parse builds a Taxonomy from raw JSON. The custom-tag pattern is compiled
// once here, with ECMAScript semantics since the document is shared with
// JavaScript clients.
func Parse(data []byte) (*Taxonomy, error) {
	var t Taxonomy
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("unmarshaling taxonomy: %w", err)
	}

	t.ids = make(map[string]bool, len(t.Categories))
	for _, c := range t.Categories {
		t.ids[c.ID] = true
	}

	if t.CustomTagRules.Pattern != "" {
		re, err := regexp2.Compile(t.CustomTagRules.Pattern, regexp2.ECMAScript)
		if err != nil {
			return nil, fmt.Errorf("compiling custom tag pattern %q: %w", t.CustomTagRules.Pattern, err)
		}
		t.pattern = re
	}
	return &t, nil
}

// IDs returns the category ids in document order.
func (t *Taxonomy) IDs() []string {
	ids := make([]string, 0, len(t.Categories))
	for _, c := range t.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}

// HasCategory reports whether id names a known category.
func (t *Taxonomy) HasCategory(id string) bool {
	return t.ids[id]
}

// IsCustom reports whether tag carries the custom-tag prefix. An empty
// prefix marks nothing as custom.
func (t *Taxonomy) IsCustom(tag string) bool {
	return t.CustomTagPrefix != "" && strings.HasPrefix(tag, t.CustomTagPrefix)
}

// CheckTag classifies a single tag.
func (t *Taxonomy) CheckTag(tag string) Verdict {
	if t.IsCustom(tag) && t.CustomTagsAllowed {
		return t.checkCustom(tag)
	}
	if t.HasCategory(tag) {
		return Verdict{Tag: tag, Kind: KnownCategory}
	}
	return Verdict{
		Tag:  tag,
		Kind: InvalidTag,
		Reasons: []string{fmt.Sprintf("Invalid tag %q. Use a valid category or prefix with %q",
			tag, t.CustomTagPrefix)},
	}
}

// CheckTags classifies every tag, preserving order.
func (t *Taxonomy) CheckTags(tags []string) []Verdict {
	out := make([]Verdict, 0, len(tags))
	for _, tag := range tags {
		out = append(out, t.CheckTag(tag))
	}
	return out
}

func (t *Taxonomy) checkCustom(tag string) Verdict {
	rules := t.CustomTagRules
	name := strings.TrimPrefix(tag, t.CustomTagPrefix)
	v := Verdict{Tag: tag, Kind: ValidCustom}

	if n := utf8.RuneCountInString(name); n < rules.MinLength || (rules.MaxLength > 0 && n > rules.MaxLength) {
		v.Reasons = append(v.Reasons, fmt.Sprintf("Custom tag %q length must be %d-%d",
			tag, rules.MinLength, rules.MaxLength))
	}

	if t.pattern != nil {
		ok, err := t.pattern.MatchString(name)
		if err != nil || !ok {
			v.Reasons = append(v.Reasons, fmt.Sprintf("Custom tag %q does not match pattern %s",
				tag, rules.Pattern))
		}
	}

	if len(v.Reasons) > 0 {
		v.Kind = InvalidCustomTag
	}
	return v
}
