// Package search queries a built registry by free text and by tag,
// category and author filters.
package search

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/log-compass/community-packs/internal/registry"
)

// Query selects packs. Every non-empty field must match; Tags match when
// any one of them is carried by the pack.
type Query struct {
	Text     string
	Tags     []string
	Category string
	Author   string
}

// Match is a pack that satisfied the query. Score is the fuzzy score of
// the text match, zero when the query has no text.
type Match struct {
	registry.Summary
	Score int `json:"score"`
}

// ParseTags splits a comma-separated tag list, dropping blanks.
func ParseTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(t); tag != "" {
			tags = append(tags, strings.ToLower(tag))
		}
	}
	return tags
}

// Run filters reg.Packs by q. Without text the registry order is kept;
// with text, results are ranked by fuzzy score against name, id and
// description.
func Run(reg *registry.Registry, q Query) []Match {
	var candidates []registry.Summary
	for _, s := range reg.Packs {
		if matchesFilters(s, q) {
			candidates = append(candidates, s)
		}
	}

	if q.Text == "" {
		matches := make([]Match, 0, len(candidates))
		for _, s := range candidates {
			matches = append(matches, Match{Summary: s})
		}
		return matches
	}

	searchStrings := make([]string, 0, len(candidates))
	for _, s := range candidates {
		searchStrings = append(searchStrings, fmt.Sprintf("%s %s %s", s.Name, s.ID, s.Description))
	}

	found := fuzzy.Find(q.Text, searchStrings)
	matches := make([]Match, 0, len(found))
	for _, m := range found {
		matches = append(matches, Match{Summary: candidates[m.Index], Score: m.Score})
	}
	return matches
}

// matchesFilters applies the structured filters; they are AND-combined.
func matchesFilters(s registry.Summary, q Query) bool {
	if q.Category != "" && !strings.EqualFold(s.Category, q.Category) {
		return false
	}
	if q.Author != "" && !strings.EqualFold(s.Author, q.Author) {
		return false
	}
	if len(q.Tags) > 0 && !matchesAnyTag(s.Tags, q.Tags) {
		return false
	}
	return true
}

// matchesAnyTag reports whether any pack tag equals any filter tag,
// ignoring case.
func matchesAnyTag(packTags, filterTags []string) bool {
	for _, ft := range filterTags {
		for _, pt := range packTags {
			if strings.EqualFold(pt, ft) {
				return true
			}
		}
	}
	return false
}
