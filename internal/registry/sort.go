package registry

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortSummaries orders summaries by display name using root-locale
// collation, so "Alpha", "beta", "Charlie" sort as a reader expects rather
// than by byte value. Equal names fall back to id for a stable, repeatable
// order.
func SortSummaries(summaries []Summary) {
	c := collate.New(language.Und)
	sort.SliceStable(summaries, func(i, j int) bool {
		if cmp := c.CompareString(summaries[i].Name, summaries[j].Name); cmp != 0 {
			return cmp < 0
		}
		return summaries[i].ID < summaries[j].ID
	})
}
