package convert

import (
	"fmt"
	"io"
	"strings"
)

// previewLimit caps how many filters the report lists.
const previewLimit = 10

// Stats summarises a set of converted filters.
type Stats struct {
	Total           int
	Regex           int
	Simple          int
	CaseSensitive   int
	CaseInsensitive int
	UniqueColors    int
}

// ComputeStats counts pattern kinds, case sensitivity and distinct colours.
func ComputeStats(filters []*LegacyFilter) Stats {
	s := Stats{Total: len(filters)}
	colors := make(map[string]struct{})
	for _, f := range filters {
		if f.IsRegex {
			s.Regex++
		}
		if f.CaseSensitive {
			s.CaseSensitive++
		}
		colors[f.Color] = struct{}{}
	}
	s.Simple = s.Total - s.Regex
	s.CaseInsensitive = s.Total - s.CaseSensitive
	s.UniqueColors = len(colors)
	return s
}

// WriteReport prints the conversion summary: counts and a preview of the
// first filters.
func WriteReport(w io.Writer, input, output string, filters []*LegacyFilter) {
	s := ComputeStats(filters)

	fmt.Fprintln(w, "\n📊 Conversion Report:")
	fmt.Fprintln(w, strings.Repeat("─", 50))
	fmt.Fprintf(w, "  Input file:  %s\n", input)
	fmt.Fprintf(w, "  Output file: %s\n", output)
	fmt.Fprintf(w, "  Total filters converted: %d\n", s.Total)

	fmt.Fprintln(w, "\n  Statistics:")
	fmt.Fprintf(w, "    Regex patterns:     %d\n", s.Regex)
	fmt.Fprintf(w, "    Simple patterns:    %d\n", s.Simple)
	fmt.Fprintf(w, "    Case sensitive:     %d\n", s.CaseSensitive)
	fmt.Fprintf(w, "    Case insensitive:   %d\n", s.CaseInsensitive)
	fmt.Fprintf(w, "    Unique colors:      %d\n", s.UniqueColors)

	fmt.Fprintln(w, "\n  Filters:")
	for i, f := range filters {
		if i == previewLimit {
			break
		}
		kind := "simple"
		if f.IsRegex {
			kind = "regex"
		}
		fmt.Fprintf(w, "    %s %s (%s)\n", f.Color, f.Name, kind)
	}
	if len(filters) > previewLimit {
		fmt.Fprintf(w, "    ... and %d more\n", len(filters)-previewLimit)
	}
}
