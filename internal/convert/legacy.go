package convert

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	perrors "github.com/log-compass/community-packs/internal/errors"
	"github.com/log-compass/community-packs/internal/pack"
)

// caseInsensitiveFlag is java.util.regex.Pattern.CASE_INSENSITIVE, the only
// flag LogViewer sets that maps onto a pack filter.
const caseInsensitiveFlag = 2

// defaultVerbosity applies to legacy lines written before the verbosity
// column existed.
const defaultVerbosity = "VERBOSE"

// regexMeta are the characters whose presence marks a pattern as a regular
// expression. It is a heuristic: the pattern is not compiled.
const regexMeta = `.*+?^${}()|[]\`

var severityByVerbosity = map[string]pack.Severity{
	"VERBOSE": pack.SeverityVerbose,
	"DEBUG":   pack.SeverityDebug,
	"INFO":    pack.SeverityInfo,
	"WARN":    pack.SeverityWarning,
	"WARNING": pack.SeverityWarning,
	"ERROR":   pack.SeverityError,
}

// LegacyFilter is one converted line together with the source values that
// do not survive into the pack.
type LegacyFilter struct {
	pack.Filter
	Line      int    // 1-based index among non-blank lines
	Flags     int    // raw flag bitmask
	Verbosity string // raw verbosity keyword
}

// ParseLine converts one trimmed, non-blank line. index is the 0-based
// position among non-blank lines and determines the filter id. Failures are
// malformed-line errors carrying the line number.
func ParseLine(line string, index int) (*LegacyFilter, error) {
	lineNo := index + 1
	parts := strings.Split(line, ",")
	if len(parts) < 4 {
		return nil, malformed(lineNo, "insufficient parts")
	}

	pattern, err := decodePattern(parts[1])
	if err != nil {
		return nil, malformed(lineNo, fmt.Sprintf("invalid base64 pattern: %v", err))
	}

	flags, _ := parseIntPrefix(parts[2])

	color, err := parseColor(parts[3])
	if err != nil {
		return nil, malformed(lineNo, err.Error())
	}

	verbosity := defaultVerbosity
	if len(parts) > 4 {
		verbosity = parts[4]
	}

	f := &LegacyFilter{
		Filter: pack.Filter{
			ID:            fmt.Sprintf("filter-%d", lineNo),
			Name:          parts[0],
			Pattern:       pattern,
			IsRegex:       IsPotentialRegex(pattern),
			CaseSensitive: flags&caseInsensitiveFlag == 0,
			Color:         color,
			Enabled:       true,
			Severity:      ParseSeverity(verbosity),
		},
		Line:      lineNo,
		Flags:     flags,
		Verbosity: verbosity,
	}
	return f, nil
}

// ParseSeverity maps a LogViewer verbosity keyword (any case) to a
// severity. Unknown keywords map to info.
func ParseSeverity(verbosity string) pack.Severity {
	if s, ok := severityByVerbosity[strings.ToUpper(verbosity)]; ok {
		return s
	}
	return pack.SeverityInfo
}

// IsPotentialRegex reports whether pattern contains regex metacharacters.
func IsPotentialRegex(pattern string) bool {
	return strings.ContainsAny(pattern, regexMeta)
}

// RGBToHex formats three channel values as #RRGGBB, upper case. Values are
// not range-checked.
func RGBToHex(r, g, b int) string {
	var sb strings.Builder
	sb.WriteByte('#')
	for _, n := range []int{r, g, b} {
		h := strconv.FormatInt(int64(n), 16)
		if len(h) == 1 {
			sb.WriteByte('0')
		}
		sb.WriteString(h)
	}
	return strings.ToUpper(sb.String())
}

func parseColor(field string) (string, error) {
	channels := strings.Split(strings.Trim(field, `"`), ":")
	if len(channels) != 3 {
		return "", fmt.Errorf("invalid color format")
	}
	var rgb [3]int
	for i, c := range channels {
		n, ok := parseIntPrefix(c)
		if !ok {
			return "", fmt.Errorf("invalid color channel %q", c)
		}
		rgb[i] = n
	}
	return RGBToHex(rgb[0], rgb[1], rgb[2]), nil
}

// urlAlphabet folds the URL-safe characters onto the standard alphabet.
var urlAlphabet = strings.NewReplacer("-", "+", "_", "/")

// decodePattern decodes base64 in either alphabet, even mixed, padded or not,
// and replaces invalid UTF-8 with U+FFFD. A dangling sixth-bit character
// carries no whole byte and is dropped. Characters outside both alphabets are
// an error.
func decodePattern(s string) (string, error) {
	s = urlAlphabet.Replace(strings.TrimRight(strings.TrimSpace(s), "="))
	if len(s)%4 == 1 {
		s = s[:len(s)-1]
	}
	data, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return "", err
	}
	out := string(data)
	if !utf8.ValidString(out) {
		out = strings.ToValidUTF8(out, "\uFFFD")
	}
	return out, nil
}

// parseIntPrefix reads an optionally signed decimal integer at the start of
// s after leading whitespace, ignoring anything that follows ("12abc" is 12).
// ok is false when no digits are present.
func parseIntPrefix(s string) (n int, ok bool) {
	s = strings.TrimLeft(s, " \t\r\n")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}

func malformed(line int, reason string) error {
	return perrors.Newf(perrors.ErrMalformedLine, "line %d: %s", line, reason).WithDetail("line", line)
}
