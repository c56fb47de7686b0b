package validator

import (
	"errors"
	"fmt"

	perrors "github.com/log-compass/community-packs/internal/errors"
	"github.com/log-compass/community-packs/internal/pack"
	"github.com/log-compass/community-packs/internal/taxonomy"
)

// CheckPack validates one pack document found in directory dir. It touches
// no files. Malformed JSON or a schema violation ends the checks for that
// pack; the id and tag checks both run when the schema passes. The error
// return is reserved for a schema that cannot be compiled.
func CheckPack(tx *taxonomy.Taxonomy, dir string, data []byte) (PackResult, error) {
	res := PackResult{Dir: dir}

	schemaResult, err := pack.Validate(data)
	if err != nil {
		if errors.Is(err, pack.ErrSyntax) {
			res.Issues = append(res.Issues, Issue{
				Code:    perrors.ErrMalformedDocument,
				Message: fmt.Sprintf("Invalid JSON - %v", err),
			})
			return res, nil
		}
		return res, err
	}
	if !schemaResult.Valid {
		res.Issues = append(res.Issues, Issue{
			Code:    perrors.ErrSchemaViolation,
			Message: "Schema validation failed",
			Fields:  schemaResult.Issues,
		})
		return res, nil
	}

	header, err := pack.ParseHeader(data)
	if err != nil {
		// The schema already guarantees the header shape.
		return res, err
	}

	if header.ID != dir {
		res.Issues = append(res.Issues, Issue{
			Code:    perrors.ErrIDMismatch,
			Message: fmt.Sprintf("Pack ID %q does not match directory name", header.ID),
		})
	}

	for _, v := range tx.CheckTags(header.Tags) {
		if v.OK() {
			continue
		}
		code := perrors.CodeOf(v.Err())
		for _, reason := range v.Reasons {
			res.Issues = append(res.Issues, Issue{Code: code, Message: reason})
		}
	}

	res.Warnings = warnings(header, data)
	return res, nil
}

// warnings reports oddities that do not fail a pack.
func warnings(header *pack.Header, data []byte) []string {
	p, err := pack.Parse(data)
	if err != nil {
		return []string{fmt.Sprintf("Pack content could not be decoded: %v", err)}
	}

	var out []string
	if latest, ok := pack.LatestChangelogVersion(p.Changelog); ok {
		if cmp, err := pack.CompareVersions(latest, header.Version); err == nil && cmp > 0 {
			out = append(out, fmt.Sprintf("Changelog mentions %s but pack version is %s", latest, header.Version))
		}
	}
	if p.IsEmpty() {
		out = append(out, "Pack has no filters, exception rules or log formats")
	}
	for _, f := range p.Filters.All() {
		if f.Severity != "" && !f.Severity.Valid() {
			out = append(out, fmt.Sprintf("Filter %q has unknown severity %q", f.ID, f.Severity))
		}
	}
	return out
}
