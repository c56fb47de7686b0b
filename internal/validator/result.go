package validator

import (
	perrors "github.com/log-compass/community-packs/internal/errors"
	"github.com/log-compass/community-packs/internal/pack"
)

// Issue is one reason a pack failed.
type Issue struct {
	Code    perrors.Code
	Message string
	Fields  []pack.ValidationIssue // set for schema violations
}

// Err converts the issue into a coded error.
func (i Issue) Err() error {
	e := perrors.New(i.Code, i.Message)
	if len(i.Fields) > 0 {
		e.WithDetail("fields", i.Fields)
	}
	return e
}

// PackResult is the outcome for a single pack directory.
type PackResult struct {
	Dir      string // directory name under the packs dir
	Path     string // path to pack.json
	Issues   []Issue
	Warnings []string
}

// OK reports whether the pack passed every check.
func (r PackResult) OK() bool { return len(r.Issues) == 0 }

// HasCode reports whether any issue carries code.
func (r PackResult) HasCode(code perrors.Code) bool {
	for _, i := range r.Issues {
		if i.Code == code {
			return true
		}
	}
	return false
}

// Report is the outcome of a validation run.
type Report struct {
	PacksDir   string
	DirMissing bool
	Packs      []PackResult
}

// Count returns the number of packs inspected.
func (r *Report) Count() int { return len(r.Packs) }

// Failed returns the number of packs with at least one issue.
func (r *Report) Failed() int {
	n := 0
	for _, p := range r.Packs {
		if !p.OK() {
			n++
		}
	}
	return n
}

// OK reports whether every inspected pack passed.
func (r *Report) OK() bool { return r.Failed() == 0 }
