package taxonomy

import (
	"strings"

	perrors "github.com/log-compass/community-packs/internal/errors"
)

// Kind is the outcome of checking one tag.
type Kind int

const (
	KnownCategory Kind = iota
	ValidCustom
	InvalidTag
	InvalidCustomTag
)

func (k Kind) String() string {
	switch k {
	case KnownCategory:
		return "category"
	case ValidCustom:
		return "custom"
	case InvalidTag:
		return string(perrors.ErrInvalidTag)
	case InvalidCustomTag:
		return string(perrors.ErrInvalidCustomTag)
	default:
		return "unknown"
	}
}

// Verdict describes whether a tag is acceptable and, if not, why.
// An invalid custom tag carries one reason per violated rule.
type Verdict struct {
	Tag     string
	Kind    Kind
	Reasons []string
}

// OK reports whether the tag is acceptable.
func (v Verdict) OK() bool {
	return v.Kind == KnownCategory || v.Kind == ValidCustom
}

// Err converts a failing verdict into a coded error; nil when OK.
func (v Verdict) Err() error {
	switch v.Kind {
	case InvalidTag:
		return perrors.New(perrors.ErrInvalidTag, strings.Join(v.Reasons, "; ")).WithDetail("tag", v.Tag)
	case InvalidCustomTag:
		return perrors.New(perrors.ErrInvalidCustomTag, strings.Join(v.Reasons, "; ")).WithDetail("tag", v.Tag)
	default:
		return nil
	}
}
