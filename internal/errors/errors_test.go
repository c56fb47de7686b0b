package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/log-compass/community-packs/internal/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrIDMismatch, "pack id does not match directory")

	assert.Equal(t, errors.ErrIDMismatch, err.Code)
	assert.NotNil(t, err.Details)
	assert.Equal(t, "[id-mismatch] pack id does not match directory", err.Error())
}

func TestWrap(t *testing.T) {
	base := stderrors.New("no such file")

	t.Run("non_nil", func(t *testing.T) {
		err := errors.Wrapf(base, errors.ErrMissingFile, "reading %s", "categories.json")
		require.NotNil(t, err)
		assert.Equal(t, "[missing-file] reading categories.json: no such file", err.Error())
		assert.ErrorIs(t, err, base)
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrMissingFile, "ignored"))
	})
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("validating: %w", errors.New(errors.ErrInvalidTag, "bad tag"))

	assert.ErrorIs(t, err, errors.New(errors.ErrInvalidTag, "anything"))
	assert.NotErrorIs(t, err, errors.New(errors.ErrInvalidCustomTag, "anything"))
	assert.True(t, errors.HasCode(err, errors.ErrInvalidTag))
	assert.Equal(t, errors.Code(""), errors.CodeOf(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrMalformedLine, "insufficient parts").WithDetail("line", 3)
	assert.Equal(t, 3, err.Details["line"])

	var zero errors.Error
	zero.WithDetail("k", "v")
	assert.Equal(t, "v", zero.Details["k"])
}
