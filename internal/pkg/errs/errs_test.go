//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"table-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))

	base := errs.New("boom")
	err := errs.Wrap(base, "submit")
	require.ErrorIs(t, err, base)
	assert.Equal(t, "submit: boom", err.Error())
}

func TestMark(t *testing.T) {
	assert.Equal(t, errs.ErrSubmissionFault, errs.Mark(nil, errs.ErrSubmissionFault))

	err := errs.Mark(errors.New("backend panicked"), errs.ErrSubmissionFault)
	require.True(t, errs.Is(err, errs.ErrSubmissionFault))
	assert.False(t, errs.Is(err, errs.ErrSubmissionRejected))
	assert.True(t, errs.Is(errs.Wrap(err, "submit"), errs.ErrSubmissionFault))
	assert.Equal(t, "backend panicked", err.Error())
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	require.Len(t, lines, 3)
	assert.Equal(t, "boom", lines[0])
}
