package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"yourfuture/internal/serrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MatchesKind(t *testing.T) {
	err := serrors.New(serrors.ErrConflict, "only pending %s can be approved", "startups")

	require.ErrorIs(t, err, serrors.ErrConflict)
	assert.NotErrorIs(t, err, serrors.ErrNotFound)
	assert.Equal(t, "only pending startups can be approved", err.Error())
	assert.Equal(t, serrors.ErrConflict, err.Kind())
}

func TestWrap_MatchesKindAndCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := serrors.Wrap(serrors.ErrInternal, cause, "failed to load startup")

	require.ErrorIs(t, err, serrors.ErrInternal)
	require.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to load startup: connection reset", err.Error())
	assert.Equal(t, "failed to load startup", err.Message())
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", serrors.New(serrors.ErrForbidden, "admin only"))

	assert.Equal(t, serrors.ErrForbidden, serrors.KindOf(wrapped))
	assert.Equal(t, serrors.ErrNotFound, serrors.KindOf(fmt.Errorf("x: %w", serrors.ErrNotFound)))
	assert.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("boom")))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "admin only", serrors.MessageOf(serrors.New(serrors.ErrForbidden, "admin only")))
	assert.Equal(t, "NOT_FOUND", serrors.MessageOf(serrors.ErrNotFound))
	assert.Equal(t, "INTERNAL", serrors.MessageOf(errors.New("boom")))
}

func TestError_NilReceiver(t *testing.T) {
	var err *serrors.Error
	assert.Equal(t, "<nil>", err.Error())
}
