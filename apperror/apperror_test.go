package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusCodes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		errType ErrorType
		want    int
	}{
		{ValidationError, http.StatusBadRequest},
		{DuplicateKeyError, http.StatusBadRequest},
		{AuthenticationError, http.StatusUnauthorized},
		{ForbiddenError, http.StatusUnauthorized},
		{NotFoundError, http.StatusNotFound},
		{DatabaseError, http.StatusInternalServerError},
		{InternalError, http.StatusInternalServerError},
		{UnknownError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		got := NewAppError(tc.errType, "msg", nil).StatusCode()
		require.Equal(t, tc.want, got, "type %d", tc.errType)
	}
}

func TestToResponse_MasksServerSideDetail(t *testing.T) {
	t.Parallel()

	underlying := errors.New("pq: connection refused")
	resp := NewDatabaseError("failed to list blogs", underlying).ToResponse()
	require.Equal(t, "internal server error", resp.Error)
	require.NotContains(t, resp.Error, "pq:")

	resp = NewForbiddenError("operation not authorized", nil).ToResponse()
	require.Equal(t, "token invalid", resp.Error)

	resp = NewValidationError("title is required", nil).ToResponse()
	require.Equal(t, "title is required", resp.Error)
}

func TestUnwrapAndPredicates(t *testing.T) {
	t.Parallel()

	underlying := errors.New("root cause")
	err := NewNotFoundError("blog not found", underlying)
	require.True(t, errors.Is(err, underlying))
	require.True(t, IsNotFound(err))
	require.False(t, IsValidationError(err))

	// Wrapping does not hide the category.
	wrapped := fmt.Errorf("while deleting: %w", err)
	require.True(t, IsNotFound(wrapped))

	appErr, ok := FromError(wrapped)
	require.True(t, ok)
	require.Equal(t, "blog not found", appErr.Message)

	_, ok = FromError(errors.New("plain"))
	require.False(t, ok)
}
