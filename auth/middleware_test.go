package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func authedRequest(t *testing.T, mw func(http.Handler) http.Handler, header string) (*httptest.ResponseRecorder, *Identity) {
	t.Helper()

	var seen *Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if identity, ok := IdentityFromContext(r.Context()); ok {
			seen = &identity
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/blogs", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, req)
	return rec, seen
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestMiddleware_MissingHeader(t *testing.T) {
	t.Parallel()

	mw := Middleware(NewTokenAuthority("test-secret", time.Hour))
	rec, seen := authedRequest(t, mw, "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "token missing", errorBody(t, rec))
	require.Nil(t, seen, "handler must not run without a token")
}

func TestMiddleware_MalformedHeader(t *testing.T) {
	t.Parallel()

	mw := Middleware(NewTokenAuthority("test-secret", time.Hour))

	for _, header := range []string{"Basic abc", "Bearer", "Bearer ", "justatoken"} {
		rec, seen := authedRequest(t, mw, header)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		require.Equal(t, "token invalid", errorBody(t, rec), "header %q", header)
		require.Nil(t, seen)
	}
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	t.Parallel()

	expired := NewTokenAuthority("test-secret", -time.Minute)
	signed, err := expired.Sign(1, "alice")
	require.NoError(t, err)

	mw := Middleware(NewTokenAuthority("test-secret", time.Hour))
	rec, seen := authedRequest(t, mw, "Bearer "+signed)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "token expired", errorBody(t, rec))
	require.Nil(t, seen)
}

func TestMiddleware_ValidToken(t *testing.T) {
	t.Parallel()

	tokens := NewTokenAuthority("test-secret", time.Hour)
	signed, err := tokens.Sign(42, "alice")
	require.NoError(t, err)

	mw := Middleware(tokens)
	rec, seen := authedRequest(t, mw, "Bearer "+signed)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	require.Equal(t, int64(42), seen.ID)
	require.Equal(t, "alice", seen.Username)
}
