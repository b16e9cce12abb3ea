package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/user/bloglist-go/apperror"
)

func TestTokenAuthority_SignAndVerify(t *testing.T) {
	t.Parallel()

	a := NewTokenAuthority("test-secret", time.Hour)

	signed, err := a.Sign(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := a.Verify(signed)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "alice", claims.Username)
	require.True(t, claims.ExpiresAt.After(time.Now()))
	require.False(t, claims.IssuedAt.After(time.Now().Add(time.Minute)))
}

func TestTokenAuthority_VerifyMissing(t *testing.T) {
	t.Parallel()

	a := NewTokenAuthority("test-secret", time.Hour)

	_, err := a.Verify("")
	require.Error(t, err)
	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	require.Equal(t, "token missing", appErr.Message)
	require.True(t, apperror.IsAuthenticationError(err))
}

func TestTokenAuthority_VerifyInvalid(t *testing.T) {
	t.Parallel()

	a := NewTokenAuthority("test-secret", time.Hour)

	// Structurally broken token.
	_, err := a.Verify("not.a.token")
	require.Error(t, err)
	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	require.Equal(t, "token invalid", appErr.Message)

	// Signed with a different secret.
	other := NewTokenAuthority("other-secret", time.Hour)
	signed, err := other.Sign(1, "mallory")
	require.NoError(t, err)

	_, err = a.Verify(signed)
	require.Error(t, err)
	appErr, ok = apperror.FromError(err)
	require.True(t, ok)
	require.Equal(t, "token invalid", appErr.Message)
}

func TestTokenAuthority_VerifyExpired(t *testing.T) {
	t.Parallel()

	// A negative TTL mints a token that is already past its expiry.
	a := NewTokenAuthority("test-secret", -time.Minute)
	signed, err := a.Sign(7, "bob")
	require.NoError(t, err)

	_, err = a.Verify(signed)
	require.Error(t, err)
	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	require.Equal(t, "token expired", appErr.Message)
	require.True(t, apperror.IsAuthenticationError(err))
}
