package auth

import (
	"net/http"
	"strings"

	"github.com/user/bloglist-go/apperror"
)

// Middleware authenticates requests from the Authorization header. An absent
// header is "token missing"; a non-Bearer scheme or a failed verification is
// "token invalid" (or "token expired"). On success the caller's identity is
// stored in the request context for the handlers downstream.
func Middleware(tokens *TokenAuthority) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, apperror.NewAuthenticationError("token missing", nil))
				return
			}

			scheme, tokenString, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "bearer") || tokenString == "" {
				WriteError(w, r, apperror.NewAuthenticationError("token invalid", nil))
				return
			}

			claims, err := tokens.Verify(tokenString)
			if err != nil {
				WriteError(w, r, err)
				return
			}

			identity := Identity{ID: claims.UserID, Username: claims.Username}
			next.ServeHTTP(w, r.WithContext(NewContextWithIdentity(r.Context(), identity)))
		})
	}
}
