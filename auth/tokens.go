package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/user/bloglist-go/apperror"
)

// Claims is the JWT payload for issued bearer tokens. RegisteredClaims
// carries the issue and expiry timestamps.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenAuthority signs and verifies bearer tokens. It is stateless: a signed
// token stays valid until its expiry, there is no revocation list.
type TokenAuthority struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenAuthority constructs a token authority with the process-wide
// signing secret and the time-to-live applied to every token it mints.
func NewTokenAuthority(secret string, ttl time.Duration) *TokenAuthority {
	return &TokenAuthority{secret: []byte(secret), ttl: ttl}
}

// Sign mints an HS256 token bound to the given identity.
func (a *TokenAuthority) Sign(userID int64, username string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", apperror.NewInternalError("failed to sign token", err)
	}
	return signed, nil
}

// Verify validates a token string and returns its claims. Failures map to
// the token error taxonomy: "token missing" for an empty token, "token
// expired" past the expiry, and "token invalid" for every structural or
// signature problem.
func (a *TokenAuthority) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, apperror.NewAuthenticationError("token missing", nil)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperror.NewAuthenticationError("token expired", err)
		}
		return nil, apperror.NewAuthenticationError("token invalid", err)
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, apperror.NewAuthenticationError("token invalid", nil)
	}
	return claims, nil
}
