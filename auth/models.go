// Package auth handles account registration, login, bearer-token issuing and
// verification, and the middleware that authenticates protected requests.
package auth

import "time"

// User represents a registered account as stored and as returned by the API.
// The password hash is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the authenticated caller resolved from a verified token.
type Identity struct {
	ID       int64
	Username string
}
