package domain

import "time"

// RefreshToken is the server-side record of an opaque refresh
// credential. Only the SHA-256 hash of the token string is stored; the
// raw token is returned to the client once at issuance.
type RefreshToken struct {
	TokenHash string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}
