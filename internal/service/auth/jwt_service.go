package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed token whose subject is the username.
	GenerateToken(ctx context.Context, username string) (string, error)

	// ValidateToken checks signature and time claims and returns the claims
	// of a usable token. Failures satisfy errors.Is(err, ErrInvalidToken).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims are the token fields the rest of the application reads.
type Claims struct {
	// Username is the subject the token was issued for.
	Username  string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
