package auth

import (
	"errors"
	"fmt"
)

// Token and credential errors. Every token failure wraps ErrInvalidToken so
// callers that only care whether a token is usable can check that one value.
var (
	// ErrInvalidToken indicates the token cannot be used for authentication.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrMalformedToken indicates the token is not a well-formed JWT.
	ErrMalformedToken = fmt.Errorf("%w: malformed", ErrInvalidToken)

	// ErrInvalidSignature indicates the token was not signed with our secret.
	ErrInvalidSignature = fmt.Errorf("%w: signature mismatch", ErrInvalidToken)

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = fmt.Errorf("%w: expired", ErrInvalidToken)

	// ErrTokenNotYetValid indicates the token is not yet valid (iat/nbf in the future).
	ErrTokenNotYetValid = fmt.Errorf("%w: not yet valid", ErrInvalidToken)

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidCredentials indicates the supplied password does not match.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
