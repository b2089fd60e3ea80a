// Package identity wraps the external identity provider: bearer tokens
// come in, verified claim sets come out. Token issuance and login flows
// belong to the provider; this package only checks what it signed.
package identity

import (
	"context"
	"errors"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims is the verified claim set of a bearer token.
type Claims struct {
	Subject   string
	Email     string
	Name      string
	ExpiresAt int64
}

// Verifier checks a bearer token and returns its claims. Failures are
// classified as ErrTokenExpired or ErrTokenInvalid.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}
