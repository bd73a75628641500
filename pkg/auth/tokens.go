package auth

import (
	"context"

	"github.com/google/uuid"
)

// Identity is what a verified identity token asserts about its bearer.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}

// TokenIssuer abstracts identity-token creation and verification (e.g. JWT).
// It allows use cases to stay framework-agnostic.
type TokenIssuer interface {
	Issue(ctx context.Context, user User) (string, error)

	// Verify fails closed: any malformed, unsigned, expired, or tampered
	// token yields ErrInvalidToken, never a partially-trusted identity.
	Verify(ctx context.Context, token string) (Identity, error)
}
