package auth

import "errors"

// Stable error kinds the transport layer maps to user-facing responses.
// Several deliberately merge distinguishable internal causes: login reports
// the same error for an unknown email and a wrong password, and a password
// reset looks identical whether the token never existed, expired, or was
// already consumed. Collapsing them is a security control, not an oversight.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrNotAuthenticated   = errors.New("not authenticated")

	// ErrInvalidToken covers every identity-token failure: malformed,
	// unsigned, expired, or tampered. Verification fails closed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInternal is what callers see in place of raw storage errors; the
	// detail is logged, never returned.
	ErrInternal = errors.New("internal error")
)
