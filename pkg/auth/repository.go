package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserRepository abstracts persistence concerns from the domain layer.
// Implementations may be in-memory, SQL, NoSQL, etc.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)

	// SetResetToken stores a pending reset token and its expiry on the user,
	// overwriting any previous pair (last writer wins).
	SetResetToken(ctx context.Context, id uuid.UUID, token string, expiry time.Time) error

	// ConsumeResetToken atomically sets the password hash and clears the
	// token/expiry pair for the user whose unexpired reset token matches.
	// It returns ErrInvalidResetToken when no such user exists, so a second
	// attempt with an already-consumed token deterministically fails.
	ConsumeResetToken(ctx context.Context, token string, passwordHash string) error
}
