package snippet

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("snippet not found")

	// ErrNotFoundOrNotAuthor merges "does not exist" and "not yours" on
	// edit/delete so callers cannot probe for other users' content.
	ErrNotFoundOrNotAuthor = errors.New("snippet not found or not authorized")

	ErrValidation = errors.New("invalid snippet input")

	ErrInternal = errors.New("internal error")
)

// Filter narrows List results; nil fields mean "any".
type Filter struct {
	Status   *Status
	AuthorID *uuid.UUID
}

// Repository abstracts snippet persistence. List returns newest first.
type Repository interface {
	Create(ctx context.Context, s Snippet) error
	GetByID(ctx context.Context, id uuid.UUID) (Snippet, error)
	Update(ctx context.Context, s Snippet) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f Filter) ([]Snippet, error)
}
