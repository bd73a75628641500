package snippet

import (
	"time"

	"github.com/google/uuid"
)

// Status is a closed enumeration of moderation states.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Snippet is a piece of submitted content. AuthorID is immutable; FileName
// and FilePath reference an externally stored artifact and are either both
// set or both unset. UpdatedAt advances on every mutation.
type Snippet struct {
	ID          uuid.UUID
	AuthorID    uuid.UUID
	Title       string
	Description string
	Language    string
	Code        string
	FileName    *string
	FilePath    *string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateInput carries the author-supplied fields of a new snippet. The file
// reference is opaque: it comes from an external upload step and is stored
// verbatim, with no validation of content or existence.
type CreateInput struct {
	Title       string
	Description string
	Language    string
	Code        string
	FileName    *string
	FilePath    *string
}

// UpdateInput carries optional replacements for content fields; nil means
// "leave unchanged".
type UpdateInput struct {
	Title       *string
	Description *string
	Language    *string
	Code        *string
	FileName    *string
	FilePath    *string
}
