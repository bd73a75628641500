package snippet

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/snipvault/backend/pkg/access"
	"github.com/snipvault/backend/pkg/auth"
	"github.com/snipvault/backend/pkg/logging"
	"github.com/snipvault/backend/pkg/notify"
)

// UseCase is the moderation state machine plus the access-checked CRUD
// around it. Every operation consults the access policy before touching the
// repository.
type UseCase interface {
	Create(ctx context.Context, actor access.Actor, in CreateInput) (Snippet, error)
	Get(ctx context.Context, actor access.Actor, id uuid.UUID) (Snippet, error)

	ListPublic(ctx context.Context) ([]Snippet, error)
	ListMine(ctx context.Context, actor access.Actor) ([]Snippet, error)
	ListAll(ctx context.Context, actor access.Actor) ([]Snippet, error)
	ListPending(ctx context.Context, actor access.Actor) ([]Snippet, error)

	Update(ctx context.Context, actor access.Actor, id uuid.UUID, in UpdateInput) (Snippet, error)
	Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error

	Approve(ctx context.Context, actor access.Actor, id uuid.UUID) (Snippet, error)
	Reject(ctx context.Context, actor access.Actor, id uuid.UUID, reason string) (Snippet, error)
}

type service struct {
	repo   Repository
	users  auth.UserRepository
	events notify.Publisher
	logger logging.Logger
}

// NewService returns the default implementation of UseCase. The user
// repository is needed only to address moderation notifications.
func NewService(repo Repository, users auth.UserRepository, events notify.Publisher, logger logging.Logger) UseCase {
	return &service{
		repo:   repo,
		users:  users,
		events: events,
		logger: logger.With("component", "snippet"),
	}
}

func (s *service) Create(ctx context.Context, actor access.Actor, in CreateInput) (Snippet, error) {
	if err := access.Authorize(actor, access.CreateSnippet, access.Resource{}); err != nil {
		return Snippet{}, err
	}
	if err := validateCreate(in); err != nil {
		return Snippet{}, err
	}

	now := time.Now().UTC()
	sn := Snippet{
		ID:          uuid.New(),
		AuthorID:    actor.ID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Language:    in.Language,
		Code:        in.Code,
		FileName:    in.FileName,
		FilePath:    in.FilePath,
		Status:      StatusPending, // every snippet starts in moderation
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, sn); err != nil {
		s.logger.Error(ctx, "snippet create failed", "error", err.Error())
		return Snippet{}, ErrInternal
	}
	return sn, nil
}

func (s *service) Get(ctx context.Context, actor access.Actor, id uuid.UUID) (Snippet, error) {
	sn, err := s.get(ctx, id)
	if err != nil {
		return Snippet{}, err
	}
	if err := access.Authorize(actor, access.ViewSnippet, resourceOf(sn)); err != nil {
		return Snippet{}, err
	}
	return sn, nil
}

func (s *service) ListPublic(ctx context.Context) ([]Snippet, error) {
	approved := StatusApproved
	return s.list(ctx, Filter{Status: &approved})
}

func (s *service) ListMine(ctx context.Context, actor access.Actor) ([]Snippet, error) {
	if err := access.Authorize(actor, access.ListOwnSnippets, access.Resource{}); err != nil {
		return nil, err
	}
	author := actor.ID
	return s.list(ctx, Filter{AuthorID: &author})
}

func (s *service) ListAll(ctx context.Context, actor access.Actor) ([]Snippet, error) {
	if err := access.Authorize(actor, access.ListAllSnippets, access.Resource{}); err != nil {
		return nil, err
	}
	return s.list(ctx, Filter{})
}

func (s *service) ListPending(ctx context.Context, actor access.Actor) ([]Snippet, error) {
	if err := access.Authorize(actor, access.ListPendingSnippets, access.Resource{}); err != nil {
		return nil, err
	}
	pending := StatusPending
	return s.list(ctx, Filter{Status: &pending})
}

func (s *service) Update(ctx context.Context, actor access.Actor, id uuid.UUID, in UpdateInput) (Snippet, error) {
	sn, err := s.getForAuthor(ctx, actor, id, access.EditSnippet)
	if err != nil {
		return Snippet{}, err
	}

	if in.Title != nil {
		sn.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		sn.Description = *in.Description
	}
	if in.Language != nil {
		sn.Language = *in.Language
	}
	if in.Code != nil {
		sn.Code = *in.Code
	}
	if in.FileName != nil || in.FilePath != nil {
		if in.FileName == nil || in.FilePath == nil {
			return Snippet{}, ErrValidation
		}
		sn.FileName = in.FileName
		sn.FilePath = in.FilePath
	}
	sn.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, sn); err != nil {
		s.logger.Error(ctx, "snippet update failed", "id", id.String(), "error", err.Error())
		return Snippet{}, ErrInternal
	}
	return sn, nil
}

func (s *service) Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	// Deletion is author-only but unrestricted by status: approved snippets
	// can be deleted too.
	if _, err := s.getForAuthor(ctx, actor, id, access.DeleteSnippet); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error(ctx, "snippet delete failed", "id", id.String(), "error", err.Error())
		return ErrInternal
	}
	return nil
}

func (s *service) Approve(ctx context.Context, actor access.Actor, id uuid.UUID) (Snippet, error) {
	return s.moderate(ctx, actor, id, StatusApproved, "")
}

func (s *service) Reject(ctx context.Context, actor access.Actor, id uuid.UUID, reason string) (Snippet, error) {
	return s.moderate(ctx, actor, id, StatusRejected, reason)
}

// moderate applies an admin status transition. Re-moderating an
// already-decided snippet is allowed and simply re-applies the new status.
// The rejection reason travels only on the notification event; it is never
// persisted.
func (s *service) moderate(ctx context.Context, actor access.Actor, id uuid.UUID, to Status, reason string) (Snippet, error) {
	if err := access.Authorize(actor, access.ChangeSnippetStatus, access.Resource{}); err != nil {
		return Snippet{}, err
	}

	sn, err := s.get(ctx, id)
	if err != nil {
		return Snippet{}, err
	}

	sn.Status = to
	sn.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, sn); err != nil {
		s.logger.Error(ctx, "snippet status update failed", "id", id.String(), "error", err.Error())
		return Snippet{}, ErrInternal
	}

	s.notifyModeration(ctx, sn, reason)
	return sn, nil
}

func (s *service) notifyModeration(ctx context.Context, sn Snippet, reason string) {
	author, err := s.users.GetByID(ctx, sn.AuthorID)
	if err != nil {
		// The transition already happened; a missing recipient only costs
		// the notification.
		s.logger.Warn(ctx, "author lookup for notification failed",
			"snippet", sn.ID.String(), "error", err.Error())
		return
	}

	eventType := notify.EventApproved
	if sn.Status == StatusRejected {
		eventType = notify.EventRejected
	}
	s.events.Publish(notify.Event{
		Type:         eventType,
		Recipient:    author.Email,
		Name:         author.DisplayName(),
		SnippetID:    sn.ID.String(),
		SnippetTitle: sn.Title,
		Reason:       reason,
	})
}

// getForAuthor is the fetch-then-check used by edit and delete. Both a
// missing snippet and someone else's snippet come back as
// ErrNotFoundOrNotAuthor.
func (s *service) getForAuthor(ctx context.Context, actor access.Actor, id uuid.UUID, action access.Action) (Snippet, error) {
	sn, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Snippet{}, ErrNotFoundOrNotAuthor
		}
		s.logger.Error(ctx, "snippet fetch failed", "id", id.String(), "error", err.Error())
		return Snippet{}, ErrInternal
	}
	if !access.Allowed(actor, action, resourceOf(sn)) {
		return Snippet{}, ErrNotFoundOrNotAuthor
	}
	return sn, nil
}

func (s *service) get(ctx context.Context, id uuid.UUID) (Snippet, error) {
	sn, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Snippet{}, ErrNotFound
		}
		s.logger.Error(ctx, "snippet fetch failed", "id", id.String(), "error", err.Error())
		return Snippet{}, ErrInternal
	}
	return sn, nil
}

func (s *service) list(ctx context.Context, f Filter) ([]Snippet, error) {
	items, err := s.repo.List(ctx, f)
	if err != nil {
		s.logger.Error(ctx, "snippet list failed", "error", err.Error())
		return nil, ErrInternal
	}
	return items, nil
}

func resourceOf(sn Snippet) access.Resource {
	return access.Resource{AuthorID: sn.AuthorID, Approved: sn.Status == StatusApproved}
}

func validateCreate(in CreateInput) error {
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Description) == "" ||
		strings.TrimSpace(in.Language) == "" ||
		strings.TrimSpace(in.Code) == "" {
		return ErrValidation
	}
	// The file reference is a pair: a name without a path (or vice versa)
	// cannot reference anything.
	if (in.FileName == nil) != (in.FilePath == nil) {
		return ErrValidation
	}
	return nil
}
