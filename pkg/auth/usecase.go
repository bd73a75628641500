package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/snipvault/backend/pkg/logging"
	"github.com/snipvault/backend/pkg/notify"
)

// UseCase describes registration, authentication and the password-reset flow.
type UseCase interface {
	Register(ctx context.Context, email, password string) (Result, error)
	Login(ctx context.Context, email, password string) (Result, error)

	// RequestPasswordReset succeeds silently for unknown emails so callers
	// cannot probe which accounts exist.
	RequestPasswordReset(ctx context.Context, email string) error

	// FulfillPasswordReset consumes a reset token exactly once.
	FulfillPasswordReset(ctx context.Context, token, newPassword string) error

	// GetByID returns the user behind an authenticated actor ("me").
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
}

// Result is returned after login/register: the user plus a bearer token for
// immediate use.
type Result struct {
	User  User
	Token string
}

type service struct {
	repo   UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
	events notify.Publisher
	logger logging.Logger
}

// NewService returns the default implementation of UseCase.
func NewService(repo UserRepository, hasher PasswordHasher, tokens TokenIssuer, events notify.Publisher, logger logging.Logger) UseCase {
	return &service{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		events: events,
		logger: logger.With("component", "auth"),
	}
}

func (s *service) Register(ctx context.Context, email, password string) (Result, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Result{}, ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err.Error())
		return Result{}, ErrInternal
	}

	user := User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Role:         RoleUser,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return Result{}, ErrDuplicateEmail
		}
		s.logger.Error(ctx, "user create failed", "error", err.Error())
		return Result{}, ErrInternal
	}

	token, err := s.tokens.Issue(ctx, user)
	if err != nil {
		s.logger.Error(ctx, "token issue failed", "error", err.Error())
		return Result{}, ErrInternal
	}

	s.events.Publish(notify.Event{
		Type:      notify.EventWelcome,
		Recipient: user.Email,
		Name:      user.DisplayName(),
	})

	return Result{User: user, Token: token}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (Result, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Same error as a wrong password: do not leak account existence.
			return Result{}, ErrInvalidCredentials
		}
		s.logger.Error(ctx, "user lookup failed", "error", err.Error())
		return Result{}, ErrInternal
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		s.logger.Error(ctx, "stored digest unreadable", "user", user.ID.String(), "error", err.Error())
		return Result{}, ErrInternal
	}
	if !ok {
		return Result{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, user)
	if err != nil {
		s.logger.Error(ctx, "token issue failed", "error", err.Error())
		return Result{}, ErrInternal
	}

	return Result{User: user, Token: token}, nil
}

func (s *service) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Anti-enumeration: indistinguishable from the success path.
			return nil
		}
		s.logger.Error(ctx, "user lookup failed", "error", err.Error())
		return ErrInternal
	}

	token, expiry, err := NewResetToken()
	if err != nil {
		s.logger.Error(ctx, "reset token generation failed", "error", err.Error())
		return ErrInternal
	}

	// Overwrites any pending token: last writer wins, older tokens die here.
	if err := s.repo.SetResetToken(ctx, user.ID, token, expiry); err != nil {
		s.logger.Error(ctx, "reset token store failed", "user", user.ID.String(), "error", err.Error())
		return ErrInternal
	}

	s.events.Publish(notify.Event{
		Type:       notify.EventReset,
		Recipient:  user.Email,
		Name:       user.DisplayName(),
		ResetToken: token,
	})

	return nil
}

func (s *service) FulfillPasswordReset(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return ErrInvalidResetToken
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err.Error())
		return ErrInternal
	}

	err = s.repo.ConsumeResetToken(ctx, token, hash)
	if err != nil {
		if errors.Is(err, ErrInvalidResetToken) {
			return ErrInvalidResetToken
		}
		s.logger.Error(ctx, "reset token consume failed", "error", err.Error())
		return ErrInternal
	}

	return nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		s.logger.Error(ctx, "user lookup failed", "error", err.Error())
		return User{}, ErrInternal
	}
	return user, nil
}
