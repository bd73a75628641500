package presenter

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/snipvault/backend/pkg/access"
	"github.com/snipvault/backend/pkg/auth"
	"github.com/snipvault/backend/pkg/snippet"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// FromError maps a core error kind onto a status code and user-facing
// message. Anything unrecognized is an internal failure and surfaces only a
// generic message; the detail was already logged inside the core.
func FromError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrDuplicateEmail):
		return Error(c, http.StatusConflict, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		return Error(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, auth.ErrInvalidResetToken):
		return Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrNotAuthenticated):
		return Error(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, auth.ErrNotFound):
		return Error(c, http.StatusNotFound, "user not found")
	case errors.Is(err, access.ErrDenied):
		return Error(c, http.StatusForbidden, err.Error())
	case errors.Is(err, snippet.ErrNotFound):
		return Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, snippet.ErrNotFoundOrNotAuthor):
		return Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, snippet.ErrValidation):
		return Error(c, http.StatusBadRequest, err.Error())
	default:
		return Error(c, http.StatusInternalServerError, "internal server error")
	}
}
