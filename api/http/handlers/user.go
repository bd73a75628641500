package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/snipvault/backend/api/http/presenter"
	"github.com/snipvault/backend/pkg/auth"
	securityjwt "github.com/snipvault/backend/pkg/security/jwt"
)

type UserHandler struct {
	useCase auth.UseCase
}

func NewUserHandler(useCase auth.UseCase) *UserHandler {
	return &UserHandler{useCase: useCase}
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u auth.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// Me returns the authenticated caller's own profile.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	actor := securityjwt.ActorFromCtx(c)
	if actor.IsAnonymous() {
		return presenter.FromError(c, auth.ErrNotAuthenticated)
	}

	user, err := h.useCase.GetByID(c.Context(), actor.ID)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toUserResponse(user))
}
