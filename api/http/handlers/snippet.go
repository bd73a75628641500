package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/snipvault/backend/api/http/presenter"
	securityjwt "github.com/snipvault/backend/pkg/security/jwt"
	"github.com/snipvault/backend/pkg/snippet"
)

type SnippetHandler struct {
	useCase snippet.UseCase
}

func NewSnippetHandler(useCase snippet.UseCase) *SnippetHandler {
	return &SnippetHandler{useCase: useCase}
}

type snippetResponse struct {
	ID          string    `json:"id"`
	AuthorID    string    `json:"authorId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	Code        string    `json:"code"`
	FileName    *string   `json:"fileName,omitempty"`
	FilePath    *string   `json:"filePath,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toSnippetResponse(s snippet.Snippet) snippetResponse {
	return snippetResponse{
		ID:          s.ID.String(),
		AuthorID:    s.AuthorID.String(),
		Title:       s.Title,
		Description: s.Description,
		Language:    s.Language,
		Code:        s.Code,
		FileName:    s.FileName,
		FilePath:    s.FilePath,
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toSnippetList(items []snippet.Snippet) []snippetResponse {
	out := make([]snippetResponse, 0, len(items))
	for _, s := range items {
		out = append(out, toSnippetResponse(s))
	}
	return out
}

// ListPublic returns all approved snippets, newest first. No authentication
// required.
func (h *SnippetHandler) ListPublic(c *fiber.Ctx) error {
	items, err := h.useCase.ListPublic(c.Context())
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toSnippetList(items))
}

// Get returns one snippet by id, subject to the view policy.
func (h *SnippetHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid snippet id")
	}

	s, err := h.useCase.Get(c.Context(), securityjwt.ActorFromCtx(c), id)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toSnippetResponse(s))
}

// ListMine returns the caller's own snippets, any status.
func (h *SnippetHandler) ListMine(c *fiber.Ctx) error {
	items, err := h.useCase.ListMine(c.Context(), securityjwt.ActorFromCtx(c))
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toSnippetList(items))
}

// ListAll returns every snippet regardless of status. Admin only.
func (h *SnippetHandler) ListAll(c *fiber.Ctx) error {
	items, err := h.useCase.ListAll(c.Context(), securityjwt.ActorFromCtx(c))
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toSnippetList(items))
}

// ListPending returns snippets awaiting moderation. Admin only.
func (h *SnippetHandler) ListPending(c *fiber.Ctx) error {
	items, err := h.useCase.ListPending(c.Context(), securityjwt.ActorFromCtx(c))
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toSnippetList(items))
}

type createSnippetRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Language    string  `json:"language"`
	Code        string  `json:"code"`
	FileName    *string `json:"fileName"`
	FilePath    *string `json:"filePath"`
}

// Create submits a new snippet for moderation.
func (h *SnippetHandler) Create(c *fiber.Ctx) error {
	var req createSnippetRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	s, err := h.useCase.Create(c.Context(), securityjwt.ActorFromCtx(c), snippet.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Language:    req.Language,
		Code:        req.Code,
		FileName:    req.FileName,
		FilePath:    req.FilePath,
	})
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, toSnippetResponse(s))
}

type updateSnippetRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Language    *string `json:"language"`
	Code        *string `json:"code"`
	FileName    *string `json:"fileName"`
	FilePath    *string `json:"filePath"`
}

// Update edits a snippet's content fields. Author only.
func (h *SnippetHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid snippet id")
	}
	var req updateSnippetRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	s, err := h.useCase.Update(c.Context(), securityjwt.ActorFromCtx(c), id, snippet.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Language:    req.Language,
		Code:        req.Code,
		FileName:    req.FileName,
		FilePath:    req.FilePath,
	})
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toSnippetResponse(s))
}

// Delete removes a snippet. Author only, any status.
func (h *SnippetHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid snippet id")
	}

	if err := h.useCase.Delete(c.Context(), securityjwt.ActorFromCtx(c), id); err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"ok": true})
}

// Approve moves a snippet to APPROVED. Admin only.
func (h *SnippetHandler) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid snippet id")
	}

	s, err := h.useCase.Approve(c.Context(), securityjwt.ActorFromCtx(c), id)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toSnippetResponse(s))
}

type rejectSnippetRequest struct {
	Reason string `json:"reason"`
}

// Reject moves a snippet to REJECTED. Admin only; the optional reason goes
// only to the author's notification.
func (h *SnippetHandler) Reject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid snippet id")
	}
	var req rejectSnippetRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	s, err := h.useCase.Reject(c.Context(), securityjwt.ActorFromCtx(c), id, req.Reason)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, toSnippetResponse(s))
}
