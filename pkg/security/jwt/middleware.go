package jwt

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/snipvault/backend/pkg/access"
)

const actorKey = "actor"

// NewIdentifyMiddleware returns a Fiber middleware that resolves the caller
// into an access.Actor from a Bearer JWT. A missing or invalid token makes
// the caller anonymous instead of failing the request; endpoints that
// require authentication enforce that themselves.
func NewIdentifyMiddleware(verifier *Generator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := access.Anonymous()

		if tokenStr := bearerToken(c.Get("Authorization")); tokenStr != "" {
			if identity, err := verifier.Verify(c.Context(), tokenStr); err == nil {
				actor = access.Actor{ID: identity.UserID, Role: identity.Role}
			}
		}

		c.Locals(actorKey, actor)
		return c.Next()
	}
}

// ActorFromCtx returns the actor resolved by the identify middleware, or the
// anonymous actor when the middleware did not run.
func ActorFromCtx(c *fiber.Ctx) access.Actor {
	if actor, ok := c.Locals(actorKey).(access.Actor); ok {
		return actor
	}
	return access.Anonymous()
}

// bearerToken accepts both "Bearer <token>" and a bare "<token>" header.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}
