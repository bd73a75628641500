package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/snipvault/backend/api/http/handlers"
)

// Register wires all HTTP routes onto the given Fiber app. The identify
// middleware resolves the caller into an actor (or anonymous) for every
// route; authorization happens inside the use cases.
func Register(app *fiber.App, identify fiber.Handler,
	auth *handlers.AuthHandler, user *handlers.UserHandler,
	snip *handlers.SnippetHandler, health *handlers.HealthHandler) {

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	v1.Use(identify)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)
	a.Post("/forgot-password", auth.ForgotPassword)
	a.Post("/reset-password", auth.ResetPassword)

	v1.Get("/me", user.Me)

	s := v1.Group("/snippets")
	s.Get("/", snip.ListPublic)
	s.Get("/mine", snip.ListMine)
	s.Get("/all", snip.ListAll)
	s.Get("/pending", snip.ListPending)
	s.Post("/", snip.Create)
	s.Get("/:id", snip.Get)
	s.Put("/:id", snip.Update)
	s.Delete("/:id", snip.Delete)
	s.Post("/:id/approve", snip.Approve)
	s.Post("/:id/reject", snip.Reject)
}
