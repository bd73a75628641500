package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/snipvault/backend/pkg/auth"
)

func newTestApp(t *testing.T, g *Generator) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(NewIdentifyMiddleware(g))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		actor := ActorFromCtx(c)
		if actor.IsAnonymous() {
			return c.SendString("anonymous")
		}
		return c.SendString(actor.ID.String())
	})
	return app
}

func doWhoami(t *testing.T, app *fiber.App, authHeader string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	buf := make([]byte, 128)
	n, _ := resp.Body.Read(buf)
	return resp.StatusCode, string(buf[:n])
}

func TestIdentifyMiddleware_ValidToken(t *testing.T) {
	g := NewGenerator("secret", "snippet-vault", time.Hour)
	user := testUser()
	token, err := g.Issue(context.Background(), user)
	require.NoError(t, err)

	status, body := doWhoami(t, newTestApp(t, g), "Bearer "+token)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, user.ID.String(), body)
}

func TestIdentifyMiddleware_BareTokenWithoutBearerPrefix(t *testing.T) {
	g := NewGenerator("secret", "snippet-vault", time.Hour)
	user := testUser()
	token, err := g.Issue(context.Background(), user)
	require.NoError(t, err)

	status, body := doWhoami(t, newTestApp(t, g), token)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, user.ID.String(), body)
}

func TestIdentifyMiddleware_MissingHeaderIsAnonymous(t *testing.T) {
	g := NewGenerator("secret", "snippet-vault", time.Hour)

	status, body := doWhoami(t, newTestApp(t, g), "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "anonymous", body)
}

// An invalid token is not a request failure: the caller simply stays
// anonymous and endpoints requiring authentication reject it themselves.
func TestIdentifyMiddleware_InvalidTokenIsAnonymous(t *testing.T) {
	g := NewGenerator("secret", "snippet-vault", time.Hour)
	expired := NewGenerator("secret", "snippet-vault", -time.Minute)
	token, err := expired.Issue(context.Background(), auth.User{Role: auth.RoleUser})
	require.NoError(t, err)

	for _, header := range []string{"Bearer garbage", "Bearer " + token} {
		status, body := doWhoami(t, newTestApp(t, g), header)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "anonymous", body)
	}
}
