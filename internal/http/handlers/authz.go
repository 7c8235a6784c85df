package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "salesapp/internal/log"
	"salesapp/internal/services"
	"salesapp/internal/session"
)

// RequireUser gates every protected route. Anonymous callers, and callers
// with an unverifiable cookie, are redirected to the login view rather than
// given a structured error.
func RequireUser(auth *services.AuthService, tokens *session.Signer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cookie := c.Cookies("sid")
		if cookie == "" {
			return c.Redirect("/")
		}
		sid, err := tokens.Parse(cookie)
		if err != nil {
			applog.Security(c, "session.token.invalid", nil)
			return c.Redirect("/")
		}
		u, err := auth.CurrentUser(c.UserContext(), sid)
		if err != nil || u == nil {
			return c.Redirect("/")
		}
		c.Locals("user", u)
		c.Locals("sid", sid)
		return c.Next()
	}
}
