package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"salesapp/internal/domain"
	applog "salesapp/internal/log"
	"salesapp/internal/services"
	"salesapp/internal/session"
	"salesapp/internal/validate"
)

type AuthHandler struct {
	Auth   *services.AuthService
	Tokens *session.Signer
}

// ensureSID returns the session id from a verified cookie, minting and
// setting a fresh signed cookie when there is none.
func (h *AuthHandler) ensureSID(c *fiber.Ctx) string {
	if cookie := c.Cookies("sid"); cookie != "" {
		if sid, err := h.Tokens.Parse(cookie); err == nil {
			return sid
		}
	}
	sid := uuid.NewString()
	tok, err := h.Tokens.Mint(sid)
	if err != nil {
		// Signing only fails on a broken secret; treat as anonymous.
		applog.Error(c, "session.token.mint.fail", err, nil)
		return sid
	}
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    tok,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
	})
	return sid
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "index", nil)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok || !validate.Password(pass) {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Redirect("/")
	}

	_, err := h.Auth.Login(c.UserContext(), sid, email, pass)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Redirect("/")
	}

	applog.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/home")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if cookie := c.Cookies("sid"); cookie != "" {
		if sid, err := h.Tokens.Parse(cookie); err == nil {
			_ = h.Auth.Logout(c.UserContext(), sid)
		}
	}
	// Expire cookie
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", nil)
	return c.Redirect("/")
}

func (h *AuthHandler) SignupForm(c *fiber.Ctx) error {
	return render(c, "signup", nil)
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if email == "" || pass == "" {
		return c.Redirect("/")
	}
	if _, ok := validate.Email(email); !ok {
		return render(c, "signup", fiber.Map{"Err": "Please enter a valid email address"})
	}

	err := h.Auth.Signup(c.UserContext(), email, pass,
		c.FormValue("first_name"), c.FormValue("last_name"), c.FormValue("remarks"))
	if errors.Is(err, domain.ErrDuplicateEmail) {
		applog.Security(c, "auth.signup.duplicate", map[string]any{"email": email})
		c.Status(fiber.StatusConflict)
		return render(c, "signup", fiber.Map{"Err": "That email is already registered"})
	}
	if err != nil {
		applog.Error(c, "auth.signup.fail", err, map[string]any{"email": email})
		return c.Status(fiber.StatusInternalServerError).SendString("Unable to create user")
	}

	applog.Audit(c, "auth.signup.success", map[string]any{"email": email})
	return c.Redirect("/")
}
