package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"salesapp/internal/config"
	"salesapp/internal/http/handlers"
	"salesapp/internal/kvstore"
	applog "salesapp/internal/log"
	"salesapp/internal/pdf"
	"salesapp/internal/repos"
	"salesapp/internal/services"
	"salesapp/internal/session"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	// Store selection: relational by default, key-value when configured.
	var (
		users     services.UserStore
		customers services.CustomerStore
	)
	switch cfg.Store {
	case "redis":
		kv := kvstore.New(cfg.RedisAddr, os.Getenv("REDIS_PASSWORD"), 0)
		if err := kv.Ping(context.Background()); err != nil {
			log.Fatalf("redis: %v", err)
		}
		users = kvstore.NewUserStore(kv)
		customers = kvstore.NewCustomerStore(kv)
	default:
		db, err := repos.OpenDB(cfg.DBDSN)
		if err != nil {
			log.Fatal(err)
		}
		users = repos.NewUserRepo(db)
		customers = repos.NewCustomerRepo(db)
	}

	// Auth wiring
	tokens := session.NewSigner(cfg.SessionSecret)
	authSvc := &services.AuthService{Users: users}

	// Templates & app
	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals; best-effort render
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Attach user to context if logged in (for templates/headers)
	app.Use(func(c *fiber.Ctx) error {
		if cookie := c.Cookies("sid"); cookie != "" {
			if sid, err := tokens.Parse(cookie); err == nil {
				if u, err := authSvc.CurrentUser(c.UserContext(), sid); err == nil && u != nil {
					c.Locals("user", u)
				}
			}
		}
		return c.Next()
	})
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", map[string]any{"form": c.FormValue("csrf")})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	// Generated PDFs land under cfg.PDFDir, which lives inside web/static by
	// default so exports stay web-servable.
	app.Static("/static", "./web/static")

	// ---------- App handlers ----------
	deps := handlers.NewDeps(cfg, users, customers, authSvc, tokens, pdf.WKEngine{})
	authH := deps.AuthHandler
	gate := handlers.RequireUser(authSvc, tokens)

	// Login (throttled) & signup
	app.Get("/", authH.LoginForm)
	app.Post("/", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("index", fiber.Map{"Err": "Too many attempts. Please try again later.", "CSRFToken": c.Cookies("csrf_")})
		},
	}), authH.Login)
	app.Get("/signup", authH.SignupForm)
	app.Post("/signup", authH.Signup)
	app.Post("/logout", authH.Logout)

	// Gated pages
	app.Get("/home", gate, handlers.Home)
	app.Get("/customer", gate, deps.CustomerHandler.List)
	app.Post("/customer", gate, deps.CustomerHandler.Create)
	app.Get("/update", gate, deps.ProfileHandler.UpdateForm)
	app.Post("/update", gate, deps.ProfileHandler.Update)
	app.Get("/genpdf", gate, deps.ProfileHandler.GenPDF)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
