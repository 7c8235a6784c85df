package handlers

import (
	"github.com/gofiber/fiber/v2"

	"salesapp/internal/domain"
	applog "salesapp/internal/log"
	"salesapp/internal/services"
	"salesapp/internal/validate"
)

type CustomerHandler struct {
	Customers *services.CustomerService
}

func (h *CustomerHandler) List(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	customers, err := h.Customers.List(c.UserContext(), u.Email)
	if err != nil {
		// Lookup failure renders the same empty view as "no leads yet".
		applog.Error(c, "customer.list.fail", err, nil)
		return render(c, "customer", fiber.Map{"Customers": nil})
	}
	return render(c, "customer", fiber.Map{"Customers": customers})
}

func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	name := c.FormValue("name")
	url := c.FormValue("url")
	if _, ok := validate.Name(name); !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing customer name")
	}
	// url is opaque display data; it is stored as-is and never fetched here.
	if err := h.Customers.Create(c.UserContext(), u.Email, name, url); err != nil {
		applog.Error(c, "customer.create.fail", err, map[string]any{"name": name})
		return c.JSON(fiber.Map{"error": true})
	}
	applog.Audit(c, "customer.create", map[string]any{"name": name})
	return c.Redirect("/customer")
}
