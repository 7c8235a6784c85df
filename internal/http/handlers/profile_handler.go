package handlers

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"salesapp/internal/domain"
	applog "salesapp/internal/log"
	"salesapp/internal/services"
)

type ProfileHandler struct {
	Profile *services.ProfileService
	PDFDir  string
}

func (h *ProfileHandler) UpdateForm(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	remarks, err := h.Profile.Remarks(c.UserContext(), u.Email)
	if err != nil {
		applog.Error(c, "profile.remarks.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("Unable to load profile")
	}
	return render(c, "update", fiber.Map{"Remarks": remarks})
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	remarks := c.FormValue("remarks")
	if remarks == "" {
		// Empty submission leaves the profile untouched.
		return render(c, "home", nil)
	}
	if err := h.Profile.UpdateRemarks(c.UserContext(), u.Email, remarks); err != nil {
		applog.Error(c, "profile.update.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("Unable to update user")
	}
	applog.Audit(c, "profile.update", nil)
	return render(c, "home", nil)
}

// GenPDF writes the caller's profile PDF into the export directory and
// serves it back.
func (h *ProfileHandler) GenPDF(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	name, err := h.Profile.ExportPDF(c.UserContext(), u.Email)
	if err != nil {
		applog.Error(c, "profile.pdf.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("Unable to generate PDF")
	}
	applog.Audit(c, "profile.pdf", map[string]any{"file": name})
	return c.SendFile(filepath.Join(h.PDFDir, name))
}
