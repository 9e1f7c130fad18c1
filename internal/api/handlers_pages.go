package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.SendString("ok")
}

// ShowRoot sends the browser to whichever page makes sense: setup before the
// account exists, dashboard once signed in, login otherwise.
func (handler *Handler) ShowRoot(c *fiber.Ctx) error {
	setupRequired, err := handler.authService.RequiresInitialSetup()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to read setup status")
	}
	if setupRequired {
		return c.Redirect("/auth/setup", fiber.StatusSeeOther)
	}
	if handler.isAuthenticated(c) {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}
	return c.Redirect("/auth/login", fiber.StatusSeeOther)
}

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	setupRequired, err := handler.authService.RequiresInitialSetup()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to read setup status")
	}
	if setupRequired {
		return c.Redirect("/auth/setup", fiber.StatusSeeOther)
	}

	return handler.render(c, "login", fiber.Map{"Title": "Sign in"})
}

func (handler *Handler) ShowSetupPage(c *fiber.Ctx) error {
	setupRequired, err := handler.authService.RequiresInitialSetup()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to read setup status")
	}
	if !setupRequired {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	return handler.render(c, "setup", fiber.Map{"Title": "First run"})
}
