package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	if !handler.validateSessionToken(c.Cookies(sessionCookieName)) {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	return c.Next()
}

func (handler *Handler) isAuthenticated(c *fiber.Ctx) bool {
	return handler.validateSessionToken(c.Cookies(sessionCookieName))
}
