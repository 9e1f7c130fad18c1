package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowSettings(c *fiber.Ctx) error {
	target, err := handler.settingsService.TargetCalories()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load settings")
	}

	return handler.render(c, "settings", fiber.Map{
		"Title":  "Settings",
		"Target": target,
	})
}

func (handler *Handler) SaveSettings(c *fiber.Ctx) error {
	input := settingsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.settingsService.SetTargetCalories(coerceInt(input.TargetCalories)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save settings")
	}
	return c.JSON(fiber.Map{"ok": true})
}
