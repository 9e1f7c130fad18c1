package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowCalories(c *fiber.Ctx) error {
	calories, err := handler.entryService.Calories()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load calories")
	}
	weights, err := handler.entryService.Weights()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load weights")
	}
	target, err := handler.settingsService.TargetCalories()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load settings")
	}
	summary, err := handler.entryService.BuildWeeklySummary(target)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build summary")
	}

	return handler.render(c, "calories", fiber.Map{
		"Title":    "Calories & Weight",
		"Calories": calories,
		"Weights":  weights,
		"Target":   target,
		"Summary":  summary,
	})
}

func (handler *Handler) SaveCalories(c *fiber.Ctx) error {
	input := calorieInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.entryService.SaveCalories(input.Date, coerceInt(input.Calories), handler.now()); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) SaveWeight(c *fiber.Ctx) error {
	input := weightInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.entryService.SaveWeight(input.Date, coerceFloat(input.Weight), handler.now()); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
