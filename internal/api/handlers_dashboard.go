package api

import (
	"github.com/gofiber/fiber/v2"
)

const trendWindowDays = 7

func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	today := handler.now()

	completed, expected, percent, err := handler.scheduleService.DailyProgress(today)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load progress")
	}

	trend, err := handler.scheduleService.Trend(today, trendWindowDays)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load trend")
	}

	return handler.render(c, "dashboard", fiber.Map{
		"Title":     "Dashboard",
		"Percent":   percent,
		"Completed": completed,
		"Expected":  expected,
		"Trend":     trend,
	})
}
