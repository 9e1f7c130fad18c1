package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowDiary(c *fiber.Ctx) error {
	entries, err := handler.entryService.DiaryEntries()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load diary")
	}

	return handler.render(c, "diary", fiber.Map{
		"Title":   "Diary",
		"Entries": entries,
	})
}

func (handler *Handler) SaveDiary(c *fiber.Ctx) error {
	input := diaryInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.entryService.SaveDiary(input.Date, input.Content, handler.now()); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
