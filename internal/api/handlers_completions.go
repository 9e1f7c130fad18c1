package api

import (
	"stride/internal/dates"

	"github.com/gofiber/fiber/v2"
)

const (
	completionActionAdd    = "add"
	completionActionRemove = "remove"
)

// MutateCompletion adds or removes one completion unit for a task. The body
// carries the display date the user was viewing; bucket resolution happens in
// the ledger according to the task's period.
func (handler *Handler) MutateCompletion(c *fiber.Ctx) error {
	input := completionInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	displayDate := dates.Midnight(handler.now())
	if input.Date != "" {
		parsed, err := dates.ParseKey(input.Date, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		displayDate = parsed
	}

	action := completionActionAdd
	if input.Action == completionActionRemove {
		action = completionActionRemove
	}

	var err error
	if action == completionActionAdd {
		err = handler.ledgerService.AddCompletion(input.TaskID, displayDate)
	} else {
		err = handler.ledgerService.RemoveCompletion(input.TaskID, displayDate)
	}
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// AddAdhocCompletion records an unscheduled completion with no backing task
// under today's day key.
func (handler *Handler) AddAdhocCompletion(c *fiber.Ctx) error {
	input := adhocInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	completion, err := handler.ledgerService.AddAdhoc(input.Title, handler.now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "id": completion.ID})
}
