package api

import (
	"time"

	"stride/internal/dates"
	"stride/internal/services"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowTasks(c *fiber.Ctx) error {
	viewDate := handler.resolveViewDate(c.Query("date"))
	selectedKey := dates.DayKey(viewDate)

	statuses, err := handler.scheduleService.ActiveStatusesFor(viewDate)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load tasks")
	}
	adhoc, err := handler.ledgerService.AdhocForDay(viewDate)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load completions")
	}

	return handler.render(c, "tasks", fiber.Map{
		"Title":        "Tasks & Habits",
		"SelectedDate": selectedKey,
		"Tasks":        statuses,
		"Adhoc":        adhoc,
	})
}

func (handler *Handler) CreateTask(c *fiber.Ctx) error {
	input := taskInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	task, err := handler.taskService.Create(services.TaskInput{
		Title:         input.Title,
		Mode:          input.Mode,
		Period:        input.Period,
		TargetCount:   input.TargetCount,
		ScheduledDate: input.ScheduledDate,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "id": task.ID})
}

func (handler *Handler) ReorderTasks(c *fiber.Ctx) error {
	input := reorderInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.taskService.Reorder(dropZeroIDs(input.OrderedIDs)); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DeactivateTask(c *fiber.Ctx) error {
	taskID, err := parseTaskIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid task id")
	}

	if err := handler.taskService.Deactivate(taskID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// resolveViewDate reads a day key, falling back to today when the query is
// absent or malformed.
func (handler *Handler) resolveViewDate(raw string) time.Time {
	parsed, err := dates.ParseKey(raw, handler.location)
	if err != nil {
		return dates.Midnight(handler.now())
	}
	return parsed
}
