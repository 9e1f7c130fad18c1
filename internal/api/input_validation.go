package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type taskInput struct {
	Title         string `json:"title" form:"title"`
	Mode          string `json:"mode" form:"mode"`
	Period        string `json:"period" form:"period"`
	TargetCount   int    `json:"targetCount" form:"targetCount"`
	ScheduledDate string `json:"scheduledDate" form:"scheduledDate"`
}

type reorderInput struct {
	OrderedIDs []uint `json:"orderedIds"`
}

type completionInput struct {
	TaskID uint   `json:"taskId"`
	Action string `json:"action"`
	Date   string `json:"date"`
}

type adhocInput struct {
	Title string `json:"title" form:"title"`
}

type calorieInput struct {
	Date     string `json:"date" form:"date"`
	Calories any    `json:"calories" form:"calories"`
}

type weightInput struct {
	Date   string `json:"date" form:"date"`
	Weight any    `json:"weight" form:"weight"`
}

type diaryInput struct {
	Date    string `json:"date" form:"date"`
	Content string `json:"content" form:"content"`
}

type settingsInput struct {
	TargetCalories any `json:"targetCalories" form:"targetCalories"`
}

type credentialsInput struct {
	Password string `json:"password" form:"password"`
}

// coerceInt applies a loose numeric cast: malformed values become zero, they
// are never rejected.
func coerceInt(value any) int {
	switch typed := value.(type) {
	case float64:
		return int(typed)
	case int:
		return typed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0
		}
		return int(parsed)
	default:
		return 0
	}
}

func coerceFloat(value any) float64 {
	switch typed := value.(type) {
	case float64:
		return typed
	case int:
		return float64(typed)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

// dropZeroIDs filters out ids that could not have been assigned to a task.
func dropZeroIDs(ids []uint) []uint {
	filtered := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id != 0 {
			filtered = append(filtered, id)
		}
	}
	return filtered
}

func parseTaskIDParam(c *fiber.Ctx) (uint, error) {
	parsed, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(parsed), nil
}
