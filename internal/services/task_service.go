package services

import (
	"strings"
	"time"

	"stride/internal/dates"
	"stride/internal/models"
)

type TaskWriteRepository interface {
	Create(task *models.Task) error
	MaxSortOrder() (int, error)
	UpdateSortOrders(orderedIDs []uint) error
	Deactivate(taskID uint) (bool, error)
}

// TaskInput carries the raw task-creation form values before normalization.
type TaskInput struct {
	Title         string
	Mode          string
	Period        string
	TargetCount   int
	ScheduledDate string
}

type TaskService struct {
	tasks    TaskWriteRepository
	location *time.Location
}

func NewTaskService(tasks TaskWriteRepository, location *time.Location) *TaskService {
	if location == nil {
		location = time.Local
	}
	return &TaskService{tasks: tasks, location: location}
}

// Create validates and normalizes the input, then appends the task at the end
// of the display order (max rank + 1).
//
// Normalization follows the form contract: any mode other than "one-time"
// means recurring, any period other than "week" means day, target counts
// below 1 become 1. One-time tasks are forced to day period and must carry a
// valid scheduled day key.
func (service *TaskService) Create(input TaskInput) (models.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return models.Task{}, ErrEmptyTitle
	}

	oneTime := input.Mode == models.TaskModeOneTime
	period := models.PeriodDay
	if !oneTime && input.Period == models.PeriodWeek {
		period = models.PeriodWeek
	}

	targetCount := input.TargetCount
	if targetCount < 1 {
		targetCount = 1
	}

	var scheduledDate *string
	if oneTime {
		scheduled := strings.TrimSpace(input.ScheduledDate)
		if scheduled == "" {
			return models.Task{}, ErrMissingScheduledDate
		}
		if _, err := dates.ParseKey(scheduled, service.location); err != nil {
			return models.Task{}, ErrInvalidDate
		}
		scheduledDate = &scheduled
	}

	maxSort, err := service.tasks.MaxSortOrder()
	if err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		Title:         title,
		Period:        period,
		TargetCount:   targetCount,
		Active:        true,
		SortOrder:     maxSort + 1,
		ScheduledDate: scheduledDate,
	}
	if err := service.tasks.Create(&task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// Reorder persists a drag-and-drop ordering: rank = position + 1 for each id,
// applied all-or-nothing. An empty list is rejected; ids that reference no
// task are silently ignored so a stale client list cannot fail the whole
// batch.
func (service *TaskService) Reorder(orderedIDs []uint) error {
	if len(orderedIDs) == 0 {
		return ErrEmptyReorder
	}
	return service.tasks.UpdateSortOrders(orderedIDs)
}

// Deactivate soft-deletes a task. The row stays behind its completions.
func (service *TaskService) Deactivate(taskID uint) error {
	found, err := service.tasks.Deactivate(taskID)
	if err != nil {
		return err
	}
	if !found {
		return ErrTaskNotFound
	}
	return nil
}
