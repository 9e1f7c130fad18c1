package services

import (
	"strings"
	"time"

	"stride/internal/dates"
	"stride/internal/models"
)

type LedgerTaskReader interface {
	FindByID(taskID uint) (models.Task, bool, error)
}

type LedgerCompletionRepository interface {
	Insert(completion *models.Completion) error
	DeleteMostRecent(taskID uint, bucketDate string) (bool, error)
	ListAdhocForDate(dayKey string) ([]models.Completion, error)
}

// LedgerService appends and removes completion rows. Callers hand it the
// display date the user was looking at; the ledger converts that to the
// task's bucket key before touching storage, so weekly tasks never get a raw
// mid-week date as their key.
type LedgerService struct {
	tasks       LedgerTaskReader
	completions LedgerCompletionRepository
}

func NewLedgerService(tasks LedgerTaskReader, completions LedgerCompletionRepository) *LedgerService {
	return &LedgerService{tasks: tasks, completions: completions}
}

// AddCompletion records one completion unit for the task's bucket containing
// displayDate. There is no upper bound: over-completing past the target is
// allowed and simply displayed as done.
func (service *LedgerService) AddCompletion(taskID uint, displayDate time.Time) error {
	task, found, err := service.tasks.FindByID(taskID)
	if err != nil {
		return err
	}
	if !found {
		return ErrTaskNotFound
	}

	completion := models.Completion{
		TaskID: &task.ID,
		Date:   BucketKey(task, displayDate),
	}
	return service.completions.Insert(&completion)
}

// RemoveCompletion deletes the most recently recorded completion in the
// task's bucket, last-in-first-out. Removing at a count of zero is a no-op,
// never an error, so the count cannot go negative.
func (service *LedgerService) RemoveCompletion(taskID uint, displayDate time.Time) error {
	task, found, err := service.tasks.FindByID(taskID)
	if err != nil {
		return err
	}
	if !found {
		return ErrTaskNotFound
	}

	_, err = service.completions.DeleteMostRecent(task.ID, BucketKey(task, displayDate))
	return err
}

// AddAdhoc records an unscheduled completion with no backing task, labeled by
// a snapshot of the given title and bucketed under now's day key.
func (service *LedgerService) AddAdhoc(title string, now time.Time) (models.Completion, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return models.Completion{}, ErrEmptyTitle
	}

	completion := models.Completion{
		TitleSnapshot: &trimmed,
		Date:          dates.DayKey(now),
	}
	if err := service.completions.Insert(&completion); err != nil {
		return models.Completion{}, err
	}
	return completion, nil
}

// AdhocForDay lists the unscheduled completions recorded on viewDate's day.
func (service *LedgerService) AdhocForDay(viewDate time.Time) ([]models.Completion, error) {
	return service.completions.ListAdhocForDate(dates.DayKey(viewDate))
}
