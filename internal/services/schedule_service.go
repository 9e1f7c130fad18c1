package services

import (
	"math"
	"time"

	"stride/internal/dates"
	"stride/internal/models"
)

type ScheduleTaskReader interface {
	ListActiveForDate(dayKey string) ([]models.Task, error)
}

type ScheduleCompletionReader interface {
	CountForTaskAndDate(taskID uint, bucketDate string) (int, error)
	CountsByTaskForDate(bucketDate string) (map[uint]int, error)
	CompletedDailyCountForDate(dayKey string) (int, error)
}

// TaskStatus is a task joined with its completion state for one viewing date.
type TaskStatus struct {
	Task      models.Task
	Completed int
	Remaining int
	Done      bool
}

// TrendPoint is one day of the dashboard's completion-percentage history.
type TrendPoint struct {
	Label   string
	Percent int
}

const trendLabelLayout = "01/02"

// ScheduleService decides which tasks are active for a viewing date and how
// far along their bucket (day or ISO week) is.
type ScheduleService struct {
	tasks       ScheduleTaskReader
	completions ScheduleCompletionReader
}

func NewScheduleService(tasks ScheduleTaskReader, completions ScheduleCompletionReader) *ScheduleService {
	return &ScheduleService{tasks: tasks, completions: completions}
}

// ActiveTasksFor returns the tasks visible on viewDate: every active
// recurring task plus one-time tasks scheduled for exactly that date, in
// display order.
func (service *ScheduleService) ActiveTasksFor(viewDate time.Time) ([]models.Task, error) {
	return service.tasks.ListActiveForDate(dates.DayKey(viewDate))
}

// ActiveStatusesFor builds the task list for a page render, resolving each
// task's completion count against its own bucket (the view day for daily
// tasks, the view day's week for weekly ones).
func (service *ScheduleService) ActiveStatusesFor(viewDate time.Time) ([]TaskStatus, error) {
	tasks, err := service.ActiveTasksFor(viewDate)
	if err != nil {
		return nil, err
	}

	dailyCounts, err := service.completions.CountsByTaskForDate(dates.DayKey(viewDate))
	if err != nil {
		return nil, err
	}
	weeklyCounts, err := service.completions.CountsByTaskForDate(dates.WeekKey(viewDate))
	if err != nil {
		return nil, err
	}

	statuses := make([]TaskStatus, 0, len(tasks))
	for _, task := range tasks {
		completed := dailyCounts[task.ID]
		if task.Period == models.PeriodWeek {
			completed = weeklyCounts[task.ID]
		}
		remaining := task.TargetCount - completed
		if remaining < 0 {
			remaining = 0
		}
		statuses = append(statuses, TaskStatus{
			Task:      task,
			Completed: completed,
			Remaining: remaining,
			Done:      completed >= task.TargetCount,
		})
	}
	return statuses, nil
}

// CompletionCountFor returns the task's completion count in the bucket that
// viewDate falls into.
func (service *ScheduleService) CompletionCountFor(task models.Task, viewDate time.Time) (int, error) {
	return service.completions.CountForTaskAndDate(task.ID, BucketKey(task, viewDate))
}

func (service *ScheduleService) IsDone(task models.Task, viewDate time.Time) (bool, error) {
	count, err := service.CompletionCountFor(task, viewDate)
	if err != nil {
		return false, err
	}
	return count >= task.TargetCount, nil
}

// DailyExpectedTotal sums target counts over the day-period tasks active on
// viewDate. Weekly tasks never count toward the daily percentage.
func (service *ScheduleService) DailyExpectedTotal(viewDate time.Time) (int, error) {
	tasks, err := service.ActiveTasksFor(viewDate)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, task := range tasks {
		if task.Period == models.PeriodDay {
			total += task.TargetCount
		}
	}
	return total, nil
}

// DailyProgress returns the completed and expected daily checkmark counts for
// viewDate alongside the rounded percentage, clamped to [0, 100] and defined
// as 0 when nothing is expected.
func (service *ScheduleService) DailyProgress(viewDate time.Time) (completed int, expected int, percent int, err error) {
	expected, err = service.DailyExpectedTotal(viewDate)
	if err != nil {
		return 0, 0, 0, err
	}

	completed, err = service.completions.CompletedDailyCountForDate(dates.DayKey(viewDate))
	if err != nil {
		return 0, 0, 0, err
	}

	return completed, expected, completionPercent(completed, expected), nil
}

// DailyCompletionPercent is the percentage component of DailyProgress.
func (service *ScheduleService) DailyCompletionPercent(viewDate time.Time) (int, error) {
	_, _, percent, err := service.DailyProgress(viewDate)
	return percent, err
}

// Trend recomputes the daily percentage for each of the last windowDays days
// ending at endDate inclusive. Every day uses its own active-task set, so a
// one-time task scheduled in the past raises that day's expected total and no
// other day's.
func (service *ScheduleService) Trend(endDate time.Time, windowDays int) ([]TrendPoint, error) {
	if windowDays < 1 {
		return []TrendPoint{}, nil
	}

	points := make([]TrendPoint, 0, windowDays)
	for offset := windowDays - 1; offset >= 0; offset-- {
		day := endDate.AddDate(0, 0, -offset)
		_, _, percent, err := service.DailyProgress(day)
		if err != nil {
			return nil, err
		}
		points = append(points, TrendPoint{
			Label:   day.Format(trendLabelLayout),
			Percent: percent,
		})
	}
	return points, nil
}

// BucketKey resolves the storage key a completion of task on viewDate counts
// under: the day key for day-period tasks, the week-start key for weekly ones.
func BucketKey(task models.Task, viewDate time.Time) string {
	if task.Period == models.PeriodWeek {
		return dates.WeekKey(viewDate)
	}
	return dates.DayKey(viewDate)
}

func completionPercent(completed int, expected int) int {
	if expected <= 0 {
		return 0
	}
	percent := int(math.Round(100 * float64(completed) / float64(expected)))
	if percent > 100 {
		return 100
	}
	if percent < 0 {
		return 0
	}
	return percent
}
