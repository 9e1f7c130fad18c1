package models

import "time"

const (
	PeriodDay  = "day"
	PeriodWeek = "week"
)

const (
	TaskModeRecurring = "recurring"
	TaskModeOneTime   = "one-time"
)

// Task is a schedulable unit of work. Recurring tasks stay active forever and
// bucket completions per day or per week; one-time tasks carry a ScheduledDate
// day key and are only visible on that exact date.
type Task struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Period      string `gorm:"not null;default:day"`
	TargetCount int    `gorm:"not null;default:1"`
	Active      bool   `gorm:"not null;default:true"`
	SortOrder   int    `gorm:"not null;default:0"`
	// ScheduledDate is a YYYY-MM-DD day key; nil means the task recurs.
	// A non-nil ScheduledDate always goes with Period = day.
	ScheduledDate *string
	CreatedAt     time.Time
}

func (task Task) IsOneTime() bool {
	return task.ScheduledDate != nil
}
