package models

import "time"

// Completion records that a task instance was completed for a bucket date.
// Exactly one of TaskID and TitleSnapshot is set: task-backed rows reference
// their task and derive the label live, ad-hoc rows snapshot the free-text
// label at completion time.
type Completion struct {
	ID            uint  `gorm:"primaryKey"`
	TaskID        *uint `gorm:"index"`
	TitleSnapshot *string
	// Date is the bucket key: a day key for day-period tasks and ad-hoc
	// rows, the week-start day key for week-period tasks.
	Date      string `gorm:"not null;index"`
	CreatedAt time.Time
}

func (completion Completion) IsAdhoc() bool {
	return completion.TaskID == nil
}

// Label returns the ad-hoc snapshot title, empty for task-backed rows.
func (completion Completion) Label() string {
	if completion.TitleSnapshot == nil {
		return ""
	}
	return *completion.TitleSnapshot
}
