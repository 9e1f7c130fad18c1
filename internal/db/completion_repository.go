package db

import (
	"stride/internal/models"

	"gorm.io/gorm"
)

type CompletionRepository struct {
	database *gorm.DB
}

func NewCompletionRepository(database *gorm.DB) *CompletionRepository {
	return &CompletionRepository{database: database}
}

func (repo *CompletionRepository) Insert(completion *models.Completion) error {
	return repo.database.Create(completion).Error
}

func (repo *CompletionRepository) CountForTaskAndDate(taskID uint, bucketDate string) (int, error) {
	var count int64
	if err := repo.database.Model(&models.Completion{}).
		Where("task_id = ? AND date = ?", taskID, bucketDate).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// CountsByTaskForDate groups completion counts per task for one bucket date,
// so a page render needs a single query per bucket granularity.
func (repo *CompletionRepository) CountsByTaskForDate(bucketDate string) (map[uint]int, error) {
	rows := make([]struct {
		TaskID uint  `gorm:"column:task_id"`
		Count  int64 `gorm:"column:count"`
	}, 0)
	if err := repo.database.Model(&models.Completion{}).
		Select("task_id, COUNT(*) AS count").
		Where("date = ? AND task_id IS NOT NULL", bucketDate).
		Group("task_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uint]int, len(rows))
	for _, row := range rows {
		counts[row.TaskID] = int(row.Count)
	}
	return counts, nil
}

// DeleteMostRecent removes the newest completion for the (task, bucket) pair.
// With nothing to remove it reports false and changes no rows.
func (repo *CompletionRepository) DeleteMostRecent(taskID uint, bucketDate string) (bool, error) {
	var completion models.Completion
	result := repo.database.
		Where("task_id = ? AND date = ?", taskID, bucketDate).
		Order("created_at DESC, id DESC").
		Limit(1).
		Find(&completion)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	if err := repo.database.Delete(&models.Completion{}, completion.ID).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (repo *CompletionRepository) ListAdhocForDate(dayKey string) ([]models.Completion, error) {
	completions := make([]models.Completion, 0)
	if err := repo.database.
		Where("task_id IS NULL AND date = ?", dayKey).
		Order("created_at ASC, id ASC").
		Find(&completions).Error; err != nil {
		return nil, err
	}
	return completions, nil
}

// CompletedDailyCountForDate counts the day's completions belonging to
// day-period tasks that are active on that same day, which is the numerator
// of the daily progress percentage.
func (repo *CompletionRepository) CompletedDailyCountForDate(dayKey string) (int, error) {
	var count int64
	if err := repo.database.Model(&models.Completion{}).
		Joins("JOIN tasks ON tasks.id = completions.task_id").
		Where("completions.date = ?", dayKey).
		Where("tasks.period = ? AND tasks.active = ?", models.PeriodDay, true).
		Where("tasks.scheduled_date IS NULL OR tasks.scheduled_date = ?", dayKey).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}
