package db

import (
	"errors"

	"stride/internal/models"

	"gorm.io/gorm"
)

type TaskRepository struct {
	database *gorm.DB
}

func NewTaskRepository(database *gorm.DB) *TaskRepository {
	return &TaskRepository{database: database}
}

// ListActiveForDate returns the tasks visible on the given day key: active
// rows that either recur or are scheduled for exactly that date, in display
// order (rank, then creation order for ties).
func (repo *TaskRepository) ListActiveForDate(dayKey string) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := repo.database.
		Where("active = ? AND (scheduled_date IS NULL OR scheduled_date = ?)", true, dayKey).
		Order("sort_order ASC, created_at ASC, id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TaskRepository) FindByID(taskID uint) (models.Task, bool, error) {
	var task models.Task
	err := repo.database.First(&task, taskID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Task{}, false, nil
	}
	if err != nil {
		return models.Task{}, false, err
	}
	return task, true, nil
}

func (repo *TaskRepository) Create(task *models.Task) error {
	return repo.database.Create(task).Error
}

func (repo *TaskRepository) MaxSortOrder() (int, error) {
	var row struct {
		MaxSort int `gorm:"column:max_sort"`
	}
	if err := repo.database.
		Raw(`SELECT COALESCE(MAX(sort_order), 0) AS max_sort FROM tasks`).
		Scan(&row).Error; err != nil {
		return 0, err
	}
	return row.MaxSort, nil
}

// UpdateSortOrders assigns rank = position + 1 for every id in order, as one
// transaction so a crash cannot leave the list partially reordered. Ids that
// match no row update nothing.
func (repo *TaskRepository) UpdateSortOrders(orderedIDs []uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		for position, taskID := range orderedIDs {
			if err := tx.Model(&models.Task{}).
				Where("id = ?", taskID).
				Update("sort_order", position+1).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Deactivate soft-deletes a task; completion rows keep referencing it.
func (repo *TaskRepository) Deactivate(taskID uint) (bool, error) {
	result := repo.database.Model(&models.Task{}).
		Where("id = ? AND active = ?", taskID, true).
		Update("active", false)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
