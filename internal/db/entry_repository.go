package db

import (
	"stride/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntryRepository persists the one-row-per-day measurement tables: calories,
// weight and diary text. Saves are upserts keyed by the day key.
type EntryRepository struct {
	database *gorm.DB
}

func NewEntryRepository(database *gorm.DB) *EntryRepository {
	return &EntryRepository{database: database}
}

func (repo *EntryRepository) UpsertCalories(entry models.CalorieEntry) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"calories"}),
	}).Create(&entry).Error
}

func (repo *EntryRepository) ListCalories() ([]models.CalorieEntry, error) {
	entries := make([]models.CalorieEntry, 0)
	if err := repo.database.Order("date ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *EntryRepository) UpsertWeight(entry models.WeightEntry) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"weight"}),
	}).Create(&entry).Error
}

func (repo *EntryRepository) ListWeights() ([]models.WeightEntry, error) {
	entries := make([]models.WeightEntry, 0)
	if err := repo.database.Order("date ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *EntryRepository) UpsertDiary(entry models.DiaryEntry) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"content"}),
	}).Create(&entry).Error
}

func (repo *EntryRepository) ListDiary() ([]models.DiaryEntry, error) {
	entries := make([]models.DiaryEntry, 0)
	if err := repo.database.Order("date DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
