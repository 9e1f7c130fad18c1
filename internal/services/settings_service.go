package services

import (
	"strconv"

	"stride/internal/models"
)

type SettingStore interface {
	Get(key string) (string, bool, error)
	Set(key string, value string) error
}

type SettingsService struct {
	settings SettingStore
}

func NewSettingsService(settings SettingStore) *SettingsService {
	return &SettingsService{settings: settings}
}

// TargetCalories reads the daily calorie target, falling back to the default
// when the row is missing or unreadable.
func (service *SettingsService) TargetCalories() (int, error) {
	value, found, err := service.settings.Get(models.SettingTargetCalories)
	if err != nil {
		return 0, err
	}
	if !found {
		return models.DefaultTargetCalories, nil
	}

	target, err := strconv.Atoi(value)
	if err != nil || target <= 0 {
		return models.DefaultTargetCalories, nil
	}
	return target, nil
}

// SetTargetCalories stores the target, coercing non-positive values to the
// default rather than rejecting them.
func (service *SettingsService) SetTargetCalories(target int) error {
	if target <= 0 {
		target = models.DefaultTargetCalories
	}
	return service.settings.Set(models.SettingTargetCalories, strconv.Itoa(target))
}
