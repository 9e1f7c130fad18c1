package models

const (
	SettingTargetCalories = "targetCalories"

	DefaultTargetCalories = 1800
)

type Setting struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"not null"`
}
