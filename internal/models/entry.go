package models

// One row per calendar day, keyed by the day key. Repeat saves for the same
// date overwrite the row.

type CalorieEntry struct {
	Date     string `gorm:"primaryKey"`
	Calories int    `gorm:"not null"`
}

type WeightEntry struct {
	Date   string  `gorm:"primaryKey"`
	Weight float64 `gorm:"not null"`
}

type DiaryEntry struct {
	Date    string `gorm:"primaryKey"`
	Content string `gorm:"not null"`
}
