package services

import (
	"strings"
	"time"

	"stride/internal/dates"
	"stride/internal/models"
)

type EntryRepository interface {
	UpsertCalories(entry models.CalorieEntry) error
	ListCalories() ([]models.CalorieEntry, error)
	UpsertWeight(entry models.WeightEntry) error
	ListWeights() ([]models.WeightEntry, error)
	UpsertDiary(entry models.DiaryEntry) error
	ListDiary() ([]models.DiaryEntry, error)
}

// WeeklyCalorieSummary compares the last seven logged days against the
// calorie target.
type WeeklyCalorieSummary struct {
	Actual  int
	Ideal   int
	Diff    int
	Message string
}

// EntryService upserts the per-day measurement rows. A blank date means
// today; a present but malformed date is rejected.
type EntryService struct {
	entries  EntryRepository
	location *time.Location
}

func NewEntryService(entries EntryRepository, location *time.Location) *EntryService {
	if location == nil {
		location = time.Local
	}
	return &EntryService{entries: entries, location: location}
}

func (service *EntryService) SaveCalories(dateKey string, calories int, now time.Time) error {
	resolved, err := service.resolveDate(dateKey, now)
	if err != nil {
		return err
	}
	return service.entries.UpsertCalories(models.CalorieEntry{Date: resolved, Calories: calories})
}

func (service *EntryService) SaveWeight(dateKey string, weight float64, now time.Time) error {
	resolved, err := service.resolveDate(dateKey, now)
	if err != nil {
		return err
	}
	return service.entries.UpsertWeight(models.WeightEntry{Date: resolved, Weight: weight})
}

func (service *EntryService) SaveDiary(dateKey string, content string, now time.Time) error {
	resolved, err := service.resolveDate(dateKey, now)
	if err != nil {
		return err
	}
	return service.entries.UpsertDiary(models.DiaryEntry{Date: resolved, Content: content})
}

func (service *EntryService) Calories() ([]models.CalorieEntry, error) {
	return service.entries.ListCalories()
}

func (service *EntryService) Weights() ([]models.WeightEntry, error) {
	return service.entries.ListWeights()
}

func (service *EntryService) DiaryEntries() ([]models.DiaryEntry, error) {
	return service.entries.ListDiary()
}

// BuildWeeklySummary sums the newest seven calorie rows against seven days of
// the target and picks the coaching message for the difference.
func (service *EntryService) BuildWeeklySummary(targetCalories int) (WeeklyCalorieSummary, error) {
	entries, err := service.entries.ListCalories()
	if err != nil {
		return WeeklyCalorieSummary{}, err
	}

	recent := entries
	if len(recent) > 7 {
		recent = recent[len(recent)-7:]
	}

	actual := 0
	for _, entry := range recent {
		actual += entry.Calories
	}
	ideal := targetCalories * 7
	diff := actual - ideal

	return WeeklyCalorieSummary{
		Actual:  actual,
		Ideal:   ideal,
		Diff:    diff,
		Message: weeklyCalorieMessage(diff),
	}, nil
}

func weeklyCalorieMessage(diff int) string {
	switch {
	case diff <= 0:
		return "Great discipline this week. Keep this momentum going."
	case diff <= 400:
		return "Slight surplus. Tighten portions and stay consistent tomorrow."
	default:
		return "You overate this week. Reset now: prioritize high-protein, lower-calorie meals."
	}
}

func (service *EntryService) resolveDate(dateKey string, now time.Time) (string, error) {
	trimmed := strings.TrimSpace(dateKey)
	if trimmed == "" {
		return dates.DayKey(now), nil
	}
	if _, err := dates.ParseKey(trimmed, service.location); err != nil {
		return "", ErrInvalidDate
	}
	return trimmed, nil
}
