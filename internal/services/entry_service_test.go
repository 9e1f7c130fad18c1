package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"stride/internal/models"
)

type entryStoreStub struct {
	calories map[string]models.CalorieEntry
	weights  map[string]models.WeightEntry
	diary    map[string]models.DiaryEntry
	order    []string
}

func newEntryStoreStub() *entryStoreStub {
	return &entryStoreStub{
		calories: map[string]models.CalorieEntry{},
		weights:  map[string]models.WeightEntry{},
		diary:    map[string]models.DiaryEntry{},
	}
}

func (s *entryStoreStub) UpsertCalories(entry models.CalorieEntry) error {
	if _, exists := s.calories[entry.Date]; !exists {
		s.order = append(s.order, entry.Date)
	}
	s.calories[entry.Date] = entry
	return nil
}

func (s *entryStoreStub) ListCalories() ([]models.CalorieEntry, error) {
	entries := make([]models.CalorieEntry, 0, len(s.order))
	for _, date := range s.order {
		entries = append(entries, s.calories[date])
	}
	return entries, nil
}

func (s *entryStoreStub) UpsertWeight(entry models.WeightEntry) error {
	s.weights[entry.Date] = entry
	return nil
}

func (s *entryStoreStub) ListWeights() ([]models.WeightEntry, error) {
	return nil, nil
}

func (s *entryStoreStub) UpsertDiary(entry models.DiaryEntry) error {
	s.diary[entry.Date] = entry
	return nil
}

func (s *entryStoreStub) ListDiary() ([]models.DiaryEntry, error) {
	return nil, nil
}

func TestSaveCaloriesDefaultsToToday(t *testing.T) {
	store := newEntryStoreStub()
	service := NewEntryService(store, time.UTC)

	now := time.Date(2026, 3, 11, 19, 0, 0, 0, time.UTC)
	if err := service.SaveCalories("", 2100, now); err != nil {
		t.Fatalf("SaveCalories() returned error: %v", err)
	}
	entry, exists := store.calories["2026-03-11"]
	if !exists || entry.Calories != 2100 {
		t.Fatalf("expected entry under today's key, got %+v", store.calories)
	}
}

func TestSaveCaloriesUpsertsSameDay(t *testing.T) {
	store := newEntryStoreStub()
	service := NewEntryService(store, time.UTC)
	now := time.Now()

	if err := service.SaveCalories("2026-03-11", 1800, now); err != nil {
		t.Fatalf("SaveCalories() returned error: %v", err)
	}
	if err := service.SaveCalories("2026-03-11", 2050, now); err != nil {
		t.Fatalf("SaveCalories() returned error: %v", err)
	}
	if len(store.calories) != 1 {
		t.Fatalf("expected a single row per day, got %d", len(store.calories))
	}
	if store.calories["2026-03-11"].Calories != 2050 {
		t.Fatalf("expected the later value to win, got %d", store.calories["2026-03-11"].Calories)
	}
}

func TestSaveDiaryRejectsMalformedDate(t *testing.T) {
	service := NewEntryService(newEntryStoreStub(), time.UTC)

	err := service.SaveDiary("yesterday", "slept badly", time.Now())
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestBuildWeeklySummaryUsesNewestSevenDays(t *testing.T) {
	store := newEntryStoreStub()
	service := NewEntryService(store, time.UTC)

	// Nine logged days; only the newest seven should count.
	for day := 1; day <= 9; day++ {
		date := fmt.Sprintf("2026-03-%02d", day)
		if err := service.SaveCalories(date, 2000, time.Now()); err != nil {
			t.Fatalf("SaveCalories() returned error: %v", err)
		}
	}

	summary, err := service.BuildWeeklySummary(1800)
	if err != nil {
		t.Fatalf("BuildWeeklySummary() returned error: %v", err)
	}
	if summary.Actual != 14000 {
		t.Fatalf("actual = %d, want 14000 over seven days", summary.Actual)
	}
	if summary.Ideal != 12600 {
		t.Fatalf("ideal = %d, want 12600", summary.Ideal)
	}
	if summary.Diff != 1400 {
		t.Fatalf("diff = %d, want 1400", summary.Diff)
	}
}

func TestWeeklyCalorieMessageThresholds(t *testing.T) {
	tests := []struct {
		diff int
		want string
	}{
		{diff: -500, want: "Great discipline this week. Keep this momentum going."},
		{diff: 0, want: "Great discipline this week. Keep this momentum going."},
		{diff: 400, want: "Slight surplus. Tighten portions and stay consistent tomorrow."},
		{diff: 401, want: "You overate this week. Reset now: prioritize high-protein, lower-calorie meals."},
	}
	for _, tt := range tests {
		if got := weeklyCalorieMessage(tt.diff); got != tt.want {
			t.Fatalf("weeklyCalorieMessage(%d) = %q, want %q", tt.diff, got, tt.want)
		}
	}
}
