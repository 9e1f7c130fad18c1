package services

import (
	"sort"
	"testing"
	"time"

	"stride/internal/dates"
	"stride/internal/models"
)

// scheduleFixture backs a ScheduleService with an in-memory task list and a
// bucket-keyed completion count map, mirroring what the SQL queries return.
type scheduleFixture struct {
	tasks  []models.Task
	counts map[string]map[uint]int
}

func (f *scheduleFixture) ListActiveForDate(dayKey string) ([]models.Task, error) {
	visible := make([]models.Task, 0, len(f.tasks))
	for _, task := range f.tasks {
		if !task.Active {
			continue
		}
		if task.ScheduledDate != nil && *task.ScheduledDate != dayKey {
			continue
		}
		visible = append(visible, task)
	}
	sort.SliceStable(visible, func(i, j int) bool {
		if visible[i].SortOrder != visible[j].SortOrder {
			return visible[i].SortOrder < visible[j].SortOrder
		}
		return visible[i].ID < visible[j].ID
	})
	return visible, nil
}

func (f *scheduleFixture) CountForTaskAndDate(taskID uint, bucketDate string) (int, error) {
	return f.counts[bucketDate][taskID], nil
}

func (f *scheduleFixture) CountsByTaskForDate(bucketDate string) (map[uint]int, error) {
	counts := make(map[uint]int, len(f.counts[bucketDate]))
	for taskID, count := range f.counts[bucketDate] {
		counts[taskID] = count
	}
	return counts, nil
}

func (f *scheduleFixture) CompletedDailyCountForDate(dayKey string) (int, error) {
	total := 0
	for _, task := range f.tasks {
		if !task.Active || task.Period != models.PeriodDay {
			continue
		}
		if task.ScheduledDate != nil && *task.ScheduledDate != dayKey {
			continue
		}
		total += f.counts[dayKey][task.ID]
	}
	return total, nil
}

func (f *scheduleFixture) record(taskID uint, bucketDate string, count int) {
	if f.counts == nil {
		f.counts = map[string]map[uint]int{}
	}
	if f.counts[bucketDate] == nil {
		f.counts[bucketDate] = map[uint]int{}
	}
	f.counts[bucketDate][taskID] = count
}

func dayTask(id uint, title string, target int) models.Task {
	return models.Task{ID: id, Title: title, Period: models.PeriodDay, TargetCount: target, Active: true, SortOrder: int(id)}
}

func weekTask(id uint, title string, target int) models.Task {
	return models.Task{ID: id, Title: title, Period: models.PeriodWeek, TargetCount: target, Active: true, SortOrder: int(id)}
}

func oneTimeTask(id uint, title string, scheduled string) models.Task {
	task := dayTask(id, title, 1)
	task.ScheduledDate = &scheduled
	return task
}

func TestActiveTasksForShowsOneTimeOnlyOnItsDate(t *testing.T) {
	fixture := &scheduleFixture{tasks: []models.Task{
		dayTask(1, "Stretch", 1),
		oneTimeTask(2, "Dentist", "2026-03-10"),
	}}
	service := NewScheduleService(fixture, fixture)

	scheduledDay := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tasks, err := service.ActiveTasksFor(scheduledDay)
	if err != nil {
		t.Fatalf("ActiveTasksFor() returned error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected both tasks on the scheduled date, got %d", len(tasks))
	}

	tasks, err = service.ActiveTasksFor(scheduledDay.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("ActiveTasksFor() returned error: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != 1 {
		t.Fatalf("expected only the recurring task off the scheduled date, got %+v", tasks)
	}
}

func TestActiveStatusesForResolvesWeeklyBucket(t *testing.T) {
	fixture := &scheduleFixture{tasks: []models.Task{
		dayTask(1, "Stretch", 2),
		weekTask(2, "Long run", 3),
	}}
	wednesday := time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)
	fixture.record(1, dates.DayKey(wednesday), 1)
	fixture.record(2, dates.WeekKey(wednesday), 3)

	service := NewScheduleService(fixture, fixture)
	statuses, err := service.ActiveStatusesFor(wednesday)
	if err != nil {
		t.Fatalf("ActiveStatusesFor() returned error: %v", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}

	daily := statuses[0]
	if daily.Completed != 1 || daily.Remaining != 1 || daily.Done {
		t.Fatalf("daily status = %+v, want 1 of 2 and not done", daily)
	}
	weekly := statuses[1]
	if weekly.Completed != 3 || weekly.Remaining != 0 || !weekly.Done {
		t.Fatalf("weekly status = %+v, want done at 3 of 3", weekly)
	}
}

func TestIsDoneWeeklyTaskResetsNextWeek(t *testing.T) {
	task := weekTask(2, "Long run", 2)
	fixture := &scheduleFixture{tasks: []models.Task{task}}
	wednesday := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	fixture.record(task.ID, dates.WeekKey(wednesday), 2)

	service := NewScheduleService(fixture, fixture)

	// Any day of the same week reads the same bucket.
	sunday := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	done, err := service.IsDone(task, sunday)
	if err != nil {
		t.Fatalf("IsDone() returned error: %v", err)
	}
	if !done {
		t.Fatal("expected task done within the completed week")
	}

	nextMonday := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	done, err = service.IsDone(task, nextMonday)
	if err != nil {
		t.Fatalf("IsDone() returned error: %v", err)
	}
	if done {
		t.Fatal("expected a fresh bucket on the following Monday")
	}
}

func TestDailyProgressIgnoresWeeklyTargets(t *testing.T) {
	fixture := &scheduleFixture{tasks: []models.Task{
		dayTask(1, "Stretch", 2),
		dayTask(2, "Read", 1),
		weekTask(3, "Long run", 3),
	}}
	day := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	fixture.record(1, dates.DayKey(day), 2)
	fixture.record(3, dates.WeekKey(day), 3)

	service := NewScheduleService(fixture, fixture)
	completed, expected, percent, err := service.DailyProgress(day)
	if err != nil {
		t.Fatalf("DailyProgress() returned error: %v", err)
	}
	if expected != 3 {
		t.Fatalf("expected daily total 3, got %d", expected)
	}
	if completed != 2 {
		t.Fatalf("expected 2 completed checkmarks, got %d", completed)
	}
	if percent != 67 {
		t.Fatalf("expected 67%%, got %d%%", percent)
	}
}

func TestDailyCompletionPercentZeroWhenNothingExpected(t *testing.T) {
	fixture := &scheduleFixture{tasks: []models.Task{weekTask(1, "Long run", 3)}}
	service := NewScheduleService(fixture, fixture)

	percent, err := service.DailyCompletionPercent(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("DailyCompletionPercent() returned error: %v", err)
	}
	if percent != 0 {
		t.Fatalf("expected 0%% with no daily targets, got %d%%", percent)
	}
}

func TestCompletionPercentClampsAtHundred(t *testing.T) {
	if got := completionPercent(5, 2); got != 100 {
		t.Fatalf("completionPercent(5, 2) = %d, want 100", got)
	}
	if got := completionPercent(1, 3); got != 33 {
		t.Fatalf("completionPercent(1, 3) = %d, want 33", got)
	}
	if got := completionPercent(0, 0); got != 0 {
		t.Fatalf("completionPercent(0, 0) = %d, want 0", got)
	}
}

func TestTrendUsesEachDaysOwnActiveSet(t *testing.T) {
	end := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	pastDay := end.AddDate(0, 0, -2)
	fixture := &scheduleFixture{tasks: []models.Task{
		oneTimeTask(1, "File taxes", dates.DayKey(pastDay)),
	}}
	fixture.record(1, dates.DayKey(pastDay), 1)

	service := NewScheduleService(fixture, fixture)
	points, err := service.Trend(end, 3)
	if err != nil {
		t.Fatalf("Trend() returned error: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}

	// Oldest first; only the day the one-time task was scheduled expects
	// anything, and it was fully completed.
	if points[0].Percent != 100 {
		t.Fatalf("scheduled day percent = %d, want 100", points[0].Percent)
	}
	if points[1].Percent != 0 || points[2].Percent != 0 {
		t.Fatalf("off days should be 0%%, got %d%% and %d%%", points[1].Percent, points[2].Percent)
	}
	if points[0].Label != pastDay.Format("01/02") {
		t.Fatalf("label = %q, want %q", points[0].Label, pastDay.Format("01/02"))
	}
}

func TestTrendEmptyWindow(t *testing.T) {
	fixture := &scheduleFixture{}
	service := NewScheduleService(fixture, fixture)
	points, err := service.Trend(time.Now(), 0)
	if err != nil {
		t.Fatalf("Trend() returned error: %v", err)
	}
	if len(points) != 0 {
		t.Fatalf("expected no points for an empty window, got %d", len(points))
	}
}
