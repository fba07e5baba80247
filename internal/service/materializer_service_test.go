package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/model"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/repository"
)

func setupTestMaterializerService() (MaterializerService, *repositoryFixture) {
	repo, mocks := newMockRepository()
	svc := NewMaterializerService(repo, zap.NewNop())
	return svc, &repositoryFixture{repo: repo, mocks: mocks}
}

func seedTemplate(f *repositoryFixture, day model.Weekday, slotID, sectionID string) {
	f.mocks.schedule.Create(context.Background(), &model.WeeklySchedule{
		Day:       day,
		SlotID:    slotID,
		SectionID: sectionID,
		TeacherID: "teacher-1",
		RoomID:    "room-1",
		CourseID:  "course-1",
	})
}

func TestNextOccurrence(t *testing.T) {
	// Wednesday 2026-01-07, 12:00 UTC
	now := time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		target time.Weekday
		want   string
	}{
		{time.Thursday, "2026-01-08"},
		{time.Saturday, "2026-01-10"},
		{time.Sunday, "2026-01-11"},
		{time.Tuesday, "2026-01-13"},
		// same weekday is never today, always a week out
		{time.Wednesday, "2026-01-14"},
	}

	for _, tc := range cases {
		got := nextOccurrence(now, tc.target)
		if got.Format("2006-01-02") != tc.want {
			t.Errorf("nextOccurrence(%v) = %s, want %s", tc.target, got.Format("2006-01-02"), tc.want)
		}
		if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Location() != time.UTC {
			t.Errorf("nextOccurrence(%v) not normalized to UTC midnight: %v", tc.target, got)
		}
	}
}

func TestNextOccurrence_NonUTCNow(t *testing.T) {
	loc := time.FixedZone("UTC+6", 6*3600)
	// local Thursday 01:00 is still Wednesday 19:00 UTC
	now := time.Date(2026, 1, 8, 1, 0, 0, 0, loc)

	got := nextOccurrence(now, time.Thursday)
	if got.Format("2006-01-02") != "2026-01-08" {
		t.Errorf("expected next Thursday 2026-01-08 from UTC view, got %s", got.Format("2006-01-02"))
	}
}

func TestMaterializeWeek_EmptyTemplate(t *testing.T) {
	svc, _ := setupTestMaterializerService()

	result, err := svc.MaterializeWeek(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("MaterializeWeek failed: %v", err)
	}
	if result.Inserted != 0 || result.Skipped != 0 {
		t.Errorf("expected {0, 0} on empty template, got {%d, %d}", result.Inserted, result.Skipped)
	}
}

func TestMaterializeWeek_InsertsOnePerTemplate(t *testing.T) {
	svc, f := setupTestMaterializerService()
	seedTemplate(f, model.Monday, "slot-1", "section-a")
	seedTemplate(f, model.Monday, "slot-2", "section-a")
	seedTemplate(f, model.Tuesday, "slot-1", "section-b")

	now := time.Date(2026, 1, 7, 9, 0, 0, 0, time.UTC) // Wednesday

	result, err := svc.MaterializeWeek(context.Background(), now)
	if err != nil {
		t.Fatalf("MaterializeWeek failed: %v", err)
	}
	if result.Inserted != 3 || result.Skipped != 0 {
		t.Errorf("expected {3, 0}, got {%d, %d}", result.Inserted, result.Skipped)
	}

	rows, _, _ := f.mocks.history.List(context.Background(), repository.ClassHistoryFilter{}, 0, 100)
	if len(rows) != 3 {
		t.Fatalf("expected 3 history rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Status != model.StatusNotDelivered {
			t.Errorf("materialized row should start as not_delivered, got %s", row.Status)
		}
		if row.Date.Before(now) {
			t.Errorf("materialized date %v is not after now %v", row.Date, now)
		}
	}
}

func TestMaterializeWeek_Idempotent(t *testing.T) {
	svc, f := setupTestMaterializerService()
	seedTemplate(f, model.Monday, "slot-1", "section-a")
	seedTemplate(f, model.Friday, "slot-2", "section-b")

	now := time.Date(2026, 1, 7, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()

	first, err := svc.MaterializeWeek(ctx, now)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if first.Inserted != 2 {
		t.Fatalf("first run expected 2 inserted, got %d", first.Inserted)
	}

	second, err := svc.MaterializeWeek(ctx, now)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if second.Inserted != 0 || second.Skipped != 2 {
		t.Errorf("second run expected {0, 2}, got {%d, %d}", second.Inserted, second.Skipped)
	}

	rows, _, _ := f.mocks.history.List(ctx, repository.ClassHistoryFilter{}, 0, 100)
	if len(rows) != 2 {
		t.Errorf("re-run must not duplicate rows, got %d", len(rows))
	}
}

func TestMaterializeWeek_CollapsesDuplicateKeys(t *testing.T) {
	svc, f := setupTestMaterializerService()
	// two templates landing on the same (date, slot, section)
	seedTemplate(f, model.Monday, "slot-1", "section-a")
	seedTemplate(f, model.Monday, "slot-1", "section-a")

	result, err := svc.MaterializeWeek(context.Background(), time.Date(2026, 1, 7, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("MaterializeWeek failed: %v", err)
	}
	if result.Inserted != 1 || result.Skipped != 1 {
		t.Errorf("expected {1, 1}, got {%d, %d}", result.Inserted, result.Skipped)
	}
}

func TestMaterializeWeek_SkipsInvalidDay(t *testing.T) {
	svc, f := setupTestMaterializerService()
	seedTemplate(f, model.Weekday("funday"), "slot-1", "section-a")
	seedTemplate(f, model.Thursday, "slot-2", "section-a")

	result, err := svc.MaterializeWeek(context.Background(), time.Date(2026, 1, 7, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("MaterializeWeek failed: %v", err)
	}
	if result.Inserted != 1 || result.Skipped != 1 {
		t.Errorf("expected {1, 1}, got {%d, %d}", result.Inserted, result.Skipped)
	}
}

func TestMaterializeWeek_SameWeekdayRollsAWeek(t *testing.T) {
	svc, f := setupTestMaterializerService()
	seedTemplate(f, model.Monday, "slot-1", "section-a")

	// Monday 2026-01-05 at noon, same weekday as the template
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

	result, err := svc.MaterializeWeek(context.Background(), now)
	if err != nil {
		t.Fatalf("MaterializeWeek failed: %v", err)
	}
	if result.Inserted != 1 {
		t.Fatalf("expected 1 inserted, got %d", result.Inserted)
	}

	rows, _, _ := f.mocks.history.List(context.Background(), repository.ClassHistoryFilter{}, 0, 100)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	want := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	if !row.Date.Equal(want) {
		t.Errorf("expected following Monday %v, got %v", want, row.Date)
	}
	if row.TeacherID != "teacher-1" || row.RoomID != "room-1" || row.CourseID != "course-1" {
		t.Errorf("template fields not carried over: %+v", row)
	}
	if row.Status != model.StatusNotDelivered || row.Notes != nil {
		t.Errorf("expected fresh not_delivered row with nil notes, got status=%s notes=%v", row.Status, row.Notes)
	}
}

func TestMaterializeWeek_ExistingManualRowSkipped(t *testing.T) {
	svc, f := setupTestMaterializerService()
	seedTemplate(f, model.Monday, "slot-1", "section-a")

	now := time.Date(2026, 1, 7, 9, 0, 0, 0, time.UTC)
	nextMonday := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)

	// a manually created row already occupies the (date, slot, section) key
	f.mocks.history.Create(context.Background(), &model.ClassHistory{
		Date:      nextMonday,
		SlotID:    "slot-1",
		SectionID: "section-a",
		TeacherID: "teacher-9",
		RoomID:    "room-9",
		CourseID:  "course-9",
		Status:    model.StatusDelivered,
	})

	result, err := svc.MaterializeWeek(context.Background(), now)
	if err != nil {
		t.Fatalf("MaterializeWeek failed: %v", err)
	}
	if result.Inserted != 0 || result.Skipped != 1 {
		t.Errorf("expected {0, 1}, got {%d, %d}", result.Inserted, result.Skipped)
	}

	// the manual row is untouched
	rows, _, _ := f.mocks.history.List(context.Background(), repository.ClassHistoryFilter{}, 0, 100)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Status != model.StatusDelivered || rows[0].TeacherID != "teacher-9" {
		t.Error("existing row was overwritten by materializer")
	}
}
