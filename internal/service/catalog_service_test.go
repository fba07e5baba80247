package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/dto"
)

func TestBatchCRUD(t *testing.T) {
	repo, _ := newMockRepository()
	svc := NewBatchService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, "admin-1", &dto.CreateBatchRequest{Name: "Spring 26"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := svc.Update(ctx, "admin-1", created.ID, &dto.UpdateBatchRequest{Name: strptr("Fall 26")})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got.Name != "Fall 26" {
		t.Errorf("expected Fall 26, got %s", got.Name)
	}

	if err := svc.Delete(ctx, "admin-1", created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, ErrBatchNotFound) {
		t.Errorf("expected ErrBatchNotFound after delete, got %v", err)
	}
}

func TestSectionCreate_RequiresBatch(t *testing.T) {
	repo, mocks := newMockRepository()
	f := &repositoryFixture{repo: repo, mocks: mocks}
	svc := NewSectionService(repo, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "admin-1", &dto.CreateSectionRequest{
		Name: "A", BatchID: "missing-batch",
	}); !errors.Is(err, ErrBatchNotFound) {
		t.Errorf("expected ErrBatchNotFound, got %v", err)
	}

	batchSvc := NewBatchService(f.repo, zap.NewNop())
	batch, err := batchSvc.Create(ctx, "admin-1", &dto.CreateBatchRequest{Name: "Spring 26"})
	if err != nil {
		t.Fatalf("batch Create failed: %v", err)
	}

	created, err := svc.Create(ctx, "admin-1", &dto.CreateSectionRequest{Name: "A", BatchID: batch.ID})
	if err != nil {
		t.Fatalf("section Create failed: %v", err)
	}
	if created.BatchID != batch.ID {
		t.Errorf("expected batch %s, got %s", batch.ID, created.BatchID)
	}
}

func TestSectionList_ByBatch(t *testing.T) {
	repo, mocks := newMockRepository()
	f := &repositoryFixture{repo: repo, mocks: mocks}
	f.seedScheduleRefs() // section-a and section-b under batch-1
	svc := NewSectionService(repo, zap.NewNop())

	rows, total, err := svc.List(context.Background(), &dto.SectionListRequest{
		ListRequest: dto.ListRequest{Page: 1, PageSize: 20},
		BatchID:     "batch-1",
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 2 || len(rows) != 2 {
		t.Errorf("expected 2 sections in batch-1, got total=%d len=%d", total, len(rows))
	}
}

func TestSlotListOrderedByOrdinal(t *testing.T) {
	repo, _ := newMockRepository()
	svc := NewSlotService(repo, zap.NewNop())
	ctx := context.Background()

	// created out of order
	if _, err := svc.Create(ctx, "admin-1", &dto.CreateSlotRequest{Ordinal: 3, StartTime: "12:00", EndTime: "13:20"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(ctx, "admin-1", &dto.CreateSlotRequest{Ordinal: 1, StartTime: "08:00", EndTime: "09:20"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(ctx, "admin-1", &dto.CreateSlotRequest{Ordinal: 2, StartTime: "09:30", EndTime: "10:50"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	rows, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(rows))
	}
	for i, row := range rows {
		if row.Ordinal != i+1 {
			t.Errorf("slot %d out of order: ordinal %d", i, row.Ordinal)
		}
	}
}

func TestCourseUpdate(t *testing.T) {
	repo, _ := newMockRepository()
	svc := NewCourseService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, "admin-1", &dto.CreateCourseRequest{Code: "CSE-101", Title: "Intro to Computing"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := svc.Update(ctx, "admin-1", created.ID, &dto.UpdateCourseRequest{Title: strptr("Foundations of Computing")})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got.Title != "Foundations of Computing" || got.Code != "CSE-101" {
		t.Errorf("partial update wrong: %+v", got)
	}
}

func TestRoomNotFound(t *testing.T) {
	repo, _ := newMockRepository()
	svc := NewRoomService(repo, zap.NewNop())

	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound, got %v", err)
	}
}
