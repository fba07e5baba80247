package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/dto"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/model"
	pkgerrors "github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/pkg/errors"
)

func setupTestClassHistoryService() (ClassHistoryService, *repositoryFixture) {
	repo, mocks := newMockRepository()
	authz := NewAuthzService(repo, zap.NewNop())
	svc := NewClassHistoryService(repo, authz, zap.NewNop())
	return svc, &repositoryFixture{repo: repo, mocks: mocks}
}

func strptr(s string) *string { return &s }

func validHistoryCreate() *dto.CreateClassHistoryRequest {
	return &dto.CreateClassHistoryRequest{
		Date:      "2026-02-02",
		SlotID:    "slot-1",
		SectionID: "section-a",
		TeacherID: "teacher-1",
		RoomID:    "room-1",
		CourseID:  "course-1",
	}
}

func TestClassHistoryCreate(t *testing.T) {
	svc, _ := setupTestClassHistoryService()

	resp, err := svc.Create(context.Background(), "admin-1", validHistoryCreate())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if resp.ID == "" {
		t.Error("expected generated id")
	}
	if resp.Date != "2026-02-02" {
		t.Errorf("expected date 2026-02-02, got %s", resp.Date)
	}
	if resp.Status != model.StatusNotDelivered {
		t.Errorf("expected default status notdelivered, got %s", resp.Status)
	}
}

func TestClassHistoryCreate_ManyRowsSameDay(t *testing.T) {
	svc, f := setupTestClassHistoryService()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 1; i <= 3; i++ {
		req := validHistoryCreate()
		req.SlotID = fmt.Sprintf("slot-%d", i)

		resp, err := svc.Create(ctx, "admin-1", req)
		if err != nil {
			t.Fatalf("Create slot-%d failed: %v", i, err)
		}
		if resp.SlotID != req.SlotID {
			t.Errorf("response is for the wrong row: want %s, got %s", req.SlotID, resp.SlotID)
		}
		if seen[resp.ID] {
			t.Errorf("id %s returned for more than one row", resp.ID)
		}
		seen[resp.ID] = true

		stored, err := f.mocks.history.GetByDateSlotSection(ctx, mustDate(req.Date), req.SlotID, req.SectionID)
		if err != nil {
			t.Fatalf("stored row missing for %s: %v", req.SlotID, err)
		}
		if stored.HistoryID != resp.ID {
			t.Errorf("response id %s does not match stored row %s", resp.ID, stored.HistoryID)
		}
	}
}

func TestClassHistoryCreate_Duplicate(t *testing.T) {
	svc, _ := setupTestClassHistoryService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, "admin-1", validHistoryCreate()); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	// same (date, slot, section), different teacher
	dup := validHistoryCreate()
	dup.TeacherID = "teacher-2"
	if _, err := svc.Create(ctx, "admin-1", dup); !errors.Is(err, ErrHistoryExists) {
		t.Errorf("expected ErrHistoryExists, got %v", err)
	}
}

func TestClassHistoryUpdate_BroadPermission(t *testing.T) {
	svc, f := setupTestClassHistoryService()
	f.seedUserWithPermissions("mod-1", "moderator", "class_history:update")
	ctx := context.Background()

	created, err := svc.Create(ctx, "mod-1", validHistoryCreate())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	resp, err := svc.Update(ctx, "mod-1", created.ID, &dto.UpdateClassHistoryRequest{
		Status: strptr(model.StatusDelivered),
		Notes:  strptr("covered chapters 3 and 4"),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if resp.Status != model.StatusDelivered {
		t.Errorf("expected status delivered, got %s", resp.Status)
	}
	if resp.Notes == nil || *resp.Notes != "covered chapters 3 and 4" {
		t.Errorf("notes not persisted: %v", resp.Notes)
	}
}

func TestClassHistoryUpdate_OwnRecordFallback(t *testing.T) {
	svc, f := setupTestClassHistoryService()
	f.seedUserWithPermissions("teacher-1", "teacher", "class_history:update_own")
	ctx := context.Background()

	created, err := svc.Create(ctx, "teacher-1", validHistoryCreate())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// teacher-1 is the assigned teacher on the row, fallback applies
	if _, err := svc.Update(ctx, "teacher-1", created.ID, &dto.UpdateClassHistoryRequest{
		Status: strptr(model.StatusDelivered),
	}); err != nil {
		t.Errorf("owning teacher with update_own denied: %v", err)
	}
}

func TestClassHistoryUpdate_NotOwnerDenied(t *testing.T) {
	svc, f := setupTestClassHistoryService()
	f.seedUserWithPermissions("teacher-2", "teacher", "class_history:update_own")
	ctx := context.Background()

	created, err := svc.Create(ctx, "admin-1", validHistoryCreate()) // taught by teacher-1
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Update(ctx, "teacher-2", created.ID, &dto.UpdateClassHistoryRequest{
		Status: strptr(model.StatusDelivered),
	}); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden for non-owning teacher, got %v", err)
	}
}

func TestClassHistoryUpdate_NoRoleDenied(t *testing.T) {
	svc, f := setupTestClassHistoryService()
	ctx := context.Background()
	f.mocks.user.Create(ctx, &model.User{UserID: "nobody-1", Name: "no roles", Email: "n@example.edu"})

	created, err := svc.Create(ctx, "admin-1", validHistoryCreate())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Update(ctx, "nobody-1", created.ID, &dto.UpdateClassHistoryRequest{
		Status: strptr(model.StatusDelivered),
	}); !errors.Is(err, ErrNoRoleAssigned) {
		t.Errorf("expected ErrNoRoleAssigned, got %v", err)
	}
}

func TestClassHistoryUpdate_EmptyPayload(t *testing.T) {
	svc, f := setupTestClassHistoryService()
	f.seedUserWithPermissions("mod-1", "moderator", "class_history:update")
	ctx := context.Background()

	created, err := svc.Create(ctx, "mod-1", validHistoryCreate())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Update(ctx, "mod-1", created.ID, &dto.UpdateClassHistoryRequest{}); !errors.Is(err, pkgerrors.ErrEmptyUpdate) {
		t.Errorf("expected ErrEmptyUpdate, got %v", err)
	}
}

func TestClassHistoryUpdate_NotFound(t *testing.T) {
	svc, f := setupTestClassHistoryService()
	f.seedUserWithPermissions("mod-1", "moderator", "class_history:update")

	_, err := svc.Update(context.Background(), "mod-1", "missing-id", &dto.UpdateClassHistoryRequest{
		Status: strptr(model.StatusDelivered),
	})
	if !errors.Is(err, ErrHistoryNotFound) {
		t.Errorf("expected ErrHistoryNotFound, got %v", err)
	}
}

func TestClassHistoryDelete(t *testing.T) {
	svc, _ := setupTestClassHistoryService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "admin-1", validHistoryCreate())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(ctx, "admin-1", created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, ErrHistoryNotFound) {
		t.Errorf("expected ErrHistoryNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, "admin-1", created.ID); !errors.Is(err, ErrHistoryNotFound) {
		t.Errorf("expected ErrHistoryNotFound on double delete, got %v", err)
	}
}

func TestClassHistoryList_Filters(t *testing.T) {
	svc, _ := setupTestClassHistoryService()
	ctx := context.Background()

	for i, d := range []string{"2026-02-02", "2026-02-09", "2026-02-16"} {
		req := validHistoryCreate()
		req.Date = d
		if i == 2 {
			req.SectionID = "section-b"
		}
		if _, err := svc.Create(ctx, "admin-1", req); err != nil {
			t.Fatalf("Create %s failed: %v", d, err)
		}
	}

	rows, total, err := svc.List(ctx, &dto.ClassHistoryListRequest{
		ListRequest: dto.ListRequest{Page: 1, PageSize: 20},
		From:        "2026-02-01",
		To:          "2026-02-10",
		SectionID:   "section-a",
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 2 || len(rows) != 2 {
		t.Errorf("expected 2 rows in range for section-a, got total=%d len=%d", total, len(rows))
	}
}

func TestClassHistoryCreate_BadDate(t *testing.T) {
	svc, _ := setupTestClassHistoryService()

	req := validHistoryCreate()
	req.Date = "02/02/2026"
	if _, err := svc.Create(context.Background(), "admin-1", req); err == nil {
		t.Error("expected parse error for malformed date")
	}
}

func TestClassHistoryCreate_DateIsUTC(t *testing.T) {
	svc, f := setupTestClassHistoryService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "admin-1", validHistoryCreate())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	stored, err := f.mocks.history.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	want := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	if !stored.Date.Equal(want) {
		t.Errorf("expected stored date %v, got %v", want, stored.Date)
	}
}
