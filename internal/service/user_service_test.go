package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/dto"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/model"
	pkgerrors "github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/pkg/errors"
)

func setupTestUserService() (UserService, *repositoryFixture) {
	repo, mocks := newMockRepository()
	svc := NewUserService(repo, zap.NewNop())
	return svc, &repositoryFixture{repo: repo, mocks: mocks}
}

func TestUserCreate(t *testing.T) {
	svc, f := setupTestUserService()
	ctx := context.Background()

	role := &model.Role{Name: "teacher"}
	f.mocks.role.Create(ctx, role)

	resp, err := svc.Create(ctx, "admin-1", &dto.CreateUserRequest{
		Name:     "Rafiq Islam",
		Email:    "rafiq@example.edu",
		Password: "s3cret-pass",
		RoleIDs:  []string{role.RoleID},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if resp.ID == "" {
		t.Error("expected generated id")
	}
	if len(resp.Roles) != 1 || resp.Roles[0].Name != "teacher" {
		t.Errorf("expected assigned teacher role, got %+v", resp.Roles)
	}

	// password is stored hashed, never verbatim
	stored, _ := f.mocks.user.GetByEmail(ctx, "rafiq@example.edu")
	if stored.PasswordHash == "s3cret-pass" || stored.PasswordHash == "" {
		t.Error("password must be stored as a bcrypt hash")
	}
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	svc, _ := setupTestUserService()
	ctx := context.Background()

	req := &dto.CreateUserRequest{Name: "First", Email: "dup@example.edu", Password: "password1"}
	if _, err := svc.Create(ctx, "admin-1", req); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	req2 := &dto.CreateUserRequest{Name: "Second", Email: "dup@example.edu", Password: "password2"}
	if _, err := svc.Create(ctx, "admin-1", req2); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserCreate_UnknownRole(t *testing.T) {
	svc, _ := setupTestUserService()

	_, err := svc.Create(context.Background(), "admin-1", &dto.CreateUserRequest{
		Name:     "Nadia",
		Email:    "nadia@example.edu",
		Password: "password1",
		RoleIDs:  []string{"missing-role"},
	})
	if !errors.Is(err, ErrRoleNotFound) {
		t.Errorf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestUserUpdate(t *testing.T) {
	svc, _ := setupTestUserService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "admin-1", &dto.CreateUserRequest{
		Name: "Old Name", Email: "old@example.edu", Password: "password1",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	resp, err := svc.Update(ctx, "admin-1", created.ID, &dto.UpdateUserRequest{
		Name:  strptr("New Name"),
		Email: strptr("new@example.edu"),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if resp.Name != "New Name" || resp.Email != "new@example.edu" {
		t.Errorf("update not applied: %+v", resp)
	}
}

func TestUserUpdate_EmptyPayload(t *testing.T) {
	svc, _ := setupTestUserService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "admin-1", &dto.CreateUserRequest{
		Name: "Someone", Email: "someone@example.edu", Password: "password1",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Update(ctx, "admin-1", created.ID, &dto.UpdateUserRequest{}); !errors.Is(err, pkgerrors.ErrEmptyUpdate) {
		t.Errorf("expected ErrEmptyUpdate, got %v", err)
	}
}

func TestUserUpdate_EmailTakenByOther(t *testing.T) {
	svc, _ := setupTestUserService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, "admin-1", &dto.CreateUserRequest{
		Name: "A", Email: "a@example.edu", Password: "password1",
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	b, err := svc.Create(ctx, "admin-1", &dto.CreateUserRequest{
		Name: "B", Email: "b@example.edu", Password: "password1",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Update(ctx, "admin-1", b.ID, &dto.UpdateUserRequest{
		Email: strptr("a@example.edu"),
	}); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserDelete(t *testing.T) {
	svc, _ := setupTestUserService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "admin-1", &dto.CreateUserRequest{
		Name: "Gone", Email: "gone@example.edu", Password: "password1",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(ctx, "admin-1", created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound after delete, got %v", err)
	}
}

func TestUserAssignRole_Idempotent(t *testing.T) {
	svc, f := setupTestUserService()
	ctx := context.Background()

	role := &model.Role{Name: "teacher"}
	f.mocks.role.Create(ctx, role)

	created, err := svc.Create(ctx, "admin-1", &dto.CreateUserRequest{
		Name: "T", Email: "t@example.edu", Password: "password1",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.AssignRole(ctx, created.ID, role.RoleID); err != nil {
		t.Fatalf("AssignRole failed: %v", err)
	}
	// assigning again is a no-op, not an error
	if err := svc.AssignRole(ctx, created.ID, role.RoleID); err != nil {
		t.Errorf("re-assign should be a no-op, got %v", err)
	}

	roles, _ := f.mocks.user.ListRoles(ctx, created.ID)
	if len(roles) != 1 {
		t.Errorf("expected 1 role assignment, got %d", len(roles))
	}

	if err := svc.RemoveRole(ctx, created.ID, role.RoleID); err != nil {
		t.Fatalf("RemoveRole failed: %v", err)
	}
	roles, _ = f.mocks.user.ListRoles(ctx, created.ID)
	if len(roles) != 0 {
		t.Errorf("expected no roles after removal, got %d", len(roles))
	}
}

func TestUserAssignRole_Missing(t *testing.T) {
	svc, f := setupTestUserService()
	ctx := context.Background()

	role := &model.Role{Name: "teacher"}
	f.mocks.role.Create(ctx, role)

	if err := svc.AssignRole(ctx, "missing-user", role.RoleID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}

	created, err := svc.Create(ctx, "admin-1", &dto.CreateUserRequest{
		Name: "T", Email: "t@example.edu", Password: "password1",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := svc.AssignRole(ctx, created.ID, "missing-role"); !errors.Is(err, ErrRoleNotFound) {
		t.Errorf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestUserList_Pagination(t *testing.T) {
	svc, _ := setupTestUserService()
	ctx := context.Background()

	for _, email := range []string{"u1@example.edu", "u2@example.edu", "u3@example.edu"} {
		if _, err := svc.Create(ctx, "admin-1", &dto.CreateUserRequest{
			Name: email, Email: email, Password: "password1",
		}); err != nil {
			t.Fatalf("Create %s failed: %v", email, err)
		}
	}

	rows, total, err := svc.List(ctx, &dto.ListRequest{Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 3 {
		t.Errorf("expected total 3, got %d", total)
	}
	if len(rows) != 2 {
		t.Errorf("expected page of 2, got %d", len(rows))
	}
}
