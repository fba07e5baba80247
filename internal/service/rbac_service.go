package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/dto"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/model"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/repository"
	pkgerrors "github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/pkg/errors"
)

var (
	ErrRoleNameTaken       = errors.New("role name already in use")
	ErrPermissionNotFound  = errors.New("permission not found")
	ErrPermissionNameTaken = errors.New("permission name already in use")
)

// RoleService manages roles and their permission grants.
type RoleService interface {
	Create(ctx context.Context, actorID string, req *dto.CreateRoleRequest) (*dto.RoleResponse, error)
	GetByID(ctx context.Context, id string) (*dto.RoleResponse, error)
	Update(ctx context.Context, actorID, id string, req *dto.UpdateRoleRequest) (*dto.RoleResponse, error)
	Delete(ctx context.Context, actorID, id string) error
	List(ctx context.Context, req *dto.ListRequest) ([]dto.RoleResponse, int64, error)

	GrantPermission(ctx context.Context, roleID, permissionID string) error
	RevokePermission(ctx context.Context, roleID, permissionID string) error
}

// PermissionService manages the permission catalog.
type PermissionService interface {
	Create(ctx context.Context, actorID string, req *dto.CreatePermissionRequest) (*dto.PermissionResponse, error)
	GetByID(ctx context.Context, id string) (*dto.PermissionResponse, error)
	Update(ctx context.Context, actorID, id string, req *dto.UpdatePermissionRequest) (*dto.PermissionResponse, error)
	Delete(ctx context.Context, actorID, id string) error
	List(ctx context.Context, req *dto.ListRequest) ([]dto.PermissionResponse, int64, error)
}

// ── Role service ──

type roleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRoleService creates the RoleService.
func NewRoleService(repo *repository.Repository, logger *zap.Logger) RoleService {
	return &roleService{repo: repo, logger: logger}
}

func (s *roleService) Create(ctx context.Context, actorID string, req *dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if _, err := s.repo.Role.GetByName(ctx, req.Name); err == nil {
		return nil, ErrRoleNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role := &model.Role{
		Name:        req.Name,
		Description: req.Description,
	}
	if actorID != "" {
		role.CreatedBy = &actorID
	}

	if err := s.repo.Role.Create(ctx, role); err != nil {
		s.logger.Error("create role failed", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}
	return toRoleResponse(role), nil
}

func (s *roleService) GetByID(ctx context.Context, id string) (*dto.RoleResponse, error) {
	role, err := s.repo.Role.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}
	return toRoleResponse(role), nil
}

func (s *roleService) Update(ctx context.Context, actorID, id string, req *dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	if req.Name == nil && req.Description == nil {
		return nil, pkgerrors.ErrEmptyUpdate
	}

	role, err := s.repo.Role.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}

	if req.Name != nil && *req.Name != role.Name {
		if _, err := s.repo.Role.GetByName(ctx, *req.Name); err == nil {
			return nil, ErrRoleNameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		role.Name = *req.Name
	}
	if req.Description != nil {
		role.Description = req.Description
	}
	if actorID != "" {
		role.UpdatedBy = &actorID
	}

	if err := s.repo.Role.Update(ctx, role); err != nil {
		s.logger.Error("update role failed", zap.String("role_id", id), zap.Error(err))
		return nil, err
	}
	return toRoleResponse(role), nil
}

func (s *roleService) Delete(ctx context.Context, actorID, id string) error {
	if _, err := s.repo.Role.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoleNotFound
		}
		return err
	}
	return s.repo.Role.Delete(ctx, id, actorID)
}

func (s *roleService) List(ctx context.Context, req *dto.ListRequest) ([]dto.RoleResponse, int64, error) {
	roles, total, err := s.repo.Role.List(ctx, req.Offset(), req.PageSize)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]dto.RoleResponse, 0, len(roles))
	for i := range roles {
		resp = append(resp, *toRoleResponse(&roles[i]))
	}
	return resp, total, nil
}

func (s *roleService) GrantPermission(ctx context.Context, roleID, permissionID string) error {
	role, err := s.repo.Role.GetByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoleNotFound
		}
		return err
	}
	if _, err := s.repo.Permission.GetByID(ctx, permissionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPermissionNotFound
		}
		return err
	}

	// granting an already-held permission is a no-op
	for _, p := range role.Permissions {
		if p.PermissionID == permissionID {
			return nil
		}
	}
	return s.repo.Role.GrantPermission(ctx, roleID, permissionID)
}

func (s *roleService) RevokePermission(ctx context.Context, roleID, permissionID string) error {
	if _, err := s.repo.Role.GetByID(ctx, roleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoleNotFound
		}
		return err
	}
	return s.repo.Role.RevokePermission(ctx, roleID, permissionID)
}

// ── Permission service ──

type permissionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPermissionService creates the PermissionService.
func NewPermissionService(repo *repository.Repository, logger *zap.Logger) PermissionService {
	return &permissionService{repo: repo, logger: logger}
}

func (s *permissionService) Create(ctx context.Context, actorID string, req *dto.CreatePermissionRequest) (*dto.PermissionResponse, error) {
	if _, err := s.repo.Permission.GetByName(ctx, req.Name); err == nil {
		return nil, ErrPermissionNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	permission := &model.Permission{
		Name:        req.Name,
		Description: req.Description,
	}
	if actorID != "" {
		permission.CreatedBy = &actorID
	}

	if err := s.repo.Permission.Create(ctx, permission); err != nil {
		s.logger.Error("create permission failed", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}
	return toPermissionResponse(permission), nil
}

func (s *permissionService) GetByID(ctx context.Context, id string) (*dto.PermissionResponse, error) {
	permission, err := s.repo.Permission.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPermissionNotFound
		}
		return nil, err
	}
	return toPermissionResponse(permission), nil
}

func (s *permissionService) Update(ctx context.Context, actorID, id string, req *dto.UpdatePermissionRequest) (*dto.PermissionResponse, error) {
	if req.Name == nil && req.Description == nil {
		return nil, pkgerrors.ErrEmptyUpdate
	}

	permission, err := s.repo.Permission.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPermissionNotFound
		}
		return nil, err
	}

	if req.Name != nil && *req.Name != permission.Name {
		if _, err := s.repo.Permission.GetByName(ctx, *req.Name); err == nil {
			return nil, ErrPermissionNameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		permission.Name = *req.Name
	}
	if req.Description != nil {
		permission.Description = req.Description
	}
	if actorID != "" {
		permission.UpdatedBy = &actorID
	}

	if err := s.repo.Permission.Update(ctx, permission); err != nil {
		s.logger.Error("update permission failed", zap.String("permission_id", id), zap.Error(err))
		return nil, err
	}
	return toPermissionResponse(permission), nil
}

func (s *permissionService) Delete(ctx context.Context, actorID, id string) error {
	if _, err := s.repo.Permission.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPermissionNotFound
		}
		return err
	}
	return s.repo.Permission.Delete(ctx, id, actorID)
}

func (s *permissionService) List(ctx context.Context, req *dto.ListRequest) ([]dto.PermissionResponse, int64, error) {
	permissions, total, err := s.repo.Permission.List(ctx, req.Offset(), req.PageSize)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]dto.PermissionResponse, 0, len(permissions))
	for i := range permissions {
		resp = append(resp, *toPermissionResponse(&permissions[i]))
	}
	return resp, total, nil
}
