package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/model"
)

// RoleRepository is the role data-access interface.
type RoleRepository interface {
	Create(ctx context.Context, role *model.Role) error
	GetByID(ctx context.Context, id string) (*model.Role, error)
	GetByName(ctx context.Context, name string) (*model.Role, error)
	Update(ctx context.Context, role *model.Role) error
	Delete(ctx context.Context, id string, deletedBy string) error
	List(ctx context.Context, offset, limit int) ([]model.Role, int64, error)

	// permission grants
	GrantPermission(ctx context.Context, roleID, permissionID string) error
	RevokePermission(ctx context.Context, roleID, permissionID string) error
}

// PermissionRepository is the permission data-access interface.
type PermissionRepository interface {
	Create(ctx context.Context, permission *model.Permission) error
	GetByID(ctx context.Context, id string) (*model.Permission, error)
	GetByName(ctx context.Context, name string) (*model.Permission, error)
	Update(ctx context.Context, permission *model.Permission) error
	Delete(ctx context.Context, id string, deletedBy string) error
	List(ctx context.Context, offset, limit int) ([]model.Permission, int64, error)

	// ListNamesByRoleIDs returns the distinct names of active permissions
	// reachable from the given roles. The authorization evaluator calls this
	// on every check; it must not be cached.
	ListNamesByRoleIDs(ctx context.Context, roleIDs []string) ([]string, error)
}

// ── Role repository ──

type roleRepo struct {
	db *gorm.DB
}

// NewRoleRepo creates the GORM-backed RoleRepository.
func NewRoleRepo(db *gorm.DB) RoleRepository {
	return &roleRepo{db: db}
}

func (r *roleRepo) Create(ctx context.Context, role *model.Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *roleRepo) GetByID(ctx context.Context, id string) (*model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).
		Preload("Permissions").
		Where("role_id = ?", id).
		First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) GetByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) Update(ctx context.Context, role *model.Role) error {
	return r.db.WithContext(ctx).Save(role).Error
}

func (r *roleRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Role{}).
		Where("role_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}

func (r *roleRepo) List(ctx context.Context, offset, limit int) ([]model.Role, int64, error) {
	var roles []model.Role
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Role{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Permissions").
		Offset(offset).Limit(limit).
		Order("name ASC").
		Find(&roles).Error; err != nil {
		return nil, 0, err
	}

	return roles, total, nil
}

func (r *roleRepo) GrantPermission(ctx context.Context, roleID, permissionID string) error {
	return r.db.WithContext(ctx).Create(&model.RolePermission{
		RoleID:       roleID,
		PermissionID: permissionID,
	}).Error
}

func (r *roleRepo) RevokePermission(ctx context.Context, roleID, permissionID string) error {
	return r.db.WithContext(ctx).
		Where("role_id = ? AND permission_id = ?", roleID, permissionID).
		Delete(&model.RolePermission{}).Error
}

// ── Permission repository ──

type permissionRepo struct {
	db *gorm.DB
}

// NewPermissionRepo creates the GORM-backed PermissionRepository.
func NewPermissionRepo(db *gorm.DB) PermissionRepository {
	return &permissionRepo{db: db}
}

func (r *permissionRepo) Create(ctx context.Context, permission *model.Permission) error {
	return r.db.WithContext(ctx).Create(permission).Error
}

func (r *permissionRepo) GetByID(ctx context.Context, id string) (*model.Permission, error) {
	var permission model.Permission
	err := r.db.WithContext(ctx).
		Where("permission_id = ?", id).
		First(&permission).Error
	if err != nil {
		return nil, err
	}
	return &permission, nil
}

func (r *permissionRepo) GetByName(ctx context.Context, name string) (*model.Permission, error) {
	var permission model.Permission
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&permission).Error
	if err != nil {
		return nil, err
	}
	return &permission, nil
}

func (r *permissionRepo) Update(ctx context.Context, permission *model.Permission) error {
	return r.db.WithContext(ctx).Save(permission).Error
}

func (r *permissionRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Permission{}).
		Where("permission_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}

func (r *permissionRepo) List(ctx context.Context, offset, limit int) ([]model.Permission, int64, error) {
	var permissions []model.Permission
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Permission{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("name ASC").
		Find(&permissions).Error; err != nil {
		return nil, 0, err
	}

	return permissions, total, nil
}

func (r *permissionRepo) ListNamesByRoleIDs(ctx context.Context, roleIDs []string) ([]string, error) {
	if len(roleIDs) == 0 {
		return nil, nil
	}
	var names []string
	err := r.db.WithContext(ctx).
		Model(&model.Permission{}).
		Distinct("permissions.name").
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.permission_id").
		Where("role_permissions.role_id IN ?", roleIDs).
		Pluck("permissions.name", &names).Error
	return names, err
}
