package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/model"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/repository"
)

// ── authorization failure taxonomy ──
// All three are terminal for the guarded operation: the guard runs strictly
// before any mutation, none are retried, and all surface as access denials.

var (
	ErrNotAuthenticated = errors.New("no user identity supplied")
	ErrNoRoleAssigned   = errors.New("user has no role assigned")
	ErrForbidden        = errors.New("permission denied")
)

// Policy names the permission pair guarding an operation. Permission is the
// broad check; OwnPermission, when set, is attempted as a fallback for
// callers acting on a record they own.
type Policy struct {
	Permission    string
	OwnPermission string
}

// AuthzService decides whether a user may perform an operation. It holds no
// state: every check re-queries the store, so role and permission changes
// take effect immediately.
type AuthzService interface {
	// CheckPermission returns nil when the user's reachable permission set
	// contains the wildcard "*" or the required name exactly.
	CheckPermission(ctx context.Context, userID, permission string) error

	// CheckPolicy runs the broad check and, on ErrForbidden, falls back to
	// the own-record permission: the caller must both hold OwnPermission and
	// be the owner of the record (ownerID) for the fallback to succeed.
	CheckPolicy(ctx context.Context, userID string, pol Policy, ownerID string) error
}

type authzService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAuthzService creates the AuthzService.
func NewAuthzService(repo *repository.Repository, logger *zap.Logger) AuthzService {
	return &authzService{repo: repo, logger: logger}
}

func (s *authzService) CheckPermission(ctx context.Context, userID, permission string) error {
	if userID == "" {
		return ErrNotAuthenticated
	}

	roles, err := s.repo.User.ListRoles(ctx, userID)
	if err != nil {
		s.logger.Error("list user roles failed", zap.String("user_id", userID), zap.Error(err))
		return err
	}
	if len(roles) == 0 {
		return ErrNoRoleAssigned
	}

	roleIDs := make([]string, 0, len(roles))
	for _, r := range roles {
		roleIDs = append(roleIDs, r.RoleID)
	}

	names, err := s.repo.Permission.ListNamesByRoleIDs(ctx, roleIDs)
	if err != nil {
		s.logger.Error("list role permissions failed", zap.String("user_id", userID), zap.Error(err))
		return err
	}

	for _, name := range names {
		if name == model.PermissionWildcard || name == permission {
			return nil
		}
	}

	return ErrForbidden
}

func (s *authzService) CheckPolicy(ctx context.Context, userID string, pol Policy, ownerID string) error {
	err := s.CheckPermission(ctx, userID, pol.Permission)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrForbidden) || pol.OwnPermission == "" {
		return err
	}

	// broad check denied: try the own-record fallback
	if err := s.CheckPermission(ctx, userID, pol.OwnPermission); err != nil {
		return err
	}
	if ownerID == "" || ownerID != userID {
		return ErrForbidden
	}
	return nil
}
