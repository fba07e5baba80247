package service

import (
	"go.uber.org/zap"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/config"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/repository"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/pkg/jwt"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/pkg/redis"
)

// Service aggregates every business service.
type Service struct {
	Auth         AuthService
	Authz        AuthzService
	User         UserService
	Role         RoleService
	Permission   PermissionService
	Batch        BatchService
	Section      SectionService
	Course       CourseService
	Room         RoomService
	Slot         SlotService
	Schedule     WeeklyScheduleService
	ClassHistory ClassHistoryService
	Materializer MaterializerService
	Export       ExportService
	Calendar     CalendarService
}

// NewService wires the service aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	authz := NewAuthzService(repo, logger)
	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Authz:        authz,
		User:         NewUserService(repo, logger),
		Role:         NewRoleService(repo, logger),
		Permission:   NewPermissionService(repo, logger),
		Batch:        NewBatchService(repo, logger),
		Section:      NewSectionService(repo, logger),
		Course:       NewCourseService(repo, logger),
		Room:         NewRoomService(repo, logger),
		Slot:         NewSlotService(repo, logger),
		Schedule:     NewWeeklyScheduleService(repo, logger),
		ClassHistory: NewClassHistoryService(repo, authz, logger),
		Materializer: NewMaterializerService(repo, logger),
		Export:       NewExportService(repo, logger),
		Calendar:     NewCalendarService(repo, logger),
	}
}
