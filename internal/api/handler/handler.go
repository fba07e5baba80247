package handler

import "github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Role         *RoleHandler
	Permission   *PermissionHandler
	Batch        *BatchHandler
	Section      *SectionHandler
	Course       *CourseHandler
	Room         *RoomHandler
	Slot         *SlotHandler
	Schedule     *ScheduleHandler
	ClassHistory *ClassHistoryHandler
	Export       *ExportHandler
}

// NewHandler wires the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		User:         NewUserHandler(svc.User),
		Role:         NewRoleHandler(svc.Role),
		Permission:   NewPermissionHandler(svc.Permission),
		Batch:        NewBatchHandler(svc.Batch),
		Section:      NewSectionHandler(svc.Section),
		Course:       NewCourseHandler(svc.Course),
		Room:         NewRoomHandler(svc.Room),
		Slot:         NewSlotHandler(svc.Slot),
		Schedule:     NewScheduleHandler(svc.Schedule),
		ClassHistory: NewClassHistoryHandler(svc.ClassHistory, svc.Materializer),
		Export:       NewExportHandler(svc.Export, svc.Calendar),
	}
}
