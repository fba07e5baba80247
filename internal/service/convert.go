package service

import (
	"time"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/dto"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/model"
)

// model → DTO converters shared across services.

func toUserResponse(u *model.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:        u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
	for _, r := range u.Roles {
		resp.Roles = append(resp.Roles, dto.RoleBrief{ID: r.RoleID, Name: r.Name})
	}
	return resp
}

func toRoleResponse(r *model.Role) *dto.RoleResponse {
	resp := &dto.RoleResponse{
		ID:          r.RoleID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
	for _, p := range r.Permissions {
		resp.Permissions = append(resp.Permissions, dto.PermissionBrief{ID: p.PermissionID, Name: p.Name})
	}
	return resp
}

func toPermissionResponse(p *model.Permission) *dto.PermissionResponse {
	return &dto.PermissionResponse{
		ID:          p.PermissionID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}

func toBatchResponse(b *model.Batch) *dto.BatchResponse {
	return &dto.BatchResponse{
		ID:          b.BatchID,
		Name:        b.Name,
		Description: b.Description,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   b.UpdatedAt.Format(time.RFC3339),
	}
}

func toSectionResponse(s *model.Section) *dto.SectionResponse {
	resp := &dto.SectionResponse{
		ID:        s.SectionID,
		Name:      s.Name,
		BatchID:   s.BatchID,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
	if s.Batch != nil {
		resp.Batch = &dto.BatchBrief{ID: s.Batch.BatchID, Name: s.Batch.Name}
	}
	return resp
}

func toCourseResponse(c *model.Course) *dto.CourseResponse {
	return &dto.CourseResponse{
		ID:        c.CourseID,
		Code:      c.Code,
		Title:     c.Title,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

func toRoomResponse(r *model.Room) *dto.RoomResponse {
	return &dto.RoomResponse{
		ID:        r.RoomID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}
}

func toSlotResponse(s *model.Slot) *dto.SlotResponse {
	return &dto.SlotResponse{
		ID:        s.SlotID,
		Ordinal:   s.Ordinal,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}

func toWeeklyScheduleResponse(s *model.WeeklySchedule) *dto.WeeklyScheduleResponse {
	resp := &dto.WeeklyScheduleResponse{
		ID:        s.ScheduleID,
		Day:       string(s.Day),
		SlotID:    s.SlotID,
		SectionID: s.SectionID,
		TeacherID: s.TeacherID,
		RoomID:    s.RoomID,
		CourseID:  s.CourseID,
		Status:    s.Status,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
	if s.Slot != nil {
		resp.Slot = toSlotResponse(s.Slot)
	}
	if s.Section != nil {
		resp.Section = &dto.SectionBrief{ID: s.Section.SectionID, Name: s.Section.Name}
	}
	if s.Teacher != nil {
		resp.Teacher = &dto.UserBrief{ID: s.Teacher.UserID, Name: s.Teacher.Name}
	}
	if s.Room != nil {
		resp.Room = &dto.RoomBrief{ID: s.Room.RoomID, Name: s.Room.Name}
	}
	if s.Course != nil {
		resp.Course = &dto.CourseBrief{ID: s.Course.CourseID, Code: s.Course.Code, Title: s.Course.Title}
	}
	return resp
}

func toClassHistoryResponse(h *model.ClassHistory) *dto.ClassHistoryResponse {
	resp := &dto.ClassHistoryResponse{
		ID:        h.HistoryID,
		Date:      h.Date.Format("2006-01-02"),
		SlotID:    h.SlotID,
		SectionID: h.SectionID,
		TeacherID: h.TeacherID,
		RoomID:    h.RoomID,
		CourseID:  h.CourseID,
		Status:    h.Status,
		Notes:     h.Notes,
		CreatedAt: h.CreatedAt.Format(time.RFC3339),
		UpdatedAt: h.UpdatedAt.Format(time.RFC3339),
	}
	if h.Slot != nil {
		resp.Slot = toSlotResponse(h.Slot)
	}
	if h.Section != nil {
		resp.Section = &dto.SectionBrief{ID: h.Section.SectionID, Name: h.Section.Name}
	}
	if h.Teacher != nil {
		resp.Teacher = &dto.UserBrief{ID: h.Teacher.UserID, Name: h.Teacher.Name}
	}
	if h.Room != nil {
		resp.Room = &dto.RoomBrief{ID: h.Room.RoomID, Name: h.Room.Name}
	}
	if h.Course != nil {
		resp.Course = &dto.CourseBrief{ID: h.Course.CourseID, Code: h.Course.Code, Title: h.Course.Title}
	}
	return resp
}
