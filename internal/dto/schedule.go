package dto

// ── weekly schedule DTOs ──

// CreateWeeklyScheduleRequest is the template creation payload.
type CreateWeeklyScheduleRequest struct {
	Day       string `json:"day"        binding:"required,oneof=sunday monday tuesday wednesday thursday friday saturday"`
	SlotID    string `json:"slot_id"    binding:"required,uuid"`
	SectionID string `json:"section_id" binding:"required,uuid"`
	TeacherID string `json:"teacher_id" binding:"required,uuid"`
	RoomID    string `json:"room_id"    binding:"required,uuid"`
	CourseID  string `json:"course_id"  binding:"required,uuid"`
}

// UpdateWeeklyScheduleRequest is the partial template update payload.
type UpdateWeeklyScheduleRequest struct {
	Day       *string `json:"day"        binding:"omitempty,oneof=sunday monday tuesday wednesday thursday friday saturday"`
	SlotID    *string `json:"slot_id"    binding:"omitempty,uuid"`
	SectionID *string `json:"section_id" binding:"omitempty,uuid"`
	TeacherID *string `json:"teacher_id" binding:"omitempty,uuid"`
	RoomID    *string `json:"room_id"    binding:"omitempty,uuid"`
	CourseID  *string `json:"course_id"  binding:"omitempty,uuid"`
	Status    *string `json:"status"     binding:"omitempty,oneof=active suspended"`
}

// WeeklyScheduleListRequest is the template list query.
type WeeklyScheduleListRequest struct {
	ListRequest
	Day       string `form:"day"        binding:"omitempty,oneof=sunday monday tuesday wednesday thursday friday saturday"`
	SectionID string `form:"section_id" binding:"omitempty,uuid"`
	TeacherID string `form:"teacher_id" binding:"omitempty,uuid"`
}

// WeeklyScheduleResponse is the template payload.
type WeeklyScheduleResponse struct {
	ID        string        `json:"id"`
	Day       string        `json:"day"`
	SlotID    string        `json:"slot_id"`
	SectionID string        `json:"section_id"`
	TeacherID string        `json:"teacher_id"`
	RoomID    string        `json:"room_id"`
	CourseID  string        `json:"course_id"`
	Status    string        `json:"status"`
	Slot      *SlotResponse `json:"slot,omitempty"`
	Section   *SectionBrief `json:"section,omitempty"`
	Teacher   *UserBrief    `json:"teacher,omitempty"`
	Room      *RoomBrief    `json:"room,omitempty"`
	Course    *CourseBrief  `json:"course,omitempty"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
}

// SectionBrief is the compact section payload for schedule responses.
type SectionBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserBrief is the compact user payload for schedule responses.
type UserBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RoomBrief is the compact room payload for schedule responses.
type RoomBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CourseBrief is the compact course payload for schedule responses.
type CourseBrief struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Title string `json:"title"`
}
