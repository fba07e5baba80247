package dto

// ── class history DTOs ──

// CreateClassHistoryRequest is the manual history creation payload.
type CreateClassHistoryRequest struct {
	Date      string  `json:"date"       binding:"required,datetime=2006-01-02"`
	SlotID    string  `json:"slot_id"    binding:"required,uuid"`
	SectionID string  `json:"section_id" binding:"required,uuid"`
	TeacherID string  `json:"teacher_id" binding:"required,uuid"`
	RoomID    string  `json:"room_id"    binding:"required,uuid"`
	CourseID  string  `json:"course_id"  binding:"required,uuid"`
	Status    *string `json:"status"     binding:"omitempty,oneof=notdelivered delivered rescheduled"`
	Notes     *string `json:"notes"      binding:"omitempty,max=500"`
}

// UpdateClassHistoryRequest updates status and/or notes of an occurrence.
// At least one field must be present.
type UpdateClassHistoryRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=notdelivered delivered rescheduled"`
	Notes  *string `json:"notes"  binding:"omitempty,max=500"`
}

// ClassHistoryListRequest is the history list query.
type ClassHistoryListRequest struct {
	ListRequest
	From      string `form:"from"       binding:"omitempty,datetime=2006-01-02"`
	To        string `form:"to"         binding:"omitempty,datetime=2006-01-02"`
	SectionID string `form:"section_id" binding:"omitempty,uuid"`
	TeacherID string `form:"teacher_id" binding:"omitempty,uuid"`
	Status    string `form:"status"     binding:"omitempty,oneof=notdelivered delivered rescheduled"`
}

// ClassHistoryResponse is the occurrence payload.
type ClassHistoryResponse struct {
	ID        string        `json:"id"`
	Date      string        `json:"date"`
	SlotID    string        `json:"slot_id"`
	SectionID string        `json:"section_id"`
	TeacherID string        `json:"teacher_id"`
	RoomID    string        `json:"room_id"`
	CourseID  string        `json:"course_id"`
	Status    string        `json:"status"`
	Notes     *string       `json:"notes,omitempty"`
	Slot      *SlotResponse `json:"slot,omitempty"`
	Section   *SectionBrief `json:"section,omitempty"`
	Teacher   *UserBrief    `json:"teacher,omitempty"`
	Room      *RoomBrief    `json:"room,omitempty"`
	Course    *CourseBrief  `json:"course,omitempty"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
}

// MaterializeResultResponse reports a materializer run.
type MaterializeResultResponse struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}
