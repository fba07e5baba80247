package dto

// ── academic catalog DTOs ──

// CreateBatchRequest is the batch creation payload.
type CreateBatchRequest struct {
	Name        string  `json:"name"        binding:"required,min=1,max=50"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// UpdateBatchRequest is the partial batch update payload.
type UpdateBatchRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=1,max=50"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// BatchResponse is the batch payload.
type BatchResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// CreateSectionRequest is the section creation payload.
type CreateSectionRequest struct {
	Name    string `json:"name"     binding:"required,min=1,max=50"`
	BatchID string `json:"batch_id" binding:"required,uuid"`
}

// UpdateSectionRequest is the partial section update payload.
type UpdateSectionRequest struct {
	Name    *string `json:"name"     binding:"omitempty,min=1,max=50"`
	BatchID *string `json:"batch_id" binding:"omitempty,uuid"`
}

// SectionListRequest is the section list query.
type SectionListRequest struct {
	ListRequest
	BatchID string `form:"batch_id" binding:"omitempty,uuid"`
}

// SectionResponse is the section payload.
type SectionResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	BatchID   string      `json:"batch_id"`
	Batch     *BatchBrief `json:"batch,omitempty"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}

// BatchBrief is the compact batch payload embedded in section responses.
type BatchBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateCourseRequest is the course creation payload.
type CreateCourseRequest struct {
	Code  string `json:"code"  binding:"required,min=1,max=20"`
	Title string `json:"title" binding:"required,min=1,max=100"`
}

// UpdateCourseRequest is the partial course update payload.
type UpdateCourseRequest struct {
	Code  *string `json:"code"  binding:"omitempty,min=1,max=20"`
	Title *string `json:"title" binding:"omitempty,min=1,max=100"`
}

// CourseResponse is the course payload.
type CourseResponse struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CreateRoomRequest is the room creation payload.
type CreateRoomRequest struct {
	Name     string `json:"name"     binding:"required,min=1,max=50"`
	Capacity int    `json:"capacity" binding:"omitempty,min=0"`
}

// UpdateRoomRequest is the partial room update payload.
type UpdateRoomRequest struct {
	Name     *string `json:"name"     binding:"omitempty,min=1,max=50"`
	Capacity *int    `json:"capacity" binding:"omitempty,min=0"`
}

// RoomResponse is the room payload.
type RoomResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CreateSlotRequest is the slot creation payload.
type CreateSlotRequest struct {
	Ordinal   int    `json:"ordinal"    binding:"required,min=1"`
	StartTime string `json:"start_time" binding:"required"` // "08:00"
	EndTime   string `json:"end_time"   binding:"required"` // "09:20"
}

// UpdateSlotRequest is the partial slot update payload.
type UpdateSlotRequest struct {
	Ordinal   *int    `json:"ordinal"    binding:"omitempty,min=1"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

// SlotResponse is the slot payload.
type SlotResponse struct {
	ID        string `json:"id"`
	Ordinal   int    `json:"ordinal"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
