package dto

// ── user module DTOs ──

// CreateUserRequest is the admin user-creation payload.
type CreateUserRequest struct {
	Name     string   `json:"name"     binding:"required,min=2,max=100"`
	Email    string   `json:"email"    binding:"required,email"`
	Password string   `json:"password" binding:"required,min=8"`
	RoleIDs  []string `json:"role_ids" binding:"omitempty,dive,uuid"`
}

// UpdateUserRequest is the partial user update payload.
type UpdateUserRequest struct {
	Name  *string `json:"name"  binding:"omitempty,min=2,max=100"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// AssignRoleRequest attaches a role to a user.
type AssignRoleRequest struct {
	RoleID string `json:"role_id" binding:"required,uuid"`
}

// ListRequest is the shared pagination query.
type ListRequest struct {
	Page     int `form:"page,default=1"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

// Offset converts page/page_size into an offset.
func (r *ListRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// UserResponse is the user payload returned to clients.
type UserResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Roles     []RoleBrief `json:"roles,omitempty"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}
