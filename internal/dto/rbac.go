package dto

// ── role & permission module DTOs ──

// CreateRoleRequest is the role creation payload.
type CreateRoleRequest struct {
	Name        string  `json:"name"        binding:"required,min=2,max=50"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// UpdateRoleRequest is the partial role update payload.
type UpdateRoleRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=2,max=50"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// GrantPermissionRequest attaches a permission to a role.
type GrantPermissionRequest struct {
	PermissionID string `json:"permission_id" binding:"required,uuid"`
}

// CreatePermissionRequest is the permission creation payload.
type CreatePermissionRequest struct {
	Name        string  `json:"name"        binding:"required,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// UpdatePermissionRequest is the partial permission update payload.
type UpdatePermissionRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// RoleBrief is the compact role payload embedded in user responses.
type RoleBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RoleResponse is the full role payload.
type RoleResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description,omitempty"`
	Permissions []PermissionBrief `json:"permissions,omitempty"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

// PermissionBrief is the compact permission payload embedded in role responses.
type PermissionBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PermissionResponse is the full permission payload.
type PermissionResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
