package model

// PermissionWildcard is the reserved permission name granting everything.
const PermissionWildcard = "*"

// Role groups permissions. A user may hold any number of roles; the
// permissions reachable for a user are the union over all their roles.
type Role struct {
	RoleID      string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"role_id"`
	Name        string  `gorm:"type:varchar(50);not null"                      json:"name"`
	Description *string `gorm:"type:varchar(255)"                              json:"description,omitempty"`
	SoftDeleteModel

	// associations
	Permissions []Permission `gorm:"many2many:role_permissions;foreignKey:RoleID;joinForeignKey:RoleID;references:PermissionID;joinReferences:PermissionID" json:"permissions,omitempty"`
}

// TableName sets the table name.
func (Role) TableName() string { return "roles" }

// Permission is a named capability checked by the authorization evaluator.
type Permission struct {
	PermissionID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"permission_id"`
	Name         string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Description  *string `gorm:"type:varchar(255)"                              json:"description,omitempty"`
	SoftDeleteModel
}

// TableName sets the table name.
func (Permission) TableName() string { return "permissions" }

// RolePermission is the role→permission join row.
type RolePermission struct {
	RoleID       string `gorm:"type:uuid;primaryKey" json:"role_id"`
	PermissionID string `gorm:"type:uuid;primaryKey" json:"permission_id"`
}

// TableName sets the table name.
func (RolePermission) TableName() string { return "role_permissions" }
