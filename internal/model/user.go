package model

// User is an account in the system. Teachers, staff, and admins are all
// users; what they may do is determined entirely by their roles.
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	Email        string `gorm:"type:varchar(255);not null"                     json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	SoftDeleteModel

	// associations
	Roles []Role `gorm:"many2many:user_roles;foreignKey:UserID;joinForeignKey:UserID;references:RoleID;joinReferences:RoleID" json:"roles,omitempty"`
}

// TableName sets the table name.
func (User) TableName() string { return "users" }

// UserRole is the user→role join row. Managed through explicit
// assign/remove operations, never independently.
type UserRole struct {
	UserID string `gorm:"type:uuid;primaryKey" json:"user_id"`
	RoleID string `gorm:"type:uuid;primaryKey" json:"role_id"`
}

// TableName sets the table name.
func (UserRole) TableName() string { return "user_roles" }
