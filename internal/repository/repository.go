package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface.
type Repository struct {
	User         UserRepository
	Role         RoleRepository
	Permission   PermissionRepository
	Batch        BatchRepository
	Section      SectionRepository
	Course       CourseRepository
	Room         RoomRepository
	Slot         SlotRepository
	Schedule     WeeklyScheduleRepository
	ClassHistory ClassHistoryRepository
}

// NewRepository builds the aggregate over a GORM connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:         NewUserRepo(db),
		Role:         NewRoleRepo(db),
		Permission:   NewPermissionRepo(db),
		Batch:        NewBatchRepo(db),
		Section:      NewSectionRepo(db),
		Course:       NewCourseRepo(db),
		Room:         NewRoomRepo(db),
		Slot:         NewSlotRepo(db),
		Schedule:     NewWeeklyScheduleRepo(db),
		ClassHistory: NewClassHistoryRepo(db),
	}
}
