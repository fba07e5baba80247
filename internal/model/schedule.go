package model

// WeeklySchedule is a recurring weekly template row, not a dated event:
// Day names a weekday that repeats every week. At most one template may
// exist per (day, slot, section); the materializer projects each row onto
// concrete class_histories dates.
type WeeklySchedule struct {
	ScheduleID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"                json:"schedule_id"`
	Day        Weekday `gorm:"type:varchar(9);not null;uniqueIndex:uniq_weekly_day_slot_section,priority:1" json:"day"`
	SlotID     string  `gorm:"type:uuid;not null;uniqueIndex:uniq_weekly_day_slot_section,priority:2"       json:"slot_id"`
	SectionID  string  `gorm:"type:uuid;not null;uniqueIndex:uniq_weekly_day_slot_section,priority:3"       json:"section_id"`
	TeacherID  string  `gorm:"type:uuid;not null"                                            json:"teacher_id"`
	RoomID     string  `gorm:"type:uuid;not null"                                            json:"room_id"`
	CourseID   string  `gorm:"type:uuid;not null"                                            json:"course_id"`
	Status     string  `gorm:"type:varchar(20);not null;default:'active'"                    json:"status"`
	SoftDeleteModel

	// associations
	Slot    *Slot    `gorm:"foreignKey:SlotID;references:SlotID"       json:"slot,omitempty"`
	Section *Section `gorm:"foreignKey:SectionID;references:SectionID" json:"section,omitempty"`
	Teacher *User    `gorm:"foreignKey:TeacherID;references:UserID"    json:"teacher,omitempty"`
	Room    *Room    `gorm:"foreignKey:RoomID;references:RoomID"       json:"room,omitempty"`
	Course  *Course  `gorm:"foreignKey:CourseID;references:CourseID"   json:"course,omitempty"`
}

// TableName sets the table name.
func (WeeklySchedule) TableName() string { return "weekly_schedules" }
