package model

import "time"

// Class history statuses. The value may be overwritten freely among the
// three; no transition ordering is enforced.
const (
	StatusNotDelivered = "notdelivered"
	StatusDelivered    = "delivered"
	StatusRescheduled  = "rescheduled"
)

// ClassHistory is one concrete class occurrence on a calendar date.
// Rows are created by the weekly materializer (status notdelivered) or
// manually; uniqueness on (date, slot, section) keeps repeated materializer
// runs idempotent.
type ClassHistory struct {
	HistoryID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"  json:"history_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uniq_history_date_slot_section,priority:1" json:"date"`
	SlotID    string    `gorm:"type:uuid;not null;uniqueIndex:uniq_history_date_slot_section,priority:2" json:"slot_id"`
	SectionID string    `gorm:"type:uuid;not null;uniqueIndex:uniq_history_date_slot_section,priority:3" json:"section_id"`
	TeacherID string    `gorm:"type:uuid;not null"                              json:"teacher_id"`
	RoomID    string    `gorm:"type:uuid;not null"                              json:"room_id"`
	CourseID  string    `gorm:"type:uuid;not null"                              json:"course_id"`
	Status    string    `gorm:"type:varchar(20);not null;default:'notdelivered'" json:"status"`
	Notes     *string   `gorm:"type:varchar(500)"                               json:"notes,omitempty"`
	SoftDeleteModel

	// associations
	Slot    *Slot    `gorm:"foreignKey:SlotID;references:SlotID"       json:"slot,omitempty"`
	Section *Section `gorm:"foreignKey:SectionID;references:SectionID" json:"section,omitempty"`
	Teacher *User    `gorm:"foreignKey:TeacherID;references:UserID"    json:"teacher,omitempty"`
	Room    *Room    `gorm:"foreignKey:RoomID;references:RoomID"       json:"room,omitempty"`
	Course  *Course  `gorm:"foreignKey:CourseID;references:CourseID"   json:"course,omitempty"`
}

// TableName sets the table name.
func (ClassHistory) TableName() string { return "class_histories" }

// ValidStatus reports whether s is one of the three class statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusNotDelivered, StatusDelivered, StatusRescheduled:
		return true
	}
	return false
}
