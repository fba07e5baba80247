package model

// Batch is a student intake cohort.
type Batch struct {
	BatchID     string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"batch_id"`
	Name        string  `gorm:"type:varchar(50);not null"                      json:"name"`
	Description *string `gorm:"type:varchar(255)"                              json:"description,omitempty"`
	SoftDeleteModel
}

// TableName sets the table name.
func (Batch) TableName() string { return "batches" }

// Section is a teaching group within a batch.
type Section struct {
	SectionID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"section_id"`
	Name      string `gorm:"type:varchar(50);not null"                      json:"name"`
	BatchID   string `gorm:"type:uuid;not null"                             json:"batch_id"`
	SoftDeleteModel

	// associations
	Batch *Batch `gorm:"foreignKey:BatchID;references:BatchID" json:"batch,omitempty"`
}

// TableName sets the table name.
func (Section) TableName() string { return "sections" }

// Course is a taught subject.
type Course struct {
	CourseID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"course_id"`
	Code     string `gorm:"type:varchar(20);not null"                      json:"code"`
	Title    string `gorm:"type:varchar(100);not null"                     json:"title"`
	SoftDeleteModel
}

// TableName sets the table name.
func (Course) TableName() string { return "courses" }

// Room is a physical classroom.
type Room struct {
	RoomID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"room_id"`
	Name     string `gorm:"type:varchar(50);not null"                      json:"name"`
	Capacity int    `gorm:"type:smallint;not null;default:0"               json:"capacity"`
	SoftDeleteModel
}

// TableName sets the table name.
func (Room) TableName() string { return "rooms" }

// Slot is a teaching period within a day ("08:00" to "09:20" etc.).
// Ordinal orders slots within the day.
type Slot struct {
	SlotID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"slot_id"`
	Ordinal   int    `gorm:"type:smallint;not null"                         json:"ordinal"`
	StartTime string `gorm:"type:time;not null"                             json:"start_time"`
	EndTime   string `gorm:"type:time;not null"                             json:"end_time"`
	SoftDeleteModel
}

// TableName sets the table name.
func (Slot) TableName() string { return "slots" }
