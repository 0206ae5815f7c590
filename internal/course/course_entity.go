package course

import (
	"time"

	"github.com/google/uuid"
)

const (
	CourseActive   = "active"
	CourseInactive = "inactive"

	EnrollmentEnrolled   = "enrolled"
	EnrollmentInProgress = "in_progress"
	EnrollmentCompleted  = "completed"
	EnrollmentDropped    = "dropped"
)

type Course struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string
	Description string
	Duration    int // hours
	Category    string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Course) TableName() string {
	return "courses"
}

type Enrollment struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID     uuid.UUID  `gorm:"type:uuid;not null"`
	CourseID       uuid.UUID  `gorm:"type:uuid;not null"`
	Status         string
	AssignedBy     *uuid.UUID `gorm:"type:uuid"`
	CompletionDate *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Course         *Course `gorm:"foreignKey:CourseID;references:ID"`
}

func (Enrollment) TableName() string {
	return "course_enrollments"
}
