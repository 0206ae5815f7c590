package onboarding

import (
	"time"

	"github.com/google/uuid"
)

const (
	KindOnboarding  = "onboarding"
	KindOffboarding = "offboarding"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"

	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

func ValidKind(kind string) bool {
	return kind == KindOnboarding || kind == KindOffboarding
}

// Task is a template checklist item. RoleID is only meaningful for onboarding.
type Task struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Kind         string
	Title        string
	Description  string
	DepartmentID *uuid.UUID `gorm:"type:uuid"`
	RoleID       *uuid.UUID `gorm:"type:uuid"`
	Priority     string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Task) TableName() string {
	return "onboarding_tasks"
}

type EmployeeTask struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null"`
	TaskID      uuid.UUID `gorm:"type:uuid;not null"`
	Status      string
	Notes       string
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Task        *Task `gorm:"foreignKey:TaskID;references:ID"`
}

func (EmployeeTask) TableName() string {
	return "employee_tasks"
}

// Profile holds the employee attributes templates are matched against.
type Profile struct {
	DepartmentID *uuid.UUID
	RoleID       *uuid.UUID
}
