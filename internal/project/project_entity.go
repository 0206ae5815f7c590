package project

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusOnHold    = "on_hold"
	StatusCancelled = "cancelled"

	AssignmentActive  = "active"
	AssignmentRemoved = "removed"

	FullAllocation = 100
)

type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Description string
	ClientName  string
	StartDate   *time.Time `gorm:"type:date"`
	EndDate     *time.Time `gorm:"type:date"`
	Status      string
	Priority    string
	Budget      float64 `gorm:"type:numeric(14,2)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Project) TableName() string {
	return "projects"
}

type Assignment struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID           uuid.UUID  `gorm:"type:uuid;not null"`
	ProjectID            uuid.UUID  `gorm:"type:uuid;not null"`
	Role                 string
	StartDate            time.Time  `gorm:"type:date"`
	EndDate              *time.Time `gorm:"type:date"`
	AllocationPercentage int
	Status               string
	AssignedBy           *uuid.UUID `gorm:"type:uuid"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
	Project              *Project `gorm:"foreignKey:ProjectID;references:ID"`
}

func (Assignment) TableName() string {
	return "project_assignments"
}
