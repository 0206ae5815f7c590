package department

import (
	"time"

	"github.com/google/uuid"
)

type Department struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:100;not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// Member is the slice of an employee row shown under a department.
type Member struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string
	FirstName      string
	LastName       string
	Email          string
	Status         string
	DepartmentID   *uuid.UUID `gorm:"type:uuid"`
}

func (Member) TableName() string { return "employees" }
