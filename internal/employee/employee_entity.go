package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusOnLeave  = "on_leave"
)

type Employee struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string     `gorm:"type:varchar(20);not null"`
	FirstName      string     `gorm:"type:varchar(100);not null"`
	LastName       string     `gorm:"type:varchar(100);not null"`
	Email          string     `gorm:"type:varchar(255);not null"`
	PhoneNumber    string     `gorm:"type:varchar(30)"`
	PasswordHash   string     `gorm:"type:text;not null"`
	DepartmentID   *uuid.UUID `gorm:"type:uuid"`
	RoleID         *uuid.UUID `gorm:"type:uuid"`
	ManagerID      *uuid.UUID `gorm:"type:uuid"`
	JoiningDate    time.Time  `gorm:"type:date"`
	Status         string     `gorm:"type:varchar(20);not null;default:active"`
	IsActive       bool       `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Department *DepartmentRef `gorm:"foreignKey:DepartmentID"`
	Role       *RoleRef       `gorm:"foreignKey:RoleID"`
}

func (Employee) TableName() string { return "employees" }

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type DepartmentRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

func (DepartmentRef) TableName() string { return "departments" }

type RoleRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

func (RoleRef) TableName() string { return "roles" }

// Filter narrows FindAll. ManagerID and SelfID come from the caller's scope,
// the rest from the query string.
type Filter struct {
	Name         string
	DepartmentID string
	RoleID       string
	Status       string
	ManagerID    string
	SelfID       string
}
