package leave

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

type LeaveType struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	DefaultDays int       `gorm:"not null;default:0"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type LeaveBalance struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID  `gorm:"type:uuid;not null"`
	LeaveTypeID uuid.UUID  `gorm:"type:uuid;not null"`
	LeaveType   *LeaveType `gorm:"foreignKey:LeaveTypeID"`
	Year        int        `gorm:"not null"`
	TotalDays   int        `gorm:"not null;default:0"`
	UsedDays    int        `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (b LeaveBalance) Remaining() int {
	return b.TotalDays - b.UsedDays
}

type Leave struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID    `gorm:"type:uuid;not null"`
	Employee    *EmployeeRef `gorm:"foreignKey:EmployeeID"`
	LeaveTypeID uuid.UUID    `gorm:"type:uuid;not null"`
	LeaveType   *LeaveType   `gorm:"foreignKey:LeaveTypeID"`
	StartDate   time.Time    `gorm:"type:date;not null"`
	EndDate     time.Time    `gorm:"type:date;not null"`
	TotalDays   int          `gorm:"not null"`
	Reason      string       `gorm:"type:text;not null;default:''"`
	Status      string       `gorm:"type:varchar(20);not null;default:'pending'"`
	Comment     string       `gorm:"type:text;not null;default:''"`
	DecidedBy   *uuid.UUID   `gorm:"type:uuid"`
	DecidedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type EmployeeRef struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string
	LastName  string
	ManagerID *uuid.UUID `gorm:"type:uuid"`
}

func (EmployeeRef) TableName() string { return "employees" }

func (e EmployeeRef) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

type Filter struct {
	Status    string
	From      *time.Time
	To        *time.Time
	ManagerID string
}
