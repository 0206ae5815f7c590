package attendance

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusHalfDay = "half-day"
	StatusLate    = "late"
)

type Attendance struct {
	ID         uuid.UUID    `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID uuid.UUID    `gorm:"column:employee_id;type:uuid;not null"`
	Date       time.Time    `gorm:"column:date;type:date;not null"`
	CheckIn    *time.Time   `gorm:"column:check_in;type:timestamptz"`
	CheckOut   *time.Time   `gorm:"column:check_out;type:timestamptz"`
	Status     string       `gorm:"column:status;type:varchar(20);not null;default:present"`
	WorkHours  string       `gorm:"column:work_hours;type:varchar(10);not null;default:''"`
	CreatedAt  time.Time    `gorm:"column:created_at"`
	UpdatedAt  time.Time    `gorm:"column:updated_at"`
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendance"
}

type EmployeeRef struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string
	FirstName      string
	LastName       string
}

func (EmployeeRef) TableName() string {
	return "employees"
}

func (e EmployeeRef) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

type Filter struct {
	EmployeeID string
	Status     string
	From       *time.Time
	To         *time.Time
}
