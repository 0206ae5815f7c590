package auth

import (
	"time"

	"github.com/google/uuid"
)

// Account is the login view of an employee row. RoleName is read through a
// join on roles and never written.
type Account struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string     `gorm:"type:varchar(20)"`
	FirstName      string     `gorm:"type:varchar(100)"`
	LastName       string     `gorm:"type:varchar(100)"`
	Email          string     `gorm:"type:varchar(255)"`
	PasswordHash   string     `gorm:"type:text"`
	RoleID         *uuid.UUID `gorm:"type:uuid"`
	RoleName       string     `gorm:"->;column:role_name"`
	DepartmentID   *uuid.UUID `gorm:"type:uuid"`
	ManagerID      *uuid.UUID `gorm:"type:uuid"`
	Status         string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Account) TableName() string { return "employees" }
