package payroll

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const StatusGenerated = "generated"

type Payslip struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID    `gorm:"type:uuid;not null"`
	SalaryID    uuid.UUID    `gorm:"type:uuid;not null"`
	Month       int          `gorm:"not null"`
	Year        int          `gorm:"not null"`
	BasicSalary float64      `gorm:"type:numeric(14,2)"`
	Allowances  float64      `gorm:"type:numeric(14,2)"`
	Deductions  float64      `gorm:"type:numeric(14,2)"`
	GrossSalary float64      `gorm:"type:numeric(14,2)"`
	NetSalary   float64      `gorm:"type:numeric(14,2)"`
	TaxDeducted float64      `gorm:"type:numeric(14,2)"`
	Status      string       `gorm:"type:varchar(20)"`
	GeneratedAt time.Time    `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Employee    *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Payslip) TableName() string {
	return "payslips"
}

type EmployeeRef struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string
	FirstName      string
	LastName       string
	Email          string
}

func (EmployeeRef) TableName() string {
	return "employees"
}

func (e EmployeeRef) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}
