package benefit

import (
	"time"

	"github.com/google/uuid"
)

const (
	AssignmentActive   = "active"
	AssignmentInactive = "inactive"
)

type Benefit struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Description string
	Type        string
	Amount      float64 `gorm:"type:numeric(14,2)"`
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Benefit) TableName() string {
	return "benefits"
}

type EmployeeBenefit struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID  `gorm:"type:uuid;not null"`
	BenefitID  uuid.UUID  `gorm:"type:uuid;not null"`
	StartDate  time.Time  `gorm:"type:date"`
	EndDate    *time.Time `gorm:"type:date"`
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Benefit    *Benefit `gorm:"foreignKey:BenefitID;references:ID"`
}

func (EmployeeBenefit) TableName() string {
	return "employee_benefits"
}
