package salary

import (
	"time"

	"github.com/google/uuid"
)

const (
	RegimeOld = "old"
	RegimeNew = "new"
)

type Salary struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID    uuid.UUID `gorm:"type:uuid;not null"`
	BasicSalary   float64   `gorm:"type:numeric(14,2)"`
	Allowances    float64   `gorm:"type:numeric(14,2)"`
	Deductions    float64   `gorm:"type:numeric(14,2)"`
	GrossSalary   float64   `gorm:"type:numeric(14,2)"`
	NetSalary     float64   `gorm:"type:numeric(14,2)"`
	EffectiveDate time.Time `gorm:"type:date"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Salary) TableName() string {
	return "salaries"
}

type TaxInfo struct {
	ID              uuid.UUID              `gorm:"type:uuid;primaryKey"`
	EmployeeID      uuid.UUID              `gorm:"type:uuid;not null"`
	PANNumber       string                 `gorm:"column:pan_number"`
	TaxRegime       string                 `gorm:"column:tax_regime"`
	TaxDeclarations map[string]interface{} `gorm:"column:tax_declarations;type:jsonb;serializer:json"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (TaxInfo) TableName() string {
	return "tax_infos"
}
