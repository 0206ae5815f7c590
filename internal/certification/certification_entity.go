package certification

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive  = "active"
	StatusExpired = "expired"
	StatusRevoked = "revoked"
)

type CertificationType struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                string
	Description         string
	IssuingOrganization string
	ValidityPeriod      int // months, 0 = never expires
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (CertificationType) TableName() string {
	return "certification_types"
}

type EmployeeCertification struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID          uuid.UUID  `gorm:"type:uuid;not null"`
	CertificationTypeID uuid.UUID  `gorm:"type:uuid;not null"`
	CertificationNumber string
	IssueDate           time.Time  `gorm:"type:date"`
	ExpiryDate          *time.Time `gorm:"type:date"`
	Status              string
	CreatedAt           time.Time
	UpdatedAt           time.Time
	CertificationType   *CertificationType `gorm:"foreignKey:CertificationTypeID;references:ID"`
}

func (EmployeeCertification) TableName() string {
	return "employee_certifications"
}
