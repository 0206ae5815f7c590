package policy

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusDraft    = "draft"
	StatusActive   = "active"
	StatusArchived = "archived"

	DefaultVersion = "1.0"
)

type Policy struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title         string
	Description   string
	Category      string
	Version       string
	EffectiveDate time.Time `gorm:"type:date"`
	IsMandatory   bool
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Policy) TableName() string {
	return "policies"
}

type Acknowledgment struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID          uuid.UUID `gorm:"type:uuid;not null"`
	PolicyID            uuid.UUID `gorm:"type:uuid;not null"`
	AcknowledgedAt      time.Time
	VersionAcknowledged string
	CreatedAt           time.Time
}

func (Acknowledgment) TableName() string {
	return "policy_acknowledgments"
}

// AckRow is one acknowledgment of a policy at its current version.
type AckRow struct {
	EmployeeID uuid.UUID
	PolicyID   uuid.UUID
}

type EmployeeRef struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
}

func (e EmployeeRef) FullName() string {
	return e.FirstName + " " + e.LastName
}
