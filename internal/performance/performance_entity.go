package performance

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReviewDraft     = "draft"
	ReviewSubmitted = "submitted"
	ReviewApproved  = "approved"
)

// reviewStage orders review statuses; a review only moves forward.
var reviewStage = map[string]int{
	ReviewDraft:     0,
	ReviewSubmitted: 1,
	ReviewApproved:  2,
}

type Rating struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID  `gorm:"type:uuid;not null"`
	RatedBy     *uuid.UUID `gorm:"type:uuid"`
	Rating      int
	Category    string
	PeriodStart time.Time `gorm:"type:date"`
	PeriodEnd   time.Time `gorm:"type:date"`
	Comments    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Rating) TableName() string {
	return "performance_ratings"
}

type Review struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID         uuid.UUID  `gorm:"type:uuid;not null"`
	ReviewerID         *uuid.UUID `gorm:"type:uuid"`
	ReviewPeriod       string
	OverallRating      int
	Achievements       string
	AreasOfImprovement string
	Goals              string
	Status             string
	SubmittedAt        *time.Time
	ApprovedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Review) TableName() string {
	return "performance_reviews"
}

// RatingRow is a rating joined with its employee for reporting.
type RatingRow struct {
	EmployeeID     uuid.UUID
	FirstName      string
	LastName       string
	DepartmentName *string
	Rating         int
}

type StatusCount struct {
	Status string
	Count  int64
}
