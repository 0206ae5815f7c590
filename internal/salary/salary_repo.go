package salary

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Salary) error
	FindLatest(ctx context.Context, employeeID uuid.UUID) (*Salary, error)
	FindLatestAsOf(ctx context.Context, employeeID uuid.UUID, asOf time.Time) (*Salary, error)
	FindHistory(ctx context.Context, employeeID uuid.UUID) ([]Salary, error)
	FindTaxInfo(ctx context.Context, employeeID uuid.UUID) (*TaxInfo, error)
	UpsertTaxInfo(ctx context.Context, info *TaxInfo) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, s *Salary) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindLatest(ctx context.Context, employeeID uuid.UUID) (*Salary, error) {
	var s Salary
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("effective_date DESC, created_at DESC").
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FindLatestAsOf returns the salary in force on asOf.
func (r *repository) FindLatestAsOf(ctx context.Context, employeeID uuid.UUID, asOf time.Time) (*Salary, error) {
	var s Salary
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("effective_date <= ?", asOf.Format("2006-01-02")).
		Order("effective_date DESC, created_at DESC").
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindHistory(ctx context.Context, employeeID uuid.UUID) ([]Salary, error) {
	var rows []Salary
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("effective_date DESC, created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindTaxInfo(ctx context.Context, employeeID uuid.UUID) (*TaxInfo, error) {
	var info TaxInfo
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *repository) UpsertTaxInfo(ctx context.Context, info *TaxInfo) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"pan_number", "tax_regime", "tax_declarations", "updated_at"}),
		}).
		Create(info).Error
}
