package payroll

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/connection"
	"go-hrms/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Payslip) error
	FindByID(ctx context.Context, id uuid.UUID) (*Payslip, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Payslip, error)
	ExistsForPeriod(ctx context.Context, employeeID uuid.UUID, month, year int) (bool, error)
	ListActiveEmployeeIDs(ctx context.Context) ([]uuid.UUID, error)
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

func (r *repository) Create(ctx context.Context, p *Payslip) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Payslip, error) {
	var p Payslip
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Payslip, error) {
	var rows []Payslip
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("year DESC, month DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ExistsForPeriod(ctx context.Context, employeeID uuid.UUID, month, year int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Payslip{}).
		Where("employee_id = ? AND month = ? AND year = ?", employeeID, month, year).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ListActiveEmployeeIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Table("employees").
		Scopes(scope.Active).
		Order("employee_number ASC").
		Pluck("id", &ids).Error
	return ids, err
}
