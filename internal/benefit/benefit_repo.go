package benefit

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/connection"
	"go-hrms/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=benefit_repo.go -destination=mock/benefit_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ListActive(ctx context.Context) ([]Benefit, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Benefit, error)
	Create(ctx context.Context, b *Benefit) error
	Update(ctx context.Context, b *Benefit) error

	FindAssignments(ctx context.Context, employeeID uuid.UUID) ([]EmployeeBenefit, error)
	FindAssignment(ctx context.Context, employeeID, id uuid.UUID) (*EmployeeBenefit, error)
	HasActiveAssignment(ctx context.Context, employeeID, benefitID uuid.UUID) (bool, error)
	CreateAssignment(ctx context.Context, a *EmployeeBenefit) error
	UpdateAssignment(ctx context.Context, a *EmployeeBenefit) error
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

func (r *repository) ListActive(ctx context.Context) ([]Benefit, error) {
	var rows []Benefit
	err := r.db.WithContext(ctx).Scopes(scope.Active).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Benefit, error) {
	var b Benefit
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) Create(ctx context.Context, b *Benefit) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) Update(ctx context.Context, b *Benefit) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *repository) FindAssignments(ctx context.Context, employeeID uuid.UUID) ([]EmployeeBenefit, error) {
	var rows []EmployeeBenefit
	err := r.db.WithContext(ctx).
		Preload("Benefit").
		Scopes(scope.Employee(employeeID.String())).
		Order("start_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAssignment(ctx context.Context, employeeID, id uuid.UUID) (*EmployeeBenefit, error) {
	var a EmployeeBenefit
	err := r.db.WithContext(ctx).
		Preload("Benefit").
		Where("id = ? AND employee_id = ?", id, employeeID).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) HasActiveAssignment(ctx context.Context, employeeID, benefitID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&EmployeeBenefit{}).
		Where("employee_id = ? AND benefit_id = ? AND status = ?", employeeID, benefitID, AssignmentActive).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateAssignment(ctx context.Context, a *EmployeeBenefit) error {
	return r.db.WithContext(ctx).Omit("Benefit").Create(a).Error
}

func (r *repository) UpdateAssignment(ctx context.Context, a *EmployeeBenefit) error {
	return r.db.WithContext(ctx).Omit("Benefit").Save(a).Error
}
