package policy

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/connection"
	"go-hrms/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=policy_repo.go -destination=mock/policy_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ListActive(ctx context.Context) ([]Policy, error)
	ListMandatory(ctx context.Context) ([]Policy, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Policy, error)
	Create(ctx context.Context, p *Policy) error
	Update(ctx context.Context, p *Policy) error

	HasAcknowledged(ctx context.Context, employeeID, policyID uuid.UUID, version string) (bool, error)
	CreateAcknowledgment(ctx context.Context, a *Acknowledgment) error
	// CurrentAcknowledgments lists acknowledgments matching each policy's current version.
	// An empty employeeIDs slice means every employee.
	CurrentAcknowledgments(ctx context.Context, employeeIDs []uuid.UUID) ([]AckRow, error)
	FindEmployee(ctx context.Context, id uuid.UUID) (*EmployeeRef, error)
	ListActiveEmployees(ctx context.Context, managerID string) ([]EmployeeRef, error)
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

func (r *repository) ListActive(ctx context.Context) ([]Policy, error) {
	var rows []Policy
	err := r.db.WithContext(ctx).
		Scopes(scope.Status(StatusActive)).
		Order("effective_date DESC, title ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListMandatory(ctx context.Context) ([]Policy, error) {
	var rows []Policy
	err := r.db.WithContext(ctx).
		Scopes(scope.Status(StatusActive)).
		Where("is_mandatory = ?", true).
		Order("title ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Policy, error) {
	var p Policy
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, p *Policy) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) Update(ctx context.Context, p *Policy) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) HasAcknowledged(ctx context.Context, employeeID, policyID uuid.UUID, version string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Acknowledgment{}).
		Where("employee_id = ? AND policy_id = ? AND version_acknowledged = ?", employeeID, policyID, version).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateAcknowledgment(ctx context.Context, a *Acknowledgment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) CurrentAcknowledgments(ctx context.Context, employeeIDs []uuid.UUID) ([]AckRow, error) {
	q := r.db.WithContext(ctx).
		Table("policy_acknowledgments pa").
		Select("pa.employee_id, pa.policy_id").
		Joins("JOIN policies p ON p.id = pa.policy_id AND p.version = pa.version_acknowledged")
	if len(employeeIDs) > 0 {
		q = q.Where("pa.employee_id IN ?", employeeIDs)
	}

	var rows []AckRow
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *repository) FindEmployee(ctx context.Context, id uuid.UUID) (*EmployeeRef, error) {
	var e EmployeeRef
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("id, first_name, last_name").
		Where("id = ?", id).
		Take(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) ListActiveEmployees(ctx context.Context, managerID string) ([]EmployeeRef, error) {
	var rows []EmployeeRef
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("id, first_name, last_name").
		Scopes(scope.Active, scope.ReportsTo(managerID)).
		Order("first_name ASC, last_name ASC").
		Scan(&rows).Error
	return rows, err
}
