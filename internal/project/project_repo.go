package project

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/shared/connection"
	"go-hrms/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=project_repo.go -destination=mock/project_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	List(ctx context.Context, status string) ([]Project, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	Create(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error

	FindActiveAssignments(ctx context.Context, employeeID uuid.UUID) ([]Assignment, error)
	FindActiveAssignment(ctx context.Context, employeeID, projectID uuid.UUID) (*Assignment, error)
	// LockEmployee takes a row lock on the employee so allocation checks serialise.
	LockEmployee(ctx context.Context, employeeID uuid.UUID) error
	// ActiveAllocation sums active allocations, excluding one assignment when excludeID is set.
	ActiveAllocation(ctx context.Context, employeeID uuid.UUID, excludeID *uuid.UUID) (int, error)
	CreateAssignment(ctx context.Context, a *Assignment) error
	UpdateAssignment(ctx context.Context, a *Assignment) error
	CloseAssignments(ctx context.Context, employeeID uuid.UUID, endDate time.Time) (int64, error)
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

func (r *repository) List(ctx context.Context, status string) ([]Project, error) {
	var rows []Project
	err := r.db.WithContext(ctx).
		Scopes(scope.Status(status)).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Project, error) {
	var p Project
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) Update(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) FindActiveAssignments(ctx context.Context, employeeID uuid.UUID) ([]Assignment, error) {
	var rows []Assignment
	err := r.db.WithContext(ctx).
		Preload("Project").
		Scopes(scope.Status(AssignmentActive)).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindActiveAssignment(ctx context.Context, employeeID, projectID uuid.UUID) (*Assignment, error) {
	var a Assignment
	err := r.db.WithContext(ctx).
		Preload("Project").
		Scopes(scope.Status(AssignmentActive)).
		Where("employee_id = ? AND project_id = ?", employeeID, projectID).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) LockEmployee(ctx context.Context, employeeID uuid.UUID) error {
	var row struct{ ID uuid.UUID }
	return r.db.WithContext(ctx).
		Table("employees").
		Select("id").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", employeeID).
		Take(&row).Error
}

func (r *repository) ActiveAllocation(ctx context.Context, employeeID uuid.UUID, excludeID *uuid.UUID) (int, error) {
	q := r.db.WithContext(ctx).
		Model(&Assignment{}).
		Select("COALESCE(SUM(allocation_percentage), 0)").
		Scopes(scope.Status(AssignmentActive)).
		Where("employee_id = ?", employeeID)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var total int
	err := q.Scan(&total).Error
	return total, err
}

func (r *repository) CreateAssignment(ctx context.Context, a *Assignment) error {
	return r.db.WithContext(ctx).Omit("Project").Create(a).Error
}

func (r *repository) UpdateAssignment(ctx context.Context, a *Assignment) error {
	return r.db.WithContext(ctx).Omit("Project").Save(a).Error
}

func (r *repository) CloseAssignments(ctx context.Context, employeeID uuid.UUID, endDate time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Assignment{}).
		Scopes(scope.Status(AssignmentActive)).
		Where("employee_id = ?", employeeID).
		Updates(map[string]interface{}{
			"status":     AssignmentRemoved,
			"end_date":   endDate,
			"updated_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}
