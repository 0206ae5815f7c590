package onboarding

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/connection"
	"go-hrms/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=onboarding_repo.go -destination=mock/onboarding_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ListTemplates(ctx context.Context, kind string) ([]Task, error)
	FindTemplate(ctx context.Context, kind string, id uuid.UUID) (*Task, error)
	CreateTemplate(ctx context.Context, t *Task) error
	UpdateTemplate(ctx context.Context, t *Task) error
	MatchTemplates(ctx context.Context, kind string, profile Profile) ([]Task, error)

	FindProfile(ctx context.Context, employeeID uuid.UUID) (*Profile, error)
	FindEmployeeTasks(ctx context.Context, employeeID uuid.UUID, kind string) ([]EmployeeTask, error)
	FindEmployeeTask(ctx context.Context, employeeID, taskID uuid.UUID) (*EmployeeTask, error)
	CreateEmployeeTask(ctx context.Context, t *EmployeeTask) error
	UpdateEmployeeTask(ctx context.Context, t *EmployeeTask) error
	// AssignTasks inserts pending rows, skipping tasks already assigned. Returns the number inserted.
	AssignTasks(ctx context.Context, rows []EmployeeTask) (int64, error)
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

func (r *repository) ListTemplates(ctx context.Context, kind string) ([]Task, error) {
	var rows []Task
	err := r.db.WithContext(ctx).
		Scopes(scope.Active).
		Where("kind = ?", kind).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindTemplate(ctx context.Context, kind string, id uuid.UUID) (*Task, error) {
	var t Task
	if err := r.db.WithContext(ctx).Where("id = ? AND kind = ?", id, kind).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) CreateTemplate(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) UpdateTemplate(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) MatchTemplates(ctx context.Context, kind string, profile Profile) ([]Task, error) {
	q := r.db.WithContext(ctx).Scopes(scope.Active).Where("kind = ?", kind)

	if profile.DepartmentID != nil {
		q = q.Where("(department_id IS NULL OR department_id = ?)", *profile.DepartmentID)
	} else {
		q = q.Where("department_id IS NULL")
	}

	if kind == KindOnboarding {
		if profile.RoleID != nil {
			q = q.Where("(role_id IS NULL OR role_id = ?)", *profile.RoleID)
		} else {
			q = q.Where("role_id IS NULL")
		}
	}

	var rows []Task
	err := q.Order("created_at ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindProfile(ctx context.Context, employeeID uuid.UUID) (*Profile, error) {
	var p Profile
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("department_id, role_id").
		Where("id = ?", employeeID).
		Take(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindEmployeeTasks(ctx context.Context, employeeID uuid.UUID, kind string) ([]EmployeeTask, error) {
	var rows []EmployeeTask
	err := r.db.WithContext(ctx).
		Preload("Task").
		Joins("JOIN onboarding_tasks ON onboarding_tasks.id = employee_tasks.task_id").
		Where("employee_tasks.employee_id = ? AND onboarding_tasks.kind = ?", employeeID, kind).
		Order("employee_tasks.created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindEmployeeTask(ctx context.Context, employeeID, taskID uuid.UUID) (*EmployeeTask, error) {
	var t EmployeeTask
	err := r.db.WithContext(ctx).
		Preload("Task").
		Where("employee_id = ? AND task_id = ?", employeeID, taskID).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) CreateEmployeeTask(ctx context.Context, t *EmployeeTask) error {
	return r.db.WithContext(ctx).Omit("Task").Create(t).Error
}

func (r *repository) UpdateEmployeeTask(ctx context.Context, t *EmployeeTask) error {
	return r.db.WithContext(ctx).Omit("Task").Save(t).Error
}

func (r *repository) AssignTasks(ctx context.Context, rows []EmployeeTask) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Omit("Task").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "task_id"}},
			DoNothing: true,
		}).
		Create(&rows)
	return res.RowsAffected, res.Error
}
