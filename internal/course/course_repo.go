package course

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/connection"
	"go-hrms/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=course_repo.go -destination=mock/course_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ListActive(ctx context.Context) ([]Course, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Course, error)
	Create(ctx context.Context, c *Course) error
	Update(ctx context.Context, c *Course) error

	FindEnrollments(ctx context.Context, employeeID uuid.UUID) ([]Enrollment, error)
	FindEnrollment(ctx context.Context, employeeID, id uuid.UUID) (*Enrollment, error)
	IsEnrolled(ctx context.Context, employeeID, courseID uuid.UUID) (bool, error)
	CreateEnrollment(ctx context.Context, e *Enrollment) error
	UpdateEnrollment(ctx context.Context, e *Enrollment) error
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

func (r *repository) ListActive(ctx context.Context) ([]Course, error) {
	var rows []Course
	err := r.db.WithContext(ctx).
		Scopes(scope.Status(CourseActive)).
		Order("title ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Course, error) {
	var c Course
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Create(ctx context.Context, c *Course) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) Update(ctx context.Context, c *Course) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) FindEnrollments(ctx context.Context, employeeID uuid.UUID) ([]Enrollment, error) {
	var rows []Enrollment
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindEnrollment(ctx context.Context, employeeID, id uuid.UUID) (*Enrollment, error) {
	var e Enrollment
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("id = ? AND employee_id = ?", id, employeeID).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) IsEnrolled(ctx context.Context, employeeID, courseID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Enrollment{}).
		Where("employee_id = ? AND course_id = ?", employeeID, courseID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateEnrollment(ctx context.Context, e *Enrollment) error {
	return r.db.WithContext(ctx).Omit("Course").Create(e).Error
}

func (r *repository) UpdateEnrollment(ctx context.Context, e *Enrollment) error {
	return r.db.WithContext(ctx).Omit("Course").Save(e).Error
}
