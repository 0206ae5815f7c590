package performance

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=performance_repo.go -destination=mock/performance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	FindRatings(ctx context.Context, employeeID uuid.UUID) ([]Rating, error)
	FindRating(ctx context.Context, employeeID, id uuid.UUID) (*Rating, error)
	CreateRating(ctx context.Context, r *Rating) error
	UpdateRating(ctx context.Context, r *Rating) error
	DeleteRating(ctx context.Context, id uuid.UUID) error

	FindReviews(ctx context.Context, employeeID uuid.UUID) ([]Review, error)
	FindReview(ctx context.Context, employeeID, id uuid.UUID) (*Review, error)
	CreateReview(ctx context.Context, r *Review) error
	UpdateReview(ctx context.Context, r *Review) error
	DeleteReview(ctx context.Context, id uuid.UUID) error

	// Report queries. An empty managerID covers the whole organisation.
	RatingRows(ctx context.Context, managerID string) ([]RatingRow, error)
	ReviewStatusCounts(ctx context.Context, managerID string) ([]StatusCount, error)
	DepartmentNames(ctx context.Context, managerID string) ([]string, error)
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

func (r *repository) FindRatings(ctx context.Context, employeeID uuid.UUID) ([]Rating, error) {
	var rows []Rating
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("period_end DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindRating(ctx context.Context, employeeID, id uuid.UUID) (*Rating, error) {
	var rt Rating
	if err := r.db.WithContext(ctx).Where("id = ? AND employee_id = ?", id, employeeID).First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *repository) CreateRating(ctx context.Context, rt *Rating) error {
	return r.db.WithContext(ctx).Create(rt).Error
}

func (r *repository) UpdateRating(ctx context.Context, rt *Rating) error {
	return r.db.WithContext(ctx).Save(rt).Error
}

func (r *repository) DeleteRating(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Rating{}, "id = ?", id).Error
}

func (r *repository) FindReviews(ctx context.Context, employeeID uuid.UUID) ([]Review, error) {
	var rows []Review
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindReview(ctx context.Context, employeeID, id uuid.UUID) (*Review, error) {
	var rv Review
	if err := r.db.WithContext(ctx).Where("id = ? AND employee_id = ?", id, employeeID).First(&rv).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *repository) CreateReview(ctx context.Context, rv *Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *repository) UpdateReview(ctx context.Context, rv *Review) error {
	return r.db.WithContext(ctx).Save(rv).Error
}

func (r *repository) DeleteReview(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Review{}, "id = ?", id).Error
}

func (r *repository) RatingRows(ctx context.Context, managerID string) ([]RatingRow, error) {
	q := r.db.WithContext(ctx).
		Table("performance_ratings pr").
		Select("pr.employee_id, e.first_name, e.last_name, d.name AS department_name, pr.rating").
		Joins("JOIN employees e ON e.id = pr.employee_id").
		Joins("LEFT JOIN departments d ON d.id = e.department_id")
	if managerID != "" {
		q = q.Where("e.manager_id = ?", managerID)
	}

	var rows []RatingRow
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *repository) ReviewStatusCounts(ctx context.Context, managerID string) ([]StatusCount, error) {
	q := r.db.WithContext(ctx).
		Table("performance_reviews rv").
		Select("rv.status, COUNT(*) AS count").
		Joins("JOIN employees e ON e.id = rv.employee_id").
		Group("rv.status")
	if managerID != "" {
		q = q.Where("e.manager_id = ?", managerID)
	}

	var rows []StatusCount
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *repository) DepartmentNames(ctx context.Context, managerID string) ([]string, error) {
	var names []string
	if managerID == "" {
		err := r.db.WithContext(ctx).Table("departments").Order("name ASC").Pluck("name", &names).Error
		return names, err
	}
	err := r.db.WithContext(ctx).
		Table("departments d").
		Distinct("d.name").
		Joins("JOIN employees e ON e.department_id = d.id").
		Where("e.manager_id = ?", managerID).
		Order("d.name ASC").
		Pluck("d.name", &names).Error
	return names, err
}
