package department

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, dept *Department) error
	FindAll(ctx context.Context) ([]Department, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Department, error)
	Update(ctx context.Context, dept *Department) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountActiveEmployees(ctx context.Context, id uuid.UUID) (int64, error)
	FindMembers(ctx context.Context, id uuid.UUID) ([]Member, error)
	FindMember(ctx context.Context, employeeID uuid.UUID) (*Member, error)
	SetMemberDepartment(ctx context.Context, employeeID uuid.UUID, departmentID *uuid.UUID) error
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

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&depts).Error
	return depts, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&dept).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Save(dept).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&Department{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CountActiveEmployees(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Member{}).
		Where("department_id = ? AND is_active = ?", id, true).
		Count(&count).Error
	return count, err
}

func (r *repository) FindMembers(ctx context.Context, id uuid.UUID) ([]Member, error) {
	var members []Member
	err := r.db.WithContext(ctx).
		Where("department_id = ? AND is_active = ?", id, true).
		Order("first_name ASC, last_name ASC").
		Find(&members).Error
	return members, err
}

func (r *repository) FindMember(ctx context.Context, employeeID uuid.UUID) (*Member, error) {
	var m Member
	err := r.db.WithContext(ctx).
		Where("id = ?", employeeID).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) SetMemberDepartment(ctx context.Context, employeeID uuid.UUID, departmentID *uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&Member{}).
		Where("id = ?", employeeID).
		Updates(map[string]interface{}{
			"department_id": departmentID,
			"updated_at":    gorm.Expr("NOW()"),
		}).Error
}
