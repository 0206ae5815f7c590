package employee

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context, filter Filter) ([]Employee, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindTeam(ctx context.Context, managerID string) ([]Employee, error)
	EmailTaken(ctx context.Context, email, excludeID string) (bool, error)
	DepartmentExists(ctx context.Context, id string) (bool, error)
	RoleExists(ctx context.Context, id string) (bool, error)
	RoleIDByName(ctx context.Context, name string) (string, error)
	Update(ctx context.Context, empl *Employee) error
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Omit("Department", "Role").Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context, filter Filter) ([]Employee, error) {
	var empls []Employee

	q := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Role")

	if filter.Name != "" {
		like := "%" + filter.Name + "%"
		q = q.Where("first_name ILIKE ? OR last_name ILIKE ?", like, like)
	}
	if filter.DepartmentID != "" {
		q = q.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.RoleID != "" {
		q = q.Where("role_id = ?", filter.RoleID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	switch {
	case filter.ManagerID != "":
		q = q.Where("manager_id = ? OR id = ?", filter.ManagerID, filter.ManagerID)
	case filter.SelfID != "":
		q = q.Where("id = ?", filter.SelfID)
	}

	err := q.Order("first_name, last_name").Find(&empls).Error
	return empls, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Select("id", "employee_number", "first_name", "last_name").
		Where("is_active = ?", true).
		Order("first_name, last_name").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Role").
		First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindTeam(ctx context.Context, managerID string) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Role").
		Where("manager_id = ? AND is_active = ?", managerID, true).
		Order("first_name, last_name").
		Find(&empls).Error
	return empls, err
}

func (r *repository) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&Employee{}).Where("LOWER(email) = LOWER(?)", email)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *repository) DepartmentExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("departments").Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *repository) RoleExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("roles").Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *repository) RoleIDByName(ctx context.Context, name string) (string, error) {
	var id string
	err := r.db.WithContext(ctx).
		Table("roles").
		Select("id").
		Where("name = ?", name).
		Scan(&id).Error
	return id, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Omit("Department", "Role").Save(empl).Error
}
