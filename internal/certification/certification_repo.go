package certification

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=certification_repo.go -destination=mock/certification_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ListTypes(ctx context.Context) ([]CertificationType, error)
	FindTypeByID(ctx context.Context, id uuid.UUID) (*CertificationType, error)
	CreateType(ctx context.Context, t *CertificationType) error
	UpdateType(ctx context.Context, t *CertificationType) error
	DeleteType(ctx context.Context, id uuid.UUID) error
	CountByType(ctx context.Context, typeID uuid.UUID) (int64, error)

	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]EmployeeCertification, error)
	FindForEmployee(ctx context.Context, employeeID, id uuid.UUID) (*EmployeeCertification, error)
	Create(ctx context.Context, c *EmployeeCertification) error
	Update(ctx context.Context, c *EmployeeCertification) error
	Delete(ctx context.Context, id uuid.UUID) error
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

func (r *repository) ListTypes(ctx context.Context) ([]CertificationType, error) {
	var rows []CertificationType
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindTypeByID(ctx context.Context, id uuid.UUID) (*CertificationType, error) {
	var t CertificationType
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) CreateType(ctx context.Context, t *CertificationType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) UpdateType(ctx context.Context, t *CertificationType) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) DeleteType(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&CertificationType{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CountByType(ctx context.Context, typeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&EmployeeCertification{}).
		Where("certification_type_id = ?", typeID).
		Count(&count).Error
	return count, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]EmployeeCertification, error) {
	var rows []EmployeeCertification
	err := r.db.WithContext(ctx).
		Preload("CertificationType").
		Where("employee_id = ?", employeeID).
		Order("issue_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindForEmployee(ctx context.Context, employeeID, id uuid.UUID) (*EmployeeCertification, error) {
	var c EmployeeCertification
	err := r.db.WithContext(ctx).
		Preload("CertificationType").
		Where("id = ? AND employee_id = ?", id, employeeID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Create(ctx context.Context, c *EmployeeCertification) error {
	return r.db.WithContext(ctx).Omit("CertificationType").Create(c).Error
}

func (r *repository) Update(ctx context.Context, c *EmployeeCertification) error {
	return r.db.WithContext(ctx).Omit("CertificationType").Save(c).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&EmployeeCertification{}, "id = ?", id).Error
}
