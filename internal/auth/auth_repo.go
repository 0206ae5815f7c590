package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)
	CountByRole(ctx context.Context, roleName string) (int64, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	WithBootstrapLock(ctx context.Context, fn func(ctx context.Context) error) error
}

// bootstrapLockKey identifies the advisory lock serialising superuser creation.
const bootstrapLockKey int64 = 0x68726d73

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) accounts(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&Account{}).
		Select("employees.*, roles.name AS role_name").
		Joins("LEFT JOIN roles ON roles.id = employees.role_id")
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	var acc Account
	err := r.accounts(ctx).
		Where("LOWER(employees.email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&acc).Error
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	var acc Account
	err := r.accounts(ctx).
		Where("employees.id = ?", id).
		First(&acc).Error
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *repository) CountByRole(ctx context.Context, roleName string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Joins("JOIN roles ON roles.id = employees.role_id").
		Where("roles.name = ?", roleName).
		Count(&count).Error
	return count, err
}

func (r *repository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
}

// WithBootstrapLock runs fn while holding a session advisory lock on a
// dedicated connection. Concurrent callers wait for the holder to finish.
func (r *repository) WithBootstrapLock(ctx context.Context, fn func(ctx context.Context) error) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "SELECT pg_advisory_lock($1)", bootstrapLockKey); err != nil {
		return err
	}
	defer conn.ExecContext(context.Background(), "SELECT pg_advisory_unlock($1)", bootstrapLockKey)

	return fn(ctx)
}
