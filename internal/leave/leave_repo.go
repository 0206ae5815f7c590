package leave

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

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	ListActiveTypes(ctx context.Context) ([]LeaveType, error)
	FindTypeByID(ctx context.Context, id uuid.UUID) (*LeaveType, error)
	CreateType(ctx context.Context, lt *LeaveType) error
	UpdateType(ctx context.Context, lt *LeaveType) error

	FindBalances(ctx context.Context, employeeID uuid.UUID, year int) ([]LeaveBalance, error)
	FindBalance(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*LeaveBalance, error)
	LockBalance(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*LeaveBalance, error)
	CreateBalance(ctx context.Context, b *LeaveBalance) error
	CreateMissingBalances(ctx context.Context, balances []LeaveBalance) (int, error)
	UpdateBalance(ctx context.Context, b *LeaveBalance) error

	Create(ctx context.Context, l *Leave) error
	FindByID(ctx context.Context, id uuid.UUID) (*Leave, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Leave, error)
	FindAll(ctx context.Context, filter Filter) ([]Leave, error)
	Update(ctx context.Context, l *Leave) error
	HasOverlappingPeriod(ctx context.Context, employeeID uuid.UUID, startDate, endDate time.Time) (bool, error)
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

func (r *repository) ListActiveTypes(ctx context.Context) ([]LeaveType, error) {
	var types []LeaveType
	err := r.db.WithContext(ctx).
		Scopes(scope.Active).
		Order("name ASC").
		Find(&types).Error
	return types, err
}

func (r *repository) FindTypeByID(ctx context.Context, id uuid.UUID) (*LeaveType, error) {
	var lt LeaveType
	if err := r.db.WithContext(ctx).First(&lt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &lt, nil
}

func (r *repository) CreateType(ctx context.Context, lt *LeaveType) error {
	return r.db.WithContext(ctx).Create(lt).Error
}

func (r *repository) UpdateType(ctx context.Context, lt *LeaveType) error {
	return r.db.WithContext(ctx).Save(lt).Error
}

func (r *repository) FindBalances(ctx context.Context, employeeID uuid.UUID, year int) ([]LeaveBalance, error) {
	var balances []LeaveBalance
	err := r.db.WithContext(ctx).
		Preload("LeaveType").
		Where("employee_id = ? AND year = ?", employeeID, year).
		Find(&balances).Error
	return balances, err
}

func (r *repository) FindBalance(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND leave_type_id = ? AND year = ?", employeeID, leaveTypeID, year).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// LockBalance reads the balance with SELECT ... FOR UPDATE. Call it inside a
// transaction bound through WithTx.
func (r *repository) LockBalance(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ? AND leave_type_id = ? AND year = ?", employeeID, leaveTypeID, year).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) CreateBalance(ctx context.Context, b *LeaveBalance) error {
	return r.db.WithContext(ctx).Omit("LeaveType").Create(b).Error
}

func (r *repository) CreateMissingBalances(ctx context.Context, balances []LeaveBalance) (int, error) {
	if len(balances) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Omit("LeaveType").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "leave_type_id"}, {Name: "year"}},
			DoNothing: true,
		}).
		Create(&balances)
	return int(res.RowsAffected), res.Error
}

func (r *repository) UpdateBalance(ctx context.Context, b *LeaveBalance) error {
	return r.db.WithContext(ctx).
		Model(&LeaveBalance{}).
		Where("id = ?", b.ID).
		Updates(map[string]interface{}{
			"total_days": b.TotalDays,
			"used_days":  b.UsedDays,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Omit("Employee", "LeaveType").Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("LeaveType").
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Preload("LeaveType").
		Scopes(scope.Employee(employeeID.String())).
		Order("start_date DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindAll(ctx context.Context, filter Filter) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("LeaveType").
		Scopes(
			scope.Status(filter.Status),
			scope.ManagedBy(filter.ManagerID),
			scope.DateRange("start_date", filter.From, filter.To),
		).
		Order("start_date DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Omit("Employee", "LeaveType").Save(l).Error
}

func (r *repository) HasOverlappingPeriod(ctx context.Context, employeeID uuid.UUID, startDate, endDate time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("employee_id = ?", employeeID).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Where("NOT (end_date < ? OR start_date > ?)", startDate, endDate).
		Count(&count).Error
	return count > 0, err
}
