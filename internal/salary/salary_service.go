package salary

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"regexp"
	"strings"
	"time"

	"go-hrms/internal/domain"
	"go-hrms/internal/rbac"
	salaryerrors "go-hrms/internal/salary/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

var panPattern = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	GetCurrent(ctx context.Context, actor domain.Actor, employeeID string) (SalaryResponse, error)
	GetHistory(ctx context.Context, actor domain.Actor, employeeID string) ([]SalaryResponse, error)
	Update(ctx context.Context, employeeID string, req UpdateSalaryRequest) (SalaryResponse, error)
	GetTaxInfo(ctx context.Context, actor domain.Actor, employeeID string) (TaxInfoResponse, error)
	UpsertTaxInfo(ctx context.Context, actor domain.Actor, employeeID string, req UpsertTaxInfoRequest) (TaxInfoResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	guard  rbac.Guard
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, guard rbac.Guard, logger ...*zap.Logger) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{db: db, repo: repo, guard: guard, now: time.Now, logger: l}
}

func (s *service) GetCurrent(ctx context.Context, actor domain.Actor, employeeID string) (SalaryResponse, error) {
	empID, err := s.authorize(ctx, actor, employeeID)
	if err != nil {
		return SalaryResponse{}, err
	}

	current, err := s.repo.FindLatest(ctx, empID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
		}
		return SalaryResponse{}, err
	}
	return mapToResponse(*current), nil
}

func (s *service) GetHistory(ctx context.Context, actor domain.Actor, employeeID string) ([]SalaryResponse, error) {
	empID, err := s.authorize(ctx, actor, employeeID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindHistory(ctx, empID)
	if err != nil {
		return nil, err
	}

	resp := make([]SalaryResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp, nil
}

// Update records a new salary revision. History is append-only: fields left
// out of req carry over from the revision currently in force.
func (s *service) Update(ctx context.Context, employeeID string, req UpdateSalaryRequest) (SalaryResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return SalaryResponse{}, salaryerrors.ErrInvalidEmployeeID
	}

	effective := truncateDay(s.now())
	if req.EffectiveDate != nil && *req.EffectiveDate != "" {
		effective, err = time.Parse(dateLayout, *req.EffectiveDate)
		if err != nil {
			return SalaryResponse{}, salaryerrors.ErrInvalidEffectiveDate
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update salary begin tx failed", zap.Error(err))
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	next := &Salary{
		ID:            uuid.New(),
		EmployeeID:    empID,
		EffectiveDate: effective,
	}

	current, err := qtx.FindLatest(ctx, empID)
	switch {
	case err == nil:
		next.BasicSalary = current.BasicSalary
		next.Allowances = current.Allowances
		next.Deductions = current.Deductions
	case errors.Is(err, gorm.ErrRecordNotFound):
		if req.BasicSalary == nil {
			return SalaryResponse{}, salaryerrors.ErrBasicSalaryRequired
		}
	default:
		return SalaryResponse{}, err
	}

	if req.BasicSalary != nil {
		next.BasicSalary = *req.BasicSalary
	}
	if req.Allowances != nil {
		next.Allowances = *req.Allowances
	}
	if req.Deductions != nil {
		next.Deductions = *req.Deductions
	}
	if next.BasicSalary < 0 || next.Allowances < 0 || next.Deductions < 0 {
		return SalaryResponse{}, salaryerrors.ErrNegativeAmount
	}

	next.BasicSalary = Round2(next.BasicSalary)
	next.Allowances = Round2(next.Allowances)
	next.Deductions = Round2(next.Deductions)
	next.GrossSalary = Round2(next.BasicSalary + next.Allowances)
	next.NetSalary = Round2(next.GrossSalary - next.Deductions)

	if err := qtx.Create(ctx, next); err != nil {
		s.logger.Error("update salary persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		return SalaryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update salary commit failed", zap.Error(err))
		return SalaryResponse{}, err
	}

	s.logger.Info("salary revised",
		zap.String("employee_id", employeeID),
		zap.String("effective_date", effective.Format(dateLayout)),
		zap.Float64("gross", next.GrossSalary),
	)
	return mapToResponse(*next), nil
}

func (s *service) GetTaxInfo(ctx context.Context, actor domain.Actor, employeeID string) (TaxInfoResponse, error) {
	empID, err := s.authorize(ctx, actor, employeeID)
	if err != nil {
		return TaxInfoResponse{}, err
	}

	info, err := s.repo.FindTaxInfo(ctx, empID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaxInfoResponse{}, salaryerrors.ErrTaxInfoNotFound
		}
		return TaxInfoResponse{}, err
	}
	return mapTaxInfoResponse(*info), nil
}

func (s *service) UpsertTaxInfo(ctx context.Context, actor domain.Actor, employeeID string, req UpsertTaxInfoRequest) (TaxInfoResponse, error) {
	empID, err := s.authorize(ctx, actor, employeeID)
	if err != nil {
		return TaxInfoResponse{}, err
	}

	pan := strings.ToUpper(strings.TrimSpace(req.PANNumber))
	if !panPattern.MatchString(pan) {
		return TaxInfoResponse{}, salaryerrors.ErrInvalidPAN
	}
	regime := strings.ToLower(strings.TrimSpace(req.TaxRegime))
	if regime != RegimeOld && regime != RegimeNew {
		return TaxInfoResponse{}, salaryerrors.ErrInvalidTaxRegime
	}
	declarations := req.TaxDeclarations
	if declarations == nil {
		declarations = map[string]interface{}{}
	}

	now := s.now().UTC()
	info := &TaxInfo{
		ID:              uuid.New(),
		EmployeeID:      empID,
		PANNumber:       pan,
		TaxRegime:       regime,
		TaxDeclarations: declarations,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.UpsertTaxInfo(ctx, info); err != nil {
		s.logger.Error("upsert tax info failed", zap.String("employee_id", employeeID), zap.Error(err))
		return TaxInfoResponse{}, mapRepositoryError(err)
	}

	stored, err := s.repo.FindTaxInfo(ctx, empID)
	if err != nil {
		return TaxInfoResponse{}, err
	}

	s.logger.Info("tax info saved",
		zap.String("employee_id", employeeID),
		zap.String("regime", regime),
		zap.String("actor_id", actor.ID),
	)
	return mapTaxInfoResponse(*stored), nil
}

func (s *service) authorize(ctx context.Context, actor domain.Actor, employeeID string) (uuid.UUID, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return uuid.Nil, salaryerrors.ErrInvalidEmployeeID
	}
	if err := s.guard.Authorize(ctx, actor, employeeID, rbac.SelfOrHR); err != nil {
		return uuid.Nil, err
	}
	return empID, nil
}

// Round2 rounds a money amount to cents.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func mapToResponse(s Salary) SalaryResponse {
	return SalaryResponse{
		ID:            s.ID.String(),
		EmployeeID:    s.EmployeeID.String(),
		BasicSalary:   s.BasicSalary,
		Allowances:    s.Allowances,
		Deductions:    s.Deductions,
		GrossSalary:   s.GrossSalary,
		NetSalary:     s.NetSalary,
		EffectiveDate: s.EffectiveDate.Format(dateLayout),
	}
}

func mapTaxInfoResponse(info TaxInfo) TaxInfoResponse {
	return TaxInfoResponse{
		ID:              info.ID.String(),
		EmployeeID:      info.EmployeeID.String(),
		PANNumber:       info.PANNumber,
		TaxRegime:       info.TaxRegime,
		TaxDeclarations: info.TaxDeclarations,
		UpdatedAt:       info.UpdatedAt.Format(time.RFC3339),
	}
}
