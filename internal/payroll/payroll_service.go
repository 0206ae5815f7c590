package payroll

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-hrms/internal/domain"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	payrollerrors "go-hrms/internal/payroll/errors"
	"go-hrms/internal/rbac"
	"go-hrms/internal/salary"
	"go-hrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SalarySource is the read side of the salary store that payslips snapshot.
type SalarySource interface {
	FindLatestAsOf(ctx context.Context, employeeID uuid.UUID, asOf time.Time) (*salary.Salary, error)
	FindTaxInfo(ctx context.Context, employeeID uuid.UUID) (*salary.TaxInfo, error)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, actor domain.Actor, employeeID string, req GeneratePayslipRequest) (PayslipResponse, error)
	GenerateForPeriod(ctx context.Context, employeeID string, month, year int) error
	ListByEmployee(ctx context.Context, actor domain.Actor, employeeID string) ([]PayslipResponse, error)
	Download(ctx context.Context, actor domain.Actor, id string) ([]byte, string, error)
	Run(ctx context.Context, actor domain.Actor, req RunPayrollRequest) (RunPayrollResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	salaries SalarySource
	outbox   kafka.OutboxRepository
	guard    rbac.Guard
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	salaries SalarySource,
	outboxRepo kafka.OutboxRepository,
	guard rbac.Guard,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		salaries: salaries,
		outbox:   outboxRepo,
		guard:    guard,
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) Generate(ctx context.Context, actor domain.Actor, employeeID string, req GeneratePayslipRequest) (PayslipResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidEmployeeID
	}

	p, err := s.generate(ctx, empID, req.Month, req.Year)
	if err != nil {
		return PayslipResponse{}, err
	}

	s.logger.Info("payslip generated",
		zap.String("payslip_id", p.ID.String()),
		zap.String("employee_id", employeeID),
		zap.Int("month", p.Month),
		zap.Int("year", p.Year),
		zap.String("actor_id", actor.ID),
	)
	return mapToResponse(*p), nil
}

// GenerateForPeriod is the asynchronous entry point used by the payslip
// consumer. A period that already has a payslip reports ErrPayslipAlreadyExists.
func (s *service) GenerateForPeriod(ctx context.Context, employeeID string, month, year int) error {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return payrollerrors.ErrInvalidEmployeeID
	}
	_, err = s.generate(ctx, empID, month, year)
	return err
}

func (s *service) generate(ctx context.Context, empID uuid.UUID, month, year int) (*Payslip, error) {
	if !validPeriod(month, year) {
		return nil, payrollerrors.ErrInvalidPeriod
	}

	exists, err := s.repo.ExistsForPeriod(ctx, empID, month, year)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, payrollerrors.ErrPayslipAlreadyExists
	}

	periodEnd := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)

	current, err := s.salaries.FindLatestAsOf(ctx, empID, periodEnd)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("payslip without salary",
				zap.String("employee_id", empID.String()),
				zap.Int("month", month),
				zap.Int("year", year),
			)
			return nil, payrollerrors.ErrSalaryNotFound
		}
		return nil, err
	}

	regime := ""
	info, err := s.salaries.FindTaxInfo(ctx, empID)
	switch {
	case err == nil:
		regime = info.TaxRegime
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	tax := ComputeTax(regime, current.GrossSalary)
	p := &Payslip{
		ID:          uuid.New(),
		EmployeeID:  empID,
		SalaryID:    current.ID,
		Month:       month,
		Year:        year,
		BasicSalary: current.BasicSalary,
		Allowances:  current.Allowances,
		Deductions:  current.Deductions,
		GrossSalary: current.GrossSalary,
		TaxDeducted: tax,
		NetSalary:   salary.Round2(current.GrossSalary - current.Deductions - tax),
		Status:      StatusGenerated,
		GeneratedAt: s.now().UTC(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		mapped := mapRepositoryError(err)
		if !errors.Is(mapped, payrollerrors.ErrPayslipAlreadyExists) {
			s.logger.Error("payslip persist failed", zap.String("employee_id", empID.String()), zap.Error(err))
		}
		return nil, mapped
	}
	return p, nil
}

func (s *service) ListByEmployee(ctx context.Context, actor domain.Actor, employeeID string) ([]PayslipResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, payrollerrors.ErrInvalidEmployeeID
	}
	if err := s.guard.Authorize(ctx, actor, employeeID, rbac.SelfOrHR); err != nil {
		return nil, err
	}

	rows, err := s.repo.FindByEmployee(ctx, empID)
	if err != nil {
		return nil, err
	}

	resp := make([]PayslipResponse, len(rows))
	for i, p := range rows {
		resp[i] = mapToResponse(p)
	}
	return resp, nil
}

func (s *service) Download(ctx context.Context, actor domain.Actor, id string) ([]byte, string, error) {
	payslipID, err := uuid.Parse(id)
	if err != nil {
		return nil, "", payrollerrors.ErrInvalidPayslipID
	}

	p, err := s.repo.FindByID(ctx, payslipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", payrollerrors.ErrPayslipNotFound
		}
		return nil, "", err
	}
	if err := s.guard.Authorize(ctx, actor, p.EmployeeID.String(), rbac.SelfOrHR); err != nil {
		return nil, "", err
	}

	body, err := renderPayslipPDF(*p)
	if err != nil {
		s.logger.Error("payslip render failed", zap.String("payslip_id", id), zap.Error(err))
		return nil, "", payrollerrors.ErrRenderFailed
	}
	return body, payslipFilename(*p), nil
}

// Run queues one payslip request per active employee. The rows land in the
// outbox in a single transaction, so either every employee is queued or none.
func (s *service) Run(ctx context.Context, actor domain.Actor, req RunPayrollRequest) (RunPayrollResponse, error) {
	if !validPeriod(req.Month, req.Year) {
		return RunPayrollResponse{}, payrollerrors.ErrInvalidPeriod
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("payroll run begin tx failed", zap.Error(err))
		return RunPayrollResponse{}, err
	}
	defer tx.Rollback()

	ids, err := s.repo.WithTx(tx).ListActiveEmployeeIDs(ctx)
	if err != nil {
		return RunPayrollResponse{}, err
	}

	rid := contextutil.GetRequestID(ctx)
	outbox := s.outbox.WithTx(tx)
	now := s.now().UTC()

	for _, id := range ids {
		event := events.PayslipRequestedEvent{
			EventType:   events.EventPayslipRequested,
			RequestID:   rid,
			EmployeeID:  id.String(),
			Month:       req.Month,
			Year:        req.Year,
			RequestedBy: actor.ID,
			OccurredAt:  now,
		}
		row, err := kafka.NewOutboxEvent(events.PayslipRequestedTopic, events.AggregatePayslip, event.EmployeeID, events.EventPayslipRequested, rid, event)
		if err != nil {
			return RunPayrollResponse{}, err
		}
		if err := outbox.Create(ctx, row); err != nil {
			s.logger.Error("payroll run outbox persist failed",
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			return RunPayrollResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("payroll run commit failed", zap.Error(err))
		return RunPayrollResponse{}, err
	}

	s.logger.Info("payroll run queued",
		zap.Int("employees", len(ids)),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
		zap.String("actor_id", actor.ID),
		zap.String("request_id", rid),
	)
	return RunPayrollResponse{Queued: len(ids), Month: req.Month, Year: req.Year}, nil
}

func validPeriod(month, year int) bool {
	return month >= 1 && month <= 12 && year >= 2000 && year <= 2100
}

func mapToResponse(p Payslip) PayslipResponse {
	resp := PayslipResponse{
		ID:          p.ID.String(),
		EmployeeID:  p.EmployeeID.String(),
		SalaryID:    p.SalaryID.String(),
		Month:       p.Month,
		Year:        p.Year,
		BasicSalary: p.BasicSalary,
		Allowances:  p.Allowances,
		Deductions:  p.Deductions,
		GrossSalary: p.GrossSalary,
		TaxDeducted: p.TaxDeducted,
		NetSalary:   p.NetSalary,
		Status:      p.Status,
		GeneratedAt: p.GeneratedAt.Format(time.RFC3339),
	}
	if p.Employee != nil {
		resp.EmployeeName = p.Employee.FullName()
	}
	return resp
}
