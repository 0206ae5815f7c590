package payroll_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-hrms/internal/domain"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	kafkaMock "go-hrms/internal/messaging/kafka/mock"
	"go-hrms/internal/payroll"
	payrollerrors "go-hrms/internal/payroll/errors"
	payrollMock "go-hrms/internal/payroll/mock"
	"go-hrms/internal/rbac"
	"go-hrms/internal/salary"
	"go-hrms/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	repo     *payrollMock.MockRepository
	salaries *payrollMock.MockSalarySource
	outbox   *kafkaMock.MockOutboxRepository
	service  payroll.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	deps := &serviceDeps{
		db:       db,
		sqlMock:  sqlMock,
		repo:     payrollMock.NewMockRepository(ctrl),
		salaries: payrollMock.NewMockSalarySource(ctrl),
		outbox:   kafkaMock.NewMockOutboxRepository(ctrl),
	}
	deps.service = payroll.NewService(db, deps.repo, deps.salaries, deps.outbox, rbac.NewGuard(nil))
	return deps
}

func TestComputeTax(t *testing.T) {
	tests := []struct {
		name   string
		regime string
		gross  float64
		want   float64
	}{
		{"no tax info", "", 90000, 0},
		{"old below exemption", salary.RegimeOld, 20000, 0},
		{"old above exemption", salary.RegimeOld, 60000, 1958.33},
		{"new at exemption", salary.RegimeNew, 25000, 0},
		{"new above exemption", salary.RegimeNew, 60000, 1750},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, payroll.ComputeTax(tt.regime, tt.gross))
		})
	}
}

func TestPayrollService_Generate(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()
	hr := domain.Actor{ID: uuid.NewString(), Role: domain.RoleHR}
	current := &salary.Salary{
		ID:          uuid.New(),
		EmployeeID:  empID,
		BasicSalary: 50000,
		Allowances:  10000,
		Deductions:  2000,
		GrossSalary: 60000,
		NetSalary:   58000,
	}

	t.Run("snapshots salary and withholds tax", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().ExistsForPeriod(ctx, empID, 2, 2026).Return(false, nil)
		deps.salaries.EXPECT().
			FindLatestAsOf(ctx, empID, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)).
			Return(current, nil)
		deps.salaries.EXPECT().FindTaxInfo(ctx, empID).Return(&salary.TaxInfo{TaxRegime: salary.RegimeNew}, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Generate(ctx, hr, empID.String(), payroll.GeneratePayslipRequest{Month: 2, Year: 2026})

		require.NoError(t, err)
		assert.Equal(t, current.ID.String(), resp.SalaryID)
		assert.Equal(t, 60000.0, resp.GrossSalary)
		assert.Equal(t, 1750.0, resp.TaxDeducted)
		assert.Equal(t, 56250.0, resp.NetSalary)
		assert.Equal(t, payroll.StatusGenerated, resp.Status)
	})

	t.Run("no tax info withholds nothing", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().ExistsForPeriod(ctx, empID, 3, 2026).Return(false, nil)
		deps.salaries.EXPECT().FindLatestAsOf(ctx, empID, gomock.Any()).Return(current, nil)
		deps.salaries.EXPECT().FindTaxInfo(ctx, empID).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Generate(ctx, hr, empID.String(), payroll.GeneratePayslipRequest{Month: 3, Year: 2026})

		require.NoError(t, err)
		assert.Zero(t, resp.TaxDeducted)
		assert.Equal(t, 58000.0, resp.NetSalary)
	})

	t.Run("no salary in force", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().ExistsForPeriod(ctx, empID, 1, 2020).Return(false, nil)
		deps.salaries.EXPECT().FindLatestAsOf(ctx, empID, gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Generate(ctx, hr, empID.String(), payroll.GeneratePayslipRequest{Month: 1, Year: 2020})

		assert.ErrorIs(t, err, payrollerrors.ErrSalaryNotFound)
		assert.Equal(t, "salary details not found", apperror.ToHTTP(err).Message)
	})

	t.Run("already generated", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().ExistsForPeriod(ctx, empID, 2, 2026).Return(true, nil)

		_, err := deps.service.Generate(ctx, hr, empID.String(), payroll.GeneratePayslipRequest{Month: 2, Year: 2026})

		assert.ErrorIs(t, err, payrollerrors.ErrPayslipAlreadyExists)
		assert.Equal(t, 409, apperror.ToHTTP(err).Status)
	})

	t.Run("lost race on unique constraint", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().ExistsForPeriod(ctx, empID, 2, 2026).Return(false, nil)
		deps.salaries.EXPECT().FindLatestAsOf(ctx, empID, gomock.Any()).Return(current, nil)
		deps.salaries.EXPECT().FindTaxInfo(ctx, empID).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_payslips_employee_period"})

		err := deps.service.GenerateForPeriod(ctx, empID.String(), 2, 2026)

		assert.ErrorIs(t, err, payrollerrors.ErrPayslipAlreadyExists)
	})

	t.Run("invalid period", func(t *testing.T) {
		deps := setupServiceTest(t)

		err := deps.service.GenerateForPeriod(ctx, empID.String(), 13, 2026)

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriod)
	})
}

func TestPayrollService_ListByEmployee(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()

	t.Run("self", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByEmployee(ctx, empID).Return([]payroll.Payslip{
			{ID: uuid.New(), EmployeeID: empID, Month: 3, Year: 2026},
			{ID: uuid.New(), EmployeeID: empID, Month: 2, Year: 2026},
		}, nil)

		resp, err := deps.service.ListByEmployee(ctx, domain.Actor{ID: empID.String(), Role: domain.RoleEmployee}, empID.String())

		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, 3, resp[0].Month)
	})

	t.Run("manager is refused", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.ListByEmployee(ctx, domain.Actor{ID: uuid.NewString(), Role: domain.RoleManager}, empID.String())

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})
}

func TestPayrollService_Download(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()
	slip := &payroll.Payslip{
		ID:          uuid.New(),
		EmployeeID:  empID,
		Month:       2,
		Year:        2026,
		BasicSalary: 50000,
		GrossSalary: 50000,
		NetSalary:   48750,
		TaxDeducted: 1250,
		Status:      payroll.StatusGenerated,
		GeneratedAt: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
		Employee:    &payroll.EmployeeRef{EmployeeNumber: "EMP-0007", FirstName: "Rui", LastName: "Costa"},
	}

	t.Run("owner gets a pdf", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, slip.ID).Return(slip, nil)

		body, filename, err := deps.service.Download(ctx, domain.Actor{ID: empID.String(), Role: domain.RoleEmployee}, slip.ID.String())

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
		assert.Equal(t, "payslip_EMP-0007_2026_02.pdf", filename)
	})

	t.Run("someone else", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, slip.ID).Return(slip, nil)

		_, _, err := deps.service.Download(ctx, domain.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee}, slip.ID.String())

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, _, err := deps.service.Download(ctx, domain.Actor{ID: uuid.NewString(), Role: domain.RoleHR}, id.String())

		assert.ErrorIs(t, err, payrollerrors.ErrPayslipNotFound)
	})
}

func TestPayrollService_Run(t *testing.T) {
	ctx := context.Background()
	hr := domain.Actor{ID: uuid.NewString(), Role: domain.RoleHR}

	t.Run("queues one event per active employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ListActiveEmployeeIDs(ctx).Return(ids, nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)

		var queued []string
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Times(3).DoAndReturn(func(_ context.Context, row kafka.OutboxEvent) error {
			assert.Equal(t, events.PayslipRequestedTopic, row.Topic)
			assert.Equal(t, events.EventPayslipRequested, row.EventType)

			var event events.PayslipRequestedEvent
			require.NoError(t, json.Unmarshal(row.Payload, &event))
			assert.Equal(t, 4, event.Month)
			assert.Equal(t, hr.ID, event.RequestedBy)
			queued = append(queued, event.EmployeeID)
			return nil
		})

		resp, err := deps.service.Run(ctx, hr, payroll.RunPayrollRequest{Month: 4, Year: 2026})

		require.NoError(t, err)
		assert.Equal(t, 3, resp.Queued)
		assert.Equal(t, []string{ids[0].String(), ids[1].String(), ids[2].String()}, queued)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ListActiveEmployeeIDs(ctx).Return([]uuid.UUID{uuid.New()}, nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(sql.ErrConnDone)

		_, err := deps.service.Run(ctx, hr, payroll.RunPayrollRequest{Month: 4, Year: 2026})

		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
