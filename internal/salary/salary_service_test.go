package salary_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-hrms/internal/domain"
	"go-hrms/internal/rbac"
	"go-hrms/internal/salary"
	salaryerrors "go-hrms/internal/salary/errors"
	salaryMock "go-hrms/internal/salary/mock"
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
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *salaryMock.MockRepository
	service salary.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := salaryMock.NewMockRepository(ctrl)
	guard := rbac.NewGuard(nil)
	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		repo:    repo,
		service: salary.NewService(db, repo, guard),
	}
}

func ptr[T any](v T) *T { return &v }

func TestSalaryService_Update(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()

	t.Run("carries over unspecified fields", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		current := &salary.Salary{ID: uuid.New(), EmployeeID: empID, BasicSalary: 50000, Allowances: 5000, Deductions: 2000}
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindLatest(ctx, empID).Return(current, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *salary.Salary) error {
			assert.NotEqual(t, current.ID, s.ID)
			return nil
		})

		resp, err := deps.service.Update(ctx, empID.String(), salary.UpdateSalaryRequest{
			BasicSalary:   ptr(60000.556),
			EffectiveDate: ptr("2026-04-01"),
		})

		require.NoError(t, err)
		assert.Equal(t, 60000.56, resp.BasicSalary)
		assert.Equal(t, 5000.0, resp.Allowances)
		assert.Equal(t, 2000.0, resp.Deductions)
		assert.Equal(t, 65000.56, resp.GrossSalary)
		assert.Equal(t, 63000.56, resp.NetSalary)
		assert.Equal(t, "2026-04-01", resp.EffectiveDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("first record needs basic salary", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindLatest(ctx, empID).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, empID.String(), salary.UpdateSalaryRequest{Allowances: ptr(100.0)})

		assert.ErrorIs(t, err, salaryerrors.ErrBasicSalaryRequired)
	})

	t.Run("negative amount", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindLatest(ctx, empID).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, empID.String(), salary.UpdateSalaryRequest{BasicSalary: ptr(1000.0), Deductions: ptr(-1.0)})

		assert.ErrorIs(t, err, salaryerrors.ErrNegativeAmount)
		assert.Equal(t, 400, apperror.ToHTTP(err).Status)
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindLatest(ctx, empID).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23503", ConstraintName: "salaries_employee_id_fkey"})

		_, err := deps.service.Update(ctx, empID.String(), salary.UpdateSalaryRequest{BasicSalary: ptr(1000.0)})

		assert.ErrorIs(t, err, salaryerrors.ErrEmployeeNotFound)
	})

	t.Run("bad effective date", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Update(ctx, empID.String(), salary.UpdateSalaryRequest{EffectiveDate: ptr("01-04-2026")})

		assert.ErrorIs(t, err, salaryerrors.ErrInvalidEffectiveDate)
	})
}

func TestSalaryService_GetCurrent(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()

	t.Run("self", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindLatest(ctx, empID).Return(&salary.Salary{
			ID:            uuid.New(),
			EmployeeID:    empID,
			BasicSalary:   40000,
			GrossSalary:   40000,
			NetSalary:     40000,
			EffectiveDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		}, nil)

		resp, err := deps.service.GetCurrent(ctx, domain.Actor{ID: empID.String(), Role: domain.RoleEmployee}, empID.String())

		require.NoError(t, err)
		assert.Equal(t, "2026-01-01", resp.EffectiveDate)
	})

	t.Run("manager of someone else is refused", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.GetCurrent(ctx, domain.Actor{ID: uuid.NewString(), Role: domain.RoleManager}, empID.String())

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("none on file", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindLatest(ctx, empID).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetCurrent(ctx, domain.Actor{ID: uuid.NewString(), Role: domain.RoleHR}, empID.String())

		assert.ErrorIs(t, err, salaryerrors.ErrSalaryNotFound)
	})
}

func TestSalaryService_GetHistory(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()
	deps := setupServiceTest(t)

	deps.repo.EXPECT().FindHistory(ctx, empID).Return([]salary.Salary{
		{ID: uuid.New(), EffectiveDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), EffectiveDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)

	resp, err := deps.service.GetHistory(ctx, domain.Actor{ID: uuid.NewString(), Role: domain.RoleAdmin}, empID.String())

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "2026-04-01", resp[0].EffectiveDate)
}

func TestSalaryService_UpsertTaxInfo(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()
	self := domain.Actor{ID: empID.String(), Role: domain.RoleEmployee}

	t.Run("normalises and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		stored := &salary.TaxInfo{ID: uuid.New(), EmployeeID: empID, PANNumber: "ABCDE1234F", TaxRegime: salary.RegimeOld}

		deps.repo.EXPECT().UpsertTaxInfo(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, info *salary.TaxInfo) error {
			assert.Equal(t, "ABCDE1234F", info.PANNumber)
			assert.Equal(t, salary.RegimeOld, info.TaxRegime)
			assert.NotNil(t, info.TaxDeclarations)
			return nil
		})
		deps.repo.EXPECT().FindTaxInfo(ctx, empID).Return(stored, nil)

		resp, err := deps.service.UpsertTaxInfo(ctx, self, empID.String(), salary.UpsertTaxInfoRequest{
			PANNumber: " abcde1234f ",
			TaxRegime: "OLD",
		})

		require.NoError(t, err)
		assert.Equal(t, stored.ID.String(), resp.ID)
	})

	tests := []struct {
		name    string
		req     salary.UpsertTaxInfoRequest
		wantErr error
	}{
		{"short pan", salary.UpsertTaxInfoRequest{PANNumber: "ABCD1234F", TaxRegime: "new"}, salaryerrors.ErrInvalidPAN},
		{"digits first", salary.UpsertTaxInfoRequest{PANNumber: "12345ABCDE", TaxRegime: "new"}, salaryerrors.ErrInvalidPAN},
		{"unknown regime", salary.UpsertTaxInfoRequest{PANNumber: "ABCDE1234F", TaxRegime: "flat"}, salaryerrors.ErrInvalidTaxRegime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := setupServiceTest(t)

			_, err := deps.service.UpsertTaxInfo(ctx, self, empID.String(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("other employee", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.UpsertTaxInfo(ctx, domain.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee}, empID.String(), salary.UpsertTaxInfoRequest{PANNumber: "ABCDE1234F", TaxRegime: "new"})

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})
}

func TestSalaryService_GetTaxInfo_NotFound(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()
	deps := setupServiceTest(t)

	deps.repo.EXPECT().FindTaxInfo(ctx, empID).Return(nil, gorm.ErrRecordNotFound)

	_, err := deps.service.GetTaxInfo(ctx, domain.Actor{ID: empID.String(), Role: domain.RoleEmployee}, empID.String())

	assert.ErrorIs(t, err, salaryerrors.ErrTaxInfoNotFound)
	assert.Equal(t, 404, apperror.ToHTTP(err).Status)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.01, salary.Round2(10.005000001))
	assert.Equal(t, 20833.33, salary.Round2(20833.333333))
	assert.Equal(t, 0.0, salary.Round2(0.001))
}
