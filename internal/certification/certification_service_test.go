package certification_test

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/certification"
	certificationerrors "go-hrms/internal/certification/errors"
	certificationMock "go-hrms/internal/certification/mock"
	"go-hrms/internal/domain"
	"go-hrms/internal/rbac"
	"go-hrms/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupServiceTest(t *testing.T, managers map[string]string) (*certificationMock.MockRepository, certification.Service) {
	repo := certificationMock.NewMockRepository(gomock.NewController(t))
	guard := rbac.NewGuard(rbac.TeamResolverFunc(func(ctx context.Context, managerID, employeeID string) (bool, error) {
		return managers[employeeID] == managerID, nil
	}))
	return repo, certification.NewService(repo, guard)
}

func TestCertificationService_Create(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()
	self := domain.Actor{ID: empID.String(), Role: domain.RoleEmployee}
	aws := &certification.CertificationType{ID: uuid.New(), Name: "AWS SAA", ValidityPeriod: 36}

	t.Run("expiry defaults from validity period", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		repo.EXPECT().FindTypeByID(ctx, aws.ID).Return(aws, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *certification.EmployeeCertification) error {
			require.NotNil(t, c.ExpiryDate)
			assert.Equal(t, "2028-03-15", c.ExpiryDate.Format("2006-01-02"))
			assert.Equal(t, certification.StatusActive, c.Status)
			return nil
		})

		resp, err := svc.Create(ctx, self, empID.String(), certification.CreateCertificationRequest{
			CertificationTypeID: aws.ID.String(),
			IssueDate:           "2025-03-15",
		})

		require.NoError(t, err)
		assert.Equal(t, "AWS SAA", resp.CertificationTypeName)
		require.NotNil(t, resp.ExpiryDate)
		assert.Equal(t, "2028-03-15", *resp.ExpiryDate)
	})

	t.Run("no validity period leaves expiry empty", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		lifetime := &certification.CertificationType{ID: uuid.New(), Name: "PMP"}
		repo.EXPECT().FindTypeByID(ctx, lifetime.ID).Return(lifetime, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := svc.Create(ctx, self, empID.String(), certification.CreateCertificationRequest{
			CertificationTypeID: lifetime.ID.String(),
			IssueDate:           "2025-03-15",
		})

		require.NoError(t, err)
		assert.Nil(t, resp.ExpiryDate)
	})

	t.Run("expiry before issue", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		expiry := "2025-01-01"
		repo.EXPECT().FindTypeByID(ctx, aws.ID).Return(aws, nil)

		_, err := svc.Create(ctx, self, empID.String(), certification.CreateCertificationRequest{
			CertificationTypeID: aws.ID.String(),
			IssueDate:           "2025-03-15",
			ExpiryDate:          &expiry,
		})

		assert.ErrorIs(t, err, certificationerrors.ErrExpiryBeforeIssue)
	})

	t.Run("unknown type", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		id := uuid.New()
		repo.EXPECT().FindTypeByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Create(ctx, self, empID.String(), certification.CreateCertificationRequest{
			CertificationTypeID: id.String(),
			IssueDate:           "2025-03-15",
		})

		assert.ErrorIs(t, err, certificationerrors.ErrTypeNotFound)
	})

	t.Run("manager cannot record for a report", func(t *testing.T) {
		_, svc := setupServiceTest(t, nil)
		manager := domain.Actor{ID: uuid.NewString(), Role: domain.RoleManager}

		_, err := svc.Create(ctx, manager, empID.String(), certification.CreateCertificationRequest{
			CertificationTypeID: aws.ID.String(),
			IssueDate:           "2025-03-15",
		})

		assert.Equal(t, 403, apperror.ToHTTP(err).Status)
	})
}

func TestCertificationService_ListForEmployee(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()
	managerID := uuid.NewString()

	cases := []struct {
		name    string
		actor   domain.Actor
		allowed bool
	}{
		{"self", domain.Actor{ID: empID.String(), Role: domain.RoleEmployee}, true},
		{"hr", domain.Actor{ID: uuid.NewString(), Role: domain.RoleHR}, true},
		{"direct manager", domain.Actor{ID: managerID, Role: domain.RoleManager}, true},
		{"other manager", domain.Actor{ID: uuid.NewString(), Role: domain.RoleManager}, false},
		{"peer", domain.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, svc := setupServiceTest(t, map[string]string{empID.String(): managerID})
			if tc.allowed {
				repo.EXPECT().FindByEmployee(ctx, empID).Return([]certification.EmployeeCertification{
					{ID: uuid.New(), EmployeeID: empID, IssueDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Status: certification.StatusActive},
				}, nil)
			}

			resp, err := svc.ListForEmployee(ctx, tc.actor, empID.String())

			if tc.allowed {
				require.NoError(t, err)
				assert.Len(t, resp, 1)
				return
			}
			assert.Equal(t, 403, apperror.ToHTTP(err).Status)
		})
	}
}

func TestCertificationService_Update(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()
	hr := domain.Actor{ID: uuid.NewString(), Role: domain.RoleHR}

	t.Run("revoke", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		c := &certification.EmployeeCertification{ID: uuid.New(), EmployeeID: empID, IssueDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Status: certification.StatusActive}
		status := certification.StatusRevoked
		repo.EXPECT().FindForEmployee(ctx, empID, c.ID).Return(c, nil)
		repo.EXPECT().Update(ctx, c).Return(nil)

		resp, err := svc.Update(ctx, hr, empID.String(), c.ID.String(), certification.UpdateCertificationRequest{Status: &status})

		require.NoError(t, err)
		assert.Equal(t, certification.StatusRevoked, resp.Status)
	})

	t.Run("moving issue date past expiry", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		expiry := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		c := &certification.EmployeeCertification{ID: uuid.New(), EmployeeID: empID, IssueDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), ExpiryDate: &expiry}
		issue := "2025-06-01"
		repo.EXPECT().FindForEmployee(ctx, empID, c.ID).Return(c, nil)

		_, err := svc.Update(ctx, hr, empID.String(), c.ID.String(), certification.UpdateCertificationRequest{IssueDate: &issue})

		assert.ErrorIs(t, err, certificationerrors.ErrExpiryBeforeIssue)
	})

	t.Run("not found", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		id := uuid.New()
		repo.EXPECT().FindForEmployee(ctx, empID, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Update(ctx, hr, empID.String(), id.String(), certification.UpdateCertificationRequest{})

		assert.ErrorIs(t, err, certificationerrors.ErrCertificationNotFound)
	})
}

func TestCertificationService_DeleteType(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("in use", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		repo.EXPECT().CountByType(ctx, id).Return(int64(2), nil)

		err := svc.DeleteType(ctx, id.String())

		assert.ErrorIs(t, err, certificationerrors.ErrTypeInUse)
		assert.Equal(t, 409, apperror.ToHTTP(err).Status)
	})

	t.Run("foreign key race", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		repo.EXPECT().CountByType(ctx, id).Return(int64(0), nil)
		repo.EXPECT().DeleteType(ctx, id).Return(&pgconn.PgError{Code: "23503", ConstraintName: "employee_certifications_certification_type_id_fkey"})

		assert.ErrorIs(t, svc.DeleteType(ctx, id.String()), certificationerrors.ErrTypeInUse)
	})

	t.Run("success", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		repo.EXPECT().CountByType(ctx, id).Return(int64(0), nil)
		repo.EXPECT().DeleteType(ctx, id).Return(nil)

		assert.NoError(t, svc.DeleteType(ctx, id.String()))
	})

	t.Run("missing", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		repo.EXPECT().CountByType(ctx, id).Return(int64(0), nil)
		repo.EXPECT().DeleteType(ctx, id).Return(gorm.ErrRecordNotFound)

		assert.ErrorIs(t, svc.DeleteType(ctx, id.String()), certificationerrors.ErrTypeNotFound)
	})
}

func TestCertificationService_CreateType_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo, svc := setupServiceTest(t, nil)
	repo.EXPECT().CreateType(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_certification_types_name"})

	_, err := svc.CreateType(ctx, certification.CreateTypeRequest{Name: "AWS SAA"})

	assert.ErrorIs(t, err, certificationerrors.ErrTypeAlreadyExists)
}
