package onboarding_test

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/domain"
	"go-hrms/internal/onboarding"
	onboardingerrors "go-hrms/internal/onboarding/errors"
	onboardingMock "go-hrms/internal/onboarding/mock"
	"go-hrms/internal/rbac"
	"go-hrms/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupServiceTest(t *testing.T, managers map[string]string) (*onboardingMock.MockRepository, onboarding.Service) {
	repo := onboardingMock.NewMockRepository(gomock.NewController(t))
	guard := rbac.NewGuard(rbac.TeamResolverFunc(func(ctx context.Context, managerID, employeeID string) (bool, error) {
		return managers[employeeID] == managerID, nil
	}))
	return repo, onboarding.NewService(repo, guard)
}

func TestOnboardingService_CreateTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("priority defaults to medium", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		repo.EXPECT().CreateTemplate(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, task *onboarding.Task) error {
			assert.Equal(t, onboarding.KindOnboarding, task.Kind)
			assert.Equal(t, onboarding.PriorityMedium, task.Priority)
			assert.True(t, task.IsActive)
			return nil
		})

		resp, err := svc.CreateTemplate(ctx, onboarding.KindOnboarding, onboarding.CreateTaskRequest{Title: "Laptop setup"})

		require.NoError(t, err)
		assert.Equal(t, "Laptop setup", resp.Title)
	})

	t.Run("role not allowed on offboarding", func(t *testing.T) {
		_, svc := setupServiceTest(t, nil)
		role := uuid.NewString()

		_, err := svc.CreateTemplate(ctx, onboarding.KindOffboarding, onboarding.CreateTaskRequest{Title: "Return badge", RoleID: &role})

		assert.ErrorIs(t, err, onboardingerrors.ErrRoleNotAllowed)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, svc := setupServiceTest(t, nil)

		_, err := svc.CreateTemplate(ctx, "crossboarding", onboarding.CreateTaskRequest{Title: "x"})

		assert.ErrorIs(t, err, onboardingerrors.ErrInvalidKind)
	})
}

func TestOnboardingService_UpdateEmployeeTask(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()
	template := &onboarding.Task{ID: uuid.New(), Kind: onboarding.KindOnboarding, Title: "Sign contract", Priority: onboarding.PriorityHigh, IsActive: true}

	t.Run("creates the assignment when missing", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		repo.EXPECT().FindTemplate(ctx, onboarding.KindOnboarding, template.ID).Return(template, nil)
		repo.EXPECT().FindEmployeeTask(ctx, empID, template.ID).Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().CreateEmployeeTask(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, et *onboarding.EmployeeTask) error {
			assert.Equal(t, onboarding.StatusInProgress, et.Status)
			assert.Nil(t, et.CompletedAt)
			return nil
		})

		resp, err := svc.UpdateEmployeeTask(ctx, onboarding.KindOnboarding, empID.String(), template.ID.String(),
			onboarding.UpdateEmployeeTaskRequest{Status: onboarding.StatusInProgress})

		require.NoError(t, err)
		assert.Equal(t, "Sign contract", resp.Task.Title)
	})

	t.Run("completing sets completed_at", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		et := &onboarding.EmployeeTask{ID: uuid.New(), EmployeeID: empID, TaskID: template.ID, Status: onboarding.StatusPending}
		notes := "done in person"
		repo.EXPECT().FindTemplate(ctx, onboarding.KindOnboarding, template.ID).Return(template, nil)
		repo.EXPECT().FindEmployeeTask(ctx, empID, template.ID).Return(et, nil)
		repo.EXPECT().UpdateEmployeeTask(ctx, et).Return(nil)

		resp, err := svc.UpdateEmployeeTask(ctx, onboarding.KindOnboarding, empID.String(), template.ID.String(),
			onboarding.UpdateEmployeeTaskRequest{Status: onboarding.StatusCompleted, Notes: &notes})

		require.NoError(t, err)
		require.NotNil(t, et.CompletedAt)
		assert.Equal(t, "done in person", resp.Notes)
		assert.NotNil(t, resp.CompletedAt)
	})

	t.Run("reopening clears completed_at", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		done := time.Now()
		et := &onboarding.EmployeeTask{ID: uuid.New(), EmployeeID: empID, TaskID: template.ID, Status: onboarding.StatusCompleted, CompletedAt: &done}
		repo.EXPECT().FindTemplate(ctx, onboarding.KindOnboarding, template.ID).Return(template, nil)
		repo.EXPECT().FindEmployeeTask(ctx, empID, template.ID).Return(et, nil)
		repo.EXPECT().UpdateEmployeeTask(ctx, et).Return(nil)

		_, err := svc.UpdateEmployeeTask(ctx, onboarding.KindOnboarding, empID.String(), template.ID.String(),
			onboarding.UpdateEmployeeTaskRequest{Status: onboarding.StatusPending})

		require.NoError(t, err)
		assert.Nil(t, et.CompletedAt)
	})

	t.Run("template of the other kind is not found", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		repo.EXPECT().FindTemplate(ctx, onboarding.KindOffboarding, template.ID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.UpdateEmployeeTask(ctx, onboarding.KindOffboarding, empID.String(), template.ID.String(),
			onboarding.UpdateEmployeeTaskRequest{Status: onboarding.StatusPending})

		assert.ErrorIs(t, err, onboardingerrors.ErrTaskNotFound)
	})
}

func TestOnboardingService_AssignTemplates(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()
	dept := uuid.New()

	t.Run("assigns matching templates", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		profile := &onboarding.Profile{DepartmentID: &dept}
		templates := []onboarding.Task{{ID: uuid.New()}, {ID: uuid.New()}}

		repo.EXPECT().FindProfile(ctx, empID).Return(profile, nil)
		repo.EXPECT().MatchTemplates(ctx, onboarding.KindOnboarding, *profile).Return(templates, nil)
		repo.EXPECT().AssignTasks(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, rows []onboarding.EmployeeTask) (int64, error) {
			require.Len(t, rows, 2)
			for i, row := range rows {
				assert.Equal(t, empID, row.EmployeeID)
				assert.Equal(t, templates[i].ID, row.TaskID)
				assert.Equal(t, onboarding.StatusPending, row.Status)
			}
			return 2, nil
		})

		n, err := svc.AssignTemplates(ctx, empID.String(), onboarding.KindOnboarding)

		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("second run assigns nothing new", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		profile := &onboarding.Profile{}
		repo.EXPECT().FindProfile(ctx, empID).Return(profile, nil)
		repo.EXPECT().MatchTemplates(ctx, onboarding.KindOffboarding, *profile).Return([]onboarding.Task{{ID: uuid.New()}}, nil)
		repo.EXPECT().AssignTasks(ctx, gomock.Any()).Return(int64(0), nil)

		n, err := svc.AssignTemplates(ctx, empID.String(), onboarding.KindOffboarding)

		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("unknown employee", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		repo.EXPECT().FindProfile(ctx, empID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.AssignTemplates(ctx, empID.String(), onboarding.KindOnboarding)

		assert.ErrorIs(t, err, onboardingerrors.ErrEmployeeNotFound)
	})
}

func TestOnboardingService_ListEmployeeTasks(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()
	managerID := uuid.NewString()

	t.Run("direct manager", func(t *testing.T) {
		repo, svc := setupServiceTest(t, map[string]string{empID.String(): managerID})
		repo.EXPECT().FindEmployeeTasks(ctx, empID, onboarding.KindOnboarding).Return([]onboarding.EmployeeTask{
			{ID: uuid.New(), EmployeeID: empID, Status: onboarding.StatusPending},
		}, nil)

		resp, err := svc.ListEmployeeTasks(ctx, domain.Actor{ID: managerID, Role: domain.RoleEmployee}, onboarding.KindOnboarding, empID.String())

		require.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("peer is forbidden", func(t *testing.T) {
		_, svc := setupServiceTest(t, map[string]string{empID.String(): managerID})

		_, err := svc.ListEmployeeTasks(ctx, domain.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee}, onboarding.KindOnboarding, empID.String())

		assert.Equal(t, 403, apperror.ToHTTP(err).Status)
	})
}
