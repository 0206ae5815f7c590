package performance_test

import (
	"context"
	"errors"
	"testing"

	"go-hrms/internal/domain"
	"go-hrms/internal/performance"
	performanceerrors "go-hrms/internal/performance/errors"
	performanceMock "go-hrms/internal/performance/mock"
	"go-hrms/internal/rbac"
	"go-hrms/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupServiceTest(t *testing.T, managers map[string]string) (*performanceMock.MockRepository, performance.Service) {
	repo := performanceMock.NewMockRepository(gomock.NewController(t))
	guard := rbac.NewGuard(rbac.TeamResolverFunc(func(ctx context.Context, managerID, employeeID string) (bool, error) {
		return managers[employeeID] == managerID, nil
	}))
	return repo, performance.NewService(repo, guard)
}

func TestPerformanceService_CreateRating(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()
	manager := domain.Actor{ID: uuid.NewString(), Role: domain.RoleManager}
	team := map[string]string{empID.String(): manager.ID}

	valid := performance.CreateRatingRequest{Rating: 4, Category: "delivery", PeriodStart: "2026-01-01", PeriodEnd: "2026-03-31"}

	t.Run("direct manager rates", func(t *testing.T) {
		repo, svc := setupServiceTest(t, team)
		repo.EXPECT().CreateRating(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *performance.Rating) error {
			require.NotNil(t, r.RatedBy)
			assert.Equal(t, manager.ID, r.RatedBy.String())
			assert.Equal(t, 4, r.Rating)
			return nil
		})

		resp, err := svc.CreateRating(ctx, manager, empID.String(), valid)

		require.NoError(t, err)
		assert.Equal(t, "2026-03-31", resp.PeriodEnd)
	})

	t.Run("other manager is forbidden", func(t *testing.T) {
		_, svc := setupServiceTest(t, team)
		other := domain.Actor{ID: uuid.NewString(), Role: domain.RoleManager}

		_, err := svc.CreateRating(ctx, other, empID.String(), valid)

		assert.Equal(t, 403, apperror.ToHTTP(err).Status)
	})

	t.Run("rating out of range", func(t *testing.T) {
		_, svc := setupServiceTest(t, team)
		req := valid
		req.Rating = 6

		_, err := svc.CreateRating(ctx, manager, empID.String(), req)

		assert.ErrorIs(t, err, performanceerrors.ErrInvalidRating)
	})

	t.Run("period reversed", func(t *testing.T) {
		_, svc := setupServiceTest(t, team)
		req := valid
		req.PeriodStart, req.PeriodEnd = "2026-03-31", "2026-01-01"

		_, err := svc.CreateRating(ctx, manager, empID.String(), req)

		assert.ErrorIs(t, err, performanceerrors.ErrInvalidPeriod)
	})
}

func TestPerformanceService_UpdateRating_WrongEmployee(t *testing.T) {
	ctx := context.Background()
	repo, svc := setupServiceTest(t, nil)
	hr := domain.Actor{ID: uuid.NewString(), Role: domain.RoleHR}
	empID, ratingID := uuid.New(), uuid.New()
	repo.EXPECT().FindRating(ctx, empID, ratingID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.UpdateRating(ctx, hr, empID.String(), ratingID.String(), performance.UpdateRatingRequest{})

	assert.ErrorIs(t, err, performanceerrors.ErrRatingNotFound)
}

func TestPerformanceService_UpdateReview_Transitions(t *testing.T) {
	ctx := context.Background()
	hr := domain.Actor{ID: uuid.NewString(), Role: domain.RoleHR}
	empID := uuid.New()
	status := func(s string) *string { return &s }

	t.Run("draft to submitted", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		r := &performance.Review{ID: uuid.New(), EmployeeID: empID, Status: performance.ReviewDraft, OverallRating: 3}
		repo.EXPECT().FindReview(ctx, empID, r.ID).Return(r, nil)
		repo.EXPECT().UpdateReview(ctx, r).Return(nil)

		resp, err := svc.UpdateReview(ctx, hr, empID.String(), r.ID.String(), performance.UpdateReviewRequest{Status: status(performance.ReviewSubmitted)})

		require.NoError(t, err)
		assert.Equal(t, performance.ReviewSubmitted, resp.Status)
		assert.NotNil(t, resp.SubmittedAt)
		assert.Nil(t, resp.ApprovedAt)
	})

	t.Run("submitted to approved", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		r := &performance.Review{ID: uuid.New(), EmployeeID: empID, Status: performance.ReviewSubmitted, OverallRating: 3}
		repo.EXPECT().FindReview(ctx, empID, r.ID).Return(r, nil)
		repo.EXPECT().UpdateReview(ctx, r).Return(nil)

		resp, err := svc.UpdateReview(ctx, hr, empID.String(), r.ID.String(), performance.UpdateReviewRequest{Status: status(performance.ReviewApproved)})

		require.NoError(t, err)
		assert.NotNil(t, resp.ApprovedAt)
	})

	t.Run("backwards is rejected", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		r := &performance.Review{ID: uuid.New(), EmployeeID: empID, Status: performance.ReviewApproved, OverallRating: 3}
		repo.EXPECT().FindReview(ctx, empID, r.ID).Return(r, nil)

		_, err := svc.UpdateReview(ctx, hr, empID.String(), r.ID.String(), performance.UpdateReviewRequest{Status: status(performance.ReviewDraft)})

		assert.ErrorIs(t, err, performanceerrors.ErrInvalidTransition)
		assert.Equal(t, 400, apperror.ToHTTP(err).Status)
	})
}

func TestPerformanceService_DeleteReview(t *testing.T) {
	ctx := context.Background()
	hr := domain.Actor{ID: uuid.NewString(), Role: domain.RoleHR}
	empID := uuid.New()

	t.Run("draft", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		r := &performance.Review{ID: uuid.New(), EmployeeID: empID, Status: performance.ReviewDraft}
		repo.EXPECT().FindReview(ctx, empID, r.ID).Return(r, nil)
		repo.EXPECT().DeleteReview(ctx, r.ID).Return(nil)

		assert.NoError(t, svc.DeleteReview(ctx, hr, empID.String(), r.ID.String()))
	})

	t.Run("submitted is kept", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		r := &performance.Review{ID: uuid.New(), EmployeeID: empID, Status: performance.ReviewSubmitted}
		repo.EXPECT().FindReview(ctx, empID, r.ID).Return(r, nil)

		assert.ErrorIs(t, svc.DeleteReview(ctx, hr, empID.String(), r.ID.String()), performanceerrors.ErrReviewNotDraft)
	})
}

func TestPerformanceService_Report(t *testing.T) {
	ctx := context.Background()
	eng, ops := "Engineering", "Operations"
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	t.Run("aggregates", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		hr := domain.Actor{ID: uuid.NewString(), Role: domain.RoleHR}

		repo.EXPECT().RatingRows(gomock.Any(), "").Return([]performance.RatingRow{
			{EmployeeID: a, FirstName: "Ann", DepartmentName: &eng, Rating: 5},
			{EmployeeID: a, FirstName: "Ann", DepartmentName: &eng, Rating: 4},
			{EmployeeID: b, FirstName: "Bob", DepartmentName: &eng, Rating: 3},
			{EmployeeID: c, FirstName: "Cy", Rating: 2},
		}, nil)
		repo.EXPECT().ReviewStatusCounts(gomock.Any(), "").Return([]performance.StatusCount{
			{Status: performance.ReviewDraft, Count: 1},
			{Status: performance.ReviewSubmitted, Count: 2},
			{Status: performance.ReviewApproved, Count: 1},
		}, nil)
		repo.EXPECT().DepartmentNames(gomock.Any(), "").Return([]string{eng, ops}, nil)

		report, err := svc.Report(ctx, hr)

		require.NoError(t, err)
		assert.Equal(t, 3.5, report.AverageRating)
		assert.Equal(t, map[int]int{1: 0, 2: 1, 3: 1, 4: 1, 5: 1}, report.RatingDistribution)
		assert.Equal(t, 0.75, report.ReviewCompletionRate)
		assert.Equal(t, 4.0, report.DepartmentAverages[eng])
		assert.Equal(t, 0.0, report.DepartmentAverages[ops])
		require.Len(t, report.TopPerformers, 3)
		assert.Equal(t, "Ann", report.TopPerformers[0].Name)
		assert.Equal(t, 4.5, report.TopPerformers[0].AverageRating)
		assert.Equal(t, "Cy", report.TopPerformers[2].Name)
	})

	t.Run("manager scope and empty data", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		manager := domain.Actor{ID: uuid.NewString(), Role: domain.RoleManager}

		repo.EXPECT().RatingRows(gomock.Any(), manager.ID).Return(nil, nil)
		repo.EXPECT().ReviewStatusCounts(gomock.Any(), manager.ID).Return(nil, nil)
		repo.EXPECT().DepartmentNames(gomock.Any(), manager.ID).Return(nil, nil)

		report, err := svc.Report(ctx, manager)

		require.NoError(t, err)
		assert.Zero(t, report.AverageRating)
		assert.Zero(t, report.ReviewCompletionRate)
		assert.Empty(t, report.TopPerformers)
	})

	t.Run("query failure", func(t *testing.T) {
		repo, svc := setupServiceTest(t, nil)
		hr := domain.Actor{ID: uuid.NewString(), Role: domain.RoleHR}
		boom := errors.New("db down")

		repo.EXPECT().RatingRows(gomock.Any(), "").Return(nil, boom)
		repo.EXPECT().ReviewStatusCounts(gomock.Any(), "").Return(nil, nil).AnyTimes()
		repo.EXPECT().DepartmentNames(gomock.Any(), "").Return(nil, nil).AnyTimes()

		_, err := svc.Report(ctx, hr)

		assert.ErrorIs(t, err, boom)
	})
}
