package course_test

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/course"
	courseerrors "go-hrms/internal/course/errors"
	courseMock "go-hrms/internal/course/mock"
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

func setupServiceTest(t *testing.T) (*courseMock.MockRepository, course.Service) {
	repo := courseMock.NewMockRepository(gomock.NewController(t))
	return repo, course.NewService(repo, rbac.NewGuard(nil))
}

func TestCourseService_Enroll(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()
	golang := &course.Course{ID: uuid.New(), Title: "Go Fundamentals", Status: course.CourseActive}

	t.Run("self enrollment has no assigner", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		self := domain.Actor{ID: empID.String(), Role: domain.RoleEmployee}

		repo.EXPECT().FindByID(ctx, golang.ID).Return(golang, nil)
		repo.EXPECT().IsEnrolled(ctx, empID, golang.ID).Return(false, nil)
		repo.EXPECT().CreateEnrollment(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *course.Enrollment) error {
			assert.Nil(t, e.AssignedBy)
			assert.Equal(t, course.EnrollmentEnrolled, e.Status)
			return nil
		})

		resp, err := svc.Enroll(ctx, self, empID.String(), course.EnrollRequest{CourseID: golang.ID.String()})

		require.NoError(t, err)
		assert.Equal(t, "Go Fundamentals", resp.CourseTitle)
		assert.Nil(t, resp.AssignedBy)
	})

	t.Run("manager enrollment records assigner", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		manager := domain.Actor{ID: uuid.NewString(), Role: domain.RoleManager}

		repo.EXPECT().FindByID(ctx, golang.ID).Return(golang, nil)
		repo.EXPECT().IsEnrolled(ctx, empID, golang.ID).Return(false, nil)
		repo.EXPECT().CreateEnrollment(ctx, gomock.Any()).Return(nil)

		resp, err := svc.Enroll(ctx, manager, empID.String(), course.EnrollRequest{CourseID: golang.ID.String()})

		require.NoError(t, err)
		require.NotNil(t, resp.AssignedBy)
		assert.Equal(t, manager.ID, *resp.AssignedBy)
	})

	t.Run("peer cannot enroll someone else", func(t *testing.T) {
		_, svc := setupServiceTest(t)
		peer := domain.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee}

		_, err := svc.Enroll(ctx, peer, empID.String(), course.EnrollRequest{CourseID: golang.ID.String()})

		assert.Equal(t, 403, apperror.ToHTTP(err).Status)
	})

	t.Run("inactive course", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		retired := &course.Course{ID: uuid.New(), Status: course.CourseInactive}
		repo.EXPECT().FindByID(ctx, retired.ID).Return(retired, nil)

		_, err := svc.Enroll(ctx, domain.Actor{ID: empID.String(), Role: domain.RoleEmployee}, empID.String(), course.EnrollRequest{CourseID: retired.ID.String()})

		assert.ErrorIs(t, err, courseerrors.ErrCourseInactive)
	})

	t.Run("already enrolled", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().FindByID(ctx, golang.ID).Return(golang, nil)
		repo.EXPECT().IsEnrolled(ctx, empID, golang.ID).Return(true, nil)

		_, err := svc.Enroll(ctx, domain.Actor{ID: empID.String(), Role: domain.RoleEmployee}, empID.String(), course.EnrollRequest{CourseID: golang.ID.String()})

		assert.ErrorIs(t, err, courseerrors.ErrAlreadyEnrolled)
		assert.Equal(t, 409, apperror.ToHTTP(err).Status)
	})

	t.Run("unique constraint race", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().FindByID(ctx, golang.ID).Return(golang, nil)
		repo.EXPECT().IsEnrolled(ctx, empID, golang.ID).Return(false, nil)
		repo.EXPECT().CreateEnrollment(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_course_enrollments_employee_course"})

		_, err := svc.Enroll(ctx, domain.Actor{ID: empID.String(), Role: domain.RoleEmployee}, empID.String(), course.EnrollRequest{CourseID: golang.ID.String()})

		assert.ErrorIs(t, err, courseerrors.ErrAlreadyEnrolled)
	})
}

func TestCourseService_UpdateEnrollment(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()
	self := domain.Actor{ID: empID.String(), Role: domain.RoleEmployee}

	t.Run("completed without date uses now", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		e := &course.Enrollment{ID: uuid.New(), EmployeeID: empID, Status: course.EnrollmentInProgress}
		repo.EXPECT().FindEnrollment(ctx, empID, e.ID).Return(e, nil)
		repo.EXPECT().UpdateEnrollment(ctx, e).Return(nil)

		before := time.Now().UTC().Add(-time.Second)
		resp, err := svc.UpdateEnrollment(ctx, self, empID.String(), e.ID.String(), course.UpdateEnrollmentRequest{Status: course.EnrollmentCompleted})

		require.NoError(t, err)
		require.NotNil(t, e.CompletionDate)
		assert.True(t, e.CompletionDate.After(before))
		assert.NotNil(t, resp.CompletionDate)
	})

	t.Run("completed with explicit date", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		e := &course.Enrollment{ID: uuid.New(), EmployeeID: empID, Status: course.EnrollmentInProgress}
		date := "2026-02-10"
		repo.EXPECT().FindEnrollment(ctx, empID, e.ID).Return(e, nil)
		repo.EXPECT().UpdateEnrollment(ctx, e).Return(nil)

		_, err := svc.UpdateEnrollment(ctx, self, empID.String(), e.ID.String(), course.UpdateEnrollmentRequest{Status: course.EnrollmentCompleted, CompletionDate: &date})

		require.NoError(t, err)
		assert.Equal(t, "2026-02-10", e.CompletionDate.Format("2006-01-02"))
	})

	t.Run("dropping clears completion date", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		done := time.Now()
		e := &course.Enrollment{ID: uuid.New(), EmployeeID: empID, Status: course.EnrollmentCompleted, CompletionDate: &done}
		repo.EXPECT().FindEnrollment(ctx, empID, e.ID).Return(e, nil)
		repo.EXPECT().UpdateEnrollment(ctx, e).Return(nil)

		_, err := svc.UpdateEnrollment(ctx, self, empID.String(), e.ID.String(), course.UpdateEnrollmentRequest{Status: course.EnrollmentDropped})

		require.NoError(t, err)
		assert.Nil(t, e.CompletionDate)
	})

	t.Run("not found", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		id := uuid.New()
		repo.EXPECT().FindEnrollment(ctx, empID, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.UpdateEnrollment(ctx, self, empID.String(), id.String(), course.UpdateEnrollmentRequest{Status: course.EnrollmentInProgress})

		assert.ErrorIs(t, err, courseerrors.ErrEnrollmentNotFound)
	})
}

func TestCourseService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		_, svc := setupServiceTest(t)
		_, err := svc.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, courseerrors.ErrInvalidCourseID)
	})

	t.Run("missing", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		id := uuid.New()
		repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(ctx, id.String())

		assert.ErrorIs(t, err, courseerrors.ErrCourseNotFound)
	})
}

func TestCourseService_Update_Deactivate(t *testing.T) {
	ctx := context.Background()
	repo, svc := setupServiceTest(t)
	c := &course.Course{ID: uuid.New(), Title: "Old", Status: course.CourseActive}
	status := course.CourseInactive
	repo.EXPECT().FindByID(ctx, c.ID).Return(c, nil)
	repo.EXPECT().Update(ctx, c).Return(nil)

	resp, err := svc.Update(ctx, c.ID.String(), course.UpdateCourseRequest{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, course.CourseInactive, resp.Status)
}
