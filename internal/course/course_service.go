package course

import (
	"context"
	"errors"
	"strings"
	"time"

	courseerrors "go-hrms/internal/course/errors"
	"go-hrms/internal/domain"
	"go-hrms/internal/rbac"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=course_service.go -destination=mock/course_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]CourseResponse, error)
	GetByID(ctx context.Context, id string) (CourseResponse, error)
	Create(ctx context.Context, req CreateCourseRequest) (CourseResponse, error)
	Update(ctx context.Context, id string, req UpdateCourseRequest) (CourseResponse, error)

	ListEnrollments(ctx context.Context, actor domain.Actor, employeeID string) ([]EnrollmentResponse, error)
	Enroll(ctx context.Context, actor domain.Actor, employeeID string, req EnrollRequest) (EnrollmentResponse, error)
	UpdateEnrollment(ctx context.Context, actor domain.Actor, employeeID, enrollmentID string, req UpdateEnrollmentRequest) (EnrollmentResponse, error)
}

type service struct {
	repo   Repository
	guard  rbac.Guard
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, guard rbac.Guard, logger ...*zap.Logger) Service {
	l := zap.L().Named("course.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("course.service")
	}
	return &service{repo: repo, guard: guard, now: time.Now, logger: l}
}

func (s *service) List(ctx context.Context) ([]CourseResponse, error) {
	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]CourseResponse, len(rows))
	for i, c := range rows {
		resp[i] = mapCourseResponse(c)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (CourseResponse, error) {
	c, err := s.findCourse(ctx, id)
	if err != nil {
		return CourseResponse{}, err
	}
	return mapCourseResponse(*c), nil
}

func (s *service) Create(ctx context.Context, req CreateCourseRequest) (CourseResponse, error) {
	c := &Course{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Duration:    req.Duration,
		Category:    strings.TrimSpace(req.Category),
		Status:      CourseActive,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("create course failed", zap.String("title", c.Title), zap.Error(err))
		return CourseResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("course created", zap.String("course_id", c.ID.String()), zap.String("title", c.Title))
	return mapCourseResponse(*c), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCourseRequest) (CourseResponse, error) {
	c, err := s.findCourse(ctx, id)
	if err != nil {
		return CourseResponse{}, err
	}

	if req.Title != nil {
		c.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.Duration != nil {
		c.Duration = *req.Duration
	}
	if req.Category != nil {
		c.Category = strings.TrimSpace(*req.Category)
	}
	if req.Status != nil {
		c.Status = *req.Status
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return CourseResponse{}, mapRepositoryError(err)
	}
	return mapCourseResponse(*c), nil
}

func (s *service) ListEnrollments(ctx context.Context, actor domain.Actor, employeeID string) ([]EnrollmentResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, courseerrors.ErrInvalidEmployeeID
	}
	if err := s.guard.Authorize(ctx, actor, employeeID, rbac.TeamView); err != nil {
		return nil, err
	}

	rows, err := s.repo.FindEnrollments(ctx, empID)
	if err != nil {
		return nil, err
	}
	resp := make([]EnrollmentResponse, len(rows))
	for i, e := range rows {
		resp[i] = mapEnrollmentResponse(e)
	}
	return resp, nil
}

func (s *service) Enroll(ctx context.Context, actor domain.Actor, employeeID string, req EnrollRequest) (EnrollmentResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return EnrollmentResponse{}, courseerrors.ErrInvalidEmployeeID
	}
	if err := s.guard.Authorize(ctx, actor, employeeID, rbac.SelfOrManager); err != nil {
		return EnrollmentResponse{}, err
	}

	c, err := s.findCourse(ctx, req.CourseID)
	if err != nil {
		return EnrollmentResponse{}, err
	}
	if c.Status != CourseActive {
		return EnrollmentResponse{}, courseerrors.ErrCourseInactive
	}

	enrolled, err := s.repo.IsEnrolled(ctx, empID, c.ID)
	if err != nil {
		return EnrollmentResponse{}, err
	}
	if enrolled {
		return EnrollmentResponse{}, courseerrors.ErrAlreadyEnrolled
	}

	e := &Enrollment{
		ID:         uuid.New(),
		EmployeeID: empID,
		CourseID:   c.ID,
		Status:     EnrollmentEnrolled,
		CreatedAt:  s.now().UTC(),
	}
	if actor.ID != employeeID {
		if assigner, err := uuid.Parse(actor.ID); err == nil {
			e.AssignedBy = &assigner
		}
	}

	if err := s.repo.CreateEnrollment(ctx, e); err != nil {
		s.logger.Error("enroll failed",
			zap.String("employee_id", employeeID),
			zap.String("course_id", c.ID.String()),
			zap.Error(err),
		)
		return EnrollmentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("employee enrolled",
		zap.String("employee_id", employeeID),
		zap.String("course_id", c.ID.String()),
		zap.String("actor_id", actor.ID),
	)
	e.Course = c
	return mapEnrollmentResponse(*e), nil
}

func (s *service) UpdateEnrollment(ctx context.Context, actor domain.Actor, employeeID, enrollmentID string, req UpdateEnrollmentRequest) (EnrollmentResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return EnrollmentResponse{}, courseerrors.ErrInvalidEmployeeID
	}
	id, err := uuid.Parse(enrollmentID)
	if err != nil {
		return EnrollmentResponse{}, courseerrors.ErrInvalidEnrollmentID
	}
	if err := s.guard.Authorize(ctx, actor, employeeID, rbac.SelfOrManager); err != nil {
		return EnrollmentResponse{}, err
	}

	e, err := s.repo.FindEnrollment(ctx, empID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EnrollmentResponse{}, courseerrors.ErrEnrollmentNotFound
		}
		return EnrollmentResponse{}, err
	}

	e.Status = req.Status
	if req.Status == EnrollmentCompleted {
		completed, err := parseCompletionDate(req.CompletionDate)
		if err != nil {
			return EnrollmentResponse{}, err
		}
		if completed == nil {
			now := s.now().UTC()
			completed = &now
		}
		e.CompletionDate = completed
	} else {
		e.CompletionDate = nil
	}

	if err := s.repo.UpdateEnrollment(ctx, e); err != nil {
		return EnrollmentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("enrollment updated",
		zap.String("enrollment_id", enrollmentID),
		zap.String("status", e.Status),
	)
	return mapEnrollmentResponse(*e), nil
}

func (s *service) findCourse(ctx context.Context, id string) (*Course, error) {
	courseID, err := uuid.Parse(id)
	if err != nil {
		return nil, courseerrors.ErrInvalidCourseID
	}
	c, err := s.repo.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, courseerrors.ErrCourseNotFound
		}
		return nil, err
	}
	return c, nil
}

// parseCompletionDate accepts a full timestamp or a bare date.
func parseCompletionDate(v *string) (*time.Time, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, *v); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", *v)
	if err != nil {
		return nil, courseerrors.ErrInvalidDate
	}
	return &t, nil
}

func mapCourseResponse(c Course) CourseResponse {
	return CourseResponse{
		ID:          c.ID.String(),
		Title:       c.Title,
		Description: c.Description,
		Duration:    c.Duration,
		Category:    c.Category,
		Status:      c.Status,
	}
}

func mapEnrollmentResponse(e Enrollment) EnrollmentResponse {
	resp := EnrollmentResponse{
		ID:         e.ID.String(),
		EmployeeID: e.EmployeeID.String(),
		CourseID:   e.CourseID.String(),
		Status:     e.Status,
		EnrolledAt: e.CreatedAt.Format(time.RFC3339),
	}
	if e.AssignedBy != nil {
		v := e.AssignedBy.String()
		resp.AssignedBy = &v
	}
	if e.CompletionDate != nil {
		v := e.CompletionDate.Format(time.RFC3339)
		resp.CompletionDate = &v
	}
	if e.Course != nil {
		resp.CourseTitle = e.Course.Title
	}
	return resp
}
