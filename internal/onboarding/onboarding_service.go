package onboarding

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-hrms/internal/domain"
	onboardingerrors "go-hrms/internal/onboarding/errors"
	"go-hrms/internal/rbac"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=onboarding_service.go -destination=mock/onboarding_service_mock.go -package=mock
type Service interface {
	ListTemplates(ctx context.Context, kind string) ([]TaskResponse, error)
	CreateTemplate(ctx context.Context, kind string, req CreateTaskRequest) (TaskResponse, error)
	UpdateTemplate(ctx context.Context, kind, id string, req UpdateTaskRequest) (TaskResponse, error)

	ListEmployeeTasks(ctx context.Context, actor domain.Actor, kind, employeeID string) ([]EmployeeTaskResponse, error)
	UpdateEmployeeTask(ctx context.Context, kind, employeeID, taskID string, req UpdateEmployeeTaskRequest) (EmployeeTaskResponse, error)
	// AssignTemplates gives the employee every matching active template of the
	// given kind. Already assigned tasks are skipped.
	AssignTemplates(ctx context.Context, employeeID, kind string) (int, error)
}

type service struct {
	repo   Repository
	guard  rbac.Guard
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, guard rbac.Guard, logger ...*zap.Logger) Service {
	l := zap.L().Named("onboarding.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("onboarding.service")
	}
	return &service{repo: repo, guard: guard, now: time.Now, logger: l}
}

func (s *service) ListTemplates(ctx context.Context, kind string) ([]TaskResponse, error) {
	if !ValidKind(kind) {
		return nil, onboardingerrors.ErrInvalidKind
	}
	rows, err := s.repo.ListTemplates(ctx, kind)
	if err != nil {
		return nil, err
	}
	resp := make([]TaskResponse, len(rows))
	for i, t := range rows {
		resp[i] = mapTaskResponse(t)
	}
	return resp, nil
}

func (s *service) CreateTemplate(ctx context.Context, kind string, req CreateTaskRequest) (TaskResponse, error) {
	if !ValidKind(kind) {
		return TaskResponse{}, onboardingerrors.ErrInvalidKind
	}
	if req.RoleID != nil && kind != KindOnboarding {
		return TaskResponse{}, onboardingerrors.ErrRoleNotAllowed
	}

	deptID, err := parseOptionalID(req.DepartmentID, onboardingerrors.ErrInvalidDepartmentID)
	if err != nil {
		return TaskResponse{}, err
	}
	roleID, err := parseOptionalID(req.RoleID, onboardingerrors.ErrInvalidRoleID)
	if err != nil {
		return TaskResponse{}, err
	}

	priority := req.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	t := &Task{
		ID:           uuid.New(),
		Kind:         kind,
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		DepartmentID: deptID,
		RoleID:       roleID,
		Priority:     priority,
		IsActive:     true,
	}
	if err := s.repo.CreateTemplate(ctx, t); err != nil {
		s.logger.Error("create task template failed", zap.String("kind", kind), zap.Error(err))
		return TaskResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("task template created",
		zap.String("kind", kind),
		zap.String("task_id", t.ID.String()),
		zap.String("title", t.Title),
	)
	return mapTaskResponse(*t), nil
}

func (s *service) UpdateTemplate(ctx context.Context, kind, id string, req UpdateTaskRequest) (TaskResponse, error) {
	if !ValidKind(kind) {
		return TaskResponse{}, onboardingerrors.ErrInvalidKind
	}
	if req.RoleID != nil && kind != KindOnboarding {
		return TaskResponse{}, onboardingerrors.ErrRoleNotAllowed
	}
	t, err := s.findTemplate(ctx, kind, id)
	if err != nil {
		return TaskResponse{}, err
	}

	if req.Title != nil {
		t.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.DepartmentID != nil {
		if t.DepartmentID, err = parseOptionalID(req.DepartmentID, onboardingerrors.ErrInvalidDepartmentID); err != nil {
			return TaskResponse{}, err
		}
	}
	if req.RoleID != nil {
		if t.RoleID, err = parseOptionalID(req.RoleID, onboardingerrors.ErrInvalidRoleID); err != nil {
			return TaskResponse{}, err
		}
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateTemplate(ctx, t); err != nil {
		return TaskResponse{}, mapRepositoryError(err)
	}
	return mapTaskResponse(*t), nil
}

func (s *service) ListEmployeeTasks(ctx context.Context, actor domain.Actor, kind, employeeID string) ([]EmployeeTaskResponse, error) {
	if !ValidKind(kind) {
		return nil, onboardingerrors.ErrInvalidKind
	}
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, onboardingerrors.ErrInvalidEmployeeID
	}
	if err := s.guard.Authorize(ctx, actor, employeeID, rbac.TeamView); err != nil {
		return nil, err
	}

	rows, err := s.repo.FindEmployeeTasks(ctx, empID, kind)
	if err != nil {
		return nil, err
	}
	resp := make([]EmployeeTaskResponse, len(rows))
	for i, t := range rows {
		resp[i] = mapEmployeeTaskResponse(t)
	}
	return resp, nil
}

func (s *service) UpdateEmployeeTask(ctx context.Context, kind, employeeID, taskID string, req UpdateEmployeeTaskRequest) (EmployeeTaskResponse, error) {
	if !ValidKind(kind) {
		return EmployeeTaskResponse{}, onboardingerrors.ErrInvalidKind
	}
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return EmployeeTaskResponse{}, onboardingerrors.ErrInvalidEmployeeID
	}
	template, err := s.findTemplate(ctx, kind, taskID)
	if err != nil {
		return EmployeeTaskResponse{}, err
	}

	et, err := s.repo.FindEmployeeTask(ctx, empID, template.ID)
	created := false
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		et = &EmployeeTask{
			ID:         uuid.New(),
			EmployeeID: empID,
			TaskID:     template.ID,
			Status:     StatusPending,
		}
		created = true
	case err != nil:
		return EmployeeTaskResponse{}, err
	}

	et.Status = req.Status
	if req.Notes != nil {
		et.Notes = *req.Notes
	}
	if req.Status == StatusCompleted {
		now := s.now().UTC()
		et.CompletedAt = &now
	} else {
		et.CompletedAt = nil
	}

	if created {
		err = s.repo.CreateEmployeeTask(ctx, et)
	} else {
		err = s.repo.UpdateEmployeeTask(ctx, et)
	}
	if err != nil {
		s.logger.Error("update employee task failed",
			zap.String("employee_id", employeeID),
			zap.String("task_id", taskID),
			zap.Error(err),
		)
		return EmployeeTaskResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("employee task updated",
		zap.String("kind", kind),
		zap.String("employee_id", employeeID),
		zap.String("task_id", taskID),
		zap.String("status", et.Status),
	)
	et.Task = template
	return mapEmployeeTaskResponse(*et), nil
}

func (s *service) AssignTemplates(ctx context.Context, employeeID, kind string) (int, error) {
	if !ValidKind(kind) {
		return 0, onboardingerrors.ErrInvalidKind
	}
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return 0, onboardingerrors.ErrInvalidEmployeeID
	}

	profile, err := s.repo.FindProfile(ctx, empID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, onboardingerrors.ErrEmployeeNotFound
		}
		return 0, err
	}

	templates, err := s.repo.MatchTemplates(ctx, kind, *profile)
	if err != nil {
		return 0, err
	}

	rows := make([]EmployeeTask, len(templates))
	for i, t := range templates {
		rows[i] = EmployeeTask{
			ID:         uuid.New(),
			EmployeeID: empID,
			TaskID:     t.ID,
			Status:     StatusPending,
		}
	}

	assigned, err := s.repo.AssignTasks(ctx, rows)
	if err != nil {
		s.logger.Error("assign task templates failed",
			zap.String("kind", kind),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return 0, mapRepositoryError(err)
	}

	s.logger.Info("task templates assigned",
		zap.String("kind", kind),
		zap.String("employee_id", employeeID),
		zap.Int("matched", len(templates)),
		zap.Int64("assigned", assigned),
	)
	return int(assigned), nil
}

func (s *service) findTemplate(ctx context.Context, kind, id string) (*Task, error) {
	taskID, err := uuid.Parse(id)
	if err != nil {
		return nil, onboardingerrors.ErrInvalidTaskID
	}
	t, err := s.repo.FindTemplate(ctx, kind, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, onboardingerrors.ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

// parseOptionalID treats an empty string as "clear the reference".
func parseOptionalID(v *string, invalid error) (*uuid.UUID, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		return nil, invalid
	}
	return &id, nil
}

func mapTaskResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID.String(),
		Kind:        t.Kind,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		IsActive:    t.IsActive,
	}
	if t.DepartmentID != nil {
		v := t.DepartmentID.String()
		resp.DepartmentID = &v
	}
	if t.RoleID != nil {
		v := t.RoleID.String()
		resp.RoleID = &v
	}
	return resp
}

func mapEmployeeTaskResponse(et EmployeeTask) EmployeeTaskResponse {
	resp := EmployeeTaskResponse{
		ID:         et.ID.String(),
		EmployeeID: et.EmployeeID.String(),
		Status:     et.Status,
		Notes:      et.Notes,
	}
	if et.CompletedAt != nil {
		v := et.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &v
	}
	if et.Task != nil {
		resp.Task = mapTaskResponse(*et.Task)
	} else {
		resp.Task = TaskResponse{ID: et.TaskID.String()}
	}
	return resp
}
