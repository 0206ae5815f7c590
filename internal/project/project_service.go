package project

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-hrms/internal/domain"
	projecterrors "go-hrms/internal/project/errors"
	"go-hrms/internal/rbac"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=project_service.go -destination=mock/project_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, status string) ([]ProjectResponse, error)
	GetByID(ctx context.Context, id string) (ProjectResponse, error)
	Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	Update(ctx context.Context, id string, req UpdateProjectRequest) (ProjectResponse, error)

	ListAssignments(ctx context.Context, actor domain.Actor, employeeID string) ([]AssignmentResponse, error)
	Assign(ctx context.Context, actor domain.Actor, employeeID string, req AssignProjectRequest) (AssignmentResponse, error)
	UpdateAssignment(ctx context.Context, employeeID, projectID string, req UpdateAssignmentRequest) (AssignmentResponse, error)
	RemoveAssignment(ctx context.Context, employeeID, projectID string) error
	CloseAllForEmployee(ctx context.Context, employeeID string) (int, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	guard  rbac.Guard
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, guard rbac.Guard, logger ...*zap.Logger) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{db: db, repo: repo, guard: guard, now: time.Now, logger: l}
}

func (s *service) List(ctx context.Context, status string) ([]ProjectResponse, error) {
	rows, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	resp := make([]ProjectResponse, len(rows))
	for i, p := range rows {
		resp[i] = mapProjectResponse(p)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ProjectResponse, error) {
	p, err := s.findProject(ctx, s.repo, id)
	if err != nil {
		return ProjectResponse{}, err
	}
	return mapProjectResponse(*p), nil
}

func (s *service) Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return ProjectResponse{}, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return ProjectResponse{}, err
	}

	now := s.now().UTC()
	p := &Project{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		ClientName:  req.ClientName,
		StartDate:   start,
		EndDate:     end,
		Status:      req.Status,
		Priority:    req.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.Status == "" {
		p.Status = StatusActive
	}
	if p.Priority == "" {
		p.Priority = "medium"
	}
	if req.Budget != nil {
		p.Budget = *req.Budget
	}
	if err := validateProject(p); err != nil {
		return ProjectResponse{}, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("create project failed", zap.String("name", p.Name), zap.Error(err))
		return ProjectResponse{}, mapRepositoryError(err)
	}
	s.logger.Info("project created", zap.String("project_id", p.ID.String()))
	return mapProjectResponse(*p), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateProjectRequest) (ProjectResponse, error) {
	p, err := s.findProject(ctx, s.repo, id)
	if err != nil {
		return ProjectResponse{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.ClientName != nil {
		p.ClientName = *req.ClientName
	}
	if req.StartDate != nil {
		if p.StartDate, err = parseDate(req.StartDate); err != nil {
			return ProjectResponse{}, err
		}
	}
	if req.EndDate != nil {
		if p.EndDate, err = parseDate(req.EndDate); err != nil {
			return ProjectResponse{}, err
		}
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.Priority != nil {
		p.Priority = *req.Priority
	}
	if req.Budget != nil {
		p.Budget = *req.Budget
	}
	if err := validateProject(p); err != nil {
		return ProjectResponse{}, err
	}

	p.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, p); err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}
	return mapProjectResponse(*p), nil
}

func (s *service) ListAssignments(ctx context.Context, actor domain.Actor, employeeID string) ([]AssignmentResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, projecterrors.ErrInvalidEmployeeID
	}
	if err := s.guard.Authorize(ctx, actor, employeeID, rbac.TeamView); err != nil {
		return nil, err
	}

	rows, err := s.repo.FindActiveAssignments(ctx, empID)
	if err != nil {
		return nil, err
	}
	resp := make([]AssignmentResponse, len(rows))
	for i, a := range rows {
		resp[i] = mapAssignmentResponse(a)
	}
	return resp, nil
}

// Assign puts the employee on a project. The employee row is locked for the
// duration so concurrent assignments cannot push the allocation over 100%.
func (s *service) Assign(ctx context.Context, actor domain.Actor, employeeID string, req AssignProjectRequest) (AssignmentResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return AssignmentResponse{}, projecterrors.ErrInvalidEmployeeID
	}

	allocation := FullAllocation
	if req.AllocationPercentage != nil {
		allocation = *req.AllocationPercentage
	}
	if allocation < 1 || allocation > FullAllocation {
		return AssignmentResponse{}, projecterrors.ErrInvalidAllocation
	}

	start := truncateDay(s.now())
	if req.StartDate != nil && *req.StartDate != "" {
		parsed, err := parseDate(req.StartDate)
		if err != nil {
			return AssignmentResponse{}, err
		}
		start = *parsed
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return AssignmentResponse{}, err
	}
	if end != nil && start.After(*end) {
		return AssignmentResponse{}, projecterrors.ErrInvalidDateRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("assign project begin tx failed", zap.Error(err))
		return AssignmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := s.findProject(ctx, qtx, req.ProjectID)
	if err != nil {
		return AssignmentResponse{}, err
	}
	if p.Status != StatusActive {
		return AssignmentResponse{}, projecterrors.ErrProjectNotActive
	}

	if err := s.lockEmployee(ctx, qtx, empID); err != nil {
		return AssignmentResponse{}, err
	}

	_, err = qtx.FindActiveAssignment(ctx, empID, p.ID)
	switch {
	case err == nil:
		return AssignmentResponse{}, projecterrors.ErrAlreadyAssigned
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return AssignmentResponse{}, err
	}

	if err := checkAllocation(ctx, qtx, empID, nil, allocation); err != nil {
		return AssignmentResponse{}, err
	}

	now := s.now().UTC()
	a := &Assignment{
		ID:                   uuid.New(),
		EmployeeID:           empID,
		ProjectID:            p.ID,
		Role:                 req.Role,
		StartDate:            start,
		EndDate:              end,
		AllocationPercentage: allocation,
		Status:               AssignmentActive,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if assigner, err := uuid.Parse(actor.ID); err == nil {
		a.AssignedBy = &assigner
	}

	if err := qtx.CreateAssignment(ctx, a); err != nil {
		s.logger.Error("assign project persist failed",
			zap.String("employee_id", employeeID),
			zap.String("project_id", p.ID.String()),
			zap.Error(err),
		)
		return AssignmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("assign project commit failed", zap.Error(err))
		return AssignmentResponse{}, err
	}

	s.logger.Info("employee assigned to project",
		zap.String("employee_id", employeeID),
		zap.String("project_id", p.ID.String()),
		zap.Int("allocation", allocation),
	)
	a.Project = p
	return mapAssignmentResponse(*a), nil
}

func (s *service) UpdateAssignment(ctx context.Context, employeeID, projectID string, req UpdateAssignmentRequest) (AssignmentResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return AssignmentResponse{}, projecterrors.ErrInvalidEmployeeID
	}
	projID, err := uuid.Parse(projectID)
	if err != nil {
		return AssignmentResponse{}, projecterrors.ErrInvalidProjectID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update assignment begin tx failed", zap.Error(err))
		return AssignmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := s.lockEmployee(ctx, qtx, empID); err != nil {
		return AssignmentResponse{}, err
	}
	a, err := findAssignment(ctx, qtx, empID, projID)
	if err != nil {
		return AssignmentResponse{}, err
	}

	if req.Role != nil {
		a.Role = *req.Role
	}
	if req.StartDate != nil {
		start, err := parseDate(req.StartDate)
		if err != nil {
			return AssignmentResponse{}, err
		}
		if start != nil {
			a.StartDate = *start
		}
	}
	if req.EndDate != nil {
		if a.EndDate, err = parseDate(req.EndDate); err != nil {
			return AssignmentResponse{}, err
		}
	}
	if a.EndDate != nil && a.StartDate.After(*a.EndDate) {
		return AssignmentResponse{}, projecterrors.ErrInvalidDateRange
	}
	if req.AllocationPercentage != nil {
		allocation := *req.AllocationPercentage
		if allocation < 1 || allocation > FullAllocation {
			return AssignmentResponse{}, projecterrors.ErrInvalidAllocation
		}
		if err := checkAllocation(ctx, qtx, empID, &a.ID, allocation); err != nil {
			return AssignmentResponse{}, err
		}
		a.AllocationPercentage = allocation
	}

	a.UpdatedAt = s.now().UTC()
	if err := qtx.UpdateAssignment(ctx, a); err != nil {
		return AssignmentResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update assignment commit failed", zap.Error(err))
		return AssignmentResponse{}, err
	}
	return mapAssignmentResponse(*a), nil
}

func (s *service) RemoveAssignment(ctx context.Context, employeeID, projectID string) error {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return projecterrors.ErrInvalidEmployeeID
	}
	projID, err := uuid.Parse(projectID)
	if err != nil {
		return projecterrors.ErrInvalidProjectID
	}

	a, err := findAssignment(ctx, s.repo, empID, projID)
	if err != nil {
		return err
	}

	today := truncateDay(s.now())
	a.Status = AssignmentRemoved
	a.EndDate = &today
	a.UpdatedAt = s.now().UTC()
	if err := s.repo.UpdateAssignment(ctx, a); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("project assignment removed",
		zap.String("employee_id", employeeID),
		zap.String("project_id", projectID),
	)
	return nil
}

// CloseAllForEmployee ends every active assignment, used when an employee is deactivated.
func (s *service) CloseAllForEmployee(ctx context.Context, employeeID string) (int, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return 0, projecterrors.ErrInvalidEmployeeID
	}
	n, err := s.repo.CloseAssignments(ctx, empID, truncateDay(s.now()))
	if err != nil {
		s.logger.Error("close assignments failed", zap.String("employee_id", employeeID), zap.Error(err))
		return 0, err
	}
	if n > 0 {
		s.logger.Info("project assignments closed",
			zap.String("employee_id", employeeID),
			zap.Int64("count", n),
		)
	}
	return int(n), nil
}

func (s *service) findProject(ctx context.Context, repo Repository, id string) (*Project, error) {
	projID, err := uuid.Parse(id)
	if err != nil {
		return nil, projecterrors.ErrInvalidProjectID
	}
	p, err := repo.FindByID(ctx, projID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, projecterrors.ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *service) lockEmployee(ctx context.Context, repo Repository, empID uuid.UUID) error {
	if err := repo.LockEmployee(ctx, empID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return projecterrors.ErrEmployeeNotFound
		}
		return err
	}
	return nil
}

func findAssignment(ctx context.Context, repo Repository, empID, projID uuid.UUID) (*Assignment, error) {
	a, err := repo.FindActiveAssignment(ctx, empID, projID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, projecterrors.ErrAssignmentNotFound
		}
		return nil, err
	}
	return a, nil
}

func checkAllocation(ctx context.Context, repo Repository, empID uuid.UUID, excludeID *uuid.UUID, allocation int) error {
	used, err := repo.ActiveAllocation(ctx, empID, excludeID)
	if err != nil {
		return err
	}
	if used+allocation > FullAllocation {
		return projecterrors.ErrOverAllocated
	}
	return nil
}

func validateProject(p *Project) error {
	if p.Budget < 0 {
		return projecterrors.ErrNegativeBudget
	}
	if p.StartDate != nil && p.EndDate != nil && p.StartDate.After(*p.EndDate) {
		return projecterrors.ErrInvalidDateRange
	}
	return nil
}

func parseDate(v *string) (*time.Time, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *v)
	if err != nil {
		return nil, projecterrors.ErrInvalidDate
	}
	return &t, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(dateLayout)
	return &v
}

func mapProjectResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		ClientName:  p.ClientName,
		StartDate:   formatDate(p.StartDate),
		EndDate:     formatDate(p.EndDate),
		Status:      p.Status,
		Priority:    p.Priority,
		Budget:      p.Budget,
	}
}

func mapAssignmentResponse(a Assignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:                   a.ID.String(),
		EmployeeID:           a.EmployeeID.String(),
		ProjectID:            a.ProjectID.String(),
		Role:                 a.Role,
		StartDate:            a.StartDate.Format(dateLayout),
		EndDate:              formatDate(a.EndDate),
		AllocationPercentage: a.AllocationPercentage,
		Status:               a.Status,
	}
	if a.AssignedBy != nil {
		v := a.AssignedBy.String()
		resp.AssignedBy = &v
	}
	if a.Project != nil {
		p := mapProjectResponse(*a.Project)
		resp.Project = &p
	}
	return resp
}
