package benefit

import (
	"context"
	"errors"
	"strings"
	"time"

	benefiterrors "go-hrms/internal/benefit/errors"
	"go-hrms/internal/domain"
	"go-hrms/internal/rbac"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=benefit_service.go -destination=mock/benefit_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]BenefitResponse, error)
	Create(ctx context.Context, req CreateBenefitRequest) (BenefitResponse, error)
	Update(ctx context.Context, id string, req UpdateBenefitRequest) (BenefitResponse, error)
	Delete(ctx context.Context, id string) error

	ListForEmployee(ctx context.Context, actor domain.Actor, employeeID string) ([]EmployeeBenefitResponse, error)
	Assign(ctx context.Context, employeeID string, req AssignBenefitRequest) (EmployeeBenefitResponse, error)
	UpdateAssignment(ctx context.Context, employeeID, assignmentID string, req UpdateAssignmentRequest) (EmployeeBenefitResponse, error)
	EndAssignment(ctx context.Context, employeeID, assignmentID string) error
}

type service struct {
	repo   Repository
	guard  rbac.Guard
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, guard rbac.Guard, logger ...*zap.Logger) Service {
	l := zap.L().Named("benefit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("benefit.service")
	}
	return &service{repo: repo, guard: guard, now: time.Now, logger: l}
}

func (s *service) List(ctx context.Context) ([]BenefitResponse, error) {
	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]BenefitResponse, len(rows))
	for i, b := range rows {
		resp[i] = mapBenefitResponse(b)
	}
	return resp, nil
}

func (s *service) Create(ctx context.Context, req CreateBenefitRequest) (BenefitResponse, error) {
	b := &Benefit{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Type:        req.Type,
		Amount:      req.Amount,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		s.logger.Error("create benefit failed", zap.Error(err))
		return BenefitResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("benefit created", zap.String("benefit_id", b.ID.String()), zap.String("name", b.Name))
	return mapBenefitResponse(*b), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateBenefitRequest) (BenefitResponse, error) {
	b, err := s.findBenefit(ctx, id)
	if err != nil {
		return BenefitResponse{}, err
	}

	if req.Name != nil {
		b.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if req.Type != nil {
		b.Type = *req.Type
	}
	if req.Amount != nil {
		b.Amount = *req.Amount
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, b); err != nil {
		s.logger.Error("update benefit failed", zap.String("benefit_id", id), zap.Error(err))
		return BenefitResponse{}, mapRepositoryError(err)
	}
	return mapBenefitResponse(*b), nil
}

// Delete retires a benefit. Existing assignments are left untouched.
func (s *service) Delete(ctx context.Context, id string) error {
	b, err := s.findBenefit(ctx, id)
	if err != nil {
		return err
	}
	b.IsActive = false
	if err := s.repo.Update(ctx, b); err != nil {
		return err
	}

	s.logger.Info("benefit deactivated", zap.String("benefit_id", id))
	return nil
}

func (s *service) ListForEmployee(ctx context.Context, actor domain.Actor, employeeID string) ([]EmployeeBenefitResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, benefiterrors.ErrInvalidEmployeeID
	}
	if err := s.guard.Authorize(ctx, actor, employeeID, rbac.TeamView); err != nil {
		return nil, err
	}

	rows, err := s.repo.FindAssignments(ctx, empID)
	if err != nil {
		return nil, err
	}
	resp := make([]EmployeeBenefitResponse, len(rows))
	for i, a := range rows {
		resp[i] = mapAssignmentResponse(a)
	}
	return resp, nil
}

func (s *service) Assign(ctx context.Context, employeeID string, req AssignBenefitRequest) (EmployeeBenefitResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return EmployeeBenefitResponse{}, benefiterrors.ErrInvalidEmployeeID
	}
	b, err := s.findBenefit(ctx, req.BenefitID)
	if err != nil {
		return EmployeeBenefitResponse{}, err
	}
	if !b.IsActive {
		return EmployeeBenefitResponse{}, benefiterrors.ErrBenefitInactive
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return EmployeeBenefitResponse{}, err
	}
	end, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return EmployeeBenefitResponse{}, err
	}
	if end != nil && end.Before(start) {
		return EmployeeBenefitResponse{}, benefiterrors.ErrInvalidDateRange
	}

	active, err := s.repo.HasActiveAssignment(ctx, empID, b.ID)
	if err != nil {
		return EmployeeBenefitResponse{}, err
	}
	if active {
		s.logger.Warn("benefit already assigned",
			zap.String("employee_id", employeeID),
			zap.String("benefit_id", b.ID.String()),
		)
		return EmployeeBenefitResponse{}, benefiterrors.ErrAlreadyAssigned
	}

	a := &EmployeeBenefit{
		ID:         uuid.New(),
		EmployeeID: empID,
		BenefitID:  b.ID,
		StartDate:  start,
		EndDate:    end,
		Status:     AssignmentActive,
	}
	if err := s.repo.CreateAssignment(ctx, a); err != nil {
		s.logger.Error("assign benefit failed", zap.Error(err))
		return EmployeeBenefitResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("benefit assigned",
		zap.String("employee_id", employeeID),
		zap.String("benefit_id", b.ID.String()),
	)
	a.Benefit = b
	return mapAssignmentResponse(*a), nil
}

func (s *service) UpdateAssignment(ctx context.Context, employeeID, assignmentID string, req UpdateAssignmentRequest) (EmployeeBenefitResponse, error) {
	a, err := s.findAssignment(ctx, employeeID, assignmentID)
	if err != nil {
		return EmployeeBenefitResponse{}, err
	}

	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			return EmployeeBenefitResponse{}, err
		}
		a.StartDate = start
	}
	if req.EndDate != nil {
		end, err := parseOptionalDate(req.EndDate)
		if err != nil {
			return EmployeeBenefitResponse{}, err
		}
		a.EndDate = end
	}
	if a.EndDate != nil && a.EndDate.Before(a.StartDate) {
		return EmployeeBenefitResponse{}, benefiterrors.ErrInvalidDateRange
	}
	if req.Status != nil {
		a.Status = *req.Status
	}

	if err := s.repo.UpdateAssignment(ctx, a); err != nil {
		return EmployeeBenefitResponse{}, mapRepositoryError(err)
	}
	return mapAssignmentResponse(*a), nil
}

// EndAssignment closes the assignment as of today.
func (s *service) EndAssignment(ctx context.Context, employeeID, assignmentID string) error {
	a, err := s.findAssignment(ctx, employeeID, assignmentID)
	if err != nil {
		return err
	}

	today := s.now().UTC().Truncate(24 * time.Hour)
	a.Status = AssignmentInactive
	a.EndDate = &today

	if err := s.repo.UpdateAssignment(ctx, a); err != nil {
		return err
	}

	s.logger.Info("benefit assignment ended",
		zap.String("employee_id", employeeID),
		zap.String("assignment_id", assignmentID),
	)
	return nil
}

func (s *service) findBenefit(ctx context.Context, id string) (*Benefit, error) {
	benefitID, err := uuid.Parse(id)
	if err != nil {
		return nil, benefiterrors.ErrInvalidBenefitID
	}
	b, err := s.repo.FindByID(ctx, benefitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, benefiterrors.ErrBenefitNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *service) findAssignment(ctx context.Context, employeeID, assignmentID string) (*EmployeeBenefit, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, benefiterrors.ErrInvalidEmployeeID
	}
	id, err := uuid.Parse(assignmentID)
	if err != nil {
		return nil, benefiterrors.ErrInvalidAssignmentID
	}
	a, err := s.repo.FindAssignment(ctx, empID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, benefiterrors.ErrAssignmentNotFound
		}
		return nil, err
	}
	return a, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, benefiterrors.ErrInvalidDate
	}
	return t, nil
}

func parseOptionalDate(v *string) (*time.Time, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	t, err := parseDate(*v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func mapBenefitResponse(b Benefit) BenefitResponse {
	return BenefitResponse{
		ID:          b.ID.String(),
		Name:        b.Name,
		Description: b.Description,
		Type:        b.Type,
		Amount:      b.Amount,
		IsActive:    b.IsActive,
	}
}

func mapAssignmentResponse(a EmployeeBenefit) EmployeeBenefitResponse {
	resp := EmployeeBenefitResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		BenefitID:  a.BenefitID.String(),
		StartDate:  a.StartDate.Format(dateLayout),
		Status:     a.Status,
	}
	if a.EndDate != nil {
		v := a.EndDate.Format(dateLayout)
		resp.EndDate = &v
	}
	if a.Benefit != nil {
		resp.BenefitName = a.Benefit.Name
		resp.Amount = a.Benefit.Amount
	}
	return resp
}
