package policy

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-hrms/internal/domain"
	policyerrors "go-hrms/internal/policy/errors"
	"go-hrms/internal/rbac"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=policy_service.go -destination=mock/policy_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]PolicyResponse, error)
	Create(ctx context.Context, req CreatePolicyRequest) (PolicyResponse, error)
	Update(ctx context.Context, id string, req UpdatePolicyRequest) (PolicyResponse, error)
	Archive(ctx context.Context, id string) error

	Acknowledge(ctx context.Context, actor domain.Actor, policyID string) (AcknowledgmentResponse, error)
	EmployeeCompliance(ctx context.Context, actor domain.Actor, employeeID string) (ComplianceStatus, error)
	ComplianceReport(ctx context.Context, actor domain.Actor) ([]ComplianceStatus, error)
}

type service struct {
	repo   Repository
	guard  rbac.Guard
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, guard rbac.Guard, logger ...*zap.Logger) Service {
	l := zap.L().Named("policy.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("policy.service")
	}
	return &service{repo: repo, guard: guard, now: time.Now, logger: l}
}

func (s *service) List(ctx context.Context) ([]PolicyResponse, error) {
	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]PolicyResponse, len(rows))
	for i, p := range rows {
		resp[i] = mapPolicyResponse(p)
	}
	return resp, nil
}

func (s *service) Create(ctx context.Context, req CreatePolicyRequest) (PolicyResponse, error) {
	effective := s.now().UTC().Truncate(24 * time.Hour)
	if req.EffectiveDate != nil && *req.EffectiveDate != "" {
		t, err := time.Parse(dateLayout, *req.EffectiveDate)
		if err != nil {
			return PolicyResponse{}, policyerrors.ErrInvalidDate
		}
		effective = t
	}

	p := &Policy{
		ID:            uuid.New(),
		Title:         strings.TrimSpace(req.Title),
		Description:   req.Description,
		Category:      strings.TrimSpace(req.Category),
		Version:       strings.TrimSpace(req.Version),
		EffectiveDate: effective,
		IsMandatory:   true,
		Status:        req.Status,
	}
	if p.Version == "" {
		p.Version = DefaultVersion
	}
	if p.Status == "" {
		p.Status = StatusDraft
	}
	if req.IsMandatory != nil {
		p.IsMandatory = *req.IsMandatory
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("create policy failed", zap.String("title", p.Title), zap.Error(err))
		return PolicyResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("policy created",
		zap.String("policy_id", p.ID.String()),
		zap.String("version", p.Version),
		zap.String("status", p.Status),
	)
	return mapPolicyResponse(*p), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePolicyRequest) (PolicyResponse, error) {
	p, err := s.findPolicy(ctx, id)
	if err != nil {
		return PolicyResponse{}, err
	}

	if req.Title != nil {
		p.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Category != nil {
		p.Category = strings.TrimSpace(*req.Category)
	}
	if req.Version != nil && strings.TrimSpace(*req.Version) != "" {
		p.Version = strings.TrimSpace(*req.Version)
	}
	if req.EffectiveDate != nil {
		t, err := time.Parse(dateLayout, *req.EffectiveDate)
		if err != nil {
			return PolicyResponse{}, policyerrors.ErrInvalidDate
		}
		p.EffectiveDate = t
	}
	if req.IsMandatory != nil {
		p.IsMandatory = *req.IsMandatory
	}
	if req.Status != nil {
		p.Status = *req.Status
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return PolicyResponse{}, mapRepositoryError(err)
	}
	return mapPolicyResponse(*p), nil
}

func (s *service) Archive(ctx context.Context, id string) error {
	p, err := s.findPolicy(ctx, id)
	if err != nil {
		return err
	}
	p.Status = StatusArchived
	if err := s.repo.Update(ctx, p); err != nil {
		return err
	}

	s.logger.Info("policy archived", zap.String("policy_id", id))
	return nil
}

func (s *service) Acknowledge(ctx context.Context, actor domain.Actor, policyID string) (AcknowledgmentResponse, error) {
	empID, err := uuid.Parse(actor.ID)
	if err != nil {
		return AcknowledgmentResponse{}, policyerrors.ErrInvalidEmployeeID
	}
	p, err := s.findPolicy(ctx, policyID)
	if err != nil {
		return AcknowledgmentResponse{}, err
	}
	if p.Status != StatusActive {
		return AcknowledgmentResponse{}, policyerrors.ErrPolicyNotActive
	}

	done, err := s.repo.HasAcknowledged(ctx, empID, p.ID, p.Version)
	if err != nil {
		return AcknowledgmentResponse{}, err
	}
	if done {
		return AcknowledgmentResponse{}, policyerrors.ErrAlreadyAcknowledged
	}

	a := &Acknowledgment{
		ID:                  uuid.New(),
		EmployeeID:          empID,
		PolicyID:            p.ID,
		AcknowledgedAt:      s.now().UTC(),
		VersionAcknowledged: p.Version,
	}
	if err := s.repo.CreateAcknowledgment(ctx, a); err != nil {
		return AcknowledgmentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("policy acknowledged",
		zap.String("employee_id", actor.ID),
		zap.String("policy_id", policyID),
		zap.String("version", p.Version),
	)
	return AcknowledgmentResponse{
		ID:                  a.ID.String(),
		EmployeeID:          a.EmployeeID.String(),
		PolicyID:            a.PolicyID.String(),
		VersionAcknowledged: a.VersionAcknowledged,
		AcknowledgedAt:      a.AcknowledgedAt.Format(time.RFC3339),
	}, nil
}

func (s *service) EmployeeCompliance(ctx context.Context, actor domain.Actor, employeeID string) (ComplianceStatus, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return ComplianceStatus{}, policyerrors.ErrInvalidEmployeeID
	}
	if err := s.guard.Authorize(ctx, actor, employeeID, rbac.TeamView); err != nil {
		return ComplianceStatus{}, err
	}

	emp, err := s.repo.FindEmployee(ctx, empID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ComplianceStatus{}, policyerrors.ErrEmployeeNotFound
		}
		return ComplianceStatus{}, err
	}

	policies, err := s.repo.ListMandatory(ctx)
	if err != nil {
		return ComplianceStatus{}, err
	}
	acks, err := s.repo.CurrentAcknowledgments(ctx, []uuid.UUID{empID})
	if err != nil {
		return ComplianceStatus{}, err
	}

	return computeStatus(*emp, policies, groupAcks(acks)[empID]), nil
}

// ComplianceReport returns one status per active employee. Managers only see their reports.
func (s *service) ComplianceReport(ctx context.Context, actor domain.Actor) ([]ComplianceStatus, error) {
	employees, err := s.repo.ListActiveEmployees(ctx, actor.TeamScope())
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return []ComplianceStatus{}, nil
	}

	policies, err := s.repo.ListMandatory(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(employees))
	for i, e := range employees {
		ids[i] = e.ID
	}
	acks, err := s.repo.CurrentAcknowledgments(ctx, ids)
	if err != nil {
		return nil, err
	}
	byEmployee := groupAcks(acks)

	report := make([]ComplianceStatus, len(employees))
	for i, e := range employees {
		report[i] = computeStatus(e, policies, byEmployee[e.ID])
	}
	return report, nil
}

func (s *service) findPolicy(ctx context.Context, id string) (*Policy, error) {
	policyID, err := uuid.Parse(id)
	if err != nil {
		return nil, policyerrors.ErrInvalidPolicyID
	}
	p, err := s.repo.FindByID(ctx, policyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, policyerrors.ErrPolicyNotFound
		}
		return nil, err
	}
	return p, nil
}

func groupAcks(rows []AckRow) map[uuid.UUID]map[uuid.UUID]bool {
	out := make(map[uuid.UUID]map[uuid.UUID]bool)
	for _, r := range rows {
		if out[r.EmployeeID] == nil {
			out[r.EmployeeID] = make(map[uuid.UUID]bool)
		}
		out[r.EmployeeID][r.PolicyID] = true
	}
	return out
}

// computeStatus scores an employee against the mandatory policies.
// With no mandatory policies the employee is fully compliant.
func computeStatus(emp EmployeeRef, policies []Policy, acked map[uuid.UUID]bool) ComplianceStatus {
	status := ComplianceStatus{
		EmployeeID:             emp.ID.String(),
		EmployeeName:           strings.TrimSpace(emp.FullName()),
		TotalPolicies:          len(policies),
		PendingAcknowledgments: []PendingPolicy{},
	}
	for _, p := range policies {
		if acked[p.ID] {
			status.AcknowledgedPolicies++
			continue
		}
		status.PendingAcknowledgments = append(status.PendingAcknowledgments, PendingPolicy{
			ID:      p.ID.String(),
			Title:   p.Title,
			Version: p.Version,
		})
	}
	status.PendingPolicies = status.TotalPolicies - status.AcknowledgedPolicies

	status.ComplianceRate = 1.0
	if status.TotalPolicies > 0 {
		status.ComplianceRate = float64(status.AcknowledgedPolicies) / float64(status.TotalPolicies)
	}
	return status
}

func mapPolicyResponse(p Policy) PolicyResponse {
	return PolicyResponse{
		ID:            p.ID.String(),
		Title:         p.Title,
		Description:   p.Description,
		Category:      p.Category,
		Version:       p.Version,
		EffectiveDate: p.EffectiveDate.Format(dateLayout),
		IsMandatory:   p.IsMandatory,
		Status:        p.Status,
	}
}
