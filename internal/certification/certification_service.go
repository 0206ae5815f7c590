package certification

import (
	"context"
	"errors"
	"strings"
	"time"

	certificationerrors "go-hrms/internal/certification/errors"
	"go-hrms/internal/domain"
	"go-hrms/internal/rbac"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=certification_service.go -destination=mock/certification_service_mock.go -package=mock
type Service interface {
	ListTypes(ctx context.Context) ([]TypeResponse, error)
	CreateType(ctx context.Context, req CreateTypeRequest) (TypeResponse, error)
	UpdateType(ctx context.Context, id string, req UpdateTypeRequest) (TypeResponse, error)
	DeleteType(ctx context.Context, id string) error

	ListForEmployee(ctx context.Context, actor domain.Actor, employeeID string) ([]CertificationResponse, error)
	Create(ctx context.Context, actor domain.Actor, employeeID string, req CreateCertificationRequest) (CertificationResponse, error)
	Update(ctx context.Context, actor domain.Actor, employeeID, certID string, req UpdateCertificationRequest) (CertificationResponse, error)
	Delete(ctx context.Context, actor domain.Actor, employeeID, certID string) error
}

type service struct {
	repo   Repository
	guard  rbac.Guard
	logger *zap.Logger
}

func NewService(repo Repository, guard rbac.Guard, logger ...*zap.Logger) Service {
	l := zap.L().Named("certification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("certification.service")
	}
	return &service{repo: repo, guard: guard, logger: l}
}

func (s *service) ListTypes(ctx context.Context) ([]TypeResponse, error) {
	rows, err := s.repo.ListTypes(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]TypeResponse, len(rows))
	for i, t := range rows {
		resp[i] = mapTypeResponse(t)
	}
	return resp, nil
}

func (s *service) CreateType(ctx context.Context, req CreateTypeRequest) (TypeResponse, error) {
	t := &CertificationType{
		ID:                  uuid.New(),
		Name:                strings.TrimSpace(req.Name),
		Description:         req.Description,
		IssuingOrganization: strings.TrimSpace(req.IssuingOrganization),
		ValidityPeriod:      req.ValidityPeriod,
	}
	if err := s.repo.CreateType(ctx, t); err != nil {
		s.logger.Error("create certification type failed", zap.String("name", t.Name), zap.Error(err))
		return TypeResponse{}, mapRepositoryError(err, certificationerrors.ErrTypeNotFound)
	}

	s.logger.Info("certification type created", zap.String("type_id", t.ID.String()), zap.String("name", t.Name))
	return mapTypeResponse(*t), nil
}

func (s *service) UpdateType(ctx context.Context, id string, req UpdateTypeRequest) (TypeResponse, error) {
	t, err := s.findType(ctx, id)
	if err != nil {
		return TypeResponse{}, err
	}

	if req.Name != nil {
		t.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.IssuingOrganization != nil {
		t.IssuingOrganization = strings.TrimSpace(*req.IssuingOrganization)
	}
	if req.ValidityPeriod != nil {
		t.ValidityPeriod = *req.ValidityPeriod
	}

	if err := s.repo.UpdateType(ctx, t); err != nil {
		return TypeResponse{}, mapRepositoryError(err, certificationerrors.ErrTypeNotFound)
	}
	return mapTypeResponse(*t), nil
}

func (s *service) DeleteType(ctx context.Context, id string) error {
	typeID, err := uuid.Parse(id)
	if err != nil {
		return certificationerrors.ErrInvalidTypeID
	}

	count, err := s.repo.CountByType(ctx, typeID)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Warn("certification type still referenced",
			zap.String("type_id", id),
			zap.Int64("certifications", count),
		)
		return certificationerrors.ErrTypeInUse
	}

	if err := s.repo.DeleteType(ctx, typeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return certificationerrors.ErrTypeNotFound
		}
		return mapRepositoryError(err, certificationerrors.ErrTypeInUse)
	}

	s.logger.Info("certification type deleted", zap.String("type_id", id))
	return nil
}

func (s *service) ListForEmployee(ctx context.Context, actor domain.Actor, employeeID string) ([]CertificationResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, certificationerrors.ErrInvalidEmployeeID
	}
	if err := s.guard.Authorize(ctx, actor, employeeID, rbac.SelfHROrManagerOf); err != nil {
		return nil, err
	}

	rows, err := s.repo.FindByEmployee(ctx, empID)
	if err != nil {
		return nil, err
	}
	resp := make([]CertificationResponse, len(rows))
	for i, c := range rows {
		resp[i] = mapCertificationResponse(c)
	}
	return resp, nil
}

func (s *service) Create(ctx context.Context, actor domain.Actor, employeeID string, req CreateCertificationRequest) (CertificationResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return CertificationResponse{}, certificationerrors.ErrInvalidEmployeeID
	}
	if err := s.guard.Authorize(ctx, actor, employeeID, rbac.SelfOrHR); err != nil {
		return CertificationResponse{}, err
	}

	t, err := s.findType(ctx, req.CertificationTypeID)
	if err != nil {
		return CertificationResponse{}, err
	}

	issue, err := parseDate(req.IssueDate)
	if err != nil {
		return CertificationResponse{}, err
	}
	expiry, err := parseOptionalDate(req.ExpiryDate)
	if err != nil {
		return CertificationResponse{}, err
	}
	if expiry == nil {
		expiry = defaultExpiry(issue, t.ValidityPeriod)
	}
	if expiry != nil && expiry.Before(issue) {
		return CertificationResponse{}, certificationerrors.ErrExpiryBeforeIssue
	}

	c := &EmployeeCertification{
		ID:                  uuid.New(),
		EmployeeID:          empID,
		CertificationTypeID: t.ID,
		CertificationNumber: strings.TrimSpace(req.CertificationNumber),
		IssueDate:           issue,
		ExpiryDate:          expiry,
		Status:              StatusActive,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("create certification failed", zap.String("employee_id", employeeID), zap.Error(err))
		return CertificationResponse{}, mapRepositoryError(err, certificationerrors.ErrTypeNotFound)
	}

	s.logger.Info("certification recorded",
		zap.String("employee_id", employeeID),
		zap.String("certification_id", c.ID.String()),
		zap.String("type", t.Name),
	)
	c.CertificationType = t
	return mapCertificationResponse(*c), nil
}

func (s *service) Update(ctx context.Context, actor domain.Actor, employeeID, certID string, req UpdateCertificationRequest) (CertificationResponse, error) {
	c, err := s.findCertification(ctx, actor, employeeID, certID)
	if err != nil {
		return CertificationResponse{}, err
	}

	if req.CertificationNumber != nil {
		c.CertificationNumber = strings.TrimSpace(*req.CertificationNumber)
	}
	if req.IssueDate != nil {
		issue, err := parseDate(*req.IssueDate)
		if err != nil {
			return CertificationResponse{}, err
		}
		c.IssueDate = issue
	}
	if req.ExpiryDate != nil {
		expiry, err := parseOptionalDate(req.ExpiryDate)
		if err != nil {
			return CertificationResponse{}, err
		}
		c.ExpiryDate = expiry
	}
	if c.ExpiryDate != nil && c.ExpiryDate.Before(c.IssueDate) {
		return CertificationResponse{}, certificationerrors.ErrExpiryBeforeIssue
	}
	if req.Status != nil {
		c.Status = *req.Status
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return CertificationResponse{}, mapRepositoryError(err, certificationerrors.ErrTypeNotFound)
	}
	return mapCertificationResponse(*c), nil
}

func (s *service) Delete(ctx context.Context, actor domain.Actor, employeeID, certID string) error {
	c, err := s.findCertification(ctx, actor, employeeID, certID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, c.ID); err != nil {
		return err
	}

	s.logger.Info("certification deleted",
		zap.String("employee_id", employeeID),
		zap.String("certification_id", certID),
	)
	return nil
}

func (s *service) findType(ctx context.Context, id string) (*CertificationType, error) {
	typeID, err := uuid.Parse(id)
	if err != nil {
		return nil, certificationerrors.ErrInvalidTypeID
	}
	t, err := s.repo.FindTypeByID(ctx, typeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, certificationerrors.ErrTypeNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *service) findCertification(ctx context.Context, actor domain.Actor, employeeID, certID string) (*EmployeeCertification, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, certificationerrors.ErrInvalidEmployeeID
	}
	id, err := uuid.Parse(certID)
	if err != nil {
		return nil, certificationerrors.ErrInvalidCertificationID
	}
	if err := s.guard.Authorize(ctx, actor, employeeID, rbac.SelfOrHR); err != nil {
		return nil, err
	}

	c, err := s.repo.FindForEmployee(ctx, empID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, certificationerrors.ErrCertificationNotFound
		}
		return nil, err
	}
	return c, nil
}

// defaultExpiry returns issue + months, or nil for certifications that never expire.
func defaultExpiry(issue time.Time, months int) *time.Time {
	if months <= 0 {
		return nil
	}
	expiry := issue.AddDate(0, months, 0)
	return &expiry
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, certificationerrors.ErrInvalidDate
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

func mapTypeResponse(t CertificationType) TypeResponse {
	return TypeResponse{
		ID:                  t.ID.String(),
		Name:                t.Name,
		Description:         t.Description,
		IssuingOrganization: t.IssuingOrganization,
		ValidityPeriod:      t.ValidityPeriod,
	}
}

func mapCertificationResponse(c EmployeeCertification) CertificationResponse {
	resp := CertificationResponse{
		ID:                  c.ID.String(),
		EmployeeID:          c.EmployeeID.String(),
		CertificationTypeID: c.CertificationTypeID.String(),
		CertificationNumber: c.CertificationNumber,
		IssueDate:           c.IssueDate.Format(dateLayout),
		Status:              c.Status,
	}
	if c.ExpiryDate != nil {
		v := c.ExpiryDate.Format(dateLayout)
		resp.ExpiryDate = &v
	}
	if c.CertificationType != nil {
		resp.CertificationTypeName = c.CertificationType.Name
	}
	return resp
}
