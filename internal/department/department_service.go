package department

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	departmenterrors "go-hrms/internal/department/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const DepartmentsCacheKey = "departments:all"

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
	GetEmployees(ctx context.Context, id string) ([]MemberResponse, error)
	AddEmployee(ctx context.Context, id string, req AssignEmployeeRequest) (MemberResponse, error)
	RemoveEmployee(ctx context.Context, id, employeeID string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept := &Department{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}

	if err := qtx.Create(ctx, dept); err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
	}

	s.invalidateCache(ctx)
	s.logger.Info("department created", zap.String("department_id", dept.ID.String()), zap.String("name", dept.Name))
	return mapToResponse(*dept), nil
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, DepartmentsCacheKey).Result(); err == nil {
			var resp []DepartmentResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(DepartmentsCacheKey, func() (interface{}, error) {
		depts, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(depts)
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, DepartmentsCacheKey, jsonData, time.Hour)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]DepartmentResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	deptID, err := uuid.Parse(id)
	if err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	dept, err := s.repo.FindByID(ctx, deptID)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*dept), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	deptID, err := uuid.Parse(id)
	if err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept, err := qtx.FindByID(ctx, deptID)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		dept.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		dept.Description = *req.Description
	}

	if err := qtx.Update(ctx, dept); err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
	}

	s.invalidateCache(ctx)
	return mapToResponse(*dept), nil
}

// Delete is refused while active employees are assigned. Inactive ones lose
// the reference through ON DELETE SET NULL.
func (s *service) Delete(ctx context.Context, id string) error {
	deptID, err := uuid.Parse(id)
	if err != nil {
		return departmenterrors.ErrInvalidDepartmentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	active, err := qtx.CountActiveEmployees(ctx, deptID)
	if err != nil {
		return err
	}
	if active > 0 {
		s.logger.Warn("department delete refused",
			zap.String("department_id", id),
			zap.Int64("active_employees", active),
		)
		return departmenterrors.ErrDepartmentHasEmployees
	}

	if err := qtx.Delete(ctx, deptID); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	s.logger.Info("department deleted", zap.String("department_id", id))
	return nil
}

func (s *service) GetEmployees(ctx context.Context, id string) ([]MemberResponse, error) {
	deptID, err := uuid.Parse(id)
	if err != nil {
		return nil, departmenterrors.ErrInvalidDepartmentID
	}

	if _, err := s.repo.FindByID(ctx, deptID); err != nil {
		return nil, mapRepositoryError(err)
	}

	members, err := s.repo.FindMembers(ctx, deptID)
	if err != nil {
		return nil, err
	}

	res := make([]MemberResponse, len(members))
	for i, m := range members {
		res[i] = mapMemberResponse(m)
	}
	return res, nil
}

func (s *service) AddEmployee(ctx context.Context, id string, req AssignEmployeeRequest) (MemberResponse, error) {
	deptID, err := uuid.Parse(id)
	if err != nil {
		return MemberResponse{}, departmenterrors.ErrInvalidDepartmentID
	}
	employeeID, err := uuid.Parse(req.UserID)
	if err != nil {
		return MemberResponse{}, departmenterrors.ErrEmployeeNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return MemberResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, deptID); err != nil {
		return MemberResponse{}, mapRepositoryError(err)
	}

	member, err := s.findMember(ctx, qtx, employeeID)
	if err != nil {
		return MemberResponse{}, err
	}

	if err := qtx.SetMemberDepartment(ctx, employeeID, &deptID); err != nil {
		return MemberResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return MemberResponse{}, err
	}

	member.DepartmentID = &deptID
	s.logger.Info("employee assigned to department",
		zap.String("department_id", id),
		zap.String("employee_id", req.UserID),
	)
	return mapMemberResponse(*member), nil
}

func (s *service) RemoveEmployee(ctx context.Context, id, employeeID string) error {
	deptID, err := uuid.Parse(id)
	if err != nil {
		return departmenterrors.ErrInvalidDepartmentID
	}
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return departmenterrors.ErrEmployeeNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	member, err := s.findMember(ctx, qtx, empID)
	if err != nil {
		return err
	}
	if member.DepartmentID == nil || *member.DepartmentID != deptID {
		return departmenterrors.ErrEmployeeNotInDepartment
	}

	if err := qtx.SetMemberDepartment(ctx, empID, nil); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) findMember(ctx context.Context, repo Repository, employeeID uuid.UUID) (*Member, error) {
	member, err := repo.FindMember(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, departmenterrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return member, nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, DepartmentsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate department cache", zap.Error(err))
	}
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          dept.ID.String(),
		Name:        dept.Name,
		Description: dept.Description,
		CreatedAt:   dept.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   dept.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}

func mapMemberResponse(m Member) MemberResponse {
	return MemberResponse{
		ID:             m.ID.String(),
		EmployeeNumber: m.EmployeeNumber,
		FullName:       strings.TrimSpace(m.FirstName + " " + m.LastName),
		Email:          m.Email,
		Status:         m.Status,
	}
}
