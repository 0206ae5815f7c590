package leave

import (
	"context"
	"errors"
	"strings"

	"go-hrms/internal/domain"
	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/rbac"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (s *service) ListTypes(ctx context.Context) ([]LeaveTypeResponse, error) {
	types, err := s.repo.ListActiveTypes(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveTypeResponse, len(types))
	for i, lt := range types {
		resp[i] = mapTypeResponse(lt)
	}
	return resp, nil
}

func (s *service) CreateType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error) {
	lt := &LeaveType{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		DefaultDays: req.DefaultDays,
		IsActive:    true,
	}

	if err := s.repo.CreateType(ctx, lt); err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("leave type created", zap.String("leave_type_id", lt.ID.String()), zap.String("name", lt.Name))
	return mapTypeResponse(*lt), nil
}

func (s *service) UpdateType(ctx context.Context, id string, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error) {
	lt, err := s.findType(ctx, id)
	if err != nil {
		return LeaveTypeResponse{}, err
	}

	if req.Name != nil {
		lt.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		lt.Description = *req.Description
	}
	if req.DefaultDays != nil {
		lt.DefaultDays = *req.DefaultDays
	}
	if req.IsActive != nil {
		lt.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateType(ctx, lt); err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}
	return mapTypeResponse(*lt), nil
}

// DeleteType deactivates the type. Balances and past leaves keep referencing it.
func (s *service) DeleteType(ctx context.Context, id string) error {
	lt, err := s.findType(ctx, id)
	if err != nil {
		return err
	}
	if !lt.IsActive {
		return nil
	}

	lt.IsActive = false
	if err := s.repo.UpdateType(ctx, lt); err != nil {
		return err
	}

	s.logger.Info("leave type deactivated", zap.String("leave_type_id", id))
	return nil
}

func (s *service) findType(ctx context.Context, id string) (*LeaveType, error) {
	typeID, err := uuid.Parse(id)
	if err != nil {
		return nil, leaveerrors.ErrLeaveTypeNotFound
	}
	lt, err := s.repo.FindTypeByID(ctx, typeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrLeaveTypeNotFound
		}
		return nil, err
	}
	return lt, nil
}

func (s *service) GetBalances(ctx context.Context, actor domain.Actor, employeeID string) ([]LeaveBalanceResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}
	if err := s.guard.Authorize(ctx, actor, employeeID, rbac.TeamView); err != nil {
		return nil, err
	}

	balances, err := s.repo.FindBalances(ctx, empID, s.now().Year())
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveBalanceResponse, len(balances))
	for i, b := range balances {
		resp[i] = mapBalanceResponse(b)
	}
	return resp, nil
}

func (s *service) CreateBalance(ctx context.Context, employeeID string, req CreateBalanceRequest) (LeaveBalanceResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveBalanceResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	typeID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return LeaveBalanceResponse{}, leaveerrors.ErrInvalidLeaveType
	}
	if req.UsedDays > req.TotalDays {
		return LeaveBalanceResponse{}, leaveerrors.ErrUsedExceedsTotal
	}

	year := req.Year
	if year == 0 {
		year = s.now().Year()
	}

	b := &LeaveBalance{
		ID:          uuid.New(),
		EmployeeID:  empID,
		LeaveTypeID: typeID,
		Year:        year,
		TotalDays:   req.TotalDays,
		UsedDays:    req.UsedDays,
	}

	if err := s.repo.CreateBalance(ctx, b); err != nil {
		return LeaveBalanceResponse{}, mapRepositoryError(err)
	}
	return mapBalanceResponse(*b), nil
}

func (s *service) UpdateBalance(ctx context.Context, employeeID string, req UpdateBalanceRequest) (LeaveBalanceResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveBalanceResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	typeID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return LeaveBalanceResponse{}, leaveerrors.ErrBalanceNotFound
	}

	year := req.Year
	if year == 0 {
		year = s.now().Year()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update balance begin tx failed", zap.Error(err))
		return LeaveBalanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Approve and Cancel take the same lock.
	b, err := qtx.LockBalance(ctx, empID, typeID, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveBalanceResponse{}, leaveerrors.ErrBalanceNotFound
		}
		return LeaveBalanceResponse{}, err
	}

	if req.TotalDays != nil {
		b.TotalDays = *req.TotalDays
	}
	if req.UsedDays != nil {
		b.UsedDays = *req.UsedDays
	}
	if b.UsedDays > b.TotalDays {
		return LeaveBalanceResponse{}, leaveerrors.ErrUsedExceedsTotal
	}

	if err := qtx.UpdateBalance(ctx, b); err != nil {
		return LeaveBalanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update balance commit failed", zap.Error(err))
		return LeaveBalanceResponse{}, err
	}

	s.logger.Info("leave balance updated",
		zap.String("employee_id", employeeID),
		zap.String("leave_type_id", req.LeaveTypeID),
		zap.Int("year", year),
	)
	return mapBalanceResponse(*b), nil
}

// InitializeBalances grants every active leave type's default_days for year.
// Existing balances are left alone, so it is safe to replay.
func (s *service) InitializeBalances(ctx context.Context, employeeID string, year int) (int, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return 0, leaveerrors.ErrInvalidEmployeeID
	}

	types, err := s.repo.ListActiveTypes(ctx)
	if err != nil {
		return 0, err
	}

	balances := make([]LeaveBalance, 0, len(types))
	for _, lt := range types {
		balances = append(balances, LeaveBalance{
			ID:          uuid.New(),
			EmployeeID:  empID,
			LeaveTypeID: lt.ID,
			Year:        year,
			TotalDays:   lt.DefaultDays,
		})
	}

	created, err := s.repo.CreateMissingBalances(ctx, balances)
	if err != nil {
		s.logger.Error("initialize leave balances failed",
			zap.String("employee_id", employeeID),
			zap.Int("year", year),
			zap.Error(err),
		)
		return 0, mapRepositoryError(err)
	}

	s.logger.Info("leave balances initialized",
		zap.String("employee_id", employeeID),
		zap.Int("year", year),
		zap.Int("created", created),
	)
	return created, nil
}

func mapTypeResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:          lt.ID.String(),
		Name:        lt.Name,
		Description: lt.Description,
		DefaultDays: lt.DefaultDays,
		IsActive:    lt.IsActive,
	}
}

func mapBalanceResponse(b LeaveBalance) LeaveBalanceResponse {
	resp := LeaveBalanceResponse{
		ID:            b.ID.String(),
		EmployeeID:    b.EmployeeID.String(),
		LeaveTypeID:   b.LeaveTypeID.String(),
		Year:          b.Year,
		TotalDays:     b.TotalDays,
		UsedDays:      b.UsedDays,
		RemainingDays: b.Remaining(),
	}
	if b.LeaveType != nil {
		resp.LeaveTypeName = b.LeaveType.Name
	}
	return resp
}
