package leave

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-hrms/internal/domain"
	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/rbac"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	ListTypes(ctx context.Context) ([]LeaveTypeResponse, error)
	CreateType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	UpdateType(ctx context.Context, id string, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)
	DeleteType(ctx context.Context, id string) error

	GetBalances(ctx context.Context, actor domain.Actor, employeeID string) ([]LeaveBalanceResponse, error)
	CreateBalance(ctx context.Context, employeeID string, req CreateBalanceRequest) (LeaveBalanceResponse, error)
	UpdateBalance(ctx context.Context, employeeID string, req UpdateBalanceRequest) (LeaveBalanceResponse, error)
	InitializeBalances(ctx context.Context, employeeID string, year int) (int, error)

	Apply(ctx context.Context, actor domain.Actor, employeeID string, req ApplyLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, actor domain.Actor, id string) (LeaveResponse, error)
	Reject(ctx context.Context, actor domain.Actor, id, comment string) (LeaveResponse, error)
	Cancel(ctx context.Context, actor domain.Actor, id string) (LeaveResponse, error)
	GetByEmployee(ctx context.Context, actor domain.Actor, employeeID string) ([]LeaveResponse, error)
	GetAll(ctx context.Context, actor domain.Actor, status, fromDate, toDate string) ([]LeaveResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	guard  rbac.Guard
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, guard rbac.Guard, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, guard: guard, now: time.Now, logger: l}
}

func (s *service) Apply(ctx context.Context, actor domain.Actor, employeeID string, req ApplyLeaveRequest) (LeaveResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	if err := s.guard.Authorize(ctx, actor, employeeID, rbac.SelfOrHR); err != nil {
		return LeaveResponse{}, err
	}

	startDate, endDate, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("apply leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	typeID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveType
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("apply leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lt, err := qtx.FindTypeByID(ctx, typeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrInvalidLeaveType
		}
		return LeaveResponse{}, err
	}
	if !lt.IsActive {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveType
	}

	totalDays := inclusiveDays(startDate, endDate)

	balance, err := qtx.FindBalance(ctx, empID, typeID, startDate.Year())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrInsufficientBalance
		}
		return LeaveResponse{}, err
	}
	if balance.Remaining() <= 0 || balance.Remaining() < totalDays {
		s.logger.Warn("apply leave insufficient balance",
			zap.String("employee_id", employeeID),
			zap.Int("remaining", balance.Remaining()),
			zap.Int("requested", totalDays),
		)
		return LeaveResponse{}, leaveerrors.ErrInsufficientBalance
	}

	overlap, err := qtx.HasOverlappingPeriod(ctx, empID, startDate, endDate)
	if err != nil {
		s.logger.Error("apply leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("apply leave overlap detected",
			zap.String("employee_id", employeeID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	l := &Leave{
		ID:          uuid.New(),
		EmployeeID:  empID,
		LeaveTypeID: typeID,
		StartDate:   startDate,
		EndDate:     endDate,
		TotalDays:   totalDays,
		Reason:      strings.TrimSpace(req.Reason),
		Status:      StatusPending,
		CreatedAt:   s.now().UTC(),
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("apply leave persist failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("apply leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("apply leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", employeeID),
		zap.Int("total_days", totalDays),
	)
	l.LeaveType = lt
	return mapToResponse(*l), nil
}

// Approve moves a pending leave to approved and charges the balance of the
// start date's year under a row lock.
func (s *service) Approve(ctx context.Context, actor domain.Actor, id string) (LeaveResponse, error) {
	return s.decide(ctx, actor, id, func(qtx Repository, l *Leave) error {
		if l.Status != StatusPending {
			return leaveerrors.ErrInvalidStatusTransition
		}

		balance, err := qtx.LockBalance(ctx, l.EmployeeID, l.LeaveTypeID, l.StartDate.Year())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return leaveerrors.ErrInsufficientBalance
			}
			return err
		}
		if balance.Remaining() < l.TotalDays {
			return leaveerrors.ErrInsufficientBalance
		}

		balance.UsedDays += l.TotalDays
		if err := qtx.UpdateBalance(ctx, balance); err != nil {
			return err
		}

		l.Status = StatusApproved
		return nil
	})
}

func (s *service) Reject(ctx context.Context, actor domain.Actor, id, comment string) (LeaveResponse, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return LeaveResponse{}, leaveerrors.ErrCommentRequired
	}

	return s.decide(ctx, actor, id, func(_ Repository, l *Leave) error {
		if l.Status != StatusPending {
			return leaveerrors.ErrInvalidStatusTransition
		}
		l.Status = StatusRejected
		l.Comment = comment
		return nil
	})
}

func (s *service) decide(ctx context.Context, actor domain.Actor, id string, apply func(qtx Repository, l *Leave) error) (LeaveResponse, error) {
	leaveID, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	actorID, err := uuid.Parse(actor.ID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	if err := s.guard.Authorize(ctx, actor, l.EmployeeID.String(), rbac.TeamApprover); err != nil {
		s.logger.Warn("decide leave forbidden",
			zap.String("leave_id", id),
			zap.String("actor_id", actor.ID),
		)
		return LeaveResponse{}, err
	}

	from := l.Status
	if err := apply(qtx, l); err != nil {
		s.logger.Warn("decide leave refused",
			zap.String("leave_id", id),
			zap.String("status", from),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	now := s.now().UTC()
	l.DecidedBy = &actorID
	l.DecidedAt = &now

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("decide leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("decide leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("leave decided",
		zap.String("leave_id", id),
		zap.String("from_status", from),
		zap.String("to_status", l.Status),
		zap.String("actor_id", actor.ID),
	)
	return mapToResponse(*l), nil
}

// Cancel withdraws a pending or approved leave. Approved days go back to the
// balance they were charged to.
func (s *service) Cancel(ctx context.Context, actor domain.Actor, id string) (LeaveResponse, error) {
	leaveID, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	if err := s.guard.Authorize(ctx, actor, l.EmployeeID.String(), rbac.SelfHROrManagerOf); err != nil {
		return LeaveResponse{}, err
	}

	switch l.Status {
	case StatusPending:
	case StatusApproved:
		balance, err := qtx.LockBalance(ctx, l.EmployeeID, l.LeaveTypeID, l.StartDate.Year())
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, err
		}
		if balance != nil {
			balance.UsedDays -= l.TotalDays
			if balance.UsedDays < 0 {
				balance.UsedDays = 0
			}
			if err := qtx.UpdateBalance(ctx, balance); err != nil {
				return LeaveResponse{}, err
			}
		}
	default:
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	from := l.Status
	l.Status = StatusCancelled
	if err := qtx.Update(ctx, l); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave cancelled",
		zap.String("leave_id", id),
		zap.String("from_status", from),
		zap.String("actor_id", actor.ID),
	)
	return mapToResponse(*l), nil
}

func (s *service) GetByEmployee(ctx context.Context, actor domain.Actor, employeeID string) ([]LeaveResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}
	if err := s.guard.Authorize(ctx, actor, employeeID, rbac.TeamView); err != nil {
		return nil, err
	}

	leaves, err := s.repo.FindByEmployee(ctx, empID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

// GetAll lists leave requests. Managers only see their direct reports.
func (s *service) GetAll(ctx context.Context, actor domain.Actor, status, fromDate, toDate string) ([]LeaveResponse, error) {
	filter := Filter{
		Status:    status,
		ManagerID: actor.TeamScope(),
	}

	if fromDate != "" {
		from, err := parseDate(fromDate)
		if err != nil {
			return nil, err
		}
		filter.From = &from
	}
	if toDate != "" {
		to, err := parseDate(toDate)
		if err != nil {
			return nil, err
		}
		filter.To = &to
	}

	leaves, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func parsePeriod(start, end string) (time.Time, time.Time, error) {
	startDate, err := parseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endDate, err := parseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return startDate, endDate, nil
}

func inclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:          l.ID.String(),
		EmployeeID:  l.EmployeeID.String(),
		LeaveTypeID: l.LeaveTypeID.String(),
		StartDate:   l.StartDate.Format(dateLayout),
		EndDate:     l.EndDate.Format(dateLayout),
		TotalDays:   l.TotalDays,
		Reason:      l.Reason,
		Status:      l.Status,
		Comment:     l.Comment,
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
	}
	if l.Employee != nil {
		resp.EmployeeName = l.Employee.FullName()
	}
	if l.LeaveType != nil {
		resp.LeaveTypeName = l.LeaveType.Name
	}
	if l.DecidedBy != nil {
		v := l.DecidedBy.String()
		resp.DecidedBy = &v
	}
	if l.DecidedAt != nil {
		v := l.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
