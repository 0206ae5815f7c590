package attendance

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	attendanceerrors "go-hrms/internal/attendance/errors"
	"go-hrms/internal/domain"
	"go-hrms/internal/rbac"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Clock-ins after this time of day (UTC) are recorded as late.
const (
	lateAfterHour   = 9
	lateAfterMinute = 15
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Mark(ctx context.Context, actor domain.Actor, req MarkAttendanceRequest) (AttendanceResponse, error)
	ClockIn(ctx context.Context, actor domain.Actor) (AttendanceResponse, error)
	ClockOut(ctx context.Context, actor domain.Actor) (AttendanceResponse, error)
	GetByID(ctx context.Context, actor domain.Actor, id string) (AttendanceResponse, error)
	Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, actor domain.Actor, q ListQuery) ([]AttendanceResponse, error)
	Export(ctx context.Context, actor domain.Actor, q ListQuery) (*bytes.Buffer, string, error)
}

type ListQuery struct {
	EmployeeID string
	From       string
	To         string
	Status     string
}

// Enforcer decides role permissions that depend on what is being read.
type Enforcer interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

type service struct {
	repo     Repository
	guard    rbac.Guard
	enforcer Enforcer
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(repo Repository, guard rbac.Guard, enforcer Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{repo: repo, guard: guard, enforcer: enforcer, now: time.Now, logger: l}
}

func (s *service) Mark(ctx context.Context, actor domain.Actor, req MarkAttendanceRequest) (AttendanceResponse, error) {
	empID, err := uuid.Parse(actor.ID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	checkIn, err := parseTimestamp(req.CheckIn)
	if err != nil {
		return AttendanceResponse{}, err
	}
	checkOut, err := parseTimestamp(req.CheckOut)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if checkIn != nil && checkOut != nil && !checkOut.After(*checkIn) {
		return AttendanceResponse{}, attendanceerrors.ErrCheckOutBeforeCheckIn
	}

	today := truncateDay(s.now())

	_, err = s.repo.FindByEmployeeAndDate(ctx, empID, today)
	if err == nil {
		s.logger.Warn("mark attendance duplicate",
			zap.String("employee_id", actor.ID),
			zap.String("date", today.Format(dateLayout)),
		)
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyMarked
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}

	a := &Attendance{
		ID:         uuid.New(),
		EmployeeID: empID,
		Date:       today,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     req.Status,
	}
	switch {
	case req.WorkHours != nil:
		a.WorkHours = *req.WorkHours
	case checkIn != nil && checkOut != nil:
		a.WorkHours = formatWorkHours(checkOut.Sub(*checkIn))
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Error("mark attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err, attendanceerrors.ErrAlreadyMarked)
	}

	s.logger.Info("attendance marked",
		zap.String("attendance_id", a.ID.String()),
		zap.String("employee_id", actor.ID),
		zap.String("status", a.Status),
	)
	return mapToResponse(*a), nil
}

// ClockIn opens today's record. Arrivals after 09:15 UTC are marked late.
func (s *service) ClockIn(ctx context.Context, actor domain.Actor) (AttendanceResponse, error) {
	empID, err := uuid.Parse(actor.ID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	now := s.now().UTC()
	today := truncateDay(now)

	_, err = s.repo.FindByEmployeeAndDate(ctx, empID, today)
	if err == nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedIn
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}

	status := StatusPresent
	if isLate(now) {
		status = StatusLate
	}

	a := &Attendance{
		ID:         uuid.New(),
		EmployeeID: empID,
		Date:       today,
		CheckIn:    &now,
		Status:     status,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Error("clock in persist failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err, attendanceerrors.ErrAlreadyClockedIn)
	}

	s.logger.Info("clocked in",
		zap.String("employee_id", actor.ID),
		zap.String("status", status),
	)
	return mapToResponse(*a), nil
}

func (s *service) ClockOut(ctx context.Context, actor domain.Actor) (AttendanceResponse, error) {
	empID, err := uuid.Parse(actor.ID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	now := s.now().UTC()

	a, err := s.repo.FindByEmployeeAndDate(ctx, empID, truncateDay(now))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrClockInNotFound
		}
		return AttendanceResponse{}, err
	}
	if a.CheckIn == nil {
		return AttendanceResponse{}, attendanceerrors.ErrClockInNotFound
	}
	if a.CheckOut != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedOut
	}

	a.CheckOut = &now
	a.WorkHours = formatWorkHours(now.Sub(*a.CheckIn))

	if err := s.repo.Update(ctx, a); err != nil {
		s.logger.Error("clock out persist failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("clocked out",
		zap.String("employee_id", actor.ID),
		zap.String("work_hours", a.WorkHours),
	)
	return mapToResponse(*a), nil
}

func (s *service) GetByID(ctx context.Context, actor domain.Actor, id string) (AttendanceResponse, error) {
	a, err := s.find(ctx, id)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if err := s.guard.Authorize(ctx, actor, a.EmployeeID.String(), rbac.SelfOrManager); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*a), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error) {
	a, err := s.find(ctx, id)
	if err != nil {
		return AttendanceResponse{}, err
	}

	if req.CheckOut != nil && *req.CheckOut != "" {
		checkOut, err := parseTimestamp(req.CheckOut)
		if err != nil {
			return AttendanceResponse{}, err
		}
		if a.CheckIn != nil && !checkOut.After(*a.CheckIn) {
			return AttendanceResponse{}, attendanceerrors.ErrCheckOutBeforeCheckIn
		}
		a.CheckOut = checkOut
		if a.CheckIn != nil && req.WorkHours == nil {
			a.WorkHours = formatWorkHours(checkOut.Sub(*a.CheckIn))
		}
	}
	if req.Status != nil {
		a.Status = *req.Status
	}
	if req.WorkHours != nil {
		a.WorkHours = *req.WorkHours
	}

	if err := s.repo.Update(ctx, a); err != nil {
		s.logger.Error("update attendance failed", zap.String("attendance_id", id), zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err, attendanceerrors.ErrAlreadyMarked)
	}
	return mapToResponse(*a), nil
}

// GetAll lists records matching q. Employees only ever see their own rows.
func (s *service) GetAll(ctx context.Context, actor domain.Actor, q ListQuery) ([]AttendanceResponse, error) {
	filter, err := s.buildFilter(actor, q)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]AttendanceResponse, len(rows))
	for i, a := range rows {
		resp[i] = mapToResponse(a)
	}
	return resp, nil
}

func (s *service) Export(ctx context.Context, actor domain.Actor, q ListQuery) (*bytes.Buffer, string, error) {
	filter, err := s.buildFilter(actor, q)
	if err != nil {
		return nil, "", err
	}

	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	buf, err := writeWorkbook(rows)
	if err != nil {
		s.logger.Error("attendance export failed", zap.Int("rows", len(rows)), zap.Error(err))
		return nil, "", attendanceerrors.ErrExportFailed
	}

	filename := exportFilename(q, s.now())
	s.logger.Info("attendance exported",
		zap.String("actor_id", actor.ID),
		zap.Int("rows", len(rows)),
		zap.String("filename", filename),
	)
	return buf, filename, nil
}

func (s *service) find(ctx context.Context, id string) (*Attendance, error) {
	attendanceID, err := uuid.Parse(id)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidAttendanceID
	}
	a, err := s.repo.FindByID(ctx, attendanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendanceerrors.ErrAttendanceNotFound
		}
		return nil, err
	}
	return a, nil
}

// buildFilter pins the listing to the actor unless their role holds attendance:read_all.
func (s *service) buildFilter(actor domain.Actor, q ListQuery) (Filter, error) {
	filter := Filter{
		EmployeeID: q.EmployeeID,
		Status:     q.Status,
	}

	readAll, err := s.enforcer.Enforce(domain.EnforceRequest{
		Role:     actor.Role,
		Resource: "attendance",
		Action:   "read_all",
	})
	if err != nil {
		s.logger.Error("attendance read_all check failed", zap.String("role", actor.Role), zap.Error(err))
		return Filter{}, err
	}
	if !readAll {
		filter.EmployeeID = actor.ID
	}
	if filter.EmployeeID != "" {
		if _, err := uuid.Parse(filter.EmployeeID); err != nil {
			return Filter{}, attendanceerrors.ErrInvalidEmployeeID
		}
	}

	if q.From != "" {
		from, err := time.Parse(dateLayout, q.From)
		if err != nil {
			return Filter{}, attendanceerrors.ErrInvalidDate
		}
		filter.From = &from
	}
	if q.To != "" {
		to, err := time.Parse(dateLayout, q.To)
		if err != nil {
			return Filter{}, attendanceerrors.ErrInvalidDate
		}
		filter.To = &to
	}
	return filter, nil
}

func parseTimestamp(v *string) (*time.Time, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *v)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidTime
	}
	t = t.UTC()
	return &t, nil
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func isLate(t time.Time) bool {
	t = t.UTC()
	threshold := time.Date(t.Year(), t.Month(), t.Day(), lateAfterHour, lateAfterMinute, 0, 0, time.UTC)
	return t.After(threshold)
}

// formatWorkHours renders d as H:MM, rounding down to the minute.
func formatWorkHours(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d / time.Minute)
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		Date:       a.Date.Format(dateLayout),
		Status:     a.Status,
		WorkHours:  a.WorkHours,
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.FullName()
	}
	if a.CheckIn != nil {
		v := a.CheckIn.UTC().Format(time.RFC3339)
		resp.CheckIn = &v
	}
	if a.CheckOut != nil {
		v := a.CheckOut.UTC().Format(time.RFC3339)
		resp.CheckOut = &v
	}
	return resp
}
