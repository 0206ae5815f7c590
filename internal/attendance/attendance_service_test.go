package attendance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hrms/internal/attendance"
	attendanceerrors "go-hrms/internal/attendance/errors"
	attendanceMock "go-hrms/internal/attendance/mock"
	"go-hrms/internal/domain"
	"go-hrms/internal/rbac"
	"go-hrms/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type enforcerFunc func(req domain.EnforceRequest) (bool, error)

func (f enforcerFunc) Enforce(req domain.EnforceRequest) (bool, error) {
	return f(req)
}

// seededEnforcer mirrors the seeded grants of attendance:read_all.
var seededEnforcer = enforcerFunc(func(req domain.EnforceRequest) (bool, error) {
	if req.Resource == "attendance" && req.Action == "read_all" {
		return req.Role != domain.RoleEmployee, nil
	}
	return false, nil
})

func setupServiceTest(t *testing.T) (*attendanceMock.MockRepository, attendance.Service) {
	return setupServiceTestWith(t, seededEnforcer)
}

func setupServiceTestWith(t *testing.T, enforcer attendance.Enforcer) (*attendanceMock.MockRepository, attendance.Service) {
	ctrl := gomock.NewController(t)
	repo := attendanceMock.NewMockRepository(ctrl)
	guard := rbac.NewGuard(rbac.TeamResolverFunc(func(ctx context.Context, managerID, employeeID string) (bool, error) {
		return false, nil
	}))
	return repo, attendance.NewService(repo, guard, enforcer)
}

func TestAttendanceService_Mark(t *testing.T) {
	ctx := context.Background()
	actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee}

	t.Run("success computes work hours", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		in, out := "2026-03-02T08:30:00Z", "2026-03-02T17:15:00Z"

		repo.EXPECT().FindByEmployeeAndDate(ctx, uuid.MustParse(actor.ID), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *attendance.Attendance) error {
			assert.Equal(t, attendance.StatusPresent, a.Status)
			assert.Equal(t, time.UTC, a.Date.Location())
			assert.Zero(t, a.Date.Hour())
			return nil
		})

		resp, err := svc.Mark(ctx, actor, attendance.MarkAttendanceRequest{
			Status:   attendance.StatusPresent,
			CheckIn:  &in,
			CheckOut: &out,
		})

		require.NoError(t, err)
		assert.Equal(t, "8:45", resp.WorkHours)
		assert.Equal(t, in, *resp.CheckIn)
	})

	t.Run("explicit work hours win", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		hours := "4:00"

		repo.EXPECT().FindByEmployeeAndDate(ctx, gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := svc.Mark(ctx, actor, attendance.MarkAttendanceRequest{Status: attendance.StatusHalfDay, WorkHours: &hours})

		require.NoError(t, err)
		assert.Equal(t, "4:00", resp.WorkHours)
		assert.Nil(t, resp.CheckIn)
	})

	t.Run("second mark same day", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().FindByEmployeeAndDate(ctx, gomock.Any(), gomock.Any()).Return(&attendance.Attendance{}, nil)

		_, err := svc.Mark(ctx, actor, attendance.MarkAttendanceRequest{Status: attendance.StatusPresent})

		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyMarked)
		assert.Equal(t, 409, apperror.ToHTTP(err).Status)
	})

	t.Run("concurrent insert hits unique constraint", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().FindByEmployeeAndDate(ctx, gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_employee_date"})

		_, err := svc.Mark(ctx, actor, attendance.MarkAttendanceRequest{Status: attendance.StatusPresent})

		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyMarked)
	})

	t.Run("check out before check in", func(t *testing.T) {
		_, svc := setupServiceTest(t)
		in, out := "2026-03-02T17:00:00Z", "2026-03-02T08:00:00Z"

		_, err := svc.Mark(ctx, actor, attendance.MarkAttendanceRequest{Status: attendance.StatusPresent, CheckIn: &in, CheckOut: &out})

		assert.ErrorIs(t, err, attendanceerrors.ErrCheckOutBeforeCheckIn)
	})

	t.Run("bad timestamp", func(t *testing.T) {
		_, svc := setupServiceTest(t)
		in := "08:00"

		_, err := svc.Mark(ctx, actor, attendance.MarkAttendanceRequest{Status: attendance.StatusPresent, CheckIn: &in})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidTime)
	})
}

func TestAttendanceService_ClockIn(t *testing.T) {
	ctx := context.Background()
	actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee}

	t.Run("creates today's record", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().FindByEmployeeAndDate(ctx, gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *attendance.Attendance) error {
			require.NotNil(t, a.CheckIn)
			assert.Nil(t, a.CheckOut)
			assert.Contains(t, []string{attendance.StatusPresent, attendance.StatusLate}, a.Status)
			return nil
		})

		resp, err := svc.ClockIn(ctx, actor)

		require.NoError(t, err)
		assert.Equal(t, actor.ID, resp.EmployeeID)
		assert.NotNil(t, resp.CheckIn)
	})

	t.Run("duplicate", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().FindByEmployeeAndDate(ctx, gomock.Any(), gomock.Any()).Return(&attendance.Attendance{}, nil)

		_, err := svc.ClockIn(ctx, actor)

		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyClockedIn)
	})
}

func TestAttendanceService_ClockOut(t *testing.T) {
	ctx := context.Background()
	actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee}

	t.Run("sets check out and work hours", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		checkIn := time.Now().UTC().Add(-2*time.Hour - 30*time.Minute)
		row := &attendance.Attendance{ID: uuid.New(), EmployeeID: uuid.MustParse(actor.ID), CheckIn: &checkIn, Status: attendance.StatusPresent}

		repo.EXPECT().FindByEmployeeAndDate(ctx, gomock.Any(), gomock.Any()).Return(row, nil)
		repo.EXPECT().Update(ctx, row).Return(nil)

		resp, err := svc.ClockOut(ctx, actor)

		require.NoError(t, err)
		assert.NotNil(t, resp.CheckOut)
		assert.Equal(t, "2:30", resp.WorkHours)
	})

	t.Run("no clock in", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().FindByEmployeeAndDate(ctx, gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.ClockOut(ctx, actor)

		assert.ErrorIs(t, err, attendanceerrors.ErrClockInNotFound)
		assert.Equal(t, 404, apperror.ToHTTP(err).Status)
	})

	t.Run("marked without check in", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().FindByEmployeeAndDate(ctx, gomock.Any(), gomock.Any()).Return(&attendance.Attendance{Status: attendance.StatusAbsent}, nil)

		_, err := svc.ClockOut(ctx, actor)

		assert.ErrorIs(t, err, attendanceerrors.ErrClockInNotFound)
	})

	t.Run("already clocked out", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		in, out := time.Now().Add(-time.Hour), time.Now()
		repo.EXPECT().FindByEmployeeAndDate(ctx, gomock.Any(), gomock.Any()).Return(&attendance.Attendance{CheckIn: &in, CheckOut: &out}, nil)

		_, err := svc.ClockOut(ctx, actor)

		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyClockedOut)
	})
}

func TestAttendanceService_GetByID(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	row := &attendance.Attendance{ID: uuid.New(), EmployeeID: ownerID, Status: attendance.StatusPresent}

	tests := []struct {
		name    string
		actor   domain.Actor
		wantErr error
	}{
		{"owner", domain.Actor{ID: ownerID.String(), Role: domain.RoleEmployee}, nil},
		{"manager", domain.Actor{ID: uuid.NewString(), Role: domain.RoleManager}, nil},
		{"hr", domain.Actor{ID: uuid.NewString(), Role: domain.RoleHR}, nil},
		{"other employee", domain.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee}, apperror.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := setupServiceTest(t)
			repo.EXPECT().FindByID(ctx, row.ID).Return(row, nil)

			resp, err := svc.GetByID(ctx, tt.actor, row.ID.String())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, row.ID.String(), resp.ID)
		})
	}

	t.Run("not found", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		id := uuid.New()
		repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(ctx, domain.Actor{ID: uuid.NewString(), Role: domain.RoleHR}, id.String())

		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, svc := setupServiceTest(t)

		_, err := svc.GetByID(ctx, domain.Actor{ID: uuid.NewString(), Role: domain.RoleHR}, "nope")

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidAttendanceID)
	})
}

func TestAttendanceService_Update(t *testing.T) {
	ctx := context.Background()
	checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	row := &attendance.Attendance{ID: uuid.New(), EmployeeID: uuid.New(), CheckIn: &checkIn, Status: attendance.StatusPresent}

	repo, svc := setupServiceTest(t)
	repo.EXPECT().FindByID(ctx, row.ID).Return(row, nil)
	repo.EXPECT().Update(ctx, row).Return(nil)

	out := "2026-03-02T13:20:00Z"
	status := attendance.StatusHalfDay
	resp, err := svc.Update(ctx, row.ID.String(), attendance.UpdateAttendanceRequest{CheckOut: &out, Status: &status})

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusHalfDay, resp.Status)
	assert.Equal(t, "4:20", resp.WorkHours)
}

func TestAttendanceService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("employee only sees own records", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee}

		repo.EXPECT().FindAll(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, f attendance.Filter) ([]attendance.Attendance, error) {
			assert.Equal(t, actor.ID, f.EmployeeID)
			return nil, nil
		})

		resp, err := svc.GetAll(ctx, actor, attendance.ListQuery{EmployeeID: uuid.NewString()})

		require.NoError(t, err)
		assert.Empty(t, resp)
	})

	t.Run("manager filters freely", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleManager}
		target := uuid.NewString()

		repo.EXPECT().FindAll(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, f attendance.Filter) ([]attendance.Attendance, error) {
			assert.Equal(t, target, f.EmployeeID)
			assert.Equal(t, attendance.StatusLate, f.Status)
			require.NotNil(t, f.From)
			require.NotNil(t, f.To)
			assert.Equal(t, 2026, f.From.Year())
			return []attendance.Attendance{{ID: uuid.New(), Status: attendance.StatusLate}}, nil
		})

		resp, err := svc.GetAll(ctx, actor, attendance.ListQuery{
			EmployeeID: target,
			From:       "2026-03-01",
			To:         "2026-03-31",
			Status:     attendance.StatusLate,
		})

		require.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("role without read_all is pinned to itself", func(t *testing.T) {
		var asked domain.EnforceRequest
		repo, svc := setupServiceTestWith(t, enforcerFunc(func(req domain.EnforceRequest) (bool, error) {
			asked = req
			return false, nil
		}))
		actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleManager}

		repo.EXPECT().FindAll(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, f attendance.Filter) ([]attendance.Attendance, error) {
			assert.Equal(t, actor.ID, f.EmployeeID)
			return nil, nil
		})

		_, err := svc.GetAll(ctx, actor, attendance.ListQuery{EmployeeID: uuid.NewString()})

		require.NoError(t, err)
		assert.Equal(t, domain.EnforceRequest{Role: domain.RoleManager, Resource: "attendance", Action: "read_all"}, asked)
	})

	t.Run("enforcer failure", func(t *testing.T) {
		_, svc := setupServiceTestWith(t, enforcerFunc(func(domain.EnforceRequest) (bool, error) {
			return false, errors.New("policy not loaded")
		}))

		_, err := svc.GetAll(ctx, domain.Actor{ID: uuid.NewString(), Role: domain.RoleHR}, attendance.ListQuery{})

		assert.EqualError(t, err, "policy not loaded")
	})

	t.Run("bad date", func(t *testing.T) {
		_, svc := setupServiceTest(t)

		_, err := svc.GetAll(ctx, domain.Actor{ID: uuid.NewString(), Role: domain.RoleHR}, attendance.ListQuery{From: "03/01/2026"})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDate)
	})
}

func TestAttendanceService_Export(t *testing.T) {
	ctx := context.Background()
	actor := domain.Actor{ID: uuid.NewString(), Role: domain.RoleManager}
	in := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("one row per record", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().FindAll(ctx, gomock.Any()).Return([]attendance.Attendance{
			{
				ID:        uuid.New(),
				Date:      time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
				CheckIn:   &in,
				Status:    attendance.StatusPresent,
				WorkHours: "8:00",
				Employee:  &attendance.EmployeeRef{EmployeeNumber: "EMP-0001", FirstName: "Ana", LastName: "Lopez"},
			},
			{
				ID:     uuid.New(),
				Date:   time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
				Status: attendance.StatusAbsent,
			},
		}, nil)

		buf, filename, err := svc.Export(ctx, actor, attendance.ListQuery{From: "2026-03-01", To: "2026-03-31"})

		require.NoError(t, err)
		assert.Equal(t, "attendance_2026-03-01_2026-03-31.xlsx", filename)

		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Attendance")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "Date", rows[0][0])
		assert.Equal(t, []string{"2026-03-02", "EMP-0001", "Ana Lopez", "present", "2026-03-02T09:00:00Z", "", "8:00"}, rows[1])
		assert.Equal(t, "absent", rows[2][3])
	})

	t.Run("repository failure", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().FindAll(ctx, gomock.Any()).Return(nil, errors.New("db down"))

		_, _, err := svc.Export(ctx, actor, attendance.ListQuery{})

		assert.Error(t, err)
	})
}
