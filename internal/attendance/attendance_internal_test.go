package attendance

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestIsLate(t *testing.T) {
	day := func(h, m int) time.Time { return time.Date(2026, 3, 2, h, m, 0, 0, time.UTC) }

	assert.False(t, isLate(day(8, 59)))
	assert.False(t, isLate(day(9, 15)))
	assert.True(t, isLate(day(9, 16)))
	assert.True(t, isLate(day(14, 0)))
}

func TestFormatWorkHours(t *testing.T) {
	assert.Equal(t, "0:00", formatWorkHours(0))
	assert.Equal(t, "0:00", formatWorkHours(-time.Hour))
	assert.Equal(t, "7:05", formatWorkHours(7*time.Hour+5*time.Minute+40*time.Second))
	assert.Equal(t, "10:30", formatWorkHours(10*time.Hour+30*time.Minute))
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "attendance_2026-03-01_2026-03-09.xlsx", exportFilename(ListQuery{From: "2026-03-01", To: "2026-03-09"}, now))
	assert.Equal(t, "attendance_from_2026-03-01.xlsx", exportFilename(ListQuery{From: "2026-03-01"}, now))
	assert.Equal(t, "attendance_20260309.xlsx", exportFilename(ListQuery{}, now))
}

type stubRepository struct {
	Repository
	created *Attendance
}

func (r *stubRepository) FindByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time) (*Attendance, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepository) Create(ctx context.Context, a *Attendance) error {
	r.created = a
	return nil
}

func TestService_ClockInStatus(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"on time", time.Date(2026, 3, 2, 8, 55, 0, 0, time.UTC), StatusPresent},
		{"late", time.Date(2026, 3, 2, 9, 40, 0, 0, time.UTC), StatusLate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepository{}
			s := &service{repo: repo, now: func() time.Time { return tt.at }, logger: zap.NewNop()}

			resp, err := s.ClockIn(context.Background(), domain.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee})

			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Status)
			assert.Equal(t, "2026-03-02", resp.Date)
			assert.Equal(t, tt.at, *repo.created.CheckIn)
		})
	}
}
