package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-hrms/internal/domain"
	"go-hrms/internal/employee"
	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/rbac"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/contextutil"

	employeeMock "go-hrms/internal/employee/mock"
	kafkaMock "go-hrms/internal/messaging/kafka/mock"
	counterMock "go-hrms/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	counter   *counterMock.MockRepository
	redismock redismock.ClientMock
	outbox    *kafkaMock.MockOutboxRepository
	managers  map[string]string // employee id -> manager id
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	deps := &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		repo:      repo,
		counter:   counterRepo,
		outbox:    outboxRepo,
		redismock: redisMock,
		managers:  map[string]string{},
	}

	guard := rbac.NewGuard(rbac.TeamResolverFunc(func(ctx context.Context, managerID, employeeID string) (bool, error) {
		return deps.managers[employeeID] == managerID, nil
	}))
	deps.service = employee.NewService(db, repo, counterRepo, outboxRepo, guard, dbRedis)
	return deps
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestEmployeeService_Create(t *testing.T) {
	t.Run("success - generates number, hashes password and queues event", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		ctx := contextutil.WithRequestID(context.Background(), "req-123")
		roleID := uuid.NewString()
		deptID := uuid.NewString()
		req := employee.CreateEmployeeRequest{
			FirstName:    "Jane",
			LastName:     "Doe",
			Email:        "Jane@Example.com",
			Password:     "secret123",
			DepartmentID: deptID,
			JoiningDate:  "2026-01-05",
		}

		expectTx(t, deps.sqlMock, true)

		var created *employee.Employee
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmailTaken(gomock.Any(), "jane@example.com", "").Return(false, nil)
		deps.repo.EXPECT().RoleIDByName(gomock.Any(), domain.RoleEmployee).Return(roleID, nil)
		deps.repo.EXPECT().DepartmentExists(gomock.Any(), deptID).Return(true, nil)
		deps.repo.EXPECT().RoleExists(gomock.Any(), roleID).Return(true, nil)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(gomock.Any(), "employee_number").Return(int64(123), nil)
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "EMP-000123", e.EmployeeNumber)
				assert.Equal(t, "jane@example.com", e.Email)
				assert.Equal(t, roleID, e.RoleID.String())
				assert.Equal(t, deptID, e.DepartmentID.String())
				assert.Equal(t, "2026-01-05", e.JoiningDate.Format("2006-01-02"))
				assert.True(t, e.IsActive)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte("secret123")))
				created = e
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.EmployeeLifecycleTopic, ev.Topic)
				assert.Equal(t, events.EventEmployeeCreated, ev.EventType)
				assert.Equal(t, "req-123", ev.RequestID)

				var payload events.EmployeeLifecycleEvent
				assert.NoError(t, json.Unmarshal(ev.Payload, &payload))
				assert.Equal(t, created.ID.String(), payload.EmployeeID)
				assert.Equal(t, deptID, payload.DepartmentID)
				return nil
			})
		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)
		deps.repo.EXPECT().
			FindByID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, id string) (*employee.Employee, error) {
				return created, nil
			})

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "EMP-000123", resp.EmployeeNumber)
		assert.Equal(t, "Jane Doe", resp.FullName)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmailTaken(gomock.Any(), "jane@example.com", "").Return(true, nil)

		_, err := deps.service.Create(context.Background(), employee.CreateEmployeeRequest{
			FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: "secret123",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
		assert.Equal(t, 409, apperror.ToHTTP(err).Status)
	})

	t.Run("inactive manager rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		managerID := uuid.New()
		roleID := uuid.NewString()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmailTaken(gomock.Any(), gomock.Any(), "").Return(false, nil)
		deps.repo.EXPECT().RoleIDByName(gomock.Any(), domain.RoleEmployee).Return(roleID, nil)
		deps.repo.EXPECT().RoleExists(gomock.Any(), roleID).Return(true, nil)
		deps.repo.EXPECT().FindByID(gomock.Any(), managerID.String()).
			Return(&employee.Employee{ID: managerID, IsActive: false}, nil)

		_, err := deps.service.Create(context.Background(), employee.CreateEmployeeRequest{
			FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: "secret123",
			ManagerID: managerID.String(),
		})

		assert.ErrorIs(t, err, employeeerrors.ErrManagerInactive)
	})

	t.Run("invalid joining date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(context.Background(), employee.CreateEmployeeRequest{
			FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: "secret123",
			JoiningDate: "05/01/2026",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidJoiningDate)
	})
}

func TestEmployeeService_GetAll_Scope(t *testing.T) {
	cases := []struct {
		name    string
		actor   domain.Actor
		manager string
		self    string
	}{
		{"hr sees everyone", domain.Actor{ID: "hr-1", Role: domain.RoleHR}, "", ""},
		{"manager sees team", domain.Actor{ID: "mgr-1", Role: domain.RoleManager}, "mgr-1", ""},
		{"employee sees self", domain.Actor{ID: "emp-1", Role: domain.RoleEmployee}, "", "emp-1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deps := setupServiceTest(t)
			defer deps.db.Close()

			deps.repo.EXPECT().
				FindAll(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, f employee.Filter) ([]employee.Employee, error) {
					assert.Equal(t, tc.manager, f.ManagerID)
					assert.Equal(t, tc.self, f.SelfID)
					assert.Equal(t, "jo", f.Name)
					return []employee.Employee{{ID: uuid.New(), FirstName: "John"}}, nil
				})

			resp, err := deps.service.GetAll(context.Background(), tc.actor, employee.Filter{Name: "jo"})
			assert.NoError(t, err)
			assert.Len(t, resp, 1)
		})
	}
}

func TestEmployeeService_GetByID_Scope(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	target := uuid.New()
	deps.managers[target.String()] = "mgr-1"

	t.Run("peer forbidden", func(t *testing.T) {
		_, err := deps.service.GetByID(context.Background(), domain.Actor{ID: "emp-2", Role: domain.RoleEmployee}, target.String())
		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("self allowed", func(t *testing.T) {
		deps.repo.EXPECT().FindByID(gomock.Any(), target.String()).Return(&employee.Employee{ID: target, FirstName: "Ann"}, nil)

		resp, err := deps.service.GetByID(context.Background(), domain.Actor{ID: target.String(), Role: domain.RoleEmployee}, target.String())
		assert.NoError(t, err)
		assert.Equal(t, target.String(), resp.ID)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := deps.service.GetByID(context.Background(), domain.Actor{ID: "hr", Role: domain.RoleHR}, "nope")
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	t.Run("cannot be own manager", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		self := id.String()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), self).Return(&employee.Employee{ID: id, IsActive: true}, nil)

		_, err := deps.service.Update(context.Background(), self, employee.UpdateEmployeeRequest{ManagerID: &self})
		assert.ErrorIs(t, err, employeeerrors.ErrSelfManager)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		existing := &employee.Employee{ID: id, FirstName: "Old", LastName: "Name", Email: "old@example.com", IsActive: true, Status: employee.StatusActive}
		phone := "0812"

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(existing, nil)
		deps.repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "Old", e.FirstName)
				assert.Equal(t, "old@example.com", e.Email)
				assert.Equal(t, "0812", e.PhoneNumber)
				return nil
			})
		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)
		deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(existing, nil)

		resp, err := deps.service.Update(context.Background(), id.String(), employee.UpdateEmployeeRequest{PhoneNumber: &phone})
		assert.NoError(t, err)
		assert.Equal(t, "0812", resp.PhoneNumber)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	t.Run("soft delete queues deactivation", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&employee.Employee{ID: id, IsActive: true, Status: employee.StatusActive}, nil)
		deps.repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.False(t, e.IsActive)
				assert.Equal(t, employee.StatusInactive, e.Status)
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.EventEmployeeDeactivated, ev.EventType)
				assert.Equal(t, id.String(), ev.AggregateID)
				return nil
			})
		deps.redismock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		assert.NoError(t, deps.service.Delete(context.Background(), id.String()))
	})

	t.Run("already inactive is not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&employee.Employee{ID: id, IsActive: false}, nil)

		err := deps.service.Delete(context.Background(), id.String())
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached, _ := json.Marshal([]employee.EmployeeOption{{ID: "1", FullName: "Cached"}})
		deps.redismock.ExpectGet(employee.EmployeeOptionsKey).SetVal(string(cached))

		resp, err := deps.service.GetOptions(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "Cached", resp[0].FullName)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		deps.redismock.ExpectGet(employee.EmployeeOptionsKey).RedisNil()
		deps.repo.EXPECT().FindOptions(gomock.Any()).Return([]employee.Employee{{ID: id, FirstName: "Ann", LastName: "Lee", EmployeeNumber: "EMP-000001"}}, nil)

		expected, _ := json.Marshal([]employee.EmployeeOption{{ID: id.String(), EmployeeNumber: "EMP-000001", FullName: "Ann Lee"}})
		deps.redismock.ExpectSet(employee.EmployeeOptionsKey, expected, time.Hour).SetVal("OK")

		resp, err := deps.service.GetOptions(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "Ann Lee", resp[0].FullName)
	})

	t.Run("repository error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(employee.EmployeeOptionsKey).RedisNil()
		deps.repo.EXPECT().FindOptions(gomock.Any()).Return(nil, errors.New("db down"))

		_, err := deps.service.GetOptions(context.Background())
		assert.Error(t, err)
	})
}
