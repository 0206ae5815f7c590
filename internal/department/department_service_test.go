package department_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-hrms/internal/department"
	departmenterrors "go-hrms/internal/department/errors"
	departmentMock "go-hrms/internal/department/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   department.Service
	repo      *departmentMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := departmentMock.NewMockRepository(ctrl)

	svc := department.NewService(db, repo, dbRedis)

	t.Cleanup(func() { db.Close() })

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		redismock: redisMock,
	}
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

func TestDepartmentService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit", func(t *testing.T) {
		deps := setupServiceTest(t)
		expected := []department.DepartmentResponse{{ID: "d-1", Name: "HR"}, {ID: "d-2", Name: "IT"}}
		jsonResp, _ := json.Marshal(expected)
		deps.redismock.ExpectGet(department.DepartmentsCacheKey).SetVal(string(jsonResp))

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(department.DepartmentsCacheKey).RedisNil()
		id := uuid.New()
		depts := []department.Department{{ID: id, Name: "Engineering"}}
		deps.repo.EXPECT().FindAll(ctx).Return(depts, nil)
		expected, _ := json.Marshal([]department.DepartmentResponse{{
			ID:        id.String(),
			Name:      "Engineering",
			CreatedAt: time.Time{}.Format(time.RFC3339),
			UpdatedAt: time.Time{}.Format(time.RFC3339),
		}})
		deps.redismock.ExpectSet(department.DepartmentsCacheKey, expected, time.Hour).SetVal("OK")

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Engineering", resp[0].Name)
	})
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.redismock.ExpectDel(department.DepartmentsCacheKey).SetVal(1)

		resp, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: " Finance "})

		assert.NoError(t, err)
		assert.Equal(t, "Finance", resp.Name)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate name", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_departments_name"})

		_, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: "Finance"})

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentAlreadyExists)
	})
}

func TestDepartmentService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("partial update keeps description", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(&department.Department{ID: id, Name: "IT", Description: "tech"}, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.redismock.ExpectDel(department.DepartmentsCacheKey).SetVal(1)

		name := "Engineering"
		resp, err := deps.service.Update(ctx, id.String(), department.UpdateDepartmentRequest{Name: &name})

		assert.NoError(t, err)
		assert.Equal(t, "Engineering", resp.Name)
		assert.Equal(t, "tech", resp.Description)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, id.String(), department.UpdateDepartmentRequest{})

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Update(ctx, "bad", department.UpdateDepartmentRequest{})

		assert.ErrorIs(t, err, departmenterrors.ErrInvalidDepartmentID)
	})
}

func TestDepartmentService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("refused while employees assigned", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CountActiveEmployees(ctx, id).Return(int64(3), nil)

		err := deps.service.Delete(ctx, id.String())

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentHasEmployees)
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CountActiveEmployees(ctx, id).Return(int64(0), nil)
		deps.repo.EXPECT().Delete(ctx, id).Return(nil)
		deps.redismock.ExpectDel(department.DepartmentsCacheKey).SetVal(1)

		assert.NoError(t, deps.service.Delete(ctx, id.String()))
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CountActiveEmployees(ctx, id).Return(int64(0), nil)
		deps.repo.EXPECT().Delete(ctx, id).Return(gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, id.String())

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})
}

func TestDepartmentService_Members(t *testing.T) {
	ctx := context.Background()
	deptID := uuid.New()
	empID := uuid.New()

	t.Run("add employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, deptID).Return(&department.Department{ID: deptID}, nil)
		deps.repo.EXPECT().FindMember(ctx, empID).Return(&department.Member{ID: empID, FirstName: "Ana", LastName: "Putri"}, nil)
		deps.repo.EXPECT().SetMemberDepartment(ctx, empID, &deptID).Return(nil)

		resp, err := deps.service.AddEmployee(ctx, deptID.String(), department.AssignEmployeeRequest{UserID: empID.String()})

		assert.NoError(t, err)
		assert.Equal(t, "Ana Putri", resp.FullName)
	})

	t.Run("add unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, deptID).Return(&department.Department{ID: deptID}, nil)
		deps.repo.EXPECT().FindMember(ctx, empID).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.AddEmployee(ctx, deptID.String(), department.AssignEmployeeRequest{UserID: empID.String()})

		assert.ErrorIs(t, err, departmenterrors.ErrEmployeeNotFound)
	})

	t.Run("remove employee from another department", func(t *testing.T) {
		deps := setupServiceTest(t)
		other := uuid.New()
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindMember(ctx, empID).Return(&department.Member{ID: empID, DepartmentID: &other}, nil)

		err := deps.service.RemoveEmployee(ctx, deptID.String(), empID.String())

		assert.ErrorIs(t, err, departmenterrors.ErrEmployeeNotInDepartment)
	})

	t.Run("remove employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindMember(ctx, empID).Return(&department.Member{ID: empID, DepartmentID: &deptID}, nil)
		deps.repo.EXPECT().SetMemberDepartment(ctx, empID, nil).Return(nil)

		assert.NoError(t, deps.service.RemoveEmployee(ctx, deptID.String(), empID.String()))
	})

	t.Run("list employees", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, deptID).Return(&department.Department{ID: deptID}, nil)
		deps.repo.EXPECT().FindMembers(ctx, deptID).Return([]department.Member{{ID: empID, Email: "ana@example.com"}}, nil)

		resp, err := deps.service.GetEmployees(ctx, deptID.String())

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})
}
