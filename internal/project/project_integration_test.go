//go:build integration

package project_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-hrms/internal/domain"
	"go-hrms/internal/project"
	projecterrors "go-hrms/internal/project/errors"
	"go-hrms/internal/rbac"
	"go-hrms/internal/shared/connection"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func startPostgres(t *testing.T) (*gorm.DB, *sql.DB) {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		postgres.WithDatabase("hrms_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)

	require.NoError(t, connection.RunMigrations(sqlDB, zap.NewNop()))
	return gormDB, sqlDB
}

func insertEmployee(t *testing.T, db *sql.DB) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(
		`INSERT INTO employees (id, employee_number, first_name, last_name, email, password_hash)
		 VALUES ($1, $2, 'Ana', 'Putri', $3, 'x')`,
		id, "EMP-"+id.String()[:6], id.String()+"@example.com",
	)
	require.NoError(t, err)
	return id
}

func TestProjectAssignments_Postgres(t *testing.T) {
	gormDB, sqlDB := startPostgres(t)
	ctx := context.Background()

	repo := project.NewRepository(gormDB)
	svc := project.NewService(sqlDB, repo, rbac.NewGuard(nil))
	actor := domain.Actor{ID: insertEmployee(t, sqlDB).String(), Role: domain.RoleManager}
	empID := insertEmployee(t, sqlDB)

	alpha, err := svc.Create(ctx, project.CreateProjectRequest{Name: "Alpha"})
	require.NoError(t, err)
	beta, err := svc.Create(ctx, project.CreateProjectRequest{Name: "Beta"})
	require.NoError(t, err)

	_, err = svc.Assign(ctx, actor, empID.String(), project.AssignProjectRequest{
		ProjectID:            alpha.ID,
		AllocationPercentage: ptr(60),
	})
	require.NoError(t, err)

	_, err = svc.Assign(ctx, actor, empID.String(), project.AssignProjectRequest{ProjectID: alpha.ID})
	assert.ErrorIs(t, err, projecterrors.ErrAlreadyAssigned)

	_, err = svc.Assign(ctx, actor, empID.String(), project.AssignProjectRequest{
		ProjectID:            beta.ID,
		AllocationPercentage: ptr(50),
	})
	assert.ErrorIs(t, err, projecterrors.ErrOverAllocated)

	_, err = svc.Assign(ctx, actor, empID.String(), project.AssignProjectRequest{
		ProjectID:            beta.ID,
		AllocationPercentage: ptr(40),
	})
	require.NoError(t, err)

	used, err := repo.ActiveAllocation(ctx, empID, nil)
	require.NoError(t, err)
	assert.Equal(t, 100, used)

	closed, err := svc.CloseAllForEmployee(ctx, empID.String())
	require.NoError(t, err)
	assert.Equal(t, 2, closed)

	active, err := svc.ListAssignments(ctx, actor, empID.String())
	require.NoError(t, err)
	assert.Empty(t, active)
}
