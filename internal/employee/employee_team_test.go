package employee_test

import (
	"context"
	"testing"

	"go-hrms/internal/employee"
	employeeMock "go-hrms/internal/employee/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestTeamResolver(t *testing.T) {
	ctx := context.Background()
	managerID := uuid.New()
	empID := uuid.NewString()

	t.Run("direct report", func(t *testing.T) {
		repo := employeeMock.NewMockRepository(gomock.NewController(t))
		repo.EXPECT().FindByID(ctx, empID).Return(&employee.Employee{ManagerID: &managerID}, nil)

		ok, err := employee.NewTeamResolver(repo).IsManagerOf(ctx, managerID.String(), empID)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("someone else's report", func(t *testing.T) {
		repo := employeeMock.NewMockRepository(gomock.NewController(t))
		other := uuid.New()
		repo.EXPECT().FindByID(ctx, empID).Return(&employee.Employee{ManagerID: &other}, nil)

		ok, err := employee.NewTeamResolver(repo).IsManagerOf(ctx, managerID.String(), empID)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown employee", func(t *testing.T) {
		repo := employeeMock.NewMockRepository(gomock.NewController(t))
		repo.EXPECT().FindByID(ctx, empID).Return(nil, gorm.ErrRecordNotFound)

		ok, err := employee.NewTeamResolver(repo).IsManagerOf(ctx, managerID.String(), empID)

		require.NoError(t, err)
		assert.False(t, ok)
	})
}
