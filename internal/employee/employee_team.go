package employee

import (
	"context"
	"errors"

	"go-hrms/internal/rbac"

	"gorm.io/gorm"
)

// NewTeamResolver answers "is managerID the direct manager of employeeID"
// from the employees table.
func NewTeamResolver(repo Repository) rbac.TeamResolver {
	return rbac.TeamResolverFunc(func(ctx context.Context, managerID, employeeID string) (bool, error) {
		if managerID == "" || managerID == employeeID {
			return false, nil
		}
		empl, err := repo.FindByID(ctx, employeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, err
		}
		return empl.ManagerID != nil && empl.ManagerID.String() == managerID, nil
	})
}
