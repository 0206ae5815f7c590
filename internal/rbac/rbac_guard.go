package rbac

import (
	"context"

	"go-hrms/internal/domain"
	"go-hrms/internal/shared/apperror"
)

// Rule describes who may act on records owned by an employee.
// Any matching clause grants access.
type Rule struct {
	Self      bool     // the actor is the owner
	Roles     []string // the actor holds one of these roles
	ManagerOf bool     // the actor is the owner's direct manager
}

var (
	// TeamView: self, any Manager/HR/Admin, or the direct manager.
	TeamView = Rule{Self: true, Roles: []string{domain.RoleManager, domain.RoleHR, domain.RoleAdmin}, ManagerOf: true}
	// SelfOrHR: self or HR/Admin.
	SelfOrHR = Rule{Self: true, Roles: []string{domain.RoleHR, domain.RoleAdmin}}
	// SelfOrManager: self or any Manager/HR/Admin.
	SelfOrManager = Rule{Self: true, Roles: []string{domain.RoleManager, domain.RoleHR, domain.RoleAdmin}}
	// TeamApprover: HR/Admin, or the direct manager. A Manager acts on their team only.
	TeamApprover = Rule{Roles: []string{domain.RoleHR, domain.RoleAdmin}, ManagerOf: true}
	// SelfHROrManagerOf: self, HR/Admin, or the direct manager.
	SelfHROrManagerOf = Rule{Self: true, Roles: []string{domain.RoleHR, domain.RoleAdmin}, ManagerOf: true}
	// HROnly: HR/Admin.
	HROnly = Rule{Roles: []string{domain.RoleHR, domain.RoleAdmin}}
)

type TeamResolver interface {
	IsManagerOf(ctx context.Context, managerID, employeeID string) (bool, error)
}

// TeamResolverFunc adapts a function to TeamResolver.
type TeamResolverFunc func(ctx context.Context, managerID, employeeID string) (bool, error)

func (f TeamResolverFunc) IsManagerOf(ctx context.Context, managerID, employeeID string) (bool, error) {
	return f(ctx, managerID, employeeID)
}

//go:generate mockgen -source=rbac_guard.go -destination=mock/rbac_guard_mock.go -package=mock
type Guard interface {
	Authorize(ctx context.Context, actor domain.Actor, ownerID string, rule Rule) error
}

type guard struct {
	team TeamResolver
}

func NewGuard(team TeamResolver) Guard {
	return &guard{team: team}
}

func (g *guard) Authorize(ctx context.Context, actor domain.Actor, ownerID string, rule Rule) error {
	if actor.ID == "" {
		return apperror.ErrUnauthorized
	}
	if rule.Self && actor.ID == ownerID {
		return nil
	}
	if actor.HasRole(rule.Roles...) {
		return nil
	}
	if rule.ManagerOf && ownerID != "" && g.team != nil {
		ok, err := g.team.IsManagerOf(ctx, actor.ID, ownerID)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}
	return apperror.ErrForbidden
}
