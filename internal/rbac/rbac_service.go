package rbac

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go-hrms/internal/domain"
	rbacerrors "go-hrms/internal/rbac/errors"

	"github.com/casbin/casbin/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy(ctx context.Context) error
	Enforce(req domain.EnforceRequest) (bool, error)

	ListRoles(ctx context.Context) ([]RoleResponse, error)
	GetRole(ctx context.Context, id string) (RoleResponse, error)
	CreateRole(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (RoleResponse, error)
	DeleteRole(ctx context.Context, id string) error
	ListPermissions(ctx context.Context) ([]PermissionResponse, error)
	SetRolePermissions(ctx context.Context, id string, req SetRolePermissionsRequest) (RoleResponse, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

// LoadPolicy rebuilds the in-memory policy from the database.
func (s *service) LoadPolicy(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadPolicyUnlocked(ctx)
}

func (s *service) loadPolicyUnlocked(ctx context.Context) error {
	s.enforcer.ClearPolicy()

	inheritance, err := s.repo.GetRoleInheritance(ctx)
	if err != nil {
		return err
	}
	for _, ri := range inheritance {
		// child role inherits everything granted to its parent
		if _, err := s.enforcer.AddGroupingPolicy(ri.RoleName, ri.ParentName); err != nil {
			return err
		}
	}

	rolePerms, err := s.repo.GetRolePermissions(ctx)
	if err != nil {
		return err
	}
	for _, rp := range rolePerms {
		if _, err := s.enforcer.AddPolicy(rp.RoleName, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	s.logger.Info("rbac policy loaded",
		zap.Int("inheritance", len(inheritance)),
		zap.Int("role_permissions", len(rolePerms)),
	)
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) ListRoles(ctx context.Context) ([]RoleResponse, error) {
	roles, err := s.repo.ListRoles(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]RoleResponse, 0, len(roles))
	for _, r := range roles {
		perms, err := s.repo.GetPermissionsByRoleID(ctx, r.ID.String())
		if err != nil {
			return nil, err
		}
		res = append(res, mapRoleToResponse(r, perms))
	}
	return res, nil
}

func (s *service) GetRole(ctx context.Context, id string) (RoleResponse, error) {
	role, err := s.repo.GetRoleByID(ctx, id)
	if err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}
	perms, err := s.repo.GetPermissionsByRoleID(ctx, id)
	if err != nil {
		return RoleResponse{}, err
	}
	return mapRoleToResponse(*role, perms), nil
}

func (s *service) CreateRole(ctx context.Context, req CreateRoleRequest) (RoleResponse, error) {
	s.logger.Debug("create role requested", zap.String("name", req.Name))

	role := &Role{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}

	if req.ParentID != "" {
		parent, err := s.repo.GetRoleByID(ctx, req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return RoleResponse{}, rbacerrors.ErrParentRoleNotFound
			}
			return RoleResponse{}, err
		}
		role.ParentID = &parent.ID
	}

	if err := s.repo.CreateRole(ctx, role); err != nil {
		s.logger.Warn("create role failed", zap.String("name", role.Name), zap.Error(err))
		return RoleResponse{}, mapRepositoryError(err)
	}

	if len(req.Permissions) > 0 {
		if _, err := s.SetRolePermissions(ctx, role.ID.String(), SetRolePermissionsRequest{Permissions: req.Permissions}); err != nil {
			return RoleResponse{}, err
		}
	} else if err := s.LoadPolicy(ctx); err != nil {
		return RoleResponse{}, err
	}

	s.logger.Info("create role success", zap.String("role_id", role.ID.String()))
	return s.GetRole(ctx, role.ID.String())
}

func (s *service) UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (RoleResponse, error) {
	role, err := s.repo.GetRoleByID(ctx, id)
	if err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name != role.Name && domain.IsBuiltinRole(role.Name) {
			return RoleResponse{}, rbacerrors.ErrBuiltinRole
		}
		role.Name = name
	}
	if req.Description != nil {
		role.Description = *req.Description
	}
	if req.ParentID != nil {
		if *req.ParentID == "" {
			role.ParentID = nil
		} else {
			if *req.ParentID == id {
				return RoleResponse{}, rbacerrors.ErrParentRoleNotFound
			}
			parent, err := s.repo.GetRoleByID(ctx, *req.ParentID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return RoleResponse{}, rbacerrors.ErrParentRoleNotFound
				}
				return RoleResponse{}, err
			}
			role.ParentID = &parent.ID
		}
	}

	if err := s.repo.UpdateRole(ctx, role); err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}
	if err := s.LoadPolicy(ctx); err != nil {
		return RoleResponse{}, err
	}

	s.logger.Info("update role success", zap.String("role_id", id))
	return s.GetRole(ctx, id)
}

func (s *service) DeleteRole(ctx context.Context, id string) error {
	role, err := s.repo.GetRoleByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if domain.IsBuiltinRole(role.Name) {
		s.logger.Warn("delete built-in role refused", zap.String("role", role.Name))
		return rbacerrors.ErrBuiltinRole
	}

	inUse, err := s.repo.CountEmployeesWithRole(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return rbacerrors.ErrRoleInUse
	}

	if err := s.repo.DeleteRole(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("delete role success", zap.String("role_id", id))
	return s.LoadPolicy(ctx)
}

func (s *service) ListPermissions(ctx context.Context) ([]PermissionResponse, error) {
	perms, err := s.repo.ListPermissions(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]PermissionResponse, len(perms))
	for i, p := range perms {
		res[i] = mapPermissionToResponse(p)
	}
	return res, nil
}

func (s *service) SetRolePermissions(ctx context.Context, id string, req SetRolePermissionsRequest) (RoleResponse, error) {
	if _, err := s.repo.GetRoleByID(ctx, id); err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}

	all, err := s.repo.ListPermissions(ctx)
	if err != nil {
		return RoleResponse{}, err
	}
	byRef := make(map[string]string, len(all)*2)
	for _, p := range all {
		byRef[p.ID.String()] = p.ID.String()
		byRef[p.Key()] = p.ID.String()
	}

	seen := make(map[string]bool, len(req.Permissions))
	permIDs := make([]string, 0, len(req.Permissions))
	for _, ref := range req.Permissions {
		pid, ok := byRef[strings.TrimSpace(ref)]
		if !ok {
			return RoleResponse{}, rbacerrors.ErrUnknownPermission.WithDetails(map[string]string{"permission": ref})
		}
		if seen[pid] {
			continue
		}
		seen[pid] = true
		permIDs = append(permIDs, pid)
	}

	if err := s.repo.UpdateRolePermissions(ctx, id, permIDs); err != nil {
		return RoleResponse{}, err
	}
	if err := s.LoadPolicy(ctx); err != nil {
		return RoleResponse{}, err
	}

	s.logger.Info("role permissions replaced", zap.String("role_id", id), zap.Int("count", len(permIDs)))
	return s.GetRole(ctx, id)
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rbacerrors.ErrRoleNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return rbacerrors.ErrRoleAlreadyExists
	}
	return err
}

func mapRoleToResponse(role Role, perms []Permission) RoleResponse {
	resp := RoleResponse{
		ID:          role.ID.String(),
		Name:        role.Name,
		Description: role.Description,
		Permissions: make([]string, len(perms)),
	}
	if role.ParentID != nil {
		resp.ParentID = role.ParentID.String()
	}
	for i, p := range perms {
		resp.Permissions[i] = p.Key()
	}
	return resp
}

func mapPermissionToResponse(p Permission) PermissionResponse {
	return PermissionResponse{
		ID:       p.ID.String(),
		Resource: p.Resource,
		Action:   p.Action,
		Label:    p.Label,
		Category: p.Category,
	}
}
