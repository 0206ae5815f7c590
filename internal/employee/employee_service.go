package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"go-hrms/internal/domain"
	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/rbac"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
)

const EmployeeOptionsKey = "employees:options"

const dateLayout = "2006-01-02"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Provision(ctx context.Context, in ProvisionInput) (EmployeeResponse, error)
	GetAll(ctx context.Context, actor domain.Actor, filter Filter) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	GetByID(ctx context.Context, actor domain.Actor, id string) (EmployeeResponse, error)
	GetTeam(ctx context.Context, actor domain.Actor, id string) ([]EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	guard   rbac.Guard
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	guard rbac.Guard,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		guard:   guard,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	in := ProvisionInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Password:     req.Password,
		PhoneNumber:  req.PhoneNumber,
		DepartmentID: req.DepartmentID,
		RoleID:       req.RoleID,
		ManagerID:    req.ManagerID,
	}
	if req.JoiningDate != "" {
		joined, err := time.Parse(dateLayout, req.JoiningDate)
		if err != nil {
			s.logger.Warn("create employee invalid joining_date", zap.String("joining_date", req.JoiningDate))
			return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
		}
		in.JoiningDate = &joined
	}
	return s.Provision(ctx, in)
}

// Provision validates references, numbers the employee, hashes the password
// and queues employee_created in one transaction.
func (s *service) Provision(ctx context.Context, in ProvisionInput) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	s.logger.Debug("provision employee requested",
		zap.String("request_id", rid),
		zap.String("email", email),
		zap.String("department_id", in.DepartmentID),
		zap.String("manager_id", in.ManagerID),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("provision employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	taken, err := qtx.EmailTaken(ctx, email, "")
	if err != nil {
		return EmployeeResponse{}, err
	}
	if taken {
		s.logger.Warn("provision employee email taken", zap.String("email", email))
		return EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists
	}

	roleID := in.RoleID
	if roleID == "" {
		name := in.RoleName
		if name == "" {
			name = domain.RoleEmployee
		}
		if roleID, err = qtx.RoleIDByName(ctx, name); err != nil {
			return EmployeeResponse{}, err
		}
		if roleID == "" {
			return EmployeeResponse{}, employeeerrors.ErrRoleNotFound
		}
	}

	empl := &Employee{
		ID:          uuid.New(),
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		Email:       email,
		PhoneNumber: in.PhoneNumber,
		RoleID:      uuidPtr(roleID),
		Status:      StatusActive,
		IsActive:    true,
		JoiningDate: time.Now().UTC().Truncate(24 * time.Hour),
	}
	if in.JoiningDate != nil {
		empl.JoiningDate = *in.JoiningDate
	}

	if err := s.applyReferences(ctx, qtx, empl, &in.DepartmentID, &roleID, &in.ManagerID); err != nil {
		return EmployeeResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("provision employee hash password failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	empl.PasswordHash = string(hashed)

	nextVal, err := s.counter.WithTx(tx).GetNextValue(ctx, counter.TypeEmployeeNumber)
	if err != nil {
		s.logger.Error("provision employee generate number failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	empl.EmployeeNumber = counter.EmployeeNumber(nextVal)

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("provision employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueLifecycle(ctx, tx, events.EventEmployeeCreated, empl); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("provision employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("provision employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_number", empl.EmployeeNumber),
	)

	created, err := s.repo.FindByID(ctx, empl.ID.String())
	if err != nil {
		return mapToResponse(*empl), nil
	}
	return mapToResponse(*created), nil
}

func (s *service) GetAll(ctx context.Context, actor domain.Actor, filter Filter) ([]EmployeeResponse, error) {
	switch {
	case actor.IsPrivileged():
	case actor.IsManager():
		filter.ManagerID = actor.ID
	default:
		filter.SelfID = actor.ID
	}

	s.logger.Debug("get all employees requested",
		zap.String("actor_id", actor.ID),
		zap.String("role", actor.Role),
		zap.String("name", filter.Name),
	)
	empls, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// one database hit per burst of cache misses
	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		empls, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOption, len(empls))
		for i, e := range empls {
			resp[i] = EmployeeOption{
				ID:             e.ID.String(),
				EmployeeNumber: e.EmployeeNumber,
				FullName:       e.FullName(),
			}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, time.Hour).Err(); err != nil {
					s.logger.Warn("cache employee options failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOption), nil
}

func (s *service) GetByID(ctx context.Context, actor domain.Actor, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	if err := s.guard.Authorize(ctx, actor, id, rbac.TeamView); err != nil {
		return EmployeeResponse{}, err
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) GetTeam(ctx context.Context, actor domain.Actor, id string) ([]EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}
	if err := s.guard.Authorize(ctx, actor, id, rbac.TeamView); err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, mapRepositoryError(err)
	}

	team, err := s.repo.FindTeam(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(team), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		taken, err := qtx.EmailTaken(ctx, email, id)
		if err != nil {
			return EmployeeResponse{}, err
		}
		if taken {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists
		}
		empl.Email = email
	}
	if req.FirstName != nil {
		empl.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		empl.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.PhoneNumber != nil {
		empl.PhoneNumber = *req.PhoneNumber
	}
	if req.JoiningDate != nil {
		joined, err := time.Parse(dateLayout, *req.JoiningDate)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
		}
		empl.JoiningDate = joined
	}
	if req.Status != nil {
		empl.Status = *req.Status
		empl.IsActive = *req.Status != StatusInactive
	}

	if err := s.applyReferences(ctx, qtx, empl, req.DepartmentID, req.RoleID, req.ManagerID); err != nil {
		return EmployeeResponse{}, err
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("update employee success", zap.String("employee_id", id))

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapToResponse(*empl), nil
	}
	return mapToResponse(*updated), nil
}

// Delete deactivates the employee. Rows are kept for history.
func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if !empl.IsActive {
		s.logger.Warn("delete employee already inactive", zap.String("employee_id", id))
		return employeeerrors.ErrEmployeeNotFound
	}

	empl.IsActive = false
	empl.Status = StatusInactive
	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.enqueueLifecycle(ctx, tx, events.EventEmployeeDeactivated, empl); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

// applyReferences validates and sets department, role and manager. A nil
// pointer leaves the field unchanged and an empty string clears it.
func (s *service) applyReferences(ctx context.Context, repo Repository, empl *Employee, departmentID, roleID, managerID *string) error {
	if departmentID != nil {
		if *departmentID == "" {
			empl.DepartmentID = nil
		} else {
			ok, err := repo.DepartmentExists(ctx, *departmentID)
			if err != nil {
				return err
			}
			if !ok {
				return employeeerrors.ErrDepartmentNotFound
			}
			empl.DepartmentID = uuidPtr(*departmentID)
		}
	}

	if roleID != nil && *roleID != "" {
		ok, err := repo.RoleExists(ctx, *roleID)
		if err != nil {
			return err
		}
		if !ok {
			return employeeerrors.ErrRoleNotFound
		}
		empl.RoleID = uuidPtr(*roleID)
	}

	if managerID != nil {
		if *managerID == "" {
			empl.ManagerID = nil
			return nil
		}
		if *managerID == empl.ID.String() {
			return employeeerrors.ErrSelfManager
		}
		manager, err := repo.FindByID(ctx, *managerID)
		if err != nil {
			if mapped := mapRepositoryError(err); mapped == employeeerrors.ErrEmployeeNotFound {
				return employeeerrors.ErrManagerNotFound
			}
			return err
		}
		if !manager.IsActive {
			return employeeerrors.ErrManagerInactive
		}
		empl.ManagerID = &manager.ID
	}
	return nil
}

func (s *service) enqueueLifecycle(ctx context.Context, tx *sql.Tx, eventType string, empl *Employee) error {
	if s.outbox == nil {
		return nil
	}
	rid := contextutil.GetRequestID(ctx)

	event := events.EmployeeLifecycleEvent{
		EventType:    eventType,
		RequestID:    rid,
		EmployeeID:   empl.ID.String(),
		DepartmentID: uuidToString(empl.DepartmentID),
		RoleID:       uuidToString(empl.RoleID),
		OccurredAt:   time.Now().UTC(),
	}
	row, err := kafka.NewOutboxEvent(events.EmployeeLifecycleTopic, events.AggregateEmployee, event.EmployeeID, eventType, rid, event)
	if err != nil {
		s.logger.Error("build lifecycle event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, row); err != nil {
		s.logger.Error("lifecycle outbox persist failed",
			zap.String("employee_id", event.EmployeeID),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             empl.ID.String(),
		EmployeeNumber: empl.EmployeeNumber,
		FirstName:      empl.FirstName,
		LastName:       empl.LastName,
		FullName:       empl.FullName(),
		Email:          empl.Email,
		PhoneNumber:    empl.PhoneNumber,
		DepartmentID:   uuidToString(empl.DepartmentID),
		RoleID:         uuidToString(empl.RoleID),
		ManagerID:      uuidToString(empl.ManagerID),
		JoiningDate:    empl.JoiningDate.Format(dateLayout),
		Status:         empl.Status,
		IsActive:       empl.IsActive,
	}
	if empl.Department != nil {
		resp.Department = &RefResponse{ID: empl.Department.ID.String(), Name: empl.Department.Name}
	}
	if empl.Role != nil {
		resp.Role = &RefResponse{ID: empl.Role.ID.String(), Name: empl.Role.Name}
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

func uuidPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}
