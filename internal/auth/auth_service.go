package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	autherrors "go-hrms/internal/auth/errors"
	"go-hrms/internal/domain"
	"go-hrms/internal/employee"
	employeeerrors "go-hrms/internal/employee/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenConfig carries the signing secret and token lifetimes.
type TokenConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Provisioner creates the employee record behind a new account.
//
//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Provisioner interface {
	Provision(ctx context.Context, in employee.ProvisionInput) (employee.EmployeeResponse, error)
}

type Service interface {
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp AuthResponse, err error)

	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)

	Logout(ctx context.Context, refreshToken string) error

	GetMe(ctx context.Context, userID string) (*AuthResponse, error)

	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)

	CreateSuperuser(ctx context.Context, req RegisterRequest) (AuthResponse, error)

	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
}

type service struct {
	repo        Repository
	provisioner Provisioner
	tokens      TokenStore
	cfg         TokenConfig
	now         func() time.Time
	logger      *zap.Logger
}

func NewService(repo Repository, provisioner Provisioner, tokens TokenStore, cfg TokenConfig, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		repo:        repo,
		provisioner: provisioner,
		tokens:      tokens,
		cfg:         cfg,
		now:         time.Now,
		logger:      l,
	}
}

func (s *service) Login(ctx context.Context, email, password string) (string, string, AuthResponse, error) {
	acc, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("login lookup failed", zap.Error(err))
			return "", "", AuthResponse{}, err
		}
		s.logger.Warn("login unknown email", zap.String("email", email))
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("login wrong password", zap.String("user_id", acc.ID.String()))
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if !acc.IsActive {
		s.logger.Warn("login inactive account", zap.String("user_id", acc.ID.String()))
		return "", "", AuthResponse{}, autherrors.ErrAccountInactive
	}

	access, refresh, err := s.issuePair(acc)
	if err != nil {
		return "", "", AuthResponse{}, err
	}

	s.logger.Info("login success", zap.String("user_id", acc.ID.String()), zap.String("role", acc.RoleName))
	return access, refresh, mapToResponse(acc), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	claims, err := s.parse(refreshToken, TokenTypeRefresh)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	jti, _ := claims["jti"].(string)
	if jti == "" {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	// rotate: the presented token is single use
	claimed, err := s.tokens.Claim(ctx, jti, s.remaining(claims))
	if err != nil {
		s.logger.Error("claim refresh token failed", zap.Error(err))
		return "", "", AuthResponse{}, err
	}
	if !claimed {
		s.logger.Warn("refresh with revoked token", zap.String("jti", jti))
		return "", "", AuthResponse{}, autherrors.ErrRefreshTokenRevoked
	}

	userIDStr, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidUserID
	}

	acc, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrUserNotFound
	}
	if !acc.IsActive {
		return "", "", AuthResponse{}, autherrors.ErrAccountInactive
	}

	newAccess, newRefresh, err := s.issuePair(acc)
	if err != nil {
		return "", "", AuthResponse{}, err
	}

	return newAccess, newRefresh, mapToResponse(acc), nil
}

// Logout revokes the refresh token. Unparseable tokens are ignored since
// they can no longer be used anyway.
func (s *service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	claims, err := s.parse(refreshToken, TokenTypeRefresh)
	if err != nil {
		return nil
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return nil
	}
	if err := s.tokens.Revoke(ctx, jti, s.remaining(claims)); err != nil {
		s.logger.Error("logout revoke failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	acc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	resp := mapToResponse(acc)
	return &resp, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	return s.provision(ctx, req, domain.RoleEmployee)
}

// CreateSuperuser bootstraps the first Admin. It refuses once any Admin exists.
func (s *service) CreateSuperuser(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	var resp AuthResponse
	err := s.repo.WithBootstrapLock(ctx, func(ctx context.Context) error {
		admins, err := s.repo.CountByRole(ctx, domain.RoleAdmin)
		if err != nil {
			return err
		}
		if admins > 0 {
			s.logger.Warn("superuser already exists")
			return autherrors.ErrAdminAlreadyExists
		}
		resp, err = s.provision(ctx, req, domain.RoleAdmin)
		return err
	})
	if err != nil {
		return AuthResponse{}, err
	}
	return resp, nil
}

func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return autherrors.ErrInvalidUserID
	}

	acc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return autherrors.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return autherrors.ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, id, string(hashed)); err != nil {
		s.logger.Error("update password failed", zap.String("user_id", userID), zap.Error(err))
		return err
	}

	s.logger.Info("password changed", zap.String("user_id", userID))
	return nil
}

func (s *service) provision(ctx context.Context, req RegisterRequest, role string) (AuthResponse, error) {
	created, err := s.provisioner.Provision(ctx, employee.ProvisionInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		RoleName:    role,
	})
	if err != nil {
		if errors.Is(err, employeeerrors.ErrEmployeeAlreadyExists) {
			return AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
		}
		return AuthResponse{}, err
	}

	s.logger.Info("account registered", zap.String("user_id", created.ID), zap.String("role", role))
	return AuthResponse{
		ID:             created.ID,
		EmployeeNumber: created.EmployeeNumber,
		Email:          created.Email,
		FirstName:      created.FirstName,
		LastName:       created.LastName,
		Role:           role,
		DepartmentID:   created.DepartmentID,
		ManagerID:      created.ManagerID,
		Status:         created.Status,
	}, nil
}

func (s *service) issuePair(acc *Account) (string, string, error) {
	now := s.now()

	access, err := s.sign(jwt.MapClaims{
		"user_id": acc.ID.String(),
		"role":    acc.RoleName,
		"typ":     TokenTypeAccess,
		"iat":     now.Unix(),
		"exp":     now.Add(s.cfg.AccessTTL).Unix(),
	})
	if err != nil {
		return "", "", err
	}

	refresh, err := s.sign(jwt.MapClaims{
		"user_id": acc.ID.String(),
		"typ":     TokenTypeRefresh,
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     now.Add(s.cfg.RefreshTTL).Unix(),
	})
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

func (s *service) sign(claims jwt.MapClaims) (string, error) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		s.logger.Error("sign token failed", zap.Error(err))
		return "", autherrors.ErrTokenGenerationFailed
	}
	return token, nil
}

func (s *service) parse(tokenString, wantType string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, autherrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, autherrors.ErrInvalidToken
	}
	if typ, _ := claims["typ"].(string); typ != wantType {
		return nil, autherrors.ErrInvalidToken
	}
	return claims, nil
}

func (s *service) remaining(claims jwt.MapClaims) time.Duration {
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return s.cfg.RefreshTTL
	}
	return exp.Sub(s.now())
}

func mapToResponse(acc *Account) AuthResponse {
	resp := AuthResponse{
		ID:             acc.ID.String(),
		EmployeeNumber: acc.EmployeeNumber,
		Email:          acc.Email,
		FirstName:      acc.FirstName,
		LastName:       acc.LastName,
		Role:           acc.RoleName,
		Status:         acc.Status,
	}
	if acc.DepartmentID != nil {
		resp.DepartmentID = acc.DepartmentID.String()
	}
	if acc.ManagerID != nil {
		resp.ManagerID = acc.ManagerID.String()
	}
	return resp
}
