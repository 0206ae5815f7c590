package app

import (
	"context"

	"go-hrms/internal/attendance"
	"go-hrms/internal/auth"
	"go-hrms/internal/benefit"
	"go-hrms/internal/certification"
	"go-hrms/internal/config"
	"go-hrms/internal/course"
	"go-hrms/internal/department"
	"go-hrms/internal/employee"
	"go-hrms/internal/leave"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/middleware"
	"go-hrms/internal/onboarding"
	"go-hrms/internal/payroll"
	"go-hrms/internal/performance"
	"go-hrms/internal/policy"
	"go-hrms/internal/project"
	"go-hrms/internal/rbac"
	"go-hrms/internal/rbac/infra"
	"go-hrms/internal/salary"
	"go-hrms/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(router *gin.Engine, cfg *config.Config, infr *Infra, logger *zap.Logger) error {
	db, gormDB, rdb := infr.SQLDB, infr.GormDB, infr.Redis

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	benefitRepo := benefit.NewRepository(gormDB)
	certificationRepo := certification.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	courseRepo := course.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	onboardingRepo := onboarding.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	performanceRepo := performance.NewRepository(gormDB)
	policyRepo := policy.NewRepository(gormDB)
	projectRepo := project.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)
	if err := rbacService.LoadPolicy(context.Background()); err != nil {
		return err
	}
	guard := rbac.NewGuard(employee.NewTeamResolver(employeeRepo))

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo, counterRepo, outboxRepo, guard, rdb, logger)
	authService := auth.NewService(authRepo, employeeService, auth.NewRedisTokenStore(rdb), auth.TokenConfig{
		Secret:     cfg.Auth.JWTSecret,
		AccessTTL:  cfg.Auth.AccessTokenTTL,
		RefreshTTL: cfg.Auth.RefreshTokenTTL,
	}, logger)
	attendanceService := attendance.NewService(attendanceRepo, guard, rbacService, logger)
	benefitService := benefit.NewService(benefitRepo, guard, logger)
	certificationService := certification.NewService(certificationRepo, guard, logger)
	courseService := course.NewService(courseRepo, guard, logger)
	departmentService := department.NewService(db, departmentRepo, rdb, logger)
	leaveService := leave.NewService(db, leaveRepo, guard, logger)
	onboardingService := onboarding.NewService(onboardingRepo, guard, logger)
	payrollService := payroll.NewService(db, payrollRepo, salaryRepo, outboxRepo, guard, logger)
	performanceService := performance.NewService(performanceRepo, guard, logger)
	policyService := policy.NewService(policyRepo, guard, logger)
	projectService := project.NewService(db, projectRepo, guard, logger)
	salaryService := salary.NewService(db, salaryRepo, guard, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, auth.CookieConfig{
		Secure:     cfg.Auth.CookieSecure,
		AccessTTL:  cfg.Auth.AccessTokenTTL,
		RefreshTTL: cfg.Auth.RefreshTokenTTL,
	}, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	benefitHandler := benefit.NewHandler(benefitService, logger)
	certificationHandler := certification.NewHandler(certificationService, logger)
	courseHandler := course.NewHandler(courseService, logger)
	departmentHandler := department.NewHandler(departmentService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	onboardingHandler := onboarding.NewHandler(onboardingService, logger)
	payrollHandler := payroll.NewHandler(payrollService, logger)
	performanceHandler := performance.NewHandler(performanceService, logger)
	policyHandler := policy.NewHandler(policyService, logger)
	projectHandler := project.NewHandler(projectService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)
	salaryHandler := salary.NewHandler(salaryService, logger)

	router.GET("/health", healthHandler(db, rdb))

	authMiddleware := middleware.AuthMiddleware(cfg.Auth.JWTSecret)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	auth.RegisterRoutes(api, authHandler, authMiddleware)

	protected := api.Group("", authMiddleware)
	{
		attendance.RegisterRoutes(protected, attendanceHandler, rbacService)
		benefit.RegisterRoutes(protected, benefitHandler, rbacService)
		certification.RegisterRoutes(protected, certificationHandler, rbacService)
		course.RegisterRoutes(protected, courseHandler, rbacService)
		department.RegisterRoutes(protected, departmentHandler, rbacService)
		employee.RegisterRoutes(protected, employeeHandler, rbacService)
		leave.RegisterRoutes(protected, leaveHandler, rbacService)
		onboarding.RegisterRoutes(protected, onboardingHandler, rbacService)
		payroll.RegisterRoutes(protected, payrollHandler, rbacService, rdb)
		performance.RegisterRoutes(protected, performanceHandler, rbacService)
		policy.RegisterRoutes(protected, policyHandler, rbacService)
		project.RegisterRoutes(protected, projectHandler, rbacService)
		rbac.RegisterRoutes(protected, rbacHandler, rbacService)
		salary.RegisterRoutes(protected, salaryHandler, rbacService)
	}

	return nil
}
