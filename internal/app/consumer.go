package app

import (
	"context"

	"go-hrms/internal/config"
	"go-hrms/internal/events"
	"go-hrms/internal/leave"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/messaging/kafka/consumer"
	"go-hrms/internal/onboarding"
	"go-hrms/internal/payroll"
	"go-hrms/internal/project"
	"go-hrms/internal/rbac"
	"go-hrms/internal/salary"
	"go-hrms/internal/shared/connection"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RunConsumer reads the lifecycle and payslip topics until ctx is cancelled.
func RunConsumer(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	gormDB, sqlDB, err := connectDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	// consumers act on behalf of the system, never a signed-in user
	guard := rbac.NewGuard(nil)

	leaveService := leave.NewService(sqlDB, leave.NewRepository(gormDB), guard, logger)
	onboardingService := onboarding.NewService(onboarding.NewRepository(gormDB), guard, logger)
	projectService := project.NewService(sqlDB, project.NewRepository(gormDB), guard, logger)
	payrollService := payroll.NewService(
		sqlDB,
		payroll.NewRepository(gormDB),
		salary.NewRepository(gormDB),
		kafka.NewOutboxRepository(sqlDB),
		guard,
		logger,
	)

	lifecycleReader := connection.NewKafkaReader(cfg.Kafka.Broker, cfg.Kafka.GroupID+"-employee-lifecycle", events.EmployeeLifecycleTopic)
	defer lifecycleReader.Close()
	payslipReader := connection.NewKafkaReader(cfg.Kafka.Broker, cfg.Kafka.GroupID+"-payslip", events.PayslipRequestedTopic)
	defer payslipReader.Close()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		consumer.ConsumeEmployeeLifecycle(gctx, lifecycleReader, consumer.LifecycleDeps{
			Leave:    leaveService,
			Tasks:    onboardingService,
			Projects: projectService,
		}, logger)
		return nil
	})
	g.Go(func() error {
		consumer.ConsumePayrollPayslipRequested(gctx, payslipReader, payrollService, logger)
		return nil
	})

	err = g.Wait()
	log.Info("consumer shutting down")
	return err
}
