package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-hrms/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type LeaveBalanceInitializer interface {
	InitializeBalances(ctx context.Context, employeeID string, year int) (int, error)
}

type TaskAssigner interface {
	AssignTemplates(ctx context.Context, employeeID, kind string) (int, error)
}

type AssignmentCloser interface {
	CloseAllForEmployee(ctx context.Context, employeeID string) (int, error)
}

type LifecycleDeps struct {
	Leave    LeaveBalanceInitializer
	Tasks    TaskAssigner
	Projects AssignmentCloser
	Now      func() time.Time
}

// EmployeeLifecycleHandler reacts to employee_created and employee_deactivated.
// Every step is idempotent so a redelivered message is harmless.
func EmployeeLifecycleHandler(deps LifecycleDeps, logger *zap.Logger) HandleFunc {
	now := deps.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	log := logger.Named("kafka.consumer.employee_lifecycle")

	return func(ctx context.Context, msg kafkago.Message) error {
		var event events.EmployeeLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return fmt.Errorf("%w: decode lifecycle event: %v", ErrSkip, err)
		}
		if event.EventType == "" {
			event.EventType = header(msg, "event_type")
		}
		if event.EmployeeID == "" {
			return fmt.Errorf("%w: lifecycle event without employee_id", ErrSkip)
		}

		fields := []zap.Field{
			zap.String("employee_id", event.EmployeeID),
			zap.String("event_type", event.EventType),
			zap.String("request_id", event.RequestID),
		}

		switch event.EventType {
		case events.EventEmployeeCreated:
			created, err := deps.Leave.InitializeBalances(ctx, event.EmployeeID, now().Year())
			if err != nil {
				return fmt.Errorf("initialize leave balances: %w", err)
			}
			assigned, err := deps.Tasks.AssignTemplates(ctx, event.EmployeeID, "onboarding")
			if err != nil {
				return fmt.Errorf("assign onboarding tasks: %w", err)
			}
			log.Info("employee onboarded", append(fields,
				zap.Int("leave_balances", created),
				zap.Int("onboarding_tasks", assigned),
			)...)

		case events.EventEmployeeDeactivated:
			assigned, err := deps.Tasks.AssignTemplates(ctx, event.EmployeeID, "offboarding")
			if err != nil {
				return fmt.Errorf("assign offboarding tasks: %w", err)
			}
			closed, err := deps.Projects.CloseAllForEmployee(ctx, event.EmployeeID)
			if err != nil {
				return fmt.Errorf("close project assignments: %w", err)
			}
			log.Info("employee offboarded", append(fields,
				zap.Int("offboarding_tasks", assigned),
				zap.Int("closed_assignments", closed),
			)...)

		default:
			return fmt.Errorf("%w: unknown event type %q", ErrSkip, event.EventType)
		}

		return nil
	}
}

// ConsumeEmployeeLifecycle runs the lifecycle handler on reader.
func ConsumeEmployeeLifecycle(ctx context.Context, reader MessageReader, deps LifecycleDeps, logger *zap.Logger) {
	Run(ctx, reader, EmployeeLifecycleHandler(deps, logger), logger.Named("kafka.consumer.employee_lifecycle"))
}

var _ MessageReader = (*kafkago.Reader)(nil)
