package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"go-hrms/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type PayslipGenerator interface {
	GenerateForPeriod(ctx context.Context, employeeID string, month, year int) error
}

// PayslipRequestedHandler generates one payslip per event. A payslip that
// already exists for the period counts as done.
func PayslipRequestedHandler(generator PayslipGenerator, logger *zap.Logger) HandleFunc {
	log := logger.Named("kafka.consumer.payroll_payslip")

	return func(ctx context.Context, msg kafkago.Message) error {
		var event events.PayslipRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return fmt.Errorf("%w: decode payslip event: %v", ErrSkip, err)
		}
		if event.EmployeeID == "" || event.Month < 1 || event.Month > 12 {
			return fmt.Errorf("%w: invalid payslip request for %q %d/%d", ErrSkip, event.EmployeeID, event.Month, event.Year)
		}

		fields := []zap.Field{
			zap.String("employee_id", event.EmployeeID),
			zap.Int("month", event.Month),
			zap.Int("year", event.Year),
			zap.String("requested_by", event.RequestedBy),
		}

		if err := generator.GenerateForPeriod(ctx, event.EmployeeID, event.Month, event.Year); err != nil {
			if isDuplicate(err) {
				log.Warn("payslip already generated, skipping", fields...)
				return nil
			}
			return fmt.Errorf("generate payslip: %w", err)
		}

		log.Info("payslip generated", fields...)
		return nil
	}
}

func ConsumePayrollPayslipRequested(ctx context.Context, reader MessageReader, generator PayslipGenerator, logger *zap.Logger) {
	Run(ctx, reader, PayslipRequestedHandler(generator, logger), logger.Named("kafka.consumer.payroll_payslip"))
}
