package events

import "time"

const PayslipRequestedTopic = "hr.payroll.payslip.requested.v1"

const EventPayslipRequested = "payslip_requested"

const AggregatePayslip = "payslip"

type PayslipRequestedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	EmployeeID  string    `json:"employee_id"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
