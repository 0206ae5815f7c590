package attendance

type MarkAttendanceRequest struct {
	Status    string  `json:"status" binding:"required,oneof=present absent half-day late"`
	CheckIn   *string `json:"check_in"`
	CheckOut  *string `json:"check_out"`
	WorkHours *string `json:"work_hours" binding:"omitempty,max=10"`
}

type UpdateAttendanceRequest struct {
	CheckOut  *string `json:"check_out"`
	Status    *string `json:"status" binding:"omitempty,oneof=present absent half-day late"`
	WorkHours *string `json:"work_hours" binding:"omitempty,max=10"`
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	CheckIn      *string `json:"check_in,omitempty"`
	CheckOut     *string `json:"check_out,omitempty"`
	Status       string  `json:"status"`
	WorkHours    string  `json:"work_hours"`
}
