package leave

type CreateLeaveTypeRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	DefaultDays int    `json:"default_days" binding:"gte=0"`
}

type UpdateLeaveTypeRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	DefaultDays *int    `json:"default_days" binding:"omitempty,gte=0"`
	IsActive    *bool   `json:"is_active"`
}

type LeaveTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DefaultDays int    `json:"default_days"`
	IsActive    bool   `json:"is_active"`
}

type CreateBalanceRequest struct {
	LeaveTypeID string `json:"leave_type_id" binding:"required,uuid"`
	Year        int    `json:"year" binding:"omitempty,gte=2000,lte=2100"`
	TotalDays   int    `json:"total_days" binding:"gte=0"`
	UsedDays    int    `json:"used_days" binding:"gte=0"`
}

type UpdateBalanceRequest struct {
	LeaveTypeID string `json:"leave_type_id" binding:"required,uuid"`
	Year        int    `json:"year" binding:"omitempty,gte=2000,lte=2100"`
	TotalDays   *int   `json:"total_days" binding:"omitempty,gte=0"`
	UsedDays    *int   `json:"used_days" binding:"omitempty,gte=0"`
}

type LeaveBalanceResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	LeaveTypeID   string `json:"leave_type_id"`
	LeaveTypeName string `json:"leave_type_name,omitempty"`
	Year          int    `json:"year"`
	TotalDays     int    `json:"total_days"`
	UsedDays      int    `json:"used_days"`
	RemainingDays int    `json:"remaining_days"`
}

type ApplyLeaveRequest struct {
	LeaveTypeID string `json:"leave_type_id" binding:"required,uuid"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Reason      string `json:"reason" binding:"max=1000"`
}

type RejectLeaveRequest struct {
	Comment string `json:"comment" form:"comment"`
}

type LeaveResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName string  `json:"leave_type_name,omitempty"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	TotalDays     int     `json:"total_days"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	Comment       string  `json:"comment,omitempty"`
	DecidedBy     *string `json:"decided_by,omitempty"`
	DecidedAt     *string `json:"decided_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
}
