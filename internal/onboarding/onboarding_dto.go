package onboarding

type CreateTaskRequest struct {
	Title        string  `json:"title" binding:"required,max=200"`
	Description  string  `json:"description"`
	DepartmentID *string `json:"department_id" binding:"omitempty,uuid"`
	RoleID       *string `json:"role_id" binding:"omitempty,uuid"`
	Priority     string  `json:"priority" binding:"omitempty,oneof=low medium high"`
}

type UpdateTaskRequest struct {
	Title        *string `json:"title" binding:"omitempty,max=200"`
	Description  *string `json:"description"`
	DepartmentID *string `json:"department_id" binding:"omitempty,uuid"`
	RoleID       *string `json:"role_id" binding:"omitempty,uuid"`
	Priority     *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	IsActive     *bool   `json:"is_active"`
}

type TaskResponse struct {
	ID           string  `json:"id"`
	Kind         string  `json:"kind"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	DepartmentID *string `json:"department_id"`
	RoleID       *string `json:"role_id,omitempty"`
	Priority     string  `json:"priority"`
	IsActive     bool    `json:"is_active"`
}

type UpdateEmployeeTaskRequest struct {
	Status string  `json:"status" binding:"required,oneof=pending in_progress completed"`
	Notes  *string `json:"notes"`
}

type EmployeeTaskResponse struct {
	ID          string       `json:"id"`
	EmployeeID  string       `json:"employee_id"`
	Status      string       `json:"status"`
	Notes       string       `json:"notes"`
	CompletedAt *string      `json:"completed_at"`
	Task        TaskResponse `json:"task"`
}

type AssignResponse struct {
	Kind     string `json:"kind"`
	Assigned int    `json:"assigned"`
}
