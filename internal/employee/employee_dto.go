package employee

import "time"

type CreateEmployeeRequest struct {
	FirstName    string `json:"first_name" binding:"required,max=100"`
	LastName     string `json:"last_name" binding:"required,max=100"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	PhoneNumber  string `json:"phone_number" binding:"omitempty,max=30"`
	DepartmentID string `json:"department_id" binding:"omitempty,uuid"`
	RoleID       string `json:"role_id" binding:"omitempty,uuid"`
	ManagerID    string `json:"manager_id" binding:"omitempty,uuid"`
	JoiningDate  string `json:"joining_date"`
}

type UpdateEmployeeRequest struct {
	FirstName    *string `json:"first_name" binding:"omitempty,max=100"`
	LastName     *string `json:"last_name" binding:"omitempty,max=100"`
	Email        *string `json:"email" binding:"omitempty,email"`
	PhoneNumber  *string `json:"phone_number" binding:"omitempty,max=30"`
	DepartmentID *string `json:"department_id" binding:"omitempty,uuid"`
	RoleID       *string `json:"role_id" binding:"omitempty,uuid"`
	ManagerID    *string `json:"manager_id" binding:"omitempty,uuid"`
	JoiningDate  *string `json:"joining_date"`
	Status       *string `json:"status" binding:"omitempty,oneof=active inactive on_leave"`
}

// ProvisionInput creates an account-bearing employee. It backs both the HR
// create endpoint and self-registration.
type ProvisionInput struct {
	FirstName    string
	LastName     string
	Email        string
	Password     string
	PhoneNumber  string
	DepartmentID string
	RoleID       string
	RoleName     string // used when RoleID is empty; defaults to Employee
	ManagerID    string
	JoiningDate  *time.Time
}

type RefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeResponse struct {
	ID             string       `json:"id"`
	EmployeeNumber string       `json:"employee_number"`
	FirstName      string       `json:"first_name"`
	LastName       string       `json:"last_name"`
	FullName       string       `json:"full_name"`
	Email          string       `json:"email"`
	PhoneNumber    string       `json:"phone_number,omitempty"`
	DepartmentID   string       `json:"department_id,omitempty"`
	RoleID         string       `json:"role_id,omitempty"`
	ManagerID      string       `json:"manager_id,omitempty"`
	JoiningDate    string       `json:"joining_date"`
	Status         string       `json:"status"`
	IsActive       bool         `json:"is_active"`
	Department     *RefResponse `json:"department,omitempty"`
	Role           *RefResponse `json:"role,omitempty"`
}

type EmployeeOption struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
}
