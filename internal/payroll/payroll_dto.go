package payroll

type GeneratePayslipRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000,max=2100"`
}

type RunPayrollRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000,max=2100"`
}

type RunPayrollResponse struct {
	Queued int `json:"queued"`
	Month  int `json:"month"`
	Year   int `json:"year"`
}

type PayslipResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	SalaryID     string  `json:"salary_id"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`
	BasicSalary  float64 `json:"basic_salary"`
	Allowances   float64 `json:"allowances"`
	Deductions   float64 `json:"deductions"`
	GrossSalary  float64 `json:"gross_salary"`
	TaxDeducted  float64 `json:"tax_deducted"`
	NetSalary    float64 `json:"net_salary"`
	Status       string  `json:"status"`
	GeneratedAt  string  `json:"generated_at"`
}
