package salary

type UpdateSalaryRequest struct {
	BasicSalary   *float64 `json:"basic_salary"`
	Allowances    *float64 `json:"allowances"`
	Deductions    *float64 `json:"deductions"`
	EffectiveDate *string  `json:"effective_date"`
}

type SalaryResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	BasicSalary   float64 `json:"basic_salary"`
	Allowances    float64 `json:"allowances"`
	Deductions    float64 `json:"deductions"`
	GrossSalary   float64 `json:"gross_salary"`
	NetSalary     float64 `json:"net_salary"`
	EffectiveDate string  `json:"effective_date"`
}

type UpsertTaxInfoRequest struct {
	PANNumber       string                 `json:"pan_number" binding:"required"`
	TaxRegime       string                 `json:"tax_regime" binding:"required"`
	TaxDeclarations map[string]interface{} `json:"tax_declarations"`
}

type TaxInfoResponse struct {
	ID              string                 `json:"id"`
	EmployeeID      string                 `json:"employee_id"`
	PANNumber       string                 `json:"pan_number"`
	TaxRegime       string                 `json:"tax_regime"`
	TaxDeclarations map[string]interface{} `json:"tax_declarations"`
	UpdatedAt       string                 `json:"updated_at"`
}
