package policy

type CreatePolicyRequest struct {
	Title         string  `json:"title" binding:"required,max=200"`
	Description   string  `json:"description"`
	Category      string  `json:"category" binding:"max=100"`
	Version       string  `json:"version" binding:"max=20"`
	EffectiveDate *string `json:"effective_date"`
	IsMandatory   *bool   `json:"is_mandatory"`
	Status        string  `json:"status" binding:"omitempty,oneof=draft active archived"`
}

type UpdatePolicyRequest struct {
	Title         *string `json:"title" binding:"omitempty,max=200"`
	Description   *string `json:"description"`
	Category      *string `json:"category" binding:"omitempty,max=100"`
	Version       *string `json:"version" binding:"omitempty,max=20"`
	EffectiveDate *string `json:"effective_date"`
	IsMandatory   *bool   `json:"is_mandatory"`
	Status        *string `json:"status" binding:"omitempty,oneof=draft active archived"`
}

type PolicyResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Version       string `json:"version"`
	EffectiveDate string `json:"effective_date"`
	IsMandatory   bool   `json:"is_mandatory"`
	Status        string `json:"status"`
}

type AcknowledgmentResponse struct {
	ID                  string `json:"id"`
	EmployeeID          string `json:"employee_id"`
	PolicyID            string `json:"policy_id"`
	VersionAcknowledged string `json:"version_acknowledged"`
	AcknowledgedAt      string `json:"acknowledged_at"`
}

type PendingPolicy struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Version string `json:"version"`
}

type ComplianceStatus struct {
	EmployeeID             string          `json:"employee_id"`
	EmployeeName           string          `json:"employee_name,omitempty"`
	TotalPolicies          int             `json:"total_policies"`
	AcknowledgedPolicies   int             `json:"acknowledged_policies"`
	PendingPolicies        int             `json:"pending_policies"`
	ComplianceRate         float64         `json:"compliance_rate"`
	PendingAcknowledgments []PendingPolicy `json:"pending_acknowledgments"`
}
