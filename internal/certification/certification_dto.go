package certification

type CreateTypeRequest struct {
	Name                string `json:"name" binding:"required,max=150"`
	Description         string `json:"description"`
	IssuingOrganization string `json:"issuing_organization" binding:"max=150"`
	ValidityPeriod      int    `json:"validity_period" binding:"gte=0"`
}

type UpdateTypeRequest struct {
	Name                *string `json:"name" binding:"omitempty,max=150"`
	Description         *string `json:"description"`
	IssuingOrganization *string `json:"issuing_organization" binding:"omitempty,max=150"`
	ValidityPeriod      *int    `json:"validity_period" binding:"omitempty,gte=0"`
}

type TypeResponse struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	IssuingOrganization string `json:"issuing_organization"`
	ValidityPeriod      int    `json:"validity_period"`
}

type CreateCertificationRequest struct {
	CertificationTypeID string  `json:"certification_type_id" binding:"required,uuid"`
	CertificationNumber string  `json:"certification_number" binding:"max=100"`
	IssueDate           string  `json:"issue_date" binding:"required"`
	ExpiryDate          *string `json:"expiry_date"`
}

type UpdateCertificationRequest struct {
	CertificationNumber *string `json:"certification_number" binding:"omitempty,max=100"`
	IssueDate           *string `json:"issue_date"`
	ExpiryDate          *string `json:"expiry_date"`
	Status              *string `json:"status" binding:"omitempty,oneof=active expired revoked"`
}

type CertificationResponse struct {
	ID                    string  `json:"id"`
	EmployeeID            string  `json:"employee_id"`
	CertificationTypeID   string  `json:"certification_type_id"`
	CertificationTypeName string  `json:"certification_type_name,omitempty"`
	CertificationNumber   string  `json:"certification_number"`
	IssueDate             string  `json:"issue_date"`
	ExpiryDate            *string `json:"expiry_date"`
	Status                string  `json:"status"`
}
