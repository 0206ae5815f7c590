package benefit

type CreateBenefitRequest struct {
	Name        string  `json:"name" binding:"required,max=150"`
	Description string  `json:"description"`
	Type        string  `json:"type" binding:"max=50"`
	Amount      float64 `json:"amount" binding:"gte=0"`
}

type UpdateBenefitRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=150"`
	Description *string  `json:"description"`
	Type        *string  `json:"type" binding:"omitempty,max=50"`
	Amount      *float64 `json:"amount" binding:"omitempty,gte=0"`
	IsActive    *bool    `json:"is_active"`
}

type BenefitResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	IsActive    bool    `json:"is_active"`
}

type AssignBenefitRequest struct {
	BenefitID string  `json:"benefit_id" binding:"required,uuid"`
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   *string `json:"end_date"`
}

type UpdateAssignmentRequest struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Status    *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type EmployeeBenefitResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	BenefitID   string  `json:"benefit_id"`
	BenefitName string  `json:"benefit_name,omitempty"`
	Amount      float64 `json:"amount"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Status      string  `json:"status"`
}
