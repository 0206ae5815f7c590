package project

type CreateProjectRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Description string   `json:"description"`
	ClientName  string   `json:"client_name" binding:"max=200"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Status      string   `json:"status" binding:"omitempty,oneof=active completed on_hold cancelled"`
	Priority    string   `json:"priority" binding:"omitempty,oneof=low medium high"`
	Budget      *float64 `json:"budget"`
}

type UpdateProjectRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=200"`
	Description *string  `json:"description"`
	ClientName  *string  `json:"client_name" binding:"omitempty,max=200"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Status      *string  `json:"status" binding:"omitempty,oneof=active completed on_hold cancelled"`
	Priority    *string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	Budget      *float64 `json:"budget"`
}

type ProjectResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ClientName  string  `json:"client_name"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	Budget      float64 `json:"budget"`
}

type AssignProjectRequest struct {
	ProjectID            string  `json:"project_id" binding:"required,uuid"`
	Role                 string  `json:"role" binding:"max=100"`
	StartDate            *string `json:"start_date"`
	EndDate              *string `json:"end_date"`
	AllocationPercentage *int    `json:"allocation_percentage"`
}

type UpdateAssignmentRequest struct {
	Role                 *string `json:"role" binding:"omitempty,max=100"`
	StartDate            *string `json:"start_date"`
	EndDate              *string `json:"end_date"`
	AllocationPercentage *int    `json:"allocation_percentage"`
}

type AssignmentResponse struct {
	ID                   string           `json:"id"`
	EmployeeID           string           `json:"employee_id"`
	ProjectID            string           `json:"project_id"`
	Role                 string           `json:"role"`
	StartDate            string           `json:"start_date"`
	EndDate              *string          `json:"end_date"`
	AllocationPercentage int              `json:"allocation_percentage"`
	Status               string           `json:"status"`
	AssignedBy           *string          `json:"assigned_by"`
	Project              *ProjectResponse `json:"project,omitempty"`
}
