package course

type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	Duration    int    `json:"duration" binding:"gte=0"`
	Category    string `json:"category" binding:"max=100"`
}

type UpdateCourseRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description"`
	Duration    *int    `json:"duration" binding:"omitempty,gte=0"`
	Category    *string `json:"category" binding:"omitempty,max=100"`
	Status      *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type CourseResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Category    string `json:"category"`
	Status      string `json:"status"`
}

type EnrollRequest struct {
	CourseID string `json:"course_id" binding:"required,uuid"`
}

type UpdateEnrollmentRequest struct {
	Status         string  `json:"status" binding:"required,oneof=enrolled in_progress completed dropped"`
	CompletionDate *string `json:"completion_date"`
}

type EnrollmentResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	CourseID       string  `json:"course_id"`
	CourseTitle    string  `json:"course_title,omitempty"`
	Status         string  `json:"status"`
	AssignedBy     *string `json:"assigned_by"`
	CompletionDate *string `json:"completion_date"`
	EnrolledAt     string  `json:"enrolled_at"`
}
