package performance

type CreateRatingRequest struct {
	Rating      int    `json:"rating" binding:"required"`
	Category    string `json:"category" binding:"max=50"`
	PeriodStart string `json:"period_start" binding:"required"`
	PeriodEnd   string `json:"period_end" binding:"required"`
	Comments    string `json:"comments"`
}

type UpdateRatingRequest struct {
	Rating      *int    `json:"rating"`
	Category    *string `json:"category" binding:"omitempty,max=50"`
	PeriodStart *string `json:"period_start"`
	PeriodEnd   *string `json:"period_end"`
	Comments    *string `json:"comments"`
}

type RatingResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	RatedBy     *string `json:"rated_by"`
	Rating      int     `json:"rating"`
	Category    string  `json:"category"`
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
	Comments    string  `json:"comments"`
}

type CreateReviewRequest struct {
	ReviewPeriod       string `json:"review_period" binding:"required,max=50"`
	OverallRating      int    `json:"overall_rating" binding:"required"`
	Achievements       string `json:"achievements"`
	AreasOfImprovement string `json:"areas_of_improvement"`
	Goals              string `json:"goals"`
}

type UpdateReviewRequest struct {
	ReviewPeriod       *string `json:"review_period" binding:"omitempty,max=50"`
	OverallRating      *int    `json:"overall_rating"`
	Achievements       *string `json:"achievements"`
	AreasOfImprovement *string `json:"areas_of_improvement"`
	Goals              *string `json:"goals"`
	Status             *string `json:"status" binding:"omitempty,oneof=draft submitted approved"`
}

type ReviewResponse struct {
	ID                 string  `json:"id"`
	EmployeeID         string  `json:"employee_id"`
	ReviewerID         *string `json:"reviewer_id"`
	ReviewPeriod       string  `json:"review_period"`
	OverallRating      int     `json:"overall_rating"`
	Achievements       string  `json:"achievements"`
	AreasOfImprovement string  `json:"areas_of_improvement"`
	Goals              string  `json:"goals"`
	Status             string  `json:"status"`
	SubmittedAt        *string `json:"submitted_at"`
	ApprovedAt         *string `json:"approved_at"`
}

type TopPerformer struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	AverageRating float64 `json:"average_rating"`
}

type Report struct {
	AverageRating        float64            `json:"average_rating"`
	RatingDistribution   map[int]int        `json:"rating_distribution"`
	ReviewCompletionRate float64            `json:"review_completion_rate"`
	DepartmentAverages   map[string]float64 `json:"department_averages"`
	TopPerformers        []TopPerformer     `json:"top_performers"`
}
