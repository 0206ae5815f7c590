package performance

import (
	"context"
	"errors"
	"time"

	"go-hrms/internal/domain"
	performanceerrors "go-hrms/internal/performance/errors"
	"go-hrms/internal/rbac"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=performance_service.go -destination=mock/performance_service_mock.go -package=mock
type Service interface {
	ListRatings(ctx context.Context, actor domain.Actor, employeeID string) ([]RatingResponse, error)
	CreateRating(ctx context.Context, actor domain.Actor, employeeID string, req CreateRatingRequest) (RatingResponse, error)
	UpdateRating(ctx context.Context, actor domain.Actor, employeeID, ratingID string, req UpdateRatingRequest) (RatingResponse, error)
	DeleteRating(ctx context.Context, actor domain.Actor, employeeID, ratingID string) error

	ListReviews(ctx context.Context, actor domain.Actor, employeeID string) ([]ReviewResponse, error)
	CreateReview(ctx context.Context, actor domain.Actor, employeeID string, req CreateReviewRequest) (ReviewResponse, error)
	UpdateReview(ctx context.Context, actor domain.Actor, employeeID, reviewID string, req UpdateReviewRequest) (ReviewResponse, error)
	DeleteReview(ctx context.Context, actor domain.Actor, employeeID, reviewID string) error

	Report(ctx context.Context, actor domain.Actor) (Report, error)
}

type service struct {
	repo   Repository
	guard  rbac.Guard
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, guard rbac.Guard, logger ...*zap.Logger) Service {
	l := zap.L().Named("performance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("performance.service")
	}
	return &service{repo: repo, guard: guard, now: time.Now, logger: l}
}

func (s *service) ListRatings(ctx context.Context, actor domain.Actor, employeeID string) ([]RatingResponse, error) {
	empID, err := s.authorize(ctx, actor, employeeID, rbac.TeamView)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.FindRatings(ctx, empID)
	if err != nil {
		return nil, err
	}
	resp := make([]RatingResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapRatingResponse(r)
	}
	return resp, nil
}

func (s *service) CreateRating(ctx context.Context, actor domain.Actor, employeeID string, req CreateRatingRequest) (RatingResponse, error) {
	empID, err := s.authorize(ctx, actor, employeeID, rbac.TeamApprover)
	if err != nil {
		return RatingResponse{}, err
	}
	if !validScore(req.Rating) {
		return RatingResponse{}, performanceerrors.ErrInvalidRating
	}
	start, end, err := parsePeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return RatingResponse{}, err
	}

	r := &Rating{
		ID:          uuid.New(),
		EmployeeID:  empID,
		RatedBy:     actorUUID(actor),
		Rating:      req.Rating,
		Category:    req.Category,
		PeriodStart: start,
		PeriodEnd:   end,
		Comments:    req.Comments,
	}
	if err := s.repo.CreateRating(ctx, r); err != nil {
		s.logger.Error("create rating failed", zap.String("employee_id", employeeID), zap.Error(err))
		return RatingResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("rating recorded",
		zap.String("employee_id", employeeID),
		zap.String("rated_by", actor.ID),
		zap.Int("rating", r.Rating),
	)
	return mapRatingResponse(*r), nil
}

func (s *service) UpdateRating(ctx context.Context, actor domain.Actor, employeeID, ratingID string, req UpdateRatingRequest) (RatingResponse, error) {
	r, err := s.findRating(ctx, actor, employeeID, ratingID)
	if err != nil {
		return RatingResponse{}, err
	}

	if req.Rating != nil {
		if !validScore(*req.Rating) {
			return RatingResponse{}, performanceerrors.ErrInvalidRating
		}
		r.Rating = *req.Rating
	}
	if req.Category != nil {
		r.Category = *req.Category
	}
	if req.Comments != nil {
		r.Comments = *req.Comments
	}
	if req.PeriodStart != nil {
		t, err := parseDate(*req.PeriodStart)
		if err != nil {
			return RatingResponse{}, err
		}
		r.PeriodStart = t
	}
	if req.PeriodEnd != nil {
		t, err := parseDate(*req.PeriodEnd)
		if err != nil {
			return RatingResponse{}, err
		}
		r.PeriodEnd = t
	}
	if r.PeriodStart.After(r.PeriodEnd) {
		return RatingResponse{}, performanceerrors.ErrInvalidPeriod
	}

	if err := s.repo.UpdateRating(ctx, r); err != nil {
		return RatingResponse{}, mapRepositoryError(err)
	}
	return mapRatingResponse(*r), nil
}

func (s *service) DeleteRating(ctx context.Context, actor domain.Actor, employeeID, ratingID string) error {
	r, err := s.findRating(ctx, actor, employeeID, ratingID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteRating(ctx, r.ID); err != nil {
		return err
	}

	s.logger.Info("rating deleted", zap.String("employee_id", employeeID), zap.String("rating_id", ratingID))
	return nil
}

func (s *service) ListReviews(ctx context.Context, actor domain.Actor, employeeID string) ([]ReviewResponse, error) {
	empID, err := s.authorize(ctx, actor, employeeID, rbac.TeamView)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.FindReviews(ctx, empID)
	if err != nil {
		return nil, err
	}
	resp := make([]ReviewResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapReviewResponse(r)
	}
	return resp, nil
}

func (s *service) CreateReview(ctx context.Context, actor domain.Actor, employeeID string, req CreateReviewRequest) (ReviewResponse, error) {
	empID, err := s.authorize(ctx, actor, employeeID, rbac.TeamApprover)
	if err != nil {
		return ReviewResponse{}, err
	}
	if !validScore(req.OverallRating) {
		return ReviewResponse{}, performanceerrors.ErrInvalidRating
	}

	r := &Review{
		ID:                 uuid.New(),
		EmployeeID:         empID,
		ReviewerID:         actorUUID(actor),
		ReviewPeriod:       req.ReviewPeriod,
		OverallRating:      req.OverallRating,
		Achievements:       req.Achievements,
		AreasOfImprovement: req.AreasOfImprovement,
		Goals:              req.Goals,
		Status:             ReviewDraft,
	}
	if err := s.repo.CreateReview(ctx, r); err != nil {
		s.logger.Error("create review failed", zap.String("employee_id", employeeID), zap.Error(err))
		return ReviewResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("review drafted",
		zap.String("employee_id", employeeID),
		zap.String("reviewer_id", actor.ID),
		zap.String("period", r.ReviewPeriod),
	)
	return mapReviewResponse(*r), nil
}

func (s *service) UpdateReview(ctx context.Context, actor domain.Actor, employeeID, reviewID string, req UpdateReviewRequest) (ReviewResponse, error) {
	r, err := s.findReview(ctx, actor, employeeID, reviewID)
	if err != nil {
		return ReviewResponse{}, err
	}

	if req.ReviewPeriod != nil {
		r.ReviewPeriod = *req.ReviewPeriod
	}
	if req.OverallRating != nil {
		if !validScore(*req.OverallRating) {
			return ReviewResponse{}, performanceerrors.ErrInvalidRating
		}
		r.OverallRating = *req.OverallRating
	}
	if req.Achievements != nil {
		r.Achievements = *req.Achievements
	}
	if req.AreasOfImprovement != nil {
		r.AreasOfImprovement = *req.AreasOfImprovement
	}
	if req.Goals != nil {
		r.Goals = *req.Goals
	}
	if req.Status != nil {
		if err := s.advance(r, *req.Status); err != nil {
			return ReviewResponse{}, err
		}
	}

	if err := s.repo.UpdateReview(ctx, r); err != nil {
		return ReviewResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("review updated",
		zap.String("review_id", reviewID),
		zap.String("status", r.Status),
	)
	return mapReviewResponse(*r), nil
}

// advance moves a review forward, stamping each stage it passes through.
func (s *service) advance(r *Review, next string) error {
	from, to := reviewStage[r.Status], reviewStage[next]
	if to < from {
		return performanceerrors.ErrInvalidTransition
	}
	if to == from {
		return nil
	}

	now := s.now().UTC()
	if to >= reviewStage[ReviewSubmitted] && r.SubmittedAt == nil {
		r.SubmittedAt = &now
	}
	if to == reviewStage[ReviewApproved] {
		r.ApprovedAt = &now
	}
	r.Status = next
	return nil
}

func (s *service) DeleteReview(ctx context.Context, actor domain.Actor, employeeID, reviewID string) error {
	r, err := s.findReview(ctx, actor, employeeID, reviewID)
	if err != nil {
		return err
	}
	if r.Status != ReviewDraft {
		return performanceerrors.ErrReviewNotDraft
	}
	if err := s.repo.DeleteReview(ctx, r.ID); err != nil {
		return err
	}

	s.logger.Info("review deleted", zap.String("employee_id", employeeID), zap.String("review_id", reviewID))
	return nil
}

func (s *service) authorize(ctx context.Context, actor domain.Actor, employeeID string, rule rbac.Rule) (uuid.UUID, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return uuid.Nil, performanceerrors.ErrInvalidEmployeeID
	}
	if err := s.guard.Authorize(ctx, actor, employeeID, rule); err != nil {
		return uuid.Nil, err
	}
	return empID, nil
}

func (s *service) findRating(ctx context.Context, actor domain.Actor, employeeID, ratingID string) (*Rating, error) {
	empID, err := s.authorize(ctx, actor, employeeID, rbac.TeamApprover)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(ratingID)
	if err != nil {
		return nil, performanceerrors.ErrInvalidRatingID
	}
	r, err := s.repo.FindRating(ctx, empID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, performanceerrors.ErrRatingNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *service) findReview(ctx context.Context, actor domain.Actor, employeeID, reviewID string) (*Review, error) {
	empID, err := s.authorize(ctx, actor, employeeID, rbac.TeamApprover)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, performanceerrors.ErrInvalidReviewID
	}
	r, err := s.repo.FindReview(ctx, empID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, performanceerrors.ErrReviewNotFound
		}
		return nil, err
	}
	return r, nil
}

func validScore(v int) bool {
	return v >= 1 && v <= 5
}

func actorUUID(actor domain.Actor) *uuid.UUID {
	id, err := uuid.Parse(actor.ID)
	if err != nil {
		return nil
	}
	return &id
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, performanceerrors.ErrInvalidDate
	}
	return t, nil
}

func parsePeriod(from, to string) (time.Time, time.Time, error) {
	start, err := parseDate(from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDate(to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, performanceerrors.ErrInvalidPeriod
	}
	return start, end, nil
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}

func mapRatingResponse(r Rating) RatingResponse {
	resp := RatingResponse{
		ID:          r.ID.String(),
		EmployeeID:  r.EmployeeID.String(),
		Rating:      r.Rating,
		Category:    r.Category,
		PeriodStart: r.PeriodStart.Format(dateLayout),
		PeriodEnd:   r.PeriodEnd.Format(dateLayout),
		Comments:    r.Comments,
	}
	if r.RatedBy != nil {
		v := r.RatedBy.String()
		resp.RatedBy = &v
	}
	return resp
}

func mapReviewResponse(r Review) ReviewResponse {
	resp := ReviewResponse{
		ID:                 r.ID.String(),
		EmployeeID:         r.EmployeeID.String(),
		ReviewPeriod:       r.ReviewPeriod,
		OverallRating:      r.OverallRating,
		Achievements:       r.Achievements,
		AreasOfImprovement: r.AreasOfImprovement,
		Goals:              r.Goals,
		Status:             r.Status,
		SubmittedAt:        formatOptional(r.SubmittedAt),
		ApprovedAt:         formatOptional(r.ApprovedAt),
	}
	if r.ReviewerID != nil {
		v := r.ReviewerID.String()
		resp.ReviewerID = &v
	}
	return resp
}
