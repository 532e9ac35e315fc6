package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yatra-labs/yatra-server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewService struct {
	reviewsRepo models.ReviewsRepo
}

func NewReviewService(reviewsRepo models.ReviewsRepo) *ReviewService {
	return &ReviewService{
		reviewsRepo: reviewsRepo,
	}
}

func (rs *ReviewService) CreateReview(ctx context.Context, userId uuid.UUID, placeId uuid.UUID, review *models.PlaceReview) (*models.PlaceReview, error) {
	review.UserID = userId
	review.PlaceID = placeId
	review.Sanitize()

	if err := review.ValidateReview(); err != nil {
		return nil, err
	}

	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now
	review.Status = models.ReviewStatusPending
	review.Helpful = 0
	review.NotHelpful = 0
	review.Response = nil

	return rs.reviewsRepo.CreateReview(ctx, review)
}

func (rs *ReviewService) GetReviewsByPlace(ctx context.Context, placeId uuid.UUID, limit int) ([]*models.PlaceReview, error) {
	if placeId == uuid.Nil {
		return nil, fmt.Errorf("invalid place ID")
	}
	if limit <= 0 {
		limit = 50
	}

	return rs.reviewsRepo.GetReviewsByPlace(ctx, placeId, limit)
}

func (rs *ReviewService) GetReviewsByUser(ctx context.Context, userId uuid.UUID) ([]*models.PlaceReview, error) {
	if userId == uuid.Nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	return rs.reviewsRepo.GetReviewsByUser(ctx, userId)
}

func (rs *ReviewService) UpdateReview(ctx context.Context, userId uuid.UUID, reviewId primitive.ObjectID, updates map[string]interface{}) (*models.PlaceReview, error) {
	if userId == uuid.Nil {
		return nil, fmt.Errorf("invalid user ID")
	}
	if reviewId.IsZero() {
		return nil, fmt.Errorf("invalid review ID")
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	if rating, ok := updates["rating"]; ok {
		if r, ok := rating.(float64); !ok || r < 1 || r > 5 {
			return nil, fmt.Errorf("rating must be between 1 and 5")
		}
	}

	return rs.reviewsRepo.UpdateReview(ctx, userId, reviewId, updates)
}

func (rs *ReviewService) DeleteReview(ctx context.Context, userId uuid.UUID, reviewId primitive.ObjectID) error {
	if userId == uuid.Nil {
		return fmt.Errorf("invalid user ID")
	}
	if reviewId.IsZero() {
		return fmt.Errorf("invalid review ID")
	}

	return rs.reviewsRepo.DeleteReview(ctx, userId, reviewId)
}

func (rs *ReviewService) VoteReview(ctx context.Context, reviewId primitive.ObjectID, helpful bool) (*models.PlaceReview, error) {
	if reviewId.IsZero() {
		return nil, fmt.Errorf("invalid review ID")
	}

	return rs.reviewsRepo.VoteReview(ctx, reviewId, helpful)
}

func (rs *ReviewService) RespondToReview(ctx context.Context, reviewId primitive.ObjectID, body string) (*models.PlaceReview, error) {
	if reviewId.IsZero() {
		return nil, fmt.Errorf("invalid review ID")
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("response body cannot be empty")
	}

	return rs.reviewsRepo.RespondToReview(ctx, reviewId, &models.OwnerResponse{Body: body})
}

func (rs *ReviewService) SetReviewStatus(ctx context.Context, reviewId primitive.ObjectID, status string) error {
	if reviewId.IsZero() {
		return fmt.Errorf("invalid review ID")
	}

	switch status {
	case models.ReviewStatusPending, models.ReviewStatusApproved, models.ReviewStatusFlagged:
	default:
		return fmt.Errorf("unsupported review status: %s", status)
	}

	return rs.reviewsRepo.SetReviewStatus(ctx, reviewId, status)
}
