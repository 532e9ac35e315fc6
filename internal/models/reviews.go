package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yatra-labs/yatra-server/internal/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ReviewStatusPending  = "Pending Approval"
	ReviewStatusApproved = "Approved"
	ReviewStatusFlagged  = "Flagged"
)

// OwnerResponse is an optional reply from the business/operator behind a
// destination listing.
type OwnerResponse struct {
	Body        string    `bson:"body" json:"body"`
	RespondedAt time.Time `bson:"responded_at" json:"responded_at"`
}

type PlaceReview struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        uuid.UUID          `bson:"user_id" json:"user_id"`
	PlaceID       uuid.UUID          `bson:"place_id" json:"place_id"`
	Rating        int                `bson:"rating" json:"rating" validate:"required,min=1,max=5"`
	Title         string             `bson:"title" json:"title"`
	Comment       string             `bson:"comment" json:"comment"`
	LikedFeatures []string           `bson:"liked_features,omitempty" json:"liked_features,omitempty"`
	Helpful       int                `bson:"helpful" json:"helpful"`
	NotHelpful    int                `bson:"not_helpful" json:"not_helpful"`
	Response      *OwnerResponse     `bson:"response,omitempty" json:"response,omitempty"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

func (r *PlaceReview) BeforeCreate() error {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	return nil
}

func (r PlaceReview) ValidateReview() error {
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}

	if r.UserID == uuid.Nil {
		return fmt.Errorf("invalid user ID")
	}

	if r.PlaceID == uuid.Nil {
		return fmt.Errorf("invalid place ID")
	}

	return nil
}

func (r *PlaceReview) Sanitize() {
	r.Title = helpers.StringTrim(r.Title)
	r.Comment = helpers.StringTrim(r.Comment)

	// Ensure rating is within bounds
	if r.Rating < 1 {
		r.Rating = 1
	} else if r.Rating > 5 {
		r.Rating = 5
	}
	r.LikedFeatures = helpers.RemoveDuplicates(r.LikedFeatures)
}
