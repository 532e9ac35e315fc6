package models

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ReviewDbName  = "yatra"
	ReviewColName = "place_reviews"
)

type ReviewsRepo interface {
	CreateReview(ctx context.Context, review *PlaceReview) (*PlaceReview, error)
	GetReviewsByPlace(ctx context.Context, placeId uuid.UUID, limit int) ([]*PlaceReview, error)
	GetReviewsByUser(ctx context.Context, userId uuid.UUID) ([]*PlaceReview, error)
	UpdateReview(ctx context.Context, userId uuid.UUID, reviewId primitive.ObjectID, updates map[string]interface{}) (*PlaceReview, error)
	DeleteReview(ctx context.Context, userId uuid.UUID, reviewId primitive.ObjectID) error
	VoteReview(ctx context.Context, reviewId primitive.ObjectID, helpful bool) (*PlaceReview, error)
	RespondToReview(ctx context.Context, reviewId primitive.ObjectID, response *OwnerResponse) (*PlaceReview, error)
	SetReviewStatus(ctx context.Context, reviewId primitive.ObjectID, status string) error
}

func (mdb *MongodbRepo) CreateReview(ctx context.Context, review *PlaceReview) (*PlaceReview, error) {
	if err := review.ValidateReview(); err != nil {
		return nil, fmt.Errorf("invalid review data: %w", err)
	}

	if err := review.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare review for creation: %w", err)
	}

	col, err := mdb.GetCollection(ctx, ReviewDbName, ReviewColName)
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	_, err = col.InsertOne(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("failed to insert review into database: %w", err)
	}

	return review, nil
}

func (mdb *MongodbRepo) GetReviewsByPlace(ctx context.Context, placeId uuid.UUID, limit int) ([]*PlaceReview, error) {
	col, err := mdb.GetCollection(ctx, ReviewDbName, ReviewColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := col.Find(ctx, bson.M{
		"place_id": placeId,
		"status":   bson.M{"$ne": ReviewStatusFlagged},
	}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding reviews: %v", err)
	}
	defer cursor.Close(ctx)

	var reviews []*PlaceReview
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("error decoding reviews: %v", err)
	}

	return reviews, nil
}

func (mdb *MongodbRepo) GetReviewsByUser(ctx context.Context, userId uuid.UUID) ([]*PlaceReview, error) {
	col, err := mdb.GetCollection(ctx, ReviewDbName, ReviewColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{"user_id": userId},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("error finding reviews: %v", err)
	}
	defer cursor.Close(ctx)

	var reviews []*PlaceReview
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("error decoding reviews: %v", err)
	}

	return reviews, nil
}

func (mdb *MongodbRepo) UpdateReview(ctx context.Context, userId uuid.UUID, reviewId primitive.ObjectID, updates map[string]interface{}) (*PlaceReview, error) {
	col, err := mdb.GetCollection(ctx, ReviewDbName, ReviewColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	set := bson.M{"updated_at": time.Now()}
	for key, value := range updates {
		switch key {
		case "rating", "title", "comment", "liked_features":
			set[key] = value
		}
	}

	// Only the author may edit; status drops back to pending for re-moderation
	set["status"] = ReviewStatusPending

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated PlaceReview
	err = col.FindOneAndUpdate(ctx,
		bson.M{"_id": reviewId, "user_id": userId},
		bson.M{"$set": set},
		opts,
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("review not found")
	}
	if err != nil {
		return nil, fmt.Errorf("error updating review: %v", err)
	}

	return &updated, nil
}

func (mdb *MongodbRepo) DeleteReview(ctx context.Context, userId uuid.UUID, reviewId primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, ReviewDbName, ReviewColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	result, err := col.DeleteOne(ctx, bson.M{"_id": reviewId, "user_id": userId})
	if err != nil {
		return fmt.Errorf("error deleting review: %v", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("review not found")
	}

	return nil
}

func (mdb *MongodbRepo) VoteReview(ctx context.Context, reviewId primitive.ObjectID, helpful bool) (*PlaceReview, error) {
	col, err := mdb.GetCollection(ctx, ReviewDbName, ReviewColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	field := "helpful"
	if !helpful {
		field = "not_helpful"
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated PlaceReview
	err = col.FindOneAndUpdate(ctx,
		bson.M{"_id": reviewId},
		bson.M{
			"$inc": bson.M{field: 1},
			"$set": bson.M{"updated_at": time.Now()},
		},
		opts,
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("review not found")
	}
	if err != nil {
		return nil, fmt.Errorf("error voting on review: %v", err)
	}

	return &updated, nil
}

func (mdb *MongodbRepo) RespondToReview(ctx context.Context, reviewId primitive.ObjectID, response *OwnerResponse) (*PlaceReview, error) {
	col, err := mdb.GetCollection(ctx, ReviewDbName, ReviewColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	response.RespondedAt = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated PlaceReview
	err = col.FindOneAndUpdate(ctx,
		bson.M{"_id": reviewId},
		bson.M{"$set": bson.M{
			"response":   response,
			"updated_at": time.Now(),
		}},
		opts,
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("review not found")
	}
	if err != nil {
		return nil, fmt.Errorf("error responding to review: %v", err)
	}

	return &updated, nil
}

func (mdb *MongodbRepo) SetReviewStatus(ctx context.Context, reviewId primitive.ObjectID, status string) error {
	col, err := mdb.GetCollection(ctx, ReviewDbName, ReviewColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	result, err := col.UpdateOne(ctx,
		bson.M{"_id": reviewId},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("error setting review status: %v", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("review not found")
	}

	return nil
}
