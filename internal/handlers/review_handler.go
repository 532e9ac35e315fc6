package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yatra-labs/yatra-server/internal/helpers"
	"github.com/yatra-labs/yatra-server/internal/models"
	"github.com/yatra-labs/yatra-server/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func reviewIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	raw := helpers.StringTrim(c.Param("id"))
	reviewId, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid review ID format"))
		return primitive.NilObjectID, false
	}
	return reviewId, true
}

func CreateReview(rs *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			return
		}

		placeId, err := uuid.Parse(helpers.StringTrim(c.Param("placeId")))
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid place ID format"))
			return
		}

		var review models.PlaceReview
		if err := c.ShouldBindJSON(&review); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		created, err := rs.CreateReview(c.Request.Context(), userId, placeId, &review)
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, helpers.SuccessResponse(created, "Review submitted"))
	}
}

func GetReviewsByPlace(rs *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		placeId, err := uuid.Parse(helpers.StringTrim(c.Param("id")))
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid place ID format"))
			return
		}

		limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid limit parameter"))
			return
		}

		reviews, err := rs.GetReviewsByPlace(c.Request.Context(), placeId, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(reviews, ""))
	}
}

func GetMyReviews(rs *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			return
		}

		reviews, err := rs.GetReviewsByUser(c.Request.Context(), userId)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(reviews, ""))
	}
}

func UpdateReview(rs *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			return
		}

		reviewId, ok := reviewIDParam(c)
		if !ok {
			return
		}

		var updates map[string]interface{}
		if err := c.ShouldBindJSON(&updates); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		updated, err := rs.UpdateReview(c.Request.Context(), userId, reviewId, updates)
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(updated, "Review updated"))
	}
}

func DeleteReview(rs *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			return
		}

		reviewId, ok := reviewIDParam(c)
		if !ok {
			return
		}

		if err := rs.DeleteReview(c.Request.Context(), userId, reviewId); err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "Review deleted"))
	}
}

func VoteReview(rs *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := currentUserID(c); !ok {
			return
		}

		reviewId, ok := reviewIDParam(c)
		if !ok {
			return
		}

		vote := strings.ToLower(c.DefaultQuery("vote", "helpful"))
		if vote != "helpful" && vote != "not_helpful" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("vote must be helpful or not_helpful"))
			return
		}

		updated, err := rs.VoteReview(c.Request.Context(), reviewId, vote == "helpful")
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(updated, ""))
	}
}

// RespondToReview lets an admin attach an official response to a review.
func RespondToReview(rs *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := adminClaims(c); !ok {
			return
		}

		reviewId, ok := reviewIDParam(c)
		if !ok {
			return
		}

		var reqBody struct {
			Body string `json:"body" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("response body is required"))
			return
		}

		updated, err := rs.RespondToReview(c.Request.Context(), reviewId, reqBody.Body)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(updated, "Response recorded"))
	}
}

// SetReviewStatus is the moderation endpoint for approving or flagging reviews.
func SetReviewStatus(rs *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := adminClaims(c); !ok {
			return
		}

		reviewId, ok := reviewIDParam(c)
		if !ok {
			return
		}

		var reqBody struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("status is required"))
			return
		}

		if err := rs.SetReviewStatus(c.Request.Context(), reviewId, reqBody.Status); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "Review status updated"))
	}
}
