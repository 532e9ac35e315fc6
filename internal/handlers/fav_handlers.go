package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yatra-labs/yatra-server/internal/helpers"
	"github.com/yatra-labs/yatra-server/internal/services"
)

// currentUserID pulls the authenticated user's id out of the claims set by
// the auth middleware. Writes the error response itself on failure.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	claims, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
		return uuid.Nil, false
	}

	userClaims, ok := claims.(*helpers.EnhancedClaims)
	if !ok {
		c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("invalid user claims"))
		return uuid.Nil, false
	}

	parsedUserId, err := uuid.Parse(userClaims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
		return uuid.Nil, false
	}

	return parsedUserId, true
}

func AddToFavourites(f *services.FavouriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemId := helpers.StringTrim(c.Param("id"))

		userId, ok := currentUserID(c)
		if !ok {
			return
		}

		var reqBody struct {
			ItemType string `json:"item_type" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("item_type is required (place or city)"))
			return
		}

		res, err := f.AddToFavourites(c.Request.Context(), userId, itemId, reqBody.ItemType)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(res, "added to favourites"))
	}
}

func RemoveFromFavourites(f *services.FavouriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemId := helpers.StringTrim(c.Param("id"))

		userId, ok := currentUserID(c)
		if !ok {
			return
		}

		if err := f.RemoveFromFavourites(c.Request.Context(), userId, itemId); err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "removed from favourites"))
	}
}

func GetUserFavourites(f *services.FavouriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			return
		}

		res, err := f.GetFavouritesByUserID(c.Request.Context(), userId)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(res, ""))
	}
}
