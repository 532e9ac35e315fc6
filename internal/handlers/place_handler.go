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
)

func parsePagination(c *gin.Context) (offset, limit int, ok bool) {
	limitStr := c.DefaultQuery("limit", "10")
	offsetStr := c.DefaultQuery("offset", "0")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid limit parameter"))
		return 0, 0, false
	}
	offset, err = strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid offset parameter"))
		return 0, 0, false
	}
	return offset, limit, true
}

// adminClaims extracts the authenticated claims and enforces the admin role.
func adminClaims(c *gin.Context) (*helpers.EnhancedClaims, bool) {
	userClaims, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
		return nil, false
	}

	claims, ok := userClaims.(*helpers.EnhancedClaims)
	if !ok {
		c.JSON(http.StatusInternalServerError, helpers.ErrorResponse("invalid user claims"))
		return nil, false
	}

	if !claims.IsAdmin() {
		c.JSON(http.StatusForbidden, helpers.ErrorResponse("only admins can manage destinations"))
		return nil, false
	}

	return claims, true
}

func CreatePlace(p *services.PlaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := adminClaims(c); !ok {
			return
		}

		var place models.Place
		if err := c.ShouldBindJSON(&place); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		accessToken, _ := c.Cookie("access_token")

		createdPlace, err := p.CreatePlace(c.Request.Context(), &place, accessToken)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, helpers.SuccessResponse(createdPlace, "Destination created successfully"))
	}
}

func ListPlaces(p *services.PlaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := parsePagination(c)
		if !ok {
			return
		}

		places, total, err := p.ListPlaces(c.Request.Context(), offset, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		page := (offset / limit) + 1
		c.JSON(http.StatusOK, helpers.PaginatedResponse(places, page, limit, total))
	}
}

func ListFeaturedPlaces(p *services.PlaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limitStr := c.DefaultQuery("limit", "6")
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid limit parameter"))
			return
		}

		places, err := p.ListFeaturedPlaces(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(places, ""))
	}
}

func GetPlaceByID(p *services.PlaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		placeID := strings.TrimSpace(c.Param("id"))
		placeID = strings.Trim(placeID, "\"'")

		if placeID == "" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("place ID is required"))
			return
		}

		parsedId, err := uuid.Parse(placeID)
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid place ID format"))
			return
		}

		place, err := p.GetPlaceByID(c.Request.Context(), parsedId)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}
		if place == nil {
			c.JSON(http.StatusNotFound, helpers.ErrorResponse("destination not found"))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(place, ""))
	}
}

func SearchPlaces(p *services.PlaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := parsePagination(c)
		if !ok {
			return
		}

		query := strings.TrimSpace(c.Query("q"))
		if query == "" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("search query is required"))
			return
		}

		places, total, err := p.SearchPlaces(c.Request.Context(), query, offset, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		page := (offset / limit) + 1
		c.JSON(http.StatusOK, helpers.PaginatedResponse(places, page, limit, total))
	}
}

func QueryPlaces(p *services.PlaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, limit, ok := parsePagination(c)
		if !ok {
			return
		}

		filters := make(map[string]string)
		for _, key := range []string{"city", "state", "category", "price_range"} {
			if value := strings.TrimSpace(c.Query(key)); value != "" {
				filters[key] = value
			}
		}

		if len(filters) == 0 {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("at least one filter is required"))
			return
		}

		places, total, err := p.QueryPlaces(c.Request.Context(), filters, offset, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		page := (offset / limit) + 1
		c.JSON(http.StatusOK, helpers.PaginatedResponse(places, page, limit, total))
	}
}

func UpdatePlace(p *services.PlaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := adminClaims(c); !ok {
			return
		}

		placeID := strings.TrimSpace(c.Param("id"))
		parsedId, err := uuid.Parse(placeID)
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid place ID format"))
			return
		}

		var updates map[string]interface{}
		if err := c.ShouldBindJSON(&updates); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		accessToken, _ := c.Cookie("access_token")

		updated, err := p.UpdatePlace(c.Request.Context(), updates, parsedId, accessToken)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(updated, "Destination updated successfully"))
	}
}

func DeletePlace(p *services.PlaceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := adminClaims(c); !ok {
			return
		}

		placeID := strings.TrimSpace(c.Param("id"))
		parsedId, err := uuid.Parse(placeID)
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid place ID format"))
			return
		}

		accessToken, _ := c.Cookie("access_token")

		if err := p.DeletePlace(c.Request.Context(), parsedId, accessToken); err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "destination deleted successfully"))
	}
}
